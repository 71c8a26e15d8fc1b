package handlers

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

const (
	telegramModerator = "telegram"

	suffixApproved = "\n\n✅ *ОДОБРЕНО* администратором"
	suffixRejected = "\n\n❌ *ОТКЛОНЕНО* администратором"

	answerRejected  = "❌ Заявка отклонена"
	answerNotFound  = "❌ Заявка не найдена"
	answerProcessed = "⚠️ Заявка уже обработана"
	answerFailed    = "❌ Ошибка обработки заявки"
)

//go:generate mockgen -source=webhook_handler.go -destination=mocks/mocks.go -package=mocks TelegramClient

// TelegramClient is the part of the Bot API the moderation webhook uses.
type TelegramClient interface {
	EditMessage(ctx context.Context, chatID int64, messageID int, text string) error
	AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error
}

type TelegramHandler struct {
	paymentService *services.PaymentService
	client         TelegramClient
	secret         string
}

func NewTelegramHandler(paymentService *services.PaymentService, client TelegramClient, secret string) *TelegramHandler {
	return &TelegramHandler{paymentService: paymentService, client: client, secret: secret}
}

// HandleUpdate receives Bot API updates on /api/webhooks/telegram/:secret.
// Inline button presses approve or reject a payment request. Once the
// secret matches, the response is always 200 so Telegram does not resend.
func (h *TelegramHandler) HandleUpdate(c *fiber.Ctx) error {
	if h.secret == "" || subtle.ConstantTimeCompare([]byte(c.Params("secret")), []byte(h.secret)) != 1 {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
			Error: true, Message: "Unauthorized",
		})
	}

	var update dto.TelegramUpdate
	if err := c.BodyParser(&update); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid webhook payload",
		})
	}
	if update.CallbackQuery == nil {
		return c.JSON(fiber.Map{"ok": true})
	}

	h.handleCallback(c.UserContext(), update.CallbackQuery)
	return c.JSON(fiber.Map{"ok": true})
}

// parseCallback splits approve_<id> / reject_<id>.
func parseCallback(data string) (approve bool, id uint, ok bool) {
	var raw string
	switch {
	case strings.HasPrefix(data, services.CallbackApprove):
		approve, raw = true, strings.TrimPrefix(data, services.CallbackApprove)
	case strings.HasPrefix(data, services.CallbackReject):
		raw = strings.TrimPrefix(data, services.CallbackReject)
	default:
		return false, 0, false
	}
	n, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || n == 0 {
		return false, 0, false
	}
	return approve, uint(n), true
}

func (h *TelegramHandler) handleCallback(ctx context.Context, cb *dto.TelegramCallbackQuery) {
	approve, id, ok := parseCallback(cb.Data)
	if !ok {
		slog.Warn("unknown telegram callback", "action", "telegram_callback", "data", cb.Data)
		h.answer(ctx, cb.ID, answerNotFound, true)
		return
	}

	var (
		payment *models.PaymentRequest
		suffix  = suffixRejected
		err     error
	)
	if approve {
		suffix = suffixApproved
		payment, _, err = h.paymentService.Approve(ctx, id, telegramModerator)
	} else {
		payment, err = h.paymentService.Reject(ctx, id, telegramModerator)
	}

	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		h.answer(ctx, cb.ID, answerNotFound, true)
		return
	case errors.Is(err, services.ErrAlreadyProcessed):
		h.answer(ctx, cb.ID, answerProcessed, true)
		return
	case err != nil:
		slog.Error("telegram moderation failed", "action", "telegram_callback", "request_id", id, "error", err)
		h.answer(ctx, cb.ID, answerFailed, true)
		return
	}

	if cb.Message != nil && h.client != nil {
		if err := h.client.EditMessage(ctx, cb.Message.Chat.ID, cb.Message.MessageID, cb.Message.Text+suffix); err != nil {
			slog.Warn("telegram edit failed", "action", "telegram_edit", "request_id", id, "error", err)
		}
	}
	if approve {
		h.answer(ctx, cb.ID, "✅ Доступ выдан для "+payment.Email, false)
	} else {
		h.answer(ctx, cb.ID, answerRejected, false)
	}
}

func (h *TelegramHandler) answer(ctx context.Context, callbackID, text string, alert bool) {
	if h.client == nil {
		return
	}
	if err := h.client.AnswerCallback(ctx, callbackID, text, alert); err != nil {
		slog.Warn("telegram answer failed", "action", "telegram_answer", "error", err)
	}
}
