package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/models"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/plans"
)

const (
	CallbackApprove = "approve_"
	CallbackReject  = "reject_"
)

type telegramButton struct {
	Text         string `json:"text"`
	CallbackData string `json:"callback_data"`
}

type telegramReplyMarkup struct {
	InlineKeyboard [][]telegramButton `json:"inline_keyboard"`
}

type telegramSendMessage struct {
	ChatID                string               `json:"chat_id"`
	Text                  string               `json:"text"`
	ParseMode             string               `json:"parse_mode"`
	DisableWebPagePreview bool                 `json:"disable_web_page_preview"`
	ReplyMarkup           *telegramReplyMarkup `json:"reply_markup,omitempty"`
}

type telegramEditMessage struct {
	ChatID                int64  `json:"chat_id"`
	MessageID             int    `json:"message_id"`
	Text                  string `json:"text"`
	ParseMode             string `json:"parse_mode,omitempty"`
	DisableWebPagePreview bool   `json:"disable_web_page_preview"`
}

type telegramAnswerCallback struct {
	CallbackQueryID string `json:"callback_query_id"`
	Text            string `json:"text"`
	ShowAlert       bool   `json:"show_alert"`
}

type telegramResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description"`
}

// TelegramNotifier talks to the Telegram Bot API for payment moderation.
type TelegramNotifier struct {
	apiURL     string
	token      string
	chatID     string
	adminURL   string
	httpClient *http.Client
}

func NewTelegramNotifier(apiURL, token, chatID, adminURL string, timeout time.Duration) *TelegramNotifier {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &TelegramNotifier{
		apiURL:     strings.TrimRight(apiURL, "/"),
		token:      token,
		chatID:     chatID,
		adminURL:   adminURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// NotifyPaymentRequest posts the request to the moderators chat with
// approve and reject buttons.
func (t *TelegramNotifier) NotifyPaymentRequest(ctx context.Context, req *models.PaymentRequest) error {
	id := fmt.Sprint(req.ID)
	return t.call(ctx, "sendMessage", telegramSendMessage{
		ChatID:                t.chatID,
		Text:                  PaymentMessage(req, t.adminURL),
		ParseMode:             "Markdown",
		DisableWebPagePreview: true,
		ReplyMarkup: &telegramReplyMarkup{InlineKeyboard: [][]telegramButton{{
			{Text: "✅ Одобрить", CallbackData: CallbackApprove + id},
			{Text: "❌ Отклонить", CallbackData: CallbackReject + id},
		}}},
	})
}

// EditMessage replaces the text of a sent message. The text is sent as plain
// text: callbacks deliver the original message without its Markdown.
func (t *TelegramNotifier) EditMessage(ctx context.Context, chatID int64, messageID int, text string) error {
	return t.call(ctx, "editMessageText", telegramEditMessage{
		ChatID:                chatID,
		MessageID:             messageID,
		Text:                  text,
		DisableWebPagePreview: true,
	})
}

func (t *TelegramNotifier) AnswerCallback(ctx context.Context, callbackID, text string, alert bool) error {
	return t.call(ctx, "answerCallbackQuery", telegramAnswerCallback{
		CallbackQueryID: callbackID,
		Text:            text,
		ShowAlert:       alert,
	})
}

func (t *TelegramNotifier) call(ctx context.Context, method string, payload interface{}) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("encode %s: %w", method, err)
	}

	url := fmt.Sprintf("%s/bot%s/%s", t.apiURL, t.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build %s request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, err)
	}
	defer resp.Body.Close()

	var out telegramResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("telegram %s returned status %d", method, resp.StatusCode)
	}
	if resp.StatusCode != http.StatusOK || !out.OK {
		return fmt.Errorf("telegram %s failed: %s", method, out.Description)
	}
	return nil
}

// markdownEscaper escapes user input for the legacy Markdown parse mode.
var markdownEscaper = strings.NewReplacer("_", "\\_", "*", "\\*", "`", "\\`", "[", "\\[")

// PaymentMessage renders the moderation message of a request.
func PaymentMessage(req *models.PaymentRequest, adminURL string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🔔 *Новая заявка #%d*\n\n📧 Email: %s", req.ID, markdownEscaper.Replace(req.Email))
	if req.Phone != "" {
		fmt.Fprintf(&b, "\n📱 Телефон: %s", markdownEscaper.Replace(req.Phone))
	}
	fmt.Fprintf(&b, "\n💳 Тариф: %s\n💰 Сумма: *%d ₽*\n", plans.Label(req.PlanType), req.Amount)
	if req.ScreenshotURL != "" {
		fmt.Fprintf(&b, "\n📸 [Скриншот оплаты](%s)", req.ScreenshotURL)
	}
	if adminURL != "" {
		fmt.Fprintf(&b, "\n\n[Открыть админ-панель](%s)", adminURL)
	}
	return b.String()
}
