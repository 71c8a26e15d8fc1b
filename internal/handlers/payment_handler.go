package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/plans"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

const msgPaymentSubmitted = "Заявка принята и сохранена в админке"

type PaymentHandler struct {
	paymentService *services.PaymentService
}

func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

func (h *PaymentHandler) Plans(c *fiber.Ctx) error {
	return c.JSON(plans.Public())
}

func (h *PaymentHandler) Submit(c *fiber.Ctx) error {
	var req dto.SubmitPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	payment, err := h.paymentService.Submit(c.UserContext(), &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) ||
			errors.Is(err, services.ErrUnknownPlan) ||
			errors.Is(err, services.ErrInvalidScreenshot) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("payment submit failed", "email", req.Email, "plan_type", req.PlanType, "action", "payment_submit", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(dto.SubmitPaymentResponse{
		Success:   true,
		RequestID: payment.ID,
		Message:   msgPaymentSubmitted,
	})
}
