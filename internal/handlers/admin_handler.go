package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

type AdminHandler struct {
	paymentService *services.PaymentService
	accessService  *services.AccessService
}

func NewAdminHandler(paymentService *services.PaymentService, accessService *services.AccessService) *AdminHandler {
	return &AdminHandler{paymentService: paymentService, accessService: accessService}
}

// ListRequests GET /api/admin/requests?status=pending|approved|rejected
func (h *AdminHandler) ListRequests(c *fiber.Ctx) error {
	requests, err := h.paymentService.List(c.UserContext(), c.Query("status"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch payment requests",
		})
	}
	return c.JSON(requests)
}

func (h *AdminHandler) Approve(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	payment, grant, err := h.paymentService.Approve(c.UserContext(), uint(id), middleware.AdminIdentity(c))
	if err != nil {
		return h.moderationError(c, err)
	}
	return c.JSON(fiber.Map{"request": payment, "access": grant})
}

func (h *AdminHandler) Reject(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request ID",
		})
	}

	payment, err := h.paymentService.Reject(c.UserContext(), uint(id), middleware.AdminIdentity(c))
	if err != nil {
		return h.moderationError(c, err)
	}
	return c.JSON(fiber.Map{"request": payment})
}

func (h *AdminHandler) moderationError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrPaymentNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrAlreadyProcessed):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	case errors.Is(err, services.ErrUnknownPlan):
		return c.Status(fiber.StatusUnprocessableEntity).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	slog.Error("payment moderation failed", "action", "payment_moderate", "error", err)
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
		Error: true, Message: "Failed to process payment request",
	})
}

// Grant issues access directly, without a payment request.
func (h *AdminHandler) Grant(c *fiber.Ctx) error {
	var req dto.GrantAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	grant, err := h.accessService.Grant(c.UserContext(), req.Email, req.PlanType, middleware.AdminIdentity(c))
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) || errors.Is(err, services.ErrUnknownPlan) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("access grant failed", "email", req.Email, "plan_type", req.PlanType, "action", "grant", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to grant access",
		})
	}
	return c.Status(fiber.StatusCreated).JSON(grant)
}

func (h *AdminHandler) Revoke(c *fiber.Ctx) error {
	if err := h.accessService.Revoke(c.UserContext(), c.Params("email")); err != nil {
		if errors.Is(err, services.ErrGrantNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to revoke access",
		})
	}
	return c.JSON(fiber.Map{"message": "Access revoked"})
}
