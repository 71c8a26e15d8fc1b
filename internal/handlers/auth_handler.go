package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

const msgDeviceLimit = "Достигнут лимит устройств. Выйдите на другом устройстве."

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// SubscriberLogin issues a subscriber token for an entitled email and
// registers the calling device.
func (h *AuthHandler) SubscriberLogin(c *fiber.Ctx) error {
	var req dto.SubscriberLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.SubscriberLogin(c.UserContext(), req.Email, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		var denied *services.DeniedError
		switch {
		case errors.Is(err, services.ErrEmailRequired):
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		case errors.As(err, &denied):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: denied.Error(),
			})
		case errors.Is(err, services.ErrDeviceLimit):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: msgDeviceLimit,
			})
		}
		slog.Error("subscriber login failed", "email", req.Email, "action", "subscriber_login", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}

func (h *AuthHandler) AdminLogin(c *fiber.Ctx) error {
	var req dto.AdminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	resp, err := h.authService.AdminLogin(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(resp)
}
