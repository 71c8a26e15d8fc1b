package handlers

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

type AccessHandler struct {
	accessService *services.AccessService
	devices       *services.DeviceService
}

func NewAccessHandler(accessService *services.AccessService, devices *services.DeviceService) *AccessHandler {
	return &AccessHandler{accessService: accessService, devices: devices}
}

// Check answers GET /api/access/check?email=. This is the endpoint the
// access client calls.
func (h *AccessHandler) Check(c *fiber.Ctx) error {
	email := c.Query("email")
	ent, err := h.accessService.Check(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("access check failed", "email", email, "action", "access_check", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(ent)
}

// Devices is the POST variant of the check: the entitlement plus the
// active device sessions of the email.
func (h *AccessHandler) Devices(c *fiber.Ctx) error {
	var req dto.SubscriberLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	ctx := c.UserContext()
	ent, err := h.accessService.Check(ctx, req.Email)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		slog.Error("access check failed", "email", req.Email, "action", "access_check", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	devices, err := h.devices.List(ctx, req.Email, c.IP(), c.Get(fiber.HeaderUserAgent))
	if err != nil {
		slog.Error("device list failed", "email", req.Email, "action", "device_list", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	return c.JSON(dto.DevicesResponse{
		Entitlement: ent,
		Devices:     devices,
		ActiveCount: len(devices),
		MaxDevices:  h.devices.MaxDevices(),
	})
}

// Logout ends the device session of the caller. The email comes from the
// token, or from ?email= for callers without one.
func (h *AccessHandler) Logout(c *fiber.Ctx) error {
	email := middleware.ClaimsEmail(c)
	if email == "" {
		email = c.Query("email")
	}
	if email == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: services.ErrEmailRequired.Error(),
		})
	}

	if err := h.devices.Logout(c.UserContext(), email, c.IP(), c.Get(fiber.HeaderUserAgent)); err != nil {
		slog.Error("device logout failed", "email", email, "action", "device_logout", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to logout",
		})
	}
	return c.JSON(fiber.Map{"message": "Logged out successfully"})
}
