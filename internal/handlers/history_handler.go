package handlers

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
)

type HistoryHandler struct {
	store *history.Store
}

func NewHistoryHandler(store *history.Store) *HistoryHandler {
	return &HistoryHandler{store: store}
}

// List returns the calculations of the caller, newest first. ?limit=
// caps the count.
func (h *HistoryHandler) List(c *fiber.Ctx) error {
	email := middleware.ClaimsEmail(c)
	records, err := h.store.Recent(c.UserContext(), email, c.QueryInt("limit", 0))
	if err != nil {
		slog.Error("history load failed", "email", email, "action", "history_list", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(records)
}

func (h *HistoryHandler) Clear(c *fiber.Ctx) error {
	email := middleware.ClaimsEmail(c)
	if err := h.store.Clear(c.UserContext(), email); err != nil {
		slog.Error("history clear failed", "email", email, "action", "history_clear", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	return c.JSON(fiber.Map{"message": "History cleared"})
}
