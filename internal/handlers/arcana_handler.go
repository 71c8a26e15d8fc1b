package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
)

// ArcanumSummary is what an anonymous or unpaid caller sees of an arcanum.
type ArcanumSummary struct {
	Number     arcana.Number `json:"number"`
	Title      string        `json:"title"`
	SimpleName string        `json:"simple_name"`
}

type ArcanaHandler struct {
	base *arcana.Base
	gate *access.Gate
}

func NewArcanaHandler(base *arcana.Base, checker access.Checker) *ArcanaHandler {
	return &ArcanaHandler{base: base, gate: access.NewGate(checker, nil)}
}

func summarize(d arcana.Description) ArcanumSummary {
	return ArcanumSummary{Number: d.Number, Title: d.Title, SimpleName: d.SimpleName}
}

func (h *ArcanaHandler) entitled(c *fiber.Ctx) bool {
	email := middleware.ClaimsEmail(c)
	if email == "" {
		return false
	}
	ent, _ := h.gate.Resolve(c.UserContext(), email)
	return ent.HasAccess
}

func (h *ArcanaHandler) List(c *fiber.Ctx) error {
	all := h.base.All()
	if h.entitled(c) {
		return c.JSON(all)
	}
	out := make([]ArcanumSummary, 0, len(all))
	for _, d := range all {
		out = append(out, summarize(d))
	}
	return c.JSON(out)
}

func (h *ArcanaHandler) Get(c *fiber.Ctx) error {
	n, err := strconv.Atoi(c.Params("number"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Arcanum number must be an integer",
		})
	}
	d, ok := h.base.Get(arcana.Number(n))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Arcanum not found",
		})
	}
	if h.entitled(c) {
		return c.JSON(d)
	}
	return c.JSON(summarize(d))
}
