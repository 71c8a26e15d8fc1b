package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/content"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
)

type ContentHandler struct{}

func NewContentHandler() *ContentHandler {
	return &ContentHandler{}
}

func (h *ContentHandler) List(c *fiber.Ctx) error {
	return c.JSON(content.Articles())
}

func (h *ContentHandler) Get(c *fiber.Ctx) error {
	a, ok := content.Article(c.Params("id"))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Article not found",
		})
	}
	return c.JSON(a)
}
