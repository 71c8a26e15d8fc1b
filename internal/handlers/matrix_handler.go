package handlers

import (
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/access"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/history"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/matrix"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/metrics"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/middleware"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/presentation"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/report"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/services"
)

type MatrixHandler struct {
	base          *arcana.Base
	accessService *services.AccessService
	gate          *access.Gate
	history       *history.Store
	metrics       *metrics.Metrics
	origin        string
}

func NewMatrixHandler(base *arcana.Base, accessService *services.AccessService, store *history.Store, m *metrics.Metrics, origin string) *MatrixHandler {
	return &MatrixHandler{
		base:          base,
		accessService: accessService,
		gate:          access.NewGate(accessService, nil),
		history:       store,
		metrics:       m,
		origin:        origin,
	}
}

// subject validates the birth date and name of a request.
func subject(birthDate, name string) (matrix.Result, error) {
	birth, err := matrix.ParseBirthDate(birthDate)
	if err != nil {
		return matrix.Result{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return matrix.Result{}, &matrix.ValidationError{Field: "name", Reason: "is required"}
	}
	return matrix.Compute(birth, name), nil
}

// Calculate computes the matrix. The four numbers are always returned; the
// detailed sections only for an entitled caller.
func (h *MatrixHandler) Calculate(c *fiber.Ctx) error {
	var req dto.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	r, err := subject(req.BirthDate, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	email := middleware.ClaimsEmail(c)
	r.Email = email

	view := presentation.NewView(h.base)
	view.Show(r)
	for _, id := range req.Expanded {
		if err := view.Toggle(presentation.SectionID(id)); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error() + ": " + id,
			})
		}
	}
	view.Refresh(c.UserContext(), h.gate, email)
	h.metrics.IncrementCalculations()

	if email != "" && h.history != nil {
		if err := h.history.Append(c.UserContext(), email, history.NewRecord(r, time.Now())); err != nil {
			slog.Warn("history append failed", "email", email, "action", "history_append", "error", err)
		}
	}

	return c.JSON(view.Render())
}

// Share renders the plain-text report for an entitled caller.
func (h *MatrixHandler) Share(c *fiber.Ctx) error {
	var req dto.ShareRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	r, err := subject(req.BirthDate, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	email := middleware.ClaimsEmail(c)
	ent, err := h.accessService.Check(c.UserContext(), email)
	if err != nil {
		if errors.Is(err, services.ErrEmailRequired) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		slog.Error("access check failed", "email", email, "action", "share", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}
	if !ent.HasAccess {
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
			Error: true, Message: ent.Message,
		})
	}

	view := presentation.NewView(h.base)
	view.Show(r)
	set, syn, _ := view.Synthesis()

	return c.JSON(dto.ShareResponse{
		Text: report.FormatShareText(r, set, syn, report.ShareOptions{
			Origin:           h.origin,
			OmitProfessional: req.OmitProfessional,
		}),
	})
}

// Export consumes one download and returns the export document.
func (h *MatrixHandler) Export(c *fiber.Ctx) error {
	var req dto.CalculateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	r, err := subject(req.BirthDate, req.Name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}
	email := middleware.ClaimsEmail(c)
	r.Email = email

	ent, err := h.accessService.ConsumeDownload(c.UserContext(), email, r)
	if err != nil {
		var denied *services.DeniedError
		switch {
		case errors.As(err, &denied):
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: denied.Error(),
			})
		case errors.Is(err, services.ErrEmailRequired):
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}
		slog.Error("export failed", "email", email, "action", "export", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Internal server error",
		})
	}

	view := presentation.NewView(h.base)
	view.Show(r)
	set, _, _ := view.Synthesis()
	h.metrics.IncrementExports()

	return c.JSON(dto.ExportResponse{
		Document:    report.FormatExportDocument(r, set),
		Entitlement: ent,
	})
}
