package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/arcana"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/database"
	"github.com/ahmetcoskunkizilkaya/destiny-matrix/internal/dto"
)

// CacheChecker is implemented by the Redis history store.
type CacheChecker interface {
	Health(ctx context.Context) error
}

type HealthHandler struct {
	cache CacheChecker
	base  *arcana.Base
}

// NewHealthHandler takes a nil cache when history is kept in the database.
func NewHealthHandler(cache CacheChecker, base *arcana.Base) *HealthHandler {
	return &HealthHandler{cache: cache, base: base}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	dbStatus := "ok"
	if err := database.Ping(); err != nil {
		dbStatus = "unhealthy: " + err.Error()
	}

	cacheStatus := "disabled"
	if h.cache != nil {
		cacheStatus = "ok"
		if err := h.cache.Health(c.UserContext()); err != nil {
			cacheStatus = "unhealthy: " + err.Error()
		}
	}

	return c.JSON(dto.HealthResponse{
		Status:    "ok",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		DB:        dbStatus,
		Cache:     cacheStatus,
		Arcana:    len(h.base.All()),
	})
}
