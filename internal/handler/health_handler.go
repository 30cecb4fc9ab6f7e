package handler

import (
	"context"
	"time"

	"reading-quiz/internal/domain"
	"reading-quiz/internal/dto"
	"reading-quiz/internal/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports whether the database and cache are reachable.
type HealthHandler struct {
	pingDB func(ctx context.Context) error
	cache  domain.Cache
}

// NewHealthHandler creates a HealthHandler. cache may be nil when the
// service runs without Redis.
func NewHealthHandler(pingDB func(ctx context.Context) error, cache domain.Cache) *HealthHandler {
	return &HealthHandler{pingDB: pingDB, cache: cache}
}

// Health godoc
// @Summary Service health
// @Tags health
// @Produce json
// @Success 200 {object} dto.HealthResponse
// @Failure 503 {object} dto.HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthCheckTimeout)
	defer cancel()

	resp := dto.HealthResponse{Status: "ok", Database: "ok", Cache: "disabled"}
	if err := h.pingDB(ctx); err != nil {
		logger.Get().Error("Database health check failed", zap.Error(err))
		resp.Status, resp.Database = "unavailable", "error"
	}
	if h.cache != nil {
		resp.Cache = "ok"
		if err := h.cache.Ping(ctx); err != nil {
			// The service keeps working without the cache.
			logger.Get().Warn("Cache health check failed", zap.Error(err))
			resp.Cache = "error"
		}
	}

	if resp.Status != "ok" {
		return c.Status(fiber.StatusServiceUnavailable).JSON(resp)
	}
	return c.JSON(resp)
}
