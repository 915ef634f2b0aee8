package handler

import (
	"learnhub/internal/domain"
	"learnhub/internal/dto"
	"learnhub/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

// HealthHandler reports liveness of the server and its backing services.
type HealthHandler struct {
	db    *sqlx.DB
	cache domain.Cache
}

// NewHealthHandler creates a new HealthHandler instance
func NewHealthHandler(db *sqlx.DB, cache domain.Cache) *HealthHandler {
	return &HealthHandler{db: db, cache: cache}
}

// Check godoc
// @Summary Liveness check
// @Description Reports whether the server and its dependencies are reachable
// @Tags health
// @Produce json
// @Success 200 {object} dto.Envelope
// @Router /health [get]
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{"server": "ok"}

	if h.db != nil {
		if err := h.db.PingContext(c.Context()); err != nil {
			logger.Get().Warn("Health check: database unreachable", zap.Error(err))
			status["database"] = "unreachable"
		} else {
			status["database"] = "ok"
		}
	}

	if h.cache != nil {
		if err := h.cache.Ping(c.Context()); err != nil {
			logger.Get().Warn("Health check: cache unreachable", zap.Error(err))
			status["cache"] = "unreachable"
		} else {
			status["cache"] = "ok"
		}
	}

	return c.JSON(dto.OK(status))
}
