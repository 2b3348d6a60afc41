package handler

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/nursing-locator/internal/domain/repository"
	"go.uber.org/zap"
)

const healthPingTimeout = 2 * time.Second

// HealthHandler - проверка состояния сервиса
type HealthHandler struct {
	cacheRepo repository.CacheRepository
	logger    *zap.Logger
}

func NewHealthHandler(cacheRepo repository.CacheRepository, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		cacheRepo: cacheRepo,
		logger:    logger,
	}
}

// Health godoc
// @Summary Health check
// @Description Состояние сервиса и Redis. Без Redis сервис работает в режиме degraded: места загружаются без кеша.
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/health [get]
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), healthPingTimeout)
	defer cancel()

	status, redisStatus := "healthy", "ok"
	if err := h.cacheRepo.Ping(ctx); err != nil {
		h.logger.Warn("Redis ping failed", zap.Error(err))
		status, redisStatus = "degraded", "unavailable"
	}

	return c.JSON(fiber.Map{
		"status": status,
		"redis":  redisStatus,
		"time":   time.Now().UTC(),
	})
}
