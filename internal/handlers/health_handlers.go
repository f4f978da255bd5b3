package handlers

import (
	"net/http"

	"kantinku/internal/caching"
	"kantinku/internal/repositories"

	"github.com/labstack/echo/v4"
)

// HealthHandlers reports liveness of the service and its dependencies.
type HealthHandlers struct {
	db    repositories.Database
	cache caching.CacheService
}

func NewHealthHandlers(db repositories.Database, cache caching.CacheService) *HealthHandlers {
	return &HealthHandlers{db: db, cache: cache}
}

// Health handles GET /health
func (h *HealthHandlers) Health(c echo.Context) error {
	ctx := c.Request().Context()
	status := map[string]string{
		"status":   "ok",
		"database": "ok",
		"cache":    "ok",
	}
	code := http.StatusOK

	if err := h.db.QueryRow(ctx, "SELECT 1").Scan(new(int)); err != nil {
		status["database"] = "unreachable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	if err := h.cache.Ping(ctx); err != nil {
		status["cache"] = "unreachable"
		status["status"] = "degraded"
		code = http.StatusServiceUnavailable
	}
	return c.JSON(code, status)
}
