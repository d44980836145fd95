package handler

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"inkq/internal/delivery/api/response"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const healthPingTimeout = 2 * time.Second

// HealthHandlerParams holds dependencies for HealthHandler, injected by Fx.
type HealthHandlerParams struct {
	fx.In

	DB     *gorm.DB
	Logger *slog.Logger
}

// HealthHandler reports whether the service can reach its database.
type HealthHandler struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewHealthHandler is the constructor for HealthHandler
func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{db: params.DB, logger: params.Logger}
}

// Check handles GET /health.
func (h *HealthHandler) Check(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), healthPingTimeout)
	defer cancel()

	sqlDB, err := h.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		h.logger.Warn("Health check failed", slog.Any("error", err))

		return response.Error(c, http.StatusServiceUnavailable, "UNHEALTHY", "Database unreachable", nil)
	}

	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
