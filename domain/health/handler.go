package health

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"

	"github.com/chonost/manuscript-os/internal/version"
	"github.com/chonost/manuscript-os/pkg/logger"
	"github.com/chonost/manuscript-os/pkg/metrics"
)

// Handler serves liveness, readiness and metrics endpoints.
type Handler struct {
	pool *pgxpool.Pool
	log  *slog.Logger
}

// NewHandler creates a new health handler.
func NewHandler(pool *pgxpool.Pool, log *slog.Logger) *Handler {
	return &Handler{
		pool: pool,
		log:  log.With(logger.Scope("health")),
	}
}

// Health handles GET /health: full status including a database ping.
func (h *Handler) Health(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	dbStatus := "ok"
	status := "healthy"
	code := http.StatusOK

	if err := h.pool.Ping(ctx); err != nil {
		h.log.Warn("database ping failed", logger.Error(err))
		dbStatus = "unreachable"
		status = "degraded"
		code = http.StatusServiceUnavailable
	}

	metrics.ObservePool(h.pool)

	return c.JSON(code, map[string]any{
		"status":  status,
		"service": version.Service,
		"version": version.Version,
		"checks": map[string]any{
			"database": dbStatus,
		},
	})
}

// Healthz handles GET /healthz: bare liveness, no dependencies checked.
func (h *Handler) Healthz(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

// Ready handles GET /ready: readiness gate on the datastore.
func (h *Handler) Ready(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
	defer cancel()

	if err := h.pool.Ping(ctx); err != nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]any{"status": "not ready"})
	}

	return c.JSON(http.StatusOK, map[string]any{"status": "ready"})
}
