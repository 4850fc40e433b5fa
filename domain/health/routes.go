package health

import (
	"github.com/labstack/echo/v4"

	"github.com/chonost/manuscript-os/pkg/metrics"
)

// RegisterRoutes mounts the operational endpoints at the server root.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/health", h.Health)
	e.GET("/healthz", h.Healthz)
	e.GET("/ready", h.Ready)
	e.GET("/metrics", metrics.Handler())
}
