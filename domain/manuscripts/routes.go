package manuscripts

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the manuscript endpoints under /api/v1.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/v1/manuscripts")

	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
