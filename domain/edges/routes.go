package edges

import "github.com/labstack/echo/v4"

// RegisterRoutes mounts the edge endpoints under /api/v1.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	g := e.Group("/api/v1/edges")

	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}
