package edges

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
	"github.com/chonost/manuscript-os/pkg/pagination"
	"github.com/chonost/manuscript-os/pkg/strictjson"
)

// Handler handles HTTP requests for edges.
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler creates a new edge handler.
func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With(logger.Scope("edges.handler")),
	}
}

// List handles GET /api/v1/edges.
func (h *Handler) List(c echo.Context) error {
	limit, offset, appErr := pagination.Parse(c.QueryParam("limit"), c.QueryParam("offset"))
	if appErr != nil {
		return appErr
	}

	params := ListParams{
		SourceID: c.QueryParam("source_id"),
		TargetID: c.QueryParam("target_id"),
		Type:     c.QueryParam("type"),
		Limit:    limit,
		Offset:   offset,
	}

	es, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, es)
}

// Get handles GET /api/v1/edges/:id.
func (h *Handler) Get(c echo.Context) error {
	e, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, e)
}

// Create handles POST /api/v1/edges.
func (h *Handler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req CreateRequest
	if err := strictjson.Decode(body, &req, CreatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	e, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, e)
}

// Update handles PUT /api/v1/edges/:id.
func (h *Handler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req UpdateRequest
	if err := strictjson.Decode(body, &req, UpdatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	e, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, e)
}

// Delete handles DELETE /api/v1/edges/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
