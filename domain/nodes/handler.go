package nodes

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

// Handler handles HTTP requests for nodes.
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler creates a new node handler.
func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With(logger.Scope("nodes.handler")),
	}
}

// List handles GET /api/v1/nodes.
func (h *Handler) List(c echo.Context) error {
	limit, offset, appErr := pagination.Parse(c.QueryParam("limit"), c.QueryParam("offset"))
	if appErr != nil {
		return appErr
	}

	params := ListParams{
		Type:         c.QueryParam("type"),
		ManuscriptID: c.QueryParam("manuscript_id"),
		Limit:        limit,
		Offset:       offset,
	}

	ns, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ns)
}

// Get handles GET /api/v1/nodes/:id.
func (h *Handler) Get(c echo.Context) error {
	n, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, n)
}

// Create handles POST /api/v1/nodes.
func (h *Handler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req CreateRequest
	if err := strictjson.Decode(body, &req, CreatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	n, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, n)
}

// Update handles PUT /api/v1/nodes/:id.
func (h *Handler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req UpdateRequest
	if err := strictjson.Decode(body, &req, UpdatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	n, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, n)
}

// Delete handles DELETE /api/v1/nodes/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
