package manuscripts

import (
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/chonost/manuscript-os/pkg/apperror"
	"github.com/chonost/manuscript-os/pkg/logger"
	"github.com/chonost/manuscript-os/pkg/pagination"
	"github.com/chonost/manuscript-os/pkg/strictjson"
)

// Handler handles HTTP requests for manuscripts.
type Handler struct {
	service *Service
	log     *slog.Logger
}

// NewHandler creates a new manuscript handler.
func NewHandler(service *Service, log *slog.Logger) *Handler {
	return &Handler{
		service: service,
		log:     log.With(logger.Scope("manuscripts.handler")),
	}
}

// parseBoolParam reads an optional boolean query value, accepting the
// usual tokens (true/false, 1/0, t/f in any case).
func parseBoolParam(raw, name string) (bool, *apperror.Error) {
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, apperror.NewBadRequest(name + " must be a boolean")
	}
	return v, nil
}

// List handles GET /api/v1/manuscripts.
func (h *Handler) List(c echo.Context) error {
	limit, offset, appErr := pagination.Parse(c.QueryParam("limit"), c.QueryParam("offset"))
	if appErr != nil {
		return appErr
	}

	includeArchived, appErr := parseBoolParam(c.QueryParam("include_archived"), "include_archived")
	if appErr != nil {
		return appErr
	}

	params := ListParams{
		IncludeArchived: includeArchived,
		UserID:          c.QueryParam("user_id"),
		Limit:           limit,
		Offset:          offset,
	}

	ms, err := h.service.List(c.Request().Context(), params)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ms)
}

// Get handles GET /api/v1/manuscripts/:id.
func (h *Handler) Get(c echo.Context) error {
	m, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

// Create handles POST /api/v1/manuscripts.
func (h *Handler) Create(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req CreateRequest
	if err := strictjson.Decode(body, &req, CreatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	m, err := h.service.Create(c.Request().Context(), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, m)
}

// Update handles PUT /api/v1/manuscripts/:id.
func (h *Handler) Update(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return apperror.NewBadRequest("failed to read request body")
	}

	var req UpdateRequest
	if err := strictjson.Decode(body, &req, UpdatableFields...); err != nil {
		return apperror.NewBadRequest(err.Error())
	}

	m, err := h.service.Update(c.Request().Context(), c.Param("id"), req)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, m)
}

// Delete handles DELETE /api/v1/manuscripts/:id.
func (h *Handler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}
