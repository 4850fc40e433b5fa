package apperror

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, "/api/v1/nodes", nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func decodeDetail(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	detail, ok := body["detail"].(string)
	require.True(t, ok, "response must carry a detail string")
	return detail
}

func TestHTTPErrorHandler_AppError(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodGet)

	handler(NewNotFound("Edge"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Edge not found", decodeDetail(t, rec))
}

func TestHTTPErrorHandler_EchoHTTPError(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodGet)

	handler(echo.NewHTTPError(http.StatusNotFound, "Not Found"), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", decodeDetail(t, rec))
}

func TestHTTPErrorHandler_UnknownError(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodGet)

	handler(errors.New("pq: SSL connection has been closed unexpectedly"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	// Internals must never leak into the response.
	assert.Equal(t, "An internal error occurred", decodeDetail(t, rec))
}

func TestHTTPErrorHandler_HeadRequest(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodHead)

	handler(ErrNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestHTTPErrorHandler_CommittedResponse(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodGet)

	require.NoError(t, c.JSON(http.StatusOK, map[string]string{"status": "ok"}))
	handler(ErrInternal, c)

	// The already-committed response must be left alone.
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHTTPErrorHandler_StoreUnavailable(t *testing.T) {
	handler := HTTPErrorHandler(slog.Default())
	c, rec := newTestContext(t, http.MethodGet)

	handler(ErrStoreUnavailable, c)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "Datastore is unavailable", decodeDetail(t, rec))
}
