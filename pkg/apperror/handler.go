package apperror

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
)

// HTTPErrorHandler returns an Echo error handler that renders every error
// as {"detail": <message>}. This is the canonical error handler used by
// both the production server and test servers.
func HTTPErrorHandler(log *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		detail := "An internal error occurred"

		switch e := err.(type) {
		case *Error:
			code = e.HTTPStatus
			detail = e.Message
		case *echo.HTTPError:
			code = e.Code
			if msg, ok := e.Message.(string); ok {
				detail = msg
			}
		}

		if code >= 500 {
			log.Error("request error",
				slog.Int("status", code),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			c.NoContent(code)
			return
		}
		c.JSON(code, map[string]any{"detail": detail})
	}
}
