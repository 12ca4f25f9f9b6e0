package http

import (
	"errors"
	"net/http"

	charmLog "github.com/charmbracelet/log"
	"github.com/labstack/echo/v4"
)

// ErrorHandler renders every error as {"error": ...}. Handlers may pass an
// echo.Map as the message to add fields.
func ErrorHandler(logger *charmLog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		var body interface{} = echo.Map{"error": http.StatusText(code)}

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				body = echo.Map{"error": m}
			case echo.Map:
				body = m
			default:
				body = echo.Map{"error": http.StatusText(code)}
			}
		} else {
			logger.Error("unhandled error", "method", c.Request().Method, "path", c.Path(), "err", err)
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.JSON(code, body)
		}
		if err != nil {
			logger.Error("failed to write error response", "err", err)
		}
	}
}
