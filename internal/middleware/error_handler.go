package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"incotermFinder/pkg/logger"
	jsonres "incotermFinder/pkg/response"

	"github.com/labstack/echo/v4"
)

// ErrorHandler renders errors that escape handlers (unknown routes, bad methods, panics
// caught by Recover) as JSON.
func ErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := "internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		status = he.Code
		message = fmt.Sprint(he.Message)
	}

	if status >= http.StatusInternalServerError {
		logger.Error("Unhandled request error",
			"trace_id", c.Get("trace_id"),
			"path", c.Path(),
			"error", err,
		)
	}

	code := strings.ToUpper(strings.ReplaceAll(http.StatusText(status), " ", "_"))
	body := jsonres.Error(code, message, nil)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, body)
	}
	if writeErr != nil {
		logger.Error("Failed to write error response", "error", writeErr)
	}
}
