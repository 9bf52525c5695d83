package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"incotermFinder/business/recommendation"
	"incotermFinder/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.SetNop()
	m.Run()
}

func TestTraceMiddleware_GeneratesID(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := TraceMiddleware()(func(c echo.Context) error {
		seen = recommendation.TraceIDFromContext(c.Request().Context())
		return c.NoContent(http.StatusNoContent)
	})

	require.NoError(t, h(c))
	assert.Len(t, seen, 36)
	assert.Equal(t, seen, rec.Header().Get(HeaderRequestID))
	assert.Equal(t, seen, c.Get("trace_id"))
}

func TestTraceMiddleware_ReusesHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(HeaderRequestID, "req-42")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var seen string
	h := TraceMiddleware()(func(c echo.Context) error {
		seen = recommendation.TraceIDFromContext(c.Request().Context())
		return nil
	})

	require.NoError(t, h(c))
	assert.Equal(t, "req-42", seen)
	assert.Equal(t, "req-42", rec.Header().Get(HeaderRequestID))
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()

	tests := []struct {
		name     string
		err      error
		wantCode int
		wantBody string
	}{
		{"http error", echo.NewHTTPError(http.StatusNotFound, "not here"), http.StatusNotFound, `"code":"NOT_FOUND"`},
		{"plain error", errors.New("boom"), http.StatusInternalServerError, `"message":"internal server error"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/x", nil), rec)

			ErrorHandler(tt.err, c)

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
