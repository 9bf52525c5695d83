package middleware

import (
	"incotermFinder/business/recommendation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const HeaderRequestID = "X-Request-ID"

// TraceMiddleware tags each request with a trace id, reusing the caller's X-Request-ID when
// present, and makes it available to services through the request context.
func TraceMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(HeaderRequestID)
			if traceID == "" || len(traceID) > 128 {
				traceID = uuid.NewString()
			}

			req := c.Request()
			c.SetRequest(req.WithContext(recommendation.ContextWithTraceID(req.Context(), traceID)))
			c.Set("trace_id", traceID)
			c.Response().Header().Set(HeaderRequestID, traceID)

			return next(c)
		}
	}
}
