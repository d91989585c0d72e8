// Package middleware provides Echo middleware for the arbitrack API server.
package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const requestIDHeader = "X-Request-ID"

// RequestLog returns Echo middleware that emits one structured line per
// request. A request ID is taken from the X-Request-ID header or generated,
// stored on the echo context, and echoed back in the response header. Server
// errors log at error level, client errors at warn.
func RequestLog(log *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			reqID := ensureRequestID(c)

			err := next(c)

			status := c.Response().Status
			attrs := []any{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", reqID,
			}
			switch {
			case status >= 500:
				log.Error("request", attrs...)
			case status >= 400:
				log.Warn("request", attrs...)
			default:
				log.Info("request", attrs...)
			}

			return err
		}
	}
}

// ensureRequestID resolves the request ID for a request, minting one when the
// client did not send an X-Request-ID header.
func ensureRequestID(c echo.Context) string {
	reqID := c.Request().Header.Get(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}

	c.Set("request_id", reqID)
	c.Response().Header().Set(requestIDHeader, reqID)
	return reqID
}
