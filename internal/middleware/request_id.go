package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	// TraceIDHeader carries the trace ID between client and server
	TraceIDHeader = "X-Trace-ID"
	// TraceIDContextKey stores the trace ID on the echo context for
	// handlers and error responses
	TraceIDContextKey = "trace_id"
)

// RequestID tags every request with a trace ID so report and transaction
// errors can be correlated across logs, responses and metrics. A trace ID
// supplied by the caller is kept; otherwise a fresh uuid is issued.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := c.Request().Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID reads the trace ID off the echo context, empty when the
// request never passed through RequestID
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
