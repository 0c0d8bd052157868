package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/trace"

	"github.com/yungbote/portfolio-backend/internal/platform/ctxutil"
)

const (
	headerTraceID   = "X-Trace-Id"
	headerRequestID = "X-Request-Id"

	maxCorrelationIDLen = 128
)

// AttachTraceContext puts request and trace ids on the request context and
// echoes them back. Client-supplied ids are kept only when they look like ids;
// an active span's trace id wins over the header.
func AttachTraceContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		td := &ctxutil.TraceData{
			RequestID: correlationID(c.GetHeader(headerRequestID)),
			TraceID:   correlationID(c.GetHeader(headerTraceID)),
		}
		if sc := trace.SpanContextFromContext(c.Request.Context()); sc.HasTraceID() {
			td.TraceID = sc.TraceID().String()
		}
		if td.RequestID == "" {
			td.RequestID = uuid.NewString()
		}
		if td.TraceID == "" {
			td.TraceID = td.RequestID
		}

		c.Request = c.Request.WithContext(ctxutil.WithTraceData(c.Request.Context(), td))
		c.Set("request_id", td.RequestID)
		h := c.Writer.Header()
		h.Set(headerRequestID, td.RequestID)
		h.Set(headerTraceID, td.TraceID)
		c.Next()
	}
}

// correlationID returns raw if it is a short token of [A-Za-z0-9._-], else "".
func correlationID(raw string) string {
	if raw == "" || len(raw) > maxCorrelationIDLen {
		return ""
	}
	for i := 0; i < len(raw); i++ {
		ch := raw[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z', ch >= '0' && ch <= '9':
		case ch == '-', ch == '_', ch == '.':
		default:
			return ""
		}
	}
	return raw
}
