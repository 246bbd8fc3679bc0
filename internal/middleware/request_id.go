package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	HeaderRequestID = "X-Request-ID"
	CtxRequestID    = "request_id"

	maxRequestIDLen = 128
)

// RequestID echoes a caller-supplied correlation id or mints one. Oversized
// ids are replaced so they cannot bloat logs and outbox headers.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRequestID, requestIDFor(c))
		c.Header(HeaderRequestID, c.GetString(CtxRequestID))
		c.Next()
	}
}

func requestIDFor(c *gin.Context) string {
	if rid := c.GetString(CtxRequestID); rid != "" {
		return rid
	}
	if rid := c.GetHeader(HeaderRequestID); rid != "" && len(rid) <= maxRequestIDLen {
		return rid
	}
	return uuid.NewString()
}
