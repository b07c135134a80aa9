package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodgram/internal/logging"
)

const (
	HeaderRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
	maxRequestIDLen = 64
)

// RequestID propagates or generates X-Request-ID and attaches a request
// scoped logger to the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Set(keyRequestID, id)
		c.Writer.Header().Set(HeaderRequestID, id)

		l := logging.Logger().With().Str("request_id", id).Logger()
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), l))

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	return c.GetString(keyRequestID)
}

// validRequestID accepts up to 64 characters of [A-Za-z0-9._-].
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, r := range id {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '-', r == '_', r == '.':
		default:
			return false
		}
	}
	return true
}
