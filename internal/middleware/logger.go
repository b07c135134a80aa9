package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodgram/internal/logging"
	"foodgram/internal/pkg/reqctx"
	"foodgram/internal/pkg/response"
)

// RequestLogger writes one line per request.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		var ev *zerolog.Event
		switch {
		case status >= http.StatusInternalServerError:
			ev = logging.Ctx(c.Request.Context()).Error()
		case status >= http.StatusBadRequest:
			ev = logging.Ctx(c.Request.Context()).Warn()
		default:
			ev = logging.Ctx(c.Request.Context()).Info()
		}

		ev.Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Str("client_ip", c.ClientIP()).
			Int64("user_id", reqctx.FromGin(c).UserID).
			Msg("request")
	}
}

// ErrorLogger logs handler errors and recovers from panics.
func ErrorLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				logRequestError(c, start, "panic", err, debug.Stack())

				response.Abort(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal Server Error")
				return
			}

			for _, err := range c.Errors {
				logRequestError(c, start, fmt.Sprintf("%v", err.Type), err.Err, nil)
			}
		}()

		c.Next()
	}
}

func logRequestError(c *gin.Context, start time.Time, errType string, err error, stack []byte) {
	ev := logging.Ctx(c.Request.Context()).Error().
		Err(err).
		Str("type", errType).
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Int64("user_id", reqctx.FromGin(c).UserID).
		Str("request_id", requestID(c)).
		Dur("latency", time.Since(start))
	if stack != nil {
		ev = ev.Bytes("stack", stack)
	}
	ev.Msg("request_error")
}
