package api

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"net/http"
	"projecthub/api/errs"
	"projecthub/api/types"
	"time"
)

const RequestIDHeader = "X-Request-ID"

// RequestID reuses the caller's request id or makes one up.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// ZLogMiddleware logs every request and renders the envelope for errors the
// handlers pushed with c.Error.
func ZLogMiddleware(verbose bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()
		c.Next()

		if len(c.Errors) != 0 {
			err := c.Errors.Last().Err
			statusCode, message := errs.Resolve(err, verbose)
			event := log.Warn()
			if statusCode >= http.StatusInternalServerError {
				event = log.Error()
			}
			event.Err(err).
				Str("request_id", c.GetString("request_id")).
				Int("status", statusCode).
				Msg("request failed")

			if !c.Writer.Written() {
				var data any
				var setupErr *errs.SetupError
				if errors.As(err, &setupErr) {
					data = setupErr.Details(verbose)
				}
				c.AbortWithStatusJSON(statusCode, types.Failure(message, data))
			}
		}

		log.Debug().
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(startTime)).
			Str("ip", c.ClientIP()).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Str("request_id", c.GetString("request_id")).
			Msg("")
	}
}

// Recovery answers panics with the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		log.Error().
			Interface("panic", recovered).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("recovered from panic")
		c.AbortWithStatusJSON(http.StatusInternalServerError, types.Failure(errs.UnhandledMessage, nil))
	})
}

// SecureHeaders sets the usual hardening headers on every response.
func SecureHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "SAMEORIGIN")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("X-DNS-Prefetch-Control", "off")
		h.Set("Cross-Origin-Opener-Policy", "same-origin")
		c.Next()
	}
}

// Unavailable stands in for every data route while there is no database.
func Unavailable(cause error) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Error(&errs.SetupError{Cause: cause})
		c.Abort()
	}
}
