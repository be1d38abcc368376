package middleware

import (
	"net/http"
	"time"

	"wallet-custody/pkg/apperror"
	"wallet-custody/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	// HeaderOwnerID carries the owner identity supplied by the upstream
	// identity provider. The custody core trusts this reference.
	HeaderOwnerID = "X-Owner-ID"

	// Context keys
	CtxOwnerID   = "owner_id"
	CtxRequestID = "request_id"
)

// RequestID assigns every request a UUID used in response envelopes and logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(CtxRequestID, uuid.NewString())
		c.Next()
	}
}

// OwnerIdentity extracts and parses the trusted owner-identity header.
// Routes behind this middleware can read CtxOwnerID as uuid.UUID.
func OwnerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.GetHeader(HeaderOwnerID)
		if raw == "" {
			response.Error(c, apperror.Validation("missing X-Owner-ID header"))
			c.Abort()
			return
		}
		ownerID, err := uuid.Parse(raw)
		if err != nil {
			response.Error(c, apperror.Validation("X-Owner-ID must be a UUID"))
			c.Abort()
			return
		}
		c.Set(CtxOwnerID, ownerID)
		c.Next()
	}
}

// RequestLogger creates a middleware that logs every HTTP request.
func RequestLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		status := c.Writer.Status()

		event := log.Info()
		if status >= http.StatusInternalServerError {
			event = log.Error()
		} else if status >= http.StatusBadRequest {
			event = log.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", status).
			Dur("latency", latency).
			Str("client_ip", c.ClientIP()).
			Str("request_id", c.GetString(CtxRequestID)).
			Msg("http request")
	}
}

// Recovery creates a panic recovery middleware.
func Recovery(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.Error().Interface("panic", r).Str("path", c.Request.URL.Path).Msg("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error_code": "SYS_001",
					"message":    "Internal server error",
				})
			}
		}()
		c.Next()
	}
}

// MaxBodySize limits request body size at the network reader level.
// Once the limit is exceeded the reader returns an error and the
// request is rejected with 413 Payload Too Large.
func MaxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body != nil {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		}
		c.Next()
	}
}
