package middleware

import (
	"resume-builder-backend/internal/delivery/http/response"

	"github.com/gin-gonic/gin"
	"github.com/segmentio/ksuid"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags each request with a KSUID, or keeps a sane id supplied by a proxy.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" || len(id) > 64 {
			id = ksuid.New().String()
		}
		c.Set(response.RequestIDKey, id)
		c.Header(requestIDHeader, id)
		c.Next()
	}
}
