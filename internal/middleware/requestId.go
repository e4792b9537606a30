package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-Id"

	requestIDKey = "requestId"
)

// RequestID assigns each request a uuid, echoed in the response header and
// available to handlers for log correlation. An inbound X-Request-Id is kept.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or "" outside it.
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
