// Package middleware holds the gin middleware shared by the HTTP API:
// request IDs, request logging, metrics, and CORS.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// RequestIDHeader is the header the request ID is read from and echoed
	// back on.
	RequestIDHeader = "X-Request-ID"

	// ContextRequestIDKey is the gin context key the request ID is stored
	// under.
	ContextRequestIDKey = "request_id"
)

// RequestID assigns every request an ID, reusing the client-supplied one when
// present so IDs propagate across services.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(ContextRequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the request ID for the current request, or "" when the
// RequestID middleware is not installed.
func GetRequestID(c *gin.Context) string {
	return c.GetString(ContextRequestIDKey)
}

//Personal.AI order the ending
