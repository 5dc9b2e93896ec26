package middleware

import (
	"moi/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// Request ID header and gin context key
const (
	HeaderRequestID  = "X-Request-ID"
	ContextRequestID = "RequestID"
)

// RequestID tags every request with an ID, reusing the caller's X-Request-ID when present.
// The ID is stored on the gin context and on the request context, so provider
// calls made while serving the request log it too.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Set(ContextRequestID, requestID)
		c.Request = c.Request.WithContext(logger.WithRequestID(c.Request.Context(), requestID))
		c.Writer.Header().Set(HeaderRequestID, requestID)

		c.Next()
	}
}
