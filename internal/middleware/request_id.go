package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"multilingual-support/pkg/log"
)

// RequestID reuses the caller's X-Request-ID or generates one, echoes it on
// the response and stores it in the request context for the logger.
func (mw Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(HeaderRequestID)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Header(HeaderRequestID, id)
		c.Request = c.Request.WithContext(log.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}
