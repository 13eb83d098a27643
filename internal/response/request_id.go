package response

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// ContextKeyRequestID is the Gin context key for the request ID.
	ContextKeyRequestID = "request_id"
	// HeaderRequestID carries the request ID in and out of the API so the
	// console can correlate a failed call with its audit and log entries.
	HeaderRequestID = "X-Request-ID"
)

// RequestIDMiddleware assigns every request an ID, honoring one supplied
// by the client and minting a UUID otherwise. The ID is echoed in the
// response header and embedded in the envelope metadata.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		reqID := c.GetHeader(HeaderRequestID)
		if reqID == "" {
			reqID = uuid.New().String()
		}
		c.Set(ContextKeyRequestID, reqID)
		c.Header(HeaderRequestID, reqID)
		c.Next()
	}
}
