package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/sellora/sellora/internal/types"
	"github.com/teris-io/shortid"
)

// RequestIDMiddleware attaches a request ID to the context and response,
// honoring an inbound X-Request-ID when the caller supplies one
func RequestIDMiddleware(c *gin.Context) {
	requestID := c.GetHeader(types.HeaderRequestID)
	if requestID == "" {
		if generated, err := shortid.Generate(); err == nil {
			requestID = generated
		}
	}

	ctx := types.SetRequestID(c.Request.Context(), requestID)
	c.Request = c.Request.WithContext(ctx)
	c.Header(types.HeaderRequestID, requestID)
	c.Next()
}
