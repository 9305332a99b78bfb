package middleware

import (
	"github.com/gin-gonic/gin"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
)

// ErrorHandlerMiddleware converts errors attached via c.Error into the
// uniform error envelope, mapping marked sentinels to HTTP statuses
func ErrorHandlerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := ierr.HTTPStatusFromErr(err)
		if status >= 500 {
			log.Errorw("request failed", "error", err, "path", c.Request.URL.Path)
		}

		c.JSON(status, ierr.NewErrorResponse(err))
	}
}
