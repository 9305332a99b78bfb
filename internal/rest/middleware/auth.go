package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sellora/sellora/internal/auth"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/types"
)

// AuthenticateMiddleware validates the bearer token and stamps the resolved
// tenant and user into the request context. Every tenant-scoped read below
// this point relies on those context values.
func AuthenticateMiddleware(provider auth.Provider, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ierr.NewErrorResponse(
				ierr.NewError("missing authorization header").
					WithHint("Provide a bearer token").
					Mark(ierr.ErrPermissionDenied),
			))
			return
		}

		claims, err := provider.ValidateToken(c.Request.Context(), token)
		if err != nil {
			log.Warnw("token validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, ierr.NewErrorResponse(err))
			return
		}

		ctx := types.SetUserID(c.Request.Context(), claims.UserID)
		ctx = types.SetTenantID(ctx, claims.TenantID)
		c.Request = c.Request.WithContext(ctx)

		// Mirror into gin's keys for the logging middleware
		c.Set("user_id", claims.UserID)
		c.Set("tenant_id", claims.TenantID)

		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader(types.HeaderAuthorization)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
