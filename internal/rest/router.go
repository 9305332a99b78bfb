package rest

import (
	"github.com/gin-gonic/gin"
	"github.com/sellora/sellora/internal/api/v1"
	"github.com/sellora/sellora/internal/auth"
	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/rest/middleware"
)

// Handlers groups the HTTP handlers wired into the router
type Handlers struct {
	Analytics *v1.AnalyticsHandler
}

// NewRouter assembles the gin engine with the standard middleware chain
func NewRouter(cfg *config.Configuration, log *logger.Logger, authProvider auth.Provider, handlers Handlers) *gin.Engine {
	if cfg.Deployment.Mode == config.ModeProd {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.RecoveryWithWriter(log.GetGinLogger()))
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.SentryMiddleware(cfg))
	router.Use(middleware.LoggingMiddleware(log))
	router.Use(middleware.ErrorHandlerMiddleware(log))

	router.GET("/health", v1.Health)

	private := router.Group("/v1")
	private.Use(middleware.AuthenticateMiddleware(authProvider, log))
	private.Use(middleware.SentryTenantContextMiddleware)
	{
		analytics := private.Group("/analytics")
		analytics.GET("/summary", handlers.Analytics.GetDashboardSummary)
		analytics.GET("/summary/export", handlers.Analytics.ExportDashboardSummary)
	}

	return router
}
