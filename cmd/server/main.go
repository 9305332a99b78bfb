package main

import (
	"context"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/grafana/pyroscope-go"
	"github.com/sellora/sellora/internal/api/v1"
	"github.com/sellora/sellora/internal/auth"
	"github.com/sellora/sellora/internal/cache"
	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/postgres"
	repo "github.com/sellora/sellora/internal/repository/postgres"
	"github.com/sellora/sellora/internal/rest"
	"github.com/sellora/sellora/internal/service"
	"go.uber.org/fx"
)

func main() {
	app := fx.New(
		fx.Provide(
			config.NewConfig,
			logger.NewLogger,
			postgres.NewClient,
			cache.Initialize,
			auth.NewProvider,
			repo.NewOrderRepository,
			repo.NewProductRepository,
			repo.NewCustomerRepository,
			newServiceParams,
			service.NewNoopEngagementMetricsProvider,
			service.NewAnalyticsService,
			v1.NewAnalyticsHandler,
			newHandlers,
			rest.NewRouter,
		),
		fx.Invoke(
			initSentry,
			initPyroscope,
			startServer,
		),
	)

	app.Run()
}

func newServiceParams(
	cfg *config.Configuration,
	log *logger.Logger,
	c cache.Cache,
	orderRepo order.Repository,
	productRepo product.Repository,
	customerRepo customer.Repository,
) service.ServiceParams {
	return service.ServiceParams{
		Logger:       log,
		Config:       cfg,
		Cache:        c,
		OrderRepo:    orderRepo,
		ProductRepo:  productRepo,
		CustomerRepo: customerRepo,
	}
}

func newHandlers(analytics *v1.AnalyticsHandler) rest.Handlers {
	return rest.Handlers{Analytics: analytics}
}

func initSentry(cfg *config.Configuration, log *logger.Logger) error {
	if !cfg.Sentry.Enabled {
		return nil
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:              cfg.Sentry.DSN,
		Environment:      cfg.Sentry.Environment,
		TracesSampleRate: cfg.Sentry.SampleRate,
	})
	if err != nil {
		log.Errorw("failed to initialize sentry", "error", err)
		return err
	}

	log.Infow("sentry initialized", "environment", cfg.Sentry.Environment)
	return nil
}

func initPyroscope(cfg *config.Configuration, log *logger.Logger) error {
	if !cfg.Pyroscope.Enabled {
		return nil
	}

	_, err := pyroscope.Start(pyroscope.Config{
		ApplicationName: "sellora",
		ServerAddress:   cfg.Pyroscope.ServerAddress,
	})
	if err != nil {
		log.Errorw("failed to start pyroscope", "error", err)
		return err
	}

	log.Infow("pyroscope profiling started", "server", cfg.Pyroscope.ServerAddress)
	return nil
}

func startServer(
	lc fx.Lifecycle,
	cfg *config.Configuration,
	log *logger.Logger,
	client *postgres.Client,
	router *gin.Engine,
) {
	srv := &http.Server{
		Addr:              cfg.Server.Address,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Infow("starting server", "address", cfg.Server.Address)
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatalw("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Infow("shutting down server")
			if cfg.Sentry.Enabled {
				sentry.Flush(2 * time.Second)
			}
			if err := srv.Shutdown(ctx); err != nil {
				return err
			}
			return client.Close()
		},
	})
}
