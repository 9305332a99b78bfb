package service

import (
	"context"
	"fmt"
	"time"

	"github.com/samber/lo"
	"github.com/sellora/sellora/internal/api/dto"
	"github.com/sellora/sellora/internal/cache"
	"github.com/sellora/sellora/internal/domain/analytics"
	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
	"github.com/sourcegraph/conc"
)

// AnalyticsService provides tenant dashboard analytics
type AnalyticsService interface {
	// GetDashboardSummary fetches and aggregates the dashboard summary for
	// the tenant in the context and the requested window
	GetDashboardSummary(ctx context.Context, req dto.GetDashboardSummaryRequest) (*dto.DashboardSummaryResponse, error)

	// ExportDashboardSummary renders the summary's product-type breakdown
	// and top products as CSV
	ExportDashboardSummary(ctx context.Context, req dto.GetDashboardSummaryRequest) ([]byte, error)
}

type analyticsService struct {
	ServiceParams
	engagement EngagementMetricsProvider
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(params ServiceParams, engagement EngagementMetricsProvider) AnalyticsService {
	return &analyticsService{
		ServiceParams: params,
		engagement:    engagement,
	}
}

// GetDashboardSummary fetches orders for the current and comparison periods
// plus catalog/customer enrichment, then runs the aggregation fold. Only the
// current-period orders fetch is fatal; everything else degrades to empty.
func (s *analyticsService) GetDashboardSummary(ctx context.Context, req dto.GetDashboardSummaryRequest) (*dto.DashboardSummaryResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	period := req.ResolveWindow(time.Now().UTC())

	// No tenant means nothing to summarize, not an error: serve the
	// structural fallback without touching the store
	tenantID := types.GetTenantID(ctx)
	if tenantID == "" {
		return &dto.DashboardSummaryResponse{Summary: analytics.EmptySummary(period)}, nil
	}

	previous := period.Previous()

	var (
		orders     []*order.Order
		prevOrders []*order.Order
		products   []*product.Product
		customers  []*customer.Customer

		ordersErr    error
		prevErr      error
		productsErr  error
		customersErr error
	)

	var wg conc.WaitGroup
	wg.Go(func() {
		orders, ordersErr = s.OrderRepo.ListByPeriod(ctx, period)
	})
	wg.Go(func() {
		prevOrders, prevErr = s.OrderRepo.ListByPeriod(ctx, previous)
	})
	wg.Go(func() {
		products, productsErr = s.listProductsCached(ctx, tenantID)
	})
	wg.Go(func() {
		customers, customersErr = s.listCustomersCached(ctx, tenantID)
	})
	wg.Wait()

	// The primary orders query is the one fatal dependency
	if ordersErr != nil {
		return nil, ierr.WithError(ordersErr).
			WithHint("Failed to fetch orders for the dashboard").
			Mark(ierr.ErrDatabase)
	}

	// Non-critical sub-fetches degrade to empty sets
	if prevErr != nil {
		s.Logger.Warnw("failed to fetch comparison period orders, trends default to stable",
			"error", prevErr, "tenant_id", tenantID)
		prevOrders = nil
	}
	if productsErr != nil {
		s.Logger.Warnw("failed to fetch product catalog, product aggregates will be empty",
			"error", productsErr, "tenant_id", tenantID)
		products = nil
	}
	if customersErr != nil {
		s.Logger.Warnw("failed to fetch customer directory, rankings will be unenriched",
			"error", customersErr, "tenant_id", tenantID)
		customers = nil
	}

	timezone := req.Timezone
	if timezone == "" {
		timezone = s.Config.Analytics.DefaultTimezone
	}

	summary := analytics.Aggregate(analytics.AggregateInput{
		Orders:         orders,
		PreviousOrders: prevOrders,
		Products:       lo.KeyBy(products, func(p *product.Product) string { return p.ID }),
		Customers:      lo.KeyBy(customers, func(c *customer.Customer) string { return c.ID }),
		Period:         period,
		Location:       types.LoadLocationOrUTC(timezone),
	})

	if s.engagement != nil {
		metrics, err := s.engagement.GetEngagementMetrics(ctx, tenantID, period)
		if err != nil {
			s.Logger.Warnw("failed to fetch engagement metrics", "error", err, "tenant_id", tenantID)
		} else if metrics != nil {
			summary.Engagement = metrics
		}
	}

	return &dto.DashboardSummaryResponse{Summary: summary}, nil
}

// listProductsCached reads the tenant catalog through the enrichment cache
func (s *analyticsService) listProductsCached(ctx context.Context, tenantID string) ([]*product.Product, error) {
	key := fmt.Sprintf("analytics:products:%s", tenantID)
	if v, ok := s.Cache.Get(ctx, key); ok {
		if typed, ok := cache.UnmarshalCacheValue[[]*product.Product](v); ok {
			return *typed, nil
		}
	}

	products, err := s.ProductRepo.ListByTenant(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, &products, cache.ExpiryEnrichment)
	return products, nil
}

// listCustomersCached reads the tenant customer directory through the enrichment cache
func (s *analyticsService) listCustomersCached(ctx context.Context, tenantID string) ([]*customer.Customer, error) {
	key := fmt.Sprintf("analytics:customers:%s", tenantID)
	if v, ok := s.Cache.Get(ctx, key); ok {
		if typed, ok := cache.UnmarshalCacheValue[[]*customer.Customer](v); ok {
			return *typed, nil
		}
	}

	customers, err := s.CustomerRepo.ListByTenant(ctx)
	if err != nil {
		return nil, err
	}
	s.Cache.Set(ctx, key, &customers, cache.ExpiryEnrichment)
	return customers, nil
}
