package service

import (
	"context"

	"github.com/sellora/sellora/internal/domain/analytics"
	"github.com/sellora/sellora/internal/types"
)

// EngagementMetricsProvider supplies storefront engagement figures
// (conversion rate, bounce rate) from an external analytics pipeline.
// Returning nil metrics means "no data", which leaves the summary's
// engagement section absent rather than fabricated.
type EngagementMetricsProvider interface {
	GetEngagementMetrics(ctx context.Context, tenantID string, period types.TimeRange) (*analytics.EngagementMetrics, error)
}

type noopEngagementMetricsProvider struct{}

// NewNoopEngagementMetricsProvider returns a provider that reports no data.
// It is the default until a real engagement pipeline is connected.
func NewNoopEngagementMetricsProvider() EngagementMetricsProvider {
	return &noopEngagementMetricsProvider{}
}

func (p *noopEngagementMetricsProvider) GetEngagementMetrics(ctx context.Context, tenantID string, period types.TimeRange) (*analytics.EngagementMetrics, error) {
	return nil, nil
}
