package analytics

import (
	"time"

	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
)

// OverviewSummary holds the headline figures for the dashboard period
type OverviewSummary struct {
	TotalRevenue      decimal.Decimal `json:"total_revenue"`
	TotalOrders       int             `json:"total_orders"`
	TotalCustomers    int             `json:"total_customers"`
	AverageOrderValue decimal.Decimal `json:"average_order_value"`
	GrowthPercent     decimal.Decimal `json:"growth_percent"`
}

// ProductTypeStats holds the per-product-type aggregates
type ProductTypeStats struct {
	Revenue      decimal.Decimal `json:"revenue"`
	OrderCount   int             `json:"order_count"`
	UnitsSold    int64           `json:"units_sold"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// ProductTypeBreakdown maps every known product type to its stats. The key
// set is closed: all types are present even with zero activity.
type ProductTypeBreakdown map[types.ProductType]*ProductTypeStats

// NewProductTypeBreakdown returns a breakdown with every product type
// initialized to zero values
func NewProductTypeBreakdown() ProductTypeBreakdown {
	breakdown := make(ProductTypeBreakdown, len(types.ProductTypeValues()))
	for _, pt := range types.ProductTypeValues() {
		breakdown[pt] = &ProductTypeStats{
			Revenue:      decimal.Zero,
			AveragePrice: decimal.Zero,
		}
	}
	return breakdown
}

// TimeBucket is one calendar day of activity in the tenant's locale.
// Only days with at least one order appear in a series.
type TimeBucket struct {
	Date          string                                `json:"date"` // YYYY-MM-DD
	Revenue       decimal.Decimal                       `json:"revenue"`
	OrderCount    int                                   `json:"order_count"`
	RevenueByType map[types.ProductType]decimal.Decimal `json:"revenue_by_type"`
}

// ProductRanking is one entry in the top-products list
type ProductRanking struct {
	ProductID   string            `json:"product_id"`
	Name        string            `json:"name"`
	ProductType types.ProductType `json:"product_type"`
	Revenue     decimal.Decimal   `json:"revenue"`
	UnitsSold   int64             `json:"units_sold"`
	OrderCount  int               `json:"order_count"`
}

// CustomerRanking is one entry in the top-customers list
type CustomerRanking struct {
	CustomerID  string          `json:"customer_id"`
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	TotalSpent  decimal.Decimal `json:"total_spent"`
	OrderCount  int             `json:"order_count"`
	LastOrderAt time.Time       `json:"last_order_at"`
}

// Trend compares a metric against the immediately preceding period of
// equal length
type Trend struct {
	Direction     types.TrendDirection `json:"direction"`
	GrowthPercent decimal.Decimal      `json:"growth_percent"`
	Current       decimal.Decimal      `json:"current"`
	Previous      decimal.Decimal      `json:"previous"`
}

// EngagementMetrics are storefront engagement figures (conversion, bounce)
// supplied by an optional external analytics pipeline. Absent until a real
// provider is wired.
type EngagementMetrics struct {
	ConversionRatePercent decimal.Decimal `json:"conversion_rate_percent"`
	BounceRatePercent     decimal.Decimal `json:"bounce_rate_percent"`
}

// Summary is the full dashboard aggregate for one tenant and period.
// It is transient: recomputed on every invocation, never persisted.
type Summary struct {
	Overview      OverviewSummary      `json:"overview"`
	ByProductType ProductTypeBreakdown `json:"by_product_type"`
	TimeSeries    []TimeBucket         `json:"time_series"`
	TopProducts   []ProductRanking     `json:"top_products"`
	TopCustomers  []CustomerRanking    `json:"top_customers"`
	RevenueTrend  Trend                `json:"revenue_trend"`
	OrdersTrend   Trend                `json:"orders_trend"`
	Engagement    *EngagementMetrics   `json:"engagement,omitempty"`
	PeriodStart   time.Time            `json:"period_start"`
	PeriodEnd     time.Time            `json:"period_end"`
}

// EmptySummary returns the all-zero fallback summary for a period. It is
// structurally identical to a computed summary (same closed product-type
// keys, empty but non-nil lists) so consumers never branch on presence.
func EmptySummary(period types.TimeRange) *Summary {
	return &Summary{
		Overview: OverviewSummary{
			TotalRevenue:      decimal.Zero,
			AverageOrderValue: decimal.Zero,
			GrowthPercent:     decimal.Zero,
		},
		ByProductType: NewProductTypeBreakdown(),
		TimeSeries:    []TimeBucket{},
		TopProducts:   []ProductRanking{},
		TopCustomers:  []CustomerRanking{},
		RevenueTrend:  zeroTrend(),
		OrdersTrend:   zeroTrend(),
		PeriodStart:   period.Start,
		PeriodEnd:     period.End,
	}
}

func zeroTrend() Trend {
	return Trend{
		Direction:     types.TrendDirectionStable,
		GrowthPercent: decimal.Zero,
		Current:       decimal.Zero,
		Previous:      decimal.Zero,
	}
}
