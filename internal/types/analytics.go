package types

import "github.com/shopspring/decimal"

// TrendDirection is the coarse classification of a period-over-period change
type TrendDirection string

const (
	TrendDirectionUp     TrendDirection = "up"
	TrendDirectionDown   TrendDirection = "down"
	TrendDirectionStable TrendDirection = "stable"
)

const (
	// DefaultTopN is the truncation size for product/customer rankings
	DefaultTopN = 10

	// TrendDeadbandPercent is the tolerance band around zero change within
	// which a trend classifies as stable rather than up/down
	TrendDeadbandPercent = 5
)

// ClassifyTrend maps a growth percentage to a direction using the deadband
func ClassifyTrend(growthPercent decimal.Decimal) TrendDirection {
	deadband := decimal.NewFromInt(TrendDeadbandPercent)
	switch {
	case growthPercent.GreaterThan(deadband):
		return TrendDirectionUp
	case growthPercent.LessThan(deadband.Neg()):
		return TrendDirectionDown
	default:
		return TrendDirectionStable
	}
}

// GrowthPercent computes (current - previous) / previous * 100, defaulting
// to zero when there is no previous baseline to compare against.
func GrowthPercent(current, previous decimal.Decimal) decimal.Decimal {
	if !previous.IsPositive() {
		return decimal.Zero
	}
	return current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100))
}
