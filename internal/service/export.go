package service

import (
	"context"

	"github.com/gocarina/gocsv"
	"github.com/sellora/sellora/internal/api/dto"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// summaryRowCSV is one row of the dashboard summary export
type summaryRowCSV struct {
	Section      string `csv:"section"`
	Key          string `csv:"key"`
	Name         string `csv:"name"`
	ProductType  string `csv:"product_type"`
	Revenue      string `csv:"revenue"`
	OrderCount   int    `csv:"order_count"`
	UnitsSold    int64  `csv:"units_sold"`
	AveragePrice string `csv:"average_price"`
}

// ExportDashboardSummary renders the aggregated summary as CSV. Rows carry a
// section column so the per-type breakdown and the top-products ranking can
// share one file.
func (s *analyticsService) ExportDashboardSummary(ctx context.Context, req dto.GetDashboardSummaryRequest) ([]byte, error) {
	response, err := s.GetDashboardSummary(ctx, req)
	if err != nil {
		return nil, err
	}
	summary := response.Summary

	rows := make([]summaryRowCSV, 0, len(summary.ByProductType)+len(summary.TopProducts))

	// Closed-set iteration order keeps exports deterministic
	for _, pt := range types.ProductTypeValues() {
		stats := summary.ByProductType[pt]
		rows = append(rows, summaryRowCSV{
			Section:      "product_type",
			Key:          pt.String(),
			Name:         pt.String(),
			ProductType:  pt.String(),
			Revenue:      stats.Revenue.String(),
			OrderCount:   stats.OrderCount,
			UnitsSold:    stats.UnitsSold,
			AveragePrice: stats.AveragePrice.String(),
		})
	}

	for _, p := range summary.TopProducts {
		rows = append(rows, summaryRowCSV{
			Section:     "top_product",
			Key:         p.ProductID,
			Name:        p.Name,
			ProductType: p.ProductType.String(),
			Revenue:     p.Revenue.String(),
			OrderCount:  p.OrderCount,
			UnitsSold:   p.UnitsSold,
		})
	}

	data, err := gocsv.MarshalBytes(&rows)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to render analytics export").
			Mark(ierr.ErrSystem)
	}

	return data, nil
}
