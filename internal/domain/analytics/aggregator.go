package analytics

import (
	"sort"
	"time"

	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
)

// AggregateInput is everything the fold needs. The aggregator performs no
// I/O and never mutates these record sets; callers own fetching.
type AggregateInput struct {
	// Orders are the current-period orders (any status) with line items
	Orders []*order.Order

	// PreviousOrders are the comparison-period orders, used for trend
	// totals only. May be nil when the comparison fetch failed.
	PreviousOrders []*order.Order

	// Products indexes the catalog by product ID. Line items referencing
	// IDs absent here are treated as deleted products.
	Products map[string]*product.Product

	// Customers indexes the directory by customer ID for ranking enrichment
	Customers map[string]*customer.Customer

	// Period is the current dashboard window
	Period types.TimeRange

	// Location is the tenant locale used for calendar-day bucketing.
	// Defaults to UTC.
	Location *time.Location
}

// Aggregate folds the fetched record sets into a dashboard summary.
// Pure function: identical inputs produce identical summaries.
func Aggregate(in AggregateInput) *Summary {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	summary := EmptySummary(in.Period)
	summary.Overview.TotalOrders = len(in.Orders)

	// Accumulators keyed by entity ID. Insertion order is tracked so that
	// ranking ties resolve by first appearance in the input.
	buckets := make(map[string]*TimeBucket)
	productAcc := make(map[string]*ProductRanking)
	customerAcc := make(map[string]*CustomerRanking)
	var bucketOrder, productOrder, customerOrder []string

	distinctCustomers := make(map[string]struct{})
	totalRevenue := decimal.Zero

	for _, o := range in.Orders {
		if o.CustomerID != "" {
			distinctCustomers[o.CustomerID] = struct{}{}
		}

		day := o.CreatedDay(loc)
		bucket, ok := buckets[day]
		if !ok {
			bucket = &TimeBucket{
				Date:          day,
				Revenue:       decimal.Zero,
				RevenueByType: make(map[types.ProductType]decimal.Decimal),
			}
			buckets[day] = bucket
			bucketOrder = append(bucketOrder, day)
		}
		bucket.OrderCount++

		if !o.OrderStatus.CountsTowardRevenue() {
			continue
		}

		// Order-level revenue comes from the order total so that line
		// items whose product was deleted still count (they only drop out
		// of product-keyed aggregates).
		orderRevenue := nonNegative(o.Total)
		totalRevenue = totalRevenue.Add(orderRevenue)
		bucket.Revenue = bucket.Revenue.Add(orderRevenue)

		typesOnOrder := make(map[types.ProductType]struct{})
		productsOnOrder := make(map[string]struct{})
		for _, li := range o.LineItems {
			prod := in.Products[li.ProductID]
			if li.ProductID == "" || prod == nil {
				continue
			}

			qty := li.Quantity
			if qty < 0 {
				qty = 0
			}
			lineRevenue := nonNegative(li.UnitPrice).Mul(decimal.NewFromInt(qty))

			stats := summary.ByProductType[prod.ProductType]
			if stats == nil {
				// Unknown type tag from upstream; keep the closed key set
				// intact and skip type attribution for this line
				continue
			}
			stats.Revenue = stats.Revenue.Add(lineRevenue)
			stats.UnitsSold += qty
			typesOnOrder[prod.ProductType] = struct{}{}

			bucket.RevenueByType[prod.ProductType] = bucket.RevenueByType[prod.ProductType].Add(lineRevenue)

			acc, ok := productAcc[prod.ID]
			if !ok {
				acc = &ProductRanking{
					ProductID:   prod.ID,
					Name:        prod.Name,
					ProductType: prod.ProductType,
					Revenue:     decimal.Zero,
				}
				productAcc[prod.ID] = acc
				productOrder = append(productOrder, prod.ID)
			}
			acc.Revenue = acc.Revenue.Add(lineRevenue)
			acc.UnitsSold += qty
			if _, seen := productsOnOrder[prod.ID]; !seen {
				productsOnOrder[prod.ID] = struct{}{}
				acc.OrderCount++
			}
		}
		for pt := range typesOnOrder {
			summary.ByProductType[pt].OrderCount++
		}

		if o.CustomerID != "" {
			acc, ok := customerAcc[o.CustomerID]
			if !ok {
				acc = &CustomerRanking{
					CustomerID: o.CustomerID,
					TotalSpent: decimal.Zero,
				}
				if c := in.Customers[o.CustomerID]; c != nil {
					acc.Name = c.Name
					acc.Email = c.Email
				}
				customerAcc[o.CustomerID] = acc
				customerOrder = append(customerOrder, o.CustomerID)
			}
			acc.TotalSpent = acc.TotalSpent.Add(orderRevenue)
			acc.OrderCount++
			if o.CreatedAt.After(acc.LastOrderAt) {
				acc.LastOrderAt = o.CreatedAt
			}
		}
	}

	summary.Overview.TotalRevenue = totalRevenue
	summary.Overview.TotalCustomers = len(distinctCustomers)
	if summary.Overview.TotalOrders > 0 {
		summary.Overview.AverageOrderValue = totalRevenue.Div(decimal.NewFromInt(int64(summary.Overview.TotalOrders)))
	}

	for _, stats := range summary.ByProductType {
		if stats.UnitsSold > 0 {
			stats.AveragePrice = stats.Revenue.Div(decimal.NewFromInt(stats.UnitsSold))
		}
	}

	summary.TimeSeries = sortedTimeSeries(buckets, bucketOrder)
	summary.TopProducts = topProducts(productAcc, productOrder)
	summary.TopCustomers = topCustomers(customerAcc, customerOrder)

	prevRevenue, prevOrders := revenueTotals(in.PreviousOrders)
	summary.RevenueTrend = buildTrend(totalRevenue, prevRevenue)
	summary.OrdersTrend = buildTrend(
		decimal.NewFromInt(int64(summary.Overview.TotalOrders)),
		decimal.NewFromInt(int64(prevOrders)),
	)
	summary.Overview.GrowthPercent = summary.RevenueTrend.GrowthPercent

	return summary
}

// revenueTotals is the reduced fold used for the comparison period:
// completed-order revenue and all-status order count, nothing else.
func revenueTotals(orders []*order.Order) (decimal.Decimal, int) {
	revenue := decimal.Zero
	for _, o := range orders {
		if o.OrderStatus.CountsTowardRevenue() {
			revenue = revenue.Add(nonNegative(o.Total))
		}
	}
	return revenue, len(orders)
}

func buildTrend(current, previous decimal.Decimal) Trend {
	growth := types.GrowthPercent(current, previous)
	return Trend{
		Direction:     types.ClassifyTrend(growth),
		GrowthPercent: growth,
		Current:       current,
		Previous:      previous,
	}
}

func sortedTimeSeries(buckets map[string]*TimeBucket, keys []string) []TimeBucket {
	series := make([]TimeBucket, 0, len(keys))
	for _, day := range keys {
		series = append(series, *buckets[day])
	}
	// Date keys are YYYY-MM-DD, so lexicographic order is chronological
	sort.Slice(series, func(i, j int) bool {
		return series[i].Date < series[j].Date
	})
	return series
}

func topProducts(acc map[string]*ProductRanking, keys []string) []ProductRanking {
	ranked := make([]ProductRanking, 0, len(keys))
	for _, id := range keys {
		ranked = append(ranked, *acc[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	if len(ranked) > types.DefaultTopN {
		ranked = ranked[:types.DefaultTopN]
	}
	return ranked
}

func topCustomers(acc map[string]*CustomerRanking, keys []string) []CustomerRanking {
	ranked := make([]CustomerRanking, 0, len(keys))
	for _, id := range keys {
		ranked = append(ranked, *acc[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalSpent.GreaterThan(ranked[j].TotalSpent)
	})
	if len(ranked) > types.DefaultTopN {
		ranked = ranked[:types.DefaultTopN]
	}
	return ranked
}

func nonNegative(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
