package analytics

import (
	"fmt"
	"testing"
	"time"

	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testPeriod = types.TimeRange{
	Start: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	End:   time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
}

func newTestOrder(id, customerID string, status types.OrderStatus, total string, createdAt time.Time, items ...*order.LineItem) *order.Order {
	o := &order.Order{
		ID:          id,
		CustomerID:  customerID,
		OrderStatus: status,
		Total:       decimal.RequireFromString(total),
		Currency:    "usd",
		LineItems:   items,
	}
	o.CreatedAt = createdAt
	return o
}

func newTestProduct(id, name string, productType types.ProductType, price string) *product.Product {
	return &product.Product{
		ID:          id,
		Name:        name,
		ProductType: productType,
		Price:       decimal.RequireFromString(price),
		Currency:    "usd",
	}
}

func lineItem(orderID, productID string, qty int64, unitPrice string) *order.LineItem {
	return &order.LineItem{
		ID:        orderID + "-" + productID,
		OrderID:   orderID,
		ProductID: productID,
		Quantity:  qty,
		UnitPrice: decimal.RequireFromString(unitPrice),
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	summary := Aggregate(AggregateInput{Period: testPeriod})

	assert.Equal(t, 0, summary.Overview.TotalOrders)
	assert.Equal(t, 0, summary.Overview.TotalCustomers)
	assert.True(t, summary.Overview.TotalRevenue.IsZero())
	assert.True(t, summary.Overview.AverageOrderValue.IsZero())
	assert.Empty(t, summary.TimeSeries)
	assert.Empty(t, summary.TopProducts)
	assert.Empty(t, summary.TopCustomers)
	assert.Equal(t, types.TrendDirectionStable, summary.RevenueTrend.Direction)
	assert.Equal(t, testPeriod.Start, summary.PeriodStart)
	assert.Equal(t, testPeriod.End, summary.PeriodEnd)

	// The breakdown key set is closed even with no activity
	require.Len(t, summary.ByProductType, len(types.ProductTypeValues()))
	for _, pt := range types.ProductTypeValues() {
		stats, ok := summary.ByProductType[pt]
		require.True(t, ok, "missing product type %s", pt)
		assert.True(t, stats.Revenue.IsZero())
		assert.Equal(t, int64(0), stats.UnitsSold)
	}
}

func TestAggregateDanglingProductKeepsOrderRevenue(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	products := map[string]*product.Product{
		"prod_1": newTestProduct("prod_1", "Synth Course", types.ProductTypeDigital, "2000"),
	}

	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "2000", day,
			lineItem("ord_1", "prod_1", 1, "2000")),
		// prod_gone was deleted from the catalog after the purchase
		newTestOrder("ord_2", "cust_2", types.OrderStatusCompleted, "500", day.Add(2*time.Hour),
			lineItem("ord_2", "prod_gone", 1, "500")),
	}

	summary := Aggregate(AggregateInput{
		Orders:   orders,
		Products: products,
		Period:   testPeriod,
	})

	// Order-level figures keep the full 2500; only product-keyed
	// aggregates drop the dangling line
	assert.Equal(t, "2500", summary.Overview.TotalRevenue.String())
	assert.Equal(t, 2, summary.Overview.TotalOrders)
	assert.Equal(t, "1250", summary.Overview.AverageOrderValue.String())

	assert.Equal(t, "2000", summary.ByProductType[types.ProductTypeDigital].Revenue.String())
	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, "prod_1", summary.TopProducts[0].ProductID)

	require.Len(t, summary.TimeSeries, 1)
	assert.Equal(t, "2024-01-03", summary.TimeSeries[0].Date)
	assert.Equal(t, "2500", summary.TimeSeries[0].Revenue.String())
	assert.Equal(t, 2, summary.TimeSeries[0].OrderCount)
}

func TestAggregateNonCompletedOrdersCountButEarnNothing(t *testing.T) {
	day := time.Date(2024, 1, 2, 12, 0, 0, 0, time.UTC)
	products := map[string]*product.Product{
		"prod_1": newTestProduct("prod_1", "Tote Bag", types.ProductTypePhysical, "40"),
	}

	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "40", day,
			lineItem("ord_1", "prod_1", 1, "40")),
		newTestOrder("ord_2", "cust_1", types.OrderStatusPending, "40", day,
			lineItem("ord_2", "prod_1", 1, "40")),
		newTestOrder("ord_3", "cust_2", types.OrderStatusCancelled, "40", day),
		newTestOrder("ord_4", "cust_3", types.OrderStatusRefunded, "40", day),
	}

	summary := Aggregate(AggregateInput{
		Orders:   orders,
		Products: products,
		Period:   testPeriod,
	})

	assert.Equal(t, 4, summary.Overview.TotalOrders)
	assert.Equal(t, "40", summary.Overview.TotalRevenue.String())
	assert.Equal(t, 3, summary.Overview.TotalCustomers)
	// AOV divides by all orders, not just completed ones
	assert.Equal(t, "10", summary.Overview.AverageOrderValue.String())

	physical := summary.ByProductType[types.ProductTypePhysical]
	assert.Equal(t, "40", physical.Revenue.String())
	assert.Equal(t, int64(1), physical.UnitsSold)
	assert.Equal(t, 1, physical.OrderCount)

	require.Len(t, summary.TimeSeries, 1)
	assert.Equal(t, 4, summary.TimeSeries[0].OrderCount)
	assert.Equal(t, "40", summary.TimeSeries[0].Revenue.String())
}

func TestAggregateClampsNegativeAmounts(t *testing.T) {
	day := time.Date(2024, 1, 4, 9, 0, 0, 0, time.UTC)
	products := map[string]*product.Product{
		"prod_1": newTestProduct("prod_1", "Workshop", types.ProductTypeService, "100"),
	}

	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "-50", day,
			lineItem("ord_1", "prod_1", -3, "100"),
			lineItem("ord_1", "prod_1", 2, "-10")),
	}

	summary := Aggregate(AggregateInput{
		Orders:   orders,
		Products: products,
		Period:   testPeriod,
	})

	assert.True(t, summary.Overview.TotalRevenue.IsZero())
	service := summary.ByProductType[types.ProductTypeService]
	assert.True(t, service.Revenue.IsZero())
	assert.Equal(t, int64(2), service.UnitsSold)
}

func TestAggregateTimeSeriesSparseAndSorted(t *testing.T) {
	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "10",
			time.Date(2024, 1, 6, 8, 0, 0, 0, time.UTC)),
		newTestOrder("ord_2", "cust_1", types.OrderStatusCompleted, "20",
			time.Date(2024, 1, 2, 8, 0, 0, 0, time.UTC)),
		newTestOrder("ord_3", "cust_1", types.OrderStatusCompleted, "30",
			time.Date(2024, 1, 6, 19, 0, 0, 0, time.UTC)),
	}

	summary := Aggregate(AggregateInput{Orders: orders, Period: testPeriod})

	// Days without orders never appear; present days sort ascending
	require.Len(t, summary.TimeSeries, 2)
	assert.Equal(t, "2024-01-02", summary.TimeSeries[0].Date)
	assert.Equal(t, "2024-01-06", summary.TimeSeries[1].Date)
	assert.Equal(t, "40", summary.TimeSeries[1].Revenue.String())
	assert.Equal(t, 2, summary.TimeSeries[1].OrderCount)
}

func TestAggregateBucketsInTenantLocale(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 03:30 UTC on Jan 5 is still Jan 4 in New York
	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "10",
			time.Date(2024, 1, 5, 3, 30, 0, 0, time.UTC)),
	}

	utcSummary := Aggregate(AggregateInput{Orders: orders, Period: testPeriod})
	nySummary := Aggregate(AggregateInput{Orders: orders, Period: testPeriod, Location: loc})

	require.Len(t, utcSummary.TimeSeries, 1)
	require.Len(t, nySummary.TimeSeries, 1)
	assert.Equal(t, "2024-01-05", utcSummary.TimeSeries[0].Date)
	assert.Equal(t, "2024-01-04", nySummary.TimeSeries[0].Date)
}

func TestAggregateTopProductsTruncatesAndBreaksTiesByFirstSeen(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	products := make(map[string]*product.Product)
	var orders []*order.Order
	for i := 1; i <= 15; i++ {
		id := fmt.Sprintf("prod_%02d", i)
		products[id] = newTestProduct(id, fmt.Sprintf("Product %02d", i), types.ProductTypeDigital, "10")

		// prod_01 through prod_04 earn decreasing amounts; everything from
		// prod_05 on ties exactly, so first appearance decides the cutoff
		revenue := 50
		if i <= 4 {
			revenue = 250 - i*10
		}
		orders = append(orders, newTestOrder(
			fmt.Sprintf("ord_%02d", i), "cust_1", types.OrderStatusCompleted,
			fmt.Sprintf("%d", revenue), day.Add(time.Duration(i)*time.Minute),
			lineItem(fmt.Sprintf("ord_%02d", i), id, 1, fmt.Sprintf("%d", revenue)),
		))
	}

	summary := Aggregate(AggregateInput{
		Orders:   orders,
		Products: products,
		Period:   testPeriod,
	})

	require.Len(t, summary.TopProducts, types.DefaultTopN)
	for i := 1; i < len(summary.TopProducts); i++ {
		assert.True(t,
			summary.TopProducts[i-1].Revenue.GreaterThanOrEqual(summary.TopProducts[i].Revenue),
			"top products must be sorted by revenue descending")
	}

	// The tied block ranks by first appearance: prod_05..prod_10 make the
	// cut, prod_11..prod_15 do not
	ids := make([]string, 0, len(summary.TopProducts))
	for _, p := range summary.TopProducts {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []string{
		"prod_01", "prod_02", "prod_03", "prod_04", "prod_05",
		"prod_06", "prod_07", "prod_08", "prod_09", "prod_10",
	}, ids)
}

func TestAggregateProductOrderCountDedupesWithinOrder(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	products := map[string]*product.Product{
		"prod_1": newTestProduct("prod_1", "Print", types.ProductTypePhysical, "25"),
	}

	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "75", day,
			lineItem("ord_1", "prod_1", 1, "25"),
			lineItem("ord_1", "prod_1", 2, "25")),
	}

	summary := Aggregate(AggregateInput{
		Orders:   orders,
		Products: products,
		Period:   testPeriod,
	})

	require.Len(t, summary.TopProducts, 1)
	assert.Equal(t, 1, summary.TopProducts[0].OrderCount)
	assert.Equal(t, int64(3), summary.TopProducts[0].UnitsSold)
	assert.Equal(t, "75", summary.TopProducts[0].Revenue.String())
}

func TestAggregateTopCustomersSkipGuestsAndEnrich(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	customers := map[string]*customer.Customer{
		"cust_1": {ID: "cust_1", Name: "Ada", Email: "ada@example.com"},
	}

	orders := []*order.Order{
		newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "100", day),
		newTestOrder("ord_2", "cust_1", types.OrderStatusCompleted, "50", day.Add(time.Hour)),
		// guest checkout, never ranked
		newTestOrder("ord_3", "", types.OrderStatusCompleted, "900", day),
		// unknown to the directory, ranked without enrichment
		newTestOrder("ord_4", "cust_2", types.OrderStatusCompleted, "10", day),
	}

	summary := Aggregate(AggregateInput{
		Orders:    orders,
		Customers: customers,
		Period:    testPeriod,
	})

	require.Len(t, summary.TopCustomers, 2)
	top := summary.TopCustomers[0]
	assert.Equal(t, "cust_1", top.CustomerID)
	assert.Equal(t, "Ada", top.Name)
	assert.Equal(t, "ada@example.com", top.Email)
	assert.Equal(t, "150", top.TotalSpent.String())
	assert.Equal(t, 2, top.OrderCount)
	assert.Equal(t, day.Add(time.Hour), top.LastOrderAt)

	assert.Equal(t, "cust_2", summary.TopCustomers[1].CustomerID)
	assert.Empty(t, summary.TopCustomers[1].Name)

	// Guests still count as orders but not as customers
	assert.Equal(t, 4, summary.Overview.TotalOrders)
	assert.Equal(t, 2, summary.Overview.TotalCustomers)
}

func TestAggregateTrendClassification(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	prevDay := time.Date(2023, 12, 27, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name          string
		currentTotal  string
		previousTotal string
		direction     types.TrendDirection
		growth        string
	}{
		{"within deadband is stable", "103", "100", types.TrendDirectionStable, "3"},
		{"exactly plus five is stable", "105", "100", types.TrendDirectionStable, "5"},
		{"above deadband is up", "106", "100", types.TrendDirectionUp, "6"},
		{"exactly minus five is stable", "95", "100", types.TrendDirectionStable, "-5"},
		{"below deadband is down", "94", "100", types.TrendDirectionDown, "-6"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Aggregate(AggregateInput{
				Orders: []*order.Order{
					newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, tt.currentTotal, day),
				},
				PreviousOrders: []*order.Order{
					newTestOrder("ord_0", "cust_1", types.OrderStatusCompleted, tt.previousTotal, prevDay),
				},
				Period: testPeriod,
			})

			assert.Equal(t, tt.direction, summary.RevenueTrend.Direction)
			assert.Equal(t, tt.growth, summary.RevenueTrend.GrowthPercent.String())
			assert.Equal(t, summary.RevenueTrend.GrowthPercent, summary.Overview.GrowthPercent)
		})
	}
}

func TestAggregateTrendWithoutBaseline(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)

	summary := Aggregate(AggregateInput{
		Orders: []*order.Order{
			newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "500", day),
		},
		Period: testPeriod,
	})

	// No previous-period revenue: growth pins to zero rather than infinity
	assert.True(t, summary.RevenueTrend.GrowthPercent.IsZero())
	assert.Equal(t, types.TrendDirectionStable, summary.RevenueTrend.Direction)
	assert.Equal(t, "500", summary.RevenueTrend.Current.String())
	assert.True(t, summary.RevenueTrend.Previous.IsZero())
}

func TestAggregateOrdersTrendUsesAllStatuses(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	prevDay := time.Date(2023, 12, 27, 10, 0, 0, 0, time.UTC)

	summary := Aggregate(AggregateInput{
		Orders: []*order.Order{
			newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "10", day),
			newTestOrder("ord_2", "cust_1", types.OrderStatusPending, "10", day),
		},
		PreviousOrders: []*order.Order{
			newTestOrder("ord_0", "cust_1", types.OrderStatusCancelled, "10", prevDay),
		},
		Period: testPeriod,
	})

	assert.Equal(t, "2", summary.OrdersTrend.Current.String())
	assert.Equal(t, "1", summary.OrdersTrend.Previous.String())
	assert.Equal(t, types.TrendDirectionUp, summary.OrdersTrend.Direction)
}

func TestAggregateIsIdempotent(t *testing.T) {
	day := time.Date(2024, 1, 3, 10, 0, 0, 0, time.UTC)
	products := map[string]*product.Product{
		"prod_1": newTestProduct("prod_1", "Album", types.ProductTypeArtist, "30"),
	}
	input := AggregateInput{
		Orders: []*order.Order{
			newTestOrder("ord_1", "cust_1", types.OrderStatusCompleted, "60", day,
				lineItem("ord_1", "prod_1", 2, "30")),
		},
		Products: products,
		Period:   testPeriod,
	}

	first := Aggregate(input)
	second := Aggregate(input)
	assert.Equal(t, first, second)
}
