package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/sellora/sellora/internal/api/dto"
	"github.com/sellora/sellora/internal/cache"
	"github.com/sellora/sellora/internal/config"
	"github.com/sellora/sellora/internal/domain/customer"
	"github.com/sellora/sellora/internal/domain/order"
	"github.com/sellora/sellora/internal/domain/product"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/testutil"
	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type AnalyticsServiceSuite struct {
	suite.Suite
	ctx              context.Context
	analyticsService AnalyticsService
	orderRepo        *testutil.InMemoryOrderStore
	productRepo      *testutil.InMemoryProductStore
	customerRepo     *testutil.InMemoryCustomerStore
	logger           *logger.Logger
}

func TestAnalyticsService(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceSuite))
}

func (s *AnalyticsServiceSuite) SetupTest() {
	s.ctx = testutil.SetupContext()
	s.orderRepo = testutil.NewInMemoryOrderStore()
	s.productRepo = testutil.NewInMemoryProductStore()
	s.customerRepo = testutil.NewInMemoryCustomerStore()
	s.logger = logger.GetLogger()

	// The enrichment cache is a process-wide singleton; start each test clean
	c := cache.GetInMemoryCache()
	c.Flush(s.ctx)

	serviceParams := ServiceParams{
		Logger:       s.logger,
		Config:       config.GetDefaultConfig(),
		Cache:        c,
		OrderRepo:    s.orderRepo,
		ProductRepo:  s.productRepo,
		CustomerRepo: s.customerRepo,
	}
	s.analyticsService = NewAnalyticsService(serviceParams, NewNoopEngagementMetricsProvider())
}

func (s *AnalyticsServiceSuite) seedStorefront() {
	now := time.Now().UTC()

	products := []*product.Product{
		{ID: "prod_1", Name: "Synth Course", ProductType: types.ProductTypeCourse, Price: decimal.NewFromInt(200), Currency: "usd"},
		{ID: "prod_2", Name: "Vinyl", ProductType: types.ProductTypeArtist, Price: decimal.NewFromInt(40), Currency: "usd"},
	}
	for _, p := range products {
		p.TenantID = types.DefaultTenantID
		p.Status = types.StatusPublished
		s.NoError(s.productRepo.Insert(s.ctx, p))
	}

	customers := []*customer.Customer{
		{ID: "cust_1", Name: "Ada", Email: "ada@example.com"},
		{ID: "cust_2", Name: "Linus", Email: "linus@example.com"},
	}
	for _, c := range customers {
		c.TenantID = types.DefaultTenantID
		c.Status = types.StatusPublished
		s.NoError(s.customerRepo.Insert(s.ctx, c))
	}

	orders := []*order.Order{
		{
			ID: "ord_1", CustomerID: "cust_1", OrderStatus: types.OrderStatusCompleted,
			Total: decimal.NewFromInt(200), Currency: "usd",
			LineItems: []*order.LineItem{
				{ID: "li_1", OrderID: "ord_1", ProductID: "prod_1", Quantity: 1, UnitPrice: decimal.NewFromInt(200)},
			},
		},
		{
			ID: "ord_2", CustomerID: "cust_2", OrderStatus: types.OrderStatusCompleted,
			Total: decimal.NewFromInt(80), Currency: "usd",
			LineItems: []*order.LineItem{
				{ID: "li_2", OrderID: "ord_2", ProductID: "prod_2", Quantity: 2, UnitPrice: decimal.NewFromInt(40)},
			},
		},
		{
			ID: "ord_3", CustomerID: "cust_1", OrderStatus: types.OrderStatusPending,
			Total: decimal.NewFromInt(40), Currency: "usd",
		},
	}
	for i, o := range orders {
		o.TenantID = types.DefaultTenantID
		o.Status = types.StatusPublished
		o.CreatedAt = now.Add(-time.Duration(i+1) * 24 * time.Hour)
		o.UpdatedAt = o.CreatedAt
		s.NoError(s.orderRepo.Insert(s.ctx, o))
	}
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummary() {
	s.seedStorefront()

	resp, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: types.TimeRangeLast7Days,
	})
	s.NoError(err)
	s.NotNil(resp)

	s.Equal(3, resp.Overview.TotalOrders)
	s.Equal(2, resp.Overview.TotalCustomers)
	s.Equal("280", resp.Overview.TotalRevenue.String())

	s.Equal("200", resp.ByProductType[types.ProductTypeCourse].Revenue.String())
	s.Equal("80", resp.ByProductType[types.ProductTypeArtist].Revenue.String())
	s.True(resp.ByProductType[types.ProductTypeDigital].Revenue.IsZero())

	s.Len(resp.TopProducts, 2)
	s.Equal("prod_1", resp.TopProducts[0].ProductID)
	s.Equal("Synth Course", resp.TopProducts[0].Name)

	s.Len(resp.TopCustomers, 2)
	s.Equal("cust_1", resp.TopCustomers[0].CustomerID)
	s.Equal("Ada", resp.TopCustomers[0].Name)

	s.Len(resp.TimeSeries, 3)

	// The noop engagement provider reports no data
	s.Nil(resp.Engagement)
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummaryWithoutTenantFallsBack() {
	s.seedStorefront()

	resp, err := s.analyticsService.GetDashboardSummary(context.Background(), dto.GetDashboardSummaryRequest{})
	s.NoError(err)
	s.NotNil(resp)

	// Structural fallback: all zeros, closed breakdown keys, empty lists
	s.Equal(0, resp.Overview.TotalOrders)
	s.True(resp.Overview.TotalRevenue.IsZero())
	s.Len(resp.ByProductType, len(types.ProductTypeValues()))
	s.NotNil(resp.TimeSeries)
	s.Empty(resp.TimeSeries)
	s.Equal(types.TrendDirectionStable, resp.RevenueTrend.Direction)
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummaryOrdersFailureIsFatal() {
	s.seedStorefront()
	s.orderRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	resp, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{})
	s.Error(err)
	s.Nil(resp)
	s.True(ierr.IsDatabase(err))
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummaryDegradesWithoutCatalog() {
	s.seedStorefront()
	s.productRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))
	s.customerRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	resp, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: types.TimeRangeLast7Days,
	})
	s.NoError(err)
	s.NotNil(resp)

	// Order-level figures survive; product-keyed aggregates and ranking
	// enrichment degrade
	s.Equal("280", resp.Overview.TotalRevenue.String())
	s.Empty(resp.TopProducts)
	s.True(resp.ByProductType[types.ProductTypeCourse].Revenue.IsZero())

	s.Len(resp.TopCustomers, 2)
	s.Empty(resp.TopCustomers[0].Name)
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummaryValidatesWindow() {
	start := time.Now().UTC()

	_, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		StartTime: &start,
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))

	_, err = s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: "last_year",
	})
	s.Error(err)
	s.True(ierr.IsValidation(err))
}

func (s *AnalyticsServiceSuite) TestGetDashboardSummaryUsesEnrichmentCache() {
	s.seedStorefront()

	_, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: types.TimeRangeLast7Days,
	})
	s.NoError(err)

	// Catalog and directory are now cached; a store outage on them no
	// longer degrades the summary
	s.productRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))
	s.customerRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	resp, err := s.analyticsService.GetDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: types.TimeRangeLast7Days,
	})
	s.NoError(err)
	s.Len(resp.TopProducts, 2)
	s.Equal("Ada", resp.TopCustomers[0].Name)
}

func (s *AnalyticsServiceSuite) TestExportDashboardSummary() {
	s.seedStorefront()

	data, err := s.analyticsService.ExportDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{
		TimeRange: types.TimeRangeLast7Days,
	})
	s.NoError(err)

	csv := string(data)
	lines := strings.Split(strings.TrimSpace(csv), "\n")

	// Header + one row per product type + one row per top product
	s.Len(lines, 1+len(types.ProductTypeValues())+2)
	s.Equal("section,key,name,product_type,revenue,order_count,units_sold,average_price", lines[0])
	s.Contains(csv, "product_type,course,course,course,200")
	s.Contains(csv, "top_product,prod_1,Synth Course,course,200")
}

func (s *AnalyticsServiceSuite) TestExportDashboardSummaryPropagatesErrors() {
	s.orderRepo.SetListError(ierr.NewError("connection refused").Mark(ierr.ErrDatabase))

	_, err := s.analyticsService.ExportDashboardSummary(s.ctx, dto.GetDashboardSummaryRequest{})
	s.Error(err)
	s.True(ierr.IsDatabase(err))
}
