package testutil

import (
	"context"

	"github.com/sellora/sellora/internal/domain/order"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// InMemoryOrderStore implements order.Repository
type InMemoryOrderStore struct {
	*InMemoryStore[*order.Order]

	// listErr, when set, is returned by ListByPeriod to simulate a store outage
	listErr error
}

// NewInMemoryOrderStore creates a new in-memory order store
func NewInMemoryOrderStore() *InMemoryOrderStore {
	return &InMemoryOrderStore{
		InMemoryStore: NewInMemoryStore[*order.Order](),
	}
}

// SetListError makes subsequent ListByPeriod calls fail with err
func (s *InMemoryOrderStore) SetListError(err error) {
	s.listErr = err
}

// Helper to copy order with its line items
func copyOrder(o *order.Order) *order.Order {
	if o == nil {
		return nil
	}

	copied := &order.Order{
		ID:          o.ID,
		CustomerID:  o.CustomerID,
		OrderStatus: o.OrderStatus,
		Total:       o.Total,
		Currency:    o.Currency,
		BaseModel: types.BaseModel{
			TenantID:  o.TenantID,
			Status:    o.Status,
			CreatedAt: o.CreatedAt,
			UpdatedAt: o.UpdatedAt,
			CreatedBy: o.CreatedBy,
			UpdatedBy: o.UpdatedBy,
		},
	}

	for _, li := range o.LineItems {
		copied.LineItems = append(copied.LineItems, &order.LineItem{
			ID:        li.ID,
			OrderID:   li.OrderID,
			ProductID: li.ProductID,
			Quantity:  li.Quantity,
			UnitPrice: li.UnitPrice,
		})
	}

	return copied
}

// Insert seeds the store with an order
func (s *InMemoryOrderStore) Insert(ctx context.Context, o *order.Order) error {
	if o == nil {
		return ierr.NewError("order cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, o.ID, copyOrder(o))
}

func (s *InMemoryOrderStore) Get(ctx context.Context, id string) (*order.Order, error) {
	o, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("order not found").
			WithHint("Order with the given ID does not exist").
			WithReportableDetails(map[string]interface{}{
				"order_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyOrder(o), nil
}

func (s *InMemoryOrderStore) ListByPeriod(ctx context.Context, period types.TimeRange) ([]*order.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	orders, err := s.InMemoryStore.List(ctx, period, orderPeriodFilterFn, orderSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list orders").
			Mark(ierr.ErrDatabase)
	}

	result := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		result = append(result, copyOrder(o))
	}
	return result, nil
}

// orderPeriodFilterFn keeps orders of the context tenant created inside the
// half-open window [Start, End)
func orderPeriodFilterFn(ctx context.Context, o *order.Order, filter interface{}) bool {
	if o == nil || o.Status == types.StatusDeleted {
		return false
	}

	if tenantID := types.GetTenantID(ctx); tenantID != "" && o.TenantID != tenantID {
		return false
	}

	period, ok := filter.(types.TimeRange)
	if !ok {
		return true
	}

	if o.CreatedAt.Before(period.Start) {
		return false
	}
	if !o.CreatedAt.Before(period.End) {
		return false
	}
	return true
}

func orderSortFn(i, j *order.Order) bool {
	if i == nil || j == nil {
		return false
	}
	if i.CreatedAt.Equal(j.CreatedAt) {
		return i.ID < j.ID
	}
	return i.CreatedAt.Before(j.CreatedAt)
}
