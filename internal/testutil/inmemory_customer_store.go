package testutil

import (
	"context"

	"github.com/sellora/sellora/internal/domain/customer"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// InMemoryCustomerStore implements customer.Repository
type InMemoryCustomerStore struct {
	*InMemoryStore[*customer.Customer]

	listErr error
}

// NewInMemoryCustomerStore creates a new in-memory customer store
func NewInMemoryCustomerStore() *InMemoryCustomerStore {
	return &InMemoryCustomerStore{
		InMemoryStore: NewInMemoryStore[*customer.Customer](),
	}
}

// SetListError makes subsequent ListByTenant calls fail with err
func (s *InMemoryCustomerStore) SetListError(err error) {
	s.listErr = err
}

func copyCustomer(c *customer.Customer) *customer.Customer {
	if c == nil {
		return nil
	}

	return &customer.Customer{
		ID:    c.ID,
		Name:  c.Name,
		Email: c.Email,
		BaseModel: types.BaseModel{
			TenantID:  c.TenantID,
			Status:    c.Status,
			CreatedAt: c.CreatedAt,
			UpdatedAt: c.UpdatedAt,
			CreatedBy: c.CreatedBy,
			UpdatedBy: c.UpdatedBy,
		},
	}
}

// Insert seeds the store with a customer
func (s *InMemoryCustomerStore) Insert(ctx context.Context, c *customer.Customer) error {
	if c == nil {
		return ierr.NewError("customer cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, c.ID, copyCustomer(c))
}

func (s *InMemoryCustomerStore) Get(ctx context.Context, id string) (*customer.Customer, error) {
	c, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("customer not found").
			WithHint("Customer with the given ID does not exist").
			WithReportableDetails(map[string]interface{}{
				"customer_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyCustomer(c), nil
}

func (s *InMemoryCustomerStore) ListByTenant(ctx context.Context) ([]*customer.Customer, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	customers, err := s.InMemoryStore.List(ctx, nil, tenantCustomerFilterFn, customerSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list customers").
			Mark(ierr.ErrDatabase)
	}

	result := make([]*customer.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, copyCustomer(c))
	}
	return result, nil
}

func tenantCustomerFilterFn(ctx context.Context, c *customer.Customer, _ interface{}) bool {
	if c == nil || c.Status == types.StatusDeleted {
		return false
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" && c.TenantID != tenantID {
		return false
	}
	return true
}

func customerSortFn(i, j *customer.Customer) bool {
	if i == nil || j == nil {
		return false
	}
	if i.CreatedAt.Equal(j.CreatedAt) {
		return i.ID < j.ID
	}
	return i.CreatedAt.Before(j.CreatedAt)
}
