package testutil

import (
	"context"

	"github.com/sellora/sellora/internal/domain/product"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// InMemoryProductStore implements product.Repository
type InMemoryProductStore struct {
	*InMemoryStore[*product.Product]

	listErr error
}

// NewInMemoryProductStore creates a new in-memory product store
func NewInMemoryProductStore() *InMemoryProductStore {
	return &InMemoryProductStore{
		InMemoryStore: NewInMemoryStore[*product.Product](),
	}
}

// SetListError makes subsequent ListByTenant calls fail with err
func (s *InMemoryProductStore) SetListError(err error) {
	s.listErr = err
}

func copyProduct(p *product.Product) *product.Product {
	if p == nil {
		return nil
	}

	return &product.Product{
		ID:          p.ID,
		Name:        p.Name,
		ProductType: p.ProductType,
		Price:       p.Price,
		Currency:    p.Currency,
		BaseModel: types.BaseModel{
			TenantID:  p.TenantID,
			Status:    p.Status,
			CreatedAt: p.CreatedAt,
			UpdatedAt: p.UpdatedAt,
			CreatedBy: p.CreatedBy,
			UpdatedBy: p.UpdatedBy,
		},
	}
}

// Insert seeds the store with a product
func (s *InMemoryProductStore) Insert(ctx context.Context, p *product.Product) error {
	if p == nil {
		return ierr.NewError("product cannot be nil").
			Mark(ierr.ErrValidation)
	}
	return s.InMemoryStore.Create(ctx, p.ID, copyProduct(p))
}

func (s *InMemoryProductStore) Get(ctx context.Context, id string) (*product.Product, error) {
	p, err := s.InMemoryStore.Get(ctx, id)
	if err != nil {
		return nil, ierr.NewError("product not found").
			WithHint("Product with the given ID does not exist").
			WithReportableDetails(map[string]interface{}{
				"product_id": id,
			}).
			Mark(ierr.ErrNotFound)
	}
	return copyProduct(p), nil
}

func (s *InMemoryProductStore) ListByTenant(ctx context.Context) ([]*product.Product, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}

	products, err := s.InMemoryStore.List(ctx, nil, tenantProductFilterFn, productSortFn)
	if err != nil {
		return nil, ierr.WithError(err).
			WithHint("Failed to list products").
			Mark(ierr.ErrDatabase)
	}

	result := make([]*product.Product, 0, len(products))
	for _, p := range products {
		result = append(result, copyProduct(p))
	}
	return result, nil
}

func tenantProductFilterFn(ctx context.Context, p *product.Product, _ interface{}) bool {
	if p == nil || p.Status == types.StatusDeleted {
		return false
	}
	if tenantID := types.GetTenantID(ctx); tenantID != "" && p.TenantID != tenantID {
		return false
	}
	return true
}

func productSortFn(i, j *product.Product) bool {
	if i == nil || j == nil {
		return false
	}
	if i.CreatedAt.Equal(j.CreatedAt) {
		return i.ID < j.ID
	}
	return i.CreatedAt.Before(j.CreatedAt)
}
