package product

import "context"

// Repository defines the read interface for the product catalog
type Repository interface {
	// Get retrieves a product by ID
	Get(ctx context.Context, id string) (*Product, error)

	// ListByTenant retrieves all products for the tenant in the context
	ListByTenant(ctx context.Context) ([]*Product, error)
}
