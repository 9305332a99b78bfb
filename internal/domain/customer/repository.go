package customer

import "context"

// Repository defines the read interface for the customer directory
type Repository interface {
	// Get retrieves a customer by ID
	Get(ctx context.Context, id string) (*Customer, error)

	// ListByTenant retrieves all customers for the tenant in the context
	ListByTenant(ctx context.Context) ([]*Customer, error)
}
