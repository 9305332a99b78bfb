package order

import (
	"context"

	"github.com/sellora/sellora/internal/types"
)

// Repository defines the read interface for orders. The analytics core only
// consumes orders; writes belong to the storefront checkout services.
type Repository interface {
	// Get retrieves an order with its line items
	Get(ctx context.Context, id string) (*Order, error)

	// ListByPeriod retrieves all orders (any status) for the tenant in the
	// context whose creation timestamp falls inside the window, with line
	// items populated
	ListByPeriod(ctx context.Context, period types.TimeRange) ([]*Order, error)
}
