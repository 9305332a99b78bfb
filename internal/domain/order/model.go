package order

import (
	"time"

	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
)

// Order represents the domain model for a storefront order with its line items
type Order struct {
	ID          string            `json:"id"`
	CustomerID  string            `json:"customer_id,omitempty"` // empty for guest checkout
	OrderStatus types.OrderStatus `json:"order_status"`
	Total       decimal.Decimal   `json:"total"`
	Currency    string            `json:"currency"`
	LineItems   []*LineItem       `json:"line_items,omitempty"`
	types.BaseModel
}

// LineItem represents a single product position on an order. ProductID may
// reference a product that has since been deleted; aggregation must not
// drop the order's revenue because of it.
type LineItem struct {
	ID        string          `json:"id"`
	OrderID   string          `json:"order_id"`
	ProductID string          `json:"product_id,omitempty"`
	Quantity  int64           `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Validate validates the order
func (o *Order) Validate() error {
	if o.OrderStatus == "" {
		return ierr.NewError("order_status is required").Mark(ierr.ErrValidation)
	}
	if o.Total.IsNegative() {
		return ierr.NewError("order total cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"order_id": o.ID,
				"total":    o.Total,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}

// IsGuest reports whether the order has no linked customer
func (o *Order) IsGuest() bool {
	return o.CustomerID == ""
}

// CreatedDay returns the calendar day key for the order in the given locale
func (o *Order) CreatedDay(loc *time.Location) string {
	return o.CreatedAt.In(loc).Format("2006-01-02")
}
