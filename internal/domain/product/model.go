package product

import (
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
	"github.com/shopspring/decimal"
)

// Product represents the domain model for a catalog product
type Product struct {
	ID          string            `json:"id"`
	Name        string            `json:"name"`
	ProductType types.ProductType `json:"product_type"`
	Price       decimal.Decimal   `json:"price"`
	Currency    string            `json:"currency"`
	types.BaseModel
}

// Validate validates the product
func (p *Product) Validate() error {
	if p.Name == "" {
		return ierr.NewError("name is required").Mark(ierr.ErrValidation)
	}
	if err := p.ProductType.Validate(); err != nil {
		return err
	}
	if p.Price.IsNegative() {
		return ierr.NewError("price cannot be negative").
			WithReportableDetails(map[string]interface{}{
				"price": p.Price,
			}).
			Mark(ierr.ErrValidation)
	}
	return nil
}
