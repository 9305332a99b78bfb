package customer

import (
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/types"
)

// Customer represents the domain model for a storefront customer
type Customer struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	types.BaseModel
}

// Validate validates the customer
func (c *Customer) Validate() error {
	if c.Name == "" && c.Email == "" {
		return ierr.NewError("customer needs a name or an email").Mark(ierr.ErrValidation)
	}
	return nil
}
