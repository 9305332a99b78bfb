package types

import (
	ierr "github.com/sellora/sellora/internal/errors"
)

// ProductType classifies a product for per-type analytics breakdowns.
// The set is closed: every breakdown carries exactly these keys.
type ProductType string

const (
	ProductTypeDigital  ProductType = "digital"
	ProductTypePhysical ProductType = "physical"
	ProductTypeService  ProductType = "service"
	ProductTypeCourse   ProductType = "course"
	ProductTypeArtist   ProductType = "artist"
)

// ProductTypeValues returns the closed set of product types in stable order
func ProductTypeValues() []ProductType {
	return []ProductType{
		ProductTypeDigital,
		ProductTypePhysical,
		ProductTypeService,
		ProductTypeCourse,
		ProductTypeArtist,
	}
}

func (t ProductType) String() string {
	return string(t)
}

// Validate validates the product type
func (t ProductType) Validate() error {
	switch t {
	case ProductTypeDigital, ProductTypePhysical, ProductTypeService, ProductTypeCourse, ProductTypeArtist:
		return nil
	default:
		return ierr.NewError("invalid product type").
			WithHint("Product type must be one of: digital, physical, service, course, artist").
			WithReportableDetails(map[string]interface{}{
				"product_type": t,
			}).
			Mark(ierr.ErrValidation)
	}
}
