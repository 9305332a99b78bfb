package postgres

import (
	"context"
	"database/sql"

	"github.com/sellora/sellora/internal/domain/product"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/postgres"
	"github.com/sellora/sellora/internal/types"
)

type ProductRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewProductRepository(client *postgres.Client, logger *logger.Logger) product.Repository {
	return &ProductRepository{client: client, logger: logger}
}

const productColumns = `
	id, tenant_id, name, product_type, price, currency,
	status, created_at, updated_at, created_by, updated_by
`

func (r *ProductRepository) Get(ctx context.Context, id string) (*product.Product, error) {
	span := StartRepositorySpan(ctx, "product", "get", map[string]interface{}{
		"product_id": id,
	})
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1
		AND id = $2
		AND status != $3
	`

	row := r.client.DB.QueryRowContext(ctx, query, tenantID, id, types.StatusDeleted)
	p, err := scanProduct(row)
	if err != nil {
		SetSpanError(span, err)
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("product not found").
				WithHint("Product with the given ID does not exist").
				WithReportableDetails(map[string]interface{}{
					"product_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get product").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return p, nil
}

func (r *ProductRepository) ListByTenant(ctx context.Context) ([]*product.Product, error) {
	span := StartRepositorySpan(ctx, "product", "list_by_tenant", nil)
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE tenant_id = $1
		AND status != $2
		ORDER BY created_at, id
	`

	rows, err := r.client.DB.QueryContext(ctx, query, tenantID, types.StatusDeleted)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to query products").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var products []*product.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			SetSpanError(span, err)
			return nil, ierr.WithError(err).
				WithHint("Failed to scan product").
				Mark(ierr.ErrDatabase)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Error occurred during row iteration").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return products, nil
}

func scanProduct(row rowScanner) (*product.Product, error) {
	var p product.Product
	var price sql.NullString
	var createdBy, updatedBy sql.NullString

	err := row.Scan(
		&p.ID,
		&p.TenantID,
		&p.Name,
		&p.ProductType,
		&price,
		&p.Currency,
		&p.Status,
		&p.CreatedAt,
		&p.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	p.Price = types.ParseDecimalOrZero(price.String)
	p.CreatedBy = createdBy.String
	p.UpdatedBy = updatedBy.String
	return &p, nil
}
