package postgres

import (
	"context"
	"database/sql"

	"github.com/sellora/sellora/internal/domain/customer"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/postgres"
	"github.com/sellora/sellora/internal/types"
)

type CustomerRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewCustomerRepository(client *postgres.Client, logger *logger.Logger) customer.Repository {
	return &CustomerRepository{client: client, logger: logger}
}

const customerColumns = `
	id, tenant_id, name, email,
	status, created_at, updated_at, created_by, updated_by
`

func (r *CustomerRepository) Get(ctx context.Context, id string) (*customer.Customer, error) {
	span := StartRepositorySpan(ctx, "customer", "get", map[string]interface{}{
		"customer_id": id,
	})
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1
		AND id = $2
		AND status != $3
	`

	row := r.client.DB.QueryRowContext(ctx, query, tenantID, id, types.StatusDeleted)
	c, err := scanCustomer(row)
	if err != nil {
		SetSpanError(span, err)
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("customer not found").
				WithHint("Customer with the given ID does not exist").
				WithReportableDetails(map[string]interface{}{
					"customer_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get customer").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return c, nil
}

func (r *CustomerRepository) ListByTenant(ctx context.Context) ([]*customer.Customer, error) {
	span := StartRepositorySpan(ctx, "customer", "list_by_tenant", nil)
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + customerColumns + `
		FROM customers
		WHERE tenant_id = $1
		AND status != $2
		ORDER BY created_at, id
	`

	rows, err := r.client.DB.QueryContext(ctx, query, tenantID, types.StatusDeleted)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to query customers").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var customers []*customer.Customer
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			SetSpanError(span, err)
			return nil, ierr.WithError(err).
				WithHint("Failed to scan customer").
				Mark(ierr.ErrDatabase)
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Error occurred during row iteration").
			Mark(ierr.ErrDatabase)
	}

	SetSpanSuccess(span)
	return customers, nil
}

func scanCustomer(row rowScanner) (*customer.Customer, error) {
	var c customer.Customer
	var name, email sql.NullString
	var createdBy, updatedBy sql.NullString

	err := row.Scan(
		&c.ID,
		&c.TenantID,
		&name,
		&email,
		&c.Status,
		&c.CreatedAt,
		&c.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	c.Name = name.String
	c.Email = email.String
	c.CreatedBy = createdBy.String
	c.UpdatedBy = updatedBy.String
	return &c, nil
}
