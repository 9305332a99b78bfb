package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/sellora/sellora/internal/domain/order"
	ierr "github.com/sellora/sellora/internal/errors"
	"github.com/sellora/sellora/internal/logger"
	"github.com/sellora/sellora/internal/postgres"
	"github.com/sellora/sellora/internal/types"
)

type OrderRepository struct {
	client *postgres.Client
	logger *logger.Logger
}

func NewOrderRepository(client *postgres.Client, logger *logger.Logger) order.Repository {
	return &OrderRepository{client: client, logger: logger}
}

const orderColumns = `
	id, tenant_id, customer_id, order_status, total, currency,
	status, created_at, updated_at, created_by, updated_by
`

func (r *OrderRepository) Get(ctx context.Context, id string) (*order.Order, error) {
	span := StartRepositorySpan(ctx, "order", "get", map[string]interface{}{
		"order_id": id,
	})
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1
		AND id = $2
		AND status != $3
	`

	row := r.client.DB.QueryRowContext(ctx, query, tenantID, id, types.StatusDeleted)
	o, err := scanOrder(row)
	if err != nil {
		SetSpanError(span, err)
		if err == sql.ErrNoRows {
			return nil, ierr.NewError("order not found").
				WithHint("Order with the given ID does not exist").
				WithReportableDetails(map[string]interface{}{
					"order_id": id,
				}).
				Mark(ierr.ErrNotFound)
		}
		return nil, ierr.WithError(err).
			WithHint("Failed to get order").
			Mark(ierr.ErrDatabase)
	}

	if err := r.loadLineItems(ctx, []*order.Order{o}); err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	SetSpanSuccess(span)
	return o, nil
}

// ListByPeriod retrieves every order of the tenant created inside the
// half-open window [Start, End), regardless of order status, with line
// items attached.
func (r *OrderRepository) ListByPeriod(ctx context.Context, period types.TimeRange) ([]*order.Order, error) {
	span := StartRepositorySpan(ctx, "order", "list_by_period", map[string]interface{}{
		"period_start": period.Start,
		"period_end":   period.End,
	})
	defer FinishSpan(span)

	tenantID := types.GetTenantID(ctx)

	query := `
		SELECT ` + orderColumns + `
		FROM orders
		WHERE tenant_id = $1
		AND created_at >= $2
		AND created_at < $3
		AND status != $4
		ORDER BY created_at, id
	`

	rows, err := r.client.DB.QueryContext(ctx, query, tenantID, period.Start, period.End, types.StatusDeleted)
	if err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Failed to query orders").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	var orders []*order.Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			SetSpanError(span, err)
			return nil, ierr.WithError(err).
				WithHint("Failed to scan order").
				Mark(ierr.ErrDatabase)
		}
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		SetSpanError(span, err)
		return nil, ierr.WithError(err).
			WithHint("Error occurred during row iteration").
			Mark(ierr.ErrDatabase)
	}

	if err := r.loadLineItems(ctx, orders); err != nil {
		SetSpanError(span, err)
		return nil, err
	}

	r.logger.Debugw("listed orders by period",
		"tenant_id", tenantID,
		"period_start", period.Start,
		"period_end", period.End,
		"count", len(orders),
	)

	SetSpanSuccess(span)
	return orders, nil
}

// loadLineItems fetches the line items of the given orders in a single
// query and groups them in memory.
func (r *OrderRepository) loadLineItems(ctx context.Context, orders []*order.Order) error {
	if len(orders) == 0 {
		return nil
	}

	byID := make(map[string]*order.Order, len(orders))
	ids := make([]string, 0, len(orders))
	for _, o := range orders {
		byID[o.ID] = o
		ids = append(ids, o.ID)
	}

	query := `
		SELECT id, order_id, product_id, quantity, unit_price
		FROM order_line_items
		WHERE order_id = ANY($1)
		ORDER BY order_id, id
	`

	rows, err := r.client.DB.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return ierr.WithError(err).
			WithHint("Failed to query order line items").
			Mark(ierr.ErrDatabase)
	}
	defer rows.Close()

	for rows.Next() {
		var li order.LineItem
		var productID sql.NullString
		var unitPrice sql.NullString
		if err := rows.Scan(&li.ID, &li.OrderID, &productID, &li.Quantity, &unitPrice); err != nil {
			return ierr.WithError(err).
				WithHint("Failed to scan order line item").
				Mark(ierr.ErrDatabase)
		}
		li.ProductID = productID.String
		li.UnitPrice = types.ParseDecimalOrZero(unitPrice.String)

		if o, ok := byID[li.OrderID]; ok {
			o.LineItems = append(o.LineItems, &li)
		}
	}
	if err := rows.Err(); err != nil {
		return ierr.WithError(err).
			WithHint("Error occurred during row iteration").
			Mark(ierr.ErrDatabase)
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*order.Order, error) {
	var o order.Order
	var customerID sql.NullString
	var total sql.NullString
	var createdBy, updatedBy sql.NullString

	err := row.Scan(
		&o.ID,
		&o.TenantID,
		&customerID,
		&o.OrderStatus,
		&total,
		&o.Currency,
		&o.Status,
		&o.CreatedAt,
		&o.UpdatedAt,
		&createdBy,
		&updatedBy,
	)
	if err != nil {
		return nil, err
	}

	o.CustomerID = customerID.String
	o.Total = types.ParseDecimalOrZero(total.String)
	o.CreatedBy = createdBy.String
	o.UpdatedBy = updatedBy.String
	return &o, nil
}
