package types

// OrderStatus is the lifecycle status of a storefront order. Tenants may
// define additional statuses; unknown values pass through unvalidated and
// simply never count toward revenue.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRefunded  OrderStatus = "refunded"
)

func (s OrderStatus) String() string {
	return string(s)
}

// CountsTowardRevenue reports whether an order in this status is eligible
// for revenue aggregates. Pending and cancelled orders stay visible in
// volume metrics but must not inflate revenue.
func (s OrderStatus) CountsTowardRevenue() bool {
	return s == OrderStatusCompleted
}
