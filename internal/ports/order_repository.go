package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// PendingOrderQuery selects pending orders for one optimization request.
type PendingOrderQuery struct {
	WarehouseID string
	PickupDate  string
	// OrderIDs optionally restricts the result to an explicit id set.
	OrderIDs []string
}

// Port: a boundary for retrieving pending orders joined with customer data.
type OrderRepository interface {
	ListPending(ctx context.Context, q PendingOrderQuery) ([]domain.Order, error)
}
