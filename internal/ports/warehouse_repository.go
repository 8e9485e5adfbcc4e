package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving Warehouse entities from a data source.
type WarehouseRepository interface {
	// Retrieve one warehouse by id. Returns domain.NotFoundError when absent.
	GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error)
	// Retrieve all warehouses.
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}
