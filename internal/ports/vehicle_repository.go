package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// Port: a boundary for retrieving Vehicle entities from a data source.
type VehicleRepository interface {
	// ListActive returns active vehicles. When vehicleID is non-empty the
	// result is restricted to that vehicle; otherwise it is the fleet whose
	// home warehouse matches warehouseID. An empty result is valid input to
	// the solver, not an error.
	ListActive(ctx context.Context, warehouseID, vehicleID string) ([]domain.Vehicle, error)
}
