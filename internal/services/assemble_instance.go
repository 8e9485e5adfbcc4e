package services

import (
	"context"
	"fmt"
	"slices"

	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/ports"
)

const defaultMaxStops = 10

// OptimizeLoadsRequest carries the validated parameters of one optimization
// run. WarehouseID and Date are mandatory; everything else narrows or tunes
// the run.
type OptimizeLoadsRequest struct {
	WarehouseID       string
	Date              string
	VehicleID         string
	OrderIDs          []string
	MaxStops          int
	ReturnToDepot     *bool
	PriorityCustomers []string
}

// assembleInstance gathers warehouse, fleet and eligible orders from storage,
// derives priority flags, orders the work deterministically, computes the
// distance matrix over [warehouse ++ located orders] and packages the
// immutable solver instance.
func (o *Optimizer) assembleInstance(ctx context.Context, req OptimizeLoadsRequest) (*domain.OptimizationInstance, error) {
	warehouse, err := o.warehouses.GetWarehouse(ctx, req.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("assemble instance: %w", err)
	}

	// An empty fleet is valid input: the solver simply reports no feasible loads.
	vehicles, err := o.vehicles.ListActive(ctx, req.WarehouseID, req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("assemble instance: %w", err)
	}

	orders, err := o.orders.ListPending(ctx, ports.PendingOrderQuery{
		WarehouseID: req.WarehouseID,
		PickupDate:  req.Date,
		OrderIDs:    req.OrderIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("assemble instance: %w", err)
	}
	if len(orders) == 0 {
		return nil, &domain.NotFoundError{
			Message: "No pending orders found for the selected date and warehouse",
		}
	}

	priority := make(map[string]struct{}, len(req.PriorityCustomers))
	for _, id := range req.PriorityCustomers {
		priority[id] = struct{}{}
	}
	for i := range orders {
		_, orders[i].Priority = priority[orders[i].CustomerID]
	}

	// Priority desc, then weight desc, then order number as a deterministic
	// tie-breaker. A hint to the solver, not a correctness requirement.
	slices.SortStableFunc(orders, func(a, b domain.Order) int {
		if a.Priority != b.Priority {
			if a.Priority {
				return -1
			}
			return 1
		}
		if a.TotalWeight != b.TotalWeight {
			if a.TotalWeight > b.TotalWeight {
				return -1
			}
			return 1
		}
		if a.OrderNumber < b.OrderNumber {
			return -1
		}
		if a.OrderNumber > b.OrderNumber {
			return 1
		}
		return 0
	})

	// Locations feed the matrix as [warehouse ++ located orders], preserving
	// order so matrix indices line up with the located subsequence.
	locations := []domain.Coordinate{warehouse.Location}
	for _, ord := range orders {
		if ord.HasLocation() {
			locations = append(locations, *ord.Location)
		}
	}

	matrix := o.engine.ComputeMatrix(ctx, locations)

	maxStops := req.MaxStops
	if maxStops <= 0 {
		maxStops = defaultMaxStops
	}
	returnToDepot := true
	if req.ReturnToDepot != nil {
		returnToDepot = *req.ReturnToDepot
	}

	return &domain.OptimizationInstance{
		Warehouse:      *warehouse,
		Vehicles:       vehicles,
		Orders:         orders,
		DistanceMatrix: matrix,
		MaxStops:       maxStops,
		ReturnToDepot:  returnToDepot,
	}, nil
}
