package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/platform/obs"
	"load-optimizer-service/internal/ports"
)

// Optimizer orchestrates one load-optimization run end to end: parameter
// validation, ledger begin, instance assembly, solving, capacity validation,
// ledger completion.
type Optimizer struct {
	warehouses ports.WarehouseRepository
	vehicles   ports.VehicleRepository
	orders     ports.OrderRepository
	ledger     ports.RunLedger
	engine     *DistanceEngine
	solver     ports.Solver
	log        zerolog.Logger
}

func NewOptimizer(
	warehouses ports.WarehouseRepository,
	vehicles ports.VehicleRepository,
	orders ports.OrderRepository,
	ledger ports.RunLedger,
	engine *DistanceEngine,
	solver ports.Solver,
	log zerolog.Logger,
) *Optimizer {
	return &Optimizer{
		warehouses: warehouses,
		vehicles:   vehicles,
		orders:     orders,
		ledger:     ledger,
		engine:     engine,
		solver:     solver,
		log:        log,
	}
}

// OptimizeLoads runs one optimization request and returns the validated
// suggested loads.
//
// Missing-parameter failures short-circuit before any side effect. Every
// failure after the ledger begin is recorded with status ERROR before being
// returned; success records the output payload. Ledger write failures are
// logged and never mask the primary result.
func (o *Optimizer) OptimizeLoads(ctx context.Context, req OptimizeLoadsRequest) (_ []domain.SuggestedLoad, err error) {
	defer obs.Time(ctx, o.log, "optimizer.OptimizeLoads")(&err)

	if strings.TrimSpace(req.WarehouseID) == "" {
		return nil, &domain.MissingParameterError{Field: "warehouseId", Message: "Warehouse ID is required"}
	}
	if strings.TrimSpace(req.Date) == "" {
		return nil, &domain.MissingParameterError{Field: "date", Message: "Date is required"}
	}

	runID := uuid.NewString()
	start := time.Now()

	params, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("optimize loads: marshal run parameters: %w", err)
	}

	if err := o.ledger.Begin(ctx, runID, params); err != nil {
		o.log.Error().Err(err).Str("run_id", runID).Msg("run ledger begin failed")
	}

	loads, err := o.run(ctx, req)
	if err != nil {
		if ferr := o.ledger.Fail(ctx, runID, time.Since(start), err.Error()); ferr != nil {
			o.log.Error().Err(ferr).Str("run_id", runID).Msg("run ledger fail-write failed")
		}
		return nil, err
	}

	output, merr := json.Marshal(map[string]any{"suggestedLoads": loads})
	if merr != nil {
		o.log.Error().Err(merr).Str("run_id", runID).Msg("marshal run output failed")
		output = nil
	}
	if cerr := o.ledger.Complete(ctx, runID, time.Since(start), output); cerr != nil {
		o.log.Error().Err(cerr).Str("run_id", runID).Msg("run ledger complete-write failed")
	}

	return loads, nil
}

// run is the fallible middle of a request: everything between ledger begin
// and ledger completion.
func (o *Optimizer) run(ctx context.Context, req OptimizeLoadsRequest) ([]domain.SuggestedLoad, error) {
	inst, err := o.assembleInstance(ctx, req)
	if err != nil {
		return nil, err
	}

	loads, err := o.solver.Optimize(ctx, inst)
	if err != nil {
		return nil, err
	}

	// The solver's word is not final: loads breaching vehicle capacity are a
	// contract violation and must never reach the caller.
	if err := domain.ValidateLoadCapacities(loads, inst.Vehicles); err != nil {
		return nil, err
	}

	if loads == nil {
		loads = []domain.SuggestedLoad{}
	}
	return loads, nil
}
