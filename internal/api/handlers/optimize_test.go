package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"load-optimizer-service/internal/adapters/solver"
	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/platform/logging"
	"load-optimizer-service/internal/ports"
	"load-optimizer-service/internal/services"
)

type stubWarehouseRepo struct{ warehouse *domain.Warehouse }

func (r *stubWarehouseRepo) GetWarehouse(_ context.Context, id string) (*domain.Warehouse, error) {
	if r.warehouse == nil || r.warehouse.ID != id {
		return nil, &domain.NotFoundError{Message: "Warehouse not found"}
	}
	return r.warehouse, nil
}

func (r *stubWarehouseRepo) ListWarehouses(context.Context) ([]domain.Warehouse, error) {
	return nil, nil
}

type stubVehicleRepo struct{ vehicles []domain.Vehicle }

func (r *stubVehicleRepo) ListActive(context.Context, string, string) ([]domain.Vehicle, error) {
	return r.vehicles, nil
}

type stubOrderRepo struct{ orders []domain.Order }

func (r *stubOrderRepo) ListPending(context.Context, ports.PendingOrderQuery) ([]domain.Order, error) {
	return r.orders, nil
}

type stubLedger struct{}

func (stubLedger) Begin(context.Context, string, []byte) error                   { return nil }
func (stubLedger) Complete(context.Context, string, time.Duration, []byte) error { return nil }
func (stubLedger) Fail(context.Context, string, time.Duration, string) error     { return nil }

func newHandler(orders []domain.Order, s ports.Solver) *OptimizeHandler {
	warehouse := &domain.Warehouse{ID: "wh-1", Location: domain.Coordinate{Lat: 52.94, Lng: -106.45}}
	vehicles := []domain.Vehicle{{ID: "veh-1", VehicleNumber: "T-100", CapacityWeight: 10000, CapacityPallets: 20}}

	engine := services.NewDistanceEngine(nil, nil, 0, logging.Nop())
	optimizer := services.NewOptimizer(
		&stubWarehouseRepo{warehouse: warehouse},
		&stubVehicleRepo{vehicles: vehicles},
		&stubOrderRepo{orders: orders},
		stubLedger{},
		engine,
		s,
		logging.Nop(),
	)

	return &OptimizeHandler{Optimizer: optimizer, Log: logging.Nop()}
}

func doOptimize(t *testing.T, h *OptimizeHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/optimize/loads", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.OptimizeLoads(rec, req)
	return rec
}

func TestOptimizeLoadsMissingDate(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	rec := doOptimize(t, h, `{"warehouseId":"wh-1"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Date is required", body["error"])
}

func TestOptimizeLoadsMissingWarehouse(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	rec := doOptimize(t, h, `{"date":"2025-04-01"}`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Warehouse ID is required", body["error"])
}

func TestOptimizeLoadsNoPendingOrders(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	rec := doOptimize(t, h, `{"warehouseId":"wh-1","date":"2025-04-01"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "No pending orders found for the selected date and warehouse", body["error"])
}

func TestOptimizeLoadsUnknownWarehouse(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	rec := doOptimize(t, h, `{"warehouseId":"ghost","date":"2025-04-01"}`)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Warehouse not found", body["error"])
}

func TestOptimizeLoadsSolverFailure(t *testing.T) {
	orders := []domain.Order{{ID: "ord-1", OrderNumber: "SO-001", CustomerID: "cust-a", TotalWeight: 100, Pallets: 1}}
	h := newHandler(orders, &solver.ScriptedSolver{
		Err: &domain.SolverFailedError{ExitCode: 1, Stderr: "infeasible"},
	})

	rec := doOptimize(t, h, `{"warehouseId":"wh-1","date":"2025-04-01"}`)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "Optimization failed", body["error"])
	require.Contains(t, body["details"], "infeasible")
}

func TestOptimizeLoadsSuccess(t *testing.T) {
	orders := []domain.Order{{ID: "ord-1", OrderNumber: "SO-001", CustomerID: "cust-a", TotalWeight: 100, Pallets: 1}}
	loads := []domain.SuggestedLoad{{
		VehicleID:       "veh-1",
		Orders:          orders,
		TotalWeight:     100,
		TotalPallets:    1,
		TotalDistance:   12.5,
		EstimatedTime:   30,
		EfficiencyScore: 88,
	}}
	h := newHandler(orders, &solver.ScriptedSolver{Loads: loads})

	rec := doOptimize(t, h, `{"warehouseId":"wh-1","date":"2025-04-01","priorityCustomers":["cust-a"]}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		SuggestedLoads []struct {
			VehicleID       string  `json:"vehicleId"`
			EfficiencyScore float64 `json:"efficiencyScore"`
		} `json:"suggestedLoads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.SuggestedLoads, 1)
	require.Equal(t, "veh-1", body.SuggestedLoads[0].VehicleID)
	require.Equal(t, 88.0, body.SuggestedLoads[0].EfficiencyScore)
}

func TestOptimizeLoadsRejectsNonPost(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	req := httptest.NewRequest(http.MethodGet, "/optimize/loads", nil)
	rec := httptest.NewRecorder()
	h.OptimizeLoads(rec, req)

	require.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestOptimizeLoadsInvalidBody(t *testing.T) {
	h := newHandler(nil, &solver.ScriptedSolver{})

	rec := doOptimize(t, h, `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}
