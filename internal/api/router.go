package api

import (
	"net/http"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/api/handlers"
	"load-optimizer-service/internal/ports"
	"load-optimizer-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root; handlers stay unaware of
// concrete adapters.
func NewRouter(
	optimizer *services.Optimizer,
	warehouses ports.WarehouseRepository,
	vehicles ports.VehicleRepository,
	log zerolog.Logger,
) http.Handler {
	mux := http.NewServeMux()

	optimizeHandler := &handlers.OptimizeHandler{Optimizer: optimizer, Log: log}
	fleetHandler := &handlers.FleetHandler{Warehouses: warehouses, Vehicles: vehicles, Log: log}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/warehouses", fleetHandler.ListWarehouses)
	mux.HandleFunc("/vehicles", fleetHandler.ListVehicles)
	mux.HandleFunc("/optimize/loads", optimizeHandler.OptimizeLoads)

	return requestLogger(log, mux)
}
