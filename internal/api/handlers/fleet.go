package handlers

import (
	"net/http"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/api/dto"
	"load-optimizer-service/internal/ports"
)

// FleetHandler exposes read-only warehouse and vehicle listings.
type FleetHandler struct {
	Warehouses ports.WarehouseRepository
	Vehicles   ports.VehicleRepository
	Log        zerolog.Logger
}

func (h *FleetHandler) ListWarehouses(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouses, err := h.Warehouses.ListWarehouses(r.Context())
	if err != nil {
		h.Log.Error().Err(err).Msg("list warehouses failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListWarehousesResponse{Warehouses: make([]dto.WarehouseResponse, 0, len(warehouses))}
	for _, wh := range warehouses {
		res.Warehouses = append(res.Warehouses, dto.WarehouseResponse{
			ID:         wh.ID,
			Name:       wh.Name,
			Address:    wh.Address,
			City:       wh.City,
			Province:   wh.Province,
			PostalCode: wh.PostalCode,
			Location:   wh.Location,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

// ListVehicles returns the active fleet for a warehouse. The warehouseId
// query parameter is required since vehicles are listed per home warehouse.
func (h *FleetHandler) ListVehicles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	warehouseID := r.URL.Query().Get("warehouseId")
	if warehouseID == "" {
		writeError(w, r, http.StatusBadRequest, "warehouseId is required")
		return
	}

	vehicles, err := h.Vehicles.ListActive(r.Context(), warehouseID, "")
	if err != nil {
		h.Log.Error().Err(err).Msg("list vehicles failed")
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListVehiclesResponse{Vehicles: make([]dto.VehicleResponse, 0, len(vehicles))}
	for _, v := range vehicles {
		res.Vehicles = append(res.Vehicles, dto.VehicleResponse{
			ID:              v.ID,
			VehicleNumber:   v.VehicleNumber,
			Type:            v.Type,
			Make:            v.Make,
			Model:           v.Model,
			CapacityWeight:  v.CapacityWeight,
			CapacityPallets: v.CapacityPallets,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
