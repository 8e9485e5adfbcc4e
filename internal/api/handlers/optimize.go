package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/api/dto"
	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/services"
)

// OptimizeHandler exposes the load-optimization entry point.
type OptimizeHandler struct {
	Optimizer *services.Optimizer
	Log       zerolog.Logger
}

// OptimizeLoads validates the inbound request, runs the optimization pipeline
// and maps outcomes to responses: 400 for missing parameters, 404 for lookup
// misses, 500 with diagnostic details for solver misbehavior, 200 with the
// suggested loads on success.
func (h *OptimizeHandler) OptimizeLoads(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req dto.OptimizeRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}

	loads, err := h.Optimizer.OptimizeLoads(r.Context(), services.OptimizeLoadsRequest{
		WarehouseID:       req.WarehouseID,
		Date:              req.Date,
		VehicleID:         req.VehicleID,
		OrderIDs:          req.OrderIDs,
		MaxStops:          req.MaxStops,
		ReturnToDepot:     req.ReturnToDepot,
		PriorityCustomers: req.PriorityCustomers,
	})
	if err != nil {
		h.respondError(w, r, err)
		return
	}

	res := dto.OptimizeResponse{SuggestedLoads: make([]dto.SuggestedLoadResponse, 0, len(loads))}
	for _, l := range loads {
		res.SuggestedLoads = append(res.SuggestedLoads, dto.SuggestedLoadResponse{
			VehicleID:       l.VehicleID,
			Orders:          l.Orders,
			Route:           l.Route,
			TotalWeight:     l.TotalWeight,
			TotalPallets:    l.TotalPallets,
			TotalDistance:   l.TotalDistance,
			EstimatedTime:   l.EstimatedTime,
			EfficiencyScore: l.EfficiencyScore,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}

func (h *OptimizeHandler) respondError(w http.ResponseWriter, r *http.Request, err error) {
	var missing *domain.MissingParameterError
	if errors.As(err, &missing) {
		writeError(w, r, http.StatusBadRequest, missing.Message)
		return
	}

	var notFound *domain.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, r, http.StatusNotFound, notFound.Message)
		return
	}

	var solverFailed *domain.SolverFailedError
	var outputInvalid *domain.SolverOutputInvalidError
	if errors.As(err, &solverFailed) || errors.As(err, &outputInvalid) {
		h.Log.Error().Err(err).Msg("optimization failed")
		writeErrorDetails(w, r, http.StatusInternalServerError, "Optimization failed", err.Error())
		return
	}

	h.Log.Error().Err(err).Msg("server error during optimization")
	writeErrorDetails(w, r, http.StatusInternalServerError, "Server error during optimization", err.Error())
}
