package domain

import "fmt"

// SuggestedLoad is one candidate assignment produced by the solver: a vehicle,
// an ordered visit sequence of orders, the route geometry and the solver's
// aggregate metrics. The core validates and relays it; it never edits one.
type SuggestedLoad struct {
	VehicleID       string       `json:"vehicleId"`
	Orders          []Order      `json:"orders"`
	Route           []Coordinate `json:"route"`
	TotalWeight     float64      `json:"totalWeight"`
	TotalPallets    int          `json:"totalPallets"`
	TotalDistance   float64      `json:"totalDistance"`
	EstimatedTime   float64      `json:"estimatedTime"`
	EfficiencyScore float64      `json:"efficiencyScore"`
}

// ValidateLoadCapacities checks every suggested load against the capacity of
// its assigned vehicle. A load referencing an unknown vehicle, or exceeding
// the vehicle's weight or pallet capacity, is a solver contract breach and is
// rejected rather than relayed.
func ValidateLoadCapacities(loads []SuggestedLoad, vehicles []Vehicle) error {
	byID := make(map[string]Vehicle, len(vehicles))
	for _, v := range vehicles {
		byID[v.ID] = v
	}

	for i, load := range loads {
		v, ok := byID[load.VehicleID]
		if !ok {
			return &SolverOutputInvalidError{
				Message: fmt.Sprintf("load %d references unknown vehicle %q", i, load.VehicleID),
			}
		}
		if load.TotalWeight > v.CapacityWeight {
			return &SolverOutputInvalidError{
				Message: fmt.Sprintf(
					"load %d exceeds weight capacity of vehicle %s: %.1f > %.1f",
					i, v.VehicleNumber, load.TotalWeight, v.CapacityWeight,
				),
			}
		}
		if load.TotalPallets > v.CapacityPallets {
			return &SolverOutputInvalidError{
				Message: fmt.Sprintf(
					"load %d exceeds pallet capacity of vehicle %s: %d > %d",
					i, v.VehicleNumber, load.TotalPallets, v.CapacityPallets,
				),
			}
		}
	}

	return nil
}
