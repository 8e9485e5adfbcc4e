package domain

// Vehicle describes one unit of the fleet available for loading.
// Capacity values are the binding constraint every produced load must satisfy.
type Vehicle struct {
	ID              string  `json:"id"`
	VehicleNumber   string  `json:"vehicle_number"`
	Type            string  `json:"type"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	CapacityWeight  float64 `json:"capacity_weight"`
	CapacityPallets int     `json:"capacity_pallets"`
}
