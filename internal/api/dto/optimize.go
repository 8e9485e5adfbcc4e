package dto

import "load-optimizer-service/internal/domain"

// OptimizeRequest mirrors the legacy request body. DriverID is accepted for
// wire compatibility but unused.
type OptimizeRequest struct {
	WarehouseID       string   `json:"warehouseId"`
	Date              string   `json:"date"`
	VehicleID         string   `json:"vehicleId"`
	DriverID          string   `json:"driverId"`
	OrderIDs          []string `json:"orderIds"`
	MaxStops          int      `json:"maxStops"`
	ReturnToDepot     *bool    `json:"returnToDepot"`
	PriorityCustomers []string `json:"priorityCustomers"`
}

type SuggestedLoadResponse struct {
	VehicleID       string              `json:"vehicleId"`
	Orders          []domain.Order      `json:"orders"`
	Route           []domain.Coordinate `json:"route"`
	TotalWeight     float64             `json:"totalWeight"`
	TotalPallets    int                 `json:"totalPallets"`
	TotalDistance   float64             `json:"totalDistance"`
	EstimatedTime   float64             `json:"estimatedTime"`
	EfficiencyScore float64             `json:"efficiencyScore"`
}

type OptimizeResponse struct {
	SuggestedLoads []SuggestedLoadResponse `json:"suggestedLoads"`
}
