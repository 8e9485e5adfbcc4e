package dto

import "load-optimizer-service/internal/domain"

type WarehouseResponse struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Address    string            `json:"address"`
	City       string            `json:"city"`
	Province   string            `json:"province"`
	PostalCode string            `json:"postal_code"`
	Location   domain.Coordinate `json:"location"`
}

type ListWarehousesResponse struct {
	Warehouses []WarehouseResponse `json:"warehouses"`
}

type VehicleResponse struct {
	ID              string  `json:"id"`
	VehicleNumber   string  `json:"vehicle_number"`
	Type            string  `json:"type"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	CapacityWeight  float64 `json:"capacity_weight"`
	CapacityPallets int     `json:"capacity_pallets"`
}

type ListVehiclesResponse struct {
	Vehicles []VehicleResponse `json:"vehicles"`
}
