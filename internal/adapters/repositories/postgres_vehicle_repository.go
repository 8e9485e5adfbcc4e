package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"load-optimizer-service/internal/domain"
)

// Postgres-backed implementation of the VehicleRepository port.
type PostgresVehicleRepository struct{ DB *sql.DB }

func NewPostgresVehicleRepository(db *sql.DB) *PostgresVehicleRepository {
	return &PostgresVehicleRepository{DB: db}
}

// ListActive restricts to one vehicle id when given, otherwise to the
// warehouse's home fleet. An empty result is not an error.
func (r *PostgresVehicleRepository) ListActive(ctx context.Context, warehouseID, vehicleID string) ([]domain.Vehicle, error) {
	if r.DB == nil {
		return nil, errors.New("vehicle repository: DB is nil")
	}

	query := `
	SELECT id, vehicle_number, type, make, model, capacity_weight, capacity_pallets
	FROM vehicles
	WHERE status = 'active'
	`
	var arg string
	if vehicleID != "" {
		query += " AND id = $1"
		arg = vehicleID
	} else {
		query += " AND home_warehouse_id = $1"
		arg = warehouseID
	}
	query += " ORDER BY vehicle_number;"

	rows, err := r.DB.QueryContext(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list active vehicles: query: %w", err)
	}
	defer rows.Close()

	vehicles := make([]domain.Vehicle, 0, 16)
	for rows.Next() {
		var v domain.Vehicle
		err := rows.Scan(&v.ID, &v.VehicleNumber, &v.Type, &v.Make, &v.Model, &v.CapacityWeight, &v.CapacityPallets)
		if err != nil {
			return nil, &domain.DataIntegrityError{Entity: "vehicle", Err: err}
		}
		vehicles = append(vehicles, v)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list active vehicles: row iteration: %w", err)
	}

	return vehicles, nil
}
