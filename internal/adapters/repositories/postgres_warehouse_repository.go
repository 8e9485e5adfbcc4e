package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"load-optimizer-service/internal/domain"
)

// Postgres-backed implementation of the WarehouseRepository port.
type PostgresWarehouseRepository struct{ DB *sql.DB }

func NewPostgresWarehouseRepository(db *sql.DB) *PostgresWarehouseRepository {
	return &PostgresWarehouseRepository{DB: db}
}

func (r *PostgresWarehouseRepository) GetWarehouse(ctx context.Context, id string) (*domain.Warehouse, error) {
	if r.DB == nil {
		return nil, errors.New("warehouse repository: DB is nil")
	}

	query := `
	SELECT id, name, address, city, province, postal_code, latitude, longitude
	FROM warehouses
	WHERE id = $1;
	`

	var (
		w        domain.Warehouse
		lat, lng sql.NullFloat64
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&w.ID, &w.Name, &w.Address, &w.City, &w.Province, &w.PostalCode, &lat, &lng,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, &domain.NotFoundError{Message: "Warehouse not found"}
	}
	if err != nil {
		return nil, &domain.DataIntegrityError{Entity: "warehouse", Err: err}
	}

	w.Location = domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}

	return &w, nil
}

func (r *PostgresWarehouseRepository) ListWarehouses(ctx context.Context) ([]domain.Warehouse, error) {
	if r.DB == nil {
		return nil, errors.New("warehouse repository: DB is nil")
	}

	query := `
	SELECT id, name, address, city, province, postal_code, latitude, longitude
	FROM warehouses
	ORDER BY name;
	`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list warehouses: query: %w", err)
	}
	defer rows.Close()

	warehouses := make([]domain.Warehouse, 0, 16)
	for rows.Next() {
		var (
			w        domain.Warehouse
			lat, lng sql.NullFloat64
		)
		if err := rows.Scan(&w.ID, &w.Name, &w.Address, &w.City, &w.Province, &w.PostalCode, &lat, &lng); err != nil {
			return nil, &domain.DataIntegrityError{Entity: "warehouse", Err: err}
		}
		w.Location = domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		warehouses = append(warehouses, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list warehouses: row iteration: %w", err)
	}

	return warehouses, nil
}
