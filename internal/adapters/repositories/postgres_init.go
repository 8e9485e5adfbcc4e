package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// InitSchema creates the dispatch tables when they do not exist. The schema
// mirrors the production database this service reads from.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createWarehousesQuery := `
	CREATE TABLE IF NOT EXISTS warehouses (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		address TEXT NOT NULL DEFAULT '',
		city TEXT NOT NULL DEFAULT '',
		province TEXT NOT NULL DEFAULT '',
		postal_code TEXT NOT NULL DEFAULT '',
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`

	createCustomersQuery := `
	CREATE TABLE IF NOT EXISTS customers (
		id UUID PRIMARY KEY,
		company_name TEXT NOT NULL,
		latitude DOUBLE PRECISION,
		longitude DOUBLE PRECISION
	);
	`

	createVehiclesQuery := `
	CREATE TABLE IF NOT EXISTS vehicles (
		id UUID PRIMARY KEY,
		vehicle_number TEXT NOT NULL,
		type TEXT NOT NULL DEFAULT '',
		make TEXT NOT NULL DEFAULT '',
		model TEXT NOT NULL DEFAULT '',
		capacity_weight DOUBLE PRECISION NOT NULL,
		capacity_pallets INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'active',
		home_warehouse_id UUID REFERENCES warehouses(id)
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		id UUID PRIMARY KEY,
		order_number TEXT NOT NULL,
		delivery_address TEXT NOT NULL DEFAULT '',
		delivery_city TEXT NOT NULL DEFAULT '',
		delivery_province TEXT NOT NULL DEFAULT '',
		delivery_postal_code TEXT NOT NULL DEFAULT '',
		total_weight DOUBLE PRECISION NOT NULL,
		pallets INTEGER NOT NULL,
		status TEXT NOT NULL DEFAULT 'pending',
		pickup_date DATE NOT NULL,
		pickup_warehouse_id UUID REFERENCES warehouses(id),
		customer_id UUID REFERENCES customers(id)
	);
	`

	createLogsQuery := `
	CREATE TABLE IF NOT EXISTS optimization_logs (
		log_id UUID PRIMARY KEY,
		optimization_type TEXT NOT NULL,
		input_parameters JSONB,
		created_at TIMESTAMPTZ NOT NULL,
		completed_at TIMESTAMPTZ,
		duration_ms BIGINT,
		output JSONB,
		error_message TEXT,
		status TEXT
	);
	`

	createOrderIndexQuery := `
	CREATE INDEX IF NOT EXISTS idx_orders_pending_pickup
	ON orders(pickup_warehouse_id, pickup_date) WHERE status = 'pending';
	`

	statements := []string{
		createWarehousesQuery,
		createCustomersQuery,
		createVehiclesQuery,
		createOrdersQuery,
		createLogsQuery,
		createOrderIndexQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type warehouseSeed struct {
	ID         string   `json:"id"`
	Name       string   `json:"name"`
	Address    string   `json:"address"`
	City       string   `json:"city"`
	Province   string   `json:"province"`
	PostalCode string   `json:"postal_code"`
	Latitude   *float64 `json:"latitude"`
	Longitude  *float64 `json:"longitude"`
}

type customerSeed struct {
	ID          string   `json:"id"`
	CompanyName string   `json:"company_name"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
}

type vehicleSeed struct {
	ID              string  `json:"id"`
	VehicleNumber   string  `json:"vehicle_number"`
	Type            string  `json:"type"`
	Make            string  `json:"make"`
	Model           string  `json:"model"`
	CapacityWeight  float64 `json:"capacity_weight"`
	CapacityPallets int     `json:"capacity_pallets"`
	Status          string  `json:"status"`
	HomeWarehouseID string  `json:"home_warehouse_id"`
}

type orderSeed struct {
	ID                 string  `json:"id"`
	OrderNumber        string  `json:"order_number"`
	DeliveryAddress    string  `json:"delivery_address"`
	DeliveryCity       string  `json:"delivery_city"`
	DeliveryProvince   string  `json:"delivery_province"`
	DeliveryPostalCode string  `json:"delivery_postal_code"`
	TotalWeight        float64 `json:"total_weight"`
	Pallets            int     `json:"pallets"`
	Status             string  `json:"status"`
	PickupDate         string  `json:"pickup_date"`
	PickupWarehouseID  string  `json:"pickup_warehouse_id"`
	CustomerID         string  `json:"customer_id"`
}

type seedFile struct {
	Warehouses []warehouseSeed `json:"warehouses"`
	Customers  []customerSeed  `json:"customers"`
	Vehicles   []vehicleSeed   `json:"vehicles"`
	Orders     []orderSeed     `json:"orders"`
}

// SeedFromJSON populates the dispatch tables with demo data for local runs.
// Existing rows win: every insert is ON CONFLICT DO NOTHING.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	raw, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed dispatch data: read %q: %w", jsonPath, err)
	}

	var data seedFile
	if err := json.Unmarshal(raw, &data); err != nil {
		return fmt.Errorf("seed dispatch data: parse json: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed dispatch data: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for _, w := range data.Warehouses {
		_, err := tx.Exec(`
			INSERT INTO warehouses (id, name, address, city, province, postal_code, latitude, longitude)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			ON CONFLICT (id) DO NOTHING;`,
			w.ID, w.Name, w.Address, w.City, w.Province, w.PostalCode, w.Latitude, w.Longitude,
		)
		if err != nil {
			return fmt.Errorf("seed dispatch data: insert warehouse %s: %w", w.ID, err)
		}
	}

	for _, c := range data.Customers {
		_, err := tx.Exec(`
			INSERT INTO customers (id, company_name, latitude, longitude)
			VALUES ($1, $2, $3, $4)
			ON CONFLICT (id) DO NOTHING;`,
			c.ID, c.CompanyName, c.Latitude, c.Longitude,
		)
		if err != nil {
			return fmt.Errorf("seed dispatch data: insert customer %s: %w", c.ID, err)
		}
	}

	for _, v := range data.Vehicles {
		if v.Status == "" {
			v.Status = "active"
		}
		_, err := tx.Exec(`
			INSERT INTO vehicles (id, vehicle_number, type, make, model, capacity_weight, capacity_pallets, status, home_warehouse_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			ON CONFLICT (id) DO NOTHING;`,
			v.ID, v.VehicleNumber, v.Type, v.Make, v.Model, v.CapacityWeight, v.CapacityPallets, v.Status, v.HomeWarehouseID,
		)
		if err != nil {
			return fmt.Errorf("seed dispatch data: insert vehicle %s: %w", v.ID, err)
		}
	}

	for _, o := range data.Orders {
		if o.Status == "" {
			o.Status = "pending"
		}
		_, err := tx.Exec(`
			INSERT INTO orders (id, order_number, delivery_address, delivery_city, delivery_province,
				delivery_postal_code, total_weight, pallets, status, pickup_date, pickup_warehouse_id, customer_id)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
			ON CONFLICT (id) DO NOTHING;`,
			o.ID, o.OrderNumber, o.DeliveryAddress, o.DeliveryCity, o.DeliveryProvince,
			o.DeliveryPostalCode, o.TotalWeight, o.Pallets, o.Status, o.PickupDate, o.PickupWarehouseID, o.CustomerID,
		)
		if err != nil {
			return fmt.Errorf("seed dispatch data: insert order %s: %w", o.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed dispatch data: commit tx: %w", err)
	}

	return nil
}
