package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/ports"
)

// Postgres-backed implementation of the OrderRepository port. Orders are
// joined with customers for the display name and stored coordinates.
type PostgresOrderRepository struct{ DB *sql.DB }

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// ListPending returns pending orders for one pickup date and warehouse,
// optionally restricted to an explicit id set. Priority is left false here;
// it is a per-request derivation owned by the assembler, not storage.
func (r *PostgresOrderRepository) ListPending(ctx context.Context, q ports.PendingOrderQuery) ([]domain.Order, error) {
	if r.DB == nil {
		return nil, errors.New("order repository: DB is nil")
	}

	query := `
	SELECT o.id, o.order_number, o.delivery_address, o.delivery_city, o.delivery_province,
	       o.delivery_postal_code, o.total_weight, o.pallets, o.customer_id,
	       c.company_name AS customer_name,
	       c.latitude AS customer_lat, c.longitude AS customer_lng
	FROM orders o
	JOIN customers c ON o.customer_id = c.id
	WHERE o.status = 'pending'
	  AND o.pickup_date = $1
	  AND o.pickup_warehouse_id = $2`

	args := []any{q.PickupDate, q.WarehouseID}
	if len(q.OrderIDs) > 0 {
		query += ` AND o.id = ANY($3::uuid[])`
		args = append(args, q.OrderIDs)
	}
	query += ` ORDER BY o.total_weight DESC, o.order_number;`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list pending orders: query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0, 64)
	for rows.Next() {
		var (
			o        domain.Order
			lat, lng sql.NullFloat64
		)
		err := rows.Scan(
			&o.ID, &o.OrderNumber, &o.DeliveryAddress, &o.DeliveryCity, &o.DeliveryProvince,
			&o.DeliveryPostalCode, &o.TotalWeight, &o.Pallets, &o.CustomerID,
			&o.CustomerName, &lat, &lng,
		)
		if err != nil {
			return nil, &domain.DataIntegrityError{Entity: "order", Err: err}
		}
		if lat.Valid && lng.Valid {
			o.Location = &domain.Coordinate{Lat: lat.Float64, Lng: lng.Float64}
		}
		orders = append(orders, o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list pending orders: row iteration: %w", err)
	}

	return orders, nil
}
