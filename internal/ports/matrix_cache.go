package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// Port: an optional cache in front of the matrix provider. Implementations
// derive a stable key from the location list. Cache errors are advisory; the
// caller logs and proceeds without the cache.
type MatrixCache interface {
	Get(ctx context.Context, locations []domain.Coordinate) (domain.DistanceMatrix, bool, error)
	Put(ctx context.Context, locations []domain.Coordinate, m domain.DistanceMatrix) error
}
