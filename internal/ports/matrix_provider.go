package ports

import (
	"context"

	"load-optimizer-service/internal/domain"
)

// Port: a boundary for computing pairwise travel distances from an external
// routing service.
type MatrixProvider interface {
	// ComputeMatrix returns a len(origins) x len(destinations) matrix of
	// travel distances in kilometers. Cells the service did not cover are
	// reported as domain.UnknownDistance so the caller can patch them.
	ComputeMatrix(ctx context.Context, origins, destinations []domain.Coordinate) (domain.DistanceMatrix, error)
}
