package services

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"load-optimizer-service/internal/adapters/distance"
	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/ports"
)

// DistanceEngine computes the pairwise travel matrix over a location list.
//
// It degrades instead of erroring: the routing provider is tried first and
// any failure (network, quota, malformed response) is logged and absorbed by
// the deterministic haversine fallback. Cells the provider covered but the
// response omitted are patched per cell rather than per call, so a partial
// response still benefits from real drive distances.
type DistanceEngine struct {
	provider ports.MatrixProvider
	cache    ports.MatrixCache
	timeout  time.Duration
	log      zerolog.Logger
}

// NewDistanceEngine builds an engine. cache may be nil; provider may be nil
// when no routing service is configured, in which case every matrix is the
// haversine estimate.
func NewDistanceEngine(provider ports.MatrixProvider, cache ports.MatrixCache, timeout time.Duration, log zerolog.Logger) *DistanceEngine {
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &DistanceEngine{provider: provider, cache: cache, timeout: timeout, log: log}
}

// ComputeMatrix returns the square matrix over locations, with index 0 the
// warehouse and indices 1..k the located orders. It never fails: the result
// always has dimensions len(locations) x len(locations), a zero diagonal and
// non-negative cells.
func (e *DistanceEngine) ComputeMatrix(ctx context.Context, locations []domain.Coordinate) domain.DistanceMatrix {
	n := len(locations)
	if n == 0 {
		return domain.DistanceMatrix{}
	}

	if e.cache != nil {
		if m, ok, err := e.cache.Get(ctx, locations); err != nil {
			e.log.Warn().Err(err).Msg("matrix cache read failed")
		} else if ok && m.Validate(n) == nil {
			return m
		}
	}

	m := e.fetch(ctx, locations)

	if e.cache != nil {
		if err := e.cache.Put(ctx, locations, m); err != nil {
			e.log.Warn().Err(err).Msg("matrix cache write failed")
		}
	}

	return m
}

func (e *DistanceEngine) fetch(ctx context.Context, locations []domain.Coordinate) domain.DistanceMatrix {
	if e.provider == nil {
		return distance.HaversineMatrix(locations, locations)
	}

	// The provider call gets its own timeout, detached from the request
	// context: an aborted client request does not cancel an in-flight call.
	callCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
	defer cancel()

	m, err := e.provider.ComputeMatrix(callCtx, locations, locations)
	if err != nil {
		e.log.Warn().Err(err).Msg("routing service unavailable, using haversine fallback")
		return distance.HaversineMatrix(locations, locations)
	}

	if err := e.patch(m, locations); err != nil {
		e.log.Warn().Err(err).Msg("routing response unusable, using haversine fallback")
		return distance.HaversineMatrix(locations, locations)
	}

	return m
}

// patch fills unknown cells with the haversine estimate and forces the
// diagonal to zero. A matrix with wrong dimensions is rejected wholesale.
func (e *DistanceEngine) patch(m domain.DistanceMatrix, locations []domain.Coordinate) error {
	rows, cols := m.Dims()
	if rows != len(locations) || cols != len(locations) {
		return fmt.Errorf("routing matrix is %dx%d, want %dx%d", rows, cols, len(locations), len(locations))
	}

	for i := range m {
		for j := range m[i] {
			switch {
			case i == j:
				m[i][j] = 0
			case m[i][j] < 0:
				m[i][j] = distance.Haversine(locations[i], locations[j])
			}
		}
	}

	return nil
}
