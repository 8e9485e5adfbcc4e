package services

import (
	"context"
	"errors"
	"math"
	"testing"

	"load-optimizer-service/internal/adapters/distance"
	"load-optimizer-service/internal/domain"
	"load-optimizer-service/internal/platform/logging"
)

type stubProvider struct {
	matrix domain.DistanceMatrix
	err    error
	calls  int
}

func (p *stubProvider) ComputeMatrix(_ context.Context, origins, destinations []domain.Coordinate) (domain.DistanceMatrix, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return p.matrix, nil
}

type stubCache struct {
	matrix domain.DistanceMatrix
	hit    bool
	puts   int
}

func (c *stubCache) Get(context.Context, []domain.Coordinate) (domain.DistanceMatrix, bool, error) {
	return c.matrix, c.hit, nil
}

func (c *stubCache) Put(_ context.Context, _ []domain.Coordinate, m domain.DistanceMatrix) error {
	c.puts++
	c.matrix = m
	return nil
}

func matricesEqual(a, b domain.DistanceMatrix) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if len(a[i]) != len(b[i]) {
			return false
		}
		for j := range a[i] {
			if math.Abs(a[i][j]-b[i][j]) > 1e-9 {
				return false
			}
		}
	}
	return true
}

func TestComputeMatrixFallsBackToHaversine(t *testing.T) {
	locations := []domain.Coordinate{
		{Lat: 52.94, Lng: -106.45},
		{Lat: 52.13, Lng: -106.67},
		{Lat: 50.44, Lng: -104.62},
	}

	provider := &stubProvider{err: errors.New("routing service down")}
	engine := NewDistanceEngine(provider, nil, 0, logging.Nop())

	m := engine.ComputeMatrix(context.Background(), locations)

	want := distance.HaversineMatrix(locations, locations)
	if !matricesEqual(m, want) {
		t.Fatalf("fallback matrix differs from haversine matrix:\n got %v\nwant %v", m, want)
	}
}

func TestComputeMatrixDimensions(t *testing.T) {
	for _, n := range []int{1, 2, 5} {
		locations := make([]domain.Coordinate, n)
		for i := range locations {
			locations[i] = domain.Coordinate{Lat: float64(i), Lng: float64(i)}
		}

		engine := NewDistanceEngine(&stubProvider{err: errors.New("down")}, nil, 0, logging.Nop())
		m := engine.ComputeMatrix(context.Background(), locations)

		rows, cols := m.Dims()
		if rows != n || cols != n {
			t.Fatalf("n=%d: matrix is %dx%d, want %dx%d", n, rows, cols, n, n)
		}
		if err := m.Validate(n); err != nil {
			t.Fatalf("n=%d: matrix invalid: %v", n, err)
		}
	}
}

func TestComputeMatrixSameLocationIsZero(t *testing.T) {
	// Warehouse and two orders at the exact same coordinates: 3x3 zero matrix.
	c := domain.Coordinate{Lat: 52.94, Lng: -106.45}
	locations := []domain.Coordinate{c, c, c}

	engine := NewDistanceEngine(&stubProvider{err: errors.New("down")}, nil, 0, logging.Nop())
	m := engine.ComputeMatrix(context.Background(), locations)

	for i := range m {
		for j := range m[i] {
			if m[i][j] != 0 {
				t.Fatalf("cell (%d,%d) = %v, want 0", i, j, m[i][j])
			}
		}
	}
}

func TestComputeMatrixPatchesUnknownCells(t *testing.T) {
	locations := []domain.Coordinate{
		{Lat: 52.94, Lng: -106.45},
		{Lat: 52.13, Lng: -106.67},
	}

	// Provider covers one direction only; the reverse cell stays unknown.
	partial := domain.NewDistanceMatrix(2, 2, domain.UnknownDistance)
	partial[0][1] = 95

	engine := NewDistanceEngine(&stubProvider{matrix: partial}, nil, 0, logging.Nop())
	m := engine.ComputeMatrix(context.Background(), locations)

	if m[0][1] != 95 {
		t.Fatalf("covered cell = %v, want 95", m[0][1])
	}
	want := distance.Haversine(locations[1], locations[0])
	if math.Abs(m[1][0]-want) > 1e-9 {
		t.Fatalf("patched cell = %v, want haversine %v", m[1][0], want)
	}
	if m[0][0] != 0 || m[1][1] != 0 {
		t.Fatalf("diagonal not forced to zero: %v", m)
	}
}

func TestComputeMatrixRejectsWrongDimensions(t *testing.T) {
	locations := []domain.Coordinate{
		{Lat: 52.94, Lng: -106.45},
		{Lat: 52.13, Lng: -106.67},
	}

	engine := NewDistanceEngine(&stubProvider{matrix: domain.NewDistanceMatrix(1, 1, 0)}, nil, 0, logging.Nop())
	m := engine.ComputeMatrix(context.Background(), locations)

	want := distance.HaversineMatrix(locations, locations)
	if !matricesEqual(m, want) {
		t.Fatalf("misshapen provider matrix not replaced by haversine fallback")
	}
}

func TestComputeMatrixUsesCache(t *testing.T) {
	locations := []domain.Coordinate{
		{Lat: 1, Lng: 1},
		{Lat: 2, Lng: 2},
	}

	cached := distance.HaversineMatrix(locations, locations)
	provider := &stubProvider{err: errors.New("down")}
	engine := NewDistanceEngine(provider, &stubCache{matrix: cached, hit: true}, 0, logging.Nop())

	m := engine.ComputeMatrix(context.Background(), locations)

	if provider.calls != 0 {
		t.Fatalf("provider called %d times despite cache hit", provider.calls)
	}
	if !matricesEqual(m, cached) {
		t.Fatalf("cache hit not returned")
	}
}

func TestComputeMatrixWritesCacheOnMiss(t *testing.T) {
	locations := []domain.Coordinate{
		{Lat: 1, Lng: 1},
		{Lat: 2, Lng: 2},
	}

	c := &stubCache{}
	engine := NewDistanceEngine(&stubProvider{err: errors.New("down")}, c, 0, logging.Nop())

	engine.ComputeMatrix(context.Background(), locations)

	if c.puts != 1 {
		t.Fatalf("cache puts = %d, want 1", c.puts)
	}
}
