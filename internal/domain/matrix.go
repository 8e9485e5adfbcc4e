package domain

import "fmt"

// UnknownDistance marks a matrix cell the routing service did not cover.
// Cells holding this sentinel must be patched before the matrix is used;
// 0 is a real value (same location) and cannot double as "missing".
const UnknownDistance = -1.0

// DistanceMatrix maps (originIndex, destinationIndex) to a travel distance in
// kilometers. Index 0 is the warehouse on both axes; indices 1..k correspond,
// in order, to the orders that carry a valid coordinate.
//
// The indexing contract is the most safety-critical invariant in the system:
// the sequence used to build the matrix must be the same sequence used to
// interpret solver output.
type DistanceMatrix [][]float64

// NewDistanceMatrix returns a rows x cols matrix with every cell set to fill.
func NewDistanceMatrix(rows, cols int, fill float64) DistanceMatrix {
	m := make(DistanceMatrix, rows)
	for i := range m {
		m[i] = make([]float64, cols)
		for j := range m[i] {
			m[i][j] = fill
		}
	}
	return m
}

// Dims returns the row and column counts.
func (m DistanceMatrix) Dims() (rows, cols int) {
	if len(m) == 0 {
		return 0, 0
	}
	return len(m), len(m[0])
}

// Validate checks that the matrix is square with the expected dimension,
// rectangular row by row, zero on the diagonal and non-negative everywhere.
func (m DistanceMatrix) Validate(size int) error {
	if len(m) != size {
		return fmt.Errorf("distance matrix: %d rows, want %d", len(m), size)
	}
	for i, row := range m {
		if len(row) != size {
			return fmt.Errorf("distance matrix: row %d has %d cells, want %d", i, len(row), size)
		}
		for j, d := range row {
			if i == j && d != 0 {
				return fmt.Errorf("distance matrix: diagonal cell (%d,%d) = %v, want 0", i, j, d)
			}
			if d < 0 {
				return fmt.Errorf("distance matrix: negative cell (%d,%d) = %v", i, j, d)
			}
		}
	}
	return nil
}
