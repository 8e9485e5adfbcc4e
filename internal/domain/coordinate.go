package domain

// Immutable geographic coordinate in degrees (WGS84).
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Valid reports whether the coordinate lies inside the WGS84 ranges.
// Out-of-range values are treated as "no location", never as an error.
func (c Coordinate) Valid() bool {
	return c.Lat >= -90 && c.Lat <= 90 && c.Lng >= -180 && c.Lng <= 180
}
