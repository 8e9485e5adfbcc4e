package domain

// Warehouse is the depot a set of loads originates from.
// Read-only input to optimization; owned by storage.
type Warehouse struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Address    string     `json:"address"`
	City       string     `json:"city"`
	Province   string     `json:"province"`
	PostalCode string     `json:"postal_code"`
	Location   Coordinate `json:"location"`
}
