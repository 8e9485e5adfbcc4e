package domain

// OptimizationInstance is the immutable snapshot handed to the solver:
// warehouse, fleet, orders (located or not), the distance matrix over
// [warehouse ++ located orders], and the scalar knobs. Constructed once per
// request and never mutated afterwards.
type OptimizationInstance struct {
	Warehouse      Warehouse      `json:"warehouse"`
	Vehicles       []Vehicle      `json:"vehicles"`
	Orders         []Order        `json:"orders"`
	DistanceMatrix DistanceMatrix `json:"distanceMatrix"`
	MaxStops       int            `json:"maxStops"`
	ReturnToDepot  bool           `json:"returnToDepot"`
}

// LocatedOrders projects the subsequence of orders carrying a valid
// coordinate, preserving relative order. The result indexes the distance
// matrix rows 1..k.
func (inst *OptimizationInstance) LocatedOrders() []Order {
	located := make([]Order, 0, len(inst.Orders))
	for _, o := range inst.Orders {
		if o.HasLocation() {
			located = append(located, o)
		}
	}
	return located
}
