package domain

// Order is one pending delivery eligible for load assignment.
//
// Priority is derived per request: true iff the owning customer appears in the
// caller-supplied priority set. Location is present only when the customer
// record carries stored coordinates; orders without one still participate in
// optimization but cannot contribute precise geographic distance terms.
type Order struct {
	ID                 string      `json:"id"`
	OrderNumber        string      `json:"order_number"`
	DeliveryAddress    string      `json:"delivery_address"`
	DeliveryCity       string      `json:"delivery_city"`
	DeliveryProvince   string      `json:"delivery_province"`
	DeliveryPostalCode string      `json:"delivery_postal_code"`
	TotalWeight        float64     `json:"total_weight"`
	Pallets            int         `json:"pallets"`
	CustomerID         string      `json:"customer_id"`
	CustomerName       string      `json:"customer_name"`
	Priority           bool        `json:"priority"`
	Location           *Coordinate `json:"location,omitempty"`
}

// HasLocation reports whether the order carries a usable coordinate.
func (o Order) HasLocation() bool {
	return o.Location != nil && o.Location.Valid()
}
