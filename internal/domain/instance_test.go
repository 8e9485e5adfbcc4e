package domain

import (
	"encoding/json"
	"testing"
)

func locPtr(lat, lng float64) *Coordinate { return &Coordinate{Lat: lat, Lng: lng} }

func TestInstanceRoundTripPreservesOrders(t *testing.T) {
	inst := OptimizationInstance{
		Warehouse: Warehouse{ID: "wh-1", Name: "North", Location: Coordinate{Lat: 52.94, Lng: -106.45}},
		Vehicles:  []Vehicle{{ID: "veh-1", CapacityWeight: 10000, CapacityPallets: 20}},
		Orders: []Order{
			{ID: "ord-1", OrderNumber: "SO-001", Priority: true, Location: locPtr(52.95, -106.44)},
			{ID: "ord-2", OrderNumber: "SO-002"},
			{ID: "ord-3", OrderNumber: "SO-003", Location: locPtr(52.90, -106.50)},
		},
		DistanceMatrix: DistanceMatrix{{0, 1, 2}, {1, 0, 3}, {2, 3, 0}},
		MaxStops:       10,
		ReturnToDepot:  true,
	}

	raw, err := json.Marshal(&inst)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var got OptimizationInstance
	if err := json.Unmarshal(raw, &got); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if len(got.Orders) != len(inst.Orders) {
		t.Fatalf("order count %d, want %d", len(got.Orders), len(inst.Orders))
	}
	for i := range inst.Orders {
		if got.Orders[i].ID != inst.Orders[i].ID {
			t.Fatalf("order %d id %q, want %q", i, got.Orders[i].ID, inst.Orders[i].ID)
		}
	}
	if !got.Orders[0].Priority {
		t.Fatal("priority flag lost in round trip")
	}
	if got.Orders[1].Location != nil {
		t.Fatal("unlocated order gained a location")
	}
	if got.MaxStops != 10 || !got.ReturnToDepot {
		t.Fatalf("knobs lost: %+v", got)
	}
}

func TestLocatedOrdersPreservesRelativeOrder(t *testing.T) {
	inst := OptimizationInstance{
		Orders: []Order{
			{ID: "a", Location: locPtr(1, 1)},
			{ID: "b"},
			{ID: "c", Location: locPtr(2, 2)},
			{ID: "d", Location: &Coordinate{Lat: 91, Lng: 0}}, // out of range: no location
		},
	}

	located := inst.LocatedOrders()
	if len(located) != 2 || located[0].ID != "a" || located[1].ID != "c" {
		t.Fatalf("located projection wrong: %+v", located)
	}
}
