package engine

import (
	"testing"

	"github.com/physgun/territory/component"
	"github.com/physgun/territory/core"
)

func TestTerritoryStoreOrder(t *testing.T) {
	s := newTerritoryStore()
	for i := core.Entity(1); i <= 5; i++ {
		s.Add(i, &component.Territory{Window: 100})
	}
	s.Remove(3)

	var got []core.Entity
	s.Each(func(e core.Entity, terr *component.Territory) {
		got = append(got, e)
	})

	want := []core.Entity{1, 2, 4, 5}
	if len(got) != len(want) {
		t.Fatalf("Expected %d entities, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected insertion order %v, got %v", want, got)
			break
		}
	}
}

func TestTerritoryStoreInWindow(t *testing.T) {
	s := newTerritoryStore()
	s.Add(1, &component.Territory{Window: 100})
	s.Add(2, &component.Territory{Window: 200})
	s.Add(3, &component.Territory{Window: 100})

	in := s.InWindow(100)
	if len(in) != 2 || in[0] != 1 || in[1] != 3 {
		t.Errorf("Expected [1 3] in window 100, got %v", in)
	}
}

func TestRequestStoreReplaceKeepsPosition(t *testing.T) {
	s := newRequestStore()
	s.Push(component.MoveRequest{Territory: 1, Kind: component.KindDrag})
	s.Push(component.MoveRequest{Territory: 2, Kind: component.KindDrag})

	// A second request for territory 1 replaces the first in place
	s.Push(component.MoveRequest{Territory: 1, Kind: component.KindResize})

	if s.Len() != 2 {
		t.Fatalf("Expected 2 pending requests, got %d", s.Len())
	}

	var order []core.Entity
	s.Each(func(req *component.MoveRequest) {
		order = append(order, req.Territory)
	})
	if order[0] != 1 || order[1] != 2 {
		t.Errorf("Expected queue position preserved, got %v", order)
	}

	req, ok := s.Get(1)
	if !ok || req.Kind != component.KindResize {
		t.Errorf("Expected replacement request, got %+v", req)
	}
}

func TestRequestStoreEachAllowsDrop(t *testing.T) {
	s := newRequestStore()
	s.Push(component.MoveRequest{Territory: 1})
	s.Push(component.MoveRequest{Territory: 2})
	s.Push(component.MoveRequest{Territory: 3})

	// Dropping mid-iteration must not skip or repeat entries
	var seen []core.Entity
	s.Each(func(req *component.MoveRequest) {
		seen = append(seen, req.Territory)
		s.Drop(req.Territory)
	})

	if len(seen) != 3 {
		t.Errorf("Expected 3 visits, got %v", seen)
	}
	if s.Len() != 0 {
		t.Errorf("Expected empty store after dropping all, got %d", s.Len())
	}
}
