package vmath

import (
	"testing"

	"github.com/physgun/territory/core"
)

func TestSectorOf(t *testing.T) {
	origin := core.V(0, 0)

	cases := []struct {
		name string
		to   core.Vec2
		want Sector
	}{
		{"due right", core.V(10, 0), SectorRight},
		{"due up", core.V(0, 10), SectorTop},
		{"due left", core.V(-10, 0), SectorLeft},
		{"due down", core.V(0, -10), SectorBottom},
		{"upper right below diagonal", core.V(10, 9), SectorRight},
		{"upper right above diagonal", core.V(9, 10), SectorTop},
		{"lower left past diagonal", core.V(-10, -9), SectorLeft},
		{"lower left below diagonal", core.V(-9, -10), SectorBottom},
	}

	for _, tc := range cases {
		if got := SectorOf(origin, tc.to); got != tc.want {
			t.Errorf("%s: expected %v, got %v", tc.name, tc.want, got)
		}
	}
}

func TestSectorHorizontal(t *testing.T) {
	if !SectorRight.Horizontal() || !SectorLeft.Horizontal() {
		t.Error("Expected right and left sectors to be horizontal")
	}
	if SectorTop.Horizontal() || SectorBottom.Horizontal() {
		t.Error("Expected top and bottom sectors not to be horizontal")
	}
}
