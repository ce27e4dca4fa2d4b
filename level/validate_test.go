package level

import (
	"testing"

	"slitherforge/grid"
)

// rawLevel builds a level without routing through AddSlither, so broken
// pairings can be staged directly.
func rawLevel(w, h int) *Level {
	return &Level{Width: w, Height: h}
}

func TestValidateReportsAllKinds(t *testing.T) {
	l := rawLevel(6, 6)
	l.Slithers = []*Slither{
		{ID: "a", Color: Red, Body: cells(0, 0, 0, 1)},
		{ID: "b", Color: Blue, Body: cells(2, 0, 2, 1)},
	}
	l.Holes = []*Hole{
		{Color: Blue, Pos: grid.Cell{X: 3, Y: 3}, SlitherID: "b"},
		{Color: Blue, Pos: grid.Cell{X: 4, Y: 3}, SlitherID: "b"},
		{Color: Green, Pos: grid.Cell{X: 5, Y: 5}, SlitherID: "ghost"},
	}

	found := map[ViolationKind]int{}
	for _, v := range Validate(l) {
		found[v.Kind]++
	}
	if found[UnmatchedSlither] != 1 {
		t.Errorf("Expected 1 unmatched slither, got %d", found[UnmatchedSlither])
	}
	if found[DuplicateHole] != 1 {
		t.Errorf("Expected 1 duplicate hole violation, got %d", found[DuplicateHole])
	}
	if found[OrphanHole] != 1 {
		t.Errorf("Expected 1 orphan hole, got %d", found[OrphanHole])
	}
}

func TestRepairResolvesEverything(t *testing.T) {
	l := rawLevel(6, 6)
	l.Slithers = []*Slither{
		{ID: "a", Color: Red, Body: cells(0, 0, 0, 1)},
		{ID: "b", Color: Blue, Body: cells(2, 0, 2, 1)},
		{Color: Yellow, Body: cells(4, 0, 4, 1)}, // missing id
	}
	l.Holes = []*Hole{
		{Color: Blue, Pos: grid.Cell{X: 3, Y: 3}, SlitherID: "b"},
		{Color: Blue, Pos: grid.Cell{X: 4, Y: 3}, SlitherID: "b"},
		{Color: Green, Pos: grid.Cell{X: 5, Y: 5}, SlitherID: "ghost"},
	}

	Repair(l)

	if v := Validate(l); len(v) != 0 {
		t.Fatalf("Expected clean level after repair, got %v", v)
	}
	if l.Slithers[2].ID == "" {
		t.Error("Repair should assign an id to the id-less slither")
	}
	// Keep-first rule for duplicates.
	if h := l.HoleFor("b"); h == nil || h.Pos != (grid.Cell{X: 3, Y: 3}) {
		t.Errorf("Expected the first duplicate kept at (3,3), got %+v", h)
	}
	for _, h := range l.Holes {
		if h.SlitherID == "ghost" {
			t.Error("Orphan hole survived repair")
		}
	}
	// Unmatched slither "a": first empty cell scanning x outer, y inner.
	// Column 0 holds (0,0),(0,1) so the hole lands at (0,2).
	if h := l.HoleFor("a"); h == nil || h.Pos != (grid.Cell{X: 0, Y: 2}) {
		t.Errorf("Expected hole for a at (0,2), got %+v", h)
	}
}

func TestRepairIsIdempotent(t *testing.T) {
	l := rawLevel(6, 6)
	l.Slithers = []*Slither{
		{ID: "a", Color: Red, Body: cells(0, 0, 0, 1)},
	}
	l.Holes = []*Hole{
		{Color: Green, Pos: grid.Cell{X: 5, Y: 5}, SlitherID: "ghost"},
	}

	Repair(l)
	holes := make([]Hole, len(l.Holes))
	for i, h := range l.Holes {
		holes[i] = *h
	}
	slitherCount := len(l.Slithers)

	Repair(l)

	if len(l.Slithers) != slitherCount {
		t.Errorf("Second repair changed slither count: %d", len(l.Slithers))
	}
	if len(l.Holes) != len(holes) {
		t.Fatalf("Second repair changed hole count: %d", len(l.Holes))
	}
	for i, h := range l.Holes {
		if *h != holes[i] {
			t.Errorf("Second repair changed hole %d: %+v vs %+v", i, *h, holes[i])
		}
	}
}

func TestRepairFullGridFallsBackToOrigin(t *testing.T) {
	// 2x2 grid completely covered by one slither: no empty cell remains,
	// so the auto-created hole degrades to (0,0).
	l := rawLevel(2, 2)
	l.Slithers = []*Slither{
		{ID: "a", Color: Red, Body: cells(0, 0, 0, 1, 1, 1, 1, 0)},
	}

	Repair(l)

	h := l.HoleFor("a")
	if h == nil {
		t.Fatal("Expected a hole")
	}
	if h.Pos != (grid.Cell{X: 0, Y: 0}) {
		t.Errorf("Expected degraded placement at origin, got %v", h.Pos)
	}
}

func TestRepairColumnMajorOrder(t *testing.T) {
	// Occupy all of column 0 except nothing; occupy (0,0) and leave
	// (0,1) free: column-major means (0,1) wins over (1,0).
	l := rawLevel(3, 3)
	l.Slithers = []*Slither{
		{ID: "a", Color: Red, Body: cells(0, 0, 1, 0)},
	}

	Repair(l)

	if h := l.HoleFor("a"); h.Pos != (grid.Cell{X: 0, Y: 1}) {
		t.Errorf("Expected column-major placement (0,1), got %v", h.Pos)
	}
}
