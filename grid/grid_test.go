package grid

import "testing"

func TestAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Cell
		want bool
	}{
		{"right neighbor", Cell{2, 3}, Cell{3, 3}, true},
		{"left neighbor", Cell{2, 3}, Cell{1, 3}, true},
		{"above", Cell{2, 3}, Cell{2, 2}, true},
		{"below", Cell{2, 3}, Cell{2, 4}, true},
		{"same cell", Cell{2, 3}, Cell{2, 3}, false},
		{"diagonal", Cell{2, 3}, Cell{3, 4}, false},
		{"two apart", Cell{2, 3}, Cell{4, 3}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Adjacent(tt.a, tt.b); got != tt.want {
				t.Errorf("Adjacent(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestManhattan(t *testing.T) {
	if d := Manhattan(Cell{0, 0}, Cell{3, 4}); d != 7 {
		t.Errorf("Expected distance 7, got %d", d)
	}
	if d := Manhattan(Cell{5, 5}, Cell{5, 5}); d != 0 {
		t.Errorf("Expected distance 0, got %d", d)
	}
	if d := Manhattan(Cell{-2, 1}, Cell{1, -1}); d != 5 {
		t.Errorf("Expected distance 5, got %d", d)
	}
}

func TestInBounds(t *testing.T) {
	tests := []struct {
		name string
		c    Cell
		w, h int
		want bool
	}{
		{"origin", Cell{0, 0}, 5, 8, true},
		{"max corner", Cell{4, 7}, 5, 8, true},
		{"x at width", Cell{5, 0}, 5, 8, false},
		{"y at height", Cell{0, 8}, 5, 8, false},
		{"negative x", Cell{-1, 0}, 5, 8, false},
		{"negative y", Cell{0, -1}, 5, 8, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InBounds(tt.c, tt.w, tt.h); got != tt.want {
				t.Errorf("InBounds(%v, %d, %d) = %v, want %v", tt.c, tt.w, tt.h, got, tt.want)
			}
		})
	}
}

func TestDirDelta(t *testing.T) {
	for _, d := range []Dir{DirUp, DirRight, DirDown, DirLeft} {
		dx, dy := d.Delta()
		if abs(dx)+abs(dy) != 1 {
			t.Errorf("%v delta (%d,%d) is not a unit step", d, dx, dy)
		}
		ox, oy := d.Opposite().Delta()
		if ox != -dx || oy != -dy {
			t.Errorf("%v opposite delta (%d,%d), want (%d,%d)", d, ox, oy, -dx, -dy)
		}
	}
}

func TestStep(t *testing.T) {
	c := Cell{3, 3}
	if got := c.Step(DirUp); got != (Cell{3, 2}) {
		t.Errorf("Step up = %v", got)
	}
	if got := c.Step(DirRight); got != (Cell{4, 3}) {
		t.Errorf("Step right = %v", got)
	}
	if !Adjacent(c, c.Step(DirDown)) {
		t.Error("Step result should be adjacent to origin")
	}
}
