// Package grid provides integer cell coordinates and the orthogonal
// adjacency rules the level model is built on. It is pure and carries
// no level state.
package grid

import "fmt"

// Cell is a grid coordinate. X grows rightward, Y grows downward
// (screen coordinates).
type Cell struct {
	X int
	Y int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the cell offset by dx, dy.
func (c Cell) Add(dx, dy int) Cell {
	return Cell{X: c.X + dx, Y: c.Y + dy}
}

// Step returns the cell one step in direction d.
func (c Cell) Step(d Dir) Cell {
	dx, dy := d.Delta()
	return c.Add(dx, dy)
}

// Manhattan returns the Manhattan distance between a and b.
func Manhattan(a, b Cell) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

// Adjacent reports whether a and b are orthogonal neighbors
// (Manhattan distance exactly 1).
func Adjacent(a, b Cell) bool {
	return Manhattan(a, b) == 1
}

// InBounds reports whether c lies within [0,width) x [0,height).
func InBounds(c Cell, width, height int) bool {
	return c.X >= 0 && c.X < width && c.Y >= 0 && c.Y < height
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
