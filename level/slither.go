package level

import "slitherforge/grid"

// Slither is a colored snake-shaped path occupying an ordered,
// orthogonally-connected, non-self-overlapping sequence of cells.
// Body index 0 is the head, the last index is the tail. ID is assigned
// once at creation and never changes.
type Slither struct {
	ID          string
	Color       Color
	Body        []grid.Cell
	Interactors []Interactor
}

// Head returns the first body cell.
func (s *Slither) Head() grid.Cell {
	return s.Body[0]
}

// Tail returns the last body cell.
func (s *Slither) Tail() grid.Cell {
	return s.Body[len(s.Body)-1]
}

// Len returns the segment count.
func (s *Slither) Len() int {
	return len(s.Body)
}

// IndexOf returns the body index of c, or -1 if the slither does not
// occupy it.
func (s *Slither) IndexOf(c grid.Cell) int {
	for i, b := range s.Body {
		if b == c {
			return i
		}
	}
	return -1
}

// Occupies reports whether c is part of the body.
func (s *Slither) Occupies(c grid.Cell) bool {
	return s.IndexOf(c) >= 0
}

// ValidPath checks the intrinsic path rules: length >= 2, orthogonal
// adjacency of consecutive cells, and no repeated cell.
func ValidPath(body []grid.Cell) bool {
	if len(body) < 2 {
		return false
	}
	seen := make(map[grid.Cell]struct{}, len(body))
	for i, c := range body {
		if _, dup := seen[c]; dup {
			return false
		}
		seen[c] = struct{}{}
		if i > 0 && !grid.Adjacent(body[i-1], c) {
			return false
		}
	}
	return true
}
