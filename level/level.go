// Package level holds the puzzle-level data model: the grid dimensions,
// the slither and hole collections, occupancy queries, the primitive
// mutations, and the pairing validation and resize cascades that keep
// the model consistent.
package level

import (
	"fmt"

	"github.com/google/uuid"

	"slitherforge/grid"
)

// Default grid dimensions for a freshly created level.
const (
	DefaultWidth  = 8
	DefaultHeight = 8
)

// Level is the single mutable aggregate an editing session owns. It is
// mutated exclusively through its own methods and the editor package;
// every accepted mutation leaves the pairing invariant intact.
type Level struct {
	Width    int
	Height   int
	Slithers []*Slither
	Holes    []*Hole
}

// Hole is a colored target cell paired one-to-one with a slither of
// matching color.
type Hole struct {
	Color     Color
	Pos       grid.Cell
	SlitherID string
}

// New creates an empty level with the given grid dimensions.
func New(width, height int) *Level {
	return &Level{Width: width, Height: height}
}

// OccupantKind tags the result of an occupancy query.
type OccupantKind uint8

const (
	OccupantNone OccupantKind = iota
	OccupantSegment
	OccupantHole
)

// Occupant describes what sits on a cell. Segment is the body index
// when Kind is OccupantSegment.
type Occupant struct {
	Kind    OccupantKind
	Slither *Slither
	Segment int
	Hole    *Hole
}

// InBounds reports whether c lies on the current grid.
func (l *Level) InBounds(c grid.Cell) bool {
	return grid.InBounds(c, l.Width, l.Height)
}

// Occupant scans slithers then holes for the entity occupying c.
// Linear scan; fine at editor scale.
func (l *Level) Occupant(c grid.Cell) Occupant {
	for _, s := range l.Slithers {
		if i := s.IndexOf(c); i >= 0 {
			return Occupant{Kind: OccupantSegment, Slither: s, Segment: i}
		}
	}
	for _, h := range l.Holes {
		if h.Pos == c {
			return Occupant{Kind: OccupantHole, Hole: h}
		}
	}
	return Occupant{Kind: OccupantNone}
}

// IsOccupied reports whether any entity sits on c.
func (l *Level) IsOccupied(c grid.Cell) bool {
	return l.Occupant(c).Kind != OccupantNone
}

// SlitherByID returns the slither with the given id, or nil.
func (l *Level) SlitherByID(id string) *Slither {
	for _, s := range l.Slithers {
		if s.ID == id {
			return s
		}
	}
	return nil
}

// HoleAt returns the hole at c, or nil.
func (l *Level) HoleAt(c grid.Cell) *Hole {
	for _, h := range l.Holes {
		if h.Pos == c {
			return h
		}
	}
	return nil
}

// HoleFor returns the first hole paired with the given slither id, or nil.
func (l *Level) HoleFor(slitherID string) *Hole {
	for _, h := range l.Holes {
		if h.SlitherID == slitherID {
			return h
		}
	}
	return nil
}

// AddSlither validates body as a path over unoccupied in-bounds cells,
// assigns a fresh id, inserts the slither, and routes through Repair to
// create the matching hole. Returns the new slither.
func (l *Level) AddSlither(body []grid.Cell, color Color) (*Slither, error) {
	if !ValidPath(body) {
		return nil, fmt.Errorf("%w: body must be >=2 adjacent distinct cells", ErrInvalidPath)
	}
	for _, c := range body {
		if !l.InBounds(c) {
			return nil, fmt.Errorf("%w: cell %v out of bounds", ErrInvalidPath, c)
		}
		if l.IsOccupied(c) {
			return nil, fmt.Errorf("%w: cell %v occupied", ErrInvalidPath, c)
		}
	}

	s := &Slither{
		ID:    uuid.New().String(),
		Color: color,
		Body:  append([]grid.Cell(nil), body...),
	}
	l.Slithers = append(l.Slithers, s)

	// Pairing is restored centrally, never inline.
	Repair(l)
	return s, nil
}

// RemoveSlither removes the slither and its paired holes atomically.
func (l *Level) RemoveSlither(id string) error {
	idx := -1
	for i, s := range l.Slithers {
		if s.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return fmt.Errorf("%w: %s", ErrUnknownSlither, id)
	}
	l.Slithers = append(l.Slithers[:idx], l.Slithers[idx+1:]...)

	kept := l.Holes[:0]
	for _, h := range l.Holes {
		if h.SlitherID != id {
			kept = append(kept, h)
		}
	}
	l.Holes = kept
	return nil
}

// MoveHole relocates h. The hole's own current cell does not block the
// move; anything else does.
func (l *Level) MoveHole(h *Hole, c grid.Cell) error {
	if !l.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrInvalidPosition, c)
	}
	if occ := l.Occupant(c); occ.Kind != OccupantNone && occ.Hole != h {
		return fmt.Errorf("%w: %v", ErrOccupiedCell, c)
	}
	h.Pos = c
	return nil
}

// ClearCell removes any hole at c and removes entirely any slither
// owning c. A slither removed this way leaves its paired hole orphaned; the
// caller must run Repair before the invariant is considered restored.
func (l *Level) ClearCell(c grid.Cell) {
	kept := l.Holes[:0]
	for _, h := range l.Holes {
		if h.Pos != c {
			kept = append(kept, h)
		}
	}
	l.Holes = kept

	keptSlithers := l.Slithers[:0]
	for _, s := range l.Slithers {
		if !s.Occupies(c) {
			keptSlithers = append(keptSlithers, s)
		}
	}
	l.Slithers = keptSlithers
}

// SetSlitherColor recolors a slither and its paired holes together so
// color agreement holds by construction.
func (l *Level) SetSlitherColor(id string, color Color) error {
	s := l.SlitherByID(id)
	if s == nil {
		return fmt.Errorf("%w: %s", ErrUnknownSlither, id)
	}
	s.Color = color
	for _, h := range l.Holes {
		if h.SlitherID == id {
			h.Color = color
		}
	}
	return nil
}
