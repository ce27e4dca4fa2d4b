package level

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"slitherforge/grid"
)

// ViolationKind classifies a pairing violation.
type ViolationKind uint8

const (
	// UnmatchedSlither: a slither with no hole referencing it.
	UnmatchedSlither ViolationKind = iota
	// OrphanHole: a hole whose slither id matches no slither.
	OrphanHole
	// DuplicateHole: more than one hole referencing the same slither.
	DuplicateHole
)

func (k ViolationKind) String() string {
	switch k {
	case UnmatchedSlither:
		return "unmatched slither"
	case OrphanHole:
		return "orphan hole"
	case DuplicateHole:
		return "duplicate hole"
	default:
		return "unknown violation"
	}
}

// Violation is a level-wide pairing diagnostic. It is not an operation
// failure; Repair resolves every kind deterministically.
type Violation struct {
	Kind      ViolationKind
	SlitherID string
	Hole      *Hole
	Extra     []*Hole
}

func (v Violation) String() string {
	switch v.Kind {
	case UnmatchedSlither:
		return fmt.Sprintf("slither %s has no hole", v.SlitherID)
	case OrphanHole:
		return fmt.Sprintf("hole at %v references missing slither %q", v.Hole.Pos, v.Hole.SlitherID)
	case DuplicateHole:
		return fmt.Sprintf("slither %s has %d extra holes", v.SlitherID, len(v.Extra))
	default:
		return v.Kind.String()
	}
}

// Validate inspects l for pairing violations without mutating it.
func Validate(l *Level) []Violation {
	var out []Violation

	ids := make(map[string]struct{}, len(l.Slithers))
	for _, s := range l.Slithers {
		ids[s.ID] = struct{}{}
	}

	holeCount := make(map[string][]*Hole)
	for _, h := range l.Holes {
		holeCount[h.SlitherID] = append(holeCount[h.SlitherID], h)
	}

	for _, s := range l.Slithers {
		matched := holeCount[s.ID]
		switch {
		case len(matched) == 0:
			out = append(out, Violation{Kind: UnmatchedSlither, SlitherID: s.ID})
		case len(matched) > 1:
			out = append(out, Violation{Kind: DuplicateHole, SlitherID: s.ID, Extra: matched[1:]})
		}
	}

	for _, h := range l.Holes {
		if _, ok := ids[h.SlitherID]; !ok {
			out = append(out, Violation{Kind: OrphanHole, Hole: h})
		}
	}

	return out
}

// Repair deterministically restores the pairing invariant. It is
// idempotent: a second call is a no-op. In order it assigns ids to any
// slither missing one, creates a hole for every unmatched slither,
// drops orphan holes, and keeps only the first hole per slither.
func Repair(l *Level) {
	for _, s := range l.Slithers {
		if s.ID == "" {
			s.ID = uuid.New().String()
		}
	}

	for _, s := range l.Slithers {
		if l.HoleFor(s.ID) == nil {
			l.Holes = append(l.Holes, &Hole{
				Color:     s.Color,
				Pos:       l.firstEmptyCell(),
				SlitherID: s.ID,
			})
		}
	}

	ids := make(map[string]struct{}, len(l.Slithers))
	for _, s := range l.Slithers {
		ids[s.ID] = struct{}{}
	}

	seen := make(map[string]struct{}, len(l.Holes))
	kept := l.Holes[:0]
	for _, h := range l.Holes {
		if _, ok := ids[h.SlitherID]; !ok {
			continue
		}
		if _, dup := seen[h.SlitherID]; dup {
			continue
		}
		seen[h.SlitherID] = struct{}{}
		kept = append(kept, h)
	}
	l.Holes = kept
}

// firstEmptyCell scans columns left to right, each column top to
// bottom, and returns the first unoccupied cell. Column-major order is
// load-bearing: saved levels depend on where auto-created holes land.
// Falls back to (0,0) on a full grid.
func (l *Level) firstEmptyCell() grid.Cell {
	for x := 0; x < l.Width; x++ {
		for y := 0; y < l.Height; y++ {
			c := grid.Cell{X: x, Y: y}
			if !l.IsOccupied(c) {
				return c
			}
		}
	}
	slog.Warn("no empty cell for auto-created hole, using origin",
		"width", l.Width, "height", l.Height)
	return grid.Cell{}
}
