package level

import (
	"fmt"

	"slitherforge/grid"
)

// SlitherImpact names what a pending resize would do to one slither.
// Entire means every body cell falls out of the new bounds.
type SlitherImpact struct {
	Slither    *Slither
	OutOfRange []grid.Cell
	Entire     bool
}

// ResizeImpact is the full pure preview of a grid-dimension change.
type ResizeImpact struct {
	RemovedHoles []*Hole
	Slithers     []SlitherImpact
}

// Empty reports whether the resize would remove nothing.
func (r ResizeImpact) Empty() bool {
	return len(r.RemovedHoles) == 0 && len(r.Slithers) == 0
}

// PreviewResize computes the impact of resizing to newWidth x newHeight
// without mutating l.
func PreviewResize(l *Level, newWidth, newHeight int) ResizeImpact {
	var impact ResizeImpact

	for _, h := range l.Holes {
		if !grid.InBounds(h.Pos, newWidth, newHeight) {
			impact.RemovedHoles = append(impact.RemovedHoles, h)
		}
	}

	for _, s := range l.Slithers {
		var out []grid.Cell
		for _, c := range s.Body {
			if !grid.InBounds(c, newWidth, newHeight) {
				out = append(out, c)
			}
		}
		if len(out) == 0 {
			continue
		}
		impact.Slithers = append(impact.Slithers, SlitherImpact{
			Slither:    s,
			OutOfRange: out,
			Entire:     len(out) == len(s.Body),
		})
	}

	return impact
}

// Resize applies a grid-dimension change: out-of-bounds holes are
// removed, out-of-bounds body cells are dropped preserving order, and
// any slither left with fewer than 2 cells is deleted together with its
// hole. Repair runs last to guard against any remaining orphan.
// Growing either dimension is allowed; unchanged dimensions are a no-op.
func Resize(l *Level, newWidth, newHeight int) error {
	if newWidth < 1 || newHeight < 1 {
		return fmt.Errorf("%w: grid %dx%d", ErrInvalidPosition, newWidth, newHeight)
	}
	if newWidth == l.Width && newHeight == l.Height {
		return nil
	}

	l.Width = newWidth
	l.Height = newHeight

	keptHoles := l.Holes[:0]
	for _, h := range l.Holes {
		if l.InBounds(h.Pos) {
			keptHoles = append(keptHoles, h)
		}
	}
	l.Holes = keptHoles

	var doomed []string
	for _, s := range l.Slithers {
		kept := s.Body[:0]
		for _, c := range s.Body {
			if l.InBounds(c) {
				kept = append(kept, c)
			}
		}
		s.Body = kept
		// A 1-segment snake is not a valid shape.
		if len(s.Body) < 2 {
			doomed = append(doomed, s.ID)
		}
	}
	for _, id := range doomed {
		if err := l.RemoveSlither(id); err != nil {
			return err
		}
	}

	Repair(l)
	return nil
}
