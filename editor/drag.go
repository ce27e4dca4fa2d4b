package editor

import (
	"fmt"

	"slitherforge/grid"
	"slitherforge/level"
)

// startDrag begins a handle drag when c is a slither's head or tail,
// and a hole drag when c is a hole. A click on a body interior selects
// instead.
func (s *Session) startDrag(c grid.Cell) (Result, error) {
	occ := s.Level.Occupant(c)
	switch occ.Kind {
	case level.OccupantSegment:
		switch c {
		case occ.Slither.Head():
			s.phase = DraggingHandle
			s.dragID = occ.Slither.ID
			s.dragEnd = Head
		case occ.Slither.Tail():
			s.phase = DraggingHandle
			s.dragID = occ.Slither.ID
			s.dragEnd = Tail
		default:
			return s.selectAt(c)
		}
		s.Selected = occ.Slither.ID
		return Result{Action: ActionDragStarted, Slither: occ.Slither}, nil
	case level.OccupantHole:
		s.phase = DraggingHole
		s.dragHole = occ.Hole
		return Result{Action: ActionDragStarted}, nil
	default:
		return Result{Action: ActionNone}, nil
	}
}

// extendBody inserts c at end, then trims the opposite end when the
// resulting length exceeds trimAbove. The two gesture families share
// this rule with different thresholds: handle drags use 3, so a
// 2-segment slither grows instead of sliding; nudges use 2, keeping
// length strictly constant.
func extendBody(body []grid.Cell, end End, c grid.Cell, trimAbove int) []grid.Cell {
	var out []grid.Cell
	if end == Head {
		out = append([]grid.Cell{c}, body...)
		if len(out) > trimAbove {
			out = out[:len(out)-1]
		}
	} else {
		out = append(append([]grid.Cell(nil), body...), c)
		if len(out) > trimAbove {
			out = out[1:]
		}
	}
	return out
}

// checkExtend validates candidate c against the dragged slither and
// returns the resulting body. Occupancy by the dragged slither itself
// does not block the candidate; a duplicate surviving in the result
// does.
func (s *Session) checkExtend(sl *level.Slither, end End, c grid.Cell, trimAbove int) ([]grid.Cell, error) {
	if !s.Level.InBounds(c) {
		return nil, fmt.Errorf("%w: %v", level.ErrInvalidPosition, c)
	}
	anchor := sl.Head()
	if end == Tail {
		anchor = sl.Tail()
	}
	if !grid.Adjacent(anchor, c) {
		return nil, fmt.Errorf("%w: %v is not adjacent to %v", level.ErrNonAdjacentStep, c, anchor)
	}
	if occ := s.Level.Occupant(c); occ.Kind != level.OccupantNone && occ.Slither != sl {
		return nil, fmt.Errorf("%w: %v", level.ErrOccupiedCell, c)
	}

	out := extendBody(sl.Body, end, c, trimAbove)
	seen := make(map[grid.Cell]struct{}, len(out))
	for _, b := range out {
		if _, dup := seen[b]; dup {
			return nil, fmt.Errorf("%w: %v", level.ErrSelfOverlap, c)
		}
		seen[b] = struct{}{}
	}
	return out, nil
}

// PreviewHandleDrag computes the body the current drag would commit at
// candidate c. Pure; used for display only.
func (s *Session) PreviewHandleDrag(c grid.Cell) ([]grid.Cell, error) {
	sl := s.DragSlither()
	if sl == nil {
		return nil, nil
	}
	return s.checkExtend(sl, s.dragEnd, c, 3)
}

// handleDragClick commits the drag at a valid candidate; an invalid
// candidate abandons the drag and leaves the slither untouched.
func (s *Session) handleDragClick(c grid.Cell) (Result, error) {
	sl := s.DragSlither()
	if sl == nil {
		s.toIdle()
		return Result{}, fmt.Errorf("%w: dragged slither vanished", level.ErrUnknownSlither)
	}
	body, err := s.checkExtend(sl, s.dragEnd, c, 3)
	s.toIdle()
	if err != nil {
		return Result{}, err
	}
	sl.Body = body
	return Result{Action: ActionSlitherMoved, Slither: sl}, nil
}

// PreviewHoleDrag reports whether the dragged hole could land on c.
// Pure; the hole's own current cell never blocks itself.
func (s *Session) PreviewHoleDrag(c grid.Cell) error {
	h := s.DragHole()
	if h == nil {
		return nil
	}
	if !s.Level.InBounds(c) {
		return fmt.Errorf("%w: %v", level.ErrInvalidPosition, c)
	}
	if occ := s.Level.Occupant(c); occ.Kind != level.OccupantNone && occ.Hole != h {
		return fmt.Errorf("%w: %v", level.ErrOccupiedCell, c)
	}
	return nil
}

// holeDragClick commits the hole relocation; an invalid target leaves
// the hole at its original position.
func (s *Session) holeDragClick(c grid.Cell) (Result, error) {
	h := s.dragHole
	s.toIdle()
	if h == nil {
		return Result{}, nil
	}
	if err := s.Level.MoveHole(h, c); err != nil {
		return Result{}, err
	}
	return Result{Action: ActionHoleMoved}, nil
}
