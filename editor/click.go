package editor

import (
	"fmt"

	"slitherforge/grid"
	"slitherforge/level"
)

// Action tells the host what a click did.
type Action uint8

const (
	ActionNone Action = iota
	ActionSelected
	ActionPaintStarted
	ActionPaintExtended
	ActionPaintCommitted
	ActionPaintDiscarded
	ActionDragStarted
	ActionSlitherMoved
	ActionHoleMoved
	ActionErased
)

// Result reports the outcome of a click gesture.
type Result struct {
	Action   Action
	Slither  *level.Slither
	Occupant level.Occupant
}

// Click feeds one pointer click at c into the state machine. The active
// tool decides which gesture an idle click initiates; a click during a
// gesture continues, commits, or abandons it. Rejections come back as
// errors naming the violated rule and never touch committed state.
func (s *Session) Click(c grid.Cell) (Result, error) {
	switch s.phase {
	case PaintingPath:
		return s.paintClick(c)
	case DraggingHandle:
		return s.handleDragClick(c)
	case DraggingHole:
		return s.holeDragClick(c)
	}

	switch s.Tool {
	case ToolPaint:
		return s.startPaint(c)
	case ToolMove:
		return s.startDrag(c)
	case ToolErase:
		return s.erase(c)
	default:
		return s.selectAt(c)
	}
}

// selectAt reports the occupant for host-side selection. No mutation.
func (s *Session) selectAt(c grid.Cell) (Result, error) {
	occ := s.Level.Occupant(c)
	if occ.Kind == level.OccupantSegment {
		s.Selected = occ.Slither.ID
	}
	return Result{Action: ActionSelected, Occupant: occ, Slither: occ.Slither}, nil
}

func (s *Session) startPaint(c grid.Cell) (Result, error) {
	if !s.Level.InBounds(c) {
		return Result{}, fmt.Errorf("%w: %v", level.ErrInvalidPosition, c)
	}
	if s.Level.IsOccupied(c) {
		return Result{}, fmt.Errorf("%w: %v", level.ErrOccupiedCell, c)
	}
	s.phase = PaintingPath
	s.paint = []grid.Cell{c}
	return Result{Action: ActionPaintStarted}, nil
}

// paintClick extends the path when the click is a legal continuation;
// any other click terminates the gesture, committing a path of length
// >= 2 and discarding a single seed cell.
func (s *Session) paintClick(c grid.Cell) (Result, error) {
	if s.paintStepOK(c) {
		s.paint = append(s.paint, c)
		return Result{Action: ActionPaintExtended}, nil
	}
	sl, err := s.FinishPaint()
	if err != nil {
		return Result{}, err
	}
	if sl == nil {
		return Result{Action: ActionPaintDiscarded}, nil
	}
	return Result{Action: ActionPaintCommitted, Slither: sl}, nil
}

func (s *Session) paintStepOK(c grid.Cell) bool {
	if !s.Level.InBounds(c) || s.Level.IsOccupied(c) {
		return false
	}
	if !grid.Adjacent(s.paint[len(s.paint)-1], c) {
		return false
	}
	for _, p := range s.paint {
		if p == c {
			return false
		}
	}
	return true
}

// FinishPaint terminates an in-progress paint gesture explicitly:
// a path of length >= 2 commits as a new slither of the session color,
// a single-cell path produces nothing. Idle otherwise returns nil.
func (s *Session) FinishPaint() (*level.Slither, error) {
	if s.phase != PaintingPath {
		return nil, nil
	}
	path := s.paint
	s.toIdle()
	if len(path) < 2 {
		return nil, nil
	}
	sl, err := s.Level.AddSlither(path, s.Color)
	if err != nil {
		return nil, err
	}
	s.Selected = sl.ID
	return sl, nil
}

// erase clears the cell and routes through Repair so a removed
// slither's hole does not linger.
func (s *Session) erase(c grid.Cell) (Result, error) {
	if !s.Level.InBounds(c) {
		return Result{}, fmt.Errorf("%w: %v", level.ErrInvalidPosition, c)
	}
	occ := s.Level.Occupant(c)
	if occ.Kind == level.OccupantNone {
		return Result{Action: ActionNone}, nil
	}
	if occ.Kind == level.OccupantSegment && occ.Slither.ID == s.Selected {
		s.Selected = ""
	}
	s.Level.ClearCell(c)
	level.Repair(s.Level)
	return Result{Action: ActionErased, Occupant: occ}, nil
}
