package editor

import (
	"fmt"

	"slitherforge/grid"
	"slitherforge/level"
)

// selected resolves the session's selected slither.
func (s *Session) selected() (*level.Slither, error) {
	if s.Selected == "" {
		return nil, fmt.Errorf("%w: nothing selected", level.ErrUnknownSlither)
	}
	sl := s.Level.SlitherByID(s.Selected)
	if sl == nil {
		return nil, fmt.Errorf("%w: %s", level.ErrUnknownSlither, s.Selected)
	}
	return sl, nil
}

// NudgeEnd moves the selected slither's end one step in direction d
// under the strict constant-length rule: the new cell is inserted and
// the opposite end is trimmed whenever length would exceed 2. This is
// deliberately not the slide/grow rule handle drags use; both behaviors
// ship and stay distinct.
func (s *Session) NudgeEnd(end End, d grid.Dir) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	anchor := sl.Head()
	if end == Tail {
		anchor = sl.Tail()
	}
	body, err := s.checkExtend(sl, end, anchor.Step(d), 2)
	if err != nil {
		return err
	}
	sl.Body = body
	return nil
}

// AddSegment grows the selected slither by one cell at the chosen end,
// extrapolating the direction of the two cells nearest that end.
func (s *Session) AddSegment(end End) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}

	var endCell, neighbor grid.Cell
	if end == Head {
		endCell, neighbor = sl.Body[0], sl.Body[1]
	} else {
		n := sl.Len()
		endCell, neighbor = sl.Body[n-1], sl.Body[n-2]
	}
	dx, dy := endCell.X-neighbor.X, endCell.Y-neighbor.Y
	if dx == 0 && dy == 0 {
		// No distinguishable direction; extend rightward.
		dx = 1
	}
	c := endCell.Add(dx, dy)

	if !s.Level.InBounds(c) {
		return fmt.Errorf("%w: %v", level.ErrInvalidPosition, c)
	}
	if occ := s.Level.Occupant(c); occ.Kind != level.OccupantNone && occ.Slither != sl {
		return fmt.Errorf("%w: %v", level.ErrOccupiedCell, c)
	}
	if sl.Occupies(c) {
		return fmt.Errorf("%w: %v", level.ErrSelfOverlap, c)
	}

	if end == Head {
		sl.Body = append([]grid.Cell{c}, sl.Body...)
	} else {
		sl.Body = append(sl.Body, c)
	}
	return nil
}

// RemoveSegment deletes the end cell of the selected slither, rejected
// when that would drop it below 2 segments.
func (s *Session) RemoveSegment(end End) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	if sl.Len() <= 2 {
		return fmt.Errorf("%w: %d segments", level.ErrMinLength, sl.Len())
	}
	if end == Head {
		sl.Body = sl.Body[1:]
	} else {
		sl.Body = sl.Body[:sl.Len()-1]
	}
	return nil
}

// DeleteSelected removes the selected slither and its paired hole as
// one atomic operation.
func (s *Session) DeleteSelected() error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	s.Selected = ""
	return s.Level.RemoveSlither(sl.ID)
}

// RecolorSelected changes the selected slither's color; its hole
// follows by construction.
func (s *Session) RecolorSelected(c level.Color) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	return s.Level.SetSlitherColor(sl.ID, c)
}

// AddInteractor attaches an interactor to the selected slither.
func (s *Session) AddInteractor(kind level.InteractorKind, hitCount int) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	it, err := level.NewInteractor(kind, hitCount)
	if err != nil {
		return err
	}
	sl.Interactors = append(sl.Interactors, it)
	return nil
}

// RemoveInteractor drops the interactor at index i from the selected
// slither.
func (s *Session) RemoveInteractor(i int) error {
	sl, err := s.selected()
	if err != nil {
		return err
	}
	if i < 0 || i >= len(sl.Interactors) {
		return fmt.Errorf("interactor index %d out of range", i)
	}
	sl.Interactors = append(sl.Interactors[:i], sl.Interactors[i+1:]...)
	return nil
}
