// Package editor implements the interactive editing state machine over
// a level: tool modes, in-progress path painting, handle dragging, and
// hole dragging. It is the only component that mutates a level in
// response to user gestures; every rejected gesture leaves committed
// state untouched.
package editor

import (
	"fmt"

	"slitherforge/grid"
	"slitherforge/level"
)

// Tool selects which gesture the next click initiates. It is session
// context, not a machine state.
type Tool uint8

const (
	ToolSelect Tool = iota
	ToolPaint
	ToolMove
	ToolErase
)

func (t Tool) String() string {
	switch t {
	case ToolSelect:
		return "Select"
	case ToolPaint:
		return "Paint"
	case ToolMove:
		return "Move"
	case ToolErase:
		return "Erase"
	default:
		return "Unknown"
	}
}

// End names a slither handle.
type End uint8

const (
	Head End = iota
	Tail
)

func (e End) String() string {
	if e == Head {
		return "Head"
	}
	return "Tail"
}

// Phase is the transient gesture state. All phases resolve back to
// Idle on commit, cancel, or invalid continuation.
type Phase uint8

const (
	Idle Phase = iota
	PaintingPath
	DraggingHandle
	DraggingHole
)

func (p Phase) String() string {
	switch p {
	case Idle:
		return "Idle"
	case PaintingPath:
		return "PaintingPath"
	case DraggingHandle:
		return "DraggingHandle"
	case DraggingHole:
		return "DraggingHole"
	default:
		return "Unknown"
	}
}

// Grid size policy enforced by the editing tools. Not a domain law;
// levelfile accepts whatever a file declares.
const (
	DefaultMinGridSize = 3
	DefaultMaxGridSize = 20
)

// Session is one editing session over a level: current tool, current
// color, selection, and the transient gesture state, held in one place
// instead of scattered fields.
type Session struct {
	Level *level.Level
	Tool  Tool
	Color level.Color

	// Selected is the id of the slither the non-gesture commands
	// (nudge, segment add/remove, interactors) operate on.
	Selected string

	// Grid size policy, overridable from config.
	MinGridSize int
	MaxGridSize int

	phase    Phase
	paint    []grid.Cell
	dragID   string
	dragEnd  End
	dragHole *level.Hole
}

// NewSession starts an idle session over l.
func NewSession(l *level.Level) *Session {
	return &Session{
		Level:       l,
		Tool:        ToolPaint,
		Color:       level.Red,
		MinGridSize: DefaultMinGridSize,
		MaxGridSize: DefaultMaxGridSize,
	}
}

// Phase returns the current transient state.
func (s *Session) Phase() Phase {
	return s.phase
}

// PaintPath returns a copy of the in-progress painted path.
func (s *Session) PaintPath() []grid.Cell {
	return append([]grid.Cell(nil), s.paint...)
}

// DragSlither returns the slither being handle-dragged, or nil.
func (s *Session) DragSlither() *level.Slither {
	if s.phase != DraggingHandle {
		return nil
	}
	return s.Level.SlitherByID(s.dragID)
}

// DragEnd returns the active handle of the current drag.
func (s *Session) DragEnd() End {
	return s.dragEnd
}

// DragHole returns the hole being dragged, or nil.
func (s *Session) DragHole() *level.Hole {
	if s.phase != DraggingHole {
		return nil
	}
	return s.dragHole
}

// Cancel abandons any in-progress gesture without mutating committed
// state.
func (s *Session) Cancel() {
	s.toIdle()
}

func (s *Session) toIdle() {
	s.phase = Idle
	s.paint = nil
	s.dragID = ""
	s.dragHole = nil
}

// SwapLevel replaces the session's level (New/Load) and resets all
// transient state and selection.
func (s *Session) SwapLevel(l *level.Level) {
	s.Level = l
	s.Selected = ""
	s.toIdle()
}

// ResizeGrid applies a grid resize within the editor's size policy.
func (s *Session) ResizeGrid(w, h int) error {
	if w < s.MinGridSize || w > s.MaxGridSize || h < s.MinGridSize || h > s.MaxGridSize {
		return fmt.Errorf("%w: grid %dx%d outside [%d,%d]",
			level.ErrInvalidPosition, w, h, s.MinGridSize, s.MaxGridSize)
	}
	return level.Resize(s.Level, w, h)
}
