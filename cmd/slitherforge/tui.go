package main

import (
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"slitherforge/config"
	"slitherforge/editor"
	"slitherforge/grid"
	"slitherforge/level"
	"slitherforge/levelfile"
)

// Screen layout constants
const (
	gridLeft = 2
	gridTop  = 2
	cellW    = 2 // screen columns per grid cell
)

// Status message kinds
const (
	statusInfo = iota
	statusOK
	statusWarn
	statusBad
)

var paletteStyles = map[level.Color]tcell.Color{
	level.Red:     tcell.ColorRed,
	level.Green:   tcell.ColorGreen,
	level.Blue:    tcell.ColorBlue,
	level.Yellow:  tcell.ColorYellow,
	level.Purple:  tcell.ColorPurple,
	level.Orange:  tcell.ColorOrange,
	level.Cyan:    tcell.ColorAqua,
	level.Magenta: tcell.ColorFuchsia,
}

func styleFor(c level.Color) tcell.Style {
	return tcell.StyleDefault.Foreground(paletteStyles[c])
}

type tui struct {
	screen  tcell.Screen
	session *editor.Session
	sounds  *sounds
	cfg     *config.Config
	path    string

	cursor    grid.Cell
	activeEnd editor.End
	dirty     bool
	quitArmed bool

	// Pending grid dimensions while resize mode is active.
	resizing bool
	pendW    int
	pendH    int

	statusMsg   string
	statusKind  int
	statusUntil time.Time

	prevButtons tcell.ButtonMask
}

func newTUI(lvl *level.Level, path string, cfg *config.Config) (*tui, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	screen.EnableMouse()
	screen.Clear()

	sess := editor.NewSession(lvl)
	sess.Color = cfg.Color()
	sess.MinGridSize = cfg.MinGridSize
	sess.MaxGridSize = cfg.MaxGridSize

	return &tui{
		screen:  screen,
		session: sess,
		sounds:  newSounds(cfg.Audio),
		cfg:     cfg,
		path:    path,
	}, nil
}

func (t *tui) run() error {
	defer t.sounds.close()
	defer t.screen.Fini()

	for {
		t.draw()
		ev := t.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventKey:
			if t.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			t.handleMouse(ev)
		case *tcell.EventResize:
			t.screen.Sync()
		}
	}
}

func (t *tui) setStatus(msg string, kind int) {
	t.statusMsg = msg
	t.statusKind = kind
	t.statusUntil = time.Now().Add(3 * time.Second)
}

// report folds an operation result into status line, sound, and dirty
// tracking. ok describes the success message.
func (t *tui) report(err error, ok string) {
	if err != nil {
		t.setStatus(err.Error(), statusBad)
		t.sounds.reject()
		return
	}
	t.setStatus(ok, statusOK)
	t.sounds.commit()
	t.dirty = true
}

// --- input ---

func (t *tui) handleKey(ev *tcell.EventKey) (quit bool) {
	if ev.Key() == tcell.KeyCtrlC {
		return true
	}
	// Any key other than a repeated quit disarms the confirmation.
	armed := t.quitArmed
	t.quitArmed = false

	if t.resizing {
		t.resizeKey(ev)
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		if t.session.Phase() != editor.Idle {
			t.session.Cancel()
			t.setStatus("gesture cancelled", statusInfo)
		}
		return false
	case tcell.KeyUp:
		t.moveCursor(grid.DirUp)
		return false
	case tcell.KeyDown:
		t.moveCursor(grid.DirDown)
		return false
	case tcell.KeyLeft:
		t.moveCursor(grid.DirLeft)
		return false
	case tcell.KeyRight:
		t.moveCursor(grid.DirRight)
		return false
	case tcell.KeyEnter:
		t.clickAt(t.cursor)
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}

	switch ev.Rune() {
	case 'q':
		if t.dirty && !armed {
			t.quitArmed = true
			t.setStatus("unsaved changes, press q again to quit", statusWarn)
			return false
		}
		return true
	case ' ':
		t.clickAt(t.cursor)
	case 'h':
		t.moveCursor(grid.DirLeft)
	case 'j':
		t.moveCursor(grid.DirDown)
	case 'k':
		t.moveCursor(grid.DirUp)
	case 'l':
		t.moveCursor(grid.DirRight)
	case '1':
		t.setTool(editor.ToolSelect)
	case '2':
		t.setTool(editor.ToolPaint)
	case '3':
		t.setTool(editor.ToolMove)
	case '4':
		t.setTool(editor.ToolErase)
	case 'c':
		t.session.Color = t.session.Color.Next()
		t.setStatus(fmt.Sprintf("color: %s", t.session.Color), statusInfo)
	case 'r':
		t.report(t.session.RecolorSelected(t.session.Color),
			fmt.Sprintf("recolored to %s", t.session.Color))
	case 'e':
		if t.activeEnd == editor.Head {
			t.activeEnd = editor.Tail
		} else {
			t.activeEnd = editor.Head
		}
		t.setStatus(fmt.Sprintf("active end: %s", t.activeEnd), statusInfo)
	case 'K':
		t.report(t.session.NudgeEnd(t.activeEnd, grid.DirUp), "nudged up")
	case 'J':
		t.report(t.session.NudgeEnd(t.activeEnd, grid.DirDown), "nudged down")
	case 'H':
		t.report(t.session.NudgeEnd(t.activeEnd, grid.DirLeft), "nudged left")
	case 'L':
		t.report(t.session.NudgeEnd(t.activeEnd, grid.DirRight), "nudged right")
	case '+', '=':
		t.report(t.session.AddSegment(t.activeEnd), "segment added")
	case '-', '_':
		t.report(t.session.RemoveSegment(t.activeEnd), "segment removed")
	case 'x':
		t.report(t.session.DeleteSelected(), "slither deleted")
	case 'i':
		t.report(t.session.AddInteractor(level.Chain, 1), "chain interactor added")
	case 'o':
		t.report(t.session.AddInteractor(level.Cocoon, 1), "cocoon interactor added")
	case 'u':
		t.removeLastInteractor()
	case 'f':
		if t.session.Phase() == editor.PaintingPath {
			sl, err := t.session.FinishPaint()
			switch {
			case err != nil:
				t.setStatus(err.Error(), statusBad)
				t.sounds.reject()
			case sl == nil:
				t.setStatus("single-cell path discarded", statusWarn)
			default:
				t.report(nil, "slither committed")
			}
		}
	case 'g':
		t.resizing = true
		t.pendW = t.session.Level.Width
		t.pendH = t.session.Level.Height
		t.setStatus("resize: arrows adjust, Enter applies, Esc cancels", statusInfo)
	case 's':
		t.save()
	}
	return false
}

func (t *tui) resizeKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		t.resizing = false
		t.setStatus("resize cancelled", statusInfo)
	case tcell.KeyUp:
		t.pendH--
	case tcell.KeyDown:
		t.pendH++
	case tcell.KeyLeft:
		t.pendW--
	case tcell.KeyRight:
		t.pendW++
	case tcell.KeyEnter:
		t.applyResize()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'h':
			t.pendW--
		case 'l':
			t.pendW++
		case 'k':
			t.pendH--
		case 'j':
			t.pendH++
		}
	}
}

func (t *tui) applyResize() {
	t.resizing = false
	impact := level.PreviewResize(t.session.Level, t.pendW, t.pendH)
	err := t.session.ResizeGrid(t.pendW, t.pendH)
	if err != nil {
		t.setStatus(err.Error(), statusBad)
		t.sounds.reject()
		return
	}
	msg := fmt.Sprintf("resized to %dx%d", t.pendW, t.pendH)
	if !impact.Empty() {
		msg += fmt.Sprintf(" (%d slither(s) affected, %d hole(s) removed)",
			len(impact.Slithers), len(impact.RemovedHoles))
	}
	t.clampCursor()
	t.report(nil, msg)
}

func (t *tui) handleMouse(ev *tcell.EventMouse) {
	buttons := ev.Buttons()
	pressed := buttons&tcell.Button1 != 0 && t.prevButtons&tcell.Button1 == 0
	t.prevButtons = buttons
	if !pressed {
		return
	}
	x, y := ev.Position()
	c := grid.Cell{X: (x - gridLeft) / cellW, Y: y - gridTop}
	if !t.session.Level.InBounds(c) {
		return
	}
	t.cursor = c
	t.clickAt(c)
}

func (t *tui) setTool(tool editor.Tool) {
	if t.session.Phase() != editor.Idle {
		t.session.Cancel()
	}
	t.session.Tool = tool
	t.setStatus(fmt.Sprintf("tool: %s", tool), statusInfo)
}

func (t *tui) moveCursor(d grid.Dir) {
	c := t.cursor.Step(d)
	if t.session.Level.InBounds(c) {
		t.cursor = c
	}
}

func (t *tui) clampCursor() {
	l := t.session.Level
	if t.cursor.X >= l.Width {
		t.cursor.X = l.Width - 1
	}
	if t.cursor.Y >= l.Height {
		t.cursor.Y = l.Height - 1
	}
}

func (t *tui) clickAt(c grid.Cell) {
	res, err := t.session.Click(c)
	if err != nil {
		t.setStatus(err.Error(), statusBad)
		t.sounds.reject()
		return
	}
	switch res.Action {
	case editor.ActionSelected:
		if res.Slither != nil {
			t.setStatus(fmt.Sprintf("selected %s slither", res.Slither.Color), statusInfo)
		} else {
			t.setStatus("nothing here", statusInfo)
		}
	case editor.ActionPaintStarted:
		t.setStatus(fmt.Sprintf("painting %s path", t.session.Color), statusInfo)
	case editor.ActionPaintExtended:
		t.setStatus(fmt.Sprintf("path length %d", len(t.session.PaintPath())), statusInfo)
	case editor.ActionPaintCommitted:
		t.report(nil, "slither committed")
	case editor.ActionPaintDiscarded:
		t.setStatus("single-cell path discarded", statusWarn)
	case editor.ActionDragStarted:
		t.setStatus("dragging, click destination", statusInfo)
	case editor.ActionSlitherMoved:
		t.report(nil, "slither moved")
	case editor.ActionHoleMoved:
		t.report(nil, "hole moved")
	case editor.ActionErased:
		t.report(nil, "erased")
	}
}

func (t *tui) removeLastInteractor() {
	sl := t.session.Level.SlitherByID(t.session.Selected)
	if sl == nil || len(sl.Interactors) == 0 {
		t.setStatus("no interactor to remove", statusWarn)
		t.sounds.reject()
		return
	}
	t.report(t.session.RemoveInteractor(len(sl.Interactors)-1), "interactor removed")
}

func (t *tui) save() {
	path := t.path
	if path == "" {
		path = "untitled.json"
	}
	if err := levelfile.Save(t.session.Level, path); err != nil {
		t.setStatus(err.Error(), statusBad)
		t.sounds.reject()
		return
	}
	t.path = path
	t.dirty = false
	t.setStatus(fmt.Sprintf("saved %s", path), statusOK)
	t.sounds.commit()
}

// --- rendering ---

func (t *tui) draw() {
	if !t.statusUntil.IsZero() && time.Now().After(t.statusUntil) {
		t.statusMsg = ""
		t.statusUntil = time.Time{}
	}

	t.screen.Clear()
	l := t.session.Level

	t.drawHeader()
	t.drawBorder(l.Width, l.Height)
	for y := 0; y < l.Height; y++ {
		for x := 0; x < l.Width; x++ {
			t.drawCell(grid.Cell{X: x, Y: y})
		}
	}
	t.drawStatus()
	t.screen.Show()
}

func (t *tui) drawHeader() {
	name := t.path
	if name == "" {
		name = "(new level)"
	}
	if t.dirty {
		name += " *"
	}
	t.print(gridLeft, 0, name, tcell.StyleDefault.Bold(true))
}

func (t *tui) drawBorder(w, h int) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	left, top := gridLeft-1, gridTop-1
	right, bottom := gridLeft+w*cellW, gridTop+h

	t.screen.SetContent(left, top, '┌', nil, style)
	t.screen.SetContent(right, top, '┐', nil, style)
	t.screen.SetContent(left, bottom, '└', nil, style)
	t.screen.SetContent(right, bottom, '┘', nil, style)
	for x := left + 1; x < right; x++ {
		t.screen.SetContent(x, top, '─', nil, style)
		t.screen.SetContent(x, bottom, '─', nil, style)
	}
	for y := top + 1; y < bottom; y++ {
		t.screen.SetContent(left, y, '│', nil, style)
		t.screen.SetContent(right, y, '│', nil, style)
	}
}

// drawCell renders one grid cell: committed occupant, then any
// in-progress gesture overlay, then the cursor highlight.
func (t *tui) drawCell(c grid.Cell) {
	r, style := t.cellContent(c)
	if c == t.cursor {
		style = style.Reverse(true)
	}
	sx := gridLeft + c.X*cellW
	sy := gridTop + c.Y
	t.screen.SetContent(sx, sy, r, nil, style)
	t.screen.SetContent(sx+1, sy, r, nil, style)
}

func (t *tui) cellContent(c grid.Cell) (rune, tcell.Style) {
	s := t.session

	// In-progress paint path overlays everything beneath it.
	if s.Phase() == editor.PaintingPath {
		for _, pc := range s.PaintPath() {
			if pc == c {
				return '▒', styleFor(s.Color)
			}
		}
	}

	occ := s.Level.Occupant(c)
	switch occ.Kind {
	case level.OccupantSegment:
		sl := occ.Slither
		style := styleFor(sl.Color)
		if sl.ID == s.Selected {
			style = style.Bold(true).Underline(true)
		}
		if s.Phase() == editor.DraggingHandle && s.DragSlither() == sl {
			end := s.DragEnd()
			if (end == editor.Head && c == sl.Head()) || (end == editor.Tail && c == sl.Tail()) {
				return '▓', style.Blink(true)
			}
		}
		if c == sl.Head() {
			return '▓', style
		}
		return '█', style
	case level.OccupantHole:
		style := styleFor(occ.Hole.Color)
		if s.Phase() == editor.DraggingHole && s.DragHole() == occ.Hole {
			return '◌', style.Blink(true)
		}
		return '◯', style
	}
	return '·', tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
}

func (t *tui) drawStatus() {
	l := t.session.Level
	y := gridTop + l.Height + 1

	bar := fmt.Sprintf("[%s] color:%s end:%s grid:%dx%d",
		t.session.Tool, t.session.Color, t.activeEnd, l.Width, l.Height)
	if t.resizing {
		bar = fmt.Sprintf("RESIZE %dx%d -> %dx%d (Enter applies, Esc cancels)",
			l.Width, l.Height, t.pendW, t.pendH)
	} else if sl := l.SlitherByID(t.session.Selected); sl != nil {
		bar += fmt.Sprintf(" selected:%s len:%d interactors:%d",
			sl.Color, sl.Len(), len(sl.Interactors))
	}
	t.print(gridLeft, y, bar, tcell.StyleDefault)

	if t.statusMsg != "" {
		style := tcell.StyleDefault
		switch t.statusKind {
		case statusOK:
			style = style.Foreground(tcell.ColorGreen)
		case statusWarn:
			style = style.Foreground(tcell.ColorYellow)
		case statusBad:
			style = style.Foreground(tcell.ColorRed)
		}
		t.print(gridLeft, y+1, t.statusMsg, style)
	}

	help := "1-4 tool  c color  e end  HJKL nudge  +/- segment  i/o/u interactor  x delete  g resize  s save  q quit"
	t.print(gridLeft, y+3, help, tcell.StyleDefault.Dim(true))
}

func (t *tui) print(x, y int, msg string, style tcell.Style) {
	for i, r := range msg {
		t.screen.SetContent(x+i, y, r, nil, style)
	}
}
