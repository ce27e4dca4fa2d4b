package levelfile

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"slitherforge/grid"
	"slitherforge/level"
)

func buildLevel(t *testing.T) *level.Level {
	t.Helper()
	l := level.New(5, 8)
	s, err := l.AddSlither([]grid.Cell{{X: 0, Y: 0}, {X: 0, Y: 1}, {X: 0, Y: 2}}, level.Green)
	if err != nil {
		t.Fatalf("setup: %v", err)
	}
	s.Interactors = []level.Interactor{
		{Kind: level.Chain, HitCount: 2},
		{Kind: level.Cocoon, HitCount: 1},
	}
	if _, err := l.AddSlither([]grid.Cell{{X: 3, Y: 3}, {X: 4, Y: 3}}, level.Magenta); err != nil {
		t.Fatalf("setup: %v", err)
	}
	return l
}

func TestRoundTrip(t *testing.T) {
	l := buildLevel(t)
	path := filepath.Join(t.TempDir(), "level.json")

	if err := Save(l, path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, violations, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(violations) != 0 {
		t.Errorf("Valid level should load without violations, got %v", violations)
	}

	if got.Width != l.Width || got.Height != l.Height {
		t.Errorf("Grid %dx%d, want %dx%d", got.Width, got.Height, l.Width, l.Height)
	}
	if len(got.Slithers) != len(l.Slithers) || len(got.Holes) != len(l.Holes) {
		t.Fatalf("Entity counts changed: %d/%d slithers, %d/%d holes",
			len(got.Slithers), len(l.Slithers), len(got.Holes), len(l.Holes))
	}

	for _, want := range l.Slithers {
		s := got.SlitherByID(want.ID)
		if s == nil {
			t.Fatalf("Slither %s missing after round trip", want.ID)
		}
		if s.Color != want.Color {
			t.Errorf("Slither %s color %v, want %v", want.ID, s.Color, want.Color)
		}
		if len(s.Body) != len(want.Body) {
			t.Fatalf("Slither %s body %v, want %v", want.ID, s.Body, want.Body)
		}
		for i := range want.Body {
			if s.Body[i] != want.Body[i] {
				t.Errorf("Slither %s body[%d] = %v, want %v", want.ID, i, s.Body[i], want.Body[i])
			}
		}
		if len(s.Interactors) != len(want.Interactors) {
			t.Fatalf("Slither %s interactors %v, want %v", want.ID, s.Interactors, want.Interactors)
		}
		for i := range want.Interactors {
			if s.Interactors[i] != want.Interactors[i] {
				t.Errorf("Slither %s interactor %d = %+v, want %+v",
					want.ID, i, s.Interactors[i], want.Interactors[i])
			}
		}
	}

	for _, want := range l.Holes {
		h := got.HoleFor(want.SlitherID)
		if h == nil {
			t.Fatalf("Hole for %s missing", want.SlitherID)
		}
		if h.Pos != want.Pos || h.Color != want.Color {
			t.Errorf("Hole %+v, want %+v", *h, *want)
		}
	}
}

func TestEncodeShape(t *testing.T) {
	l := buildLevel(t)
	data, err := Encode(l)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	out := string(data)

	for _, want := range []string{
		`"gridWidth": 5`,
		`"gridHeight": 8`,
		`"bodyPositions"`,
		`"Type": "ChainInteractor"`,
		`"Type": "CocoonInteractor"`,
		`"hitCount": 2`,
		`"color": "Green"`,
		`"slitherId"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Encoded output missing %q:\n%s", want, out)
		}
	}
}

func TestDecodeRejectsUnknownInteractorType(t *testing.T) {
	data := []byte(`{
		"gridWidth": 5, "gridHeight": 5,
		"slithers": [
			{"id": "a", "color": "Red",
			 "bodyPositions": [{"x":0,"y":0},{"x":0,"y":1}],
			 "interactors": [{"Type": "LaserInteractor", "hitCount": 1}]}
		],
		"holes": []
	}`)
	if _, err := Decode(data); !errors.Is(err, ErrSerialization) {
		t.Errorf("Expected ErrSerialization, got %v", err)
	}
}

func TestDecodeRejectsMalformedInput(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{{{`},
		{"unknown color", `{"gridWidth":5,"gridHeight":5,"slithers":[{"id":"a","color":"Octarine","bodyPositions":[],"interactors":[]}],"holes":[]}`},
		{"zero grid", `{"gridWidth":0,"gridHeight":5,"slithers":[],"holes":[]}`},
		{"bad hit count", `{"gridWidth":5,"gridHeight":5,"slithers":[{"id":"a","color":"Red","bodyPositions":[{"x":0,"y":0},{"x":0,"y":1}],"interactors":[{"Type":"ChainInteractor","hitCount":0}]}],"holes":[]}`},
		{"single segment body", `{"gridWidth":5,"gridHeight":5,"slithers":[{"id":"a","color":"Red","bodyPositions":[{"x":0,"y":0}],"interactors":[]}],"holes":[]}`},
		{"disconnected body", `{"gridWidth":5,"gridHeight":5,"slithers":[{"id":"a","color":"Red","bodyPositions":[{"x":0,"y":0},{"x":2,"y":0}],"interactors":[]}],"holes":[]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Decode([]byte(tt.data)); !errors.Is(err, ErrSerialization) {
				t.Errorf("Expected ErrSerialization, got %v", err)
			}
		})
	}
}

func TestLoadRepairsAndReportsViolations(t *testing.T) {
	// A hole referencing a slither that does not exist: Load repairs it
	// and surfaces the violation as a warning.
	data := []byte(`{
		"gridWidth": 5, "gridHeight": 5,
		"slithers": [],
		"holes": [{"color": "Red", "position": {"x":1,"y":1}, "slitherId": "ghost"}]
	}`)
	path := filepath.Join(t.TempDir(), "broken.json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("setup: %v", err)
	}

	l, violations, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(violations) != 1 || violations[0].Kind != level.OrphanHole {
		t.Fatalf("Expected one orphan hole violation, got %v", violations)
	}
	if len(l.Holes) != 0 {
		t.Error("Orphan hole should be repaired away")
	}
	if v := level.Validate(l); len(v) != 0 {
		t.Errorf("Loaded level should validate clean, got %v", v)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
