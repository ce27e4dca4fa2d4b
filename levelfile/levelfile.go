// Package levelfile implements the on-disk level contract: a JSON
// object with gridWidth/gridHeight, the slither list, and the hole
// list. Interactors carry a required Type discriminator; anything the
// decoder does not recognize aborts the load with ErrSerialization and
// leaves the caller's in-memory level untouched.
package levelfile

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"slitherforge/grid"
	"slitherforge/level"
)

// ErrSerialization indicates malformed or unreadable on-disk data, or
// an unrecognized interactor discriminator.
var ErrSerialization = errors.New("serialization error")

// Interactor discriminator values as they appear on disk.
const (
	chainType  = "ChainInteractor"
	cocoonType = "CocoonInteractor"
)

type cellJSON struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type interactorJSON struct {
	Type     string `json:"Type"`
	HitCount int    `json:"hitCount"`
}

type slitherJSON struct {
	ID            string           `json:"id"`
	Color         level.Color      `json:"color"`
	BodyPositions []cellJSON       `json:"bodyPositions"`
	Interactors   []interactorJSON `json:"interactors"`
}

type holeJSON struct {
	Color     level.Color `json:"color"`
	Position  cellJSON    `json:"position"`
	SlitherID string      `json:"slitherId"`
}

type levelJSON struct {
	GridWidth  int           `json:"gridWidth"`
	GridHeight int           `json:"gridHeight"`
	Slithers   []slitherJSON `json:"slithers"`
	Holes      []holeJSON    `json:"holes"`
}

// Encode renders l in the on-disk shape.
func Encode(l *level.Level) ([]byte, error) {
	out := levelJSON{
		GridWidth:  l.Width,
		GridHeight: l.Height,
		Slithers:   make([]slitherJSON, 0, len(l.Slithers)),
		Holes:      make([]holeJSON, 0, len(l.Holes)),
	}

	for _, s := range l.Slithers {
		sj := slitherJSON{
			ID:            s.ID,
			Color:         s.Color,
			BodyPositions: make([]cellJSON, len(s.Body)),
			Interactors:   make([]interactorJSON, 0, len(s.Interactors)),
		}
		for i, c := range s.Body {
			sj.BodyPositions[i] = cellJSON{X: c.X, Y: c.Y}
		}
		for _, it := range s.Interactors {
			typeName := chainType
			if it.Kind == level.Cocoon {
				typeName = cocoonType
			}
			sj.Interactors = append(sj.Interactors, interactorJSON{
				Type:     typeName,
				HitCount: it.HitCount,
			})
		}
		out.Slithers = append(out.Slithers, sj)
	}

	for _, h := range l.Holes {
		out.Holes = append(out.Holes, holeJSON{
			Color:     h.Color,
			Position:  cellJSON{X: h.Pos.X, Y: h.Pos.Y},
			SlitherID: h.SlitherID,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	return data, nil
}

// Decode parses on-disk data into a level without repairing it.
func Decode(data []byte) (*level.Level, error) {
	var in levelJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
	}
	if in.GridWidth < 1 || in.GridHeight < 1 {
		return nil, fmt.Errorf("%w: grid %dx%d", ErrSerialization, in.GridWidth, in.GridHeight)
	}

	l := level.New(in.GridWidth, in.GridHeight)
	for _, sj := range in.Slithers {
		s := &level.Slither{
			ID:    sj.ID,
			Color: sj.Color,
			Body:  make([]grid.Cell, len(sj.BodyPositions)),
		}
		for i, c := range sj.BodyPositions {
			s.Body[i] = grid.Cell{X: c.X, Y: c.Y}
		}
		if !level.ValidPath(s.Body) {
			return nil, fmt.Errorf("%w: slither %q has an invalid body", ErrSerialization, sj.ID)
		}
		for _, ij := range sj.Interactors {
			var kind level.InteractorKind
			switch ij.Type {
			case chainType:
				kind = level.Chain
			case cocoonType:
				kind = level.Cocoon
			default:
				return nil, fmt.Errorf("%w: unknown interactor type %q", ErrSerialization, ij.Type)
			}
			it, err := level.NewInteractor(kind, ij.HitCount)
			if err != nil {
				return nil, fmt.Errorf("%w: %v", ErrSerialization, err)
			}
			s.Interactors = append(s.Interactors, it)
		}
		l.Slithers = append(l.Slithers, s)
	}

	for _, hj := range in.Holes {
		l.Holes = append(l.Holes, &level.Hole{
			Color:     hj.Color,
			Pos:       grid.Cell{X: hj.Position.X, Y: hj.Position.Y},
			SlitherID: hj.SlitherID,
		})
	}

	return l, nil
}

// Save writes l to path. Validation is the caller's concern: the save
// surface asks before persisting a level with pairing violations.
func Save(l *level.Level, path string) error {
	data, err := Encode(l)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Load reads path, decodes it, repairs any pairing violations, and
// returns the violations found pre-repair as a non-fatal warning list.
func Load(path string) (*level.Level, []level.Violation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	l, err := Decode(data)
	if err != nil {
		return nil, nil, err
	}

	violations := level.Validate(l)
	if len(violations) > 0 {
		slog.Warn("loaded level needed repair", "path", path, "violations", len(violations))
		level.Repair(l)
	}
	return l, violations, nil
}
