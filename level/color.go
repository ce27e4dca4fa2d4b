package level

import "fmt"

// Color is the fixed slither/hole palette. Holes always share their
// paired slither's color.
type Color uint8

const (
	Red Color = iota
	Green
	Blue
	Yellow
	Purple
	Orange
	Cyan
	Magenta
)

// Palette lists every color in cycle order.
var Palette = []Color{Red, Green, Blue, Yellow, Purple, Orange, Cyan, Magenta}

var colorNames = map[Color]string{
	Red:     "Red",
	Green:   "Green",
	Blue:    "Blue",
	Yellow:  "Yellow",
	Purple:  "Purple",
	Orange:  "Orange",
	Cyan:    "Cyan",
	Magenta: "Magenta",
}

func (c Color) String() string {
	if name, ok := colorNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Color(%d)", uint8(c))
}

// Next returns the following palette color, wrapping around.
func (c Color) Next() Color {
	return Color((uint8(c) + 1) % uint8(len(Palette)))
}

// ParseColor resolves a palette name as it appears on disk.
func ParseColor(name string) (Color, error) {
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown color %q", name)
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	name, ok := colorNames[c]
	if !ok {
		return nil, fmt.Errorf("color %d has no palette name", uint8(c))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
