package svg

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
)

// ErrBadColor indicates a color value that is neither a name, an rgb triple
// nor an rgba quadruple with components in range.
var ErrBadColor = errors.New("svg: bad color")

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorRGB
	colorRGBA
)

// Color is an SVG paint value. The zero Color is unset: attributes holding it
// are not written at all.
type Color struct {
	kind    colorKind
	name    string
	r, g, b uint8
	opacity float64
}

// NoneColor paints nothing.
var NoneColor = Named("none")

// Named returns a color given by keyword or any CSS color string.
func Named(name string) Color { return Color{kind: colorNamed, name: name} }

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color { return Color{kind: colorRGB, r: r, g: g, b: b} }

// RGBA returns a color with opacity in [0, 1].
func RGBA(r, g, b uint8, opacity float64) Color {
	return Color{kind: colorRGBA, r: r, g: g, b: b, opacity: opacity}
}

// IsZero reports whether c is unset.
func (c Color) IsZero() bool { return c.kind == colorUnset }

// String renders c as an attribute value. An unset color renders as "none".
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name
	case colorRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.r, c.g, c.b)
	case colorRGBA:
		return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.r, c.g, c.b, formatNumber(c.opacity))
	default:
		return "none"
	}
}

// UnmarshalJSON accepts "name", [r, g, b] or [r, g, b, opacity].
func (c *Color) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return fmt.Errorf("%w: %v", ErrBadColor, err)
		}
		*c = Named(name)
		return nil
	}

	var parts []float64
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("%w: %s", ErrBadColor, data)
	}
	if len(parts) != 3 && len(parts) != 4 {
		return fmt.Errorf("%w: want 3 or 4 components, got %d", ErrBadColor, len(parts))
	}
	var rgb [3]uint8
	for i, v := range parts[:3] {
		if v < 0 || v > 255 || v != math.Trunc(v) {
			return fmt.Errorf("%w: component %g is not an integer in [0,255]", ErrBadColor, v)
		}
		rgb[i] = uint8(v)
	}
	if len(parts) == 3 {
		*c = RGB(rgb[0], rgb[1], rgb[2])
		return nil
	}
	if a := parts[3]; a < 0 || a > 1 {
		return fmt.Errorf("%w: opacity %g outside [0,1]", ErrBadColor, a)
	}
	*c = RGBA(rgb[0], rgb[1], rgb[2], parts[3])

	return nil
}

// formatNumber prints v with six significant digits and no trailing zeros.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
