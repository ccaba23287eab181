package render

import (
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/transitcat/svg"
)

// ErrBadSettings indicates render settings outside their accepted range.
var ErrBadSettings = errors.New("render: invalid render settings")

const maxExtent = 100000

var validate = validator.New()

// Settings is the map style. Lengths are in canvas units.
type Settings struct {
	Width      float64 `json:"width" validate:"gte=0,lte=100000"`
	Height     float64 `json:"height" validate:"gte=0,lte=100000"`
	Padding    float64 `json:"padding" validate:"gte=0"`
	LineWidth  float64 `json:"line_width" validate:"gte=0,lte=100000"`
	StopRadius float64 `json:"stop_radius" validate:"gte=0,lte=100000"`

	BusLabelFontSize  uint32    `json:"bus_label_font_size" validate:"lte=100000"`
	BusLabelOffset    svg.Point `json:"bus_label_offset"`
	StopLabelFontSize uint32    `json:"stop_label_font_size" validate:"lte=100000"`
	StopLabelOffset   svg.Point `json:"stop_label_offset"`

	UnderlayerColor svg.Color `json:"underlayer_color"`
	UnderlayerWidth float64   `json:"underlayer_width" validate:"gte=0,lte=100000"`
	// ColorPalette is cycled over buses in name order. When empty, bus lines
	// and labels are painted "none".
	ColorPalette []svg.Color `json:"color_palette"`
}

// Validate checks every field against its range. Padding must stay below
// half of the smaller canvas side.
func (s Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrBadSettings, err)
	}
	if limit := math.Min(s.Width, s.Height) / 2; s.Padding >= limit && s.Padding > 0 {
		return fmt.Errorf("%w: padding %g must be below %g", ErrBadSettings, s.Padding, limit)
	}
	for name, p := range map[string]svg.Point{
		"bus_label_offset":  s.BusLabelOffset,
		"stop_label_offset": s.StopLabelOffset,
	} {
		if math.Abs(p.X) > maxExtent || math.Abs(p.Y) > maxExtent {
			return fmt.Errorf("%w: %s (%g, %g) out of range", ErrBadSettings, name, p.X, p.Y)
		}
	}

	return nil
}

// color returns the palette entry for the i-th bus.
func (s Settings) color(i int) svg.Color {
	if len(s.ColorPalette) == 0 {
		return svg.NoneColor
	}

	return s.ColorPalette[i%len(s.ColorPalette)]
}
