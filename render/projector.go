package render

import (
	"math"

	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/svg"
)

// spanEpsilon is the smallest coordinate span, in degrees, treated as non-zero.
const spanEpsilon = 1e-6

// Projector maps coordinates onto a padded canvas. Longitude grows to the
// right, latitude grows upwards, and one zoom factor applies to both axes so
// the map keeps its proportions.
type Projector struct {
	minLng, maxLat float64
	zoom, padding  float64
}

// NewProjector fits points into a width×height canvas with padding on every
// side. The zoom is the tighter of the two axis fits; an axis whose span is
// zero does not constrain it. With no points, or all points equal, every
// coordinate projects to (padding, padding).
func NewProjector(points []geo.Coordinates, width, height, padding float64) Projector {
	p := Projector{padding: padding}
	if len(points) == 0 {
		return p
	}

	minLng, maxLng := points[0].Lng, points[0].Lng
	minLat, maxLat := points[0].Lat, points[0].Lat
	for _, c := range points[1:] {
		minLng, maxLng = math.Min(minLng, c.Lng), math.Max(maxLng, c.Lng)
		minLat, maxLat = math.Min(minLat, c.Lat), math.Max(maxLat, c.Lat)
	}
	p.minLng, p.maxLat = minLng, maxLat

	widthZoom, hasWidth := axisZoom(maxLng-minLng, width, padding)
	heightZoom, hasHeight := axisZoom(maxLat-minLat, height, padding)
	switch {
	case hasWidth && hasHeight:
		p.zoom = math.Min(widthZoom, heightZoom)
	case hasWidth:
		p.zoom = widthZoom
	case hasHeight:
		p.zoom = heightZoom
	}

	return p
}

func axisZoom(span, side, padding float64) (float64, bool) {
	if math.Abs(span) < spanEpsilon {
		return 0, false
	}

	return (side - 2*padding) / span, true
}

// Project returns the canvas position of c.
func (p Projector) Project(c geo.Coordinates) svg.Point {
	return svg.Point{
		X: (c.Lng-p.minLng)*p.zoom + p.padding,
		Y: (p.maxLat-c.Lat)*p.zoom + p.padding,
	}
}
