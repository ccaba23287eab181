package render

import (
	"sort"

	"github.com/katalvlaran/transitcat/catalogue"
	"github.com/katalvlaran/transitcat/geo"
	"github.com/katalvlaran/transitcat/svg"
)

const (
	labelFont      = "Verdana"
	busLabelWeight = "bold"
	stopFill       = "white"
	stopLabelFill  = "black"
)

// Renderer draws catalogues with fixed settings. It is immutable and safe
// for concurrent use.
type Renderer struct {
	settings Settings
}

// New validates s and returns a Renderer using it.
func New(s Settings) (*Renderer, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	return &Renderer{settings: s}, nil
}

// Settings returns the style the renderer draws with.
func (r *Renderer) Settings() Settings { return r.settings }

// Render draws the bus network of cat in four layers, bottom to top: route
// lines, bus labels, stop circles, stop labels. Buses are taken in name
// order and the i-th one is painted with palette color i. Only stops served
// by at least one bus are projected and drawn, also in name order.
func (r *Renderer) Render(cat *catalogue.Catalogue) *svg.Document {
	buses := cat.Buses()
	sort.Slice(buses, func(i, j int) bool { return buses[i].Name < buses[j].Name })

	routes := make([][]*catalogue.Stop, 0, len(buses))
	drawn := buses[:0]
	var points []geo.Coordinates
	served := make(map[string]*catalogue.Stop)
	for _, b := range buses {
		stops := cat.RouteStops(b)
		if len(stops) == 0 {
			continue
		}
		drawn = append(drawn, b)
		routes = append(routes, stops)
		for _, s := range stops {
			points = append(points, s.Coordinates)
			served[s.Name] = s
		}
	}
	names := make([]string, 0, len(served))
	for name := range served {
		names = append(names, name)
	}
	sort.Strings(names)

	s := r.settings
	proj := NewProjector(points, s.Width, s.Height, s.Padding)
	doc := &svg.Document{}

	for i, stops := range routes {
		line := svg.Polyline{
			Points: make([]svg.Point, len(stops)),
			Style: svg.Style{
				Fill:        svg.NoneColor,
				Stroke:      s.color(i),
				StrokeWidth: svg.Width(s.LineWidth),
				LineCap:     svg.CapRound,
				LineJoin:    svg.JoinRound,
			},
		}
		for j, stop := range stops {
			line.Points[j] = proj.Project(stop.Coordinates)
		}
		doc.Add(line)
	}

	for i, b := range drawn {
		stops := routes[i]
		r.busLabel(doc, proj.Project(stops[0].Coordinates), b.Name, s.color(i))
		// An out-and-back route turns around at its middle element.
		if last := stops[len(stops)/2]; !b.Roundtrip && last != stops[0] {
			r.busLabel(doc, proj.Project(last.Coordinates), b.Name, s.color(i))
		}
	}

	for _, name := range names {
		doc.Add(svg.Circle{
			Center: proj.Project(served[name].Coordinates),
			Radius: s.StopRadius,
			Style:  svg.Style{Fill: svg.Named(stopFill)},
		})
	}

	for _, name := range names {
		label := svg.Text{
			Position:   proj.Project(served[name].Coordinates),
			Offset:     s.StopLabelOffset,
			FontSize:   s.StopLabelFontSize,
			FontFamily: labelFont,
			Data:       name,
		}
		r.withUnderlayer(doc, label, svg.Named(stopLabelFill))
	}

	return doc
}

func (r *Renderer) busLabel(doc *svg.Document, at svg.Point, name string, color svg.Color) {
	r.withUnderlayer(doc, svg.Text{
		Position:   at,
		Offset:     r.settings.BusLabelOffset,
		FontSize:   r.settings.BusLabelFontSize,
		FontFamily: labelFont,
		FontWeight: busLabelWeight,
		Data:       name,
	}, color)
}

// withUnderlayer adds text twice: first as a stroked halo in the underlayer
// color, then filled with fill on top of it.
func (r *Renderer) withUnderlayer(doc *svg.Document, text svg.Text, fill svg.Color) {
	halo := text
	halo.Style = svg.Style{
		Fill:        r.settings.UnderlayerColor,
		Stroke:      r.settings.UnderlayerColor,
		StrokeWidth: svg.Width(r.settings.UnderlayerWidth),
		LineCap:     svg.CapRound,
		LineJoin:    svg.JoinRound,
	}
	doc.Add(halo)

	text.Style = svg.Style{Fill: fill}
	doc.Add(text)
}
