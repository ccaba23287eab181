// Package render draws a catalogue's bus network as an SVG map.
//
// Stop coordinates are fitted into a width×height canvas by a Projector.
// The map is then painted in four layers:
//
//  1. one round-capped polyline per bus, through its effective route;
//  2. bus name labels at the first stop and, for out-and-back buses whose
//     ends differ, at the turnaround stop;
//  3. a white circle for every stop that some bus serves;
//  4. the names of those stops.
//
// Every label is drawn twice, a stroked halo in the underlayer color first
// and the filled text on top, so names stay readable over crossing lines.
// Buses take palette colors in name order, wrapping around the palette.
//
// Settings decode from the render_settings object of a batch document:
//
//	{
//	  "width": 1200, "height": 1200, "padding": 50,
//	  "line_width": 14, "stop_radius": 5,
//	  "bus_label_font_size": 20, "bus_label_offset": [7, 15],
//	  "stop_label_font_size": 20, "stop_label_offset": [7, -3],
//	  "underlayer_color": [255, 255, 255, 0.85], "underlayer_width": 3,
//	  "color_palette": ["green", [255, 160, 0], "red"]
//	}
package render
