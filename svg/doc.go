// Package svg builds small SVG 1.1 documents out of circles, polylines and
// text, and writes them in a stable textual form.
//
// Output layout:
//
//	<?xml version="1.0" encoding="UTF-8" ?>
//	<svg xmlns="http://www.w3.org/2000/svg" version="1.1">
//	  <circle cx="50" cy="150" r="5" fill="white"/>
//	</svg>
//
// One object per line, indented by two spaces, in insertion order; no
// newline after the closing tag. Numbers use at most six significant
// digits with trailing zeros trimmed, so equal inputs give byte-identical
// documents. Presentation attributes are written only when set, always in
// the order fill, stroke, stroke-width, stroke-linecap, stroke-linejoin.
//
// Colors decode from JSON as a name ("red"), an [r, g, b] triple or an
// [r, g, b, opacity] quadruple; points decode from an [x, y] pair.
package svg
