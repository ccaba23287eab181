package svg

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Point is a canvas position in user units.
type Point struct {
	X, Y float64
}

// UnmarshalJSON accepts an [x, y] pair.
func (p *Point) UnmarshalJSON(data []byte) error {
	var xy []float64
	if err := json.Unmarshal(data, &xy); err != nil {
		return fmt.Errorf("svg: point: %w", err)
	}
	if len(xy) != 2 {
		return fmt.Errorf("svg: point: want [x, y], got %d values", len(xy))
	}
	p.X, p.Y = xy[0], xy[1]

	return nil
}

// LineCap is the stroke-linecap value.
type LineCap string

// LineJoin is the stroke-linejoin value.
type LineJoin string

const (
	CapButt   LineCap = "butt"
	CapRound  LineCap = "round"
	CapSquare LineCap = "square"

	JoinArcs      LineJoin = "arcs"
	JoinBevel     LineJoin = "bevel"
	JoinMiter     LineJoin = "miter"
	JoinMiterClip LineJoin = "miter-clip"
	JoinRound     LineJoin = "round"
)

// Style holds presentation attributes. Zero fields are omitted.
type Style struct {
	Fill        Color
	Stroke      Color
	StrokeWidth *float64
	LineCap     LineCap
	LineJoin    LineJoin
}

// Width returns a pointer suitable for Style.StrokeWidth.
func Width(w float64) *float64 { return &w }

func (s Style) write(b *strings.Builder) {
	if !s.Fill.IsZero() {
		fmt.Fprintf(b, ` fill="%s"`, s.Fill)
	}
	if !s.Stroke.IsZero() {
		fmt.Fprintf(b, ` stroke="%s"`, s.Stroke)
	}
	if s.StrokeWidth != nil {
		fmt.Fprintf(b, ` stroke-width="%s"`, formatNumber(*s.StrokeWidth))
	}
	if s.LineCap != "" {
		fmt.Fprintf(b, ` stroke-linecap="%s"`, s.LineCap)
	}
	if s.LineJoin != "" {
		fmt.Fprintf(b, ` stroke-linejoin="%s"`, s.LineJoin)
	}
}

// Object is an element that can be added to a Document.
type Object interface {
	writeTag(b *strings.Builder)
}

// Circle is a <circle> element.
type Circle struct {
	Center Point
	Radius float64
	Style
}

func (c Circle) writeTag(b *strings.Builder) {
	fmt.Fprintf(b, `<circle cx="%s" cy="%s" r="%s"`,
		formatNumber(c.Center.X), formatNumber(c.Center.Y), formatNumber(c.Radius))
	c.Style.write(b)
	b.WriteString("/>")
}

// Polyline is a <polyline> element.
type Polyline struct {
	Points []Point
	Style
}

func (p Polyline) writeTag(b *strings.Builder) {
	b.WriteString(`<polyline points="`)
	for i, pt := range p.Points {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatNumber(pt.X))
		b.WriteByte(',')
		b.WriteString(formatNumber(pt.Y))
	}
	b.WriteByte('"')
	p.Style.write(b)
	b.WriteString("/>")
}

// Text is a <text> element. Data is escaped on output.
type Text struct {
	Position   Point
	Offset     Point
	FontSize   uint32
	FontFamily string
	FontWeight string
	Data       string
	Style
}

var textEscaper = strings.NewReplacer(
	`"`, "&quot;",
	`'`, "&apos;",
	"<", "&lt;",
	">", "&gt;",
	"&", "&amp;",
)

func (t Text) writeTag(b *strings.Builder) {
	fmt.Fprintf(b, `<text x="%s" y="%s" dx="%s" dy="%s" font-size="%s"`,
		formatNumber(t.Position.X), formatNumber(t.Position.Y),
		formatNumber(t.Offset.X), formatNumber(t.Offset.Y),
		strconv.FormatUint(uint64(t.FontSize), 10))
	if t.FontFamily != "" {
		fmt.Fprintf(b, ` font-family="%s"`, t.FontFamily)
	}
	if t.FontWeight != "" {
		fmt.Fprintf(b, ` font-weight="%s"`, t.FontWeight)
	}
	t.Style.write(b)
	b.WriteByte('>')
	textEscaper.WriteString(b, t.Data)
	b.WriteString("</text>")
}

const (
	header = "<?xml version=\"1.0\" encoding=\"UTF-8\" ?>\n" +
		"<svg xmlns=\"http://www.w3.org/2000/svg\" version=\"1.1\">\n"
	footer = "</svg>"
)

// Document is an ordered list of objects. The zero value is empty and ready
// to use.
type Document struct {
	objects []Object
}

// Add appends obj; later objects paint over earlier ones.
func (d *Document) Add(obj Object) {
	d.objects = append(d.objects, obj)
}

// Len returns the number of objects added so far.
func (d *Document) Len() int { return len(d.objects) }

// String renders the whole document.
func (d *Document) String() string {
	var b strings.Builder
	b.WriteString(header)
	for _, obj := range d.objects {
		b.WriteString("  ")
		obj.writeTag(&b)
		b.WriteByte('\n')
	}
	b.WriteString(footer)

	return b.String()
}

// WriteTo implements io.WriterTo.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())

	return int64(n), err
}
