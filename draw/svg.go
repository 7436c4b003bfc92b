package draw

import (
	"fmt"
	"io"
	"strings"

	"github.com/jbeda/geom"
)

////////////////////////////////////////////////////////////////////////////
// SVG serialization helper
//
// Coordinates are given in math orientation (y up) and flipped on output.
type SVG struct {
	writer io.Writer
	err    error
}

func NewSVG(w io.Writer) *SVG {
	return &SVG{writer: w}
}

// Err returns the first write error, if any.
func (svg *SVG) Err() error {
	return svg.err
}

func (svg *SVG) printf(format string, a ...interface{}) {
	if svg.err != nil {
		return
	}
	_, svg.err = fmt.Fprintf(svg.writer, format, a...)
}

var styleEscaper = strings.NewReplacer("&", "&amp;", "'", "&apos;", "<", "&lt;")

// extraparams turns each entry of s into attribute text. Entries of the
// form name='value' are passed through; anything else becomes a single
// quoted style attribute with its quotes escaped.
func extraparams(s []string) string {
	var b strings.Builder
	for _, p := range s {
		if i := strings.Index(p, "="); i > 0 && !strings.ContainsAny(p[:i], " :;'\"") {
			b.WriteString(p)
			b.WriteByte(' ')
		} else if len(p) > 0 {
			fmt.Fprintf(&b, "style='%s' ", styleEscaper.Replace(p))
		}
	}
	return b.String()
}

func escapeText(s string) string {
	r := strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
	return r.Replace(s)
}

// Start opens the document. viewBox is in y-up coordinates.
func (svg *SVG) Start(viewBox geom.Rect, s ...string) {
	svg.printf(`<?xml version="1.0"?>
<svg version="1.1"
     viewBox="%f %f %f %f"
     xmlns="http://www.w3.org/2000/svg" %s>
`, viewBox.Min.X, -viewBox.Max.Y, viewBox.Width(), viewBox.Height(), extraparams(s))
}

func (svg *SVG) End() {
	svg.printf("</svg>\n")
}

// StartGroup shifts everything until EndGroup by offset.
func (svg *SVG) StartGroup(offset geom.Coord, s ...string) {
	svg.printf("<g transform='translate(%f,%f)' %s>\n", offset.X, -offset.Y, extraparams(s))
}

func (svg *SVG) EndGroup() {
	svg.printf("</g>\n")
}

func (svg *SVG) Line(p1 geom.Coord, p2 geom.Coord, s ...string) {
	svg.printf("<line x1='%f' y1='%f' x2='%f' y2='%f' %s/>\n", p1.X, -p1.Y, p2.X, -p2.Y, extraparams(s))
}

func (svg *SVG) Text(p geom.Coord, text string, s ...string) {
	svg.printf("<text x='%f' y='%f' %s>%s</text>\n", p.X, -p.Y, extraparams(s), escapeText(text))
}

func (svg *SVG) StartPath(p1 geom.Coord, s ...string) {
	svg.printf("<path %sd='M%f,%f", extraparams(s), p1.X, -p1.Y)
}

func (svg *SVG) EndPath() {
	svg.printf("'/>\n")
}

func (svg *SVG) PathLineTo(p geom.Coord) {
	svg.printf("\n  L%f,%f", p.X, -p.Y)
}

func (svg *SVG) PathClose() {
	svg.printf(" Z")
}

// Polyline draws points as a single path. An empty slice draws nothing.
func (svg *SVG) Polyline(points []geom.Coord, s ...string) {
	if len(points) == 0 {
		return
	}
	svg.StartPath(points[0], s...)
	for _, p := range points[1:] {
		svg.PathLineTo(p)
	}
	svg.EndPath()
}
