// Package draw paints rind descriptions onto two side by side surfaces:
// the circle with its chord on the left, the rotated pieces on the right.
package draw

import (
	"fmt"
	"io"

	"rind-tiling/rind"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"
)

// Tunable constants for output
const (
	CIRCLE_COLOR     = "#1f77b4"
	CHORD_HALF_SPAN  = 1.2
	CHORD_DASH       = 0.08
	LABEL_Y          = 1.05
	TITLE_Y          = 1.3
	PANEL_HALF_WIDTH = 1.4
	PANEL_SPACING    = 2 * PANEL_HALF_WIDTH

	CIRCLE_TITLE = "Circle with Adjustable Line"
	TILING_TITLE = "Reduced Pieces Forming Circle"
)

// Painter renders one description into w.
type Painter interface {
	Paint(w io.Writer, rd *rind.RenderDescription) error
	// Ext is the file extension of the output, without a dot.
	Ext() string
}

// New returns the painter for a format name, "svg" or "png".
func New(format string, width, height int) (Painter, error) {
	switch format {
	case "svg":
		return &SVGPainter{}, nil
	case "png":
		r, err := NewRaster(width, height)
		if err != nil {
			return nil, err
		}
		return r, nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}

func hexColor(c gg.RGBA) string {
	r, g, b, _ := c.Color().RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// SVGPainter writes a standalone SVG document.
type SVGPainter struct{}

func (*SVGPainter) Ext() string { return "svg" }

func (*SVGPainter) Paint(w io.Writer, rd *rind.RenderDescription) error {
	s := NewSVG(w)
	bounds := geom.Rect{
		Min: geom.Coord{X: -PANEL_HALF_WIDTH, Y: -PANEL_HALF_WIDTH},
		Max: geom.Coord{X: PANEL_HALF_WIDTH + PANEL_SPACING, Y: PANEL_HALF_WIDTH},
	}
	s.Start(bounds, "font-family: sans-serif; font-size: 0.08px", "width='1000'", "height='500'")

	chord := hexColor(rd.ChordColor)

	// Surface A
	s.Text(geom.Coord{X: 0, Y: TITLE_Y}, CIRCLE_TITLE, "text-anchor='middle'")
	if len(rd.CirclePoints) > 0 {
		s.StartPath(rd.CirclePoints[0], fmt.Sprintf("stroke: %s; stroke-width: 0.01; fill: none", CIRCLE_COLOR))
		for _, p := range rd.CirclePoints[1:] {
			s.PathLineTo(p)
		}
		s.PathClose()
		s.EndPath()
	}
	x := rd.ChordPosition
	s.Line(geom.Coord{X: x, Y: -CHORD_HALF_SPAN}, geom.Coord{X: x, Y: CHORD_HALF_SPAN},
		fmt.Sprintf("stroke: %s; stroke-width: 0.02; stroke-dasharray: %g %g", chord, CHORD_DASH, CHORD_DASH/2))
	s.Text(geom.Coord{X: x, Y: LABEL_Y}, rd.Label(), "text-anchor='middle'", fmt.Sprintf("fill: %s", chord))
	s.Text(geom.Coord{X: -PANEL_HALF_WIDTH + 0.05, Y: -PANEL_HALF_WIDTH + 0.1}, rd.Legend(), fmt.Sprintf("fill: %s", chord))

	// Surface B
	if rd.HasTiling() {
		s.StartGroup(geom.Coord{X: PANEL_SPACING, Y: 0})
		s.Text(geom.Coord{X: 0, Y: TITLE_Y}, TILING_TITLE, "text-anchor='middle'")
		style := fmt.Sprintf("stroke: %s; stroke-width: 0.01; fill: none", chord)
		for _, poly := range rd.TilingPieces {
			s.Polyline(poly, style)
		}
		s.EndGroup()
	}

	s.End()
	return s.Err()
}
