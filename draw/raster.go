package draw

import (
	"fmt"
	"io"
	"math"

	"rind-tiling/rind"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/jbeda/geom"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	LABEL_POINTS = 14
	TITLE_POINTS = 16
)

// Raster paints PNG images with the gg software renderer. The font is
// parsed once; every Paint draws on its own context, so one Raster may be
// used from several goroutines.
type Raster struct {
	width, height int
	font          *text.FontSource
}

// NewRaster returns a painter for width x height images. Each surface gets
// half of the width.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}
	font, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("loading font: %w", err)
	}
	return &Raster{width: width, height: height, font: font}, nil
}

func (*Raster) Ext() string { return "png" }

// panel maps y-up unit coordinates into the pixel space of one surface.
type panel struct {
	center geom.Coord
	scale  float64
}

func (p panel) pt(c geom.Coord) (float64, float64) {
	return p.center.X + c.X*p.scale, p.center.Y - c.Y*p.scale
}

func (r *Raster) panels() (panel, panel) {
	w, h := float64(r.width)/2, float64(r.height)
	scale := math.Min(w, h) / (2 * PANEL_HALF_WIDTH)
	a := panel{center: geom.Coord{X: w / 2, Y: h / 2}, scale: scale}
	b := panel{center: geom.Coord{X: w + w/2, Y: h / 2}, scale: scale}
	return a, b
}

func polyline(dc *gg.Context, p panel, points []geom.Coord) {
	for i, c := range points {
		x, y := p.pt(c)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
}

func (r *Raster) Paint(w io.Writer, rd *rind.RenderDescription) error {
	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()
	dc.ClearWithColor(gg.White)

	a, b := r.panels()
	chord := rd.ChordColor

	// Surface A
	dc.SetColor(gg.Hex(CIRCLE_COLOR).Color())
	dc.SetLineWidth(1.5)
	polyline(dc, a, rd.CirclePoints)
	dc.ClosePath()
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroking circle: %w", err)
	}

	dc.SetRGB(chord.R, chord.G, chord.B)
	dc.SetLineWidth(2)
	dc.SetDash(8, 4)
	x0, y0 := a.pt(geom.Coord{X: rd.ChordPosition, Y: -CHORD_HALF_SPAN})
	x1, y1 := a.pt(geom.Coord{X: rd.ChordPosition, Y: CHORD_HALF_SPAN})
	dc.DrawLine(x0, y0, x1, y1)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("stroking chord: %w", err)
	}
	dc.SetDash()

	dc.SetFont(r.font.Face(LABEL_POINTS))
	lx, ly := a.pt(geom.Coord{X: rd.ChordPosition, Y: LABEL_Y})
	dc.DrawStringAnchored(rd.Label(), lx, ly, 0.5, 0)
	lx, ly = a.pt(geom.Coord{X: -PANEL_HALF_WIDTH + 0.05, Y: -PANEL_HALF_WIDTH + 0.1})
	dc.DrawString(rd.Legend(), lx, ly)

	dc.SetRGB(0, 0, 0)
	dc.SetFont(r.font.Face(TITLE_POINTS))
	tx, ty := a.pt(geom.Coord{X: 0, Y: TITLE_Y})
	dc.DrawStringAnchored(CIRCLE_TITLE, tx, ty, 0.5, 0)

	// Surface B
	if rd.HasTiling() {
		tx, ty = b.pt(geom.Coord{X: 0, Y: TITLE_Y})
		dc.DrawStringAnchored(TILING_TITLE, tx, ty, 0.5, 0)

		dc.SetRGB(chord.R, chord.G, chord.B)
		dc.SetLineWidth(1.5)
		for _, poly := range rd.TilingPieces {
			polyline(dc, b, poly)
		}
		if err := dc.Stroke(); err != nil {
			return fmt.Errorf("stroking pieces: %w", err)
		}
	}

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("encoding png: %w", err)
	}
	return nil
}
