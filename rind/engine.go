// Package rind computes the rind tiling of a unit circle cut by a vertical
// chord.
//
// The piece of the circle on one side of the chord x = p is scaled down and
// copied by rotation about the origin. The number of copies is however many
// span angles fit into a full turn, and the chord is colored by the span
// angle used as a hue.
package rind

import (
	"math"

	"github.com/gogpu/gg"
	"github.com/jbeda/geom"
)

// Tunable constants of the reference rendering.
const (
	DEFAULT_SAMPLES = 1000
	DEFAULT_SCALE   = 0.45

	// Chord positions closer than this to the center bisect the circle and
	// produce no piece.
	CENTER_EPSILON = 1e-5

	// Span angles below this are treated as no span at all.
	MIN_SPAN = 1e-9
)

// Side is the half plane a piece was taken from.
type Side int

const (
	NoSide Side = iota
	Left
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Degeneracy explains why a description carries no tiling.
type Degeneracy int

const (
	NotDegenerate Degeneracy = iota
	Centered                 // chord through the center
	TooFewPoints             // fewer than two samples on the selected side
	ZeroSpan                 // first and last samples coincide in angle
)

func (d Degeneracy) String() string {
	switch d {
	case NotDegenerate:
		return "none"
	case Centered:
		return "centered"
	case TooFewPoints:
		return "too few points"
	case ZeroSpan:
		return "zero span"
	}
	return "unknown"
}

// RenderDescription is everything a painter needs for one chord position.
type RenderDescription struct {
	CirclePoints    []geom.Coord
	ChordPosition   float64
	ChordColor      gg.RGBA
	HueAngleDegrees float64
	SpanAngle       float64
	Side            Side
	Degenerate      Degeneracy

	// Piece is the scaled, unrotated piece as an open polyline.
	Piece []geom.Coord
	// Angles holds the rotation of each entry in TilingPieces.
	Angles       []float64
	TilingPieces [][]geom.Coord
}

// HasTiling reports whether any rotated pieces were produced.
func (rd RenderDescription) HasTiling() bool {
	return len(rd.TilingPieces) > 0
}

// Engine maps chord positions to render descriptions over a fixed circle
// sampling. An Engine is never modified by Compute and may be shared.
type Engine struct {
	points []geom.Coord
	scale  float64
}

// NewEngine samples the unit circle at the given number of evenly spaced
// angles in [0, 2π).
func NewEngine(samples int, scale float64) *Engine {
	return &Engine{points: SampleCircle(samples), scale: scale}
}

// NewEngineFromPoints uses an arbitrary sampling of the circle. The points
// are copied and their order is kept.
func NewEngineFromPoints(points []geom.Coord, scale float64) *Engine {
	return &Engine{points: append([]geom.Coord(nil), points...), scale: scale}
}

// Points returns a copy of the circle sampling.
func (e *Engine) Points() []geom.Coord {
	return append([]geom.Coord(nil), e.points...)
}

// Scale returns the factor applied to the selected piece.
func (e *Engine) Scale() float64 {
	return e.scale
}

var defaultEngine = NewEngine(DEFAULT_SAMPLES, DEFAULT_SCALE)

// Compute runs the default engine: 1000 samples, pieces scaled by 0.45.
func Compute(chordPosition float64) RenderDescription {
	return defaultEngine.Compute(chordPosition)
}

// SampleCircle returns n points of the unit circle starting at angle 0 and
// going counter-clockwise. The angle 2π itself is not included.
func SampleCircle(n int) []geom.Coord {
	if n <= 0 {
		return nil
	}
	points := make([]geom.Coord, n)
	step := 2 * math.Pi / float64(n)
	for i := range points {
		theta := float64(i) * step
		points[i] = geom.Coord{X: math.Cos(theta), Y: math.Sin(theta)}
	}
	return points
}

// Compute builds the description for a chord at x = chordPosition. Any real
// position is accepted; outside [-1, 1] every sample falls on one side.
func (e *Engine) Compute(chordPosition float64) RenderDescription {
	rd := RenderDescription{
		CirclePoints:  e.Points(),
		ChordPosition: chordPosition,
		ChordColor:    gg.Red,
	}

	if math.Abs(chordPosition) < CENTER_EPSILON {
		rd.Degenerate = Centered
		return rd
	}

	// The side is picked from the sign of the position rather than by
	// comparing the two halves.
	side := Right
	if chordPosition < 0 {
		side = Left
	}
	rd.Side = side

	piece := SelectSide(e.points, chordPosition, side)
	for i := range piece {
		piece[i] = piece[i].Times(e.scale)
	}

	if len(piece) < 2 {
		rd.Degenerate = TooFewPoints
		return rd
	}
	span := SpanAngle(piece)
	if span < MIN_SPAN {
		rd.Degenerate = ZeroSpan
		return rd
	}

	rd.Piece = piece
	rd.SpanAngle = span
	rd.HueAngleDegrees = HueDegrees(span)
	rd.ChordColor = HueColor(rd.HueAngleDegrees)
	rd.Angles = TilingAngles(PieceCount(span))
	rd.TilingPieces = make([][]geom.Coord, len(rd.Angles))
	for i, a := range rd.Angles {
		rd.TilingPieces[i] = ClosePolygon(RotateAll(piece, a))
	}
	return rd
}

// SelectSide returns, in sample order, the points strictly left of x = p
// for Left and the rest for Right.
func SelectSide(points []geom.Coord, p float64, side Side) []geom.Coord {
	var r []geom.Coord
	for _, c := range points {
		if (c.X < p) == (side == Left) {
			r = append(r, c)
		}
	}
	return r
}

// SpanAngle is the angle from the first to the last point of a piece as
// seen from the origin, normalized into (0, 2π].
func SpanAngle(piece []geom.Coord) float64 {
	if len(piece) < 2 {
		return 0
	}
	first, last := piece[0], piece[len(piece)-1]
	span := math.Atan2(last.Y, last.X) - math.Atan2(first.Y, first.X)
	if span <= 0 {
		span += 2 * math.Pi
	}
	return span
}

// PieceCount is how many copies of a piece with the given span tile one
// turn. It is at least 1.
func PieceCount(span float64) int {
	if span <= 0 {
		return 1
	}
	return max(1, int(math.Floor(2*math.Pi/span)))
}

// TilingAngles returns n angles evenly spaced over [0, 2π) starting at 0.
func TilingAngles(n int) []float64 {
	angles := make([]float64, n)
	step := 2 * math.Pi / float64(n)
	for i := range angles {
		angles[i] = float64(i) * step
	}
	return angles
}
