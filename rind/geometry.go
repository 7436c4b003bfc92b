package rind

import (
	"math"

	"github.com/jbeda/geom"
)

// Rotate turns c counter-clockwise about the origin by angle radians.
func Rotate(c geom.Coord, angle float64) geom.Coord {
	sin, cos := math.Sincos(angle)
	return geom.Coord{
		X: cos*c.X - sin*c.Y,
		Y: sin*c.X + cos*c.Y,
	}
}

// RotateAll returns a rotated copy of points.
func RotateAll(points []geom.Coord, angle float64) []geom.Coord {
	r := make([]geom.Coord, len(points))
	for i, c := range points {
		r[i] = Rotate(c, angle)
	}
	return r
}

// ClosePolygon appends the first point to the end. The returned polygon's
// first and last points are identical.
func ClosePolygon(points []geom.Coord) []geom.Coord {
	if len(points) == 0 {
		return points
	}
	return append(points, points[0])
}

// IsClosed reports whether the polygon ends where it starts.
func IsClosed(polygon []geom.Coord) bool {
	return len(polygon) > 1 && polygon[0] == polygon[len(polygon)-1]
}

// Area returns the area enclosed by points, treating them as a polygon
// whether or not the last point repeats the first.
func Area(points []geom.Coord) float64 {
	area := 0.0
	n := len(points)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += points[i].X * points[j].Y
		area -= points[j].X * points[i].Y
	}
	return math.Abs(area) / 2
}

// Bounds returns the smallest rectangle containing every polygon, or the
// zero rectangle when there are no points.
func Bounds(polygons ...[]geom.Coord) geom.Rect {
	var r geom.Rect
	first := true
	for _, poly := range polygons {
		for _, c := range poly {
			if first {
				r = geom.Rect{Min: c, Max: c}
				first = false
				continue
			}
			r.ExpandToContainCoord(c)
		}
	}
	return r
}

// Bounds of everything the tiling surface draws.
func (rd RenderDescription) Bounds() geom.Rect {
	return Bounds(rd.TilingPieces...)
}

// PieceArea is the area of the closed, scaled base piece.
func (rd RenderDescription) PieceArea() float64 {
	return Area(rd.Piece)
}
