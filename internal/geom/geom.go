// Package geom computes the flat triangle geometry for quilt unit
// primitives. Every function here is pure: given pixel dimensions and an
// orientation it returns a triangle set that tiles the w×h rectangle
// exactly, with each triangle tagged by the patch it belongs to.
package geom

import "math"

// Point is a 2D pixel coordinate.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Triangle is one colorable triangle, tagged with the patch ID that
// determines its color role.
type Triangle struct {
	Patch string   `json:"patch"`
	P     [3]Point `json:"points"`
}

// Area returns the unsigned area of the triangle.
func (t Triangle) Area() float64 {
	a, b, c := t.P[0], t.P[1], t.P[2]
	return math.Abs((b.X-a.X)*(c.Y-a.Y)-(c.X-a.X)*(b.Y-a.Y)) / 2
}

// Rect is an axis-aligned pixel rectangle.
type Rect struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	W float64 `json:"w"`
	H float64 `json:"h"`
}

// Inset returns the rectangle shrunk by d on all four sides.
func (r Rect) Inset(d float64) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

// Expand returns the rectangle grown by d on all four sides.
func (r Rect) Expand(d float64) Rect {
	return r.Inset(-d)
}

func tri(patch string, a, b, c Point) Triangle {
	return Triangle{Patch: patch, P: [3]Point{a, b, c}}
}
