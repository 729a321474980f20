package geo

import (
	"errors"
	"math"
)

// ErrDegenerateTriangle is returned when the source points are collinear
var ErrDegenerateTriangle = errors.New("source triangle is degenerate")

// Affine is a 2D affine transform in canvas setTransform(a, b, c, d, e, f) order:
//
//	x' = a*x + c*y + e
//	y' = b*x + d*y + f
type Affine struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
	D float64 `json:"d"`
	E float64 `json:"e"`
	F float64 `json:"f"`
}

// Apply transforms a point
func (m Affine) Apply(p Point) Point {
	return Point{
		X: m.A*p.X + m.C*p.Y + m.E,
		Y: m.B*p.X + m.D*p.Y + m.F,
	}
}

const degenerateEpsilon = 1e-12

// SolveAffine finds the transform that maps each src point onto its dst point
func SolveAffine(src, dst [3]Point) (Affine, error) {
	x0, y0 := src[0].X, src[0].Y
	x1, y1 := src[1].X, src[1].Y
	x2, y2 := src[2].X, src[2].Y

	det := x0*(y1-y2) - y0*(x1-x2) + (x1*y2 - x2*y1)
	if math.Abs(det) < degenerateEpsilon || math.IsNaN(det) {
		return Affine{}, ErrDegenerateTriangle
	}

	// Cramer's rule on [x y 1] * [p q r]^T = rhs, once per output axis
	solve := func(r0, r1, r2 float64) (p, q, r float64) {
		p = (r0*(y1-y2) - y0*(r1-r2) + (r1*y2 - r2*y1)) / det
		q = (x0*(r1-r2) - r0*(x1-x2) + (x1*r2 - x2*r1)) / det
		r = (x0*(y1*r2-y2*r1) - y0*(x1*r2-x2*r1) + r0*(x1*y2-x2*y1)) / det
		return p, q, r
	}

	a, c, e := solve(dst[0].X, dst[1].X, dst[2].X)
	b, d, f := solve(dst[0].Y, dst[1].Y, dst[2].Y)
	return Affine{A: a, B: b, C: c, D: d, E: e, F: f}, nil
}
