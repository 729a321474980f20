package geo

import (
	"errors"
)

// DefaultGridSize is the number of warp cells per image axis
const DefaultGridSize = 20

// ErrInvalidGridSize is returned for a non-positive grid size
var ErrInvalidGridSize = errors.New("grid size must be positive")

// Triangle is three points in drawing order
type Triangle [3]Point

// WarpTriangle is one image triangle and the transform that draws it on screen
type WarpTriangle struct {
	Source    Triangle `json:"source"`
	Dest      Triangle `json:"dest"`
	Transform Affine   `json:"transform"`
}

// Projector maps a geographic point to screen pixels; false means off-projection
type Projector func(LatLng) (Point, bool)

// WarpGrid subdivides the image into n×n cells, two triangles each, whose
// affine transforms approximate the bilinear placement on screen. Cells with a
// corner that cannot be projected, or that collapse on screen, are left out.
func WarpGrid(p Placement, project Projector, n int) ([]WarpTriangle, error) {
	if n <= 0 {
		return nil, ErrInvalidGridSize
	}

	cellW := p.Width / float64(n)
	cellH := p.Height / float64(n)

	src := make([][]Point, n+1)
	dst := make([][]Point, n+1)
	ok := make([][]bool, n+1)
	for j := 0; j <= n; j++ {
		src[j] = make([]Point, n+1)
		dst[j] = make([]Point, n+1)
		ok[j] = make([]bool, n+1)
		for i := 0; i <= n; i++ {
			px := float64(i) * cellW
			py := float64(j) * cellH
			src[j][i] = Point{X: px, Y: py}
			dst[j][i], ok[j][i] = project(p.PixelToGeo(px, py))
		}
	}

	out := make([]WarpTriangle, 0, n*n*2)
	for j := 0; j < n; j++ {
		for i := 0; i < n; i++ {
			if !ok[j][i] || !ok[j][i+1] || !ok[j+1][i] || !ok[j+1][i+1] {
				continue
			}
			// upper-left and lower-right halves of the cell
			halves := [2][3][2]int{
				{{i, j}, {i + 1, j}, {i, j + 1}},
				{{i + 1, j}, {i + 1, j + 1}, {i, j + 1}},
			}
			for _, h := range halves {
				var s, d Triangle
				for k, ij := range h {
					s[k] = src[ij[1]][ij[0]]
					d[k] = dst[ij[1]][ij[0]]
				}
				m, err := SolveAffine(s, d)
				if err != nil {
					continue
				}
				out = append(out, WarpTriangle{Source: s, Dest: d, Transform: m})
			}
		}
	}
	return out, nil
}
