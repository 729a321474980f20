package geo

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memorial-park-svc/internal/models"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

// flat maps lat to y and lng to x so geometry can be checked by hand
func flat(p LatLng) (Point, bool) {
	return Point{X: p.Lng, Y: p.Lat}, true
}

func TestCorners_AtImageCenter(t *testing.T) {
	c := Corners{
		TL: LatLng{0, 0},
		TR: LatLng{0, 10},
		BL: LatLng{10, 0},
		BR: LatLng{10, 10},
	}
	p, err := NewPlacement(c, 400, 200)
	require.NoError(t, err)

	got := p.PixelToGeo(200, 100)
	if diff := cmp.Diff(LatLng{5, 5}, got, approx); diff != "" {
		t.Errorf("center mismatch (-want +got):\n%s", diff)
	}
}

func TestCorners_AtCornersAndSkewedQuad(t *testing.T) {
	c := Corners{
		TL: LatLng{14.70, 121.00},
		TR: LatLng{14.71, 121.02},
		BL: LatLng{14.68, 121.01},
		BR: LatLng{14.69, 121.04},
	}

	assert.Empty(t, cmp.Diff(c.TL, c.At(0, 0), approx))
	assert.Empty(t, cmp.Diff(c.TR, c.At(1, 0), approx))
	assert.Empty(t, cmp.Diff(c.BL, c.At(0, 1), approx))
	assert.Empty(t, cmp.Diff(c.BR, c.At(1, 1), approx))

	mid := c.At(0.5, 0.5)
	assert.InDelta(t, (14.70+14.71+14.68+14.69)/4, mid.Lat, 1e-12)
	assert.InDelta(t, (121.00+121.02+121.01+121.04)/4, mid.Lng, 1e-12)
}

func TestNewPlacement_RejectsEmptyImage(t *testing.T) {
	_, err := NewPlacement(Corners{}, 0, 100)
	assert.ErrorIs(t, err, ErrInvalidImageSize)

	_, err = PlacementFromSector(models.SectorMap{ImageWidth: 100})
	assert.ErrorIs(t, err, ErrInvalidImageSize)
}

func TestSolveAffine(t *testing.T) {
	src := [3]Point{{0, 0}, {10, 0}, {0, 10}}
	dst := [3]Point{{5, 5}, {25, 8}, {2, 30}}

	m, err := SolveAffine(src, dst)
	require.NoError(t, err)
	for i := range src {
		assert.Empty(t, cmp.Diff(dst[i], m.Apply(src[i]), approx), "vertex %d", i)
	}

	// interior points follow the same transform
	want := Point{X: 5 + 2*1 + (-0.3)*1, Y: 5 + 0.3*1 + 2.5*1}
	assert.Empty(t, cmp.Diff(want, m.Apply(Point{1, 1}), approx))
}

func TestSolveAffine_Degenerate(t *testing.T) {
	_, err := SolveAffine([3]Point{{0, 0}, {1, 1}, {2, 2}}, [3]Point{{0, 0}, {1, 0}, {0, 1}})
	assert.ErrorIs(t, err, ErrDegenerateTriangle)
}

func TestWarpGrid(t *testing.T) {
	p, err := NewPlacement(Corners{
		TL: LatLng{0, 0}, TR: LatLng{0, 100},
		BL: LatLng{50, 0}, BR: LatLng{50, 100},
	}, 200, 100)
	require.NoError(t, err)

	tris, err := WarpGrid(p, flat, DefaultGridSize)
	require.NoError(t, err)
	assert.Len(t, tris, DefaultGridSize*DefaultGridSize*2)

	for _, tri := range tris {
		for k := range tri.Source {
			got := tri.Transform.Apply(tri.Source[k])
			assert.Empty(t, cmp.Diff(tri.Dest[k], got, cmpopts.EquateApprox(0, 1e-6)))
		}
	}

	first := tris[0]
	assert.Empty(t, cmp.Diff(Triangle{{0, 0}, {10, 0}, {0, 5}}, first.Source, approx))
	assert.Empty(t, cmp.Diff(Triangle{{0, 0}, {5, 0}, {0, 2.5}}, first.Dest, approx))
}

func TestWarpGrid_SkipsUnprojectableCells(t *testing.T) {
	p, _ := NewPlacement(Corners{
		TL: LatLng{0, 0}, TR: LatLng{0, 10},
		BL: LatLng{10, 0}, BR: LatLng{10, 10},
	}, 10, 10)

	// the top-left grid vertex fails, so only the first cell drops out
	project := func(l LatLng) (Point, bool) {
		if l.Lat == 0 && l.Lng == 0 {
			return Point{}, false
		}
		return flat(l)
	}
	tris, err := WarpGrid(p, project, 2)
	require.NoError(t, err)
	assert.Len(t, tris, 6)

	_, err = WarpGrid(p, flat, 0)
	assert.ErrorIs(t, err, ErrInvalidGridSize)
}

func TestBoxPolygonAndCentroid(t *testing.T) {
	p, _ := NewPlacement(Corners{
		TL: LatLng{0, 0}, TR: LatLng{0, 10},
		BL: LatLng{10, 0}, BR: LatLng{10, 10},
	}, 100, 100)
	box := models.PixelBox{X: 20, Y: 40, Width: 10, Height: 20}

	want := []LatLng{{4, 2}, {4, 3}, {6, 3}, {6, 2}}
	assert.Empty(t, cmp.Diff(want, p.BoxPolygon(box), approx))
	assert.Empty(t, cmp.Diff(LatLng{5, 2.5}, p.BoxCentroid(box), approx))
}

func TestBoundsOf(t *testing.T) {
	_, ok := BoundsOf()
	assert.False(t, ok)

	b, ok := BoundsOf(LatLng{1, 5}, LatLng{-2, 7}, LatLng{3, 6})
	require.True(t, ok)
	assert.Equal(t, LatLng{-2, 5}, b.SouthWest)
	assert.Equal(t, LatLng{3, 7}, b.NorthEast)
	assert.Empty(t, cmp.Diff(LatLng{0.5, 6}, b.Center(), approx))
}
