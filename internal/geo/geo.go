// Package geo maps sector diagrams onto their geographic placement and
// builds the overlay frames the directional guide paints over the map.
package geo

import (
	"errors"
	"math"

	"memorial-park-svc/internal/models"
)

// LatLng is a geographic coordinate in degrees
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FromModel converts the remote API point shape
func FromModel(p models.GeoPoint) LatLng {
	return LatLng{Lat: p.Lat, Lng: p.Lng}
}

// Point is a screen or image pixel coordinate
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Corners is the quadrilateral a sector image is pinned to
type Corners struct {
	TL LatLng `json:"top_left"`
	BL LatLng `json:"bottom_left"`
	BR LatLng `json:"bottom_right"`
	TR LatLng `json:"top_right"`
}

// At interpolates bilinearly across the corners; s runs left to right, t top to bottom
func (c Corners) At(s, t float64) LatLng {
	w00 := (1 - s) * (1 - t)
	w10 := s * (1 - t)
	w01 := (1 - s) * t
	w11 := s * t
	return LatLng{
		Lat: c.TL.Lat*w00 + c.TR.Lat*w10 + c.BL.Lat*w01 + c.BR.Lat*w11,
		Lng: c.TL.Lng*w00 + c.TR.Lng*w10 + c.BL.Lng*w01 + c.BR.Lng*w11,
	}
}

// ErrInvalidImageSize is returned for a placement without natural image dimensions
var ErrInvalidImageSize = errors.New("image width and height must be positive")

// Placement pins an image of known pixel size to its corners
type Placement struct {
	Corners Corners
	Width   float64
	Height  float64
}

// NewPlacement validates the image size
func NewPlacement(c Corners, width, height float64) (Placement, error) {
	if !(width > 0) || !(height > 0) {
		return Placement{}, ErrInvalidImageSize
	}
	return Placement{Corners: c, Width: width, Height: height}, nil
}

// PlacementFromSector builds the placement of a sector diagram
func PlacementFromSector(m models.SectorMap) (Placement, error) {
	return NewPlacement(Corners{
		TL: FromModel(m.TopLeft),
		BL: FromModel(m.BottomLeft),
		BR: FromModel(m.BottomRight),
		TR: FromModel(m.TopRight),
	}, m.ImageWidth, m.ImageHeight)
}

// PixelToGeo maps an image pixel to its geographic position
func (p Placement) PixelToGeo(px, py float64) LatLng {
	return p.Corners.At(px/p.Width, py/p.Height)
}

// BoxPolygon returns the four geographic corners of a pixel box, clockwise from top-left
func (p Placement) BoxPolygon(b models.PixelBox) []LatLng {
	return []LatLng{
		p.PixelToGeo(b.X, b.Y),
		p.PixelToGeo(b.X+b.Width, b.Y),
		p.PixelToGeo(b.X+b.Width, b.Y+b.Height),
		p.PixelToGeo(b.X, b.Y+b.Height),
	}
}

// BoxCentroid returns the geographic center of a pixel box
func (p Placement) BoxCentroid(b models.PixelBox) LatLng {
	return p.PixelToGeo(b.X+b.Width/2, b.Y+b.Height/2)
}

// Bounds is a lat/lng rectangle
type Bounds struct {
	SouthWest LatLng `json:"south_west"`
	NorthEast LatLng `json:"north_east"`
}

// BoundsOf returns the smallest rectangle containing every point
func BoundsOf(points ...LatLng) (Bounds, bool) {
	if len(points) == 0 {
		return Bounds{}, false
	}
	b := Bounds{SouthWest: points[0], NorthEast: points[0]}
	for _, pt := range points[1:] {
		b.SouthWest.Lat = math.Min(b.SouthWest.Lat, pt.Lat)
		b.SouthWest.Lng = math.Min(b.SouthWest.Lng, pt.Lng)
		b.NorthEast.Lat = math.Max(b.NorthEast.Lat, pt.Lat)
		b.NorthEast.Lng = math.Max(b.NorthEast.Lng, pt.Lng)
	}
	return b, true
}

// Center returns the midpoint of the rectangle
func (b Bounds) Center() LatLng {
	return LatLng{
		Lat: (b.SouthWest.Lat + b.NorthEast.Lat) / 2,
		Lng: (b.SouthWest.Lng + b.NorthEast.Lng) / 2,
	}
}
