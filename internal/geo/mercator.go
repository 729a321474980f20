package geo

import (
	"math"
	"sync"
)

// TileSize is the world width in pixels at zoom 0
const TileSize = 256

// MaxLatitude is the Web-Mercator latitude limit
const MaxLatitude = 85.05112878

// MaxZoom caps fitted zoom levels
const MaxZoom = 21

// Viewport is the visible map area: center, zoom and pixel size
type Viewport struct {
	Center LatLng  `json:"center"`
	Zoom   float64 `json:"zoom"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// ViewportSurface is an in-memory Web-Mercator Surface. It records the last
// frame painted on each layer.
type ViewportSurface struct {
	mu        sync.Mutex
	view      Viewport
	layers    map[string]*memLayer
	listeners map[int]func()
	nextID    int
}

// NewViewportSurface creates a surface showing the given viewport
func NewViewportSurface(v Viewport) *ViewportSurface {
	return &ViewportSurface{
		view:      v,
		layers:    make(map[string]*memLayer),
		listeners: make(map[int]func()),
	}
}

// Viewport returns the current view
func (s *ViewportSurface) Viewport() Viewport {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view
}

// AddOverlay implements Surface
func (s *ViewportSurface) AddOverlay(id string) Layer {
	s.mu.Lock()
	defer s.mu.Unlock()
	l := &memLayer{id: id, surface: s}
	s.layers[id] = l
	return l
}

// Frame returns the last frame painted on a layer
func (s *ViewportSurface) Frame(id string) (Frame, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.layers[id]
	if !ok || !l.painted {
		return Frame{}, false
	}
	return l.frame, true
}

// LayerCount returns the number of live layers
func (s *ViewportSurface) LayerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.layers)
}

// ListenerCount returns the number of registered bounds listeners
func (s *ViewportSurface) ListenerCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.listeners)
}

// OnBoundsChanged implements Surface
func (s *ViewportSurface) OnBoundsChanged(fn func()) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// ProjectToScreen implements Surface
func (s *ViewportSurface) ProjectToScreen(p LatLng) (Point, bool) {
	s.mu.Lock()
	v := s.view
	s.mu.Unlock()

	wp, ok := worldPixel(p, v.Zoom)
	if !ok {
		return Point{}, false
	}
	wc, ok := worldPixel(v.Center, v.Zoom)
	if !ok {
		return Point{}, false
	}
	return Point{
		X: wp.X - wc.X + v.Width/2,
		Y: wp.Y - wc.Y + v.Height/2,
	}, true
}

// SetView moves the map and notifies bounds listeners
func (s *ViewportSurface) SetView(center LatLng, zoom float64) {
	s.mu.Lock()
	s.view.Center = center
	s.view.Zoom = zoom
	s.mu.Unlock()
	s.notify()
}

// PanTo recenters the map at the current zoom
func (s *ViewportSurface) PanTo(center LatLng) {
	s.SetView(center, s.Viewport().Zoom)
}

// FitBounds centers the map on b at the largest zoom that shows all of it
func (s *ViewportSurface) FitBounds(b Bounds) {
	v := s.Viewport()
	s.SetView(b.Center(), FitZoom(b, v.Width, v.Height))
}

func (s *ViewportSurface) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// FitZoom returns the largest zoom at which b fits in a width×height view
func FitZoom(b Bounds, width, height float64) float64 {
	if width <= 0 || height <= 0 {
		return 0
	}
	sw, ok1 := worldPixel(b.SouthWest, 0)
	ne, ok2 := worldPixel(b.NorthEast, 0)
	if !ok1 || !ok2 {
		return 0
	}
	dx := math.Abs(ne.X - sw.X)
	dy := math.Abs(sw.Y - ne.Y)
	if dx == 0 && dy == 0 {
		return MaxZoom
	}

	zoom := float64(MaxZoom)
	if dx > 0 {
		zoom = math.Min(zoom, math.Log2(width/dx))
	}
	if dy > 0 {
		zoom = math.Min(zoom, math.Log2(height/dy))
	}
	return math.Max(0, math.Floor(zoom))
}

func worldPixel(p LatLng, zoom float64) (Point, bool) {
	if math.IsNaN(p.Lat) || math.IsNaN(p.Lng) || math.Abs(p.Lat) > MaxLatitude {
		return Point{}, false
	}
	scale := TileSize * math.Pow(2, zoom)
	sinLat := math.Sin(p.Lat * math.Pi / 180)
	return Point{
		X: scale * (p.Lng + 180) / 360,
		Y: scale * (0.5 - math.Log((1+sinLat)/(1-sinLat))/(4*math.Pi)),
	}, true
}

type memLayer struct {
	id      string
	surface *ViewportSurface
	frame   Frame
	painted bool
}

func (l *memLayer) Paint(f Frame) {
	l.surface.mu.Lock()
	defer l.surface.mu.Unlock()
	l.frame = f
	l.painted = true
}

func (l *memLayer) Remove() {
	l.surface.mu.Lock()
	defer l.surface.mu.Unlock()
	if cur, ok := l.surface.layers[l.id]; ok && cur == l {
		delete(l.surface.layers, l.id)
	}
}
