package geo

import (
	"sync"

	"memorial-park-svc/internal/models"
)

// Scene is the geographic content of a directional guide
type Scene struct {
	ImageURL      string
	Placement     Placement
	Lots          []models.SectorLot
	DestinationID uint
	Labels        []Label
	Path          []LatLng
	GridSize      int
	Opacity       float64
}

// Render projects the scene through a surface projection
func Render(s Scene, project Projector) (Frame, error) {
	n := s.GridSize
	if n == 0 {
		n = DefaultGridSize
	}
	triangles, err := WarpGrid(s.Placement, project, n)
	if err != nil {
		return Frame{}, err
	}

	frame := Frame{
		ImageURL:  s.ImageURL,
		Opacity:   s.Opacity,
		Triangles: triangles,
		Lots:      make([]LotShape, 0, len(s.Lots)),
		Labels:    LayoutLabels(s.Labels, project),
		Path:      make([]Point, 0, len(s.Path)),
	}

	for _, lot := range s.Lots {
		dest := lot.LotID == s.DestinationID
		shape := LotShape{
			LotID:       lot.LotID,
			Destination: dest,
			Polygon:     s.Placement.BoxPolygon(lot.Box),
			Style:       StyleFor(lot.LotType, dest),
		}
		shape.Screen = projectAll(shape.Polygon, project)
		frame.Lots = append(frame.Lots, shape)
	}

	frame.Path = projectAll(s.Path, project)
	return frame, nil
}

func projectAll(points []LatLng, project Projector) []Point {
	out := make([]Point, 0, len(points))
	for _, p := range points {
		if pt, ok := project(p); ok {
			out = append(out, pt)
		}
	}
	return out
}

// Overlay keeps a scene painted on a surface until it is detached
type Overlay struct {
	id    string
	scene Scene

	mu      sync.Mutex
	surface Surface
	layer   Layer
	cancel  func()
	err     error
}

// NewOverlay creates an overlay for a scene
func NewOverlay(id string, scene Scene) *Overlay {
	return &Overlay{id: id, scene: scene}
}

// ID returns the layer id the overlay registers under
func (o *Overlay) ID() string {
	return o.id
}

// Attach adds the layer, paints it and redraws on every bounds change.
// Attaching to a new surface detaches from the previous one first.
func (o *Overlay) Attach(s Surface) error {
	o.Detach()

	o.mu.Lock()
	o.surface = s
	o.layer = s.AddOverlay(o.id)
	o.mu.Unlock()

	cancel := s.OnBoundsChanged(o.Redraw)

	o.mu.Lock()
	o.cancel = cancel
	o.mu.Unlock()

	o.Redraw()
	return o.Err()
}

// Redraw repaints the layer with the current projection
func (o *Overlay) Redraw() {
	o.mu.Lock()
	s, layer := o.surface, o.layer
	o.mu.Unlock()
	if s == nil || layer == nil {
		return
	}

	frame, err := Render(o.scene, s.ProjectToScreen)

	o.mu.Lock()
	o.err = err
	o.mu.Unlock()
	if err != nil {
		return
	}
	layer.Paint(frame)
}

// Err returns the error of the last redraw
func (o *Overlay) Err() error {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.err
}

// Detach removes the layer and the bounds listener. Safe to call repeatedly.
func (o *Overlay) Detach() {
	o.mu.Lock()
	cancel, layer := o.cancel, o.layer
	o.cancel, o.layer, o.surface = nil, nil, nil
	o.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if layer != nil {
		layer.Remove()
	}
}
