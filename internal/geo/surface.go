package geo

// Surface is the map a guide overlay is drawn on
type Surface interface {
	// AddOverlay creates a drawing layer identified by id
	AddOverlay(id string) Layer
	// ProjectToScreen maps a geographic point to surface pixels
	ProjectToScreen(LatLng) (Point, bool)
	// OnBoundsChanged registers fn to run after every pan or zoom
	OnBoundsChanged(fn func()) (cancel func())
}

// Layer is an overlay drawing layer owned by a Surface
type Layer interface {
	Paint(Frame)
	Remove()
}

// Frame is everything one redraw puts on a layer, in screen pixels
type Frame struct {
	ImageURL  string         `json:"image_url,omitempty"`
	Opacity   float64        `json:"opacity"`
	Triangles []WarpTriangle `json:"triangles"`
	Lots      []LotShape     `json:"lots"`
	Labels    []Label        `json:"labels"`
	Path      []Point        `json:"path"`
}
