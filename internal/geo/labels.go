package geo

import "memorial-park-svc/internal/models"

// Label kinds
const (
	LabelPOI         = "poi"
	LabelStart       = "start"
	LabelDestination = "destination"
)

// Label is a floating text bubble pinned to a geographic point
type Label struct {
	Text          string `json:"text"`
	Kind          string `json:"kind"`
	Position      LatLng `json:"position"`
	Screen        Point  `json:"screen"`
	PointerEvents string `json:"pointer_events"`
}

// BuildLabels returns the point-of-interest markers plus the Start and Destination bubbles
func BuildLabels(pois []models.PointOfInterest, start, destination LatLng) []Label {
	labels := make([]Label, 0, len(pois)+2)
	for _, poi := range pois {
		labels = append(labels, Label{Text: poi.Name, Kind: LabelPOI, Position: FromModel(poi.Position)})
	}
	labels = append(labels,
		Label{Text: "Start", Kind: LabelStart, Position: start},
		Label{Text: "Destination", Kind: LabelDestination, Position: destination},
	)
	for i := range labels {
		labels[i].PointerEvents = "none"
	}
	return labels
}

// LayoutLabels positions labels on screen, dropping those that do not project
func LayoutLabels(labels []Label, project Projector) []Label {
	out := make([]Label, 0, len(labels))
	for _, l := range labels {
		pt, ok := project(l.Position)
		if !ok {
			continue
		}
		l.Screen = pt
		l.PointerEvents = "none"
		out = append(out, l)
	}
	return out
}
