package models

// GeoPoint is a latitude/longitude pair as sent by the remote API
type GeoPoint struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// PixelBox is a lot's bounding box inside a sector image
type PixelBox struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SectorLot is a lot drawn on a sector image
type SectorLot struct {
	LotID   uint     `json:"lot_id"`
	LotType string   `json:"lot_type"`
	Box     PixelBox `json:"box"`
}

// SectorMap is a sector diagram with its geographic placement
type SectorMap struct {
	ID          uint        `json:"id"`
	Name        string      `json:"name"`
	Garden      string      `json:"garden"`
	ImageURL    string      `json:"image_url"`
	ImageWidth  float64     `json:"image_width"`
	ImageHeight float64     `json:"image_height"`
	TopLeft     GeoPoint    `json:"top_left"`
	BottomLeft  GeoPoint    `json:"bottom_left"`
	BottomRight GeoPoint    `json:"bottom_right"`
	TopRight    GeoPoint    `json:"top_right"`
	Lots        []SectorLot `json:"lots"`
}

// PointOfInterest is a named marker on the park map
type PointOfInterest struct {
	Name     string   `json:"name"`
	Position GeoPoint `json:"position"`
}
