package geo

import "strings"

// LotStyle is how a lot polygon is stroked and filled
type LotStyle struct {
	Color       string  `json:"color"`
	Opacity     float64 `json:"opacity"`
	StrokeWidth int     `json:"stroke_width"`
}

// DimmedColor is used for every lot except the destination
const DimmedColor = "#9E9E9E"

const defaultLotColor = "#2196F3"

var lotTypeColors = map[string]string{
	"lawn":          "#4CAF50",
	"garden":        "#8BC34A",
	"family_estate": "#3F51B5",
	"estate":        "#3F51B5",
	"mausoleum":     "#9C27B0",
	"columbarium":   "#FF9800",
	"niche":         "#FF9800",
}

// TypeColor returns the highlight color for a lot type
func TypeColor(lotType string) string {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(lotType)), " ", "_")
	if c, ok := lotTypeColors[key]; ok {
		return c
	}
	return defaultLotColor
}

// StyleFor dims every lot except the destination
func StyleFor(lotType string, destination bool) LotStyle {
	if destination {
		return LotStyle{Color: TypeColor(lotType), Opacity: 1, StrokeWidth: 3}
	}
	return LotStyle{Color: DimmedColor, Opacity: 0.35, StrokeWidth: 1}
}

// LotShape is a lot polygon ready to draw
type LotShape struct {
	LotID       uint     `json:"lot_id"`
	Destination bool     `json:"destination"`
	Polygon     []LatLng `json:"polygon"`
	Screen      []Point  `json:"screen"`
	Style       LotStyle `json:"style"`
}
