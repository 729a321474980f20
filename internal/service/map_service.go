package service

import (
	"context"
	"fmt"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/config"
	"memorial-park-svc/internal/geo"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/session"
	"memorial-park-svc/pkg/logger"
)

// Default viewport used when the console does not send its own
const (
	DefaultViewportWidth  = 1024
	DefaultViewportHeight = 768
)

// Guide is a directional guide to one lot, rendered for a viewport
type Guide struct {
	LotID      uint         `json:"lot_id"`
	LotLabel   string       `json:"lot_label"`
	SectorID   uint         `json:"sector_id"`
	SectorName string       `json:"sector_name"`
	Corners    geo.Corners  `json:"corners"`
	Path       []geo.LatLng `json:"path"`
	Bounds     geo.Bounds   `json:"bounds"`
	Viewport   geo.Viewport `json:"viewport"`
	Frame      geo.Frame    `json:"frame"`
	Routed     bool         `json:"routed"`
}

// MapService builds directional guides over the park map
type MapService interface {
	Guide(ctx context.Context, sess session.Session, lotID uint, view *geo.Viewport) (*Guide, error)
	Animate(ctx context.Context, sess session.Session, lotID uint, emit func(geo.Step, geo.Frame)) error
}

type mapService struct {
	client *apiclient.Client
	cfg    config.MapConfig
	logger *logger.Logger
}

// NewMapService creates a new map guide service
func NewMapService(client *apiclient.Client, cfg config.MapConfig, logger *logger.Logger) MapService {
	return &mapService{
		client: client,
		cfg:    cfg,
		logger: logger,
	}
}

type guideScene struct {
	lot    *models.Lot
	sector *models.SectorMap
	scene  geo.Scene
	routed bool
}

func (s *mapService) load(ctx context.Context, sess session.Session, lotID uint) (*guideScene, error) {
	lot, err := s.client.GetLot(ctx, sess, lotID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if lot.SectorID == 0 {
		return nil, ErrNoSectorMap
	}

	sector, err := s.client.GetSectorMap(ctx, sess, lot.SectorID)
	if err != nil {
		if apiclient.IsNotFound(err) {
			return nil, ErrNoSectorMap
		}
		return nil, err
	}
	placement, err := geo.PlacementFromSector(*sector)
	if err != nil {
		return nil, fmt.Errorf("sector %d: %w", sector.ID, err)
	}

	var dest *models.SectorLot
	for i := range sector.Lots {
		if sector.Lots[i].LotID == lotID {
			dest = &sector.Lots[i]
			break
		}
	}
	if dest == nil {
		return nil, ErrNoSectorMap
	}
	target := placement.BoxCentroid(dest.Box)

	pois, err := s.client.ListPointsOfInterest(ctx, sess)
	if err != nil {
		s.logger.WithError(err).Warn("Failed to load points of interest, continuing without them")
		pois = nil
	}

	path, routed, err := s.route(ctx, sess, lotID, target)
	if err != nil {
		return nil, err
	}

	return &guideScene{
		lot:    lot,
		sector: sector,
		routed: routed,
		scene: geo.Scene{
			ImageURL:      sector.ImageURL,
			Placement:     placement,
			Lots:          sector.Lots,
			DestinationID: lotID,
			Labels:        geo.BuildLabels(pois, path[0], target),
			Path:          path,
			GridSize:      s.cfg.GridSize,
			Opacity:       s.cfg.OverlayOpacity,
		},
	}, nil
}

// route returns the remote walking route, or a straight line from the
// configured origin when the remote has none
func (s *mapService) route(ctx context.Context, sess session.Session, lotID uint, target geo.LatLng) ([]geo.LatLng, bool, error) {
	points, err := s.client.GetRoute(ctx, sess, lotID)
	if err != nil && !apiclient.IsNotFound(err) {
		return nil, false, err
	}
	if len(points) > 0 {
		path := make([]geo.LatLng, 0, len(points))
		for _, p := range points {
			path = append(path, geo.FromModel(p))
		}
		return path, true, nil
	}

	origin := geo.LatLng{Lat: s.cfg.OriginLat, Lng: s.cfg.OriginLng}
	return []geo.LatLng{origin, target}, false, nil
}

func (s *mapService) viewportFor(gs *guideScene, view *geo.Viewport) (geo.Viewport, geo.Bounds) {
	points := append([]geo.LatLng{}, gs.scene.Path...)
	c := gs.scene.Placement.Corners
	points = append(points, c.TL, c.BL, c.BR, c.TR)
	bounds, _ := geo.BoundsOf(points...)

	if view != nil && view.Width > 0 && view.Height > 0 {
		return *view, bounds
	}
	v := geo.Viewport{Width: DefaultViewportWidth, Height: DefaultViewportHeight}
	v.Center = bounds.Center()
	v.Zoom = geo.FitZoom(bounds, v.Width, v.Height)
	return v, bounds
}

// Guide renders the overlay frame for the requested viewport, or for a
// viewport fitted to the sector and path when none is given
func (s *mapService) Guide(ctx context.Context, sess session.Session, lotID uint, view *geo.Viewport) (*Guide, error) {
	gs, err := s.load(ctx, sess, lotID)
	if err != nil {
		s.logger.WithError(err).WithField("lot_id", lotID).Error("Failed to build directional guide")
		return nil, err
	}

	viewport, bounds := s.viewportFor(gs, view)
	surface := geo.NewViewportSurface(viewport)

	overlay := geo.NewOverlay(fmt.Sprintf("guide-%d", lotID), gs.scene)
	if err := overlay.Attach(surface); err != nil {
		overlay.Detach()
		return nil, err
	}
	frame, _ := surface.Frame(overlay.ID())
	overlay.Detach()

	return &Guide{
		LotID:      lotID,
		LotLabel:   gs.lot.Label(),
		SectorID:   gs.sector.ID,
		SectorName: gs.sector.Name,
		Corners:    gs.scene.Placement.Corners,
		Path:       gs.scene.Path,
		Bounds:     bounds,
		Viewport:   viewport,
		Frame:      frame,
		Routed:     gs.routed,
	}, nil
}

// Animate plays the path on a server-side surface and emits every step with
// the frame repainted for it
func (s *mapService) Animate(ctx context.Context, sess session.Session, lotID uint, emit func(geo.Step, geo.Frame)) error {
	gs, err := s.load(ctx, sess, lotID)
	if err != nil {
		return err
	}

	viewport, _ := s.viewportFor(gs, nil)
	surface := geo.NewViewportSurface(viewport)
	overlay := geo.NewOverlay(fmt.Sprintf("guide-%d", lotID), gs.scene)
	if err := overlay.Attach(surface); err != nil {
		overlay.Detach()
		return err
	}
	defer overlay.Detach()

	animator := geo.Animator{Interval: s.cfg.AnimationStep}
	return animator.Play(ctx, surface, gs.scene.Path, func(step geo.Step) {
		frame, _ := surface.Frame(overlay.ID())
		emit(step, frame)
	})
}
