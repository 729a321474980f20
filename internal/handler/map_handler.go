package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/geo"
	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// MapHandler handles directional guide HTTP requests
type MapHandler struct {
	mapService service.MapService
	logger     *logger.Logger
}

// NewMapHandler creates a new map handler
func NewMapHandler(mapService service.MapService, logger *logger.Logger) *MapHandler {
	return &MapHandler{
		mapService: mapService,
		logger:     logger,
	}
}

// AnimationEvent is one server-sent animation event
type AnimationEvent struct {
	Step  geo.Step  `json:"step"`
	Frame geo.Frame `json:"frame"`
}

// viewportQuery reads the console viewport. It returns nil when no center is given.
func viewportQuery(c *gin.Context) (*geo.Viewport, error) {
	if c.Query("lat") == "" && c.Query("lng") == "" {
		return nil, nil
	}

	fields := []string{"lat", "lng", "zoom", "width", "height"}
	values := make(map[string]float64, len(fields))
	for _, name := range fields {
		raw := c.Query(name)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.New("invalid " + name)
		}
		values[name] = v
	}

	view := &geo.Viewport{
		Center: geo.LatLng{Lat: values["lat"], Lng: values["lng"]},
		Zoom:   values["zoom"],
		Width:  values["width"],
		Height: values["height"],
	}
	if view.Width <= 0 {
		view.Width = service.DefaultViewportWidth
	}
	if view.Height <= 0 {
		view.Height = service.DefaultViewportHeight
	}
	return view, nil
}

// Guide handles GET /api/v1/map/guide/:lot_id
// @Summary Directional guide to a lot
// @Description Warped sector map, lot shapes, labels and path, projected for the given viewport. Without a viewport the guide is fitted to the path.
// @Tags map
// @Produce json
// @Param lot_id path int true "Lot ID"
// @Param lat query number false "Viewport center latitude"
// @Param lng query number false "Viewport center longitude"
// @Param zoom query number false "Viewport zoom"
// @Param width query number false "Viewport width in pixels"
// @Param height query number false "Viewport height in pixels"
// @Success 200 {object} utils.APIResponse{data=service.Guide} "Guide retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Lot or sector map not found"
// @Router /api/v1/map/guide/{lot_id} [get]
func (h *MapHandler) Guide(c *gin.Context) {
	lotID, err := utils.GetUintParam(c, "lot_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}
	view, err := viewportQuery(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid viewport", err)
		return
	}

	guide, err := h.mapService.Guide(c.Request.Context(), middleware.GetSession(c), lotID, view)
	if err != nil {
		respondError(c, h.logger, "Failed to build map guide", err)
		return
	}
	utils.SuccessResponse(c, "Guide retrieved successfully", guide)
}

// Animate handles GET /api/v1/map/guide/:lot_id/animate
// @Summary Animate the path to a lot
// @Description Server-sent events: one fit event, a pan event per waypoint, then done
// @Tags map
// @Produce text/event-stream
// @Param lot_id path int true "Lot ID"
// @Success 200 {object} AnimationEvent "Event stream"
// @Failure 404 {object} utils.APIResponse "Lot or sector map not found"
// @Router /api/v1/map/guide/{lot_id}/animate [get]
func (h *MapHandler) Animate(c *gin.Context) {
	lotID, err := utils.GetUintParam(c, "lot_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}

	started := false
	err = h.mapService.Animate(c.Request.Context(), middleware.GetSession(c), lotID, func(step geo.Step, frame geo.Frame) {
		if !started {
			c.Header("Cache-Control", "no-cache")
			c.Header("Connection", "keep-alive")
			started = true
		}
		c.SSEvent(step.Kind, AnimationEvent{Step: step, Frame: frame})
		c.Writer.Flush()
	})
	if err == nil {
		return
	}

	if !started {
		respondError(c, h.logger, "Failed to animate map guide", err)
		return
	}
	if c.Request.Context().Err() == nil {
		h.logger.WithError(err).WithField("lot_id", lotID).Warn("Map animation ended early")
		c.SSEvent("error", gin.H{"message": err.Error()})
		c.Writer.Flush()
	}
}
