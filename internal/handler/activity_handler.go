package handler

import (
	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
)

// ActivityHandler handles activity log HTTP requests
type ActivityHandler struct {
	activityService service.ActivityService
	prefs           service.PreferenceService
	logger          *logger.Logger
}

// NewActivityHandler creates a new activity log handler
func NewActivityHandler(activityService service.ActivityService, prefs service.PreferenceService, logger *logger.Logger) *ActivityHandler {
	return &ActivityHandler{
		activityService: activityService,
		prefs:           prefs,
		logger:          logger,
	}
}

// List handles GET /api/v1/activity-logs
// @Summary List activity logs
// @Description Newest first unless another sort is given. Each entry carries its display category and color.
// @Tags activity
// @Produce json
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort column" Enums(timestamp, action, type, user, category)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" Enums(5, 10, 25, 50, 100)
// @Success 200 {object} utils.PaginatedResponse{data=[]activity.Entry} "Activity logs retrieved successfully"
// @Failure 403 {object} utils.APIResponse "Not allowed"
// @Router /api/v1/activity-logs [get]
func (h *ActivityHandler) List(c *gin.Context) {
	res, err := h.activityService.List(c.Request.Context(), middleware.GetSession(c), listState(c, h.prefs, "activity"))
	if err != nil {
		respondError(c, h.logger, "Failed to list activity logs", err)
		return
	}
	respondPage(c, "Activity logs retrieved successfully", res)
}
