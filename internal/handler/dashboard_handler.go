package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// DashboardHandler handles dashboard view registration HTTP requests
type DashboardHandler struct {
	dashboardService service.DashboardService
	logger           *logger.Logger
}

// RegisterViewRequest names the payment-consuming page that was opened
type RegisterViewRequest struct {
	Page string `json:"page" binding:"required" example:"payments"`
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService service.DashboardService, logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// RegisterView handles POST /api/v1/dashboard/views
// @Summary Register an open payment view
// @Description Payment reconciliation runs only while at least one view is registered. Views expire unless kept alive with heartbeats.
// @Tags dashboard
// @Accept json
// @Produce json
// @Param request body RegisterViewRequest true "Opened page"
// @Success 201 {object} utils.APIResponse{data=service.DashboardView} "View registered successfully"
// @Router /api/v1/dashboard/views [post]
func (h *DashboardHandler) RegisterView(c *gin.Context) {
	var req RegisterViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	view := h.dashboardService.RegisterView(middleware.GetSession(c).Actor, strings.TrimSpace(req.Page))
	utils.CreatedResponse(c, "View registered successfully", view)
}

// Heartbeat handles PUT /api/v1/dashboard/views/:id/heartbeat
// @Summary Keep a view registered
// @Tags dashboard
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} utils.APIResponse "View refreshed successfully"
// @Failure 404 {object} utils.APIResponse "View not found"
// @Router /api/v1/dashboard/views/{id}/heartbeat [put]
func (h *DashboardHandler) Heartbeat(c *gin.Context) {
	if !h.dashboardService.Heartbeat(c.Param("id")) {
		utils.NotFoundResponse(c, "View not found")
		return
	}
	utils.SuccessResponse(c, "View refreshed successfully", nil)
}

// UnregisterView handles DELETE /api/v1/dashboard/views/:id
// @Summary Unregister a closed view
// @Tags dashboard
// @Produce json
// @Param id path string true "View ID"
// @Success 200 {object} utils.APIResponse "View unregistered successfully"
// @Failure 404 {object} utils.APIResponse "View not found"
// @Router /api/v1/dashboard/views/{id} [delete]
func (h *DashboardHandler) UnregisterView(c *gin.Context) {
	if !h.dashboardService.UnregisterView(c.Param("id")) {
		utils.NotFoundResponse(c, "View not found")
		return
	}
	utils.SuccessResponse(c, "View unregistered successfully", nil)
}

// ActiveViews handles GET /api/v1/dashboard/views
// @Summary List open payment views
// @Tags dashboard
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]service.DashboardView} "Active views retrieved successfully"
// @Router /api/v1/dashboard/views [get]
func (h *DashboardHandler) ActiveViews(c *gin.Context) {
	utils.SuccessResponse(c, "Active views retrieved successfully", h.dashboardService.ActiveViews())
}
