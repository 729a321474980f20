package handler

import (
	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/listview"
	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// PreferenceHandler handles list preference HTTP requests
type PreferenceHandler struct {
	prefs  service.PreferenceService
	logger *logger.Logger
}

// PageSizeRequest sets the page size of one list page
type PageSizeRequest struct {
	PageSize int `json:"page_size" binding:"required" example:"25"`
}

// PageSizeResponse is the page size of one list page
type PageSizeResponse struct {
	Page     string `json:"page" example:"accounts"`
	PageSize int    `json:"page_size" example:"25"`
	Allowed  []int  `json:"allowed"`
}

// NewPreferenceHandler creates a new list preference handler
func NewPreferenceHandler(prefs service.PreferenceService, logger *logger.Logger) *PreferenceHandler {
	return &PreferenceHandler{
		prefs:  prefs,
		logger: logger,
	}
}

func knownListPage(page string) bool {
	for _, p := range service.ListPages {
		if p == page {
			return true
		}
	}
	return false
}

// GetPageSize handles GET /api/v1/preferences/page-size/:page
// @Summary Remembered page size
// @Tags preferences
// @Produce json
// @Param page path string true "List page" Enums(accounts, deceased, lots, activity, reports, payments)
// @Success 200 {object} utils.APIResponse{data=PageSizeResponse} "Page size retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Unknown list page"
// @Router /api/v1/preferences/page-size/{page} [get]
func (h *PreferenceHandler) GetPageSize(c *gin.Context) {
	page := c.Param("page")
	if !knownListPage(page) {
		utils.NotFoundResponse(c, "Unknown list page")
		return
	}

	utils.SuccessResponse(c, "Page size retrieved successfully", PageSizeResponse{
		Page:     page,
		PageSize: h.prefs.PageSize(middleware.GetSession(c).Actor, page),
		Allowed:  listview.AllowedPageSizes,
	})
}

// SetPageSize handles PUT /api/v1/preferences/page-size/:page
// @Summary Remember a page size
// @Tags preferences
// @Accept json
// @Produce json
// @Param page path string true "List page" Enums(accounts, deceased, lots, activity, reports, payments)
// @Param request body PageSizeRequest true "Page size"
// @Success 200 {object} utils.APIResponse{data=PageSizeResponse} "Page size saved successfully"
// @Failure 400 {object} utils.APIResponse "Page size not offered"
// @Router /api/v1/preferences/page-size/{page} [put]
func (h *PreferenceHandler) SetPageSize(c *gin.Context) {
	page := c.Param("page")
	if !knownListPage(page) {
		utils.NotFoundResponse(c, "Unknown list page")
		return
	}
	var req PageSizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	if err := h.prefs.SetPageSize(middleware.GetSession(c).Actor, page, req.PageSize); err != nil {
		respondError(c, h.logger, "Failed to save page size", err)
		return
	}
	utils.SuccessResponse(c, "Page size saved successfully", PageSizeResponse{
		Page:     page,
		PageSize: req.PageSize,
		Allowed:  listview.AllowedPageSizes,
	})
}
