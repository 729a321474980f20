package handler

import (
	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// DeceasedHandler handles deceased record HTTP requests
type DeceasedHandler struct {
	deceasedService service.DeceasedService
	prefs           service.PreferenceService
	logger          *logger.Logger
}

// NewDeceasedHandler creates a new deceased record handler
func NewDeceasedHandler(deceasedService service.DeceasedService, prefs service.PreferenceService, logger *logger.Logger) *DeceasedHandler {
	return &DeceasedHandler{
		deceasedService: deceasedService,
		prefs:           prefs,
		logger:          logger,
	}
}

// List handles GET /api/v1/deceased
// @Summary List deceased records
// @Tags deceased
// @Produce json
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort column" Enums(name, date_of_birth, date_of_death, burial_date, lot)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" Enums(5, 10, 25, 50, 100)
// @Success 200 {object} utils.PaginatedResponse{data=[]service.DeceasedView} "Deceased records retrieved successfully"
// @Router /api/v1/deceased [get]
func (h *DeceasedHandler) List(c *gin.Context) {
	res, err := h.deceasedService.List(c.Request.Context(), middleware.GetSession(c), listState(c, h.prefs, "deceased"))
	if err != nil {
		respondError(c, h.logger, "Failed to list deceased records", err)
		return
	}
	respondPage(c, "Deceased records retrieved successfully", res)
}

// Get handles GET /api/v1/deceased/:id
// @Summary Get a deceased record
// @Tags deceased
// @Produce json
// @Param id path int true "Record ID"
// @Success 200 {object} utils.APIResponse{data=service.DeceasedView} "Deceased record retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Record not found"
// @Router /api/v1/deceased/{id} [get]
func (h *DeceasedHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid record ID", err)
		return
	}

	rec, err := h.deceasedService.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get deceased record", err)
		return
	}
	utils.SuccessResponse(c, "Deceased record retrieved successfully", rec)
}

// Create handles POST /api/v1/deceased
// @Summary Create a deceased record
// @Tags deceased
// @Accept json
// @Produce json
// @Param request body models.DeceasedInput true "Record form"
// @Success 201 {object} utils.APIResponse{data=service.DeceasedView} "Deceased record created successfully"
// @Failure 422 {object} utils.APIResponse{data=FieldsData} "Fields to complete or correct"
// @Router /api/v1/deceased [post]
func (h *DeceasedHandler) Create(c *gin.Context) {
	var in models.DeceasedInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	rec, err := h.deceasedService.Create(c.Request.Context(), middleware.GetSession(c), in)
	if err != nil {
		respondError(c, h.logger, "Failed to create deceased record", err)
		return
	}
	utils.CreatedResponse(c, "Deceased record created successfully", rec)
}

// Update handles PUT /api/v1/deceased/:id
// @Summary Update a deceased record
// @Tags deceased
// @Accept json
// @Produce json
// @Param id path int true "Record ID"
// @Param request body models.DeceasedInput true "Record form"
// @Success 200 {object} utils.APIResponse{data=service.DeceasedView} "Deceased record updated successfully"
// @Failure 422 {object} utils.APIResponse{data=FieldsData} "Fields to complete or correct"
// @Router /api/v1/deceased/{id} [put]
func (h *DeceasedHandler) Update(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid record ID", err)
		return
	}
	var in models.DeceasedInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	rec, err := h.deceasedService.Update(c.Request.Context(), middleware.GetSession(c), id, in)
	if err != nil {
		respondError(c, h.logger, "Failed to update deceased record", err)
		return
	}
	utils.SuccessResponse(c, "Deceased record updated successfully", rec)
}

// Delete handles DELETE /api/v1/deceased/:id
// @Summary Delete a deceased record
// @Description The confirm value must repeat the full name of the deceased
// @Tags deceased
// @Produce json
// @Param id path int true "Record ID"
// @Param confirm query string true "Full name typed to confirm"
// @Success 200 {object} utils.APIResponse "Deceased record deleted successfully"
// @Failure 400 {object} utils.APIResponse "Confirmation does not match"
// @Router /api/v1/deceased/{id} [delete]
func (h *DeceasedHandler) Delete(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid record ID", err)
		return
	}

	if err := h.deceasedService.Delete(c.Request.Context(), middleware.GetSession(c), id, c.Query("confirm")); err != nil {
		respondError(c, h.logger, "Failed to delete deceased record", err)
		return
	}
	utils.SuccessResponse(c, "Deceased record deleted successfully", nil)
}
