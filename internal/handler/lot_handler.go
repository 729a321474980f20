package handler

import (
	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// LotHandler handles lot inventory, vault and ownership HTTP requests
type LotHandler struct {
	lotService service.LotService
	prefs      service.PreferenceService
	logger     *logger.Logger
}

// NewLotHandler creates a new lot handler
func NewLotHandler(lotService service.LotService, prefs service.PreferenceService, logger *logger.Logger) *LotHandler {
	return &LotHandler{
		lotService: lotService,
		prefs:      prefs,
		logger:     logger,
	}
}

// VaultRequest selects a vault configuration
type VaultRequest struct {
	VaultConfig models.VaultConfig `json:"vault_config" binding:"required" example:"double"`
}

// Search handles GET /api/v1/lots
// @Summary Search lots
// @Tags lots
// @Produce json
// @Param garden query string false "Garden"
// @Param sector query string false "Sector"
// @Param block query string false "Block"
// @Param status query string false "Status"
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort column" Enums(garden, sector, block, lot, type, status, price)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" Enums(5, 10, 25, 50, 100)
// @Success 200 {object} utils.PaginatedResponse{data=[]service.LotRow} "Lots retrieved successfully"
// @Router /api/v1/lots [get]
func (h *LotHandler) Search(c *gin.Context) {
	var filter models.LotFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid lot filter", err)
		return
	}

	res, err := h.lotService.Search(c.Request.Context(), middleware.GetSession(c), filter, listState(c, h.prefs, "lots"))
	if err != nil {
		respondError(c, h.logger, "Failed to search lots", err)
		return
	}
	respondPage(c, "Lots retrieved successfully", res)
}

// Get handles GET /api/v1/lots/:id
// @Summary Get a lot
// @Tags lots
// @Produce json
// @Param id path int true "Lot ID"
// @Success 200 {object} utils.APIResponse{data=service.LotRow} "Lot retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Lot not found"
// @Router /api/v1/lots/{id} [get]
func (h *LotHandler) Get(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}

	lot, err := h.lotService.Get(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get lot", err)
		return
	}
	utils.SuccessResponse(c, "Lot retrieved successfully", lot)
}

// VaultOptions handles GET /api/v1/lots/vault-options
// @Summary Vault configurations
// @Tags lots
// @Produce json
// @Success 200 {object} utils.APIResponse{data=[]service.VaultOption} "Vault options retrieved successfully"
// @Router /api/v1/lots/vault-options [get]
func (h *LotHandler) VaultOptions(c *gin.Context) {
	utils.SuccessResponse(c, "Vault options retrieved successfully", service.VaultOptions())
}

// UpdateVault handles PUT /api/v1/lots/:id/vault
// @Summary Change a lot's vault configuration
// @Description Locked once the lot has an interment
// @Tags lots
// @Accept json
// @Produce json
// @Param id path int true "Lot ID"
// @Param request body VaultRequest true "Vault configuration"
// @Success 200 {object} utils.APIResponse{data=service.LotRow} "Vault configuration updated successfully"
// @Failure 400 {object} utils.APIResponse "Unknown vault configuration"
// @Failure 409 {object} utils.APIResponse "Vault configuration is locked"
// @Router /api/v1/lots/{id}/vault [put]
func (h *LotHandler) UpdateVault(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}
	var req VaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	lot, err := h.lotService.UpdateVault(c.Request.Context(), middleware.GetSession(c), id, req.VaultConfig)
	if err != nil {
		respondError(c, h.logger, "Failed to update vault configuration", err)
		return
	}
	utils.SuccessResponse(c, "Vault configuration updated successfully", lot)
}

// Ownerships handles GET /api/v1/ownerships
// @Summary List lot ownerships
// @Tags lots
// @Produce json
// @Param customer_id query int false "Only this customer's lots (staff only)"
// @Success 200 {object} utils.APIResponse{data=[]models.Ownership} "Ownerships retrieved successfully"
// @Router /api/v1/ownerships [get]
func (h *LotHandler) Ownerships(c *gin.Context) {
	customerID, err := utils.GetOptionalUintQuery(c, "customer_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID", err)
		return
	}

	owned, err := h.lotService.Ownerships(c.Request.Context(), middleware.GetSession(c), customerID)
	if err != nil {
		respondError(c, h.logger, "Failed to list ownerships", err)
		return
	}
	utils.SuccessResponse(c, "Ownerships retrieved successfully", owned)
}
