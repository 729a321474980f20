package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// xlsxContentType is the MIME type of exported workbooks
const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ReportHandler handles report HTTP requests
type ReportHandler struct {
	reportService service.ReportService
	logger        *logger.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportService, logger *logger.Logger) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		logger:        logger,
	}
}

func bindReportFilter(c *gin.Context) (models.ReportFilter, bool) {
	var filter models.ReportFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		utils.BadRequestResponse(c, "Invalid report filter", err)
		return filter, false
	}
	return filter, true
}

// Summary handles GET /api/v1/reports/summary
// @Summary Totals of every report
// @Tags reports
// @Produce json
// @Param from query string false "From date" example(2025-01-01)
// @Param to query string false "To date" example(2025-12-31)
// @Param garden query string false "Garden"
// @Param section query string false "Section"
// @Param granularity query string false "Granularity" Enums(daily, monthly, yearly)
// @Success 200 {object} utils.APIResponse{data=[]service.ReportSummary} "Report summary retrieved successfully"
// @Router /api/v1/reports/summary [get]
func (h *ReportHandler) Summary(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	summary, err := h.reportService.Summary(c.Request.Context(), middleware.GetSession(c), filter)
	if err != nil {
		respondError(c, h.logger, "Failed to build report summary", err)
		return
	}
	utils.SuccessResponse(c, "Report summary retrieved successfully", summary)
}

// Dataset handles GET /api/v1/reports/:kind
// @Summary Report dataset
// @Tags reports
// @Produce json
// @Param kind path string true "Report kind" Enums(revenue, payments, inventory, interments, outstanding)
// @Param from query string false "From date" example(2025-01-01)
// @Param to query string false "To date" example(2025-12-31)
// @Param garden query string false "Garden"
// @Param section query string false "Section"
// @Param granularity query string false "Granularity" Enums(daily, monthly, yearly)
// @Success 200 {object} utils.APIResponse{data=models.ReportDataset} "Report retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Unknown report kind"
// @Router /api/v1/reports/{kind} [get]
func (h *ReportHandler) Dataset(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	ds, err := h.reportService.Dataset(c.Request.Context(), middleware.GetSession(c), c.Param("kind"), filter)
	if err != nil {
		respondError(c, h.logger, "Failed to get report", err)
		return
	}
	utils.SuccessResponse(c, "Report retrieved successfully", ds)
}

// Export handles GET /api/v1/reports/:kind/export
// @Summary Export a report to Excel
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param kind path string true "Report kind" Enums(revenue, payments, inventory, interments, outstanding)
// @Param from query string false "From date" example(2025-01-01)
// @Param to query string false "To date" example(2025-12-31)
// @Param garden query string false "Garden"
// @Param section query string false "Section"
// @Param granularity query string false "Granularity" Enums(daily, monthly, yearly)
// @Success 200 {file} file "Excel workbook"
// @Failure 400 {object} utils.APIResponse "Unknown report kind"
// @Router /api/v1/reports/{kind}/export [get]
func (h *ReportHandler) Export(c *gin.Context) {
	filter, ok := bindReportFilter(c)
	if !ok {
		return
	}

	file, err := h.reportService.Export(c.Request.Context(), middleware.GetSession(c), c.Param("kind"), filter)
	if err != nil {
		respondError(c, h.logger, "Failed to export report", err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	c.Data(http.StatusOK, xlsxContentType, file.Content)
}
