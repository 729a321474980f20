package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// maxImportSize caps uploaded workbooks
const maxImportSize = 10 << 20

// ImportHandler handles bulk import HTTP requests
type ImportHandler struct {
	importService service.ImportService
	logger        *logger.Logger
}

// NewImportHandler creates a new import handler
func NewImportHandler(importService service.ImportService, logger *logger.Logger) *ImportHandler {
	return &ImportHandler{
		importService: importService,
		logger:        logger,
	}
}

// Import handles POST /api/v1/imports/:kind
// @Summary Bulk import from Excel
// @Description Upload an .xlsx or .xls workbook. Partial failures still answer 200 with a summary.
// @Tags imports
// @Accept multipart/form-data
// @Produce json
// @Param kind path string true "Import kind" Enums(accounts, deceased)
// @Param file formData file true "Workbook"
// @Success 200 {object} utils.APIResponse{data=importer.Summary} "Import finished"
// @Failure 400 {object} utils.APIResponse "Unsupported or empty workbook"
// @Failure 403 {object} utils.APIResponse "Not allowed"
// @Router /api/v1/imports/{kind} [post]
func (h *ImportHandler) Import(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, "Please choose a file to import", err)
		return
	}
	if header.Size > maxImportSize {
		utils.BadRequestResponse(c, "File is too large to import", nil)
		return
	}

	f, err := header.Open()
	if err != nil {
		utils.BadRequestResponse(c, "Uploaded file could not be read", err)
		return
	}
	defer f.Close()

	content, err := io.ReadAll(f)
	if err != nil {
		utils.BadRequestResponse(c, "Uploaded file could not be read", err)
		return
	}

	summary, err := h.importService.Import(c.Request.Context(), middleware.GetSession(c), c.Param("kind"), header.Filename, content)
	if err != nil {
		respondError(c, h.logger, "Failed to import records", err)
		return
	}
	utils.SuccessResponse(c, summary.SuccessMessage, summary)
}
