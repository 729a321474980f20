package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/models"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// ReconcileJob is the reconciliation job as seen by the API
type ReconcileJob interface {
	History(limit int) ([]models.SchedulerLog, error)
	RunOnce() string
}

// SchedulerHandler handles reconciliation job HTTP requests
type SchedulerHandler struct {
	job    ReconcileJob
	logger *logger.Logger
}

// RunResponse is the outcome of a manual reconciliation
type RunResponse struct {
	Status string `json:"status" example:"SUCCESS"`
}

// NewSchedulerHandler creates a new scheduler handler
func NewSchedulerHandler(job ReconcileJob, logger *logger.Logger) *SchedulerHandler {
	return &SchedulerHandler{
		job:    job,
		logger: logger,
	}
}

// Logs handles GET /api/v1/scheduler/logs
// @Summary Reconciliation run history
// @Tags scheduler
// @Produce json
// @Param limit query int false "Rows to return" default(50)
// @Success 200 {object} utils.APIResponse{data=[]models.SchedulerLog} "Scheduler logs retrieved successfully"
// @Router /api/v1/scheduler/logs [get]
func (h *SchedulerHandler) Logs(c *gin.Context) {
	limit := 50
	if raw := c.Query("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v <= 0 {
			utils.BadRequestResponse(c, "Invalid limit", err)
			return
		}
		limit = min(v, 500)
	}

	logs, err := h.job.History(limit)
	if err != nil {
		h.logger.WithError(err).Error("Failed to get scheduler logs")
		utils.InternalServerErrorResponse(c, "Failed to get scheduler logs", err)
		return
	}
	utils.SuccessResponse(c, "Scheduler logs retrieved successfully", logs)
}

// Run handles POST /api/v1/scheduler/reconcile
// @Summary Run payment reconciliation now
// @Description Skipped when no payment view is open
// @Tags scheduler
// @Produce json
// @Success 200 {object} utils.APIResponse{data=RunResponse} "Reconciliation finished"
// @Router /api/v1/scheduler/reconcile [post]
func (h *SchedulerHandler) Run(c *gin.Context) {
	status := h.job.RunOnce()
	utils.SuccessResponse(c, "Reconciliation finished", RunResponse{Status: status})
}
