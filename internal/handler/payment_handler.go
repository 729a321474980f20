package handler

import (
	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// PaymentHandler handles payment schedule, checkout and office payment HTTP requests
type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *logger.Logger
}

// CheckoutRequest opens a hosted checkout for one month of a lot
type CheckoutRequest struct {
	LotID     uint   `json:"lot_id" binding:"required" example:"301"`
	YearMonth string `json:"year_month" example:"2025-03"`
}

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(paymentService service.PaymentService, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

// Schedule handles GET /api/v1/payments/lots/:lot_id/schedule
// @Summary Monthly payment schedule of a lot
// @Description Every month with its label, and the single next due month selected for payment
// @Tags payments
// @Produce json
// @Param lot_id path int true "Lot ID"
// @Success 200 {object} utils.APIResponse{data=service.LotSchedule} "Payment schedule retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Lot not found"
// @Router /api/v1/payments/lots/{lot_id}/schedule [get]
func (h *PaymentHandler) Schedule(c *gin.Context) {
	lotID, err := utils.GetUintParam(c, "lot_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}

	sched, err := h.paymentService.Schedule(c.Request.Context(), middleware.GetSession(c), lotID)
	if err != nil {
		respondError(c, h.logger, "Failed to get payment schedule", err)
		return
	}
	utils.SuccessResponse(c, "Payment schedule retrieved successfully", sched)
}

// PayableLots handles GET /api/v1/payments/payable-lots
// @Summary Lots with a month left to pay
// @Tags payments
// @Produce json
// @Param customer_id query int false "Only this customer's lots (staff only)"
// @Success 200 {object} utils.APIResponse{data=[]schedule.Selection} "Payable lots retrieved successfully"
// @Router /api/v1/payments/payable-lots [get]
func (h *PaymentHandler) PayableLots(c *gin.Context) {
	customerID, err := utils.GetOptionalUintQuery(c, "customer_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid customer ID", err)
		return
	}

	lots, err := h.paymentService.PayableLots(c.Request.Context(), middleware.GetSession(c), customerID)
	if err != nil {
		respondError(c, h.logger, "Failed to get payable lots", err)
		return
	}
	utils.SuccessResponse(c, "Payable lots retrieved successfully", lots)
}

// Plans handles GET /api/v1/payments/plans
// @Summary Payment plans
// @Tags payments
// @Produce json
// @Param lot_id query int false "Only this lot's plan"
// @Success 200 {object} utils.APIResponse{data=[]models.PaymentPlan} "Payment plans retrieved successfully"
// @Router /api/v1/payments/plans [get]
func (h *PaymentHandler) Plans(c *gin.Context) {
	lotID, err := utils.GetOptionalUintQuery(c, "lot_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}

	plans, err := h.paymentService.Plans(c.Request.Context(), middleware.GetSession(c), lotID)
	if err != nil {
		respondError(c, h.logger, "Failed to get payment plans", err)
		return
	}
	utils.SuccessResponse(c, "Payment plans retrieved successfully", plans)
}

// History handles GET /api/v1/payments/history
// @Summary Payment history
// @Tags payments
// @Produce json
// @Param lot_id query int false "Only this lot's payments"
// @Success 200 {object} utils.APIResponse{data=[]models.PaymentRecord} "Payment history retrieved successfully"
// @Router /api/v1/payments/history [get]
func (h *PaymentHandler) History(c *gin.Context) {
	lotID, err := utils.GetOptionalUintQuery(c, "lot_id")
	if err != nil {
		utils.BadRequestResponse(c, "Invalid lot ID", err)
		return
	}

	records, err := h.paymentService.History(c.Request.Context(), middleware.GetSession(c), lotID)
	if err != nil {
		respondError(c, h.logger, "Failed to get payment history", err)
		return
	}
	utils.SuccessResponse(c, "Payment history retrieved successfully", records)
}

// StartCheckout handles POST /api/v1/payments/checkout
// @Summary Open a hosted checkout
// @Description Only the next due month can be paid online. Overdue months are paid at the office with a 3% penalty.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body CheckoutRequest true "Lot and month"
// @Success 201 {object} utils.APIResponse{data=service.CheckoutStart} "Checkout created successfully"
// @Failure 409 {object} utils.APIResponse "Month cannot be paid online"
// @Router /api/v1/payments/checkout [post]
func (h *PaymentHandler) StartCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	start, err := h.paymentService.StartCheckout(c.Request.Context(), middleware.GetSession(c), req.LotID, req.YearMonth)
	if err != nil {
		respondError(c, h.logger, "Failed to create checkout", err)
		return
	}
	utils.CreatedResponse(c, "Checkout created successfully", start)
}

// CheckoutStatus handles GET /api/v1/payments/checkout/:session_id
// @Summary Checkout outcome
// @Description pending while the monitor polls, then completed, failed or timed_out
// @Tags payments
// @Produce json
// @Param session_id path string true "Checkout session ID"
// @Success 200 {object} utils.APIResponse{data=service.CheckoutOutcome} "Checkout status retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Checkout not found"
// @Router /api/v1/payments/checkout/{session_id} [get]
func (h *PaymentHandler) CheckoutStatus(c *gin.Context) {
	out, err := h.paymentService.CheckoutStatus(c.Request.Context(), c.Param("session_id"))
	if err != nil {
		respondError(c, h.logger, "Failed to get checkout status", err)
		return
	}
	utils.SuccessResponse(c, "Checkout status retrieved successfully", out)
}

// RecordOfficePayment handles POST /api/v1/payments/office
// @Summary Record an office payment
// @Description Cash or check payment taken by staff for the next due month
// @Tags payments
// @Accept json
// @Produce json
// @Param request body models.OfficePayment true "Office payment"
// @Success 201 {object} utils.APIResponse{data=models.PaymentRecord} "Office payment recorded successfully"
// @Failure 403 {object} utils.APIResponse "Not allowed"
// @Failure 409 {object} utils.APIResponse "Month cannot be paid"
// @Router /api/v1/payments/office [post]
func (h *PaymentHandler) RecordOfficePayment(c *gin.Context) {
	var req models.OfficePayment
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	rec, err := h.paymentService.RecordOfficePayment(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		respondError(c, h.logger, "Failed to record office payment", err)
		return
	}
	utils.CreatedResponse(c, "Office payment recorded successfully", rec)
}
