package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/middleware"
	"memorial-park-svc/internal/models"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/internal/validation"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// UserHandler handles login and account HTTP requests
type UserHandler struct {
	userService service.UserService
	prefs       service.PreferenceService
	logger      *logger.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.UserService, prefs service.PreferenceService, logger *logger.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		prefs:       prefs,
		logger:      logger,
	}
}

// Login handles POST /api/v1/auth/login
// @Summary Log in
// @Description Forward credentials to the remote API and return its token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Credentials"
// @Success 200 {object} utils.APIResponse{data=models.LoginResponse} "Login successful"
// @Failure 400 {object} utils.APIResponse "Invalid request body"
// @Failure 401 {object} utils.APIResponse "Invalid credentials"
// @Failure 502 {object} utils.APIResponse "Network error"
// @Router /api/v1/auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	resp, err := h.userService.Login(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, "Failed to log in", err)
		return
	}

	h.logger.WithField("username", req.Username).Info("Login successful")
	utils.SuccessResponse(c, "Login successful", resp)
}

// ListAccounts handles GET /api/v1/accounts
// @Summary List accounts
// @Description Search, sort and page the console accounts
// @Tags accounts
// @Produce json
// @Param q query string false "Free-text search"
// @Param sort query string false "Sort column" Enums(username, name, email, role, created_at)
// @Param dir query string false "Sort direction" Enums(asc, desc)
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" Enums(5, 10, 25, 50, 100)
// @Success 200 {object} utils.PaginatedResponse{data=[]service.AccountRow} "Accounts retrieved successfully"
// @Failure 403 {object} utils.APIResponse "Not allowed"
// @Router /api/v1/accounts [get]
func (h *UserHandler) ListAccounts(c *gin.Context) {
	res, err := h.userService.ListAccounts(c.Request.Context(), middleware.GetSession(c), listState(c, h.prefs, "accounts"))
	if err != nil {
		respondError(c, h.logger, "Failed to list accounts", err)
		return
	}
	respondPage(c, "Accounts retrieved successfully", res)
}

// GetAccount handles GET /api/v1/accounts/:id
// @Summary Get an account
// @Description Get an account and, for customers, its profile
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Success 200 {object} utils.APIResponse{data=service.AccountDetail} "Account retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid account ID"
// @Failure 404 {object} utils.APIResponse "Account not found"
// @Router /api/v1/accounts/{id} [get]
func (h *UserHandler) GetAccount(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid account ID", err)
		return
	}

	detail, err := h.userService.GetAccount(c.Request.Context(), middleware.GetSession(c), id)
	if err != nil {
		respondError(c, h.logger, "Failed to get account", err)
		return
	}
	utils.SuccessResponse(c, "Account retrieved successfully", detail)
}

// ValidateWizardStep handles POST /api/v1/accounts/wizard/validate
// @Summary Validate one wizard step
// @Description Step 1 checks identity fields, step 2 the customer profile, step 0 both
// @Tags accounts
// @Accept json
// @Produce json
// @Param step query int false "Wizard step" Enums(0, 1, 2)
// @Param request body models.AccountWizardRequest true "Wizard form"
// @Success 200 {object} utils.APIResponse{data=validation.Availability} "Step is valid"
// @Failure 422 {object} utils.APIResponse{data=FieldsData} "Fields to complete or correct"
// @Router /api/v1/accounts/wizard/validate [post]
func (h *UserHandler) ValidateWizardStep(c *gin.Context) {
	var req models.AccountWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	step := validation.StepAll
	if raw := c.Query("step"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < validation.StepAll || v > validation.StepProfile {
			utils.BadRequestResponse(c, "Invalid wizard step", err)
			return
		}
		step = v
	}

	if err := h.userService.ValidateWizardStep(req, step); err != nil {
		respondError(c, h.logger, "Failed to validate wizard step", err)
		return
	}
	utils.SuccessResponse(c, "Step is valid", h.userService.FieldAvailability(req.Account))
}

// FieldAvailability handles POST /api/v1/accounts/wizard/availability
// @Summary Field enabling state
// @Description Which account fields the form should enable for the current input
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AccountInput true "Account fields entered so far"
// @Success 200 {object} utils.APIResponse{data=validation.Availability} "Field availability"
// @Router /api/v1/accounts/wizard/availability [post]
func (h *UserHandler) FieldAvailability(c *gin.Context) {
	var in models.AccountInput
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}
	utils.SuccessResponse(c, "Field availability", h.userService.FieldAvailability(in))
}

// CreateAccount handles POST /api/v1/accounts
// @Summary Create an account
// @Description Validate both wizard steps and create the account, plus the profile for customers
// @Tags accounts
// @Accept json
// @Produce json
// @Param request body models.AccountWizardRequest true "Wizard form"
// @Success 201 {object} utils.APIResponse{data=service.AccountDetail} "Account created successfully"
// @Failure 422 {object} utils.APIResponse{data=FieldsData} "Fields to complete or correct"
// @Router /api/v1/accounts [post]
func (h *UserHandler) CreateAccount(c *gin.Context) {
	var req models.AccountWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	detail, err := h.userService.CreateAccount(c.Request.Context(), middleware.GetSession(c), req)
	if err != nil {
		respondError(c, h.logger, "Failed to create account", err)
		return
	}
	utils.CreatedResponse(c, "Account created successfully", detail)
}

// UpdateAccount handles PUT /api/v1/accounts/:id
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param id path int true "Account ID"
// @Param request body models.AccountWizardRequest true "Wizard form"
// @Success 200 {object} utils.APIResponse{data=service.AccountDetail} "Account updated successfully"
// @Failure 422 {object} utils.APIResponse{data=FieldsData} "Fields to complete or correct"
// @Router /api/v1/accounts/{id} [put]
func (h *UserHandler) UpdateAccount(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid account ID", err)
		return
	}
	var req models.AccountWizardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid request body", err)
		return
	}

	detail, err := h.userService.UpdateAccount(c.Request.Context(), middleware.GetSession(c), id, req)
	if err != nil {
		respondError(c, h.logger, "Failed to update account", err)
		return
	}
	utils.SuccessResponse(c, "Account updated successfully", detail)
}

// DeleteAccount handles DELETE /api/v1/accounts/:id
// @Summary Delete an account
// @Description The confirm value must repeat the account's username. The root administrator cannot be deleted.
// @Tags accounts
// @Produce json
// @Param id path int true "Account ID"
// @Param confirm query string true "Username typed to confirm"
// @Success 200 {object} utils.APIResponse "Account deleted successfully"
// @Failure 400 {object} utils.APIResponse "Confirmation does not match"
// @Failure 403 {object} utils.APIResponse "Root administrator is protected"
// @Router /api/v1/accounts/{id} [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid account ID", err)
		return
	}

	if err := h.userService.DeleteAccount(c.Request.Context(), middleware.GetSession(c), id, c.Query("confirm")); err != nil {
		respondError(c, h.logger, "Failed to delete account", err)
		return
	}
	utils.SuccessResponse(c, "Account deleted successfully", nil)
}
