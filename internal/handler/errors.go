package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"memorial-park-svc/internal/apiclient"
	"memorial-park-svc/internal/service"
	"memorial-park-svc/internal/validation"
	"memorial-park-svc/pkg/logger"
	"memorial-park-svc/pkg/utils"
)

// MessageNetworkError is shown when the remote API could not be reached
const MessageNetworkError = "Network error, please try again"

// FieldsData lists the failing fields of a rejected form
type FieldsData struct {
	Fields  []string                `json:"fields" example:"email,contact_number"`
	Details []validation.FieldError `json:"details"`
}

// respondError maps a service error to its status and envelope. action is
// the log message used for unexpected failures.
func respondError(c *gin.Context, log *logger.Logger, action string, err error) {
	var verr *validation.Errors
	if errors.As(err, &verr) {
		utils.ErrorResponseWithData(c, http.StatusUnprocessableEntity, verr.Error(), FieldsData{
			Fields:  verr.Names(),
			Details: verr.Fields,
		})
		return
	}

	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) {
		log.WithError(err).WithField("status", apiErr.Status).Warn(action)
		utils.ErrorResponse(c, apiErr.HTTPStatus(), apiErr.UserMessage(), nil)
		return
	}

	if errors.Is(err, apiclient.ErrNetwork) {
		log.WithError(err).Error(action)
		utils.ErrorResponse(c, http.StatusBadGateway, MessageNetworkError, nil)
		return
	}

	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, service.ErrNoSectorMap):
		utils.NotFoundResponse(c, capitalize(err.Error()))
	case errors.Is(err, service.ErrForbidden), errors.Is(err, service.ErrRootAdminProtected):
		utils.ForbiddenResponse(c, capitalize(err.Error()))
	case errors.Is(err, service.ErrConfirmationMismatch),
		errors.Is(err, service.ErrUnknownVault),
		errors.Is(err, service.ErrInvalidPageSize),
		errors.Is(err, service.ErrUnknownReport),
		errors.Is(err, service.ErrUnknownImport),
		service.IsImportFileError(err):
		utils.BadRequestResponse(c, capitalize(err.Error()), nil)
	case errors.Is(err, service.ErrOverdueOfficeOnly),
		errors.Is(err, service.ErrFullyPaid),
		errors.Is(err, service.ErrMonthOutOfOrder),
		errors.Is(err, service.ErrVaultLocked):
		utils.ErrorResponse(c, http.StatusConflict, capitalize(err.Error()), nil)
	default:
		log.WithError(err).Error(action)
		utils.InternalServerErrorResponse(c, action, err)
	}
}

func capitalize(s string) string {
	if s == "" || s[0] < 'a' || s[0] > 'z' {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
