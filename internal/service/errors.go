package service

import "errors"

// Domain errors returned by services. Handlers map them to HTTP statuses.
var (
	ErrNotFound             = errors.New("record not found")
	ErrForbidden            = errors.New("not allowed for this role")
	ErrRootAdminProtected   = errors.New("the root administrator account cannot be deleted")
	ErrConfirmationMismatch = errors.New("confirmation does not match the record name")
	ErrOverdueOfficeOnly    = errors.New("this month is overdue and must be paid at the office; a 3% penalty applies")
	ErrFullyPaid            = errors.New("this lot is fully paid")
	ErrMonthOutOfOrder      = errors.New("months must be paid in order, starting with the next due month")
	ErrVaultLocked          = errors.New("vault configuration is locked once an interment exists")
	ErrUnknownVault         = errors.New("unknown vault configuration")
	ErrInvalidPageSize      = errors.New("page size must be one of 5, 10, 25, 50, 100")
	ErrUnknownReport        = errors.New("unknown report kind")
	ErrUnknownImport        = errors.New("unknown import kind")
	ErrNoSectorMap          = errors.New("this lot has no sector map")
)
