package organizationerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrOrganizationNotFound = apperror.Named(
		apperror.CodeNotFound,
		"ORG_NOT_FOUND",
		"organization not found",
		http.StatusNotFound,
	)
	ErrOrganizationInactive = apperror.Named(
		apperror.CodeInvalidState,
		"ORG_INACTIVE",
		"organization is not active",
		http.StatusUnprocessableEntity,
	)
	ErrHolidayExists = apperror.Named(
		apperror.CodeConflict,
		"HOLIDAY_EXISTS",
		"holiday already defined for this date",
		http.StatusConflict,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
