package payrollerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	)
	ErrPeriodNotFound = apperror.Named(
		apperror.CodeNotFound,
		"PERIOD_NOT_FOUND",
		"payroll period not found",
		http.StatusNotFound,
	)
	ErrPeriodOverlap = apperror.Named(
		apperror.CodeConflict,
		"PERIOD_OVERLAP",
		"payroll period overlaps an existing period",
		http.StatusConflict,
	)
	ErrPeriodLocked = apperror.Named(
		apperror.CodeInvalidState,
		"PERIOD_LOCKED",
		"payroll period is locked",
		http.StatusUnprocessableEntity,
	)
	ErrPeriodApproved = apperror.Named(
		apperror.CodeInvalidState,
		"PERIOD_APPROVED",
		"payroll period has approved lines and cannot be regenerated",
		http.StatusUnprocessableEntity,
	)
	ErrGenerationInProgress = apperror.Named(
		apperror.CodeConflict,
		"GENERATION_IN_PROGRESS",
		"payroll generation is already running for this period",
		http.StatusConflict,
	)
	ErrPeriodNotGenerated = apperror.Named(
		apperror.CodeInvalidState,
		"PERIOD_NOT_GENERATED",
		"payroll period has not been generated",
		http.StatusUnprocessableEntity,
	)
	ErrUnapprovedLines = apperror.Named(
		apperror.CodeInvalidState,
		"UNAPPROVED_LINES",
		"payroll period still has unapproved lines",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidScope = apperror.Named(
		apperror.CodeInvalidInput,
		"INVALID_SCOPE",
		"approval scope must be all or team",
		http.StatusBadRequest,
	)
	ErrUnsupportedExportFormat = apperror.Named(
		apperror.CodeInvalidInput,
		"UNSUPPORTED_EXPORT_FORMAT",
		"export format must be csv, json, xlsx or pdf",
		http.StatusBadRequest,
	)
)
