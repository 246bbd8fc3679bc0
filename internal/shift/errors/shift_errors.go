package shifterrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrShiftNotFound = apperror.Named(
		apperror.CodeNotFound,
		"SHIFT_NOT_FOUND",
		"shift not found",
		http.StatusNotFound,
	)
	ErrBreakRuleNotFound = apperror.Named(
		apperror.CodeNotFound,
		"BREAK_RULE_NOT_FOUND",
		"break rule not found",
		http.StatusNotFound,
	)
	ErrInvalidClockTime = apperror.New(
		apperror.CodeInvalidInput,
		"start_time and end_time must be HH:MM",
		http.StatusBadRequest,
	)
	ErrInvalidShiftWindow = apperror.Named(
		apperror.CodeInvalidInput,
		"INVALID_SHIFT_WINDOW",
		"shift must end after it starts unless it is overnight",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrAssignmentOverlap = apperror.Named(
		apperror.CodeConflict,
		"ASSIGNMENT_OVERLAP",
		"member already has a shift assignment covering this range",
		http.StatusConflict,
	)
)
