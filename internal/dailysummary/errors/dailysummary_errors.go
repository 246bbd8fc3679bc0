package dailysummaryerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrBatchLocked = apperror.Named(
		apperror.CodeConflict,
		"BATCH_LOCKED",
		"nightly reconciliation for this day is already running",
		http.StatusConflict,
	)
)
