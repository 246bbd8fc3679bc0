package ledgererrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrCurrencyMismatch = apperror.Named(
		apperror.CodeInvalidInput,
		"CURRENCY_MISMATCH",
		"currency does not match the organization ledger currency",
		http.StatusUnprocessableEntity,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"amount must be a decimal number",
		http.StatusBadRequest,
	)
	ErrFineNotPositive = apperror.New(
		apperror.CodeInvalidInput,
		"fine amount must be greater than zero",
		http.StatusBadRequest,
	)
	ErrZeroAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"adjustment amount cannot be zero",
		http.StatusBadRequest,
	)
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"from must not be after to",
		http.StatusBadRequest,
	)
)
