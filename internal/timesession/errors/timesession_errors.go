package timesessionerrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrSessionAlreadyOpen = apperror.Named(
		apperror.CodeConflict,
		"SESSION_ALREADY_OPEN",
		"an open session already exists for this member",
		http.StatusConflict,
	)
	ErrBreakAlreadyOpen = apperror.Named(
		apperror.CodeConflict,
		"BREAK_ALREADY_OPEN",
		"a break is already open on this session",
		http.StatusConflict,
	)
	ErrNoOpenSession = apperror.Named(
		apperror.CodeConflict,
		"NO_OPEN_SESSION",
		"no open session for this member",
		http.StatusConflict,
	)
	ErrSessionNotOpen = apperror.Named(
		apperror.CodeConflict,
		"SESSION_NOT_OPEN",
		"session is already closed",
		http.StatusConflict,
	)
	ErrNoOpenBreak = apperror.Named(
		apperror.CodeConflict,
		"NO_OPEN_BREAK",
		"no open break on this session",
		http.StatusConflict,
	)
	ErrInvalidRange = apperror.New(
		apperror.CodeInvalidInput,
		"from and to must be YYYY-MM-DD with from <= to",
		http.StatusBadRequest,
	)
)
