package apperror

import "net/http"

// Errors for conditions no feature package owns.
var (
	ErrNotFound = New(CodeNotFound, "Resource not found", http.StatusNotFound)
	ErrInternal = New(CodeInternalError, "An unexpected error occurred", http.StatusInternalServerError)
)
