package apperror

const (
	// Client errors (4xx)
	CodeInvalidInput = "INVALID_INPUT"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeNotFound     = "NOT_FOUND"
	CodeConflict     = "CONFLICT"
	CodeInvalidState = "INVALID_STATE"

	// Server errors (5xx)
	CodeInternalError      = "INTERNAL_ERROR"
	CodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// Kind groups codes by how a caller is expected to react.
type Kind string

const (
	// KindConflict: the caller asked for the wrong transition; query state and retry.
	KindConflict Kind = "conflict"
	// KindPrecondition: the request itself must be corrected.
	KindPrecondition Kind = "precondition"
	// KindIntegrity: store-level failure; the whole operation is safe to retry.
	KindIntegrity Kind = "integrity"
)

func kindForCode(code string) Kind {
	switch code {
	case CodeConflict:
		return KindConflict
	case CodeInternalError, CodeServiceUnavailable:
		return KindIntegrity
	default:
		return KindPrecondition
	}
}
