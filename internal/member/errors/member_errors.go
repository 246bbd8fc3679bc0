package membererrors

import (
	"net/http"

	"go-workforce/internal/shared/apperror"
)

var (
	ErrUserNotInOrg = apperror.Named(
		apperror.CodeNotFound,
		"USER_NOT_IN_ORG",
		"member does not belong to this organization",
		http.StatusNotFound,
	)
	ErrUserInactive = apperror.Named(
		apperror.CodeInvalidState,
		"USER_INACTIVE",
		"member is not active",
		http.StatusUnprocessableEntity,
	)
	ErrManagerCycle = apperror.Named(
		apperror.CodeInvalidInput,
		"MANAGER_CYCLE",
		"manager assignment would create a reporting cycle",
		http.StatusUnprocessableEntity,
	)
	ErrMemberExists = apperror.Named(
		apperror.CodeConflict,
		"MEMBER_EXISTS",
		"member with the same email already exists",
		http.StatusConflict,
	)
	ErrInvalidSalary = apperror.New(
		apperror.CodeInvalidInput,
		"base_salary must be a non-negative decimal",
		http.StatusBadRequest,
	)
	ErrInvalidWeekdays = apperror.New(
		apperror.CodeInvalidInput,
		"working_weekdays must list ISO weekdays 1-7",
		http.StatusBadRequest,
	)
)
