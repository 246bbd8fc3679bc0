package apperror_test

import (
	"errors"
	"net/http"
	"reflect"
	"strings"
	"testing"

	"go-workforce/internal/shared/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

type periodPayload struct {
	PeriodStart string `json:"period_start" validate:"required"`
	Format      string `json:"format" validate:"oneof=csv json"`
}

func TestMapValidationError(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		return strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	})

	t.Run("required field uses title-cased name", func(t *testing.T) {
		err := v.Struct(periodPayload{Format: "csv"})
		mapped := apperror.MapValidationError(err)

		var appErr *apperror.AppError
		assert.True(t, errors.As(mapped, &appErr))
		assert.Equal(t, "Period Start is required", appErr.Message)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
	})

	t.Run("oneof lists the allowed values", func(t *testing.T) {
		err := v.Struct(periodPayload{PeriodStart: "2026-09-01", Format: "pdf"})
		mapped := apperror.MapValidationError(err)
		assert.Equal(t, "Format must be one of: csv, json", apperror.ToHTTP(mapped).Message)
	})

	t.Run("non validation error falls back to generic input error", func(t *testing.T) {
		mapped := apperror.MapValidationError(errors.New("EOF"))
		assert.Equal(t, apperror.CodeInvalidInput, apperror.ToHTTP(mapped).Code)
	})
}

func TestKindOf(t *testing.T) {
	conflict := apperror.Named(apperror.CodeConflict, "SESSION_ALREADY_OPEN", "open session exists", http.StatusConflict)
	assert.Equal(t, apperror.KindConflict, apperror.KindOf(conflict))
	assert.Equal(t, apperror.KindPrecondition, apperror.KindOf(apperror.ErrNotFound))
	assert.Equal(t, apperror.KindIntegrity, apperror.KindOf(errors.New("connection reset")))

	wrapped := apperror.Integrity(errors.New("connection reset"))
	assert.Equal(t, http.StatusInternalServerError, apperror.ToHTTP(wrapped).Status)
	assert.Same(t, conflict, apperror.Integrity(conflict))
}
