package apperror

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var fieldCaser = cases.Title(language.English)

// humanField turns a json field name like period_start into "Period Start".
func humanField(s string) string {
	return fieldCaser.String(strings.ReplaceAll(s, "_", " "))
}

// MapValidationError reports the first failed binding rule as an
// invalid-input AppError. Anything that is not a validator error, such as a
// malformed body, maps to a generic invalid-input error.
func MapValidationError(err error) error {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return New(CodeInvalidInput, "Invalid input", http.StatusBadRequest)
	}

	e := errs[0]
	field := humanField(e.Field())
	switch e.Tag() {
	case "required":
		return RequiredField(field)
	case "oneof":
		return New(CodeInvalidInput, field+" must be one of: "+strings.ReplaceAll(e.Param(), " ", ", "), http.StatusBadRequest)
	case "len":
		return New(CodeInvalidInput, field+" must be "+e.Param()+" characters", http.StatusBadRequest)
	default:
		return InvalidField(field)
	}
}
