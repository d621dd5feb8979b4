package utils

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func InitValidator() {
	if Validate == nil {
		Validate = validator.New()
	}
}

func init() {
	InitValidator()
}

// FailedOn reports whether the first validation failure in err was raised by tag.
func FailedOn(err error, tag string) bool {
	fe, ok := firstFieldError(err)
	return ok && fe.Tag() == tag
}

// FailedField returns the top-level struct field of the first validation
// failure, with any slice index removed.
func FailedField(err error) string {
	fe, ok := firstFieldError(err)
	if !ok {
		return ""
	}
	parts := strings.SplitN(fe.StructNamespace(), ".", 3)
	if len(parts) < 2 {
		return fe.StructField()
	}
	field := parts[1]
	if i := strings.IndexByte(field, '['); i >= 0 {
		field = field[:i]
	}
	return field
}

func firstFieldError(err error) (validator.FieldError, bool) {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return nil, false
	}
	return errs[0], true
}
