// SPDX-License-Identifier: MIT

// Package valid runs struct-tag validation for configuration types and turns
// validator field errors into one readable message.
package valid

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct validates s by its `validate` tags. The returned error wraps kind
// and lists every failing field, e.g. "dt must be greater than 0".
func Struct(kind error, s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %s", kind, format(err))
	}

	return nil
}

func format(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, formatFieldError(e))
	}

	return strings.Join(msgs, "; ")
}

// formatFieldError names the field by its namespace without the root type,
// so nested fields read as "move.stepsize".
func formatFieldError(e validator.FieldError) string {
	field := strings.ToLower(e.Namespace())
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", field, e.Param())
	case "min":
		return fmt.Sprintf("%s must have at least %s entries", field, e.Param())
	case "max":
		return fmt.Sprintf("%s must have at most %s entries", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
