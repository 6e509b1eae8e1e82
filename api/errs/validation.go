package errs

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-playground/validator/v10"
	"strings"
)

// ValidationError wraps a binding failure. It always maps to 400.
type ValidationError struct {
	Err error
}

func NewValidationError(err error) *ValidationError {
	return &ValidationError{Err: err}
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Error() string {
	var fieldErrs validator.ValidationErrors
	if errors.As(e.Err, &fieldErrs) {
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fieldMessage(fe))
		}
		return strings.Join(msgs, "; ")
	}

	var syntaxErr *json.SyntaxError
	if errors.As(e.Err, &syntaxErr) {
		return "request body is not valid JSON"
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(e.Err, &typeErr) {
		return fmt.Sprintf("%q has the wrong type, expected %s", typeErr.Field, typeErr.Type)
	}
	return "invalid request: " + e.Err.Error()
}

func fieldMessage(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.ActualTag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "min":
		return fmt.Sprintf("%q must be at least %s characters long", field, fe.Param())
	case "max":
		return fmt.Sprintf("%q must be at most %s characters long", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%q must be a positive integer", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "member_role":
		return fmt.Sprintf("%q must be lowercase letters, digits and underscores", field)
	}
	return fmt.Sprintf("%q failed on the %q rule", field, fe.Tag())
}
