package domain

import (
	"errors"
	"fmt"
)

// ValidationError marks caller errors: bad input, a device command without a
// usable device, an unrecognized function name. The HTTP adapter maps these
// to 400; everything else is treated as a collaborator failure (500).
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

// Invalid builds a ValidationError with a formatted message.
func Invalid(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

var (
	ErrEmptyInput    = &ValidationError{Msg: "text cannot be empty"}
	ErrMissingEntity = &ValidationError{Msg: "no device specified"}
)
