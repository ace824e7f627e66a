package validation

import (
	"errors"
	"fmt"
)

// ErrValidation is matched by every *ValidationError.
var ErrValidation = errors.New("invalid OpenAPI/Swagger specification")

// ValidationError names the first required top-level field the document lacks.
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("Invalid OpenAPI/Swagger specification: missing %v field", e.Field)
}

func (e *ValidationError) Unwrap() error { return e.Err }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }
