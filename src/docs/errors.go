package docs

import (
	"errors"
	"fmt"
)

// ErrParse is matched by every *ParseError.
var ErrParse = errors.New("parse document")

// ParseError reports a document that is neither valid JSON nor valid YAML
// (or not valid in the format it was explicitly read as).
type ParseError struct {
	Format Format
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Unable to parse %v document: %v", e.Format, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func (e *ParseError) Is(target error) bool { return target == ErrParse }
