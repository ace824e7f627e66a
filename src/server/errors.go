package server

import (
	"errors"
	"fmt"
)

var (
	// ErrNoFile is returned when an upload carries no "spec" file.
	ErrNoFile = errors.New("No file uploaded")
	// ErrUnsupportedFile is matched by every *UnsupportedFileError.
	ErrUnsupportedFile = errors.New("Only JSON and YAML files are allowed")
	// ErrFileTooLarge is returned when an upload exceeds the configured limit.
	ErrFileTooLarge = errors.New("file too large")
)

// UnsupportedFileError rejects an upload by its file extension.
type UnsupportedFileError struct {
	Name string
	Ext  string
}

func (e *UnsupportedFileError) Error() string {
	return fmt.Sprintf("%v: %q", ErrUnsupportedFile, e.Name)
}

func (e *UnsupportedFileError) Is(target error) bool { return target == ErrUnsupportedFile }
