package render

import "errors"

var (
	// ErrNilDocument is returned when Render is called without a document.
	ErrNilDocument = errors.New("render: nil document")
	// ErrExecuteTemplate is returned when the page template fails to execute.
	ErrExecuteTemplate = errors.New("render: execute template")
	// ErrConvertMarkdown is returned when HTML to Markdown conversion fails.
	ErrConvertMarkdown = errors.New("render: convert markdown")
)
