package render

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/masnyjimmy/specdoc/src/compilation"
)

//go:embed templates/document.html.gotmpl
var documentTemplate string

//go:embed assets/style.css
var stylesheet string

//go:embed assets/script.js
var script string

var page = template.Must(template.New("document").Parse(documentTemplate))

// Options selects the optional parts of the page. The zero value renders
// everything.
type Options struct {
	// OmitRequestBody drops the request body section of every endpoint.
	OmitRequestBody bool
	// OmitInfo drops the contact and license block.
	OmitInfo bool
	// LiveReload, when set, is the URL of a server-sent events stream; an
	// "update" event reloads the page.
	LiveReload string
}

// Render produces a complete, self-contained HTML page for doc. All text
// taken from the document is HTML-escaped.
func Render(doc *compilation.Document, opt Options) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}

	view, err := buildDocumentView(doc, opt)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	if err := page.Execute(&out, view); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExecuteTemplate, err)
	}

	return out.String(), nil
}
