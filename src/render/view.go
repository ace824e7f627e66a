package render

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/masnyjimmy/specdoc/src/compilation"
	"github.com/masnyjimmy/specdoc/src/ordered"
)

// Every string field of the views below is already HTML-escaped, except
// Stylesheet, Script and LiveReload which never carry document text.

type documentView struct {
	Title       string
	Version     string
	Description string
	Info        *infoView
	Servers     []serverView
	Endpoints   []endpointView
	Stylesheet  string
	Script      string
	LiveReload  string
}

type infoView struct {
	Contact *contactView
	License *licenseView
}

type contactView struct {
	Name  string
	Email string
	Url   string
}

type licenseView struct {
	Name string
	Url  string
}

type serverView struct {
	Url         string
	Description string
}

type endpointView struct {
	Method      string
	Path        string
	Deprecated  bool
	Tags        []string
	Summary     string
	Description string
	Parameters  []parameterView
	RequestBody *requestBodyView
	Responses   []responseView
}

type parameterView struct {
	Name        string
	In          string
	Type        string
	Description string
	Required    bool
}

type requestBodyView struct {
	Description string
	Content     []mediaView
}

type responseView struct {
	Code        string
	Class       string
	Description string
	Content     []mediaView
}

type mediaView struct {
	MediaType string
	Schema    string
}

func buildDocumentView(doc *compilation.Document, opt Options) (documentView, error) {
	view := documentView{
		Title:       Escape(doc.Info.Title),
		Version:     Escape(doc.Info.Version),
		Description: Escape(doc.Info.Description),
		Stylesheet:  strings.TrimRight(stylesheet, "\n"),
		Script:      strings.TrimRight(script, "\n"),
	}

	if !opt.OmitInfo {
		view.Info = buildInfoView(doc.Info)
	}

	for _, server := range doc.Servers {
		view.Servers = append(view.Servers, serverView{
			Url:         Escape(server.Url),
			Description: Escape(server.Description),
		})
	}

	for path, item := range doc.Paths.All() {
		if item == nil {
			continue
		}

		for method, op := range item.Operations() {
			endpoint, err := buildEndpointView(path, method, item, op, opt)
			if err != nil {
				return documentView{}, fmt.Errorf("%v %v: %w", strings.ToUpper(method), path, err)
			}
			view.Endpoints = append(view.Endpoints, endpoint)
		}
	}

	if opt.LiveReload != "" {
		literal, err := json.Marshal(opt.LiveReload)
		if err != nil {
			return documentView{}, err
		}
		view.LiveReload = string(literal)
	}

	return view, nil
}

func buildInfoView(info compilation.Info) *infoView {
	if info.Contact == nil && info.License == nil {
		return nil
	}

	out := &infoView{}

	if c := info.Contact; c != nil {
		out.Contact = &contactView{
			Name:  Escape(c.Name),
			Email: Escape(c.Email),
			Url:   Escape(c.Url),
		}
	}

	if l := info.License; l != nil {
		out.License = &licenseView{
			Name: Escape(l.Name),
			Url:  Escape(l.Url),
		}
	}

	return out
}

func buildEndpointView(path, method string, item *compilation.PathItem, op *compilation.Operation, opt Options) (endpointView, error) {
	out := endpointView{
		Method:      method,
		Path:        Escape(path),
		Deprecated:  op.Deprecated,
		Summary:     Escape(op.Summary),
		Description: Escape(op.Description),
	}

	for _, tag := range op.Tags {
		out.Tags = append(out.Tags, Escape(tag))
	}

	// path-level first, no de-duplication by (name, in)
	params := make([]compilation.Parameter, 0, len(item.Parameters)+len(op.Parameters))
	params = append(params, item.Parameters...)
	params = append(params, op.Parameters...)

	for _, p := range params {
		out.Parameters = append(out.Parameters, parameterView{
			Name:        Escape(p.Name),
			In:          Escape(string(p.In)),
			Type:        Escape(p.EffectiveType()),
			Description: Escape(p.Description),
			Required:    p.Required,
		})
	}

	if op.RequestBody != nil && !opt.OmitRequestBody {
		content, err := buildMediaViews(op.RequestBody.Content)
		if err != nil {
			return endpointView{}, err
		}

		out.RequestBody = &requestBodyView{
			Description: Escape(op.RequestBody.Description),
			Content:     content,
		}
	}

	for code, response := range op.Responses.All() {
		content, err := buildMediaViews(response.Content)
		if err != nil {
			return endpointView{}, err
		}

		out.Responses = append(out.Responses, responseView{
			Code:        Escape(code),
			Class:       StatusClass(code),
			Description: Escape(response.Description),
			Content:     content,
		})
	}

	return out, nil
}

func buildMediaViews(content *ordered.Map[compilation.MediaType]) ([]mediaView, error) {
	var out []mediaView

	for mediaType, media := range content.All() {
		view := mediaView{MediaType: Escape(mediaType)}

		if media.Schema != nil {
			dump, err := schemaDump(media.Schema)
			if err != nil {
				return nil, fmt.Errorf("schema for %v: %w", mediaType, err)
			}
			view.Schema = Escape(dump)
		}

		out = append(out, view)
	}

	return out, nil
}

// schemaDump pretty-prints schema as JSON with two-space indentation.
func schemaDump(schema any) (string, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(schema); err != nil {
		return "", err
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}

// StatusClass colors a response code: "success" for 2xx, "error" for 4xx
// and 5xx, nothing otherwise.
func StatusClass(code string) string {
	switch {
	case strings.HasPrefix(code, "2"):
		return "success"
	case strings.HasPrefix(code, "4"), strings.HasPrefix(code, "5"):
		return "error"
	default:
		return ""
	}
}
