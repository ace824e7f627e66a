package compilation

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/masnyjimmy/specdoc/src/ordered"
	"github.com/masnyjimmy/specdoc/src/validation"
)

type CompileContext struct {
	in  *ordered.Map[any]
	out *Document
}

func MapArray[T ~[]I, U ~[]O, I any, O any](in T, out *U, mapFn func(idx int, in I) O) {
	(*out) = make(U, len(in))

	for idx, val := range in {
		(*out)[idx] = mapFn(idx, val)
	}
}

func newCompileContext(input *ordered.Map[any], output *Document) *CompileContext {
	return &CompileContext{
		in:  input,
		out: output,
	}
}

// text reads a scalar as text, with falsy values reading as "".
func text(v any) string {
	if !docs.Truthy(v) {
		return ""
	}
	return docs.String(v)
}

func field(v any, key string) any {
	return docs.Field(v, key)
}

func list(v any) []any {
	if s, ok := docs.AsSlice(v); ok {
		return s
	}
	return []any{}
}

func (c *CompileContext) CompileVersion() {
	version, _ := c.in.Get("openapi")
	if !docs.Truthy(version) {
		version, _ = c.in.Get("swagger")
	}
	c.out.Version = text(version)
}

func (c *CompileContext) CompileInfo() {
	in, _ := c.in.Get("info")

	c.out.Info = Info{
		Title:       text(field(in, "title")),
		Version:     text(field(in, "version")),
		Description: text(field(in, "description")),
	}

	if contact := field(in, "contact"); docs.Truthy(contact) {
		c.out.Info.Contact = &Contact{
			Name:  text(field(contact, "name")),
			Email: text(field(contact, "email")),
			Url:   text(field(contact, "url")),
		}
	}

	if license := field(in, "license"); docs.Truthy(license) {
		c.out.Info.License = &License{
			Name: text(field(license, "name")),
			Url:  text(field(license, "url")),
		}
	}
}

func (c *CompileContext) CompileServers() {
	servers, _ := c.in.Get("servers")

	MapArray(list(servers), &c.out.Servers, func(idx int, in any) Server {
		return Server{
			Url:         text(field(in, "url")),
			Description: text(field(in, "description")),
		}
	})
}

func (c *CompileContext) CompileComponents() {
	for _, key := range []string{"components", "definitions"} {
		if components, _ := c.in.Get(key); docs.Truthy(components) {
			c.out.Components = components
			return
		}
	}
	c.out.Components = ordered.New[any]()
}

func (c *CompileContext) CompileSecurityAndTags() {
	security, _ := c.in.Get("security")
	c.out.Security = list(security)

	tags, _ := c.in.Get("tags")
	c.out.Tags = list(tags)
}

func compileParameters(in any) []Parameter {
	var out []Parameter

	MapArray(list(in), &out, func(idx int, in any) Parameter {
		param := Parameter{
			Name:        text(field(in, "name")),
			In:          ParamIn(text(field(in, "in"))),
			Required:    docs.Truthy(field(in, "required")),
			Description: text(field(in, "description")),
			Type:        text(field(in, "type")),
		}

		if schema := field(in, "schema"); docs.Truthy(schema) {
			if _, ok := docs.AsMap(schema); ok {
				param.Schema = &ParameterSchema{
					Type: text(field(schema, "type")),
				}
			}
		}

		return param
	})

	return out
}

func compileContent(in any) *ordered.Map[MediaType] {
	content, ok := docs.AsMap(in)
	if !ok {
		return nil
	}

	out := ordered.New[MediaType]()

	for mediaType, value := range content.All() {
		var media MediaType
		if schema := field(value, "schema"); docs.Truthy(schema) {
			media.Schema = schema
		}
		out.Set(mediaType, media)
	}

	return out
}

func compileRequestBody(in any) *RequestBody {
	if !docs.Truthy(in) {
		return nil
	}

	return &RequestBody{
		Description: text(field(in, "description")),
		Required:    docs.Truthy(field(in, "required")),
		Content:     compileContent(field(in, "content")),
	}
}

func compileResponses(in any) *ordered.Map[Response] {
	out := ordered.New[Response]()

	responses, ok := docs.AsMap(in)
	if !ok {
		return out
	}

	for statusCode, response := range responses.All() {
		out.Set(statusCode, Response{
			Description: text(field(response, "description")),
			Content:     compileContent(field(response, "content")),
		})
	}

	return out
}

func compileOperation(in any) *Operation {
	out := Operation{
		Summary:     text(field(in, "summary")),
		Description: text(field(in, "description")),
		OperationId: text(field(in, "operationId")),
		Parameters:  compileParameters(field(in, "parameters")),
		RequestBody: compileRequestBody(field(in, "requestBody")),
		Responses:   compileResponses(field(in, "responses")),
		Security:    list(field(in, "security")),
		Deprecated:  docs.Truthy(field(in, "deprecated")),
	}

	MapArray(list(field(in, "tags")), &out.Tags, func(idx int, in any) string {
		return text(in)
	})

	return &out
}

func (c *CompileContext) CompilePaths() {
	c.out.Paths = ordered.New[*PathItem]()

	paths, _ := c.in.Get("paths")
	in, ok := docs.AsMap(paths)
	if !ok {
		return
	}

	for path, current := range in.All() {
		outPath := &PathItem{}

		for _, method := range Methods {
			if op := field(current, method); docs.Truthy(op) {
				outPath.SetOperation(method, compileOperation(op))
			}
		}

		if params := list(field(current, "parameters")); len(params) > 0 {
			outPath.Parameters = compileParameters(params)
		}

		c.out.Paths.Set(path, outPath)
	}
}

func (c *CompileContext) Compile() {
	c.CompileVersion()

	c.CompileInfo()

	c.CompileServers()

	c.CompilePaths()

	c.CompileComponents()

	c.CompileSecurityAndTags()
}

// Normalize validates a raw document and reshapes it into a Document.
//
// raw may be document text ([]byte or string, JSON tried before YAML), a raw
// tree from docs.Parse, a decoded map[string]any, or an already normalized
// *Document, which is returned as is.
func Normalize(raw any) (*Document, error) {
	switch t := raw.(type) {
	case *Document:
		if t != nil {
			return t, nil
		}
		raw = nil
	case Document:
		return &t, nil
	case []byte:
		parsed, err := docs.Parse(t, docs.FormatAuto)
		if err != nil {
			return nil, err
		}
		raw = parsed
	case string:
		parsed, err := docs.ParseString(t, docs.FormatAuto)
		if err != nil {
			return nil, err
		}
		raw = parsed
	default:
		raw = docs.Canonical(raw)
	}

	if err := validation.Validate(raw); err != nil {
		return nil, err
	}

	in, ok := docs.AsMap(raw)
	if !ok {
		// Validate only accepts mappings.
		return nil, fmt.Errorf("document root is %T, not a mapping", raw)
	}

	var out Document

	newCompileContext(in, &out).Compile()

	return &out, nil
}

// NormalizeBytes parses data in the given format and normalizes it.
func NormalizeBytes(data []byte, format docs.Format) (*Document, error) {
	raw, err := docs.Parse(data, format)
	if err != nil {
		return nil, err
	}

	return Normalize(raw)
}

func CompileToJSON(doc *Document) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return buf.Bytes(), nil
}

func CompileToYAML(doc *Document) ([]byte, error) {
	bytes, err := yaml.Marshal(doc)

	if err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}

	return bytes, nil
}
