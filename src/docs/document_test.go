package docs

import (
	"errors"
	"reflect"
	"slices"
	"testing"

	"github.com/masnyjimmy/specdoc/src/ordered"
)

const petsJSON = `{
  "openapi": "3.0.0",
  "info": {"title": "Pets", "version": "1.0.0"},
  "paths": {
    "/zebras": {"get": {"responses": {"200": {"description": "ok"}}}},
    "/ants": {"post": {"deprecated": true, "x-rate": 2.0, "x-ratio": 0.5}}
  }
}`

const petsYAML = `
openapi: 3.0.0
info:
  title: Pets
  version: 1.0.0
paths:
  /zebras:
    get:
      responses:
        200:
          description: ok
  /ants:
    post:
      deprecated: true
      x-rate: 2
      x-ratio: 0.5
`

func TestParseJSONKeepsKeyOrder(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(petsJSON), FormatJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	paths, ok := AsMap(Field(doc, "paths"))
	if !ok {
		t.Fatalf("paths is %T, want mapping", Field(doc, "paths"))
	}

	want := []string{"/zebras", "/ants"}
	if got := paths.Keys(); !slices.Equal(got, want) {
		t.Fatalf("path order = %v, want %v", got, want)
	}
}

func TestParseYAMLStringifiesKeys(t *testing.T) {
	t.Parallel()

	doc, err := Parse([]byte(petsYAML), FormatYAML)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	responses := Field(Field(Field(Field(doc, "paths"), "/zebras"), "get"), "responses")
	m, ok := AsMap(responses)
	if !ok {
		t.Fatalf("responses is %T, want mapping", responses)
	}

	if !m.Has("200") {
		t.Fatalf("response keys = %v, want \"200\"", m.Keys())
	}
}

func TestParseJSONAndYAMLAreEquivalent(t *testing.T) {
	t.Parallel()

	fromJSON, err := Parse([]byte(petsJSON), FormatAuto)
	if err != nil {
		t.Fatalf("Parse JSON: %v", err)
	}

	fromYAML, err := Parse([]byte(petsYAML), FormatAuto)
	if err != nil {
		t.Fatalf("Parse YAML: %v", err)
	}

	if !reflect.DeepEqual(fromJSON, fromYAML) {
		t.Fatalf("trees differ:\njson: %#v\nyaml: %#v", fromJSON, fromYAML)
	}
}

func TestParseErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		input  string
		format Format
	}{
		{name: "broken json", input: `{"openapi": `, format: FormatJSON},
		{name: "trailing json", input: `{} {}`, format: FormatJSON},
		{name: "broken yaml", input: "a: [1, 2", format: FormatYAML},
		{name: "broken both", input: "{openapi: [", format: FormatAuto},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := Parse([]byte(tc.input), tc.format)
			if err == nil {
				t.Fatal("expected error")
			}

			if !errors.Is(err, ErrParse) {
				t.Fatalf("error %v does not match ErrParse", err)
			}

			var parseErr *ParseError
			if !errors.As(err, &parseErr) || parseErr.Format != tc.format {
				t.Fatalf("error %#v, want *ParseError with format %v", err, tc.format)
			}
		})
	}
}

func TestParseAutoFallsBackToYAML(t *testing.T) {
	t.Parallel()

	doc, err := ParseString("openapi: 3.1.0\n", FormatAuto)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if got := String(Field(doc, "openapi")); got != "3.1.0" {
		t.Fatalf("openapi = %q, want 3.1.0", got)
	}
}

func TestFormatFromPath(t *testing.T) {
	t.Parallel()

	cases := map[string]Format{
		"api.json": FormatJSON,
		"API.JSON": FormatJSON,
		"api.yaml": FormatYAML,
		"api.yml":  FormatYAML,
		"api":      FormatYAML,
	}

	for name, want := range cases {
		if got := FormatFromPath(name); got != want {
			t.Errorf("FormatFromPath(%q) = %v, want %v", name, got, want)
		}
	}
}

func TestTruthy(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value any
		want  bool
	}{
		{nil, false},
		{"", false},
		{false, false},
		{int64(0), false},
		{0.0, false},
		{"x", true},
		{true, true},
		{int64(3), true},
		{[]any{}, true},
		{ordered.New[any](), true},
	}

	for _, tc := range cases {
		if got := Truthy(tc.value); got != tc.want {
			t.Errorf("Truthy(%#v) = %v, want %v", tc.value, got, tc.want)
		}
	}
}

func TestCanonicalNumbers(t *testing.T) {
	t.Parallel()

	cases := []struct {
		value any
		want  any
	}{
		{uint64(200), int64(200)},
		{2.0, int64(2)},
		{0.5, 0.5},
		{int(-4), int64(-4)},
	}

	for _, tc := range cases {
		if got := Canonical(tc.value); got != tc.want {
			t.Errorf("Canonical(%#v) = %#v, want %#v", tc.value, got, tc.want)
		}
	}
}

func TestPlainConvertsMappings(t *testing.T) {
	t.Parallel()

	m := ordered.New[any]()
	m.Set("list", []any{ordered.New[any]()})

	got := Plain(m)
	want := map[string]any{"list": []any{map[string]any{}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Plain = %#v, want %#v", got, want)
	}
}
