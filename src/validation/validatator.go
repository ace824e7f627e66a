package validation

import (
	"bytes"
	_ "embed"

	"github.com/masnyjimmy/specdoc/src/docs"
	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed presence.json
var presenceBytes []byte

const presenceUrl = "https://specdoc.local/presence.json"

type SchemaValidator struct {
	field  string
	schema *jsonschema.Schema
}

func (v *SchemaValidator) ValidateObject(obj any) error {
	if err := v.schema.Validate(obj); err != nil {
		return &ValidationError{Field: v.field, Err: err}
	}
	return nil
}

// checks run in this order; the first failure wins.
var checks []*SchemaValidator

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.DefaultDraft(jsonschema.Draft2020)

	object, err := jsonschema.UnmarshalJSON(bytes.NewReader(presenceBytes))
	if err != nil {
		panic(err)
	}

	if err := compiler.AddResource(presenceUrl, object); err != nil {
		panic(err)
	}

	for _, field := range []string{"version", "info", "paths"} {
		checks = append(checks, &SchemaValidator{
			field:  field,
			schema: compiler.MustCompile(presenceUrl + "#/$defs/" + field),
		})
	}
}

// Validate checks that a raw document declares a scalar version and carries
// truthy info and paths values. Nothing below the top level is inspected.
func Validate(document any) error {
	object := docs.Plain(document)

	for _, check := range checks {
		if err := check.ValidateObject(object); err != nil {
			return err
		}
	}

	return nil
}
