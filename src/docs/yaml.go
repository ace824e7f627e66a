package docs

import (
	"github.com/goccy/go-yaml"
)

func parseYAML(data []byte) (any, error) {
	var out any

	if err := yaml.UnmarshalWithOptions(data, &out, yaml.UseOrderedMap()); err != nil {
		return nil, err
	}

	return Canonical(out), nil
}
