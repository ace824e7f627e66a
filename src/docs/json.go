package docs

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/masnyjimmy/specdoc/src/ordered"
)

// parseJSON walks the token stream so that object keys keep document order.
func parseJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	value, err := decodeJSONValue(dec)
	if err != nil {
		return nil, err
	}

	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unexpected data after top-level value")
	}

	return value, nil
}

func decodeJSONValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeJSONObject(dec)
		case '[':
			return decodeJSONArray(dec)
		default:
			return nil, fmt.Errorf("unexpected delimiter %v", t)
		}
	case json.Number:
		return Canonical(t), nil
	default:
		// string, bool or nil
		return t, nil
	}
}

func decodeJSONObject(dec *json.Decoder) (any, error) {
	out := ordered.New[any]()

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}

		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("object key must be a string, got %T", tok)
		}

		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}

		out.Set(key, value)
	}

	// closing '}'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return out, nil
}

func decodeJSONArray(dec *json.Decoder) (any, error) {
	out := make([]any, 0)

	for dec.More() {
		value, err := decodeJSONValue(dec)
		if err != nil {
			return nil, err
		}
		out = append(out, value)
	}

	// closing ']'
	if _, err := dec.Token(); err != nil {
		return nil, err
	}

	return out, nil
}
