package ordered

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/goccy/go-yaml"
)

// Map is a string keyed map that remembers insertion order.
// The zero value is not usable, use New.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

func New[V any]() *Map[V] {
	return &Map[V]{
		values: make(map[string]V),
	}
}

// Set stores value under key. Re-setting an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if _, has := m.values[key]; !has {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

func (m *Map[V]) Get(key string) (value V, ok bool) {
	if m == nil {
		return
	}
	value, ok = m.values[key]
	return
}

func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return append([]string(nil), m.keys...)
}

// All iterates entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteByte('{')

	for idx, k := range m.keys {
		if idx > 0 {
			buf.WriteByte(',')
		}

		key, err := marshalJSON(k)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')

		value, err := marshalJSON(m.values[k])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.InterfaceMarshaler for goccy/go-yaml
func (m *Map[V]) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, yaml.MapItem{Key: k, Value: m.values[k]})
	}
	return out, nil
}

// marshalJSON encodes v without escaping HTML characters. The result stays
// unescaped only when the caller encodes through an Encoder with
// SetEscapeHTML(false); json.Marshal escapes it again while compacting.
func marshalJSON(v any) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
