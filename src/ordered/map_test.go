package ordered

import (
	"bytes"
	"encoding/json"
	"slices"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	m := New[int]()
	m.Set("zulu", 1)
	m.Set("alpha", 2)
	m.Set("mike", 3)
	m.Set("zulu", 4)

	want := []string{"zulu", "alpha", "mike"}
	if got := m.Keys(); !slices.Equal(got, want) {
		t.Fatalf("keys = %v, want %v", got, want)
	}

	if v, _ := m.Get("zulu"); v != 4 {
		t.Fatalf("zulu = %d, want 4", v)
	}

	var visited []string
	for k := range m.All() {
		visited = append(visited, k)
	}
	if !slices.Equal(visited, want) {
		t.Fatalf("All visited %v, want %v", visited, want)
	}
}

func TestNilMapIsEmpty(t *testing.T) {
	t.Parallel()

	var m *Map[string]
	if m.Len() != 0 || m.Has("x") || m.Keys() != nil {
		t.Fatal("nil map should behave as empty")
	}
	for range m.All() {
		t.Fatal("nil map should not yield")
	}
}

func TestMapMarshalJSONKeepsOrder(t *testing.T) {
	t.Parallel()

	m := New[any]()
	m.Set("b", "<tag> & more")
	m.Set("a", []any{int64(1), 2.5})

	nested := New[any]()
	nested.Set("z", true)
	m.Set("c", nested)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(m); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := `{"b":"<tag> & more","a":[1,2.5],"c":{"z":true}}` + "\n"
	if buf.String() != want {
		t.Fatalf("json = %s, want %s", buf.String(), want)
	}

	// json.Marshal compacts Marshaler output with HTML escaping on.
	data, err := json.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	escaped := `{"b":"\u003ctag\u003e \u0026 more","a":[1,2.5],"c":{"z":true}}`
	if string(data) != escaped {
		t.Fatalf("json.Marshal = %s, want %s", data, escaped)
	}
}

func TestMapMarshalYAMLOrder(t *testing.T) {
	t.Parallel()

	m := New[any]()
	m.Set("second", "b")
	m.Set("first", "a")

	data, err := yaml.Marshal(m)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	out := string(data)
	if strings.Index(out, "second") > strings.Index(out, "first") {
		t.Fatalf("yaml lost insertion order:\n%s", out)
	}
}
