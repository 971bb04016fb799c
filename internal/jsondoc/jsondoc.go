// Package jsondoc provides tolerant accessors over untyped JSON documents.
//
// The content API returns loosely-shaped payloads: any field may be missing,
// null, or carry the wrong type. Every accessor here is total — bad input
// yields the supplied default, never an error.
package jsondoc

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Value wraps one node of a decoded JSON document.
type Value struct {
	raw any
}

// Wrap adapts an already-decoded value.
func Wrap(v any) Value {
	return Value{raw: v}
}

// Decode parses a JSON payload into a Value.
func Decode(data []byte) (Value, error) {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return Value{}, err
	}
	return Value{raw: v}, nil
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any {
	return v.raw
}

// Exists reports whether the node is present and non-null.
func (v Value) Exists() bool {
	return v.raw != nil
}

// Get walks nested object keys. Any miss along the path yields a null Value.
func (v Value) Get(keys ...string) Value {
	cur := v.raw
	for _, key := range keys {
		obj, ok := cur.(map[string]any)
		if !ok {
			return Value{}
		}
		cur = obj[key]
	}
	return Value{raw: cur}
}

// Index returns the i-th element of an array, or a null Value.
func (v Value) Index(i int) Value {
	items, ok := v.raw.([]any)
	if !ok || i < 0 || i >= len(items) {
		return Value{}
	}
	return Value{raw: items[i]}
}

// First unwraps the single-record seeding used by section arrays: the first
// element of an array, or a null Value when the node is not an array.
func (v Value) First() Value {
	return v.Index(0)
}

// IsArr reports whether the node is an array.
func (v Value) IsArr() bool {
	_, ok := v.raw.([]any)
	return ok
}

// Arr returns the elements of an array node, or an empty slice.
func (v Value) Arr() []Value {
	items, ok := v.raw.([]any)
	if !ok {
		return []Value{}
	}
	out := make([]Value, len(items))
	for i, item := range items {
		out[i] = Value{raw: item}
	}
	return out
}

// Str returns the node when it is a string, else def. No coercion.
func (v Value) Str(def string) string {
	if s, ok := v.raw.(string); ok {
		return s
	}
	return def
}

// Stringify coerces string, number, and bool nodes to their string form,
// returning def for anything else.
func (v Value) Stringify(def string) string {
	switch val := v.raw.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return def
	}
}

// Num returns a numeric node, else def.
func (v Value) Num(def float64) float64 {
	if f, ok := v.raw.(float64); ok {
		return f
	}
	return def
}

// Bool reports loose truthiness: false for null, false, zero, and "".
func (v Value) Bool() bool {
	switch val := v.raw.(type) {
	case bool:
		return val
	case float64:
		return val != 0
	case string:
		return val != ""
	default:
		return v.raw != nil
	}
}

// Strings coerces the elements of an array node to strings, dropping the
// empty ones.
func (v Value) Strings() []string {
	items := v.Arr()
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := item.Stringify(""); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// Paragraphs normalizes free-form copy into a paragraph list: an array keeps
// its non-empty entries, a string splits on newlines with each line trimmed.
func (v Value) Paragraphs() []string {
	if v.IsArr() {
		return v.Strings()
	}
	s, ok := v.raw.(string)
	if !ok {
		return []string{}
	}
	out := []string{}
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}
	return out
}

// Coalesce returns the first present value, or a null Value.
func Coalesce(vals ...Value) Value {
	for _, v := range vals {
		if v.Exists() {
			return v
		}
	}
	return Value{}
}

// FirstNonEmpty returns the first non-empty string, or "".
func FirstNonEmpty(vals ...string) string {
	for _, s := range vals {
		if s != "" {
			return s
		}
	}
	return ""
}
