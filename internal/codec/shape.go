package codec

import (
	"math"
	"strings"

	"github.com/roach88/morphir-ir/internal/jsonv"
)

// AsArray returns v as an array.
func AsArray(v jsonv.Value, what string) (jsonv.Array, error) {
	arr, ok := v.(jsonv.Array)
	if !ok {
		return nil, Malformed("expected array for %s, got %s", what, jsonv.Kind(v))
	}
	return arr, nil
}

// AsObject returns v as an object.
func AsObject(v jsonv.Value, what string) (jsonv.Object, error) {
	obj, ok := v.(jsonv.Object)
	if !ok {
		return nil, Malformed("expected object for %s, got %s", what, jsonv.Kind(v))
	}
	return obj, nil
}

// AsString returns v as a string.
func AsString(v jsonv.Value, what string) (string, error) {
	s, ok := v.(jsonv.String)
	if !ok {
		return "", Malformed("expected string for %s, got %s", what, jsonv.Kind(v))
	}
	return string(s), nil
}

// AsBool returns v as a boolean.
func AsBool(v jsonv.Value, what string) (bool, error) {
	b, ok := v.(jsonv.Bool)
	if !ok {
		return false, Malformed("expected boolean for %s, got %s", what, jsonv.Kind(v))
	}
	return bool(b), nil
}

// AsInt64 returns v as a whole number. A number with a fraction is a field
// type mismatch rather than a malformed shape.
func AsInt64(v jsonv.Value, what string) (int64, error) {
	n, ok := v.(jsonv.Number)
	if !ok {
		return 0, Malformed("expected number for %s, got %s", what, jsonv.Kind(v))
	}
	i, err := n.Int64()
	if err == nil {
		return i, nil
	}
	// 42.0 and 4.2e1 are whole numbers written as floats.
	f, ferr := n.Float64()
	if ferr == nil && f == math.Trunc(f) && math.Abs(f) <= 1<<53 {
		return int64(f), nil
	}
	return 0, Mismatch("expected whole number for %s, got %s", what, string(n))
}

// AsFloat64 returns v as a float.
func AsFloat64(v jsonv.Value, what string) (float64, error) {
	n, ok := v.(jsonv.Number)
	if !ok {
		return 0, Malformed("expected number for %s, got %s", what, jsonv.Kind(v))
	}
	f, err := n.Float64()
	if err != nil {
		return 0, Mismatch("number %s out of range for %s", string(n), what)
	}
	return f, nil
}

// TaggedArray splits a Classic node ["Tag", field...] into its canonical
// tag and fields.
func TaggedArray(v jsonv.Value, kind NodeKind) (string, jsonv.Array, error) {
	arr, ok := v.(jsonv.Array)
	if !ok {
		return "", nil, Malformed("expected tagged array for %s, got %s", kind, jsonv.Kind(v))
	}
	if len(arr) == 0 {
		return "", nil, Malformed("empty array for %s", kind)
	}
	raw, ok := arr[0].(jsonv.String)
	if !ok {
		return "", nil, At(Malformed("expected string tag for %s, got %s", kind, jsonv.Kind(arr[0])), 0)
	}
	tag, ok := LookupTag(kind, string(raw))
	if !ok {
		return "", nil, At(UnknownTag(kind, string(raw)), 0)
	}
	return tag, arr[1:], nil
}

// Arity checks that a Classic node has exactly n positional fields.
func Arity(tag string, fields jsonv.Array, n int) error {
	if len(fields) != n {
		return Malformed("%s expects %d fields, got %d", tag, n, len(fields)).WithTag(tag)
	}
	return nil
}

// Wrapper splits a V4 node {"Tag": {...}} into its canonical tag and body.
func Wrapper(v jsonv.Value, kind NodeKind) (string, jsonv.Object, error) {
	obj, ok := v.(jsonv.Object)
	if !ok {
		return "", nil, Malformed("expected object wrapper for %s, got %s", kind, jsonv.Kind(v))
	}
	if len(obj) != 1 {
		return "", nil, Malformed("expected single-key object wrapper for %s, got %d keys", kind, len(obj))
	}
	tag, ok := LookupTag(kind, obj[0].Key)
	if !ok {
		return "", nil, UnknownTag(kind, obj[0].Key)
	}
	if jsonv.IsNull(obj[0].Value) {
		return tag, nil, nil
	}
	body, ok := obj[0].Value.(jsonv.Object)
	if !ok {
		return "", nil, At(Malformed("expected object body for %s, got %s", tag, jsonv.Kind(obj[0].Value)).WithTag(tag), obj[0].Key)
	}
	return tag, body, nil
}

// Lookup finds a field by its kebab-case name, falling back to the
// camelCase spelling. It returns the key that matched.
func Lookup(body jsonv.Object, name string) (jsonv.Value, string, bool) {
	if v, ok := body.Get(name); ok {
		return v, name, true
	}
	if camel := KebabToCamel(name); camel != name {
		if v, ok := body.Get(camel); ok {
			return v, camel, true
		}
	}
	return nil, name, false
}

// Require is Lookup for mandatory fields.
func Require(body jsonv.Object, tag, name string) (jsonv.Value, string, error) {
	v, key, ok := Lookup(body, name)
	if !ok {
		return nil, key, Malformed("%s is missing field %q", tag, name).WithTag(tag)
	}
	return v, key, nil
}

// KebabToCamel converts "then-branch" to "thenBranch".
func KebabToCamel(s string) string {
	if !strings.Contains(s, "-") {
		return s
	}
	parts := strings.Split(s, "-")
	var b strings.Builder
	b.WriteString(parts[0])
	for _, p := range parts[1:] {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}
