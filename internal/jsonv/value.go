package jsonv

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"unicode/utf16"
)

// Value is a sealed interface over the JSON kinds.
// Only Null, Bool, Number, String, Array and Object implement it.
type Value interface {
	jsonValue()
}

// Null is the JSON null.
type Null struct{}

func (Null) jsonValue() {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) jsonValue() {}

// Number is a JSON number in its lexical form.
type Number string

func (Number) jsonValue() {}

// String is a JSON string.
type String string

func (String) jsonValue() {}

// Array is a JSON array.
type Array []Value

func (Array) jsonValue() {}

// Object is a JSON object with members in document order.
type Object []Member

func (Object) jsonValue() {}

// Member is one key/value pair of an Object.
type Member struct {
	Key   string
	Value Value
}

// M is shorthand for constructing a Member.
func M(key string, value Value) Member {
	return Member{Key: key, Value: value}
}

// Int returns the Number for n.
func Int(n int64) Number {
	return Number(strconv.FormatInt(n, 10))
}

// Float returns the Number for f.
// NaN and infinities have no JSON form and are rejected.
func Float(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "", fmt.Errorf("float %v has no JSON representation", f)
	}
	return Number(strconv.FormatFloat(f, 'g', -1, 64)), nil
}

// Int64 parses the number as a signed 64-bit integer.
func (n Number) Int64() (int64, error) {
	return strconv.ParseInt(string(n), 10, 64)
}

// Float64 parses the number as a float64.
func (n Number) Float64() (float64, error) {
	return strconv.ParseFloat(string(n), 64)
}

// Get returns the value for key.
func (o Object) Get(key string) (Value, bool) {
	for _, m := range o {
		if m.Key == key {
			return m.Value, true
		}
	}
	return nil, false
}

// Has reports whether key is present.
func (o Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns keys in document order.
func (o Object) Keys() []string {
	keys := make([]string, len(o))
	for i, m := range o {
		keys[i] = m.Key
	}
	return keys
}

// SortedKeys returns keys in RFC 8785 canonical order (UTF-16 code units).
// Go's string comparison uses UTF-8, which orders some keys differently.
func (o Object) SortedKeys() []string {
	keys := o.Keys()
	slices.SortFunc(keys, compareKeysRFC8785)
	return keys
}

func compareKeysRFC8785(a, b string) int {
	a16 := utf16.Encode([]rune(a))
	b16 := utf16.Encode([]rune(b))
	return slices.Compare(a16, b16)
}

// Kind names the JSON kind of v for error messages.
func Kind(v Value) string {
	switch v.(type) {
	case nil:
		return "missing"
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return fmt.Sprintf("%T", v)
	}
}

// IsNull reports whether v is nil or Null.
func IsNull(v Value) bool {
	switch v.(type) {
	case nil, Null:
		return true
	}
	return false
}

// IsEmpty reports whether v is null, an empty array or an empty object.
func IsEmpty(v Value) bool {
	switch val := v.(type) {
	case nil, Null:
		return true
	case Array:
		return len(val) == 0
	case Object:
		return len(val) == 0
	}
	return false
}
