package v4

import "github.com/roach88/morphir-ir/internal/jsonv"

// EncodeOption configures an Encoder.
type EncodeOption func(*Encoder)

// Compact leaves out empty attributes, empty argument lists and empty docs.
// It is the default.
func Compact() EncodeOption {
	return func(e *Encoder) { e.expanded = false }
}

// Expanded writes every optional field, empty or not.
func Expanded() EncodeOption {
	return func(e *Encoder) { e.expanded = true }
}

// Encoder writes V4 JSON. The emission mode is fixed at construction, so an
// Encoder is safe for concurrent use and encoders with different modes never
// interfere.
type Encoder struct {
	expanded bool
}

// NewEncoder returns an Encoder with opts applied over the compact default.
func NewEncoder(opts ...EncodeOption) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// IsExpanded reports whether e writes empty optional fields.
func (e *Encoder) IsExpanded() bool { return e.expanded }

// withAttrs appends the "attrs" member unless it is empty and e is compact.
func (e *Encoder) withAttrs(obj jsonv.Object, attrs jsonv.Value, empty bool) jsonv.Object {
	if empty && !e.expanded {
		return obj
	}
	return append(obj, jsonv.M("attrs", attrs))
}

// withList appends a list member unless it is empty and e is compact.
func (e *Encoder) withList(obj jsonv.Object, key string, list jsonv.Array) jsonv.Object {
	if len(list) == 0 && !e.expanded {
		return obj
	}
	return append(obj, jsonv.M(key, list))
}

// withDoc appends a "doc" member unless doc is empty and e is compact.
func (e *Encoder) withDoc(obj jsonv.Object, doc string) jsonv.Object {
	if doc == "" && !e.expanded {
		return obj
	}
	return append(obj, jsonv.M("doc", jsonv.String(doc)))
}
