package classic

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// AttrCodec converts one attribute type to and from its JSON form.
type AttrCodec[A any] interface {
	DecodeAttrs(v jsonv.Value) (A, error)
	EncodeAttrs(a A) jsonv.Value
}

// OpaqueAttrs keeps Classic attributes as raw JSON. null, [] and {} all
// decode to the empty attribute, which encodes as {}.
type OpaqueAttrs struct{}

// DecodeAttrs implements AttrCodec.
func (OpaqueAttrs) DecodeAttrs(v jsonv.Value) (ir.ClassicAttrs, error) {
	return ir.NewClassicAttrs(v), nil
}

// EncodeAttrs implements AttrCodec.
func (OpaqueAttrs) EncodeAttrs(a ir.ClassicAttrs) jsonv.Value {
	if a.IsEmpty() {
		return jsonv.Object{}
	}
	return a.Raw
}
