package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodeLiteral reads {"IntegerLiteral": {"value": 42}} and the other
// literal wrappers. Classic ["WholeNumberLiteral", 42] arrays are accepted.
func DecodeLiteral(v jsonv.Value) (ir.Literal, error) {
	if arr, ok := v.(jsonv.Array); ok {
		return classic.DecodeLiteral(arr)
	}
	n, err := unwrap(v, codec.KindLiteral)
	if err != nil {
		return nil, err
	}
	return field(n, "value", func(v jsonv.Value) (ir.Literal, error) {
		return classic.DecodeLiteralValue(n.tag, v)
	})
}

// EncodeLiteral writes a literal wrapper with its canonical tag.
func EncodeLiteral(lit ir.Literal) jsonv.Value {
	tag, payload := classic.EncodeLiteralValue(lit)
	return wrapper(tag, jsonv.Object{jsonv.M("value", payload)})
}
