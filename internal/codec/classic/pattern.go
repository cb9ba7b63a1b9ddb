package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

var patternArity = map[string]int{
	"WildcardPattern": 1, "AsPattern": 3, "TuplePattern": 2, "ConstructorPattern": 3,
	"EmptyListPattern": 1, "HeadTailPattern": 3, "LiteralPattern": 2, "UnitPattern": 1,
}

// DecodePattern reads a pattern such as ["AsPattern", attrs, pattern, name].
// Patterns carry value attributes.
func (c *Codec[TA, VA]) DecodePattern(v jsonv.Value) (ir.Pattern[VA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindPattern)
	if err != nil {
		return nil, err
	}
	if err := codec.Arity(tag, f, patternArity[tag]); err != nil {
		return nil, err
	}
	a, err := c.valueAttrs.DecodeAttrs(f[0])
	if err != nil {
		return nil, field(err, 0, tag)
	}

	switch tag {
	case "WildcardPattern":
		return ir.WildcardPattern[VA]{Attrs: a}, nil
	case "AsPattern":
		p, err := c.DecodePattern(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		name, err := DecodeName(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.AsPattern[VA]{Attrs: a, Pattern: p, Name: name}, nil
	case "TuplePattern":
		elems, err := decodeList(f[1], "tuple pattern elements", c.DecodePattern)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.TuplePattern[VA]{Attrs: a, Elements: elems}, nil
	case "ConstructorPattern":
		fq, err := DecodeFQName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		args, err := decodeList(f[2], "constructor pattern arguments", c.DecodePattern)
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.ConstructorPattern[VA]{Attrs: a, FQName: fq, Args: args}, nil
	case "EmptyListPattern":
		return ir.EmptyListPattern[VA]{Attrs: a}, nil
	case "HeadTailPattern":
		head, err := c.DecodePattern(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		tail, err := c.DecodePattern(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.HeadTailPattern[VA]{Attrs: a, Head: head, Tail: tail}, nil
	case "LiteralPattern":
		lit, err := DecodeLiteral(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.LiteralPattern[VA]{Attrs: a, Literal: lit}, nil
	default: // UnitPattern
		return ir.UnitPattern[VA]{Attrs: a}, nil
	}
}

// EncodePattern writes a pattern.
func (c *Codec[TA, VA]) EncodePattern(p ir.Pattern[VA]) jsonv.Value {
	tag := func(name string, fields ...jsonv.Value) jsonv.Value {
		return append(jsonv.Array{jsonv.String(name), c.valueAttrs.EncodeAttrs(p.Attributes())}, fields...)
	}
	switch n := p.(type) {
	case ir.WildcardPattern[VA]:
		return tag("WildcardPattern")
	case ir.AsPattern[VA]:
		return tag("AsPattern", c.EncodePattern(n.Pattern), EncodeName(n.Name))
	case ir.TuplePattern[VA]:
		return tag("TuplePattern", encodeList(n.Elements, c.EncodePattern))
	case ir.ConstructorPattern[VA]:
		return tag("ConstructorPattern", EncodeFQName(n.FQName), encodeList(n.Args, c.EncodePattern))
	case ir.EmptyListPattern[VA]:
		return tag("EmptyListPattern")
	case ir.HeadTailPattern[VA]:
		return tag("HeadTailPattern", c.EncodePattern(n.Head), c.EncodePattern(n.Tail))
	case ir.LiteralPattern[VA]:
		return tag("LiteralPattern", EncodeLiteral(n.Literal))
	case ir.UnitPattern[VA]:
		return tag("UnitPattern")
	default:
		panic(unsupported("pattern", p))
	}
}
