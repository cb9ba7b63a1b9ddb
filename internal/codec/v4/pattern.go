package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodePattern reads a pattern wrapper such as
// {"AsPattern": {"pattern": {"WildcardPattern": {}}, "name": "x"}}.
func DecodePattern(v jsonv.Value) (ir.V4Pattern, error) {
	if arr, ok := v.(jsonv.Array); ok {
		return fallback.DecodePattern(arr)
	}
	n, err := unwrap(v, codec.KindPattern)
	if err != nil {
		return nil, err
	}
	a, err := valueAttrs(n)
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "WildcardPattern":
		return ir.WildcardPattern[va]{Attrs: a}, nil
	case "AsPattern":
		p, err := field(n, "pattern", DecodePattern)
		if err != nil {
			return nil, err
		}
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		return ir.AsPattern[va]{Attrs: a, Pattern: p, Name: name}, nil
	case "TuplePattern":
		elems, err := field(n, "elements", list(DecodePattern))
		if err != nil {
			return nil, err
		}
		return ir.TuplePattern[va]{Attrs: a, Elements: elems}, nil
	case "ConstructorPattern":
		fq, err := field(n, "fqname", DecodeFQName)
		if err != nil {
			return nil, err
		}
		args, err := optional(n, "args", list(DecodePattern))
		if err != nil {
			return nil, err
		}
		return ir.ConstructorPattern[va]{Attrs: a, FQName: fq, Args: args}, nil
	case "EmptyListPattern":
		return ir.EmptyListPattern[va]{Attrs: a}, nil
	case "HeadTailPattern":
		head, err := field(n, "head", DecodePattern)
		if err != nil {
			return nil, err
		}
		tail, err := field(n, "tail", DecodePattern)
		if err != nil {
			return nil, err
		}
		return ir.HeadTailPattern[va]{Attrs: a, Head: head, Tail: tail}, nil
	case "LiteralPattern":
		lit, err := field(n, "literal", DecodeLiteral)
		if err != nil {
			return nil, err
		}
		return ir.LiteralPattern[va]{Attrs: a, Literal: lit}, nil
	default: // UnitPattern
		return ir.UnitPattern[va]{Attrs: a}, nil
	}
}

// EncodePattern writes a pattern wrapper.
func (e *Encoder) EncodePattern(p ir.V4Pattern) jsonv.Value {
	a := p.Attributes()
	node := func(tag string, obj jsonv.Object) jsonv.Value {
		return wrapper(tag, e.withAttrs(obj, ValueAttrCodec{}.EncodeAttrs(a), a.IsEmpty()))
	}
	switch n := p.(type) {
	case ir.WildcardPattern[va]:
		return node("WildcardPattern", jsonv.Object{})
	case ir.AsPattern[va]:
		return node("AsPattern", jsonv.Object{
			jsonv.M("pattern", e.EncodePattern(n.Pattern)),
			jsonv.M("name", EncodeName(n.Name)),
		})
	case ir.TuplePattern[va]:
		return node("TuplePattern", jsonv.Object{jsonv.M("elements", encodeList(n.Elements, e.EncodePattern))})
	case ir.ConstructorPattern[va]:
		obj := jsonv.Object{jsonv.M("fqname", EncodeFQName(n.FQName))}
		return node("ConstructorPattern", e.withList(obj, "args", encodeList(n.Args, e.EncodePattern)))
	case ir.EmptyListPattern[va]:
		return node("EmptyListPattern", jsonv.Object{})
	case ir.HeadTailPattern[va]:
		return node("HeadTailPattern", jsonv.Object{
			jsonv.M("head", e.EncodePattern(n.Head)),
			jsonv.M("tail", e.EncodePattern(n.Tail)),
		})
	case ir.LiteralPattern[va]:
		return node("LiteralPattern", jsonv.Object{jsonv.M("literal", EncodeLiteral(n.Literal))})
	case ir.UnitPattern[va]:
		return node("UnitPattern", jsonv.Object{})
	default:
		panic(unsupported("pattern", p))
	}
}
