package classic

import (
	"strconv"
	"unicode/utf8"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodeLiteral reads ["BoolLiteral", true], ["WholeNumberLiteral", 42] and
// the other literal forms.
func DecodeLiteral(v jsonv.Value) (ir.Literal, error) {
	tag, fields, err := codec.TaggedArray(v, codec.KindLiteral)
	if err != nil {
		return nil, err
	}
	if err := codec.Arity(tag, fields, 1); err != nil {
		return nil, err
	}
	lit, err := DecodeLiteralValue(tag, fields[0])
	if err != nil {
		return nil, codec.Tagged(codec.At(err, 1), tag)
	}
	return lit, nil
}

// DecodeLiteralValue reads the payload of a literal whose canonical tag is
// already known. The V4 codec shares it.
func DecodeLiteralValue(tag string, v jsonv.Value) (ir.Literal, error) {
	switch tag {
	case "BoolLiteral":
		b, err := codec.AsBool(v, tag)
		if err != nil {
			return nil, err
		}
		return ir.BoolLiteral{Value: b}, nil
	case "CharLiteral":
		s, err := codec.AsString(v, tag)
		if err != nil {
			return nil, err
		}
		if utf8.RuneCountInString(s) != 1 {
			return nil, codec.Mismatch("CharLiteral expects a single character, got %q", s)
		}
		r, _ := utf8.DecodeRuneInString(s)
		return ir.CharLiteral{Value: r}, nil
	case "StringLiteral":
		s, err := codec.AsString(v, tag)
		if err != nil {
			return nil, err
		}
		return ir.StringLiteral{Value: s}, nil
	case "IntegerLiteral":
		n, err := codec.AsInt64(v, tag)
		if err != nil {
			return nil, err
		}
		return ir.IntegerLiteral{Value: n}, nil
	case "FloatLiteral":
		f, err := codec.AsFloat64(v, tag)
		if err != nil {
			return nil, err
		}
		return ir.FloatLiteral{Value: f}, nil
	case "DecimalLiteral":
		var text string
		switch d := v.(type) {
		case jsonv.String:
			text = string(d)
		case jsonv.Number:
			text = string(d)
		default:
			return nil, codec.Malformed("expected string for DecimalLiteral, got %s", jsonv.Kind(v))
		}
		lit, err := ir.NewDecimalLiteral(text)
		if err != nil {
			return nil, codec.Mismatch("%v", err)
		}
		return lit, nil
	}
	return nil, codec.Malformed("unknown literal tag %q", tag)
}

// EncodeLiteral writes a literal. Integers use the WholeNumberLiteral tag
// that Classic readers expect.
func EncodeLiteral(lit ir.Literal) jsonv.Value {
	tag, payload := EncodeLiteralValue(lit)
	if tag == "IntegerLiteral" {
		tag = "WholeNumberLiteral"
	}
	return jsonv.Array{jsonv.String(tag), payload}
}

// EncodeLiteralValue returns the canonical tag and payload of a literal.
func EncodeLiteralValue(lit ir.Literal) (string, jsonv.Value) {
	switch l := lit.(type) {
	case ir.BoolLiteral:
		return "BoolLiteral", jsonv.Bool(l.Value)
	case ir.CharLiteral:
		return "CharLiteral", jsonv.String(string(l.Value))
	case ir.StringLiteral:
		return "StringLiteral", jsonv.String(l.Value)
	case ir.IntegerLiteral:
		return "IntegerLiteral", jsonv.Int(l.Value)
	case ir.FloatLiteral:
		n, err := jsonv.Float(l.Value)
		if err != nil {
			// NaN and infinities have no JSON form; the raw text makes
			// jsonv.Marshal fail instead of writing a value that cannot be
			// read back.
			return "FloatLiteral", jsonv.Number(strconv.FormatFloat(l.Value, 'g', -1, 64))
		}
		return "FloatLiteral", n
	case ir.DecimalLiteral:
		return "DecimalLiteral", jsonv.String(l.Value)
	default:
		panic(unsupported("literal", lit))
	}
}
