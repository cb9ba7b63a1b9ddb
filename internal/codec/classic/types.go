package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// typeArity counts the positional fields of each type tag, attributes
// included.
var typeArity = map[string]int{
	"Variable": 2, "Reference": 3, "Tuple": 2, "Record": 2,
	"ExtensibleRecord": 3, "Function": 3, "Unit": 1,
}

// DecodeType reads a type expression such as ["Reference", attrs, fqname, [args]].
func (c *Codec[TA, VA]) DecodeType(v jsonv.Value) (ir.Type[TA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindType)
	if err != nil {
		return nil, err
	}
	if err := codec.Arity(tag, f, typeArity[tag]); err != nil {
		return nil, err
	}
	a, err := c.typeAttrs.DecodeAttrs(f[0])
	if err != nil {
		return nil, field(err, 0, tag)
	}

	switch tag {
	case "Variable":
		name, err := DecodeName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.VariableType[TA]{Attrs: a, Name: name}, nil
	case "Reference":
		fq, err := DecodeFQName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		args, err := decodeList(f[2], "type arguments", c.DecodeType)
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.ReferenceType[TA]{Attrs: a, FQName: fq, Args: args}, nil
	case "Tuple":
		elems, err := decodeList(f[1], "tuple elements", c.DecodeType)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.TupleType[TA]{Attrs: a, Elements: elems}, nil
	case "Record":
		fields, err := decodeList(f[1], "record fields", c.decodeField)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.RecordType[TA]{Attrs: a, Fields: fields}, nil
	case "ExtensibleRecord":
		name, err := DecodeName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		fields, err := decodeList(f[2], "record fields", c.decodeField)
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.ExtensibleRecordType[TA]{Attrs: a, Variable: name, Fields: fields}, nil
	case "Function":
		arg, err := c.DecodeType(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		res, err := c.DecodeType(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.FunctionType[TA]{Attrs: a, Argument: arg, Result: res}, nil
	default: // Unit
		return ir.UnitType[TA]{Attrs: a}, nil
	}
}

// decodeField reads a record field, either [name, type] or
// {"name": name, "tpe": type} ("ty" and "type" are accepted for "tpe").
func (c *Codec[TA, VA]) decodeField(v jsonv.Value) (ir.Field[TA], error) {
	var nameV, typeV jsonv.Value
	var typeKey any = 1
	switch fv := v.(type) {
	case jsonv.Array:
		var err error
		if nameV, typeV, err = pair(fv, "record field"); err != nil {
			return ir.Field[TA]{}, err
		}
	case jsonv.Object:
		var ok bool
		if nameV, ok = fv.Get("name"); !ok {
			return ir.Field[TA]{}, codec.Malformed("record field is missing field %q", "name")
		}
		for _, key := range []string{"tpe", "ty", "type"} {
			if typeV, ok = fv.Get(key); ok {
				typeKey = key
				break
			}
		}
		if typeV == nil {
			return ir.Field[TA]{}, codec.Malformed("record field is missing field %q", "tpe")
		}
	default:
		return ir.Field[TA]{}, codec.Malformed("expected array for record field, got %s", jsonv.Kind(v))
	}

	name, err := DecodeName(nameV)
	if err != nil {
		if _, isObj := v.(jsonv.Object); isObj {
			return ir.Field[TA]{}, codec.At(err, "name")
		}
		return ir.Field[TA]{}, codec.At(err, 0)
	}
	t, err := c.DecodeType(typeV)
	if err != nil {
		return ir.Field[TA]{}, codec.At(err, typeKey)
	}
	return ir.Field[TA]{Name: name, Type: t}, nil
}

// EncodeType writes a type expression.
func (c *Codec[TA, VA]) EncodeType(t ir.Type[TA]) jsonv.Value {
	tag := func(name string, fields ...jsonv.Value) jsonv.Value {
		return append(jsonv.Array{jsonv.String(name), c.typeAttrs.EncodeAttrs(t.Attributes())}, fields...)
	}
	switch n := t.(type) {
	case ir.VariableType[TA]:
		return tag("Variable", EncodeName(n.Name))
	case ir.ReferenceType[TA]:
		return tag("Reference", EncodeFQName(n.FQName), encodeList(n.Args, c.EncodeType))
	case ir.TupleType[TA]:
		return tag("Tuple", encodeList(n.Elements, c.EncodeType))
	case ir.RecordType[TA]:
		return tag("Record", encodeList(n.Fields, c.encodeField))
	case ir.ExtensibleRecordType[TA]:
		return tag("ExtensibleRecord", EncodeName(n.Variable), encodeList(n.Fields, c.encodeField))
	case ir.FunctionType[TA]:
		return tag("Function", c.EncodeType(n.Argument), c.EncodeType(n.Result))
	case ir.UnitType[TA]:
		return tag("Unit")
	default:
		panic(unsupported("type", t))
	}
}

func (c *Codec[TA, VA]) encodeField(f ir.Field[TA]) jsonv.Value {
	return jsonv.Array{EncodeName(f.Name), c.EncodeType(f.Type)}
}

// encodeOptionalType writes t, or null when t is nil.
func (c *Codec[TA, VA]) encodeOptionalType(t ir.Type[TA]) jsonv.Value {
	if t == nil {
		return jsonv.Null{}
	}
	return c.EncodeType(t)
}

// decodeOptionalType reads a type or null.
func (c *Codec[TA, VA]) decodeOptionalType(v jsonv.Value) (ir.Type[TA], error) {
	if jsonv.IsNull(v) {
		return nil, nil
	}
	return c.DecodeType(v)
}
