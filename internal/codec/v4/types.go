package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeType reads a type wrapper such as
// {"Reference": {"fqname": "morphir/s-d-k:basics#int"}}. A Classic array
// or a bare variable name or fully qualified name is accepted as well.
func DecodeType(v jsonv.Value) (ir.V4Type, error) {
	switch t := v.(type) {
	case jsonv.Array:
		return fallback.DecodeType(t)
	case jsonv.String:
		if fq, ok := naming.ParseFQName(string(t)); ok {
			return ir.ReferenceType[ta]{FQName: fq}, nil
		}
		name := naming.ParseName(string(t))
		if name.IsEmpty() {
			return nil, codec.Malformed("variable shorthand %q has no name", string(t))
		}
		return ir.VariableType[ta]{Name: name}, nil
	}

	n, err := unwrap(v, codec.KindType)
	if err != nil {
		return nil, err
	}
	a, err := typeAttrs(n)
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "Variable":
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		return ir.VariableType[ta]{Attrs: a, Name: name}, nil
	case "Reference":
		fq, err := field(n, "fqname", DecodeFQName)
		if err != nil {
			return nil, err
		}
		args, err := optional(n, "args", list(DecodeType))
		if err != nil {
			return nil, err
		}
		return ir.ReferenceType[ta]{Attrs: a, FQName: fq, Args: args}, nil
	case "Tuple":
		elems, err := field(n, "elements", list(DecodeType))
		if err != nil {
			return nil, err
		}
		return ir.TupleType[ta]{Attrs: a, Elements: elems}, nil
	case "Record":
		fields, err := field(n, "fields", decodeFields)
		if err != nil {
			return nil, err
		}
		return ir.RecordType[ta]{Attrs: a, Fields: fields}, nil
	case "ExtensibleRecord":
		variable, err := field(n, "variable", DecodeName)
		if err != nil {
			return nil, err
		}
		fields, err := field(n, "fields", decodeFields)
		if err != nil {
			return nil, err
		}
		return ir.ExtensibleRecordType[ta]{Attrs: a, Variable: variable, Fields: fields}, nil
	case "Function":
		arg, err := field(n, "arg", DecodeType)
		if err != nil {
			return nil, err
		}
		res, err := field(n, "result", DecodeType)
		if err != nil {
			return nil, err
		}
		return ir.FunctionType[ta]{Attrs: a, Argument: arg, Result: res}, nil
	default: // Unit
		return ir.UnitType[ta]{Attrs: a}, nil
	}
}

// decodeFields reads record fields keyed by name: {"amount": type}.
func decodeFields(v jsonv.Value) ([]ir.Field[ta], error) {
	return keyed(func(key string, v jsonv.Value) (ir.Field[ta], error) {
		t, err := DecodeType(v)
		if err != nil {
			return ir.Field[ta]{}, err
		}
		return ir.Field[ta]{Name: naming.ParseName(key), Type: t}, nil
	})(v)
}

// EncodeType writes a type wrapper.
func (e *Encoder) EncodeType(t ir.V4Type) jsonv.Value {
	a := t.Attributes()
	node := func(tag string, obj jsonv.Object) jsonv.Value {
		return wrapper(tag, e.withAttrs(obj, TypeAttrCodec{}.EncodeAttrs(a), a.IsEmpty()))
	}
	switch n := t.(type) {
	case ir.VariableType[ta]:
		return node("Variable", jsonv.Object{jsonv.M("name", EncodeName(n.Name))})
	case ir.ReferenceType[ta]:
		obj := jsonv.Object{jsonv.M("fqname", EncodeFQName(n.FQName))}
		return node("Reference", e.withList(obj, "args", encodeList(n.Args, e.EncodeType)))
	case ir.TupleType[ta]:
		return node("Tuple", jsonv.Object{jsonv.M("elements", encodeList(n.Elements, e.EncodeType))})
	case ir.RecordType[ta]:
		return node("Record", jsonv.Object{jsonv.M("fields", e.encodeFields(n.Fields))})
	case ir.ExtensibleRecordType[ta]:
		return node("ExtensibleRecord", jsonv.Object{
			jsonv.M("variable", EncodeName(n.Variable)),
			jsonv.M("fields", e.encodeFields(n.Fields)),
		})
	case ir.FunctionType[ta]:
		return node("Function", jsonv.Object{
			jsonv.M("arg", e.EncodeType(n.Argument)),
			jsonv.M("result", e.EncodeType(n.Result)),
		})
	case ir.UnitType[ta]:
		return node("Unit", jsonv.Object{})
	default:
		panic(unsupported("type", t))
	}
}

func (e *Encoder) encodeFields(fields []ir.Field[ta]) jsonv.Object {
	obj := make(jsonv.Object, len(fields))
	for i, f := range fields {
		obj[i] = jsonv.M(f.Name.String(), e.EncodeType(f.Type))
	}
	return obj
}
