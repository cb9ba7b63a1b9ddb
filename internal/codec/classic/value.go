package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

var valueArity = map[string]int{
	"Literal": 2, "Constructor": 2, "Tuple": 2, "List": 2, "Record": 2,
	"Variable": 2, "Reference": 2, "Field": 3, "FieldFunction": 2, "Apply": 3,
	"Lambda": 3, "LetDefinition": 4, "LetRecursion": 3, "Destructure": 4,
	"IfThenElse": 4, "PatternMatch": 3, "UpdateRecord": 3, "Unit": 1,
	"Hole": 3, "Native": 3, "External": 3,
}

// DecodeValue reads a value expression such as ["Apply", attrs, fn, arg].
func (c *Codec[TA, VA]) DecodeValue(v jsonv.Value) (ir.Value[TA, VA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindValue)
	if err != nil {
		return nil, err
	}
	if err := codec.Arity(tag, f, valueArity[tag]); err != nil {
		return nil, err
	}
	a, err := c.valueAttrs.DecodeAttrs(f[0])
	if err != nil {
		return nil, field(err, 0, tag)
	}

	switch tag {
	case "Literal":
		lit, err := DecodeLiteral(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.LiteralValue[TA, VA]{Attrs: a, Literal: lit}, nil
	case "Constructor":
		fq, err := DecodeFQName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.ConstructorValue[TA, VA]{Attrs: a, FQName: fq}, nil
	case "Tuple":
		elems, err := decodeList(f[1], "tuple elements", c.DecodeValue)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.TupleValue[TA, VA]{Attrs: a, Elements: elems}, nil
	case "List":
		items, err := decodeList(f[1], "list items", c.DecodeValue)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.ListValue[TA, VA]{Attrs: a, Items: items}, nil
	case "Record":
		fields, err := decodeList(f[1], "record fields", c.decodeRecordEntry)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.RecordValue[TA, VA]{Attrs: a, Fields: fields}, nil
	case "Variable":
		name, err := DecodeName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.VariableValue[TA, VA]{Attrs: a, Name: name}, nil
	case "Reference":
		fq, err := DecodeFQName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.ReferenceValue[TA, VA]{Attrs: a, FQName: fq}, nil
	case "Field":
		rec, err := c.DecodeValue(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		name, err := DecodeName(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.FieldValue[TA, VA]{Attrs: a, Record: rec, Name: name}, nil
	case "FieldFunction":
		name, err := DecodeName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.FieldFunctionValue[TA, VA]{Attrs: a, Name: name}, nil
	case "Apply":
		fn, err := c.DecodeValue(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		arg, err := c.DecodeValue(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.ApplyValue[TA, VA]{Attrs: a, Function: fn, Argument: arg}, nil
	case "Lambda":
		p, err := c.DecodePattern(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		body, err := c.DecodeValue(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.LambdaValue[TA, VA]{Attrs: a, Pattern: p, Body: body}, nil
	case "LetDefinition":
		name, err := DecodeName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		def, err := c.DecodeValueDefinition(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		in, err := c.DecodeValue(f[3])
		if err != nil {
			return nil, field(err, 3, tag)
		}
		return ir.LetDefinitionValue[TA, VA]{Attrs: a, Name: name, Definition: def, In: in}, nil
	case "LetRecursion":
		bindings, err := decodeList(f[1], "let bindings", c.decodeLetBinding)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		in, err := c.DecodeValue(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.LetRecursionValue[TA, VA]{Attrs: a, Bindings: bindings, In: in}, nil
	case "Destructure":
		p, err := c.DecodePattern(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		val, err := c.DecodeValue(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		in, err := c.DecodeValue(f[3])
		if err != nil {
			return nil, field(err, 3, tag)
		}
		return ir.DestructureValue[TA, VA]{Attrs: a, Pattern: p, Value: val, In: in}, nil
	case "IfThenElse":
		cond, err := c.DecodeValue(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		then, err := c.DecodeValue(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		els, err := c.DecodeValue(f[3])
		if err != nil {
			return nil, field(err, 3, tag)
		}
		return ir.IfThenElseValue[TA, VA]{Attrs: a, Condition: cond, Then: then, Else: els}, nil
	case "PatternMatch":
		subject, err := c.DecodeValue(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		cases, err := decodeList(f[2], "match cases", c.decodeMatchCase)
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.PatternMatchValue[TA, VA]{Attrs: a, Subject: subject, Cases: cases}, nil
	case "UpdateRecord":
		rec, err := c.DecodeValue(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		fields, err := decodeList(f[2], "record updates", c.decodeRecordEntry)
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.UpdateRecordValue[TA, VA]{Attrs: a, Record: rec, Fields: fields}, nil
	case "Unit":
		return ir.UnitValue[TA, VA]{Attrs: a}, nil
	case "Hole":
		reason, err := DecodeHoleReason(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		expected, err := c.decodeOptionalType(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.HoleValue[TA, VA]{Attrs: a, Reason: reason, ExpectedType: expected}, nil
	case "Native":
		fq, err := DecodeFQName(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		info, err := DecodeNativeInfo(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.NativeValue[TA, VA]{Attrs: a, FQName: fq, Info: info}, nil
	default: // External
		name, err := codec.AsString(f[1], "external name")
		if err != nil {
			return nil, field(err, 1, tag)
		}
		platform, err := codec.AsString(f[2], "target platform")
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.ExternalValue[TA, VA]{Attrs: a, ExternalName: name, TargetPlatform: platform}, nil
	}
}

func (c *Codec[TA, VA]) decodeRecordEntry(v jsonv.Value) (ir.RecordEntry[TA, VA], error) {
	nv, vv, err := pair(v, "record entry")
	if err != nil {
		return ir.RecordEntry[TA, VA]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.RecordEntry[TA, VA]{}, codec.At(err, 0)
	}
	val, err := c.DecodeValue(vv)
	if err != nil {
		return ir.RecordEntry[TA, VA]{}, codec.At(err, 1)
	}
	return ir.RecordEntry[TA, VA]{Name: name, Value: val}, nil
}

func (c *Codec[TA, VA]) decodeMatchCase(v jsonv.Value) (ir.MatchCase[TA, VA], error) {
	pv, bv, err := pair(v, "match case")
	if err != nil {
		return ir.MatchCase[TA, VA]{}, err
	}
	p, err := c.DecodePattern(pv)
	if err != nil {
		return ir.MatchCase[TA, VA]{}, codec.At(err, 0)
	}
	body, err := c.DecodeValue(bv)
	if err != nil {
		return ir.MatchCase[TA, VA]{}, codec.At(err, 1)
	}
	return ir.MatchCase[TA, VA]{Pattern: p, Body: body}, nil
}

func (c *Codec[TA, VA]) decodeLetBinding(v jsonv.Value) (ir.LetBinding[TA, VA], error) {
	nv, dv, err := pair(v, "let binding")
	if err != nil {
		return ir.LetBinding[TA, VA]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.LetBinding[TA, VA]{}, codec.At(err, 0)
	}
	def, err := c.DecodeValueDefinition(dv)
	if err != nil {
		return ir.LetBinding[TA, VA]{}, codec.At(err, 1)
	}
	return ir.LetBinding[TA, VA]{Name: name, Definition: def}, nil
}

// EncodeValue writes a value expression.
func (c *Codec[TA, VA]) EncodeValue(v ir.Value[TA, VA]) jsonv.Value {
	tag := func(name string, fields ...jsonv.Value) jsonv.Value {
		return append(jsonv.Array{jsonv.String(name), c.valueAttrs.EncodeAttrs(v.Attributes())}, fields...)
	}
	switch n := v.(type) {
	case ir.LiteralValue[TA, VA]:
		return tag("Literal", EncodeLiteral(n.Literal))
	case ir.ConstructorValue[TA, VA]:
		return tag("Constructor", EncodeFQName(n.FQName))
	case ir.TupleValue[TA, VA]:
		return tag("Tuple", encodeList(n.Elements, c.EncodeValue))
	case ir.ListValue[TA, VA]:
		return tag("List", encodeList(n.Items, c.EncodeValue))
	case ir.RecordValue[TA, VA]:
		return tag("Record", encodeList(n.Fields, c.encodeRecordEntry))
	case ir.VariableValue[TA, VA]:
		return tag("Variable", EncodeName(n.Name))
	case ir.ReferenceValue[TA, VA]:
		return tag("Reference", EncodeFQName(n.FQName))
	case ir.FieldValue[TA, VA]:
		return tag("Field", c.EncodeValue(n.Record), EncodeName(n.Name))
	case ir.FieldFunctionValue[TA, VA]:
		return tag("FieldFunction", EncodeName(n.Name))
	case ir.ApplyValue[TA, VA]:
		return tag("Apply", c.EncodeValue(n.Function), c.EncodeValue(n.Argument))
	case ir.LambdaValue[TA, VA]:
		return tag("Lambda", c.EncodePattern(n.Pattern), c.EncodeValue(n.Body))
	case ir.LetDefinitionValue[TA, VA]:
		return tag("LetDefinition", EncodeName(n.Name), c.EncodeValueDefinition(n.Definition), c.EncodeValue(n.In))
	case ir.LetRecursionValue[TA, VA]:
		bindings := encodeList(n.Bindings, func(b ir.LetBinding[TA, VA]) jsonv.Value {
			return jsonv.Array{EncodeName(b.Name), c.EncodeValueDefinition(b.Definition)}
		})
		return tag("LetRecursion", bindings, c.EncodeValue(n.In))
	case ir.DestructureValue[TA, VA]:
		return tag("Destructure", c.EncodePattern(n.Pattern), c.EncodeValue(n.Value), c.EncodeValue(n.In))
	case ir.IfThenElseValue[TA, VA]:
		return tag("IfThenElse", c.EncodeValue(n.Condition), c.EncodeValue(n.Then), c.EncodeValue(n.Else))
	case ir.PatternMatchValue[TA, VA]:
		cases := encodeList(n.Cases, func(mc ir.MatchCase[TA, VA]) jsonv.Value {
			return jsonv.Array{c.EncodePattern(mc.Pattern), c.EncodeValue(mc.Body)}
		})
		return tag("PatternMatch", c.EncodeValue(n.Subject), cases)
	case ir.UpdateRecordValue[TA, VA]:
		return tag("UpdateRecord", c.EncodeValue(n.Record), encodeList(n.Fields, c.encodeRecordEntry))
	case ir.UnitValue[TA, VA]:
		return tag("Unit")
	case ir.HoleValue[TA, VA]:
		return tag("Hole", EncodeHoleReason(n.Reason), c.encodeOptionalType(n.ExpectedType))
	case ir.NativeValue[TA, VA]:
		return tag("Native", EncodeFQName(n.FQName), EncodeNativeInfo(n.Info))
	case ir.ExternalValue[TA, VA]:
		return tag("External", jsonv.String(n.ExternalName), jsonv.String(n.TargetPlatform))
	default:
		panic(unsupported("value", v))
	}
}

func (c *Codec[TA, VA]) encodeRecordEntry(e ir.RecordEntry[TA, VA]) jsonv.Value {
	return jsonv.Array{EncodeName(e.Name), c.EncodeValue(e.Value)}
}

// DecodeValueDefinition reads
// {"inputTypes": [[name, attrs, type]], "outputType": type, "body": body}.
func (c *Codec[TA, VA]) DecodeValueDefinition(v jsonv.Value) (ir.ValueDefinition[TA, VA], error) {
	var def ir.ValueDefinition[TA, VA]
	obj, err := codec.AsObject(v, "value definition")
	if err != nil {
		return def, err
	}

	inputsV, ok := obj.Get("inputTypes")
	if !ok {
		return def, codec.Malformed("value definition is missing field %q", "inputTypes")
	}
	def.Inputs, err = decodeList(inputsV, "input types", c.decodeInputType)
	if err != nil {
		return def, codec.At(err, "inputTypes")
	}

	outV, ok := obj.Get("outputType")
	if !ok {
		return def, codec.Malformed("value definition is missing field %q", "outputType")
	}
	def.Output, err = c.DecodeType(outV)
	if err != nil {
		return def, codec.At(err, "outputType")
	}

	bodyV, ok := obj.Get("body")
	if !ok {
		return def, codec.Malformed("value definition is missing field %q", "body")
	}
	def.Body, err = c.DecodeValueBody(bodyV)
	if err != nil {
		return def, codec.At(err, "body")
	}
	return def, nil
}

func (c *Codec[TA, VA]) decodeInputType(v jsonv.Value) (ir.InputType[TA, VA], error) {
	arr, err := codec.AsArray(v, "input type")
	if err != nil {
		return ir.InputType[TA, VA]{}, err
	}
	if len(arr) != 3 {
		return ir.InputType[TA, VA]{}, codec.Malformed("input type expects 3 elements, got %d", len(arr))
	}
	name, err := DecodeName(arr[0])
	if err != nil {
		return ir.InputType[TA, VA]{}, codec.At(err, 0)
	}
	a, err := c.valueAttrs.DecodeAttrs(arr[1])
	if err != nil {
		return ir.InputType[TA, VA]{}, codec.At(err, 1)
	}
	t, err := c.DecodeType(arr[2])
	if err != nil {
		return ir.InputType[TA, VA]{}, codec.At(err, 2)
	}
	return ir.InputType[TA, VA]{Name: name, Attrs: a, Type: t}, nil
}

// EncodeValueDefinition writes a value definition.
func (c *Codec[TA, VA]) EncodeValueDefinition(def ir.ValueDefinition[TA, VA]) jsonv.Value {
	inputs := encodeList(def.Inputs, func(in ir.InputType[TA, VA]) jsonv.Value {
		return jsonv.Array{EncodeName(in.Name), c.valueAttrs.EncodeAttrs(in.Attrs), c.EncodeType(in.Type)}
	})
	return jsonv.Object{
		jsonv.M("inputTypes", inputs),
		jsonv.M("outputType", c.EncodeType(def.Output)),
		jsonv.M("body", c.EncodeValueBody(def.Body)),
	}
}

// DecodeValueBody reads a definition body. A plain value expression is an
// expression body; ["NativeBody", info], ["ExternalBody", name, platform]
// and ["IncompleteBody", incompleteness] carry the other kinds.
func (c *Codec[TA, VA]) DecodeValueBody(v jsonv.Value) (ir.ValueBody[TA, VA], error) {
	if arr, ok := v.(jsonv.Array); ok && len(arr) > 0 {
		if s, ok := arr[0].(jsonv.String); ok {
			if tag, ok := codec.LookupTag(codec.KindValueBody, string(s)); ok {
				return c.decodeTaggedBody(tag, arr[1:])
			}
		}
	}
	val, err := c.DecodeValue(v)
	if err != nil {
		return nil, err
	}
	return ir.ExpressionBody[TA, VA]{Value: val}, nil
}

var bodyArity = map[string]int{"ExpressionBody": 1, "NativeBody": 1, "ExternalBody": 2, "IncompleteBody": 1}

func (c *Codec[TA, VA]) decodeTaggedBody(tag string, f jsonv.Array) (ir.ValueBody[TA, VA], error) {
	if err := codec.Arity(tag, f, bodyArity[tag]); err != nil {
		return nil, err
	}
	switch tag {
	case "ExpressionBody":
		val, err := c.DecodeValue(f[0])
		if err != nil {
			return nil, codec.At(err, 1)
		}
		return ir.ExpressionBody[TA, VA]{Value: val}, nil
	case "NativeBody":
		info, err := DecodeNativeInfo(f[0])
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		return ir.NativeBody{Info: info}, nil
	case "ExternalBody":
		name, err := codec.AsString(f[0], "external name")
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		platform, err := codec.AsString(f[1], "target platform")
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 2), tag)
		}
		return ir.ExternalBody{ExternalName: name, TargetPlatform: platform}, nil
	default: // IncompleteBody
		inc, err := DecodeIncompleteness(f[0])
		if err != nil {
			return nil, codec.Tagged(codec.At(err, 1), tag)
		}
		return ir.IncompleteBody{Incompleteness: inc}, nil
	}
}

// EncodeValueBody writes a definition body. Expression bodies are written
// as the bare expression.
func (c *Codec[TA, VA]) EncodeValueBody(b ir.ValueBody[TA, VA]) jsonv.Value {
	switch body := b.(type) {
	case ir.ExpressionBody[TA, VA]:
		return c.EncodeValue(body.Value)
	case ir.NativeBody:
		return jsonv.Array{jsonv.String("NativeBody"), EncodeNativeInfo(body.Info)}
	case ir.ExternalBody:
		return jsonv.Array{jsonv.String("ExternalBody"), jsonv.String(body.ExternalName), jsonv.String(body.TargetPlatform)}
	case ir.IncompleteBody:
		return jsonv.Array{jsonv.String("IncompleteBody"), EncodeIncompleteness(body.Incompleteness)}
	default:
		panic(unsupported("value body", b))
	}
}
