package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeValue reads a value wrapper such as
// {"Apply": {"function": ..., "argument": ...}}. A Classic array or a bare
// variable name or fully qualified name is accepted as well.
func DecodeValue(v jsonv.Value) (ir.V4Value, error) {
	switch val := v.(type) {
	case jsonv.Array:
		return fallback.DecodeValue(val)
	case jsonv.String:
		if fq, ok := naming.ParseFQName(string(val)); ok {
			return ir.ReferenceValue[ta, va]{FQName: fq}, nil
		}
		name := naming.ParseName(string(val))
		if name.IsEmpty() {
			return nil, codec.Malformed("variable shorthand %q has no name", string(val))
		}
		return ir.VariableValue[ta, va]{Name: name}, nil
	}

	n, err := unwrap(v, codec.KindValue)
	if err != nil {
		return nil, err
	}
	a, err := valueAttrs(n)
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "Literal":
		lit, err := field(n, "literal", DecodeLiteral)
		if err != nil {
			return nil, err
		}
		return ir.LiteralValue[ta, va]{Attrs: a, Literal: lit}, nil
	case "Constructor":
		fq, err := field(n, "fqname", DecodeFQName)
		if err != nil {
			return nil, err
		}
		return ir.ConstructorValue[ta, va]{Attrs: a, FQName: fq}, nil
	case "Tuple":
		elems, err := field(n, "elements", list(DecodeValue))
		if err != nil {
			return nil, err
		}
		return ir.TupleValue[ta, va]{Attrs: a, Elements: elems}, nil
	case "List":
		items, err := field(n, "items", list(DecodeValue))
		if err != nil {
			return nil, err
		}
		return ir.ListValue[ta, va]{Attrs: a, Items: items}, nil
	case "Record":
		fields, err := field(n, "fields", decodeRecordFields)
		if err != nil {
			return nil, err
		}
		return ir.RecordValue[ta, va]{Attrs: a, Fields: fields}, nil
	case "Variable":
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		return ir.VariableValue[ta, va]{Attrs: a, Name: name}, nil
	case "Reference":
		fq, err := field(n, "fqname", DecodeFQName)
		if err != nil {
			return nil, err
		}
		return ir.ReferenceValue[ta, va]{Attrs: a, FQName: fq}, nil
	case "Field":
		rec, err := field(n, "value", DecodeValue)
		if err != nil {
			return nil, err
		}
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		return ir.FieldValue[ta, va]{Attrs: a, Record: rec, Name: name}, nil
	case "FieldFunction":
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		return ir.FieldFunctionValue[ta, va]{Attrs: a, Name: name}, nil
	case "Apply":
		fn, err := field(n, "function", DecodeValue)
		if err != nil {
			return nil, err
		}
		arg, err := field(n, "argument", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.ApplyValue[ta, va]{Attrs: a, Function: fn, Argument: arg}, nil
	case "Lambda":
		p, err := field(n, "pattern", DecodePattern)
		if err != nil {
			return nil, err
		}
		body, err := field(n, "body", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.LambdaValue[ta, va]{Attrs: a, Pattern: p, Body: body}, nil
	case "LetDefinition":
		name, err := field(n, "name", DecodeName)
		if err != nil {
			return nil, err
		}
		def, err := field(n, "definition", DecodeValueDefinition)
		if err != nil {
			return nil, err
		}
		in, err := field(n, "body", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.LetDefinitionValue[ta, va]{Attrs: a, Name: name, Definition: def, In: in}, nil
	case "LetRecursion":
		bindings, err := field(n, "bindings", list(decodeLetBinding))
		if err != nil {
			return nil, err
		}
		in, err := field(n, "body", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.LetRecursionValue[ta, va]{Attrs: a, Bindings: bindings, In: in}, nil
	case "Destructure":
		p, err := field(n, "pattern", DecodePattern)
		if err != nil {
			return nil, err
		}
		val, err := field(n, "value", DecodeValue)
		if err != nil {
			return nil, err
		}
		in, err := field(n, "body", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.DestructureValue[ta, va]{Attrs: a, Pattern: p, Value: val, In: in}, nil
	case "IfThenElse":
		cond, err := field(n, "condition", DecodeValue)
		if err != nil {
			return nil, err
		}
		then, err := field(n, "then-branch", DecodeValue)
		if err != nil {
			return nil, err
		}
		els, err := field(n, "else-branch", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.IfThenElseValue[ta, va]{Attrs: a, Condition: cond, Then: then, Else: els}, nil
	case "PatternMatch":
		subject, err := field(n, "subject", DecodeValue)
		if err != nil {
			return nil, err
		}
		cases, err := field(n, "cases", list(decodeMatchCase))
		if err != nil {
			return nil, err
		}
		return ir.PatternMatchValue[ta, va]{Attrs: a, Subject: subject, Cases: cases}, nil
	case "UpdateRecord":
		rec, err := field(n, "record", DecodeValue)
		if err != nil {
			return nil, err
		}
		updates, err := field(n, "updates", list(decodeRecordEntry))
		if err != nil {
			return nil, err
		}
		return ir.UpdateRecordValue[ta, va]{Attrs: a, Record: rec, Fields: updates}, nil
	case "Unit":
		return ir.UnitValue[ta, va]{Attrs: a}, nil
	case "Hole":
		reason, err := field(n, "reason", DecodeHoleReason)
		if err != nil {
			return nil, err
		}
		expected, err := optional(n, "tpe", DecodeType)
		if err != nil {
			return nil, err
		}
		return ir.HoleValue[ta, va]{Attrs: a, Reason: reason, ExpectedType: expected}, nil
	case "Native":
		fq, err := field(n, "fqname", DecodeFQName)
		if err != nil {
			return nil, err
		}
		info, err := field(n, "info", DecodeNativeInfo)
		if err != nil {
			return nil, err
		}
		return ir.NativeValue[ta, va]{Attrs: a, FQName: fq, Info: info}, nil
	default: // External
		name, err := field(n, "external-name", asString)
		if err != nil {
			return nil, err
		}
		platform, err := field(n, "target-platform", asString)
		if err != nil {
			return nil, err
		}
		return ir.ExternalValue[ta, va]{Attrs: a, ExternalName: name, TargetPlatform: platform}, nil
	}
}

// decodeRecordFields reads record literal fields keyed by name.
func decodeRecordFields(v jsonv.Value) ([]ir.RecordEntry[ta, va], error) {
	return keyed(func(key string, v jsonv.Value) (ir.RecordEntry[ta, va], error) {
		val, err := DecodeValue(v)
		if err != nil {
			return ir.RecordEntry[ta, va]{}, err
		}
		return ir.RecordEntry[ta, va]{Name: naming.ParseName(key), Value: val}, nil
	})(v)
}

// decodeRecordEntry reads an update entry [name, value].
func decodeRecordEntry(v jsonv.Value) (ir.RecordEntry[ta, va], error) {
	nv, vv, err := pair(v, "record entry")
	if err != nil {
		return ir.RecordEntry[ta, va]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.RecordEntry[ta, va]{}, codec.At(err, 0)
	}
	val, err := DecodeValue(vv)
	if err != nil {
		return ir.RecordEntry[ta, va]{}, codec.At(err, 1)
	}
	return ir.RecordEntry[ta, va]{Name: name, Value: val}, nil
}

// decodeMatchCase reads [pattern, body].
func decodeMatchCase(v jsonv.Value) (ir.MatchCase[ta, va], error) {
	pv, bv, err := pair(v, "match case")
	if err != nil {
		return ir.MatchCase[ta, va]{}, err
	}
	p, err := DecodePattern(pv)
	if err != nil {
		return ir.MatchCase[ta, va]{}, codec.At(err, 0)
	}
	body, err := DecodeValue(bv)
	if err != nil {
		return ir.MatchCase[ta, va]{}, codec.At(err, 1)
	}
	return ir.MatchCase[ta, va]{Pattern: p, Body: body}, nil
}

// decodeLetBinding reads [name, definition].
func decodeLetBinding(v jsonv.Value) (ir.LetBinding[ta, va], error) {
	nv, dv, err := pair(v, "let binding")
	if err != nil {
		return ir.LetBinding[ta, va]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.LetBinding[ta, va]{}, codec.At(err, 0)
	}
	def, err := DecodeValueDefinition(dv)
	if err != nil {
		return ir.LetBinding[ta, va]{}, codec.At(err, 1)
	}
	return ir.LetBinding[ta, va]{Name: name, Definition: def}, nil
}

// EncodeValue writes a value wrapper.
func (e *Encoder) EncodeValue(v ir.V4Value) jsonv.Value {
	a := v.Attributes()
	node := func(tag string, obj jsonv.Object) jsonv.Value {
		return wrapper(tag, e.withAttrs(obj, ValueAttrCodec{}.EncodeAttrs(a), a.IsEmpty()))
	}
	switch n := v.(type) {
	case ir.LiteralValue[ta, va]:
		return node("Literal", jsonv.Object{jsonv.M("literal", EncodeLiteral(n.Literal))})
	case ir.ConstructorValue[ta, va]:
		return node("Constructor", jsonv.Object{jsonv.M("fqname", EncodeFQName(n.FQName))})
	case ir.TupleValue[ta, va]:
		return node("Tuple", jsonv.Object{jsonv.M("elements", encodeList(n.Elements, e.EncodeValue))})
	case ir.ListValue[ta, va]:
		return node("List", jsonv.Object{jsonv.M("items", encodeList(n.Items, e.EncodeValue))})
	case ir.RecordValue[ta, va]:
		fields := make(jsonv.Object, len(n.Fields))
		for i, f := range n.Fields {
			fields[i] = jsonv.M(f.Name.String(), e.EncodeValue(f.Value))
		}
		return node("Record", jsonv.Object{jsonv.M("fields", fields)})
	case ir.VariableValue[ta, va]:
		return node("Variable", jsonv.Object{jsonv.M("name", EncodeName(n.Name))})
	case ir.ReferenceValue[ta, va]:
		return node("Reference", jsonv.Object{jsonv.M("fqname", EncodeFQName(n.FQName))})
	case ir.FieldValue[ta, va]:
		return node("Field", jsonv.Object{
			jsonv.M("value", e.EncodeValue(n.Record)),
			jsonv.M("name", EncodeName(n.Name)),
		})
	case ir.FieldFunctionValue[ta, va]:
		return node("FieldFunction", jsonv.Object{jsonv.M("name", EncodeName(n.Name))})
	case ir.ApplyValue[ta, va]:
		return node("Apply", jsonv.Object{
			jsonv.M("function", e.EncodeValue(n.Function)),
			jsonv.M("argument", e.EncodeValue(n.Argument)),
		})
	case ir.LambdaValue[ta, va]:
		return node("Lambda", jsonv.Object{
			jsonv.M("pattern", e.EncodePattern(n.Pattern)),
			jsonv.M("body", e.EncodeValue(n.Body)),
		})
	case ir.LetDefinitionValue[ta, va]:
		return node("LetDefinition", jsonv.Object{
			jsonv.M("name", EncodeName(n.Name)),
			jsonv.M("definition", e.EncodeValueDefinition(n.Definition)),
			jsonv.M("body", e.EncodeValue(n.In)),
		})
	case ir.LetRecursionValue[ta, va]:
		bindings := encodeList(n.Bindings, func(b ir.LetBinding[ta, va]) jsonv.Value {
			return jsonv.Array{EncodeName(b.Name), e.EncodeValueDefinition(b.Definition)}
		})
		return node("LetRecursion", jsonv.Object{
			jsonv.M("bindings", bindings),
			jsonv.M("body", e.EncodeValue(n.In)),
		})
	case ir.DestructureValue[ta, va]:
		return node("Destructure", jsonv.Object{
			jsonv.M("pattern", e.EncodePattern(n.Pattern)),
			jsonv.M("value", e.EncodeValue(n.Value)),
			jsonv.M("body", e.EncodeValue(n.In)),
		})
	case ir.IfThenElseValue[ta, va]:
		return node("IfThenElse", jsonv.Object{
			jsonv.M("condition", e.EncodeValue(n.Condition)),
			jsonv.M("then-branch", e.EncodeValue(n.Then)),
			jsonv.M("else-branch", e.EncodeValue(n.Else)),
		})
	case ir.PatternMatchValue[ta, va]:
		cases := encodeList(n.Cases, func(c ir.MatchCase[ta, va]) jsonv.Value {
			return jsonv.Array{e.EncodePattern(c.Pattern), e.EncodeValue(c.Body)}
		})
		return node("PatternMatch", jsonv.Object{
			jsonv.M("subject", e.EncodeValue(n.Subject)),
			jsonv.M("cases", cases),
		})
	case ir.UpdateRecordValue[ta, va]:
		updates := encodeList(n.Fields, func(f ir.RecordEntry[ta, va]) jsonv.Value {
			return jsonv.Array{EncodeName(f.Name), e.EncodeValue(f.Value)}
		})
		return node("UpdateRecord", jsonv.Object{
			jsonv.M("record", e.EncodeValue(n.Record)),
			jsonv.M("updates", updates),
		})
	case ir.UnitValue[ta, va]:
		return node("Unit", jsonv.Object{})
	case ir.HoleValue[ta, va]:
		obj := jsonv.Object{jsonv.M("reason", EncodeHoleReason(n.Reason))}
		if n.ExpectedType != nil {
			obj = append(obj, jsonv.M("tpe", e.EncodeType(n.ExpectedType)))
		}
		return node("Hole", obj)
	case ir.NativeValue[ta, va]:
		return node("Native", jsonv.Object{
			jsonv.M("fqname", EncodeFQName(n.FQName)),
			jsonv.M("info", e.EncodeNativeInfo(n.Info)),
		})
	case ir.ExternalValue[ta, va]:
		return node("External", jsonv.Object{
			jsonv.M("external-name", jsonv.String(n.ExternalName)),
			jsonv.M("target-platform", jsonv.String(n.TargetPlatform)),
		})
	default:
		panic(unsupported("value", v))
	}
}

// DecodeValueDefinition reads
// {"input-types": {name: {"type-attributes": attrs, "type": type}}, "output-type": type, "body": body}.
func DecodeValueDefinition(v jsonv.Value) (ir.ValueDefinition[ta, va], error) {
	var def ir.ValueDefinition[ta, va]
	n, err := record(v, "value definition")
	if err != nil {
		return def, err
	}
	if def.Inputs, err = field(n, "input-types", keyed(decodeInputType)); err != nil {
		return def, err
	}
	if def.Output, err = field(n, "output-type", DecodeType); err != nil {
		return def, err
	}
	def.Body, err = field(n, "body", DecodeValueBody)
	return def, err
}

func decodeInputType(key string, v jsonv.Value) (ir.InputType[ta, va], error) {
	in := ir.InputType[ta, va]{Name: naming.ParseName(key)}
	n, err := record(v, "input type")
	if err != nil {
		return in, err
	}
	if in.Attrs, err = optional(n, "type-attributes", ValueAttrCodec{}.DecodeAttrs); err != nil {
		return in, err
	}
	in.Type, err = field(n, "type", DecodeType)
	return in, err
}

// EncodeValueDefinition writes a value definition.
func (e *Encoder) EncodeValueDefinition(def ir.ValueDefinition[ta, va]) jsonv.Value {
	inputs := make(jsonv.Object, len(def.Inputs))
	for i, in := range def.Inputs {
		entry := jsonv.Object{}
		if !in.Attrs.IsEmpty() || e.expanded {
			entry = append(entry, jsonv.M("type-attributes", ValueAttrCodec{}.EncodeAttrs(in.Attrs)))
		}
		entry = append(entry, jsonv.M("type", e.EncodeType(in.Type)))
		inputs[i] = jsonv.M(in.Name.String(), entry)
	}
	return jsonv.Object{
		jsonv.M("input-types", inputs),
		jsonv.M("output-type", e.EncodeType(def.Output)),
		jsonv.M("body", e.EncodeValueBody(def.Body)),
	}
}

// DecodeValueBody reads {"ExpressionBody": {"body": value}},
// {"NativeBody": {"info": info}},
// {"ExternalBody": {"external-name": n, "target-platform": p}} or
// {"IncompleteBody": {"incompleteness": inc}}. A bare value is an
// expression body.
func DecodeValueBody(v jsonv.Value) (ir.ValueBody[ta, va], error) {
	switch b := v.(type) {
	case jsonv.Array:
		return fallback.DecodeValueBody(b)
	case jsonv.Object:
		if len(b) == 1 {
			if _, ok := codec.LookupTag(codec.KindValueBody, b[0].Key); ok {
				return decodeBodyWrapper(b)
			}
		}
	}
	val, err := DecodeValue(v)
	if err != nil {
		return nil, err
	}
	return ir.ExpressionBody[ta, va]{Value: val}, nil
}

func decodeBodyWrapper(v jsonv.Value) (ir.ValueBody[ta, va], error) {
	n, err := unwrap(v, codec.KindValueBody)
	if err != nil {
		return nil, err
	}
	switch n.tag {
	case "ExpressionBody":
		val, err := field(n, "body", DecodeValue)
		if err != nil {
			return nil, err
		}
		return ir.ExpressionBody[ta, va]{Value: val}, nil
	case "NativeBody":
		info, err := field(n, "info", DecodeNativeInfo)
		if err != nil {
			return nil, err
		}
		return ir.NativeBody{Info: info}, nil
	case "ExternalBody":
		name, err := field(n, "external-name", asString)
		if err != nil {
			return nil, err
		}
		platform, err := field(n, "target-platform", asString)
		if err != nil {
			return nil, err
		}
		return ir.ExternalBody{ExternalName: name, TargetPlatform: platform}, nil
	default: // IncompleteBody
		inc, err := field(n, "incompleteness", DecodeIncompleteness)
		if err != nil {
			return nil, err
		}
		return ir.IncompleteBody{Incompleteness: inc}, nil
	}
}

// EncodeValueBody writes a body wrapper.
func (e *Encoder) EncodeValueBody(b ir.ValueBody[ta, va]) jsonv.Value {
	switch body := b.(type) {
	case ir.ExpressionBody[ta, va]:
		return wrapper("ExpressionBody", jsonv.Object{jsonv.M("body", e.EncodeValue(body.Value))})
	case ir.NativeBody:
		return wrapper("NativeBody", jsonv.Object{jsonv.M("info", e.EncodeNativeInfo(body.Info))})
	case ir.ExternalBody:
		return wrapper("ExternalBody", jsonv.Object{
			jsonv.M("external-name", jsonv.String(body.ExternalName)),
			jsonv.M("target-platform", jsonv.String(body.TargetPlatform)),
		})
	case ir.IncompleteBody:
		return wrapper("IncompleteBody", jsonv.Object{jsonv.M("incompleteness", EncodeIncompleteness(body.Incompleteness))})
	default:
		panic(unsupported("value body", b))
	}
}
