package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

type (
	ta = ir.TypeAttributes
	va = ir.ValueAttributes
)

// TypeAttrCodec reads and writes type attributes:
//
//	{"source": {"start-line": 1, ...}, "constraints": ..., "extensions": {...}}
//
// null, [] and {} decode to empty attributes. Unknown keys are ignored.
type TypeAttrCodec struct{}

// ValueAttrCodec reads and writes value and pattern attributes. It uses
// "inferred-type" where type attributes use "constraints".
type ValueAttrCodec struct{}

var (
	_ classic.AttrCodec[ta] = TypeAttrCodec{}
	_ classic.AttrCodec[va] = ValueAttrCodec{}
)

// DecodeAttrs implements classic.AttrCodec.
func (TypeAttrCodec) DecodeAttrs(v jsonv.Value) (ta, error) {
	var a ta
	obj, err := attrObject(v)
	if err != nil || obj == nil {
		return a, err
	}
	if a.Source, err = decodeSource(obj); err != nil {
		return a, err
	}
	if c, _, ok := codec.Lookup(obj, "constraints"); ok && !jsonv.IsNull(c) {
		a.Constraints = c
	}
	a.Extensions, err = decodeExtensions(obj)
	return a, err
}

// EncodeAttrs implements classic.AttrCodec.
func (TypeAttrCodec) EncodeAttrs(a ta) jsonv.Value {
	obj := jsonv.Object{}
	if a.Source != nil {
		obj = append(obj, jsonv.M("source", EncodeSourceLocation(*a.Source)))
	}
	if a.Constraints != nil {
		obj = append(obj, jsonv.M("constraints", a.Constraints))
	}
	if len(a.Extensions) > 0 {
		obj = append(obj, jsonv.M("extensions", a.Extensions))
	}
	return obj
}

// DecodeAttrs implements classic.AttrCodec.
func (ValueAttrCodec) DecodeAttrs(v jsonv.Value) (va, error) {
	var a va
	obj, err := attrObject(v)
	if err != nil || obj == nil {
		return a, err
	}
	if a.Source, err = decodeSource(obj); err != nil {
		return a, err
	}
	if t, _, ok := codec.Lookup(obj, "inferred-type"); ok && !jsonv.IsNull(t) {
		a.InferredType = t
	}
	a.Extensions, err = decodeExtensions(obj)
	return a, err
}

// EncodeAttrs implements classic.AttrCodec.
func (ValueAttrCodec) EncodeAttrs(a va) jsonv.Value {
	obj := jsonv.Object{}
	if a.Source != nil {
		obj = append(obj, jsonv.M("source", EncodeSourceLocation(*a.Source)))
	}
	if a.InferredType != nil {
		obj = append(obj, jsonv.M("inferred-type", a.InferredType))
	}
	if len(a.Extensions) > 0 {
		obj = append(obj, jsonv.M("extensions", a.Extensions))
	}
	return obj
}

// attrObject returns nil for the empty attribute forms.
func attrObject(v jsonv.Value) (jsonv.Object, error) {
	if jsonv.IsEmpty(v) {
		return nil, nil
	}
	return codec.AsObject(v, "attributes")
}

func decodeSource(obj jsonv.Object) (*ir.SourceLocation, error) {
	sv, key, ok := codec.Lookup(obj, "source")
	if !ok || jsonv.IsNull(sv) {
		return nil, nil
	}
	loc, err := DecodeSourceLocation(sv)
	if err != nil {
		return nil, codec.At(err, key)
	}
	return &loc, nil
}

func decodeExtensions(obj jsonv.Object) (jsonv.Object, error) {
	ev, key, ok := codec.Lookup(obj, "extensions")
	if !ok || jsonv.IsNull(ev) {
		return nil, nil
	}
	ext, err := codec.AsObject(ev, "extensions")
	if err != nil {
		return nil, codec.At(err, key)
	}
	if len(ext) == 0 {
		return nil, nil
	}
	return ext, nil
}

// DecodeSourceLocation reads {"start-line", "start-column", "end-line",
// "end-column"}. The camelCase keys are accepted as well.
func DecodeSourceLocation(v jsonv.Value) (ir.SourceLocation, error) {
	var loc ir.SourceLocation
	obj, err := codec.AsObject(v, "source location")
	if err != nil {
		return loc, err
	}
	for _, f := range []struct {
		name string
		dst  *int
	}{
		{"start-line", &loc.StartLine},
		{"start-column", &loc.StartColumn},
		{"end-line", &loc.EndLine},
		{"end-column", &loc.EndColumn},
	} {
		fv, key, ok := codec.Lookup(obj, f.name)
		if !ok {
			return loc, codec.Malformed("source location is missing field %q", f.name)
		}
		n, err := codec.AsInt64(fv, f.name)
		if err != nil {
			return loc, codec.At(err, key)
		}
		*f.dst = int(n)
	}
	return loc, nil
}

// EncodeSourceLocation writes a source span with kebab-case keys.
func EncodeSourceLocation(loc ir.SourceLocation) jsonv.Value {
	return jsonv.Object{
		jsonv.M("start-line", jsonv.Int(int64(loc.StartLine))),
		jsonv.M("start-column", jsonv.Int(int64(loc.StartColumn))),
		jsonv.M("end-line", jsonv.Int(int64(loc.EndLine))),
		jsonv.M("end-column", jsonv.Int(int64(loc.EndColumn))),
	}
}
