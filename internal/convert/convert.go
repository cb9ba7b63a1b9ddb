// Package convert migrates IR trees between the Classic and V4 attribute
// models. The tree shape is preserved; only attributes and the format
// version change.
package convert

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/traverse"
)

type (
	classicAttrs = ir.ClassicAttrs
	typeAttrs    = ir.TypeAttributes
	valueAttrs   = ir.ValueAttributes
)

var (
	toV4      = traverse.MapAttributes(typeAttrsToV4, valueAttrsToV4)
	toClassic = traverse.MapAttributes(typeAttrsToClassic, valueAttrsToClassic)
)

// ToV4 converts a Classic document. The result carries format version
// "4.0.0".
func ToV4(doc *ir.ClassicDocument) *ir.V4Document {
	out, err := traverse.TransformDocument(doc, toV4)
	must(err)
	out.FormatVersion = ir.DefaultV4Version
	return out
}

// ToClassic converts a V4 document. The result carries format version 3.
func ToClassic(doc *ir.V4Document) *ir.ClassicDocument {
	out, err := traverse.TransformDocument(doc, toClassic)
	must(err)
	out.FormatVersion = ir.DefaultClassicVersion
	return out
}

// TypeToV4 converts a single Classic type expression.
func TypeToV4(t ir.ClassicType) ir.V4Type {
	out, err := traverse.TransformType(t, toV4)
	must(err)
	return out
}

// ValueToV4 converts a single Classic value expression.
func ValueToV4(v ir.ClassicValue) ir.V4Value {
	out, err := traverse.TransformValue(v, toV4)
	must(err)
	return out
}

// TypeToClassic converts a single V4 type expression.
func TypeToClassic(t ir.V4Type) ir.ClassicType {
	out, err := traverse.TransformType(t, toClassic)
	must(err)
	return out
}

// ValueToClassic converts a single V4 value expression.
func ValueToClassic(v ir.V4Value) ir.ClassicValue {
	out, err := traverse.TransformValue(v, toClassic)
	must(err)
	return out
}

// The attribute mappers cannot fail, so an error here means the rewriter
// met a node variant it does not know.
func must(err error) {
	if err != nil {
		panic(fmt.Sprintf("convert: invariant violation: %v", err))
	}
}

func typeAttrsToV4(a classicAttrs) typeAttrs {
	return typeAttrs{Source: sourceOf(a)}
}

func valueAttrsToV4(a classicAttrs) valueAttrs {
	return valueAttrs{Source: sourceOf(a)}
}

func typeAttrsToClassic(a typeAttrs) classicAttrs {
	return withSource(a.Source)
}

func valueAttrsToClassic(a valueAttrs) classicAttrs {
	return withSource(a.Source)
}

// sourceOf extracts a source location from a Classic attribute object of
// the form {"source": {...}}. Any other payload yields nil.
func sourceOf(a classicAttrs) *ir.SourceLocation {
	obj, ok := a.Raw.(jsonv.Object)
	if !ok {
		return nil
	}
	raw, _, ok := codec.Lookup(obj, "source")
	if !ok {
		return nil
	}
	loc, err := v4.DecodeSourceLocation(raw)
	if err != nil {
		return nil
	}
	return &loc
}

func withSource(loc *ir.SourceLocation) classicAttrs {
	if loc == nil {
		return classicAttrs{}
	}
	return classicAttrs{Raw: jsonv.Object{
		jsonv.M("source", jsonv.Object{
			jsonv.M("startLine", jsonv.Int(int64(loc.StartLine))),
			jsonv.M("startColumn", jsonv.Int(int64(loc.StartColumn))),
			jsonv.M("endLine", jsonv.Int(int64(loc.EndLine))),
			jsonv.M("endColumn", jsonv.Int(int64(loc.EndColumn))),
		}),
	}}
}
