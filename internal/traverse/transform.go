package traverse

import "github.com/roach88/morphir-ir/internal/ir"

// Transformer rebuilds a tree with attributes TA, VA into a tree with
// attributes TB, VB. The Transform methods are called for every type,
// pattern and value node; they return the replacement node and use the
// Rewriter to rebuild children.
type Transformer[TA, VA, TB, VB any] interface {
	TypeAttributes(a TA) TB
	ValueAttributes(a VA) VB
	TransformType(r *Rewriter[TA, VA, TB, VB], t ir.Type[TA]) (ir.Type[TB], error)
	TransformPattern(r *Rewriter[TA, VA, TB, VB], p ir.Pattern[VA]) (ir.Pattern[VB], error)
	TransformValue(r *Rewriter[TA, VA, TB, VB], v ir.Value[TA, VA]) (ir.Value[TB, VB], error)
}

// TransformDefaults implements the Transform methods by rebuilding the node
// with mapped attributes and transformed children. Embed it and provide
// TypeAttributes and ValueAttributes.
type TransformDefaults[TA, VA, TB, VB any] struct{}

func (TransformDefaults[TA, VA, TB, VB]) TransformType(r *Rewriter[TA, VA, TB, VB], t ir.Type[TA]) (ir.Type[TB], error) {
	return r.RebuildType(t)
}

func (TransformDefaults[TA, VA, TB, VB]) TransformPattern(r *Rewriter[TA, VA, TB, VB], p ir.Pattern[VA]) (ir.Pattern[VB], error) {
	return r.RebuildPattern(p)
}

func (TransformDefaults[TA, VA, TB, VB]) TransformValue(r *Rewriter[TA, VA, TB, VB], v ir.Value[TA, VA]) (ir.Value[TB, VB], error) {
	return r.RebuildValue(v)
}

type attributeMapper[TA, VA, TB, VB any] struct {
	TransformDefaults[TA, VA, TB, VB]
	typeAttrs  func(TA) TB
	valueAttrs func(VA) VB
}

func (m attributeMapper[TA, VA, TB, VB]) TypeAttributes(a TA) TB  { return m.typeAttrs(a) }
func (m attributeMapper[TA, VA, TB, VB]) ValueAttributes(a VA) VB { return m.valueAttrs(a) }

// MapAttributes returns a Transformer that keeps the tree shape and maps
// type attributes with ft and value and pattern attributes with fv.
func MapAttributes[TA, VA, TB, VB any](ft func(TA) TB, fv func(VA) VB) Transformer[TA, VA, TB, VB] {
	return attributeMapper[TA, VA, TB, VB]{typeAttrs: ft, valueAttrs: fv}
}

// TransformDocument rebuilds doc with t. The format version is copied.
func TransformDocument[TA, VA, TB, VB any](doc *ir.Document[TA, VA], t Transformer[TA, VA, TB, VB]) (*ir.Document[TB, VB], error) {
	return NewRewriter(t).Document(doc)
}

// TransformValue rebuilds v with t.
func TransformValue[TA, VA, TB, VB any](v ir.Value[TA, VA], t Transformer[TA, VA, TB, VB]) (ir.Value[TB, VB], error) {
	return NewRewriter(t).Value(v)
}

// TransformType rebuilds typ with t.
func TransformType[TA, VA, TB, VB any](typ ir.Type[TA], t Transformer[TA, VA, TB, VB]) (ir.Type[TB], error) {
	return NewRewriter(t).Type(typ)
}
