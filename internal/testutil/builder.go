package testutil

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/naming"
)

// Builder constructs IR nodes that all carry the same attributes.
//
// It keeps fixtures short and lets one fixture be built for every attribute
// instantiation:
//
//	b := testutil.NewBuilder(ir.ClassicAttrs{}, ir.ClassicAttrs{})
//	b.Apply(b.Ref(add), b.Var("x"), b.Int(1))
//
// Thread-safety: Builder is a value type without state and safe for concurrent use.
type Builder[TA, VA any] struct {
	TA TA
	VA VA
}

// NewBuilder returns a Builder attaching ta to type nodes and va to value
// and pattern nodes.
func NewBuilder[TA, VA any](ta TA, va VA) Builder[TA, VA] {
	return Builder[TA, VA]{TA: ta, VA: va}
}

// Classic returns a Builder for Classic trees with empty attributes.
func Classic() Builder[ir.ClassicAttrs, ir.ClassicAttrs] {
	return NewBuilder(ir.ClassicAttrs{}, ir.ClassicAttrs{})
}

// V4 returns a Builder for V4 trees with empty attributes.
func V4() Builder[ir.TypeAttributes, ir.ValueAttributes] {
	return NewBuilder(ir.TypeAttributes{}, ir.ValueAttributes{})
}

// Name parses s as a Name.
func Name(s string) naming.Name { return naming.ParseName(s) }

// Names parses each string as a Name. No arguments yields nil.
func Names(ss ...string) []naming.Name {
	if len(ss) == 0 {
		return nil
	}
	out := make([]naming.Name, len(ss))
	for i, s := range ss {
		out[i] = naming.ParseName(s)
	}
	return out
}

// TVar is a type variable.
func (b Builder[TA, VA]) TVar(name string) ir.Type[TA] {
	return ir.VariableType[TA]{Attrs: b.TA, Name: Name(name)}
}

// TRef is a type reference.
func (b Builder[TA, VA]) TRef(fq naming.FQName, args ...ir.Type[TA]) ir.Type[TA] {
	return ir.ReferenceType[TA]{Attrs: b.TA, FQName: fq, Args: args}
}

// TFunc is a curried function type over args ending in result.
func (b Builder[TA, VA]) TFunc(result ir.Type[TA], args ...ir.Type[TA]) ir.Type[TA] {
	t := result
	for i := len(args) - 1; i >= 0; i-- {
		t = ir.FunctionType[TA]{Attrs: b.TA, Argument: args[i], Result: t}
	}
	return t
}

// TTuple is a tuple type.
func (b Builder[TA, VA]) TTuple(elems ...ir.Type[TA]) ir.Type[TA] {
	return ir.TupleType[TA]{Attrs: b.TA, Elements: elems}
}

// TRecord is a closed record type.
func (b Builder[TA, VA]) TRecord(fields ...ir.Field[TA]) ir.Type[TA] {
	return ir.RecordType[TA]{Attrs: b.TA, Fields: fields}
}

// TField is a record type field.
func (b Builder[TA, VA]) TField(name string, t ir.Type[TA]) ir.Field[TA] {
	return ir.Field[TA]{Name: Name(name), Type: t}
}

// TUnit is the unit type.
func (b Builder[TA, VA]) TUnit() ir.Type[TA] {
	return ir.UnitType[TA]{Attrs: b.TA}
}

// Var is a variable reference.
func (b Builder[TA, VA]) Var(name string) ir.Value[TA, VA] {
	return ir.VariableValue[TA, VA]{Attrs: b.VA, Name: Name(name)}
}

// Ref is a reference to a top-level value.
func (b Builder[TA, VA]) Ref(fq naming.FQName) ir.Value[TA, VA] {
	return ir.ReferenceValue[TA, VA]{Attrs: b.VA, FQName: fq}
}

// Ctor is a constructor reference.
func (b Builder[TA, VA]) Ctor(fq naming.FQName) ir.Value[TA, VA] {
	return ir.ConstructorValue[TA, VA]{Attrs: b.VA, FQName: fq}
}

// Lit wraps a literal.
func (b Builder[TA, VA]) Lit(l ir.Literal) ir.Value[TA, VA] {
	return ir.LiteralValue[TA, VA]{Attrs: b.VA, Literal: l}
}

// Int is an integer literal value.
func (b Builder[TA, VA]) Int(n int64) ir.Value[TA, VA] {
	return b.Lit(ir.IntegerLiteral{Value: n})
}

// Str is a string literal value.
func (b Builder[TA, VA]) Str(s string) ir.Value[TA, VA] {
	return b.Lit(ir.StringLiteral{Value: s})
}

// Apply applies fn to args one at a time, building a curried spine.
func (b Builder[TA, VA]) Apply(fn ir.Value[TA, VA], args ...ir.Value[TA, VA]) ir.Value[TA, VA] {
	v := fn
	for _, arg := range args {
		v = ir.ApplyValue[TA, VA]{Attrs: b.VA, Function: v, Argument: arg}
	}
	return v
}

// Lambda is a single-argument lambda.
func (b Builder[TA, VA]) Lambda(p ir.Pattern[VA], body ir.Value[TA, VA]) ir.Value[TA, VA] {
	return ir.LambdaValue[TA, VA]{Attrs: b.VA, Pattern: p, Body: body}
}

// Tuple is a tuple value.
func (b Builder[TA, VA]) Tuple(elems ...ir.Value[TA, VA]) ir.Value[TA, VA] {
	return ir.TupleValue[TA, VA]{Attrs: b.VA, Elements: elems}
}

// List is a list value.
func (b Builder[TA, VA]) List(items ...ir.Value[TA, VA]) ir.Value[TA, VA] {
	return ir.ListValue[TA, VA]{Attrs: b.VA, Items: items}
}

// Unit is the unit value.
func (b Builder[TA, VA]) Unit() ir.Value[TA, VA] {
	return ir.UnitValue[TA, VA]{Attrs: b.VA}
}

// Entry is a record entry.
func (b Builder[TA, VA]) Entry(name string, v ir.Value[TA, VA]) ir.RecordEntry[TA, VA] {
	return ir.RecordEntry[TA, VA]{Name: Name(name), Value: v}
}

// Bind is an as-pattern over a wildcard: it binds the whole value to name.
func (b Builder[TA, VA]) Bind(name string) ir.Pattern[VA] {
	return ir.AsPattern[VA]{Attrs: b.VA, Pattern: ir.WildcardPattern[VA]{Attrs: b.VA}, Name: Name(name)}
}

// Wildcard is the `_` pattern.
func (b Builder[TA, VA]) Wildcard() ir.Pattern[VA] {
	return ir.WildcardPattern[VA]{Attrs: b.VA}
}

// Def is a value definition with an expression body.
func (b Builder[TA, VA]) Def(output ir.Type[TA], body ir.Value[TA, VA], inputs ...ir.InputType[TA, VA]) ir.ValueDefinition[TA, VA] {
	return ir.ValueDefinition[TA, VA]{Inputs: inputs, Output: output, Body: ir.ExpressionBody[TA, VA]{Value: body}}
}

// Input is a declared argument of a value definition.
func (b Builder[TA, VA]) Input(name string, t ir.Type[TA]) ir.InputType[TA, VA] {
	return ir.InputType[TA, VA]{Name: Name(name), Attrs: b.VA, Type: t}
}
