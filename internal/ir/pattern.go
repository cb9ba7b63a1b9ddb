package ir

import "github.com/roach88/morphir-ir/internal/naming"

// Pattern is a sealed interface over match patterns with attribute A.
type Pattern[A any] interface {
	Attributes() A
	isPattern()
}

// WildcardPattern matches anything: `_`.
type WildcardPattern[A any] struct {
	Attrs A
}

// AsPattern binds the value matched by Pattern to Name.
type AsPattern[A any] struct {
	Attrs   A
	Pattern Pattern[A]
	Name    naming.Name
}

// TuplePattern matches a tuple element-wise.
type TuplePattern[A any] struct {
	Attrs    A
	Elements []Pattern[A]
}

// ConstructorPattern matches a custom type constructor and its arguments.
type ConstructorPattern[A any] struct {
	Attrs  A
	FQName naming.FQName
	Args   []Pattern[A]
}

// EmptyListPattern matches `[]`.
type EmptyListPattern[A any] struct {
	Attrs A
}

// HeadTailPattern matches `head :: tail`.
type HeadTailPattern[A any] struct {
	Attrs A
	Head  Pattern[A]
	Tail  Pattern[A]
}

// LiteralPattern matches a literal constant.
type LiteralPattern[A any] struct {
	Attrs   A
	Literal Literal
}

// UnitPattern matches `()`.
type UnitPattern[A any] struct {
	Attrs A
}

func (p WildcardPattern[A]) Attributes() A    { return p.Attrs }
func (p AsPattern[A]) Attributes() A          { return p.Attrs }
func (p TuplePattern[A]) Attributes() A       { return p.Attrs }
func (p ConstructorPattern[A]) Attributes() A { return p.Attrs }
func (p EmptyListPattern[A]) Attributes() A   { return p.Attrs }
func (p HeadTailPattern[A]) Attributes() A    { return p.Attrs }
func (p LiteralPattern[A]) Attributes() A     { return p.Attrs }
func (p UnitPattern[A]) Attributes() A        { return p.Attrs }

func (WildcardPattern[A]) isPattern()    {}
func (AsPattern[A]) isPattern()          {}
func (TuplePattern[A]) isPattern()       {}
func (ConstructorPattern[A]) isPattern() {}
func (EmptyListPattern[A]) isPattern()   {}
func (HeadTailPattern[A]) isPattern()    {}
func (LiteralPattern[A]) isPattern()     {}
func (UnitPattern[A]) isPattern()        {}
