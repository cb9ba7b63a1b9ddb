package ir

import "github.com/roach88/morphir-ir/internal/naming"

// Type is a sealed interface over type expressions with attribute A.
type Type[A any] interface {
	Attributes() A
	isType()
}

// VariableType is a type variable, e.g. `a`.
type VariableType[A any] struct {
	Attrs A
	Name  naming.Name
}

// ReferenceType is a reference to a named type applied to arguments.
type ReferenceType[A any] struct {
	Attrs  A
	FQName naming.FQName
	Args   []Type[A]
}

// TupleType is a tuple type.
type TupleType[A any] struct {
	Attrs    A
	Elements []Type[A]
}

// RecordType is a closed record type.
type RecordType[A any] struct {
	Attrs  A
	Fields []Field[A]
}

// ExtensibleRecordType is a record type open over Variable.
type ExtensibleRecordType[A any] struct {
	Attrs    A
	Variable naming.Name
	Fields   []Field[A]
}

// FunctionType is a single-argument function type.
type FunctionType[A any] struct {
	Attrs    A
	Argument Type[A]
	Result   Type[A]
}

// UnitType is the unit type.
type UnitType[A any] struct {
	Attrs A
}

// Field is one named field of a record type.
type Field[A any] struct {
	Name naming.Name
	Type Type[A]
}

func (t VariableType[A]) Attributes() A         { return t.Attrs }
func (t ReferenceType[A]) Attributes() A        { return t.Attrs }
func (t TupleType[A]) Attributes() A            { return t.Attrs }
func (t RecordType[A]) Attributes() A           { return t.Attrs }
func (t ExtensibleRecordType[A]) Attributes() A { return t.Attrs }
func (t FunctionType[A]) Attributes() A         { return t.Attrs }
func (t UnitType[A]) Attributes() A             { return t.Attrs }

func (VariableType[A]) isType()         {}
func (ReferenceType[A]) isType()        {}
func (TupleType[A]) isType()            {}
func (RecordType[A]) isType()           {}
func (ExtensibleRecordType[A]) isType() {}
func (FunctionType[A]) isType()         {}
func (UnitType[A]) isType()             {}
