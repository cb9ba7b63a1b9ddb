package ir

import "github.com/roach88/morphir-ir/internal/naming"

// Value is a sealed interface over value expressions. TA is the attribute
// of embedded type expressions, VA the attribute of values and patterns.
type Value[TA, VA any] interface {
	Attributes() VA
	isValue()
}

// LiteralValue is a literal constant.
type LiteralValue[TA, VA any] struct {
	Attrs   VA
	Literal Literal
}

// ConstructorValue is a reference to a custom type constructor.
type ConstructorValue[TA, VA any] struct {
	Attrs  VA
	FQName naming.FQName
}

// TupleValue is a tuple.
type TupleValue[TA, VA any] struct {
	Attrs    VA
	Elements []Value[TA, VA]
}

// ListValue is a list.
type ListValue[TA, VA any] struct {
	Attrs VA
	Items []Value[TA, VA]
}

// RecordValue is a record literal.
type RecordValue[TA, VA any] struct {
	Attrs  VA
	Fields []RecordEntry[TA, VA]
}

// VariableValue is a reference to a local variable.
type VariableValue[TA, VA any] struct {
	Attrs VA
	Name  naming.Name
}

// ReferenceValue is a reference to a top-level value.
type ReferenceValue[TA, VA any] struct {
	Attrs  VA
	FQName naming.FQName
}

// FieldValue selects a field: `record.name`.
type FieldValue[TA, VA any] struct {
	Attrs  VA
	Record Value[TA, VA]
	Name   naming.Name
}

// FieldFunctionValue is a field accessor function: `.name`.
type FieldFunctionValue[TA, VA any] struct {
	Attrs VA
	Name  naming.Name
}

// ApplyValue applies Function to a single Argument.
type ApplyValue[TA, VA any] struct {
	Attrs    VA
	Function Value[TA, VA]
	Argument Value[TA, VA]
}

// LambdaValue is an anonymous function whose argument is matched by Pattern.
type LambdaValue[TA, VA any] struct {
	Attrs   VA
	Pattern Pattern[VA]
	Body    Value[TA, VA]
}

// LetDefinitionValue binds Name to Definition inside In.
type LetDefinitionValue[TA, VA any] struct {
	Attrs      VA
	Name       naming.Name
	Definition ValueDefinition[TA, VA]
	In         Value[TA, VA]
}

// LetRecursionValue binds mutually recursive definitions inside In.
type LetRecursionValue[TA, VA any] struct {
	Attrs    VA
	Bindings []LetBinding[TA, VA]
	In       Value[TA, VA]
}

// DestructureValue matches Value against Pattern and evaluates In.
type DestructureValue[TA, VA any] struct {
	Attrs   VA
	Pattern Pattern[VA]
	Value   Value[TA, VA]
	In      Value[TA, VA]
}

// IfThenElseValue is a conditional.
type IfThenElseValue[TA, VA any] struct {
	Attrs     VA
	Condition Value[TA, VA]
	Then      Value[TA, VA]
	Else      Value[TA, VA]
}

// PatternMatchValue matches Subject against Cases in order.
type PatternMatchValue[TA, VA any] struct {
	Attrs   VA
	Subject Value[TA, VA]
	Cases   []MatchCase[TA, VA]
}

// UpdateRecordValue copies Record with Fields replaced.
type UpdateRecordValue[TA, VA any] struct {
	Attrs  VA
	Record Value[TA, VA]
	Fields []RecordEntry[TA, VA]
}

// UnitValue is `()`.
type UnitValue[TA, VA any] struct {
	Attrs VA
}

// HoleValue marks an incomplete expression. ExpectedType may be nil.
type HoleValue[TA, VA any] struct {
	Attrs        VA
	Reason       HoleReason
	ExpectedType Type[TA]
}

// NativeValue is a platform-provided operation.
type NativeValue[TA, VA any] struct {
	Attrs  VA
	FQName naming.FQName
	Info   NativeInfo
}

// ExternalValue is a binding to a symbol of a target platform.
type ExternalValue[TA, VA any] struct {
	Attrs          VA
	ExternalName   string
	TargetPlatform string
}

func (v LiteralValue[TA, VA]) Attributes() VA       { return v.Attrs }
func (v ConstructorValue[TA, VA]) Attributes() VA   { return v.Attrs }
func (v TupleValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v ListValue[TA, VA]) Attributes() VA          { return v.Attrs }
func (v RecordValue[TA, VA]) Attributes() VA        { return v.Attrs }
func (v VariableValue[TA, VA]) Attributes() VA      { return v.Attrs }
func (v ReferenceValue[TA, VA]) Attributes() VA     { return v.Attrs }
func (v FieldValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v FieldFunctionValue[TA, VA]) Attributes() VA { return v.Attrs }
func (v ApplyValue[TA, VA]) Attributes() VA         { return v.Attrs }
func (v LambdaValue[TA, VA]) Attributes() VA        { return v.Attrs }
func (v LetDefinitionValue[TA, VA]) Attributes() VA { return v.Attrs }
func (v LetRecursionValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v DestructureValue[TA, VA]) Attributes() VA   { return v.Attrs }
func (v IfThenElseValue[TA, VA]) Attributes() VA    { return v.Attrs }
func (v PatternMatchValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v UpdateRecordValue[TA, VA]) Attributes() VA  { return v.Attrs }
func (v UnitValue[TA, VA]) Attributes() VA          { return v.Attrs }
func (v HoleValue[TA, VA]) Attributes() VA          { return v.Attrs }
func (v NativeValue[TA, VA]) Attributes() VA        { return v.Attrs }
func (v ExternalValue[TA, VA]) Attributes() VA      { return v.Attrs }

func (LiteralValue[TA, VA]) isValue()       {}
func (ConstructorValue[TA, VA]) isValue()   {}
func (TupleValue[TA, VA]) isValue()         {}
func (ListValue[TA, VA]) isValue()          {}
func (RecordValue[TA, VA]) isValue()        {}
func (VariableValue[TA, VA]) isValue()      {}
func (ReferenceValue[TA, VA]) isValue()     {}
func (FieldValue[TA, VA]) isValue()         {}
func (FieldFunctionValue[TA, VA]) isValue() {}
func (ApplyValue[TA, VA]) isValue()         {}
func (LambdaValue[TA, VA]) isValue()        {}
func (LetDefinitionValue[TA, VA]) isValue() {}
func (LetRecursionValue[TA, VA]) isValue()  {}
func (DestructureValue[TA, VA]) isValue()   {}
func (IfThenElseValue[TA, VA]) isValue()    {}
func (PatternMatchValue[TA, VA]) isValue()  {}
func (UpdateRecordValue[TA, VA]) isValue()  {}
func (UnitValue[TA, VA]) isValue()          {}
func (HoleValue[TA, VA]) isValue()          {}
func (NativeValue[TA, VA]) isValue()        {}
func (ExternalValue[TA, VA]) isValue()      {}

// RecordEntry is one named field of a record literal or update.
type RecordEntry[TA, VA any] struct {
	Name  naming.Name
	Value Value[TA, VA]
}

// MatchCase is one branch of a pattern match.
type MatchCase[TA, VA any] struct {
	Pattern Pattern[VA]
	Body    Value[TA, VA]
}

// LetBinding is one definition of a recursive let.
type LetBinding[TA, VA any] struct {
	Name       naming.Name
	Definition ValueDefinition[TA, VA]
}

// ValueDefinition is a value or function definition.
type ValueDefinition[TA, VA any] struct {
	Inputs []InputType[TA, VA]
	Output Type[TA]
	Body   ValueBody[TA, VA]
}

// InputType is one declared argument of a ValueDefinition.
type InputType[TA, VA any] struct {
	Name  naming.Name
	Attrs VA
	Type  Type[TA]
}

// ValueBody is a sealed interface over the possible bodies of a definition.
type ValueBody[TA, VA any] interface {
	isValueBody()
}

// ExpressionBody is a body given by an expression.
type ExpressionBody[TA, VA any] struct {
	Value Value[TA, VA]
}

// NativeBody is a body implemented by the platform.
type NativeBody struct {
	Info NativeInfo
}

// ExternalBody is a body bound to a target platform symbol.
type ExternalBody struct {
	ExternalName   string
	TargetPlatform string
}

// IncompleteBody is a body that has not been written yet.
type IncompleteBody struct {
	Incompleteness Incompleteness
}

func (ExpressionBody[TA, VA]) isValueBody() {}
func (NativeBody) isValueBody()             {}
func (ExternalBody) isValueBody()           {}
func (IncompleteBody) isValueBody()         {}

// HoleReason is a sealed interface explaining why a hole exists.
type HoleReason interface {
	isHoleReason()
}

// UnresolvedReference is a reference whose target could not be found.
type UnresolvedReference struct{ Target naming.FQName }

// DeletedDuringRefactor marks code removed by a refactoring transaction.
type DeletedDuringRefactor struct{ TxID string }

// TypeMismatch marks an expression whose type did not check.
type TypeMismatch struct{ Expected, Found string }

// Draft marks work in progress.
type Draft struct{}

func (UnresolvedReference) isHoleReason()   {}
func (DeletedDuringRefactor) isHoleReason() {}
func (TypeMismatch) isHoleReason()          {}
func (Draft) isHoleReason()                 {}

// Incompleteness is a sealed interface describing an unfinished definition.
type Incompleteness interface {
	isIncompleteness()
}

// IncompleteHole is a definition containing a hole.
type IncompleteHole struct{ Reason HoleReason }

// IncompleteDraft is a definition still being drafted.
type IncompleteDraft struct{}

func (IncompleteHole) isIncompleteness()  {}
func (IncompleteDraft) isIncompleteness() {}

// NativeHintKind categorizes a native operation.
type NativeHintKind string

// Native hint kinds.
const (
	HintArithmetic       NativeHintKind = "Arithmetic"
	HintComparison       NativeHintKind = "Comparison"
	HintStringOp         NativeHintKind = "StringOp"
	HintCollectionOp     NativeHintKind = "CollectionOp"
	HintPlatformSpecific NativeHintKind = "PlatformSpecific"
)

// NativeHintKinds lists the known hint kinds.
var NativeHintKinds = []NativeHintKind{
	HintArithmetic, HintComparison, HintStringOp, HintCollectionOp, HintPlatformSpecific,
}

// NativeHint categorizes a native operation. Platform is only meaningful
// for HintPlatformSpecific.
type NativeHint struct {
	Kind     NativeHintKind
	Platform string
}

// NativeInfo describes a native operation.
type NativeInfo struct {
	Hint        NativeHint
	Description string
}
