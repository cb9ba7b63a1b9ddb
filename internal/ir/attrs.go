package ir

import "github.com/roach88/morphir-ir/internal/jsonv"

// ClassicAttrs is the opaque JSON attribute carried by Classic nodes.
// Raw is nil when the node has no attribute payload.
type ClassicAttrs struct {
	Raw jsonv.Value
}

// NewClassicAttrs wraps v, normalizing null, [] and {} to the empty value.
func NewClassicAttrs(v jsonv.Value) ClassicAttrs {
	if jsonv.IsEmpty(v) {
		return ClassicAttrs{}
	}
	return ClassicAttrs{Raw: v}
}

// IsEmpty reports whether there is no attribute payload.
func (a ClassicAttrs) IsEmpty() bool { return a.Raw == nil }

// SourceLocation is a span in the originating source file. Lines and
// columns are 1-based.
type SourceLocation struct {
	StartLine   int
	StartColumn int
	EndLine     int
	EndColumn   int
}

// TypeAttributes is the V4 attribute of type nodes.
type TypeAttributes struct {
	Source      *SourceLocation
	Constraints jsonv.Value
	Extensions  jsonv.Object
}

// IsEmpty reports whether no attribute field is set.
func (a TypeAttributes) IsEmpty() bool {
	return a.Source == nil && a.Constraints == nil && len(a.Extensions) == 0
}

// ValueAttributes is the V4 attribute of value and pattern nodes.
type ValueAttributes struct {
	Source       *SourceLocation
	InferredType jsonv.Value
	Extensions   jsonv.Object
}

// IsEmpty reports whether no attribute field is set.
func (a ValueAttributes) IsEmpty() bool {
	return a.Source == nil && a.InferredType == nil && len(a.Extensions) == 0
}
