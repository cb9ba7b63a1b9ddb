package codec

import "strings"

// NodeKind names a position in the IR tree that is decoded by tag.
type NodeKind string

// Tagged node kinds.
const (
	KindLiteral           NodeKind = "literal"
	KindType              NodeKind = "type"
	KindPattern           NodeKind = "pattern"
	KindValue             NodeKind = "value"
	KindValueBody         NodeKind = "value body"
	KindTypeDefinition    NodeKind = "type definition"
	KindTypeSpecification NodeKind = "type specification"
	KindDistribution      NodeKind = "distribution"
	KindHoleReason        NodeKind = "hole reason"
	KindIncompleteness    NodeKind = "incompleteness"
	KindNativeHint        NodeKind = "native hint"
)

// tagTable maps each kind to its canonical tags and historical aliases.
var tagTable = map[NodeKind]struct {
	canonical []string
	aliases   map[string]string
}{
	KindLiteral: {
		canonical: []string{"BoolLiteral", "CharLiteral", "StringLiteral", "IntegerLiteral", "FloatLiteral", "DecimalLiteral"},
		aliases: map[string]string{
			"WholeNumberLiteral": "IntegerLiteral",
			"IntLiteral":         "IntegerLiteral",
		},
	},
	KindType: {
		canonical: []string{"Variable", "Reference", "Tuple", "Record", "ExtensibleRecord", "Function", "Unit"},
	},
	KindPattern: {
		canonical: []string{"WildcardPattern", "AsPattern", "TuplePattern", "ConstructorPattern", "EmptyListPattern", "HeadTailPattern", "LiteralPattern", "UnitPattern"},
	},
	KindValue: {
		canonical: []string{
			"Literal", "Constructor", "Tuple", "List", "Record", "Variable", "Reference",
			"Field", "FieldFunction", "Apply", "Lambda", "LetDefinition", "LetRecursion",
			"Destructure", "IfThenElse", "PatternMatch", "UpdateRecord", "Unit",
			"Hole", "Native", "External",
		},
		aliases: map[string]string{"Update": "UpdateRecord"},
	},
	KindValueBody: {
		canonical: []string{"ExpressionBody", "NativeBody", "ExternalBody", "IncompleteBody"},
	},
	KindTypeDefinition: {
		canonical: []string{"TypeAliasDefinition", "CustomTypeDefinition", "IncompleteTypeDefinition"},
	},
	KindTypeSpecification: {
		canonical: []string{"TypeAliasSpecification", "OpaqueTypeSpecification", "CustomTypeSpecification"},
	},
	KindDistribution: {
		canonical: []string{"Library", "Specs", "Application"},
	},
	KindHoleReason: {
		canonical: []string{"UnresolvedReference", "DeletedDuringRefactor", "TypeMismatch", "Draft"},
	},
	KindIncompleteness: {
		canonical: []string{"Hole", "Draft"},
	},
	KindNativeHint: {
		canonical: []string{"Arithmetic", "Comparison", "StringOp", "CollectionOp", "PlatformSpecific"},
	},
}

// tagIndex maps kind -> normalized tag -> canonical tag.
var tagIndex = buildTagIndex()

func buildTagIndex() map[NodeKind]map[string]string {
	idx := make(map[NodeKind]map[string]string, len(tagTable))
	for kind, entry := range tagTable {
		m := make(map[string]string)
		for _, tag := range entry.canonical {
			m[normalizeTag(tag)] = tag
		}
		for alias, tag := range entry.aliases {
			m[normalizeTag(alias)] = tag
		}
		idx[kind] = m
	}
	return idx
}

// normalizeTag folds case and drops "_" and "-", so "whole_number_literal",
// "wholeNumberLiteral" and "WholeNumberLiteral" are the same tag.
func normalizeTag(tag string) string {
	tag = strings.ReplaceAll(tag, "_", "")
	tag = strings.ReplaceAll(tag, "-", "")
	return strings.ToLower(tag)
}

// LookupTag resolves tag, including aliases, to its canonical spelling for
// kind. Matching is case-insensitive.
func LookupTag(kind NodeKind, tag string) (string, bool) {
	canonical, ok := tagIndex[kind][normalizeTag(tag)]
	return canonical, ok
}

// CanonicalTags returns the canonical tags of kind in declaration order.
func CanonicalTags(kind NodeKind) []string {
	return append([]string(nil), tagTable[kind].canonical...)
}

// UnknownTag builds the error for a tag that is not valid for kind. A tag
// that belongs to another node kind is a field type mismatch; anything else
// is a malformed shape.
func UnknownTag(kind NodeKind, tag string) *Error {
	for _, other := range []NodeKind{KindType, KindValue, KindPattern, KindLiteral, KindTypeDefinition, KindTypeSpecification, KindDistribution} {
		if other == kind {
			continue
		}
		if _, ok := LookupTag(other, tag); ok {
			return Mismatch("expected %s, found %s tag %q", kind, other, tag).WithTag(tag)
		}
	}
	return Malformed("unknown %s tag %q", kind, tag).WithTag(tag)
}
