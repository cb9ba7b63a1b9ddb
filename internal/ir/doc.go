// Package ir provides the Morphir IR data model.
//
// The tree types (Type, Pattern, Value, definitions, modules, packages,
// distributions) are generic over the attribute value attached to every
// node, so one set of definitions serves both wire dialects:
//
//   - Classic trees use ClassicAttrs (opaque JSON) for types and values
//   - V4 trees use TypeAttributes and ValueAttributes
//
// This package contains type definitions, constructors and accessors only.
// All other internal packages import ir; ir imports only naming and jsonv.
//
// Key design constraints:
//   - Every sum type is a sealed interface closed by an unexported marker
//     method; consumers switch over it exhaustively and report unknown
//     variants instead of defaulting
//   - Attribute type is uniform within a tree; converting attribute types is
//     a whole-tree transform (see internal/traverse)
//   - Trees are immutable once built; transforms construct new trees
//   - Named collections are ordered slices, never maps
package ir
