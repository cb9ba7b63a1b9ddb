// Package v4 reads and writes the V4 wire dialect.
//
// Every node is a single-key object whose key is the variant tag and whose
// value holds the node's fields by name:
//
//	{"Apply": {"function": {"Reference": {"fqname": "morphir/s-d-k:basics#add"}}, "argument": ...}}
//
// Field names are kebab-case ("then-branch", "tx-id"); the camelCase
// spelling is accepted on decode. Identifiers use their canonical strings:
// names are kebab-case, paths are "/"-joined and fully qualified names use
// the "pkg:mod#local" form.
//
// Decoding is lenient about legacy input. Each node is tried as
//
//  1. a V4 object wrapper,
//  2. a Classic tagged array, read by the Classic codec with V4 attributes,
//  3. a bare canonical string, for type and value variables and references.
//
// Encoding always produces object wrappers. An Encoder built with Compact
// (the default) leaves out empty attributes, argument lists and docs;
// Expanded writes them.
package v4
