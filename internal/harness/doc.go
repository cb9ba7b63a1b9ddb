// Package harness runs conformance scenarios against the IR engine.
//
// A scenario names an input document, an optional migration target and a
// list of assertions. The harness runs the document through the same
// pipeline the CLI uses (detect, decode, encode, re-decode), records each
// stage in a trace and evaluates the assertions against the outcome.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: classic_specs_to_v4
//	description: "What this scenario validates"
//	input: ../fixtures/specs.classic.json   # or an inline `document:`
//	target: v4                               # optional
//	expanded: false                          # V4 output only
//	assertions:
//	  - type: dialect
//	    dialect: classic
//	  - type: round_trip
//	  - type: fingerprint_stable
//	  - type: count
//	    field: modules
//	    count: 0
//	  - type: output_contains
//	    text: '"Specs"'
//	  - type: decode_error
//	    kind: MALFORMED_SHAPE
//	    path: /distribution
//
// # Assertion Types
//
//   - dialect: the detected source dialect
//   - decode_error: decoding failed with the given kind and JSON pointer
//   - round_trip: re-encoding the decoded output reproduces it byte for byte
//   - fingerprint_stable: input and output share a structural fingerprint
//   - count: a node statistic of the decoded input
//   - output_contains: a substring of the encoded output
//
// # Golden Files
//
// RunWithGolden compares the trace and output of a scenario against
// testdata/golden/{name}.golden. Regenerate with:
//
//	go test ./internal/harness -update
package harness
