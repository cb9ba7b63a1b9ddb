package harness

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/engine"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
	"github.com/roach88/morphir-ir/internal/traverse"
)

// libraryResult runs the sample library through a Classic to V4 migration.
func libraryResult(t *testing.T) (*Result, *AssertionContext) {
	t.Helper()
	doc := engine.FromClassic(&ir.ClassicDocument{
		FormatVersion: ir.DefaultClassicVersion,
		Distribution:  testutil.SampleLibrary(testutil.Classic()),
	})
	actx := &AssertionContext{Target: codec.V4}
	out, err := engine.Encode(doc, actx.Target)
	require.NoError(t, err)

	r := NewResult()
	r.Source = codec.Classic
	r.Document = doc
	r.Output = out
	r.AddTrace(StageDetect, codec.Classic, "")
	return r, actx
}

func traverseStats(t *testing.T, doc *engine.Document) traverse.Stats {
	t.Helper()
	s, err := engine.Inspect(doc)
	require.NoError(t, err)
	return s.Stats
}

func TestAssertionError_Format(t *testing.T) {
	err := &AssertionError{
		Type:     AssertDialect,
		Expected: "v4",
		Actual:   "classic",
		Trace:    []TraceEvent{{Stage: StageDetect, Dialect: "classic"}},
	}
	msg := err.Error()
	assert.Contains(t, msg, "Assertion failed: dialect")
	assert.Contains(t, msg, "Expected: v4")
	assert.Contains(t, msg, "Actual: classic")
	assert.Contains(t, msg, "[1] detect classic")
}

func TestEvaluateAssertions_Pass(t *testing.T) {
	result, actx := libraryResult(t)
	stats := traverseStats(t, result.Document)

	errs := EvaluateAssertions(result, []Assertion{
		{Type: AssertDialect, Dialect: "classic"},
		{Type: AssertRoundTrip},
		{Type: AssertFingerprintStable},
		{Type: AssertCount, Field: "modules", Count: stats.Modules},
		{Type: AssertCount, Field: "nodes", Count: stats.Nodes()},
		{Type: AssertOutputContains, Text: `"Library"`},
	}, actx)
	assert.Empty(t, errs)
}

func TestEvaluateAssertions_Failures(t *testing.T) {
	tests := []struct {
		name      string
		assertion Assertion
		mutate    func(*Result)
		want      string
	}{
		{"dialect", Assertion{Type: AssertDialect, Dialect: "v4"}, nil, "Expected: v4"},
		{"decode error on valid input", Assertion{Type: AssertDecodeError, Kind: "MALFORMED_SHAPE"}, nil, "document decoded"},
		{"count", Assertion{Type: AssertCount, Field: "modules", Count: 99}, nil, "modules = 99"},
		{"output contains", Assertion{Type: AssertOutputContains, Text: `"Application"`}, nil, `output containing "Application"`},
		{"round trip", Assertion{Type: AssertRoundTrip}, func(r *Result) {
			// Whitespace is not canonical output.
			r.Output = append([]byte(" "), r.Output...)
		}, "Assertion failed: round_trip"},
		{"fingerprint", Assertion{Type: AssertFingerprintStable}, func(r *Result) {
			r.Document = engine.FromClassic(&ir.ClassicDocument{
				FormatVersion: ir.DefaultClassicVersion,
				Distribution:  testutil.SampleSpecs(testutil.Classic()),
			})
		}, "Assertion failed: fingerprint_stable"},
		{"no output", Assertion{Type: AssertRoundTrip}, func(r *Result) { r.Output = nil }, "no output"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, actx := libraryResult(t)
			if tt.mutate != nil {
				tt.mutate(result)
			}
			errs := EvaluateAssertions(result, []Assertion{tt.assertion}, actx)
			require.Len(t, errs, 1)
			assert.True(t, strings.HasPrefix(errs[0], "assertion 0 ("+tt.assertion.Type+")"), errs[0])
			assert.Contains(t, errs[0], tt.want)
		})
	}
}

func TestEvaluateAssertions_DecodeError(t *testing.T) {
	result := NewResult()
	result.Source = codec.Classic
	result.Issue = issueOf(codec.At(codec.Malformed("expected 3 fields"), "distribution"))

	tests := []struct {
		name      string
		assertion Assertion
		ok        bool
	}{
		{"kind only", Assertion{Type: AssertDecodeError, Kind: "MALFORMED_SHAPE"}, true},
		{"kind and path", Assertion{Type: AssertDecodeError, Kind: "MALFORMED_SHAPE", Path: "/distribution"}, true},
		{"wrong path", Assertion{Type: AssertDecodeError, Kind: "MALFORMED_SHAPE", Path: "/formatVersion"}, false},
		{"wrong kind", Assertion{Type: AssertDecodeError, Kind: "FIELD_TYPE_MISMATCH"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := EvaluateAssertions(result, []Assertion{tt.assertion}, &AssertionContext{})
			if tt.ok {
				assert.Empty(t, errs)
			} else {
				require.Len(t, errs, 1)
				assert.Contains(t, errs[0], "MALFORMED_SHAPE at /distribution")
			}
		})
	}

	// Without a decode_error assertion the failure itself is reported, and
	// assertions needing a document fail too.
	errs := EvaluateAssertions(result, []Assertion{{Type: AssertCount, Field: "values"}}, &AssertionContext{})
	require.Len(t, errs, 2)
	assert.Contains(t, errs[0], "unexpected decode failure")
	assert.Contains(t, errs[1], "input did not decode")
}

func TestIssueOf(t *testing.T) {
	err := codec.At(codec.Tagged(codec.Mismatch("expected a type"), "Reference"), "distribution")
	issue := issueOf(err)
	assert.Equal(t, codec.ErrFieldTypeMismatch, issue.Kind)
	assert.Equal(t, "/distribution", issue.Path)
	assert.Equal(t, "Reference", issue.Tag)

	plain := issueOf(errors.New("unexpected end of JSON input"))
	assert.Equal(t, invalidJSON, plain.Kind)
	assert.Empty(t, plain.Path)
}
