package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
)

const specsV4 = `{"formatVersion":"4.0.0","distribution":{"Specs":{"packageName":"acme/shop","dependencies":{},"spec":{"modules":{}}}}}`

func traceStrings(r *Result) []string {
	out := make([]string, len(r.Trace))
	for i, e := range r.Trace {
		out[i] = e.String()
	}
	return out
}

func TestRun_DecodeOnly(t *testing.T) {
	result, err := Run(&Scenario{
		Name:       "decode_only",
		Document:   specsV4,
		Assertions: []Assertion{{Type: AssertDialect, Dialect: "v4"}},
	})
	require.NoError(t, err)

	assert.True(t, result.Pass, result.Errors)
	assert.Equal(t, codec.V4, result.Source)
	assert.Nil(t, result.Output)
	assert.Equal(t, []string{"detect v4", "decode v4 Specs acme/shop"}, traceStrings(result))
}

func TestRun_Expanded(t *testing.T) {
	result, err := Run(&Scenario{
		Name:     "expanded",
		Document: specsV4,
		Target:   "latest",
		Expanded: true,
		Assertions: []Assertion{
			{Type: AssertRoundTrip},
			{Type: AssertFingerprintStable},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.Pass, result.Errors)
	assert.Equal(t, []string{
		"detect v4",
		"decode v4 Specs acme/shop",
		"encode v4",
		"redecode v4",
	}, traceStrings(result))
}

func TestRun_DetectFailure(t *testing.T) {
	tests := []struct {
		name     string
		document string
		kind     codec.ErrorKind
		trace    string
	}{
		{"not json", `{"formatVersion":`, invalidJSON, "detect INVALID_JSON"},
		{"unknown version", `{"formatVersion":9,"distribution":[]}`, codec.ErrUnknownFormatVersion, "detect UNKNOWN_FORMAT_VERSION /formatVersion"},
		{"unrecognized", `[1,2]`, codec.ErrMalformedShape, "detect MALFORMED_SHAPE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Run(&Scenario{
				Name:       tt.name,
				Document:   tt.document,
				Assertions: []Assertion{{Type: AssertDecodeError, Kind: string(tt.kind)}},
			})
			require.NoError(t, err)
			require.NotNil(t, result.Issue)
			assert.Equal(t, tt.kind, result.Issue.Kind)
			assert.Equal(t, []string{tt.trace}, traceStrings(result))
			assert.Empty(t, result.Source)
			assert.True(t, result.Pass, result.Errors)
		})
	}
}

func TestRun_UnexpectedDecodeFailure(t *testing.T) {
	result, err := Run(&Scenario{
		Name:       "unexpected",
		Document:   `{"formatVersion":3,"distribution":["Library"]}`,
		Target:     "v4",
		Assertions: []Assertion{{Type: AssertDialect, Dialect: "classic"}},
	})
	require.NoError(t, err)

	assert.False(t, result.Pass)
	require.Len(t, result.Errors, 1)
	assert.Contains(t, result.Errors[0], "unexpected decode failure: MALFORMED_SHAPE at /distribution")
	assert.Nil(t, result.Output)
}

func TestRun_MissingInputFile(t *testing.T) {
	_, err := Run(&Scenario{Name: "missing", Input: "testdata/fixtures/missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read input")
}

func TestTraceEvent_String(t *testing.T) {
	assert.Equal(t, "encode v4", TraceEvent{Stage: StageEncode, Dialect: "v4"}.String())
	assert.Equal(t, "detect MALFORMED_SHAPE", TraceEvent{Stage: StageDetect, Detail: "MALFORMED_SHAPE"}.String())
}
