package harness

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeScenario(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadScenario_ResolvesInput(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "classic_specs_to_v4.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "classic_specs_to_v4", s.Name)
	assert.Equal(t, filepath.Join("testdata", "fixtures", "specs.classic.json"), s.Input)
	assert.Equal(t, "v4", s.Target)
	require.Len(t, s.Assertions, 5)
	assert.Equal(t, AssertDialect, s.Assertions[0].Type)
	assert.Equal(t, "modules", s.Assertions[1].Field)
}

func TestLoadScenario_InlineDocument(t *testing.T) {
	s, err := LoadScenario(filepath.Join("testdata", "scenarios", "v4_specs_to_classic.yaml"))
	require.NoError(t, err)
	assert.Empty(t, s.Input)
	assert.Contains(t, s.Document, `"Specs"`)
}

func TestLoadScenarios(t *testing.T) {
	scenarios, err := LoadScenarios(filepath.Join("testdata", "scenarios"))
	require.NoError(t, err)

	names := make([]string, len(scenarios))
	for i, s := range scenarios {
		names[i] = s.Name
	}
	assert.Equal(t, []string{"broken_classic", "classic_specs_to_v4", "v4_specs_to_classic"}, names)
}

func TestLoadScenarios_DuplicateNames(t *testing.T) {
	dir := t.TempDir()
	body := `name: same
description: d
document: '{}'
assertions:
  - type: dialect
    dialect: v4
`
	writeScenario(t, dir, "a.yaml", body)
	writeScenario(t, dir, "b.yaml", body)

	_, err := LoadScenarios(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"same"`)
}

func TestLoadScenario_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "unknown field",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertion:\n  - type: round_trip\n",
			wantErr: "failed to parse YAML",
		},
		{
			name:    "missing name",
			content: "description: d\ndocument: '{}'\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "name is required",
		},
		{
			name:    "missing description",
			content: "name: x\ndocument: '{}'\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "description is required",
		},
		{
			name:    "no input",
			content: "name: x\ndescription: d\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "one of input or document is required",
		},
		{
			name:    "both inputs",
			content: "name: x\ndescription: d\ninput: a.json\ndocument: '{}'\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "mutually exclusive",
		},
		{
			name:    "missing input file",
			content: "name: x\ndescription: d\ninput: missing.json\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "input file not found",
		},
		{
			name:    "bad target",
			content: "name: x\ndescription: d\ndocument: '{}'\ntarget: v9\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "target",
		},
		{
			name:    "expanded classic",
			content: "name: x\ndescription: d\ndocument: '{}'\ntarget: classic\nexpanded: true\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "expanded applies to V4 output only",
		},
		{
			name:    "expanded without target",
			content: "name: x\ndescription: d\ndocument: '{}'\nexpanded: true\nassertions:\n  - type: dialect\n    dialect: v4\n",
			wantErr: "expanded requires a target",
		},
		{
			name:    "no assertions",
			content: "name: x\ndescription: d\ndocument: '{}'\n",
			wantErr: "assertions list is required",
		},
		{
			name:    "unknown assertion",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertions:\n  - type: trace_order\n",
			wantErr: `unknown assertion type "trace_order"`,
		},
		{
			name:    "round trip without target",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertions:\n  - type: round_trip\n",
			wantErr: "round_trip requires a target",
		},
		{
			name:    "bad dialect",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertions:\n  - type: dialect\n    dialect: v7\n",
			wantErr: "assertions[0]: dialect",
		},
		{
			name:    "bad error kind",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertions:\n  - type: decode_error\n    kind: BROKEN\n",
			wantErr: `unknown error kind "BROKEN"`,
		},
		{
			name:    "bad count field",
			content: "name: x\ndescription: d\ndocument: '{}'\nassertions:\n  - type: count\n    field: lines\n",
			wantErr: `unknown field "lines"`,
		},
		{
			name:    "empty text",
			content: "name: x\ndescription: d\ndocument: '{}'\ntarget: v4\nassertions:\n  - type: output_contains\n",
			wantErr: "text is required",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			path := writeScenario(t, dir, "scenario.yaml", tt.content)
			_, err := LoadScenario(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadScenario_MissingFile(t *testing.T) {
	_, err := LoadScenario(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read scenario file")
}
