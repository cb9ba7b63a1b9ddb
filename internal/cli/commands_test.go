package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/engine"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	out, errOut := &bytes.Buffer{}, &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func classicFixture(t *testing.T) string {
	t.Helper()
	data, err := classic.Encode(&ir.ClassicDocument{
		FormatVersion: ir.DefaultClassicVersion,
		Distribution:  testutil.SampleLibrary(testutil.Classic()),
	})
	require.NoError(t, err)
	return writeFile(t, "morphir-ir.json", data)
}

func v4Fixture(t *testing.T) string {
	t.Helper()
	data, err := v4.Encode(&ir.V4Document{
		FormatVersion: ir.DefaultV4Version,
		Distribution:  testutil.SampleApplication(testutil.V4()),
	})
	require.NoError(t, err)
	return writeFile(t, "morphir-ir.v4.json", data)
}

const brokenClassic = `{"formatVersion":3,"distribution":["Library"]}`

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		want string
	}{
		{"classic", classicFixture, "classic"},
		{"v4", v4Fixture, "v4"},
		{"bare v4", func(t *testing.T) string {
			return writeFile(t, "bare.json", []byte(`{"Library":{}}`))
		}, "v4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := execute(t, "detect", tt.path(t))
			require.NoError(t, err)
			assert.Equal(t, tt.want+"\n", out)
		})
	}
}

func TestDetect_JSON(t *testing.T) {
	path := v4Fixture(t)
	out, _, err := execute(t, "--format", "json", "detect", path)
	require.NoError(t, err)

	var resp struct {
		Status string       `json:"status"`
		Data   DetectResult `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "v4", resp.Data.Dialect)
	assert.Equal(t, path, resp.Data.Path)
}

func TestDetect_Unrecognized(t *testing.T) {
	path := writeFile(t, "other.json", []byte(`{"Library":{},"Specs":{}}`))
	out, _, err := execute(t, "detect", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeDetectFailed)
}

func TestMissingInput(t *testing.T) {
	for _, name := range []string{"detect", "inspect", "validate", "migrate"} {
		t.Run(name, func(t *testing.T) {
			out, _, err := execute(t, name, filepath.Join(t.TempDir(), "missing.json"))
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
			assert.Contains(t, out, "not found")
		})
	}
}

func TestValidate(t *testing.T) {
	path := classicFixture(t)
	out, _, err := execute(t, "validate", path)
	require.NoError(t, err)
	assert.Contains(t, out, "\u2713")
	assert.Contains(t, out, "is valid (classic)")
}

func TestValidate_Invalid(t *testing.T) {
	path := writeFile(t, "broken.json", []byte(brokenClassic))

	out, _, err := execute(t, "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "\u2717")
	assert.Contains(t, out, "MALFORMED_SHAPE")
	assert.Contains(t, out, "at /distribution")
}

func TestValidate_InvalidJSON(t *testing.T) {
	path := writeFile(t, "broken.json", []byte(brokenClassic))

	out, _, err := execute(t, "--format", "json", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Status string           `json:"status"`
		Data   ValidationResult `json:"data"`
		Error  *CLIError        `json:"error"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	assert.False(t, resp.Data.Valid)
	require.NotNil(t, resp.Data.Issue)
	assert.Equal(t, "MALFORMED_SHAPE", resp.Data.Issue.Kind)
	assert.Equal(t, "/distribution", resp.Data.Issue.Path)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeDecodeFailed, resp.Error.Code)
}

func TestValidate_UnknownVersion(t *testing.T) {
	path := writeFile(t, "future.json", []byte(`{"formatVersion":"5.0.0","distribution":{"Library":{}}}`))

	out, _, err := execute(t, "--format", "yaml", "validate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))

	var resp struct {
		Data  ValidationResult `yaml:"data"`
		Error *CLIError        `yaml:"error"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	require.NotNil(t, resp.Data.Issue)
	assert.Equal(t, "UNKNOWN_FORMAT_VERSION", resp.Data.Issue.Kind)
	assert.Equal(t, "/formatVersion", resp.Data.Issue.Path)
	assert.Equal(t, ErrCodeDetectFailed, resp.Error.Code)
}

func TestInspect(t *testing.T) {
	path := v4Fixture(t)
	out, _, err := execute(t, "inspect", path)
	require.NoError(t, err)

	for _, label := range []string{"Dialect:", "Format version:", "Package:", "Modules:", "Value nodes:", "Fingerprint:"} {
		assert.Contains(t, out, label)
	}
	assert.Contains(t, out, "Application")
	assert.Contains(t, out, "4.0.0")
}

func TestInspect_FingerprintMatchesAcrossDialects(t *testing.T) {
	classicPath := classicFixture(t)

	migrated := filepath.Join(t.TempDir(), "migrated.json")
	_, _, err := execute(t, "migrate", classicPath, "--target", "v4", "-o", migrated)
	require.NoError(t, err)

	summaries := make([]engine.Summary, 2)
	for i, path := range []string{classicPath, migrated} {
		out, _, err := execute(t, "--format", "json", "inspect", path)
		require.NoError(t, err)

		var resp struct {
			Data engine.Summary `json:"data"`
		}
		require.NoError(t, json.Unmarshal([]byte(out), &resp))
		summaries[i] = resp.Data
	}

	assert.Equal(t, "classic", summaries[0].Dialect)
	assert.Equal(t, "v4", summaries[1].Dialect)
	assert.Equal(t, summaries[0].Stats, summaries[1].Stats)
	assert.Equal(t, summaries[0].Fingerprint, summaries[1].Fingerprint)
	assert.NotEmpty(t, summaries[0].Fingerprint)
}

func TestMigrate_Stdout(t *testing.T) {
	path := classicFixture(t)

	out, _, err := execute(t, "migrate", path, "--target", "v4")
	require.NoError(t, err)

	want, err := v4.Encode(&ir.V4Document{
		FormatVersion: ir.DefaultV4Version,
		Distribution:  testutil.SampleLibrary(testutil.V4()),
	})
	require.NoError(t, err)
	assert.Equal(t, string(want)+"\n", out)
}

func TestMigrate_ToFile(t *testing.T) {
	path := v4Fixture(t)
	dest := filepath.Join(t.TempDir(), "classic.json")

	out, _, err := execute(t, "migrate", path, "--target", "classic", "--output", dest)
	require.NoError(t, err)
	assert.Contains(t, out, "v4 -> classic")

	data, err := os.ReadFile(dest)
	require.NoError(t, err)
	doc, err := engine.Decode(data)
	require.NoError(t, err)
	assert.Equal(t, "classic", doc.Dialect().String())
	assert.Equal(t, "Application", doc.Kind())
}

func TestMigrate_ExpandedAndPretty(t *testing.T) {
	path := classicFixture(t)

	out, _, err := execute(t, "migrate", path, "--expanded", "--pretty")
	require.NoError(t, err)
	assert.Contains(t, out, `"formatVersion": "4.0.0"`)
	assert.Contains(t, out, "\n  ")

	doc, err := engine.Decode([]byte(out))
	require.NoError(t, err)
	assert.Equal(t, "v4", doc.Dialect().String())
}

func TestMigrate_FlagErrors(t *testing.T) {
	path := classicFixture(t)
	tests := []struct {
		name string
		args []string
	}{
		{"unknown target", []string{"migrate", path, "--target", "v9"}},
		{"expanded classic", []string{"migrate", path, "--target", "classic", "--expanded"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Equal(t, ExitCommandError, GetExitCode(err))
		})
	}
}

func TestMigrate_InvalidInput(t *testing.T) {
	path := writeFile(t, "broken.json", []byte(brokenClassic))
	_, _, err := execute(t, "migrate", path)
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestVerboseLogsToStderr(t *testing.T) {
	path := classicFixture(t)
	out, errOut, err := execute(t, "--verbose", "--format", "json", "validate", path)
	require.NoError(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Contains(t, errOut, "Decoded classic document")
	assert.Contains(t, errOut, "dialect detected")
}
