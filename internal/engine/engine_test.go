package engine

import (
	"regexp"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/convert"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/testutil"
	"github.com/roach88/morphir-ir/internal/traverse"
)

func classicLibrary() *ir.ClassicDocument {
	return &ir.ClassicDocument{
		FormatVersion: ir.DefaultClassicVersion,
		Distribution:  testutil.SampleLibrary(testutil.Classic()),
	}
}

func v4Library() *ir.V4Document {
	return &ir.V4Document{
		FormatVersion: ir.DefaultV4Version,
		Distribution:  testutil.SampleLibrary(testutil.V4()),
	}
}

func mustEncodeClassic(t *testing.T, doc *ir.ClassicDocument) []byte {
	t.Helper()
	data, err := classic.Encode(doc)
	require.NoError(t, err)
	return data
}

func mustEncodeV4(t *testing.T, doc *ir.V4Document, opts ...v4.EncodeOption) []byte {
	t.Helper()
	data, err := v4.Encode(doc, opts...)
	require.NoError(t, err)
	return data
}

func TestDecode_Classic(t *testing.T) {
	doc, err := Decode(mustEncodeClassic(t, classicLibrary()))
	require.NoError(t, err)

	assert.Equal(t, codec.Classic, doc.Dialect())
	assert.Equal(t, "Library", doc.Kind())
	assert.Equal(t, ir.DefaultClassicVersion, doc.FormatVersion())
	assert.True(t, doc.PackageName().Equal(testutil.SampleLibrary(testutil.Classic()).PackageName()))

	if diff := cmp.Diff(classicLibrary(), doc.Classic(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Classic() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(v4Library(), doc.V4(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("V4() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_V4(t *testing.T) {
	doc, err := Decode(mustEncodeV4(t, v4Library(), v4.Expanded()))
	require.NoError(t, err)

	assert.Equal(t, codec.V4, doc.Dialect())
	assert.Equal(t, "4.0.0", doc.FormatVersion().String())
	if diff := cmp.Diff(classicLibrary(), doc.Classic(), cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Classic() mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_Kinds(t *testing.T) {
	tests := []struct {
		name string
		dist ir.ClassicDistribution
		want string
	}{
		{"library", testutil.SampleLibrary(testutil.Classic()), "Library"},
		{"specs", testutil.SampleSpecs(testutil.Classic()), "Specs"},
		{"application", testutil.SampleApplication(testutil.Classic()), "Application"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromClassic(&ir.ClassicDocument{
				FormatVersion: ir.DefaultClassicVersion,
				Distribution:  tt.dist,
			}).Kind())
		})
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		detect bool
		check  func(error) bool
	}{
		{"invalid json", `{"formatVersion":`, true, func(error) bool { return true }},
		{"missing separators", `{"formatVersion" 3 "distribution" ["Library" [] [] {"modules" []}]}`, true, func(error) bool { return true }},
		{"doubled comma", `{"formatVersion":3,,"distribution":["Specs",[],[],{"modules":[]}]}`, true, func(error) bool { return true }},
		{"bare object", `{"Library":{}, "Specs":{}}`, true, codec.IsMalformedShape},
		{"unknown version", `{"formatVersion":5,"distribution":["Library"]}`, true, codec.IsUnknownFormatVersion},
		{"classic body", `{"formatVersion":3,"distribution":["Library"]}`, false, codec.IsMalformedShape},
		{"v4 body", `{"formatVersion":"4.0.0","distribution":{"Library":{"packageName":7}}}`, false, codec.IsMalformedShape},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.detect, IsDetectError(err))
			assert.Equal(t, !tt.detect, IsDecodeError(err))
			assert.True(t, tt.check(err), "unexpected cause: %v", err)
		})
	}
}

func TestEncode_UnsupportedDialect(t *testing.T) {
	_, err := Encode(FromV4(v4Library()), codec.Dialect("v9"))
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrCodeUnsupportedDialect, e.Code)
}

func TestMigrate(t *testing.T) {
	tests := []struct {
		name   string
		input  []byte
		target codec.Dialect
		opts   []v4.EncodeOption
		want   []byte
	}{
		{
			name:   "classic to v4",
			input:  mustEncodeClassic(t, classicLibrary()),
			target: codec.V4,
			want:   mustEncodeV4(t, v4Library()),
		},
		{
			name:   "classic to expanded v4",
			input:  mustEncodeClassic(t, classicLibrary()),
			target: codec.V4,
			opts:   []v4.EncodeOption{v4.Expanded()},
			want:   mustEncodeV4(t, v4Library(), v4.Expanded()),
		},
		{
			name:   "v4 to classic",
			input:  mustEncodeV4(t, v4Library()),
			target: codec.Classic,
			want:   mustEncodeClassic(t, classicLibrary()),
		},
		{
			name:   "expanded v4 to compact v4",
			input:  mustEncodeV4(t, v4Library(), v4.Expanded()),
			target: codec.V4,
			want:   mustEncodeV4(t, v4Library()),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := Migrate(tt.input, tt.target, tt.opts...)
			require.NoError(t, err)
			assert.Equal(t, tt.target, res.Target)
			assert.Equal(t, string(tt.want), string(res.Output))

			again, err := Decode(res.Output)
			require.NoError(t, err)
			assert.Equal(t, tt.target, again.Dialect())
		})
	}
}

func TestMigrate_Converted(t *testing.T) {
	res, err := Migrate(mustEncodeClassic(t, classicLibrary()), codec.Classic)
	require.NoError(t, err)
	assert.False(t, res.Converted())
	assert.Equal(t, codec.Classic, res.Source)
}

var hexDigest = regexp.MustCompile(`^[0-9a-f]{64}$`)

func TestFingerprint(t *testing.T) {
	fromClassic, err := Fingerprint(FromClassic(classicLibrary()))
	require.NoError(t, err)
	assert.Regexp(t, hexDigest, fromClassic)

	fromV4, err := Fingerprint(FromV4(v4Library()))
	require.NoError(t, err)
	assert.Equal(t, fromClassic, fromV4, "dialect must not change the fingerprint")

	// Attributes do not contribute.
	withSource := v4Library()
	b := testutil.NewBuilder(
		ir.TypeAttributes{},
		ir.ValueAttributes{Source: &ir.SourceLocation{StartLine: 1, StartColumn: 1, EndLine: 2, EndColumn: 8}},
	)
	withSource.Distribution = testutil.SampleLibrary(b)
	fromSource, err := Fingerprint(FromV4(withSource))
	require.NoError(t, err)
	assert.Equal(t, fromClassic, fromSource)

	specs, err := Fingerprint(FromClassic(&ir.ClassicDocument{
		FormatVersion: ir.VersionNumber(2),
		Distribution:  testutil.SampleSpecs(testutil.Classic()),
	}))
	require.NoError(t, err)
	assert.NotEqual(t, fromClassic, specs)
}

func TestFingerprint_MatchesDigest(t *testing.T) {
	got, err := Fingerprint(FromClassic(classicLibrary()))
	require.NoError(t, err)

	want, err := jsonv.Digest(FingerprintDomain, classic.Default.EncodeDocument(classicLibrary()))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestInspect(t *testing.T) {
	app := &ir.V4Document{
		FormatVersion: ir.VersionText("4.1"),
		Distribution:  testutil.SampleApplication(testutil.V4()),
	}
	s, err := Inspect(FromV4(app))
	require.NoError(t, err)

	assert.Equal(t, "v4", s.Dialect)
	assert.Equal(t, "4.1", s.FormatVersion)
	assert.Equal(t, "Application", s.Kind)
	assert.Equal(t, app.Distribution.PackageName().String(), s.Package)
	assert.Equal(t, len(app.Distribution.DependencyList()), s.Dependencies)
	assert.Equal(t, traverse.Count(app), s.Stats)

	fp, err := Fingerprint(FromClassic(convert.ToClassic(app)))
	require.NoError(t, err)
	assert.Equal(t, fp, s.Fingerprint)
}
