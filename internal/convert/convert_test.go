package convert

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func classicDoc(dist ir.ClassicDistribution) *ir.ClassicDocument {
	return &ir.ClassicDocument{FormatVersion: ir.DefaultClassicVersion, Distribution: dist}
}

func TestToV4_Samples(t *testing.T) {
	tests := []struct {
		name    string
		classic ir.ClassicDistribution
		v4      ir.V4Distribution
	}{
		{"library", testutil.SampleLibrary(testutil.Classic()), testutil.SampleLibrary(testutil.V4())},
		{"application", testutil.SampleApplication(testutil.Classic()), testutil.SampleApplication(testutil.V4())},
		{"specs", testutil.SampleSpecs(testutil.Classic()), testutil.SampleSpecs(testutil.V4())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToV4(classicDoc(tt.classic))
			assert.Equal(t, ir.DefaultV4Version, got.FormatVersion)
			if diff := cmp.Diff(tt.v4, got.Distribution, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToV4 mismatch (-want +got):\n%s", diff)
			}

			back := ToClassic(got)
			assert.Equal(t, ir.DefaultClassicVersion, back.FormatVersion)
			if diff := cmp.Diff(tt.classic, back.Distribution, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("ToClassic mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestToClassic_ReplacesVersion(t *testing.T) {
	doc := &ir.V4Document{
		FormatVersion: ir.FormatVersion{Text: "4.1"},
		Distribution:  testutil.SampleSpecs(testutil.V4()),
	}
	assert.Equal(t, ir.DefaultClassicVersion, ToClassic(doc).FormatVersion)
}

func TestIdempotent(t *testing.T) {
	for _, dist := range []ir.ClassicDistribution{
		testutil.SampleLibrary(testutil.Classic()),
		testutil.SampleApplication(testutil.Classic()),
		testutil.SampleSpecs(testutil.Classic()),
	} {
		once := ToV4(classicDoc(dist))
		twice := ToV4(ToClassic(once))
		if diff := cmp.Diff(once, twice, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("ToV4 . ToClassic . ToV4 differs from ToV4 (-once +twice):\n%s", diff)
		}
	}
}

func sourceAttrs(keys [4]string) ir.ClassicAttrs {
	return ir.ClassicAttrs{Raw: jsonv.Object{
		jsonv.M("source", jsonv.Object{
			jsonv.M(keys[0], jsonv.Int(3)),
			jsonv.M(keys[1], jsonv.Int(5)),
			jsonv.M(keys[2], jsonv.Int(3)),
			jsonv.M(keys[3], jsonv.Int(12)),
		}),
	}}
}

func TestSourceLocation(t *testing.T) {
	want := &ir.SourceLocation{StartLine: 3, StartColumn: 5, EndLine: 3, EndColumn: 12}
	camel := [4]string{"startLine", "startColumn", "endLine", "endColumn"}
	kebab := [4]string{"start-line", "start-column", "end-line", "end-column"}

	tests := []struct {
		name  string
		attrs ir.ClassicAttrs
		want  *ir.SourceLocation
	}{
		{"camel case", sourceAttrs(camel), want},
		{"kebab case", sourceAttrs(kebab), want},
		{"empty", ir.ClassicAttrs{}, nil},
		{"not an object", ir.ClassicAttrs{Raw: jsonv.String("x")}, nil},
		{"other keys", ir.ClassicAttrs{Raw: jsonv.Object{jsonv.M("doc", jsonv.String("d"))}}, nil},
		{"incomplete source", ir.ClassicAttrs{Raw: jsonv.Object{
			jsonv.M("source", jsonv.Object{jsonv.M("startLine", jsonv.Int(1))}),
		}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := ir.VariableValue[ir.ClassicAttrs, ir.ClassicAttrs]{Attrs: tt.attrs, Name: testutil.Name("x")}
			got := ValueToV4(v)
			variable, ok := got.(ir.VariableValue[ir.TypeAttributes, ir.ValueAttributes])
			require.True(t, ok)
			assert.Equal(t, ir.ValueAttributes{Source: tt.want}, variable.Attrs)

			typ := TypeToV4(ir.VariableType[ir.ClassicAttrs]{Attrs: tt.attrs, Name: testutil.Name("a")})
			assert.Equal(t, ir.TypeAttributes{Source: tt.want}, typ.(ir.VariableType[ir.TypeAttributes]).Attrs)
		})
	}
}

func TestSourceLocation_ToClassic(t *testing.T) {
	loc := &ir.SourceLocation{StartLine: 3, StartColumn: 5, EndLine: 3, EndColumn: 12}
	v := ir.VariableValue[ir.TypeAttributes, ir.ValueAttributes]{
		Attrs: ir.ValueAttributes{Source: loc, InferredType: jsonv.String("Int")},
		Name:  testutil.Name("x"),
	}

	got := ValueToClassic(v).(ir.VariableValue[ir.ClassicAttrs, ir.ClassicAttrs])
	assert.Equal(t, sourceAttrs([4]string{"startLine", "startColumn", "endLine", "endColumn"}), got.Attrs)

	typ := TypeToClassic(ir.VariableType[ir.TypeAttributes]{
		Attrs: ir.TypeAttributes{Constraints: jsonv.Array{}},
		Name:  testutil.Name("a"),
	})
	assert.True(t, typ.(ir.VariableType[ir.ClassicAttrs]).Attrs.IsEmpty())

	back := ValueToV4(got).(ir.VariableValue[ir.TypeAttributes, ir.ValueAttributes])
	assert.Equal(t, loc, back.Attrs.Source)
	assert.Nil(t, back.Attrs.InferredType)
}

func TestEndToEnd_Variable(t *testing.T) {
	cv, err := classic.UnmarshalValue([]byte(`["Variable", {}, ["x"]]`))
	require.NoError(t, err)

	out, err := v4.MarshalValue(ValueToV4(cv))
	require.NoError(t, err)
	assert.Equal(t, `{"Variable":{"name":"x"}}`, string(out))

	vv, err := v4.UnmarshalValue(out)
	require.NoError(t, err)
	assert.Equal(t, cv, ValueToClassic(vv))
}

func TestDeepApplyChain(t *testing.T) {
	const depth = 1000
	v := testutil.ApplyChain(testutil.Classic(), depth)

	got := ValueToV4(v)
	assert.Equal(t, testutil.ApplyChain(testutil.V4(), depth), got)
	assert.Equal(t, v, ValueToClassic(got))
}
