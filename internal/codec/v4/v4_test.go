package v4

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
	"github.com/roach88/morphir-ir/internal/testutil"
)

func mustParse(t *testing.T, s string) jsonv.Value {
	t.Helper()
	v, err := jsonv.Parse([]byte(s))
	require.NoError(t, err)
	return v
}

func TestEncodeValue_Variable(t *testing.T) {
	out, err := MarshalValue(testutil.V4().Var("x"))
	require.NoError(t, err)
	assert.Equal(t, `{"Variable":{"name":"x"}}`, string(out))
}

func TestTypeRoundTrip(t *testing.T) {
	tests := []string{
		`{"Variable":{"name":"a"}}`,
		`{"Reference":{"fqname":"morphir/s-d-k:basics#float"}}`,
		`{"Reference":{"fqname":"morphir/s-d-k:list#list","args":[{"Variable":{"name":"a"}}]}}`,
		`{"Tuple":{"elements":[{"Unit":{}},{"Variable":{"name":"a"}}]}}`,
		`{"Record":{"fields":{"id":{"Unit":{}},"display-name":{"Variable":{"name":"b"}}}}}`,
		`{"ExtensibleRecord":{"variable":"a","fields":{"name":{"Variable":{"name":"b"}}}}}`,
		`{"Function":{"arg":{"Unit":{}},"result":{"Unit":{}}}}`,
		`{"Unit":{"attrs":{"source":{"start-line":1,"start-column":2,"end-line":1,"end-column":5}}}}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			typ, err := UnmarshalType([]byte(input))
			require.NoError(t, err)

			out, err := MarshalType(typ)
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestValueRoundTrip(t *testing.T) {
	tests := []string{
		`{"Literal":{"literal":{"IntegerLiteral":{"value":42}}}}`,
		`{"Literal":{"literal":{"StringLiteral":{"value":"hi"}}}}`,
		`{"Literal":{"literal":{"BoolLiteral":{"value":true}}}}`,
		`{"Constructor":{"fqname":"acme/finance:ledger#debit"}}`,
		`{"Tuple":{"elements":[{"Unit":{}},{"Variable":{"name":"x"}}]}}`,
		`{"List":{"items":[]}}`,
		`{"Record":{"fields":{"amount":{"Variable":{"name":"x"}}}}}`,
		`{"Reference":{"fqname":"morphir/s-d-k:basics#add"}}`,
		`{"Field":{"value":{"Variable":{"name":"r"}},"name":"amount"}}`,
		`{"FieldFunction":{"name":"amount"}}`,
		`{"Apply":{"function":{"Variable":{"name":"f"}},"argument":{"Variable":{"name":"x"}}}}`,
		`{"Lambda":{"pattern":{"AsPattern":{"pattern":{"WildcardPattern":{}},"name":"x"}},"body":{"Variable":{"name":"x"}}}}`,
		`{"LetDefinition":{"name":"y","definition":{"input-types":{},"output-type":{"Unit":{}},"body":{"ExpressionBody":{"body":{"Unit":{}}}}},"body":{"Variable":{"name":"y"}}}}`,
		`{"LetRecursion":{"bindings":[["f",{"input-types":{"x":{"type":{"Unit":{}}}},"output-type":{"Unit":{}},"body":{"ExpressionBody":{"body":{"Variable":{"name":"x"}}}}}]],"body":{"Variable":{"name":"f"}}}}`,
		`{"Destructure":{"pattern":{"TuplePattern":{"elements":[{"WildcardPattern":{}},{"UnitPattern":{}}]}},"value":{"Variable":{"name":"t"}},"body":{"Unit":{}}}}`,
		`{"IfThenElse":{"condition":{"Variable":{"name":"c"}},"then-branch":{"Unit":{}},"else-branch":{"Unit":{}}}}`,
		`{"PatternMatch":{"subject":{"Variable":{"name":"xs"}},"cases":[[{"EmptyListPattern":{}},{"Unit":{}}],[{"HeadTailPattern":{"head":{"WildcardPattern":{}},"tail":{"WildcardPattern":{}}}},{"Unit":{}}]]}}`,
		`{"UpdateRecord":{"record":{"Variable":{"name":"r"}},"updates":[["amount",{"Unit":{}}]]}}`,
		`{"Unit":{}}`,
		`{"Hole":{"reason":{"UnresolvedReference":{"target":"acme/finance:ledger#interest"}},"tpe":{"Unit":{}}}}`,
		`{"Hole":{"reason":{"DeletedDuringRefactor":{"tx-id":"tx-1"}}}}`,
		`{"Hole":{"reason":{"TypeMismatch":{"expected":"Int","found":"Float"}}}}`,
		`{"Hole":{"reason":{"Draft":{}}}}`,
		`{"Native":{"fqname":"morphir/s-d-k:basics#add","info":{"hint":{"Arithmetic":{}},"description":"plus"}}}`,
		`{"Native":{"fqname":"morphir/s-d-k:basics#add","info":{"hint":{"PlatformSpecific":{"platform":"jvm"}}}}}`,
		`{"External":{"external-name":"Math.max","target-platform":"javascript"}}`,
		`{"Variable":{"name":"x","attrs":{"source":{"start-line":3,"start-column":1,"end-line":3,"end-column":2},"inferred-type":{"Unit":{}},"extensions":{"k":1}}}}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			v, err := UnmarshalValue([]byte(input))
			require.NoError(t, err)

			out, err := MarshalValue(v)
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestPatternRoundTrip(t *testing.T) {
	tests := []string{
		`{"WildcardPattern":{}}`,
		`{"AsPattern":{"pattern":{"WildcardPattern":{}},"name":"x"}}`,
		`{"TuplePattern":{"elements":[{"UnitPattern":{}}]}}`,
		`{"ConstructorPattern":{"fqname":"acme/finance:ledger#debit","args":[{"WildcardPattern":{}}]}}`,
		`{"ConstructorPattern":{"fqname":"acme/finance:ledger#debit"}}`,
		`{"EmptyListPattern":{}}`,
		`{"HeadTailPattern":{"head":{"WildcardPattern":{}},"tail":{"EmptyListPattern":{}}}}`,
		`{"LiteralPattern":{"literal":{"CharLiteral":{"value":"a"}}}}`,
		`{"UnitPattern":{}}`,
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			p, err := DecodePattern(mustParse(t, input))
			require.NoError(t, err)

			out, err := jsonv.Marshal(NewEncoder().EncodePattern(p))
			require.NoError(t, err)
			assert.Equal(t, input, string(out))
		})
	}
}

func TestDecodeLiteral_WholeNumberAlias(t *testing.T) {
	whole, err := DecodeLiteral(mustParse(t, `{"WholeNumberLiteral":{"value":7}}`))
	require.NoError(t, err)
	classicForm, err := DecodeLiteral(mustParse(t, `["WholeNumberLiteral", 7]`))
	require.NoError(t, err)

	assert.Equal(t, ir.IntegerLiteral{Value: 7}, whole)
	assert.Equal(t, whole, classicForm)

	out, err := jsonv.Marshal(EncodeLiteral(whole))
	require.NoError(t, err)
	assert.Equal(t, `{"IntegerLiteral":{"value":7}}`, string(out))
}

func TestDecode_CamelCaseFields(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{
			`{"IfThenElse":{"condition":"c","thenBranch":"a","elseBranch":"b"}}`,
			`{"IfThenElse":{"condition":{"Variable":{"name":"c"}},"then-branch":{"Variable":{"name":"a"}},"else-branch":{"Variable":{"name":"b"}}}}`,
		},
		{
			`{"Hole":{"reason":{"DeletedDuringRefactor":{"txId":"t1"}}}}`,
			`{"Hole":{"reason":{"DeletedDuringRefactor":{"tx-id":"t1"}}}}`,
		},
		{
			`{"External":{"externalName":"Date.now","targetPlatform":"javascript"}}`,
			`{"External":{"external-name":"Date.now","target-platform":"javascript"}}`,
		},
		{
			`{"LetDefinition":{"name":"y","definition":{"inputTypes":{},"outputType":"a","body":"x"},"body":"y"}}`,
			`{"LetDefinition":{"name":"y","definition":{"input-types":{},"output-type":{"Variable":{"name":"a"}},"body":{"ExpressionBody":{"body":{"Variable":{"name":"x"}}}}},"body":{"Variable":{"name":"y"}}}}`,
		},
		{
			`{"Unit":{"attrs":{"source":{"startLine":1,"startColumn":1,"endLine":2,"endColumn":4},"inferredType":null}}}`,
			`{"Unit":{"attrs":{"source":{"start-line":1,"start-column":1,"end-line":2,"end-column":4}}}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			v, err := UnmarshalValue([]byte(tt.input))
			require.NoError(t, err)

			out, err := MarshalValue(v)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))
		})
	}
}

func TestDecode_StringShorthand(t *testing.T) {
	v, err := UnmarshalValue([]byte(`"a"`))
	require.NoError(t, err)
	variable, ok := v.(ir.VariableValue[ta, va])
	require.True(t, ok, "got %T", v)
	assert.Equal(t, []string{"a"}, variable.Name.Words())

	v, err = UnmarshalValue([]byte(`"morphir/s-d-k:basics#add"`))
	require.NoError(t, err)
	ref, ok := v.(ir.ReferenceValue[ta, va])
	require.True(t, ok, "got %T", v)
	assert.True(t, ref.FQName.Equal(testutil.AddFQ))

	typ, err := UnmarshalType([]byte(`"morphir/s-d-k:basics:float"`))
	require.NoError(t, err)
	tref, ok := typ.(ir.ReferenceType[ta])
	require.True(t, ok, "got %T", typ)
	assert.True(t, tref.FQName.Equal(testutil.FloatFQ))

	typ, err = UnmarshalType([]byte(`"comparable"`))
	require.NoError(t, err)
	assert.IsType(t, ir.VariableType[ta]{}, typ)
}

func TestDecode_StringShorthandWithoutName(t *testing.T) {
	for _, input := range []string{`""`, `"--"`, `"_ /"`} {
		t.Run(input, func(t *testing.T) {
			_, err := UnmarshalValue([]byte(input))
			require.Error(t, err)
			assert.True(t, codec.IsMalformedShape(err), err.Error())

			_, err = UnmarshalType([]byte(input))
			require.Error(t, err)
			assert.True(t, codec.IsMalformedShape(err), err.Error())
		})
	}
}

func TestMarshalValue_NonFiniteFloat(t *testing.T) {
	v := ir.LiteralValue[ta, va]{Literal: ir.FloatLiteral{Value: math.Inf(1)}}
	_, err := MarshalValue(v)
	assert.Error(t, err)

	_, err = MarshalValue(v, Expanded())
	assert.Error(t, err)
}

func TestDecode_ClassicFallback(t *testing.T) {
	input := `{"Apply":{"function":["Variable",null,["f"]],"argument":["Literal",{},["WholeNumberLiteral",1]]}}`

	v, err := UnmarshalValue([]byte(input))
	require.NoError(t, err)

	out, err := MarshalValue(v)
	require.NoError(t, err)
	assert.Equal(t,
		`{"Apply":{"function":{"Variable":{"name":"f"}},"argument":{"Literal":{"literal":{"IntegerLiteral":{"value":1}}}}}}`,
		string(out))
}

func TestEndToEnd_ClassicVariable(t *testing.T) {
	v, err := UnmarshalValue([]byte(`["Variable", null, ["x"]]`))
	require.NoError(t, err)

	out, err := MarshalValue(v)
	require.NoError(t, err)
	assert.Equal(t, `{"Variable":{"name":"x"}}`, string(out))

	again, err := UnmarshalValue(out)
	require.NoError(t, err)
	assert.Equal(t, v, again)
}

func TestEncode_CompactAndExpanded(t *testing.T) {
	b := testutil.V4()
	ref := b.TRef(testutil.FloatFQ)

	compact, err := MarshalType(ref)
	require.NoError(t, err)
	assert.Equal(t, `{"Reference":{"fqname":"morphir/s-d-k:basics#float"}}`, string(compact))

	expanded, err := MarshalType(ref, Expanded())
	require.NoError(t, err)
	assert.Equal(t, `{"Reference":{"fqname":"morphir/s-d-k:basics#float","args":[],"attrs":{}}}`, string(expanded))

	// Both forms decode to the same tree.
	fromCompact, err := UnmarshalType(compact)
	require.NoError(t, err)
	fromExpanded, err := UnmarshalType(expanded)
	require.NoError(t, err)
	if diff := cmp.Diff(fromCompact, fromExpanded, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("compact and expanded decode differently (-compact +expanded):\n%s", diff)
	}

	mod := ir.ModuleDefinition[ta, va]{
		Types: []ir.TypeDefinitionEntry[ta]{{
			Name:       testutil.Name("amount"),
			Access:     ir.Public,
			Definition: ir.TypeAliasDefinition[ta]{Type: b.TUnit()},
		}},
	}

	out, err := jsonv.Marshal(NewEncoder().EncodeModuleDefinition(mod))
	require.NoError(t, err)
	assert.Equal(t,
		`{"types":{"amount":{"access":"Public","value":{"TypeAliasDefinition":{"type-params":[],"type-exp":{"Unit":{}}}}}},"values":{}}`,
		string(out))

	out, err = jsonv.Marshal(NewEncoder(Expanded()).EncodeModuleDefinition(mod))
	require.NoError(t, err)
	assert.Equal(t,
		`{"types":{"amount":{"access":"Public","doc":"","value":{"TypeAliasDefinition":{"type-params":[],"type-exp":{"Unit":{"attrs":{}}}}}}},"values":{},"doc":""}`,
		string(out))

	// The last option wins.
	assert.False(t, NewEncoder(Expanded(), Compact()).IsExpanded())
}

func TestEncode_ConcurrentModes(t *testing.T) {
	ref := testutil.V4().TRef(testutil.FloatFQ)
	compact := NewEncoder()
	expanded := NewEncoder(Expanded())

	done := make(chan [2]string)
	for i := 0; i < 8; i++ {
		go func() {
			c, _ := jsonv.Marshal(compact.EncodeType(ref))
			e, _ := jsonv.Marshal(expanded.EncodeType(ref))
			done <- [2]string{string(c), string(e)}
		}()
	}
	for i := 0; i < 8; i++ {
		got := <-done
		assert.NotContains(t, got[0], "attrs")
		assert.Contains(t, got[1], `"attrs":{}`)
	}
}

func TestDecodeDocument_Versions(t *testing.T) {
	lib := `{"Library":{"packageName":"acme","dependencies":{},"def":{"modules":{}}}}`

	for _, version := range []string{`"4.0.0"`, `"4.1"`, `"4"`} {
		t.Run("version "+version, func(t *testing.T) {
			doc, err := Decode([]byte(`{"formatVersion":` + version + `,"distribution":` + lib + `}`))
			require.NoError(t, err)
			assert.True(t, doc.FormatVersion.IsText())
		})
	}

	t.Run("integer form is preserved", func(t *testing.T) {
		doc, err := Decode([]byte(`{"formatVersion":4,"distribution":` + lib + `}`))
		require.NoError(t, err)
		assert.Equal(t, ir.VersionNumber(4), doc.FormatVersion)

		out, err := Encode(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"formatVersion":4,"distribution":`+lib+`}`, string(out))
	})

	for _, version := range []string{"3", `"5.0.0"`, `"3.0.0"`, `"x"`, "true"} {
		t.Run("reject "+version, func(t *testing.T) {
			_, err := Decode([]byte(`{"formatVersion":` + version + `,"distribution":` + lib + `}`))
			require.Error(t, err)
			assert.True(t, codec.IsUnknownFormatVersion(err), "%v", err)
		})
	}

	t.Run("bare distribution", func(t *testing.T) {
		doc, err := Decode([]byte(lib))
		require.NoError(t, err)
		assert.Equal(t, ir.DefaultV4Version, doc.FormatVersion)
		assert.Equal(t, "acme", doc.Distribution.PackageName().String())
	})

	t.Run("non-V4 version is written as default", func(t *testing.T) {
		doc := &ir.V4Document{
			FormatVersion: ir.DefaultClassicVersion,
			Distribution:  ir.Library[ta, va]{Package: naming.ParsePackageName("acme")},
		}
		out, err := Encode(doc)
		require.NoError(t, err)
		assert.Equal(t, `{"formatVersion":"4.0.0","distribution":`+lib+`}`, string(out))
	})
}

func TestDocumentRoundTrip(t *testing.T) {
	b := testutil.V4()
	dists := map[string]ir.V4Distribution{
		"library":     testutil.SampleLibrary(b),
		"application": testutil.SampleApplication(b),
		"specs":       testutil.SampleSpecs(b),
	}

	for name, dist := range dists {
		for mode, opts := range map[string][]EncodeOption{"compact": nil, "expanded": {Expanded()}} {
			t.Run(name+"/"+mode, func(t *testing.T) {
				doc := &ir.V4Document{FormatVersion: ir.DefaultV4Version, Distribution: dist}

				data, err := Encode(doc, opts...)
				require.NoError(t, err)

				got, err := Decode(data)
				require.NoError(t, err)
				if diff := cmp.Diff(doc, got, cmpopts.EquateEmpty()); diff != "" {
					t.Errorf("round trip mismatch (-want +got):\n%s", diff)
				}

				again, err := Encode(got, opts...)
				require.NoError(t, err)
				assert.Equal(t, string(data), string(again))
			})
		}
	}
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		kind    codec.ErrorKind
		pointer string
		tag     string
	}{
		{"unknown tag", `{"Bogus":{}}`, codec.ErrMalformedShape, "", "Bogus"},
		{"two keys", `{"Unit":{},"Variable":{}}`, codec.ErrMalformedShape, "", ""},
		{"missing field", `{"Variable":{}}`, codec.ErrMalformedShape, "/Variable", "Variable"},
		{"nested unknown tag", `{"Apply":{"function":{"Bogus":{}},"argument":"x"}}`, codec.ErrMalformedShape, "/Apply/function", "Bogus"},
		{"type tag in value position", `{"Apply":{"function":{"Function":{}},"argument":"x"}}`, codec.ErrFieldTypeMismatch, "/Apply/function", "Function"},
		{"list element", `{"Tuple":{"elements":["a",7]}}`, codec.ErrMalformedShape, "/Tuple/elements/1", "Tuple"},
		{"plain object member", `{"LetDefinition":{"name":"y","definition":{"input-types":{},"body":"x"},"body":"y"}}`, codec.ErrMalformedShape, "/LetDefinition/definition", "LetDefinition"},
		{"fractional integer", `{"Literal":{"literal":{"IntegerLiteral":{"value":1.5}}}}`, codec.ErrFieldTypeMismatch, "/Literal/literal/IntegerLiteral/value", "IntegerLiteral"},
		{"bad fqname", `{"Reference":{"fqname":"a:b"}}`, codec.ErrMalformedShape, "/Reference/fqname", "Reference"},
		{"classic subtree", `{"Apply":{"function":["Unit",{},1],"argument":"x"}}`, codec.ErrMalformedShape, "/Apply/function", "Unit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalValue([]byte(tt.input))
			require.Error(t, err)

			var e *codec.Error
			require.ErrorAs(t, err, &e)
			assert.Equal(t, tt.kind, e.Kind, err.Error())
			assert.Equal(t, tt.pointer, e.Pointer(), err.Error())
			assert.Equal(t, tt.tag, e.Tag, err.Error())
		})
	}
}

func TestDecodeModuleDefinition_UnknownAccess(t *testing.T) {
	in := `{"types":{"t":{"access":"Protected","value":{"TypeAliasDefinition":{"type-params":[],"type-exp":"a"}}}},"values":{}}`
	_, err := DecodeModuleDefinition(mustParse(t, in))
	require.Error(t, err)
	assert.True(t, codec.IsFieldTypeMismatch(err), err.Error())
}

func TestDecodeEntryPoint_UnknownKind(t *testing.T) {
	in := `{"Application":{"packageName":"acme","dependencies":{},"def":{"modules":{}},` +
		`"entryPoints":{"main":{"target":"acme:app#main","kind":"daemon"}}}}`
	_, err := DecodeDistribution(mustParse(t, in))
	require.Error(t, err)
	assert.True(t, codec.IsFieldTypeMismatch(err), err.Error())
}

func TestDeepApplyChain(t *testing.T) {
	const depth = 1000

	v, err := UnmarshalValue(testutil.ApplyChainJSON(depth))
	require.NoError(t, err)
	assert.Equal(t, testutil.ApplyChain(testutil.V4(), depth), v)

	out, err := MarshalValue(v)
	require.NoError(t, err)

	again, err := UnmarshalValue(out)
	require.NoError(t, err)
	if diff := cmp.Diff(v, again); diff != "" {
		t.Errorf("deep chain changed after round trip (-want +got):\n%s", diff)
	}
}
