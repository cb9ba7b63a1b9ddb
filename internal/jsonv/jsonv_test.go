package jsonv

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_PreservesOrder(t *testing.T) {
	v, err := Parse([]byte(`{"z":1,"a":[true,null,"x"],"m":{"b":2,"a":1}}`))
	require.NoError(t, err)

	obj, ok := v.(Object)
	require.True(t, ok)
	assert.Equal(t, []string{"z", "a", "m"}, obj.Keys())

	arr, _ := obj.Get("a")
	assert.Equal(t, Array{Bool(true), Null{}, String("x")}, arr)

	inner, _ := obj.Get("m")
	assert.Equal(t, []string{"b", "a"}, inner.(Object).Keys())
}

func TestParse_NumbersKeepLexicalForm(t *testing.T) {
	v, err := Parse([]byte(`[42, 1.50, 12345678901234567890, -0.0, 1e3]`))
	require.NoError(t, err)

	assert.Equal(t, Array{Number("42"), Number("1.50"), Number("12345678901234567890"), Number("-0.0"), Number("1e3")}, v)

	n, err := v.(Array)[0].(Number).Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty", ``},
		{"truncated", `[1,2`},
		{"trailing", `[1] [2]`},
		{"duplicate key", `{"a":1,"a":2}`},
		{"garbage", `{"a":}`},
		{"missing comma", `[1 2]`},
		{"missing colon", `{"a" 1}`},
		{"doubled comma", `[1,,2]`},
		{"leading comma", `[,1]`},
		{"trailing comma in array", `[1,]`},
		{"trailing comma in object", `{"a":1,}`},
		{"missing member comma", `{"a":1 "b":2}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			assert.Error(t, err)
		})
	}
}

func TestParse_DeepNesting(t *testing.T) {
	depth := 2000
	input := strings.Repeat("[", depth) + strings.Repeat("]", depth)

	v, err := Parse([]byte(input))
	require.NoError(t, err)

	levels := 0
	for {
		arr, ok := v.(Array)
		require.True(t, ok)
		levels++
		if len(arr) == 0 {
			break
		}
		v = arr[0]
	}
	assert.Equal(t, depth, levels)
}

func TestMarshal_RoundTrip(t *testing.T) {
	inputs := []string{
		`{"z":1,"a":[true,null,"x"],"m":{"b":2,"a":1}}`,
		`["Variable",{},["x"]]`,
		`{"html":"<a href=\"x\">&</a>"}`,
		`[]`,
		`{}`,
		`"plain"`,
		`1.5e-7`,
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			v, err := Parse([]byte(in))
			require.NoError(t, err)
			out, err := Marshal(v)
			require.NoError(t, err)
			assert.Equal(t, in, string(out))
		})
	}
}

func TestMarshalCanonical_SortedKeys(t *testing.T) {
	obj := Object{
		M("z", Object{M("b", Int(1)), M("a", Int(2))}),
		M("a", Int(3)),
	}

	out, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"a":3,"z":{"a":2,"b":1}}`, string(out))

	plain, err := Marshal(obj)
	require.NoError(t, err)
	assert.Equal(t, `{"z":{"b":1,"a":2},"a":3}`, string(plain))
}

func TestMarshalCanonical_UTF16Ordering(t *testing.T) {
	// U+E000 sorts after U+10000 (surrogate pair 0xD800 0xDC00) in UTF-16.
	obj := Object{
		M("\uE000", Int(1)),
		M("\U00010000", Int(2)),
	}

	out, err := MarshalCanonical(obj)
	require.NoError(t, err)
	assert.Equal(t, "{\"\U00010000\":2,\"\uE000\":1}", string(out))
}

func TestMarshalCanonical_LineSeparators(t *testing.T) {
	out, err := MarshalCanonical(String("a\u2028b"))
	require.NoError(t, err)
	assert.Equal(t, "\"a\u2028b\"", string(out))

	// A literal backslash followed by the text u2028 stays escaped.
	out, err = MarshalCanonical(String(`a\u2028b`))
	require.NoError(t, err)
	assert.Equal(t, `"a\\u2028b"`, string(out))
}

func TestFloat(t *testing.T) {
	n, err := Float(1.5)
	require.NoError(t, err)
	assert.Equal(t, Number("1.5"), n)

	_, err = Float(math.NaN())
	assert.Error(t, err)
	_, err = Float(math.Inf(1))
	assert.Error(t, err)
}

func TestDigest(t *testing.T) {
	a := Object{M("x", Int(1)), M("y", String("two"))}
	b := Object{M("y", String("two")), M("x", Int(1))}

	da, err := Digest("test/v1", a)
	require.NoError(t, err)
	db, err := Digest("test/v1", b)
	require.NoError(t, err)
	assert.Equal(t, da, db, "member order must not affect the digest")
	assert.Len(t, da, 64)

	other, err := Digest("test/v2", a)
	require.NoError(t, err)
	assert.NotEqual(t, da, other, "domain must separate digests")
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(nil))
	assert.True(t, IsEmpty(Null{}))
	assert.True(t, IsEmpty(Array{}))
	assert.True(t, IsEmpty(Object{}))
	assert.False(t, IsEmpty(Object{M("a", Null{})}))
	assert.False(t, IsEmpty(String("")))
}
