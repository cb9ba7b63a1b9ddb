package naming

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseName(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"valueInUSD", []string{"value", "in", "u", "s", "d"}},
		{"ValueInUSD", []string{"value", "in", "u", "s", "d"}},
		{"value_in_usd", []string{"value", "in", "usd"}},
		{"value in usd", []string{"value", "in", "usd"}},
		{"value-in-usd", []string{"value", "in", "usd"}},
		{"ABC", []string{"a", "b", "c"}},
		{"a1b2", []string{"a", "1", "b", "2"}},
		{"version42", []string{"version", "42"}},
		{"fooBar", []string{"foo", "bar"}},
		{"caf\u00e9", []string{"cafe"}},
		{"na\u00efve", []string{"naive"}},
		{"__", nil},
		{"", nil},
		{"!!!", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseName(tt.input).Words())
		})
	}
}

func TestParseName_SegmentsAreLowercaseAlphanumeric(t *testing.T) {
	inputs := []string{"HTTPServer", "x_Y-z 9", "S\u00e3o Paulo", "tx-id", "\u00c6ON", "a.b.c", "123abcDEF456"}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			n := ParseName(in)
			for _, w := range n.Words() {
				require.NotEmpty(t, w)
				for _, c := range w {
					ok := (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9')
					assert.True(t, ok, "word %q contains %q", w, c)
				}
			}

			reparsed := ParseName(n.String())
			assert.True(t, n.Equal(reparsed), "%q -> %q -> %q", in, n.String(), reparsed.String())
		})
	}
}

func TestName_Renderings(t *testing.T) {
	n := ParseName("valueInUSD")

	assert.Equal(t, "value-in-u-s-d", n.String())
	assert.Equal(t, "value_in_u_s_d", n.ToSnakeCase())
	assert.Equal(t, "valueInUSD", n.ToCamelCase())
	assert.Equal(t, "ValueInUSD", n.ToTitleCase())
	assert.Equal(t, 5, n.Len())
}

func TestName_Equal(t *testing.T) {
	assert.True(t, ParseName("fooBar").Equal(ParseName("foo_bar")))
	assert.True(t, ParseName("fooBar").Equal(NameFromWords("foo", "bar")))
	assert.False(t, ParseName("fooBar").Equal(ParseName("barFoo")))
	assert.True(t, ParseName("").Equal(Name{}))
	assert.True(t, NameFromWords().IsEmpty())
}

func TestNameFromWords_Verbatim(t *testing.T) {
	n := NameFromWords("a1", "b")
	assert.Equal(t, []string{"a1", "b"}, n.Words())
	assert.Equal(t, "a1-b", n.String())
}

func TestInterner(t *testing.T) {
	in := NewInterner()

	a := in.Intern("alpha")
	b := in.Intern("beta")
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, in.Intern("alpha"))
	assert.Equal(t, 2, in.Len())

	s, ok := in.Resolve(b)
	require.True(t, ok)
	assert.Equal(t, "beta", s)

	_, ok = in.Resolve(Symbol(99))
	assert.False(t, ok)
}

func TestInterner_Concurrent(t *testing.T) {
	in := NewInterner()
	words := strings.Fields("a b c d e f g h i j k l m n o p")

	var wg sync.WaitGroup
	results := make([][]Symbol, 8)
	for g := range results {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			syms := make([]Symbol, len(words))
			for i, w := range words {
				syms[i] = in.Intern(w)
			}
			results[g] = syms
		}(g)
	}
	wg.Wait()

	for g := 1; g < len(results); g++ {
		assert.Equal(t, results[0], results[g])
	}
	assert.Equal(t, len(words), in.Len())
	for i, w := range words {
		s, ok := in.Resolve(results[0][i])
		require.True(t, ok)
		assert.Equal(t, w, s)
	}
}
