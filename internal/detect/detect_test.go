package detect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/morphir-ir/internal/codec"
)

func TestDetectBytes(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  codec.Dialect
	}{
		{"classic envelope v3", `{"formatVersion":3,"distribution":["Library",[],[],{}]}`, codec.Classic},
		{"classic envelope v1", `{"formatVersion":1,"distribution":["Library",[],[],{}]}`, codec.Classic},
		{"v4 envelope string", `{"formatVersion":"4.0.0","distribution":{"Library":{}}}`, codec.V4},
		{"v4 envelope minor", `{"formatVersion":"4.2","distribution":{"Library":{}}}`, codec.V4},
		{"v4 envelope integer", `{"formatVersion":4,"distribution":{"Library":{}}}`, codec.V4},
		{"bare v4 library", `{"Library":{"packageName":"acme"}}`, codec.V4},
		{"bare v4 specs", `{"Specs":{}}`, codec.V4},
		{"bare v4 application", `{"Application":{}}`, codec.V4},
		{"bare classic library", `["Library",[["acme"]],[],{"modules":[]}]`, codec.Classic},
		{"bare classic specs", `["Specs"]`, codec.Classic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DetectBytes([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDetectBytes_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		kind  codec.ErrorKind
	}{
		{"unknown integer version", `{"formatVersion":5,"distribution":{}}`, codec.ErrUnknownFormatVersion},
		{"zero version", `{"formatVersion":0,"distribution":[]}`, codec.ErrUnknownFormatVersion},
		{"classic string version", `{"formatVersion":"3.0.0","distribution":[]}`, codec.ErrUnknownFormatVersion},
		{"garbage version", `{"formatVersion":"latest","distribution":{}}`, codec.ErrUnknownFormatVersion},
		{"fractional version", `{"formatVersion":3.5,"distribution":[]}`, codec.ErrUnknownFormatVersion},
		{"boolean version", `{"formatVersion":true}`, codec.ErrUnknownFormatVersion},
		{"bare object", `{"packageName":"acme"}`, codec.ErrMalformedShape},
		{"empty object", `{}`, codec.ErrMalformedShape},
		{"lowercase wrapper", `{"library":{}}`, codec.ErrMalformedShape},
		{"lowercase array tag", `["library",[],[],{}]`, codec.ErrMalformedShape},
		{"empty array", `[]`, codec.ErrMalformedShape},
		{"other array", `["Variable",null,["x"]]`, codec.ErrMalformedShape},
		{"two wrapper keys", `{"Library":{},"Specs":{}}`, codec.ErrMalformedShape},
		{"scalar", `42`, codec.ErrMalformedShape},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DetectBytes([]byte(tt.input))
			require.Error(t, err)
			assert.Equal(t, tt.kind, codec.KindOf(err), err.Error())
		})
	}
}

func TestDetectBytes_InvalidJSON(t *testing.T) {
	_, err := DetectBytes([]byte(`{"formatVersion":`))
	require.Error(t, err)
	assert.Equal(t, codec.ErrorKind(""), codec.KindOf(err))
}

func TestDetect_VersionPointer(t *testing.T) {
	_, err := DetectBytes([]byte(`{"formatVersion":9}`))
	var e *codec.Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, "/formatVersion", e.Pointer())
	assert.Contains(t, err.Error(), "unsupported format version 9")
}
