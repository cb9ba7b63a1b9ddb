package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeName reads a kebab-case name. The Classic word list is accepted.
func DecodeName(v jsonv.Value) (naming.Name, error) {
	switch n := v.(type) {
	case jsonv.String:
		return naming.ParseName(string(n)), nil
	case jsonv.Array:
		return classic.DecodeName(n)
	}
	return naming.Name{}, codec.Malformed("expected string for name, got %s", jsonv.Kind(v))
}

// EncodeName writes a name in kebab-case.
func EncodeName(n naming.Name) jsonv.Value {
	return jsonv.String(n.String())
}

// DecodePath reads "org/lib". The Classic list of names is accepted.
func DecodePath(v jsonv.Value) (naming.Path, error) {
	switch p := v.(type) {
	case jsonv.String:
		return naming.ParsePath(string(p)), nil
	case jsonv.Array:
		return classic.DecodePath(p)
	}
	return naming.Path{}, codec.Malformed("expected string for path, got %s", jsonv.Kind(v))
}

// EncodePath writes a path as its canonical string.
func EncodePath(p naming.Path) jsonv.Value {
	return jsonv.String(p.String())
}

// DecodeFQName reads "pkg:mod#local". The Classic "pkg:mod:local" string
// and the Classic [pkg, mod, local] array are accepted.
func DecodeFQName(v jsonv.Value) (naming.FQName, error) {
	switch fq := v.(type) {
	case jsonv.String:
		parsed, ok := naming.ParseFQName(string(fq))
		if !ok {
			return naming.FQName{}, codec.Malformed("invalid fully qualified name %q", string(fq))
		}
		return parsed, nil
	case jsonv.Array:
		return classic.DecodeFQName(fq)
	}
	return naming.FQName{}, codec.Malformed("expected string for fully qualified name, got %s", jsonv.Kind(v))
}

// EncodeFQName writes the "pkg:mod#local" form.
func EncodeFQName(fq naming.FQName) jsonv.Value {
	return jsonv.String(fq.CanonicalString())
}

func encodeNames(names []naming.Name) jsonv.Array {
	return encodeList(names, EncodeName)
}
