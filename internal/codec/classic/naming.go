package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeName reads a Name written as its word list: ["value","in","u","s","d"].
func DecodeName(v jsonv.Value) (naming.Name, error) {
	arr, err := codec.AsArray(v, "name")
	if err != nil {
		return naming.Name{}, err
	}
	words := make([]string, len(arr))
	for i, w := range arr {
		s, err := codec.AsString(w, "name word")
		if err != nil {
			return naming.Name{}, codec.At(err, i)
		}
		words[i] = s
	}
	return naming.NameFromWords(words...), nil
}

// EncodeName writes a Name as its word list.
func EncodeName(n naming.Name) jsonv.Value {
	words := n.Words()
	arr := make(jsonv.Array, len(words))
	for i, w := range words {
		arr[i] = jsonv.String(w)
	}
	return arr
}

// DecodePath reads a Path written as a list of names: [["morphir"],["s","d","k"]].
func DecodePath(v jsonv.Value) (naming.Path, error) {
	arr, err := codec.AsArray(v, "path")
	if err != nil {
		return naming.Path{}, err
	}
	names := make([]naming.Name, len(arr))
	for i, el := range arr {
		n, err := DecodeName(el)
		if err != nil {
			return naming.Path{}, codec.At(err, i)
		}
		names[i] = n
	}
	return naming.PathOf(names...), nil
}

// EncodePath writes a Path as a list of names.
func EncodePath(p naming.Path) jsonv.Value {
	names := p.Names()
	arr := make(jsonv.Array, len(names))
	for i, n := range names {
		arr[i] = EncodeName(n)
	}
	return arr
}

// DecodeFQName reads [packagePath, modulePath, localName].
func DecodeFQName(v jsonv.Value) (naming.FQName, error) {
	arr, err := codec.AsArray(v, "fully qualified name")
	if err != nil {
		return naming.FQName{}, err
	}
	if len(arr) != 3 {
		return naming.FQName{}, codec.Malformed("fully qualified name expects 3 parts, got %d", len(arr))
	}
	pkg, err := DecodePath(arr[0])
	if err != nil {
		return naming.FQName{}, codec.At(err, 0)
	}
	mod, err := DecodePath(arr[1])
	if err != nil {
		return naming.FQName{}, codec.At(err, 1)
	}
	local, err := DecodeName(arr[2])
	if err != nil {
		return naming.FQName{}, codec.At(err, 2)
	}
	return naming.NewFQName(pkg, mod, local), nil
}

// EncodeFQName writes [packagePath, modulePath, localName].
func EncodeFQName(fq naming.FQName) jsonv.Value {
	return jsonv.Array{EncodePath(fq.PackagePath()), EncodePath(fq.ModulePath()), EncodeName(fq.LocalName())}
}

func decodeNames(v jsonv.Value, what string) ([]naming.Name, error) {
	arr, err := codec.AsArray(v, what)
	if err != nil {
		return nil, err
	}
	if len(arr) == 0 {
		return nil, nil
	}
	names := make([]naming.Name, len(arr))
	for i, el := range arr {
		n, err := DecodeName(el)
		if err != nil {
			return nil, codec.At(err, i)
		}
		names[i] = n
	}
	return names, nil
}

func encodeNames(names []naming.Name) jsonv.Value {
	arr := make(jsonv.Array, len(names))
	for i, n := range names {
		arr[i] = EncodeName(n)
	}
	return arr
}
