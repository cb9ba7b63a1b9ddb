package classic

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// Codec decodes and encodes Classic trees with type attributes TA and
// value attributes VA. It holds no mutable state and is safe for
// concurrent use.
type Codec[TA, VA any] struct {
	typeAttrs  AttrCodec[TA]
	valueAttrs AttrCodec[VA]
}

// New returns a Codec using ta for type nodes and va for value and
// pattern nodes.
func New[TA, VA any](ta AttrCodec[TA], va AttrCodec[VA]) *Codec[TA, VA] {
	return &Codec[TA, VA]{typeAttrs: ta, valueAttrs: va}
}

// Default is the codec for Classic documents.
var Default = New[ir.ClassicAttrs, ir.ClassicAttrs](OpaqueAttrs{}, OpaqueAttrs{})

// Decode parses a Classic document.
func Decode(data []byte) (*ir.ClassicDocument, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return Default.DecodeDocument(v)
}

// Encode writes a Classic document.
func Encode(doc *ir.ClassicDocument) ([]byte, error) {
	return jsonv.Marshal(Default.EncodeDocument(doc))
}

// UnmarshalType parses a single Classic type expression.
func UnmarshalType(data []byte) (ir.ClassicType, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return Default.DecodeType(v)
}

// MarshalType writes a single Classic type expression.
func MarshalType(t ir.ClassicType) ([]byte, error) {
	return jsonv.Marshal(Default.EncodeType(t))
}

// UnmarshalValue parses a single Classic value expression.
func UnmarshalValue(data []byte) (ir.ClassicValue, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return Default.DecodeValue(v)
}

// MarshalValue writes a single Classic value expression.
func MarshalValue(v ir.ClassicValue) ([]byte, error) {
	return jsonv.Marshal(Default.EncodeValue(v))
}

// DecodeDocument reads {"formatVersion": N, "distribution": [...]}. A bare
// distribution array is accepted with version 3 implied.
func (c *Codec[TA, VA]) DecodeDocument(v jsonv.Value) (*ir.Document[TA, VA], error) {
	if _, ok := v.(jsonv.Array); ok {
		dist, err := c.DecodeDistribution(v)
		if err != nil {
			return nil, err
		}
		return &ir.Document[TA, VA]{FormatVersion: ir.DefaultClassicVersion, Distribution: dist}, nil
	}

	obj, err := codec.AsObject(v, "document")
	if err != nil {
		return nil, err
	}
	fv, ok := obj.Get("formatVersion")
	if !ok {
		return nil, codec.Malformed("document is missing field %q", "formatVersion")
	}
	version, err := DecodeFormatVersion(fv)
	if err != nil {
		return nil, codec.At(err, "formatVersion")
	}
	dv, ok := obj.Get("distribution")
	if !ok {
		return nil, codec.Malformed("document is missing field %q", "distribution")
	}
	dist, err := c.DecodeDistribution(dv)
	if err != nil {
		return nil, codec.At(err, "distribution")
	}
	return &ir.Document[TA, VA]{FormatVersion: version, Distribution: dist}, nil
}

// DecodeFormatVersion accepts the integers 1, 2 and 3.
func DecodeFormatVersion(v jsonv.Value) (ir.FormatVersion, error) {
	n, ok := v.(jsonv.Number)
	if !ok {
		return ir.FormatVersion{}, codec.UnknownVersion("classic format version must be an integer, got %s", jsonv.Kind(v))
	}
	i, err := n.Int64()
	if err != nil || i < 1 || i > 3 {
		return ir.FormatVersion{}, codec.UnknownVersion("unsupported classic format version %s", string(n))
	}
	return ir.VersionNumber(int(i)), nil
}

// EncodeDocument writes the {"formatVersion", "distribution"} envelope. A
// document without a usable integer version is written as version 3.
func (c *Codec[TA, VA]) EncodeDocument(doc *ir.Document[TA, VA]) jsonv.Value {
	version := doc.FormatVersion
	if major, err := version.Major(); err != nil || version.IsText() || major < 1 || major > 3 {
		version = ir.DefaultClassicVersion
	}
	return jsonv.Object{
		jsonv.M("formatVersion", jsonv.Int(int64(version.Number))),
		jsonv.M("distribution", c.EncodeDistribution(doc.Distribution)),
	}
}

// unsupported reports a variant missing from an exhaustive switch. Trees
// are sealed, so reaching it is a programming error.
func unsupported(kind string, node any) string {
	return fmt.Sprintf("classic: unsupported %s variant %T", kind, node)
}

// field wraps an error raised while decoding positional field i of a node
// with the node's array index and tag.
func field(err error, i int, tag string) error {
	return codec.Tagged(codec.At(err, i+1), tag)
}

func decodeList[T any](v jsonv.Value, what string, decode func(jsonv.Value) (T, error)) ([]T, error) {
	arr, err := codec.AsArray(v, what)
	if err != nil {
		return nil, err
	}
	if len(arr) == 0 {
		return nil, nil
	}
	out := make([]T, len(arr))
	for i, el := range arr {
		x, err := decode(el)
		if err != nil {
			return nil, codec.At(err, i)
		}
		out[i] = x
	}
	return out, nil
}

func encodeList[T any](xs []T, encode func(T) jsonv.Value) jsonv.Value {
	arr := make(jsonv.Array, len(xs))
	for i, x := range xs {
		arr[i] = encode(x)
	}
	return arr
}

// pair splits a two-element array such as [name, value].
func pair(v jsonv.Value, what string) (jsonv.Value, jsonv.Value, error) {
	arr, err := codec.AsArray(v, what)
	if err != nil {
		return nil, nil, err
	}
	if len(arr) != 2 {
		return nil, nil, codec.Malformed("%s expects 2 elements, got %d", what, len(arr))
	}
	return arr[0], arr[1], nil
}
