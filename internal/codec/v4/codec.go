package v4

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// fallback reads Classic tagged arrays found where a V4 node is expected.
// The subtree under such an array is Classic throughout.
var fallback = classic.New[ta, va](TypeAttrCodec{}, ValueAttrCodec{})

// Decode parses a V4 document.
func Decode(data []byte) (*ir.V4Document, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeDocument(v)
}

// Encode writes a V4 document.
func Encode(doc *ir.V4Document, opts ...EncodeOption) ([]byte, error) {
	return NewEncoder(opts...).Encode(doc)
}

// UnmarshalType parses a single V4 type expression.
func UnmarshalType(data []byte) (ir.V4Type, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeType(v)
}

// MarshalType writes a single V4 type expression.
func MarshalType(t ir.V4Type, opts ...EncodeOption) ([]byte, error) {
	return jsonv.Marshal(NewEncoder(opts...).EncodeType(t))
}

// UnmarshalValue parses a single V4 value expression.
func UnmarshalValue(data []byte) (ir.V4Value, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, err
	}
	return DecodeValue(v)
}

// MarshalValue writes a single V4 value expression.
func MarshalValue(v ir.V4Value, opts ...EncodeOption) ([]byte, error) {
	return jsonv.Marshal(NewEncoder(opts...).EncodeValue(v))
}

// Encode writes doc as compact JSON.
func (e *Encoder) Encode(doc *ir.V4Document) ([]byte, error) {
	return jsonv.Marshal(e.EncodeDocument(doc))
}

// DecodeDocument reads {"formatVersion": "4.0.0", "distribution": {...}}.
// A bare distribution wrapper is accepted with the default version.
func DecodeDocument(v jsonv.Value) (*ir.V4Document, error) {
	obj, err := codec.AsObject(v, "document")
	if err != nil {
		return nil, err
	}
	fv, ok := obj.Get("formatVersion")
	if !ok {
		if len(obj) == 1 {
			if _, known := codec.LookupTag(codec.KindDistribution, obj[0].Key); known {
				dist, err := DecodeDistribution(obj)
				if err != nil {
					return nil, err
				}
				return &ir.V4Document{FormatVersion: ir.DefaultV4Version, Distribution: dist}, nil
			}
		}
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
	dist, err := DecodeDistribution(dv)
	if err != nil {
		return nil, codec.At(err, "distribution")
	}
	return &ir.V4Document{FormatVersion: version, Distribution: dist}, nil
}

// DecodeFormatVersion accepts the integer 4 or a version string whose major
// component is 4. The form it was written in is kept.
func DecodeFormatVersion(v jsonv.Value) (ir.FormatVersion, error) {
	var version ir.FormatVersion
	switch fv := v.(type) {
	case jsonv.Number:
		n, err := fv.Int64()
		if err != nil {
			return version, codec.UnknownVersion("unsupported v4 format version %s", string(fv))
		}
		version = ir.VersionNumber(int(n))
	case jsonv.String:
		version = ir.VersionText(string(fv))
	default:
		return version, codec.UnknownVersion("v4 format version must be a string or an integer, got %s", jsonv.Kind(v))
	}
	if major, err := version.Major(); err != nil || major != 4 {
		return ir.FormatVersion{}, codec.UnknownVersion("unsupported v4 format version %s", version)
	}
	return version, nil
}

// EncodeDocument writes the {"formatVersion", "distribution"} envelope. A
// document whose version is not a V4 version is written as "4.0.0".
func (e *Encoder) EncodeDocument(doc *ir.V4Document) jsonv.Value {
	version := doc.FormatVersion
	if major, err := version.Major(); err != nil || major != 4 {
		version = ir.DefaultV4Version
	}
	var fv jsonv.Value = jsonv.String(version.Text)
	if !version.IsText() {
		fv = jsonv.Int(int64(version.Number))
	}
	return jsonv.Object{
		jsonv.M("formatVersion", fv),
		jsonv.M("distribution", e.EncodeDistribution(doc.Distribution)),
	}
}

func unsupported(kind string, node any) string {
	return fmt.Sprintf("v4: unsupported %s variant %T", kind, node)
}

// node is the body of a {"Tag": {...}} wrapper, or a plain object whose
// members are read the same way.
type node struct {
	tag   string
	obj   jsonv.Object
	plain bool
}

func unwrap(v jsonv.Value, kind codec.NodeKind) (node, error) {
	tag, obj, err := codec.Wrapper(v, kind)
	return node{tag: tag, obj: obj}, err
}

// record reads v as a plain object described by what.
func record(v jsonv.Value, what string) (node, error) {
	obj, err := codec.AsObject(v, what)
	return node{tag: what, obj: obj, plain: true}, err
}

// wrap locates err under member key of n.
func (n node) wrap(err error, key string) error {
	err = codec.At(err, key)
	if n.plain {
		return err
	}
	return codec.Tagged(codec.At(err, n.tag), n.tag)
}

func (n node) missing(name string) error {
	err := codec.Malformed("%s is missing field %q", n.tag, name)
	if n.plain {
		return err
	}
	return codec.At(err.WithTag(n.tag), n.tag)
}

// field decodes the mandatory member name of n.
func field[T any](n node, name string, decode func(jsonv.Value) (T, error)) (T, error) {
	var zero T
	v, key, ok := codec.Lookup(n.obj, name)
	if !ok {
		return zero, n.missing(name)
	}
	x, err := decode(v)
	if err != nil {
		return zero, n.wrap(err, key)
	}
	return x, nil
}

// optional decodes member name of n, returning the zero value when it is
// missing or null.
func optional[T any](n node, name string, decode func(jsonv.Value) (T, error)) (T, error) {
	var zero T
	v, key, ok := codec.Lookup(n.obj, name)
	if !ok || jsonv.IsNull(v) {
		return zero, nil
	}
	x, err := decode(v)
	if err != nil {
		return zero, n.wrap(err, key)
	}
	return x, nil
}

func typeAttrs(n node) (ta, error) {
	return optional(n, "attrs", TypeAttrCodec{}.DecodeAttrs)
}

func valueAttrs(n node) (va, error) {
	return optional(n, "attrs", ValueAttrCodec{}.DecodeAttrs)
}

// list lifts an element decoder to a JSON array decoder. Empty arrays
// decode to nil.
func list[T any](decode func(jsonv.Value) (T, error)) func(jsonv.Value) ([]T, error) {
	return func(v jsonv.Value) ([]T, error) {
		arr, err := codec.AsArray(v, "list")
		if err != nil {
			return nil, err
		}
		if len(arr) == 0 {
			return nil, nil
		}
		out := make([]T, len(arr))
		for i, el := range arr {
			if out[i], err = decode(el); err != nil {
				return nil, codec.At(err, i)
			}
		}
		return out, nil
	}
}

// keyed lifts a member decoder to a decoder of objects keyed by name,
// keeping document order. Empty objects decode to nil.
func keyed[T any](decode func(key string, v jsonv.Value) (T, error)) func(jsonv.Value) ([]T, error) {
	return func(v jsonv.Value) ([]T, error) {
		obj, err := codec.AsObject(v, "keyed entries")
		if err != nil {
			return nil, err
		}
		if len(obj) == 0 {
			return nil, nil
		}
		out := make([]T, len(obj))
		for i, m := range obj {
			if out[i], err = decode(m.Key, m.Value); err != nil {
				return nil, codec.At(err, m.Key)
			}
		}
		return out, nil
	}
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

func encodeList[T any](xs []T, encode func(T) jsonv.Value) jsonv.Array {
	arr := make(jsonv.Array, len(xs))
	for i, x := range xs {
		arr[i] = encode(x)
	}
	return arr
}

func wrapper(tag string, body jsonv.Object) jsonv.Value {
	if body == nil {
		body = jsonv.Object{}
	}
	return jsonv.Object{jsonv.M(tag, body)}
}

func optionalString(v jsonv.Value) (string, error) {
	if jsonv.IsNull(v) {
		return "", nil
	}
	return codec.AsString(v, "string")
}

func asString(v jsonv.Value) (string, error) {
	return codec.AsString(v, "string")
}
