// Package detect identifies the wire dialect of a serialized distribution
// without decoding it.
//
// Detection is strict: distribution tags are matched case-sensitively and
// only the top-level shape is inspected. A document that detects as one
// dialect may still fail to decode.
package detect

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

var distributionTags = map[string]bool{
	"Library":     true,
	"Specs":       true,
	"Application": true,
}

// Detect reports the dialect of a parsed document:
//
//   - {"formatVersion": 1..3, ...} is Classic;
//   - {"formatVersion": 4 | "4.x.y", ...} is V4;
//   - {"Library": {...}} and the other distribution wrappers are V4;
//   - ["Library", ...] and the other distribution arrays are Classic.
//
// Any other format version is an unknown format version error; any other
// shape is a malformed shape error.
func Detect(v jsonv.Value) (codec.Dialect, error) {
	switch doc := v.(type) {
	case jsonv.Object:
		if fv, ok := doc.Get("formatVersion"); ok {
			return byVersion(fv)
		}
		if len(doc) == 1 && distributionTags[doc[0].Key] {
			return codec.V4, nil
		}
	case jsonv.Array:
		if len(doc) > 0 {
			if tag, ok := doc[0].(jsonv.String); ok && distributionTags[string(tag)] {
				return codec.Classic, nil
			}
		}
	}
	return "", codec.Malformed("unrecognized format: expected a format version envelope or a distribution, got %s", jsonv.Kind(v))
}

// DetectBytes parses data and detects its dialect.
func DetectBytes(data []byte) (codec.Dialect, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return "", err
	}
	return Detect(v)
}

func byVersion(v jsonv.Value) (codec.Dialect, error) {
	var version ir.FormatVersion
	switch fv := v.(type) {
	case jsonv.Number:
		n, err := fv.Int64()
		if err != nil {
			return "", codec.At(codec.UnknownVersion("unsupported format version %s", string(fv)), "formatVersion")
		}
		switch {
		case n >= 1 && n <= 3:
			return codec.Classic, nil
		case n == 4:
			return codec.V4, nil
		}
		version = ir.VersionNumber(int(n))
	case jsonv.String:
		version = ir.VersionText(string(fv))
		if major, err := version.Major(); err == nil && major == 4 {
			return codec.V4, nil
		}
	default:
		return "", codec.At(codec.UnknownVersion("format version must be a string or an integer, got %s", jsonv.Kind(v)), "formatVersion")
	}
	return "", codec.At(codec.UnknownVersion("unsupported format version %s", version), "formatVersion")
}
