package engine

import (
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/traverse"
)

// FingerprintDomain separates document fingerprints from other digests.
const FingerprintDomain = "morphir-ir/distribution/v1"

var stripAttrs = traverse.MapAttributes(
	func(ir.ClassicAttrs) ir.ClassicAttrs { return ir.ClassicAttrs{} },
	func(ir.ClassicAttrs) ir.ClassicAttrs { return ir.ClassicAttrs{} },
)

// Fingerprint hashes the canonical Classic encoding of doc with every
// attribute removed and the format version fixed. The result is a
// lowercase hex SHA-256.
func Fingerprint(doc *Document) (string, error) {
	stripped, err := traverse.TransformDocument(doc.Classic(), stripAttrs)
	if err != nil {
		return "", newEncodeError("", err)
	}
	stripped.FormatVersion = ir.DefaultClassicVersion
	digest, err := jsonv.Digest(FingerprintDomain, classic.Default.EncodeDocument(stripped))
	if err != nil {
		return "", newEncodeError("", err)
	}
	return digest, nil
}
