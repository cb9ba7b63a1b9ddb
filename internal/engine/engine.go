package engine

import (
	"log/slog"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/classic"
	"github.com/roach88/morphir-ir/internal/codec/v4"
	"github.com/roach88/morphir-ir/internal/convert"
	"github.com/roach88/morphir-ir/internal/detect"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// Document is a decoded IR document in the dialect it was read from.
// Exactly one of the two trees is set.
type Document struct {
	dialect codec.Dialect
	classic *ir.ClassicDocument
	v4      *ir.V4Document
}

// FromClassic wraps a Classic tree.
func FromClassic(doc *ir.ClassicDocument) *Document {
	return &Document{dialect: codec.Classic, classic: doc}
}

// FromV4 wraps a V4 tree.
func FromV4(doc *ir.V4Document) *Document {
	return &Document{dialect: codec.V4, v4: doc}
}

// Dialect is the dialect the document was read from.
func (d *Document) Dialect() codec.Dialect { return d.dialect }

// FormatVersion is the format version recorded in the source document.
func (d *Document) FormatVersion() ir.FormatVersion {
	if d.v4 != nil {
		return d.v4.FormatVersion
	}
	return d.classic.FormatVersion
}

// PackageName is the name of the distribution's package.
func (d *Document) PackageName() naming.PackageName {
	if d.v4 != nil {
		return d.v4.Distribution.PackageName()
	}
	return d.classic.Distribution.PackageName()
}

// Kind names the distribution variant: Library, Specs or Application.
func (d *Document) Kind() string {
	if d.v4 != nil {
		return distributionKind[ir.TypeAttributes, ir.ValueAttributes](d.v4.Distribution)
	}
	return distributionKind[ir.ClassicAttrs, ir.ClassicAttrs](d.classic.Distribution)
}

func distributionKind[TA, VA any](dist ir.Distribution[TA, VA]) string {
	switch dist.(type) {
	case ir.Library[TA, VA]:
		return "Library"
	case ir.Specs[TA, VA]:
		return "Specs"
	case ir.Application[TA, VA]:
		return "Application"
	}
	return "Unknown"
}

// Classic returns the document as a Classic tree, converting a V4 source.
func (d *Document) Classic() *ir.ClassicDocument {
	if d.classic != nil {
		return d.classic
	}
	return convert.ToClassic(d.v4)
}

// V4 returns the document as a V4 tree, converting a Classic source.
func (d *Document) V4() *ir.V4Document {
	if d.v4 != nil {
		return d.v4
	}
	return convert.ToV4(d.classic)
}

// Decode detects the dialect of data and decodes it.
func Decode(data []byte) (*Document, error) {
	v, err := jsonv.Parse(data)
	if err != nil {
		return nil, newDetectError(err)
	}
	return DecodeValue(v)
}

// DecodeValue is Decode for an already parsed document.
func DecodeValue(v jsonv.Value) (*Document, error) {
	dialect, err := detect.Detect(v)
	if err != nil {
		return nil, newDetectError(err)
	}
	slog.Debug("dialect detected", "dialect", dialect)

	switch dialect {
	case codec.Classic:
		doc, err := classic.Default.DecodeDocument(v)
		if err != nil {
			return nil, newDecodeError(dialect, err)
		}
		return FromClassic(doc), nil
	case codec.V4:
		doc, err := v4.DecodeDocument(v)
		if err != nil {
			return nil, newDecodeError(dialect, err)
		}
		return FromV4(doc), nil
	}
	return nil, newUnsupportedDialectError(dialect)
}

// Encode writes doc in the target dialect. opts apply to V4 output only.
func Encode(doc *Document, target codec.Dialect, opts ...v4.EncodeOption) ([]byte, error) {
	var (
		out []byte
		err error
	)
	switch target {
	case codec.Classic:
		out, err = classic.Encode(doc.Classic())
	case codec.V4:
		out, err = v4.Encode(doc.V4(), opts...)
	default:
		return nil, newUnsupportedDialectError(target)
	}
	if err != nil {
		return nil, newEncodeError(target, err)
	}
	slog.Debug("document encoded",
		"source", doc.dialect,
		"target", target,
		"bytes", len(out),
	)
	return out, nil
}
