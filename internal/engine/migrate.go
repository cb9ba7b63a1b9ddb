package engine

import (
	"log/slog"

	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/codec/v4"
)

// MigrateResult is the outcome of Migrate.
type MigrateResult struct {
	Source   codec.Dialect
	Target   codec.Dialect
	Document *Document
	Output   []byte
}

// Converted reports whether the source and target dialects differ.
func (r *MigrateResult) Converted() bool { return r.Source != r.Target }

// Migrate decodes data in whatever dialect it is written in and re-encodes
// it as target. Migrating to the source dialect normalizes the document to
// that dialect's canonical shape.
func Migrate(data []byte, target codec.Dialect, opts ...v4.EncodeOption) (*MigrateResult, error) {
	doc, err := Decode(data)
	if err != nil {
		return nil, err
	}
	out, err := Encode(doc, target, opts...)
	if err != nil {
		return nil, err
	}
	slog.Debug("document migrated",
		"source", doc.Dialect(),
		"target", target,
		"package", doc.PackageName().String(),
	)
	return &MigrateResult{
		Source:   doc.Dialect(),
		Target:   target,
		Document: doc,
		Output:   out,
	}, nil
}
