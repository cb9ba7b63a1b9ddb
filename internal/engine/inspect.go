package engine

import "github.com/roach88/morphir-ir/internal/traverse"

// Summary describes a document for reporting.
type Summary struct {
	Dialect       string         `json:"dialect" yaml:"dialect"`
	FormatVersion string         `json:"formatVersion" yaml:"formatVersion"`
	Kind          string         `json:"kind" yaml:"kind"`
	Package       string         `json:"package" yaml:"package"`
	Dependencies  int            `json:"dependencies" yaml:"dependencies"`
	Stats         traverse.Stats `json:"stats" yaml:"stats"`
	Fingerprint   string         `json:"fingerprint" yaml:"fingerprint"`
}

// Inspect summarizes doc. Counts are taken over the tree in its source
// dialect and include dependency specifications.
func Inspect(doc *Document) (*Summary, error) {
	fp, err := Fingerprint(doc)
	if err != nil {
		return nil, err
	}
	s := &Summary{
		Dialect:       doc.Dialect().String(),
		FormatVersion: doc.FormatVersion().String(),
		Kind:          doc.Kind(),
		Package:       doc.PackageName().String(),
		Fingerprint:   fp,
	}
	if doc.v4 != nil {
		s.Dependencies = len(doc.v4.Distribution.DependencyList())
		s.Stats = traverse.Count(doc.v4)
	} else {
		s.Dependencies = len(doc.classic.Distribution.DependencyList())
		s.Stats = traverse.Count(doc.classic)
	}
	return s, nil
}
