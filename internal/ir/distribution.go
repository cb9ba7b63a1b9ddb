package ir

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/morphir-ir/internal/naming"
)

// Distribution is a sealed interface over top-level artifacts.
type Distribution[TA, VA any] interface {
	PackageName() naming.PackageName
	DependencyList() []Dependency[TA]
	isDistribution()
}

// Library is a package definition plus the specifications of its
// dependencies.
type Library[TA, VA any] struct {
	Package      naming.PackageName
	Dependencies []Dependency[TA]
	Definition   PackageDefinition[TA, VA]
}

// Specs carries public interfaces only.
type Specs[TA, VA any] struct {
	Package       naming.PackageName
	Dependencies  []Dependency[TA]
	Specification PackageSpecification[TA]
}

// Application is a library with entry points.
type Application[TA, VA any] struct {
	Package      naming.PackageName
	Dependencies []Dependency[TA]
	Definition   PackageDefinition[TA, VA]
	EntryPoints  []EntryPoint
}

func (d Library[TA, VA]) PackageName() naming.PackageName     { return d.Package }
func (d Specs[TA, VA]) PackageName() naming.PackageName       { return d.Package }
func (d Application[TA, VA]) PackageName() naming.PackageName { return d.Package }

func (d Library[TA, VA]) DependencyList() []Dependency[TA]     { return d.Dependencies }
func (d Specs[TA, VA]) DependencyList() []Dependency[TA]       { return d.Dependencies }
func (d Application[TA, VA]) DependencyList() []Dependency[TA] { return d.Dependencies }

func (Library[TA, VA]) isDistribution()     {}
func (Specs[TA, VA]) isDistribution()       {}
func (Application[TA, VA]) isDistribution() {}

// EntryPointKind classifies an application entry point.
type EntryPointKind string

// Entry point kinds.
const (
	EntryMain    EntryPointKind = "main"
	EntryCommand EntryPointKind = "command"
	EntryHandler EntryPointKind = "handler"
)

// ParseEntryPointKind parses a kind case-insensitively.
func ParseEntryPointKind(s string) (EntryPointKind, bool) {
	switch k := EntryPointKind(strings.ToLower(s)); k {
	case EntryMain, EntryCommand, EntryHandler:
		return k, true
	}
	return "", false
}

// EntryPoint names a value an application can be started from.
type EntryPoint struct {
	Name   naming.Name
	Target naming.FQName
	Kind   EntryPointKind
	Doc    string
}

// FormatVersion is the version marker of a serialized distribution. It
// remembers whether it was written as a string ("4.0.0") or an integer (4).
type FormatVersion struct {
	Number int
	Text   string
}

// Default format versions for newly built documents.
var (
	DefaultV4Version      = VersionText("4.0.0")
	DefaultClassicVersion = VersionNumber(3)
)

// VersionNumber returns an integer format version.
func VersionNumber(n int) FormatVersion { return FormatVersion{Number: n} }

// VersionText returns a string format version.
func VersionText(s string) FormatVersion { return FormatVersion{Text: s} }

// IsText reports whether the version uses the string form.
func (v FormatVersion) IsText() bool { return v.Text != "" }

// Major returns the major version number.
func (v FormatVersion) Major() (int, error) {
	if !v.IsText() {
		return v.Number, nil
	}
	head, _, _ := strings.Cut(v.Text, ".")
	n, err := strconv.Atoi(head)
	if err != nil {
		return 0, fmt.Errorf("invalid format version %q", v.Text)
	}
	return n, nil
}

// String renders the version as written.
func (v FormatVersion) String() string {
	if v.IsText() {
		return v.Text
	}
	return strconv.Itoa(v.Number)
}

// Document is a serialized distribution with its format version.
type Document[TA, VA any] struct {
	FormatVersion FormatVersion
	Distribution  Distribution[TA, VA]
}

// Classic and V4 instantiations of the tree types.
type (
	ClassicType         = Type[ClassicAttrs]
	ClassicPattern      = Pattern[ClassicAttrs]
	ClassicValue        = Value[ClassicAttrs, ClassicAttrs]
	ClassicDistribution = Distribution[ClassicAttrs, ClassicAttrs]
	ClassicDocument     = Document[ClassicAttrs, ClassicAttrs]

	V4Type         = Type[TypeAttributes]
	V4Pattern      = Pattern[ValueAttributes]
	V4Value        = Value[TypeAttributes, ValueAttributes]
	V4Distribution = Distribution[TypeAttributes, ValueAttributes]
	V4Document     = Document[TypeAttributes, ValueAttributes]
)
