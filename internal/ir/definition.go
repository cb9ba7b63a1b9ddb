package ir

import (
	"strings"

	"github.com/roach88/morphir-ir/internal/naming"
)

// Access controls visibility outside the defining package.
type Access string

// Access levels.
const (
	Public  Access = "Public"
	Private Access = "Private"
)

// ParseAccess parses an access level case-insensitively.
func ParseAccess(s string) (Access, bool) {
	switch {
	case strings.EqualFold(s, string(Public)):
		return Public, true
	case strings.EqualFold(s, string(Private)):
		return Private, true
	}
	return "", false
}

// TypeDefinition is a sealed interface over type definitions.
type TypeDefinition[TA any] interface {
	TypeParams() []naming.Name
	isTypeDefinition()
}

// TypeAliasDefinition defines a type alias.
type TypeAliasDefinition[TA any] struct {
	Params []naming.Name
	Type   Type[TA]
}

// CustomTypeDefinition defines a tagged union. Access controls whether the
// constructors are visible outside the package.
type CustomTypeDefinition[TA any] struct {
	Params       []naming.Name
	Access       Access
	Constructors []Constructor[TA]
}

// IncompleteTypeDefinition is a type definition that has not been finished.
// Partial may be nil.
type IncompleteTypeDefinition[TA any] struct {
	Params         []naming.Name
	Incompleteness Incompleteness
	Partial        Type[TA]
}

func (d TypeAliasDefinition[TA]) TypeParams() []naming.Name      { return d.Params }
func (d CustomTypeDefinition[TA]) TypeParams() []naming.Name     { return d.Params }
func (d IncompleteTypeDefinition[TA]) TypeParams() []naming.Name { return d.Params }

func (TypeAliasDefinition[TA]) isTypeDefinition()      {}
func (CustomTypeDefinition[TA]) isTypeDefinition()     {}
func (IncompleteTypeDefinition[TA]) isTypeDefinition() {}

// Constructor is one constructor of a custom type.
type Constructor[TA any] struct {
	Name naming.Name
	Args []ConstructorArg[TA]
}

// ConstructorArg is one named argument of a constructor.
type ConstructorArg[TA any] struct {
	Name naming.Name
	Type Type[TA]
}

// TypeSpecification is a sealed interface over the public view of a type.
type TypeSpecification[TA any] interface {
	TypeParams() []naming.Name
	isTypeSpecification()
}

// TypeAliasSpecification exposes an alias.
type TypeAliasSpecification[TA any] struct {
	Params []naming.Name
	Type   Type[TA]
}

// OpaqueTypeSpecification exposes a type without its structure.
type OpaqueTypeSpecification[TA any] struct {
	Params []naming.Name
}

// CustomTypeSpecification exposes a custom type and its constructors.
type CustomTypeSpecification[TA any] struct {
	Params       []naming.Name
	Constructors []Constructor[TA]
}

func (s TypeAliasSpecification[TA]) TypeParams() []naming.Name  { return s.Params }
func (s OpaqueTypeSpecification[TA]) TypeParams() []naming.Name { return s.Params }
func (s CustomTypeSpecification[TA]) TypeParams() []naming.Name { return s.Params }

func (TypeAliasSpecification[TA]) isTypeSpecification()  {}
func (OpaqueTypeSpecification[TA]) isTypeSpecification() {}
func (CustomTypeSpecification[TA]) isTypeSpecification() {}

// ValueSpecification is the signature of a value.
type ValueSpecification[TA any] struct {
	Inputs []SpecInput[TA]
	Output Type[TA]
}

// SpecInput is one named argument of a ValueSpecification.
type SpecInput[TA any] struct {
	Name naming.Name
	Type Type[TA]
}
