package ir

import "github.com/roach88/morphir-ir/internal/naming"

// TypeDefinitionEntry is a named, access-controlled, documented type
// definition inside a module.
type TypeDefinitionEntry[TA any] struct {
	Name       naming.Name
	Access     Access
	Doc        string
	Definition TypeDefinition[TA]
}

// ValueDefinitionEntry is a named, access-controlled, documented value
// definition inside a module.
type ValueDefinitionEntry[TA, VA any] struct {
	Name       naming.Name
	Access     Access
	Doc        string
	Definition ValueDefinition[TA, VA]
}

// ModuleDefinition is the full content of a module.
type ModuleDefinition[TA, VA any] struct {
	Types  []TypeDefinitionEntry[TA]
	Values []ValueDefinitionEntry[TA, VA]
	Doc    string
}

// TypeSpecificationEntry is a named, documented type specification.
type TypeSpecificationEntry[TA any] struct {
	Name          naming.Name
	Doc           string
	Specification TypeSpecification[TA]
}

// ValueSpecificationEntry is a named, documented value specification.
type ValueSpecificationEntry[TA any] struct {
	Name          naming.Name
	Doc           string
	Specification ValueSpecification[TA]
}

// ModuleSpecification is the public interface of a module.
type ModuleSpecification[TA any] struct {
	Types  []TypeSpecificationEntry[TA]
	Values []ValueSpecificationEntry[TA]
	Doc    string
}

// ModuleDefinitionEntry is a named, access-controlled module of a package.
type ModuleDefinitionEntry[TA, VA any] struct {
	Name       naming.ModuleName
	Access     Access
	Definition ModuleDefinition[TA, VA]
}

// PackageDefinition is the full content of a package.
type PackageDefinition[TA, VA any] struct {
	Modules []ModuleDefinitionEntry[TA, VA]
}

// ModuleSpecificationEntry is a named module specification.
type ModuleSpecificationEntry[TA any] struct {
	Name          naming.ModuleName
	Specification ModuleSpecification[TA]
}

// PackageSpecification is the public interface of a package.
type PackageSpecification[TA any] struct {
	Modules []ModuleSpecificationEntry[TA]
}

// Dependency is the specification of a package this one depends on.
type Dependency[TA any] struct {
	Name          naming.PackageName
	Specification PackageSpecification[TA]
}

// Module returns the module definition named name.
func (p PackageDefinition[TA, VA]) Module(name naming.ModuleName) (ModuleDefinitionEntry[TA, VA], bool) {
	for _, m := range p.Modules {
		if m.Name.Equal(name) {
			return m, true
		}
	}
	return ModuleDefinitionEntry[TA, VA]{}, false
}

// Value returns the value definition named name.
func (m ModuleDefinition[TA, VA]) Value(name naming.Name) (ValueDefinitionEntry[TA, VA], bool) {
	for _, v := range m.Values {
		if v.Name.Equal(name) {
			return v, true
		}
	}
	return ValueDefinitionEntry[TA, VA]{}, false
}

// Type returns the type definition named name.
func (m ModuleDefinition[TA, VA]) Type(name naming.Name) (TypeDefinitionEntry[TA], bool) {
	for _, t := range m.Types {
		if t.Name.Equal(name) {
			return t, true
		}
	}
	return TypeDefinitionEntry[TA]{}, false
}
