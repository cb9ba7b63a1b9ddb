package v4

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// entry is a module member: {"access": ..., "doc": ..., "value": ...}.
// Specification members have no access.
type entry[T any] struct {
	access ir.Access
	doc    string
	value  T
}

func decodeEntry[T any](v jsonv.Value, withAccess bool, decode func(jsonv.Value) (T, error)) (entry[T], error) {
	var e entry[T]
	n, err := record(v, "module entry")
	if err != nil {
		return e, err
	}
	if withAccess {
		if e.access, err = field(n, "access", decodeAccessLevel); err != nil {
			return e, err
		}
	}
	if e.doc, err = optional(n, "doc", optionalString); err != nil {
		return e, err
	}
	e.value, err = field(n, "value", decode)
	return e, err
}

func (e *Encoder) encodeEntry(access ir.Access, withAccess bool, doc string, value jsonv.Value) jsonv.Value {
	obj := jsonv.Object{}
	if withAccess {
		obj = append(obj, jsonv.M("access", encodeAccess(access)))
	}
	obj = e.withDoc(obj, doc)
	return append(obj, jsonv.M("value", value))
}

// DecodeModuleDefinition reads
// {"types": {name: {"access", "doc", "value": typeDef}}, "values": {name: {...}}, "doc": text}.
func DecodeModuleDefinition(v jsonv.Value) (ir.ModuleDefinition[ta, va], error) {
	var mod ir.ModuleDefinition[ta, va]
	n, err := record(v, "module definition")
	if err != nil {
		return mod, err
	}
	mod.Types, err = optional(n, "types", keyed(func(key string, v jsonv.Value) (ir.TypeDefinitionEntry[ta], error) {
		e, err := decodeEntry(v, true, DecodeTypeDefinition)
		return ir.TypeDefinitionEntry[ta]{Name: naming.ParseName(key), Access: e.access, Doc: e.doc, Definition: e.value}, err
	}))
	if err != nil {
		return mod, err
	}
	mod.Values, err = optional(n, "values", keyed(func(key string, v jsonv.Value) (ir.ValueDefinitionEntry[ta, va], error) {
		e, err := decodeEntry(v, true, DecodeValueDefinition)
		return ir.ValueDefinitionEntry[ta, va]{Name: naming.ParseName(key), Access: e.access, Doc: e.doc, Definition: e.value}, err
	}))
	if err != nil {
		return mod, err
	}
	mod.Doc, err = optional(n, "doc", optionalString)
	return mod, err
}

// EncodeModuleDefinition writes a module definition.
func (e *Encoder) EncodeModuleDefinition(mod ir.ModuleDefinition[ta, va]) jsonv.Value {
	types := make(jsonv.Object, len(mod.Types))
	for i, t := range mod.Types {
		types[i] = jsonv.M(t.Name.String(), e.encodeEntry(t.Access, true, t.Doc, e.EncodeTypeDefinition(t.Definition)))
	}
	values := make(jsonv.Object, len(mod.Values))
	for i, v := range mod.Values {
		values[i] = jsonv.M(v.Name.String(), e.encodeEntry(v.Access, true, v.Doc, e.EncodeValueDefinition(v.Definition)))
	}
	return e.withDoc(jsonv.Object{jsonv.M("types", types), jsonv.M("values", values)}, mod.Doc)
}

// DecodeModuleSpecification reads
// {"types": {name: {"doc", "value": typeSpec}}, "values": {name: {...}}, "doc": text}.
func DecodeModuleSpecification(v jsonv.Value) (ir.ModuleSpecification[ta], error) {
	var mod ir.ModuleSpecification[ta]
	n, err := record(v, "module specification")
	if err != nil {
		return mod, err
	}
	mod.Types, err = optional(n, "types", keyed(func(key string, v jsonv.Value) (ir.TypeSpecificationEntry[ta], error) {
		e, err := decodeEntry(v, false, DecodeTypeSpecification)
		return ir.TypeSpecificationEntry[ta]{Name: naming.ParseName(key), Doc: e.doc, Specification: e.value}, err
	}))
	if err != nil {
		return mod, err
	}
	mod.Values, err = optional(n, "values", keyed(func(key string, v jsonv.Value) (ir.ValueSpecificationEntry[ta], error) {
		e, err := decodeEntry(v, false, DecodeValueSpecification)
		return ir.ValueSpecificationEntry[ta]{Name: naming.ParseName(key), Doc: e.doc, Specification: e.value}, err
	}))
	if err != nil {
		return mod, err
	}
	mod.Doc, err = optional(n, "doc", optionalString)
	return mod, err
}

// EncodeModuleSpecification writes a module specification.
func (e *Encoder) EncodeModuleSpecification(mod ir.ModuleSpecification[ta]) jsonv.Value {
	types := make(jsonv.Object, len(mod.Types))
	for i, t := range mod.Types {
		types[i] = jsonv.M(t.Name.String(), e.encodeEntry("", false, t.Doc, e.EncodeTypeSpecification(t.Specification)))
	}
	values := make(jsonv.Object, len(mod.Values))
	for i, v := range mod.Values {
		values[i] = jsonv.M(v.Name.String(), e.encodeEntry("", false, v.Doc, e.EncodeValueSpecification(v.Specification)))
	}
	return e.withDoc(jsonv.Object{jsonv.M("types", types), jsonv.M("values", values)}, mod.Doc)
}

// DecodePackageDefinition reads {"modules": {"module/path": {"access", "value": moduleDef}}}.
func DecodePackageDefinition(v jsonv.Value) (ir.PackageDefinition[ta, va], error) {
	var pkg ir.PackageDefinition[ta, va]
	n, err := record(v, "package definition")
	if err != nil {
		return pkg, err
	}
	pkg.Modules, err = field(n, "modules", keyed(func(key string, v jsonv.Value) (ir.ModuleDefinitionEntry[ta, va], error) {
		ac, err := decodeAccess(v, DecodeModuleDefinition)
		return ir.ModuleDefinitionEntry[ta, va]{Name: naming.ParseModuleName(key), Access: ac.access, Definition: ac.value}, err
	}))
	return pkg, err
}

// EncodePackageDefinition writes a package definition.
func (e *Encoder) EncodePackageDefinition(pkg ir.PackageDefinition[ta, va]) jsonv.Value {
	modules := make(jsonv.Object, len(pkg.Modules))
	for i, m := range pkg.Modules {
		modules[i] = jsonv.M(m.Name.String(), jsonv.Object{
			jsonv.M("access", encodeAccess(m.Access)),
			jsonv.M("value", e.EncodeModuleDefinition(m.Definition)),
		})
	}
	return jsonv.Object{jsonv.M("modules", modules)}
}

// DecodePackageSpecification reads {"modules": {"module/path": moduleSpec}}.
func DecodePackageSpecification(v jsonv.Value) (ir.PackageSpecification[ta], error) {
	var pkg ir.PackageSpecification[ta]
	n, err := record(v, "package specification")
	if err != nil {
		return pkg, err
	}
	pkg.Modules, err = field(n, "modules", keyed(func(key string, v jsonv.Value) (ir.ModuleSpecificationEntry[ta], error) {
		spec, err := DecodeModuleSpecification(v)
		return ir.ModuleSpecificationEntry[ta]{Name: naming.ParseModuleName(key), Specification: spec}, err
	}))
	return pkg, err
}

// EncodePackageSpecification writes a package specification.
func (e *Encoder) EncodePackageSpecification(pkg ir.PackageSpecification[ta]) jsonv.Value {
	modules := make(jsonv.Object, len(pkg.Modules))
	for i, m := range pkg.Modules {
		modules[i] = jsonv.M(m.Name.String(), e.EncodeModuleSpecification(m.Specification))
	}
	return jsonv.Object{jsonv.M("modules", modules)}
}
