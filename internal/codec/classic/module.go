package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeModuleDefinition reads
// {"types": [[name, {access, value: {doc, value}}]], "values": [...], "doc": text|null}.
func (c *Codec[TA, VA]) DecodeModuleDefinition(v jsonv.Value) (ir.ModuleDefinition[TA, VA], error) {
	var mod ir.ModuleDefinition[TA, VA]
	obj, err := codec.AsObject(v, "module definition")
	if err != nil {
		return mod, err
	}

	if tv, ok := obj.Get("types"); ok {
		mod.Types, err = decodeList(tv, "module types", func(v jsonv.Value) (ir.TypeDefinitionEntry[TA], error) {
			var e ir.TypeDefinitionEntry[TA]
			inner, err := decodeNamedEntry(v, &e.Name)
			if err != nil {
				return e, err
			}
			var docV jsonv.Value
			if e.Access, docV, err = decodeAccessControlled(inner); err != nil {
				return e, codec.At(err, 1)
			}
			var defV jsonv.Value
			if e.Doc, defV, err = decodeDocumented(docV); err != nil {
				return e, codec.At(codec.At(err, "value"), 1)
			}
			if e.Definition, err = c.DecodeTypeDefinition(defV); err != nil {
				return e, codec.At(codec.At(codec.At(err, "value"), "value"), 1)
			}
			return e, nil
		})
		if err != nil {
			return mod, codec.At(err, "types")
		}
	}

	if vv, ok := obj.Get("values"); ok {
		mod.Values, err = decodeList(vv, "module values", func(v jsonv.Value) (ir.ValueDefinitionEntry[TA, VA], error) {
			var e ir.ValueDefinitionEntry[TA, VA]
			inner, err := decodeNamedEntry(v, &e.Name)
			if err != nil {
				return e, err
			}
			var docV jsonv.Value
			if e.Access, docV, err = decodeAccessControlled(inner); err != nil {
				return e, codec.At(err, 1)
			}
			var defV jsonv.Value
			if e.Doc, defV, err = decodeDocumented(docV); err != nil {
				return e, codec.At(codec.At(err, "value"), 1)
			}
			if e.Definition, err = c.DecodeValueDefinition(defV); err != nil {
				return e, codec.At(codec.At(codec.At(err, "value"), "value"), 1)
			}
			return e, nil
		})
		if err != nil {
			return mod, codec.At(err, "values")
		}
	}

	if mod.Doc, err = optionalString(obj, "doc"); err != nil {
		return mod, err
	}
	return mod, nil
}

// EncodeModuleDefinition writes a module definition. An empty module doc
// is written as null.
func (c *Codec[TA, VA]) EncodeModuleDefinition(mod ir.ModuleDefinition[TA, VA]) jsonv.Value {
	types := encodeList(mod.Types, func(e ir.TypeDefinitionEntry[TA]) jsonv.Value {
		return jsonv.Array{EncodeName(e.Name), encodeAccessControlled(e.Access, encodeDocumented(e.Doc, c.EncodeTypeDefinition(e.Definition)))}
	})
	values := encodeList(mod.Values, func(e ir.ValueDefinitionEntry[TA, VA]) jsonv.Value {
		return jsonv.Array{EncodeName(e.Name), encodeAccessControlled(e.Access, encodeDocumented(e.Doc, c.EncodeValueDefinition(e.Definition)))}
	})
	return jsonv.Object{
		jsonv.M("types", types),
		jsonv.M("values", values),
		jsonv.M("doc", docOrNull(mod.Doc)),
	}
}

// DecodeModuleSpecification reads
// {"types": [[name, {doc, value}]], "values": [[name, {doc, value}]], "doc": text|null}.
func (c *Codec[TA, VA]) DecodeModuleSpecification(v jsonv.Value) (ir.ModuleSpecification[TA], error) {
	var mod ir.ModuleSpecification[TA]
	obj, err := codec.AsObject(v, "module specification")
	if err != nil {
		return mod, err
	}

	if tv, ok := obj.Get("types"); ok {
		mod.Types, err = decodeList(tv, "module types", func(v jsonv.Value) (ir.TypeSpecificationEntry[TA], error) {
			var e ir.TypeSpecificationEntry[TA]
			inner, err := decodeNamedEntry(v, &e.Name)
			if err != nil {
				return e, err
			}
			var specV jsonv.Value
			if e.Doc, specV, err = decodeDocumented(inner); err != nil {
				return e, codec.At(err, 1)
			}
			if e.Specification, err = c.DecodeTypeSpecification(specV); err != nil {
				return e, codec.At(codec.At(err, "value"), 1)
			}
			return e, nil
		})
		if err != nil {
			return mod, codec.At(err, "types")
		}
	}

	if vv, ok := obj.Get("values"); ok {
		mod.Values, err = decodeList(vv, "module values", func(v jsonv.Value) (ir.ValueSpecificationEntry[TA], error) {
			var e ir.ValueSpecificationEntry[TA]
			inner, err := decodeNamedEntry(v, &e.Name)
			if err != nil {
				return e, err
			}
			var specV jsonv.Value
			if e.Doc, specV, err = decodeDocumented(inner); err != nil {
				return e, codec.At(err, 1)
			}
			if e.Specification, err = c.DecodeValueSpecification(specV); err != nil {
				return e, codec.At(codec.At(err, "value"), 1)
			}
			return e, nil
		})
		if err != nil {
			return mod, codec.At(err, "values")
		}
	}

	if mod.Doc, err = optionalString(obj, "doc"); err != nil {
		return mod, err
	}
	return mod, nil
}

// EncodeModuleSpecification writes a module specification.
func (c *Codec[TA, VA]) EncodeModuleSpecification(mod ir.ModuleSpecification[TA]) jsonv.Value {
	types := encodeList(mod.Types, func(e ir.TypeSpecificationEntry[TA]) jsonv.Value {
		return jsonv.Array{EncodeName(e.Name), encodeDocumented(e.Doc, c.EncodeTypeSpecification(e.Specification))}
	})
	values := encodeList(mod.Values, func(e ir.ValueSpecificationEntry[TA]) jsonv.Value {
		return jsonv.Array{EncodeName(e.Name), encodeDocumented(e.Doc, c.EncodeValueSpecification(e.Specification))}
	})
	return jsonv.Object{
		jsonv.M("types", types),
		jsonv.M("values", values),
		jsonv.M("doc", docOrNull(mod.Doc)),
	}
}

// DecodePackageDefinition reads {"modules": [[modulePath, {access, value}]]}.
func (c *Codec[TA, VA]) DecodePackageDefinition(v jsonv.Value) (ir.PackageDefinition[TA, VA], error) {
	var pkg ir.PackageDefinition[TA, VA]
	obj, err := codec.AsObject(v, "package definition")
	if err != nil {
		return pkg, err
	}
	mv, ok := obj.Get("modules")
	if !ok {
		return pkg, codec.Malformed("package definition is missing field %q", "modules")
	}
	pkg.Modules, err = decodeList(mv, "modules", func(v jsonv.Value) (ir.ModuleDefinitionEntry[TA, VA], error) {
		var e ir.ModuleDefinitionEntry[TA, VA]
		pv, inner, err := pair(v, "module entry")
		if err != nil {
			return e, err
		}
		path, err := DecodePath(pv)
		if err != nil {
			return e, codec.At(err, 0)
		}
		e.Name = naming.NewModuleName(path)
		var defV jsonv.Value
		if e.Access, defV, err = decodeAccessControlled(inner); err != nil {
			return e, codec.At(err, 1)
		}
		if e.Definition, err = c.DecodeModuleDefinition(defV); err != nil {
			return e, codec.At(codec.At(err, "value"), 1)
		}
		return e, nil
	})
	if err != nil {
		return pkg, codec.At(err, "modules")
	}
	return pkg, nil
}

// EncodePackageDefinition writes a package definition.
func (c *Codec[TA, VA]) EncodePackageDefinition(pkg ir.PackageDefinition[TA, VA]) jsonv.Value {
	modules := encodeList(pkg.Modules, func(e ir.ModuleDefinitionEntry[TA, VA]) jsonv.Value {
		return jsonv.Array{EncodePath(e.Name.Path()), encodeAccessControlled(e.Access, c.EncodeModuleDefinition(e.Definition))}
	})
	return jsonv.Object{jsonv.M("modules", modules)}
}

// DecodePackageSpecification reads {"modules": [[modulePath, spec]]}.
func (c *Codec[TA, VA]) DecodePackageSpecification(v jsonv.Value) (ir.PackageSpecification[TA], error) {
	var pkg ir.PackageSpecification[TA]
	obj, err := codec.AsObject(v, "package specification")
	if err != nil {
		return pkg, err
	}
	mv, ok := obj.Get("modules")
	if !ok {
		return pkg, codec.Malformed("package specification is missing field %q", "modules")
	}
	pkg.Modules, err = decodeList(mv, "modules", func(v jsonv.Value) (ir.ModuleSpecificationEntry[TA], error) {
		var e ir.ModuleSpecificationEntry[TA]
		pv, sv, err := pair(v, "module entry")
		if err != nil {
			return e, err
		}
		path, err := DecodePath(pv)
		if err != nil {
			return e, codec.At(err, 0)
		}
		e.Name = naming.NewModuleName(path)
		if e.Specification, err = c.DecodeModuleSpecification(sv); err != nil {
			return e, codec.At(err, 1)
		}
		return e, nil
	})
	if err != nil {
		return pkg, codec.At(err, "modules")
	}
	return pkg, nil
}

// EncodePackageSpecification writes a package specification.
func (c *Codec[TA, VA]) EncodePackageSpecification(pkg ir.PackageSpecification[TA]) jsonv.Value {
	modules := encodeList(pkg.Modules, func(e ir.ModuleSpecificationEntry[TA]) jsonv.Value {
		return jsonv.Array{EncodePath(e.Name.Path()), c.EncodeModuleSpecification(e.Specification)}
	})
	return jsonv.Object{jsonv.M("modules", modules)}
}

// decodeNamedEntry splits [name, inner] and stores the name.
func decodeNamedEntry(v jsonv.Value, name *naming.Name) (jsonv.Value, error) {
	nv, inner, err := pair(v, "named entry")
	if err != nil {
		return nil, err
	}
	if *name, err = DecodeName(nv); err != nil {
		return nil, codec.At(err, 0)
	}
	return inner, nil
}

func docOrNull(doc string) jsonv.Value {
	if doc == "" {
		return jsonv.Null{}
	}
	return jsonv.String(doc)
}
