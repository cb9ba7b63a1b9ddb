package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeDistribution reads ["Library", packagePath, deps, packageDef],
// ["Specs", packagePath, deps, packageSpec] or
// ["Application", packagePath, deps, packageDef, entryPoints].
func (c *Codec[TA, VA]) DecodeDistribution(v jsonv.Value) (ir.Distribution[TA, VA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindDistribution)
	if err != nil {
		return nil, err
	}
	arity := 3
	if tag == "Application" {
		arity = 4
	}
	if err := codec.Arity(tag, f, arity); err != nil {
		return nil, err
	}
	path, err := DecodePath(f[0])
	if err != nil {
		return nil, field(err, 0, tag)
	}
	pkgName := naming.NewPackageName(path)
	deps, err := decodeList(f[1], "dependencies", c.decodeDependency)
	if err != nil {
		return nil, field(err, 1, tag)
	}

	switch tag {
	case "Library":
		def, err := c.DecodePackageDefinition(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.Library[TA, VA]{Package: pkgName, Dependencies: deps, Definition: def}, nil
	case "Specs":
		spec, err := c.DecodePackageSpecification(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.Specs[TA, VA]{Package: pkgName, Dependencies: deps, Specification: spec}, nil
	default: // Application
		def, err := c.DecodePackageDefinition(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		entries, err := decodeList(f[3], "entry points", decodeEntryPoint)
		if err != nil {
			return nil, field(err, 3, tag)
		}
		return ir.Application[TA, VA]{Package: pkgName, Dependencies: deps, Definition: def, EntryPoints: entries}, nil
	}
}

// EncodeDistribution writes a distribution.
func (c *Codec[TA, VA]) EncodeDistribution(d ir.Distribution[TA, VA]) jsonv.Value {
	head := func(tag string) jsonv.Array {
		return jsonv.Array{
			jsonv.String(tag),
			EncodePath(d.PackageName().Path()),
			encodeList(d.DependencyList(), c.encodeDependency),
		}
	}
	switch dist := d.(type) {
	case ir.Library[TA, VA]:
		return append(head("Library"), c.EncodePackageDefinition(dist.Definition))
	case ir.Specs[TA, VA]:
		return append(head("Specs"), c.EncodePackageSpecification(dist.Specification))
	case ir.Application[TA, VA]:
		return append(head("Application"), c.EncodePackageDefinition(dist.Definition), encodeList(dist.EntryPoints, encodeEntryPoint))
	default:
		panic(unsupported("distribution", d))
	}
}

// decodeDependency reads [packagePath, packageSpec].
func (c *Codec[TA, VA]) decodeDependency(v jsonv.Value) (ir.Dependency[TA], error) {
	pv, sv, err := pair(v, "dependency")
	if err != nil {
		return ir.Dependency[TA]{}, err
	}
	path, err := DecodePath(pv)
	if err != nil {
		return ir.Dependency[TA]{}, codec.At(err, 0)
	}
	spec, err := c.DecodePackageSpecification(sv)
	if err != nil {
		return ir.Dependency[TA]{}, codec.At(err, 1)
	}
	return ir.Dependency[TA]{Name: naming.NewPackageName(path), Specification: spec}, nil
}

func (c *Codec[TA, VA]) encodeDependency(dep ir.Dependency[TA]) jsonv.Value {
	return jsonv.Array{EncodePath(dep.Name.Path()), c.EncodePackageSpecification(dep.Specification)}
}

// decodeEntryPoint reads [name, {"target": fqname, "kind": kind, "doc": text}].
func decodeEntryPoint(v jsonv.Value) (ir.EntryPoint, error) {
	var ep ir.EntryPoint
	inner, err := decodeNamedEntry(v, &ep.Name)
	if err != nil {
		return ep, err
	}
	obj, err := codec.AsObject(inner, "entry point")
	if err != nil {
		return ep, codec.At(err, 1)
	}
	tv, ok := obj.Get("target")
	if !ok {
		return ep, codec.At(codec.Malformed("entry point is missing field %q", "target"), 1)
	}
	if ep.Target, err = DecodeFQName(tv); err != nil {
		return ep, codec.At(codec.At(err, "target"), 1)
	}
	kv, ok := obj.Get("kind")
	if !ok {
		return ep, codec.At(codec.Malformed("entry point is missing field %q", "kind"), 1)
	}
	ks, err := codec.AsString(kv, "entry point kind")
	if err != nil {
		return ep, codec.At(codec.At(err, "kind"), 1)
	}
	if ep.Kind, ok = ir.ParseEntryPointKind(ks); !ok {
		return ep, codec.At(codec.At(codec.Mismatch("unknown entry point kind %q", ks), "kind"), 1)
	}
	if ep.Doc, err = optionalString(obj, "doc"); err != nil {
		return ep, codec.At(err, 1)
	}
	return ep, nil
}

func encodeEntryPoint(ep ir.EntryPoint) jsonv.Value {
	obj := jsonv.Object{
		jsonv.M("target", EncodeFQName(ep.Target)),
		jsonv.M("kind", jsonv.String(string(ep.Kind))),
	}
	if ep.Doc != "" {
		obj = append(obj, jsonv.M("doc", jsonv.String(ep.Doc)))
	}
	return jsonv.Array{EncodeName(ep.Name), obj}
}
