package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeDistribution reads
// {"Library": {"packageName", "dependencies", "def"}},
// {"Specs": {"packageName", "dependencies", "spec"}} or
// {"Application": {"packageName", "dependencies", "def", "entryPoints"}}.
// Dependencies and entry points are objects keyed by package name and
// entry point name.
func DecodeDistribution(v jsonv.Value) (ir.V4Distribution, error) {
	if arr, ok := v.(jsonv.Array); ok {
		return fallback.DecodeDistribution(arr)
	}
	n, err := unwrap(v, codec.KindDistribution)
	if err != nil {
		return nil, err
	}
	path, err := field(n, "packageName", DecodePath)
	if err != nil {
		return nil, err
	}
	pkgName := naming.NewPackageName(path)
	deps, err := optional(n, "dependencies", keyed(decodeDependency))
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "Library":
		def, err := field(n, "def", DecodePackageDefinition)
		if err != nil {
			return nil, err
		}
		return ir.Library[ta, va]{Package: pkgName, Dependencies: deps, Definition: def}, nil
	case "Specs":
		spec, err := field(n, "spec", DecodePackageSpecification)
		if err != nil {
			return nil, err
		}
		return ir.Specs[ta, va]{Package: pkgName, Dependencies: deps, Specification: spec}, nil
	default: // Application
		def, err := field(n, "def", DecodePackageDefinition)
		if err != nil {
			return nil, err
		}
		entries, err := optional(n, "entryPoints", keyed(decodeEntryPoint))
		if err != nil {
			return nil, err
		}
		return ir.Application[ta, va]{Package: pkgName, Dependencies: deps, Definition: def, EntryPoints: entries}, nil
	}
}

func decodeDependency(key string, v jsonv.Value) (ir.Dependency[ta], error) {
	spec, err := DecodePackageSpecification(v)
	return ir.Dependency[ta]{Name: naming.ParsePackageName(key), Specification: spec}, err
}

// decodeEntryPoint reads {"target": "pkg:mod#local", "kind": "main", "doc": text}.
func decodeEntryPoint(key string, v jsonv.Value) (ir.EntryPoint, error) {
	ep := ir.EntryPoint{Name: naming.ParseName(key)}
	n, err := record(v, "entry point")
	if err != nil {
		return ep, err
	}
	if ep.Target, err = field(n, "target", DecodeFQName); err != nil {
		return ep, err
	}
	if ep.Kind, err = field(n, "kind", decodeEntryPointKind); err != nil {
		return ep, err
	}
	ep.Doc, err = optional(n, "doc", optionalString)
	return ep, err
}

func decodeEntryPointKind(v jsonv.Value) (ir.EntryPointKind, error) {
	s, err := codec.AsString(v, "entry point kind")
	if err != nil {
		return "", err
	}
	kind, ok := ir.ParseEntryPointKind(s)
	if !ok {
		return "", codec.Mismatch("unknown entry point kind %q", s)
	}
	return kind, nil
}

// EncodeDistribution writes a distribution wrapper.
func (e *Encoder) EncodeDistribution(d ir.V4Distribution) jsonv.Value {
	deps := make(jsonv.Object, len(d.DependencyList()))
	for i, dep := range d.DependencyList() {
		deps[i] = jsonv.M(dep.Name.String(), e.EncodePackageSpecification(dep.Specification))
	}
	body := jsonv.Object{
		jsonv.M("packageName", EncodePath(d.PackageName().Path())),
		jsonv.M("dependencies", deps),
	}
	switch dist := d.(type) {
	case ir.Library[ta, va]:
		return wrapper("Library", append(body, jsonv.M("def", e.EncodePackageDefinition(dist.Definition))))
	case ir.Specs[ta, va]:
		return wrapper("Specs", append(body, jsonv.M("spec", e.EncodePackageSpecification(dist.Specification))))
	case ir.Application[ta, va]:
		entries := make(jsonv.Object, len(dist.EntryPoints))
		for i, ep := range dist.EntryPoints {
			obj := jsonv.Object{
				jsonv.M("target", EncodeFQName(ep.Target)),
				jsonv.M("kind", jsonv.String(string(ep.Kind))),
			}
			entries[i] = jsonv.M(ep.Name.String(), e.withDoc(obj, ep.Doc))
		}
		return wrapper("Application", append(body,
			jsonv.M("def", e.EncodePackageDefinition(dist.Definition)),
			jsonv.M("entryPoints", entries),
		))
	default:
		panic(unsupported("distribution", d))
	}
}
