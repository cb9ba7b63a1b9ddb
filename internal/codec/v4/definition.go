package v4

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
	"github.com/roach88/morphir-ir/internal/naming"
)

// DecodeTypeDefinition reads
// {"TypeAliasDefinition": {"type-params": [...], "type-exp": type}},
// {"CustomTypeDefinition": {"type-params": [...], "constructors": {"access", "value": [ctor]}}} or
// {"IncompleteTypeDefinition": {"type-params": [...], "incompleteness": inc, "partial": type}}.
func DecodeTypeDefinition(v jsonv.Value) (ir.TypeDefinition[ta], error) {
	if arr, ok := v.(jsonv.Array); ok {
		return fallback.DecodeTypeDefinition(arr)
	}
	n, err := unwrap(v, codec.KindTypeDefinition)
	if err != nil {
		return nil, err
	}
	params, err := optional(n, "type-params", list(DecodeName))
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "TypeAliasDefinition":
		t, err := field(n, "type-exp", DecodeType)
		if err != nil {
			return nil, err
		}
		return ir.TypeAliasDefinition[ta]{Params: params, Type: t}, nil
	case "CustomTypeDefinition":
		ctors, err := field(n, "constructors", decodeAccessControlledConstructors)
		if err != nil {
			return nil, err
		}
		return ir.CustomTypeDefinition[ta]{Params: params, Access: ctors.access, Constructors: ctors.value}, nil
	default: // IncompleteTypeDefinition
		inc, err := field(n, "incompleteness", DecodeIncompleteness)
		if err != nil {
			return nil, err
		}
		partial, err := optional(n, "partial", DecodeType)
		if err != nil {
			return nil, err
		}
		return ir.IncompleteTypeDefinition[ta]{Params: params, Incompleteness: inc, Partial: partial}, nil
	}
}

type accessControlled[T any] struct {
	access ir.Access
	value  T
}

// decodeAccess reads {"access": "Public"|"Private", "value": v}.
func decodeAccess[T any](v jsonv.Value, decode func(jsonv.Value) (T, error)) (accessControlled[T], error) {
	var ac accessControlled[T]
	n, err := record(v, "access controlled")
	if err != nil {
		return ac, err
	}
	if ac.access, err = field(n, "access", decodeAccessLevel); err != nil {
		return ac, err
	}
	ac.value, err = field(n, "value", decode)
	return ac, err
}

func decodeAccessLevel(v jsonv.Value) (ir.Access, error) {
	s, err := codec.AsString(v, "access")
	if err != nil {
		return "", err
	}
	access, ok := ir.ParseAccess(s)
	if !ok {
		return "", codec.Mismatch("unknown access level %q", s)
	}
	return access, nil
}

func encodeAccess(access ir.Access) jsonv.Value {
	if access == "" {
		access = ir.Public
	}
	return jsonv.String(string(access))
}

func decodeAccessControlledConstructors(v jsonv.Value) (accessControlled[[]ir.Constructor[ta]], error) {
	return decodeAccess(v, list(decodeConstructor))
}

// EncodeTypeDefinition writes a type definition wrapper.
func (e *Encoder) EncodeTypeDefinition(d ir.TypeDefinition[ta]) jsonv.Value {
	params := jsonv.M("type-params", encodeNames(d.TypeParams()))
	switch def := d.(type) {
	case ir.TypeAliasDefinition[ta]:
		return wrapper("TypeAliasDefinition", jsonv.Object{params, jsonv.M("type-exp", e.EncodeType(def.Type))})
	case ir.CustomTypeDefinition[ta]:
		ctors := jsonv.Object{
			jsonv.M("access", encodeAccess(def.Access)),
			jsonv.M("value", encodeList(def.Constructors, e.encodeConstructor)),
		}
		return wrapper("CustomTypeDefinition", jsonv.Object{params, jsonv.M("constructors", ctors)})
	case ir.IncompleteTypeDefinition[ta]:
		obj := jsonv.Object{params, jsonv.M("incompleteness", EncodeIncompleteness(def.Incompleteness))}
		if def.Partial != nil {
			obj = append(obj, jsonv.M("partial", e.EncodeType(def.Partial)))
		}
		return wrapper("IncompleteTypeDefinition", obj)
	default:
		panic(unsupported("type definition", d))
	}
}

// DecodeTypeSpecification reads
// {"TypeAliasSpecification": {"type-params", "type-exp"}},
// {"OpaqueTypeSpecification": {"type-params"}} or
// {"CustomTypeSpecification": {"type-params", "constructors": [ctor]}}.
func DecodeTypeSpecification(v jsonv.Value) (ir.TypeSpecification[ta], error) {
	if arr, ok := v.(jsonv.Array); ok {
		return fallback.DecodeTypeSpecification(arr)
	}
	n, err := unwrap(v, codec.KindTypeSpecification)
	if err != nil {
		return nil, err
	}
	params, err := optional(n, "type-params", list(DecodeName))
	if err != nil {
		return nil, err
	}

	switch n.tag {
	case "TypeAliasSpecification":
		t, err := field(n, "type-exp", DecodeType)
		if err != nil {
			return nil, err
		}
		return ir.TypeAliasSpecification[ta]{Params: params, Type: t}, nil
	case "OpaqueTypeSpecification":
		return ir.OpaqueTypeSpecification[ta]{Params: params}, nil
	default: // CustomTypeSpecification
		ctors, err := field(n, "constructors", list(decodeConstructor))
		if err != nil {
			return nil, err
		}
		return ir.CustomTypeSpecification[ta]{Params: params, Constructors: ctors}, nil
	}
}

// EncodeTypeSpecification writes a type specification wrapper.
func (e *Encoder) EncodeTypeSpecification(s ir.TypeSpecification[ta]) jsonv.Value {
	params := jsonv.M("type-params", encodeNames(s.TypeParams()))
	switch spec := s.(type) {
	case ir.TypeAliasSpecification[ta]:
		return wrapper("TypeAliasSpecification", jsonv.Object{params, jsonv.M("type-exp", e.EncodeType(spec.Type))})
	case ir.OpaqueTypeSpecification[ta]:
		return wrapper("OpaqueTypeSpecification", jsonv.Object{params})
	case ir.CustomTypeSpecification[ta]:
		return wrapper("CustomTypeSpecification", jsonv.Object{params, jsonv.M("constructors", encodeList(spec.Constructors, e.encodeConstructor))})
	default:
		panic(unsupported("type specification", s))
	}
}

// decodeConstructor reads {"name": name, "args": [[argName, type]]}.
func decodeConstructor(v jsonv.Value) (ir.Constructor[ta], error) {
	var ctor ir.Constructor[ta]
	n, err := record(v, "constructor")
	if err != nil {
		return ctor, err
	}
	if ctor.Name, err = field(n, "name", DecodeName); err != nil {
		return ctor, err
	}
	ctor.Args, err = optional(n, "args", list(decodeConstructorArg))
	return ctor, err
}

func decodeConstructorArg(v jsonv.Value) (ir.ConstructorArg[ta], error) {
	nv, tv, err := pair(v, "constructor argument")
	if err != nil {
		return ir.ConstructorArg[ta]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.ConstructorArg[ta]{}, codec.At(err, 0)
	}
	t, err := DecodeType(tv)
	if err != nil {
		return ir.ConstructorArg[ta]{}, codec.At(err, 1)
	}
	return ir.ConstructorArg[ta]{Name: name, Type: t}, nil
}

func (e *Encoder) encodeConstructor(ctor ir.Constructor[ta]) jsonv.Value {
	args := encodeList(ctor.Args, func(a ir.ConstructorArg[ta]) jsonv.Value {
		return jsonv.Array{EncodeName(a.Name), e.EncodeType(a.Type)}
	})
	return e.withList(jsonv.Object{jsonv.M("name", EncodeName(ctor.Name))}, "args", args)
}

// DecodeValueSpecification reads {"inputs": {name: type}, "output": type}.
func DecodeValueSpecification(v jsonv.Value) (ir.ValueSpecification[ta], error) {
	var spec ir.ValueSpecification[ta]
	n, err := record(v, "value specification")
	if err != nil {
		return spec, err
	}
	spec.Inputs, err = field(n, "inputs", keyed(func(key string, v jsonv.Value) (ir.SpecInput[ta], error) {
		t, err := DecodeType(v)
		return ir.SpecInput[ta]{Name: naming.ParseName(key), Type: t}, err
	}))
	if err != nil {
		return spec, err
	}
	spec.Output, err = field(n, "output", DecodeType)
	return spec, err
}

// EncodeValueSpecification writes a value specification.
func (e *Encoder) EncodeValueSpecification(spec ir.ValueSpecification[ta]) jsonv.Value {
	inputs := make(jsonv.Object, len(spec.Inputs))
	for i, in := range spec.Inputs {
		inputs[i] = jsonv.M(in.Name.String(), e.EncodeType(in.Type))
	}
	return jsonv.Object{
		jsonv.M("inputs", inputs),
		jsonv.M("output", e.EncodeType(spec.Output)),
	}
}
