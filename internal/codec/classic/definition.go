package classic

import (
	"github.com/roach88/morphir-ir/internal/codec"
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/jsonv"
)

// DecodeTypeDefinition reads ["TypeAliasDefinition", params, type],
// ["CustomTypeDefinition", params, {"access", "value": [ctors]}] or
// ["IncompleteTypeDefinition", params, incompleteness, type|null].
func (c *Codec[TA, VA]) DecodeTypeDefinition(v jsonv.Value) (ir.TypeDefinition[TA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindTypeDefinition)
	if err != nil {
		return nil, err
	}
	arity := 2
	if tag == "IncompleteTypeDefinition" {
		arity = 3
	}
	if err := codec.Arity(tag, f, arity); err != nil {
		return nil, err
	}
	params, err := decodeNames(f[0], "type parameters")
	if err != nil {
		return nil, field(err, 0, tag)
	}

	switch tag {
	case "TypeAliasDefinition":
		t, err := c.DecodeType(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.TypeAliasDefinition[TA]{Params: params, Type: t}, nil
	case "CustomTypeDefinition":
		access, inner, err := decodeAccessControlled(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		ctors, err := decodeList(inner, "constructors", c.decodeConstructor)
		if err != nil {
			return nil, field(codec.At(err, "value"), 1, tag)
		}
		return ir.CustomTypeDefinition[TA]{Params: params, Access: access, Constructors: ctors}, nil
	default: // IncompleteTypeDefinition
		inc, err := DecodeIncompleteness(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		partial, err := c.decodeOptionalType(f[2])
		if err != nil {
			return nil, field(err, 2, tag)
		}
		return ir.IncompleteTypeDefinition[TA]{Params: params, Incompleteness: inc, Partial: partial}, nil
	}
}

// EncodeTypeDefinition writes a type definition.
func (c *Codec[TA, VA]) EncodeTypeDefinition(d ir.TypeDefinition[TA]) jsonv.Value {
	switch def := d.(type) {
	case ir.TypeAliasDefinition[TA]:
		return jsonv.Array{jsonv.String("TypeAliasDefinition"), encodeNames(def.Params), c.EncodeType(def.Type)}
	case ir.CustomTypeDefinition[TA]:
		ctors := encodeList(def.Constructors, c.encodeConstructor)
		return jsonv.Array{jsonv.String("CustomTypeDefinition"), encodeNames(def.Params), encodeAccessControlled(def.Access, ctors)}
	case ir.IncompleteTypeDefinition[TA]:
		return jsonv.Array{
			jsonv.String("IncompleteTypeDefinition"), encodeNames(def.Params),
			EncodeIncompleteness(def.Incompleteness), c.encodeOptionalType(def.Partial),
		}
	default:
		panic(unsupported("type definition", d))
	}
}

// DecodeTypeSpecification reads ["TypeAliasSpecification", params, type],
// ["OpaqueTypeSpecification", params] or
// ["CustomTypeSpecification", params, [ctors]].
func (c *Codec[TA, VA]) DecodeTypeSpecification(v jsonv.Value) (ir.TypeSpecification[TA], error) {
	tag, f, err := codec.TaggedArray(v, codec.KindTypeSpecification)
	if err != nil {
		return nil, err
	}
	arity := 2
	if tag == "OpaqueTypeSpecification" {
		arity = 1
	}
	if err := codec.Arity(tag, f, arity); err != nil {
		return nil, err
	}
	params, err := decodeNames(f[0], "type parameters")
	if err != nil {
		return nil, field(err, 0, tag)
	}

	switch tag {
	case "TypeAliasSpecification":
		t, err := c.DecodeType(f[1])
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.TypeAliasSpecification[TA]{Params: params, Type: t}, nil
	case "OpaqueTypeSpecification":
		return ir.OpaqueTypeSpecification[TA]{Params: params}, nil
	default: // CustomTypeSpecification
		ctors, err := decodeList(f[1], "constructors", c.decodeConstructor)
		if err != nil {
			return nil, field(err, 1, tag)
		}
		return ir.CustomTypeSpecification[TA]{Params: params, Constructors: ctors}, nil
	}
}

// EncodeTypeSpecification writes a type specification.
func (c *Codec[TA, VA]) EncodeTypeSpecification(s ir.TypeSpecification[TA]) jsonv.Value {
	switch spec := s.(type) {
	case ir.TypeAliasSpecification[TA]:
		return jsonv.Array{jsonv.String("TypeAliasSpecification"), encodeNames(spec.Params), c.EncodeType(spec.Type)}
	case ir.OpaqueTypeSpecification[TA]:
		return jsonv.Array{jsonv.String("OpaqueTypeSpecification"), encodeNames(spec.Params)}
	case ir.CustomTypeSpecification[TA]:
		return jsonv.Array{jsonv.String("CustomTypeSpecification"), encodeNames(spec.Params), encodeList(spec.Constructors, c.encodeConstructor)}
	default:
		panic(unsupported("type specification", s))
	}
}

// decodeConstructor reads [name, [[argName, type]]].
func (c *Codec[TA, VA]) decodeConstructor(v jsonv.Value) (ir.Constructor[TA], error) {
	nv, av, err := pair(v, "constructor")
	if err != nil {
		return ir.Constructor[TA]{}, err
	}
	name, err := DecodeName(nv)
	if err != nil {
		return ir.Constructor[TA]{}, codec.At(err, 0)
	}
	args, err := decodeList(av, "constructor arguments", func(v jsonv.Value) (ir.ConstructorArg[TA], error) {
		f, err := c.decodeField(v)
		return ir.ConstructorArg[TA]{Name: f.Name, Type: f.Type}, err
	})
	if err != nil {
		return ir.Constructor[TA]{}, codec.At(err, 1)
	}
	return ir.Constructor[TA]{Name: name, Args: args}, nil
}

func (c *Codec[TA, VA]) encodeConstructor(ctor ir.Constructor[TA]) jsonv.Value {
	args := encodeList(ctor.Args, func(a ir.ConstructorArg[TA]) jsonv.Value {
		return jsonv.Array{EncodeName(a.Name), c.EncodeType(a.Type)}
	})
	return jsonv.Array{EncodeName(ctor.Name), args}
}

// DecodeValueSpecification reads {"inputs": [[name, type]], "output": type}.
func (c *Codec[TA, VA]) DecodeValueSpecification(v jsonv.Value) (ir.ValueSpecification[TA], error) {
	var spec ir.ValueSpecification[TA]
	obj, err := codec.AsObject(v, "value specification")
	if err != nil {
		return spec, err
	}
	inputsV, ok := obj.Get("inputs")
	if !ok {
		return spec, codec.Malformed("value specification is missing field %q", "inputs")
	}
	spec.Inputs, err = decodeList(inputsV, "inputs", func(v jsonv.Value) (ir.SpecInput[TA], error) {
		f, err := c.decodeField(v)
		return ir.SpecInput[TA]{Name: f.Name, Type: f.Type}, err
	})
	if err != nil {
		return spec, codec.At(err, "inputs")
	}
	outV, ok := obj.Get("output")
	if !ok {
		return spec, codec.Malformed("value specification is missing field %q", "output")
	}
	if spec.Output, err = c.DecodeType(outV); err != nil {
		return spec, codec.At(err, "output")
	}
	return spec, nil
}

// EncodeValueSpecification writes a value specification.
func (c *Codec[TA, VA]) EncodeValueSpecification(spec ir.ValueSpecification[TA]) jsonv.Value {
	inputs := encodeList(spec.Inputs, func(in ir.SpecInput[TA]) jsonv.Value {
		return jsonv.Array{EncodeName(in.Name), c.EncodeType(in.Type)}
	})
	return jsonv.Object{
		jsonv.M("inputs", inputs),
		jsonv.M("output", c.EncodeType(spec.Output)),
	}
}

// decodeAccessControlled reads {"access": "Public"|"Private", "value": v}.
func decodeAccessControlled(v jsonv.Value) (ir.Access, jsonv.Value, error) {
	obj, err := codec.AsObject(v, "access controlled")
	if err != nil {
		return "", nil, err
	}
	av, ok := obj.Get("access")
	if !ok {
		return "", nil, codec.Malformed("access controlled is missing field %q", "access")
	}
	s, err := codec.AsString(av, "access")
	if err != nil {
		return "", nil, codec.At(err, "access")
	}
	access, ok := ir.ParseAccess(s)
	if !ok {
		return "", nil, codec.At(codec.Mismatch("unknown access level %q", s), "access")
	}
	inner, ok := obj.Get("value")
	if !ok {
		return "", nil, codec.Malformed("access controlled is missing field %q", "value")
	}
	return access, inner, nil
}

func encodeAccessControlled(access ir.Access, v jsonv.Value) jsonv.Value {
	if access == "" {
		access = ir.Public
	}
	return jsonv.Object{jsonv.M("access", jsonv.String(string(access))), jsonv.M("value", v)}
}

// decodeDocumented reads {"doc": text, "value": v}. A missing or null doc
// is the empty string.
func decodeDocumented(v jsonv.Value) (string, jsonv.Value, error) {
	obj, err := codec.AsObject(v, "documented")
	if err != nil {
		return "", nil, err
	}
	doc, err := optionalString(obj, "doc")
	if err != nil {
		return "", nil, err
	}
	inner, ok := obj.Get("value")
	if !ok {
		return "", nil, codec.Malformed("documented is missing field %q", "value")
	}
	return doc, inner, nil
}

func encodeDocumented(doc string, v jsonv.Value) jsonv.Value {
	return jsonv.Object{jsonv.M("doc", jsonv.String(doc)), jsonv.M("value", v)}
}

func optionalString(obj jsonv.Object, key string) (string, error) {
	v, ok := obj.Get(key)
	if !ok || jsonv.IsNull(v) {
		return "", nil
	}
	s, err := codec.AsString(v, key)
	if err != nil {
		return "", codec.At(err, key)
	}
	return s, nil
}
