package traverse

import (
	"fmt"
	"strconv"

	"github.com/roach88/morphir-ir/internal/ir"
)

// Rewriter drives a Transformer over a tree. Type, Pattern and Value
// dispatch to the transformer; the Rebuild methods construct the node with
// mapped attributes and transformed children and are what transformers call
// to keep the default behavior for a node.
//
// A Rewriter is not safe for concurrent use.
type Rewriter[TA, VA, TB, VB any] struct {
	t      Transformer[TA, VA, TB, VB]
	cursor Cursor
}

// NewRewriter returns a Rewriter for t positioned at the root.
func NewRewriter[TA, VA, TB, VB any](t Transformer[TA, VA, TB, VB]) *Rewriter[TA, VA, TB, VB] {
	return &Rewriter[TA, VA, TB, VB]{t: t}
}

// Cursor returns the position of the node being rebuilt.
func (r *Rewriter[TA, VA, TB, VB]) Cursor() *Cursor { return &r.cursor }

// Document rebuilds the distribution of doc and copies its format version.
func (r *Rewriter[TA, VA, TB, VB]) Document(doc *ir.Document[TA, VA]) (*ir.Document[TB, VB], error) {
	dist, err := descend(&r.cursor, "distribution", func() (ir.Distribution[TB, VB], error) {
		return r.Distribution(doc.Distribution)
	})
	if err != nil {
		return nil, err
	}
	return &ir.Document[TB, VB]{FormatVersion: doc.FormatVersion, Distribution: dist}, nil
}

// Distribution rebuilds a distribution.
func (r *Rewriter[TA, VA, TB, VB]) Distribution(d ir.Distribution[TA, VA]) (ir.Distribution[TB, VB], error) {
	deps, err := rebuildNamed(&r.cursor, "dependencies", d.DependencyList(),
		func(dep ir.Dependency[TA]) string { return dep.Name.String() },
		func(dep ir.Dependency[TA]) (ir.Dependency[TB], error) {
			spec, err := r.PackageSpecification(dep.Specification)
			return ir.Dependency[TB]{Name: dep.Name, Specification: spec}, err
		})
	if err != nil {
		return nil, err
	}
	switch dist := d.(type) {
	case ir.Library[TA, VA]:
		def, err := descend(&r.cursor, "def", func() (ir.PackageDefinition[TB, VB], error) {
			return r.PackageDefinition(dist.Definition)
		})
		return ir.Library[TB, VB]{Package: dist.Package, Dependencies: deps, Definition: def}, err
	case ir.Specs[TA, VA]:
		spec, err := descend(&r.cursor, "spec", func() (ir.PackageSpecification[TB], error) {
			return r.PackageSpecification(dist.Specification)
		})
		return ir.Specs[TB, VB]{Package: dist.Package, Dependencies: deps, Specification: spec}, err
	case ir.Application[TA, VA]:
		def, err := descend(&r.cursor, "def", func() (ir.PackageDefinition[TB, VB], error) {
			return r.PackageDefinition(dist.Definition)
		})
		return ir.Application[TB, VB]{
			Package:      dist.Package,
			Dependencies: deps,
			Definition:   def,
			EntryPoints:  dist.EntryPoints,
		}, err
	default:
		return nil, fmt.Errorf("traverse: unsupported distribution variant %T", d)
	}
}

// PackageDefinition rebuilds every module of p.
func (r *Rewriter[TA, VA, TB, VB]) PackageDefinition(p ir.PackageDefinition[TA, VA]) (ir.PackageDefinition[TB, VB], error) {
	modules, err := rebuildNamed(&r.cursor, "modules", p.Modules,
		func(m ir.ModuleDefinitionEntry[TA, VA]) string { return m.Name.String() },
		func(m ir.ModuleDefinitionEntry[TA, VA]) (ir.ModuleDefinitionEntry[TB, VB], error) {
			def, err := r.ModuleDefinition(m.Definition)
			return ir.ModuleDefinitionEntry[TB, VB]{Name: m.Name, Access: m.Access, Definition: def}, err
		})
	return ir.PackageDefinition[TB, VB]{Modules: modules}, err
}

// PackageSpecification rebuilds every module of p.
func (r *Rewriter[TA, VA, TB, VB]) PackageSpecification(p ir.PackageSpecification[TA]) (ir.PackageSpecification[TB], error) {
	modules, err := rebuildNamed(&r.cursor, "modules", p.Modules,
		func(m ir.ModuleSpecificationEntry[TA]) string { return m.Name.String() },
		func(m ir.ModuleSpecificationEntry[TA]) (ir.ModuleSpecificationEntry[TB], error) {
			spec, err := r.ModuleSpecification(m.Specification)
			return ir.ModuleSpecificationEntry[TB]{Name: m.Name, Specification: spec}, err
		})
	return ir.PackageSpecification[TB]{Modules: modules}, err
}

// ModuleDefinition rebuilds the type and value definitions of m.
func (r *Rewriter[TA, VA, TB, VB]) ModuleDefinition(m ir.ModuleDefinition[TA, VA]) (ir.ModuleDefinition[TB, VB], error) {
	out := ir.ModuleDefinition[TB, VB]{Doc: m.Doc}
	var err error
	out.Types, err = rebuildNamed(&r.cursor, "types", m.Types,
		func(t ir.TypeDefinitionEntry[TA]) string { return t.Name.String() },
		func(t ir.TypeDefinitionEntry[TA]) (ir.TypeDefinitionEntry[TB], error) {
			def, err := r.TypeDefinition(t.Definition)
			return ir.TypeDefinitionEntry[TB]{Name: t.Name, Access: t.Access, Doc: t.Doc, Definition: def}, err
		})
	if err != nil {
		return out, err
	}
	out.Values, err = rebuildNamed(&r.cursor, "values", m.Values,
		func(v ir.ValueDefinitionEntry[TA, VA]) string { return v.Name.String() },
		func(v ir.ValueDefinitionEntry[TA, VA]) (ir.ValueDefinitionEntry[TB, VB], error) {
			def, err := r.ValueDefinition(v.Definition)
			return ir.ValueDefinitionEntry[TB, VB]{Name: v.Name, Access: v.Access, Doc: v.Doc, Definition: def}, err
		})
	return out, err
}

// ModuleSpecification rebuilds the type and value specifications of m.
func (r *Rewriter[TA, VA, TB, VB]) ModuleSpecification(m ir.ModuleSpecification[TA]) (ir.ModuleSpecification[TB], error) {
	out := ir.ModuleSpecification[TB]{Doc: m.Doc}
	var err error
	out.Types, err = rebuildNamed(&r.cursor, "types", m.Types,
		func(t ir.TypeSpecificationEntry[TA]) string { return t.Name.String() },
		func(t ir.TypeSpecificationEntry[TA]) (ir.TypeSpecificationEntry[TB], error) {
			spec, err := r.TypeSpecification(t.Specification)
			return ir.TypeSpecificationEntry[TB]{Name: t.Name, Doc: t.Doc, Specification: spec}, err
		})
	if err != nil {
		return out, err
	}
	out.Values, err = rebuildNamed(&r.cursor, "values", m.Values,
		func(v ir.ValueSpecificationEntry[TA]) string { return v.Name.String() },
		func(v ir.ValueSpecificationEntry[TA]) (ir.ValueSpecificationEntry[TB], error) {
			spec, err := r.ValueSpecification(v.Specification)
			return ir.ValueSpecificationEntry[TB]{Name: v.Name, Doc: v.Doc, Specification: spec}, err
		})
	return out, err
}

// TypeDefinition rebuilds a type definition.
func (r *Rewriter[TA, VA, TB, VB]) TypeDefinition(d ir.TypeDefinition[TA]) (ir.TypeDefinition[TB], error) {
	switch def := d.(type) {
	case ir.TypeAliasDefinition[TA]:
		t, err := descend(&r.cursor, "type-exp", func() (ir.Type[TB], error) { return r.Type(def.Type) })
		return ir.TypeAliasDefinition[TB]{Params: def.Params, Type: t}, err
	case ir.CustomTypeDefinition[TA]:
		ctors, err := r.constructors(def.Constructors)
		return ir.CustomTypeDefinition[TB]{Params: def.Params, Access: def.Access, Constructors: ctors}, err
	case ir.IncompleteTypeDefinition[TA]:
		partial, err := descend(&r.cursor, "partial", func() (ir.Type[TB], error) { return r.optionalType(def.Partial) })
		return ir.IncompleteTypeDefinition[TB]{Params: def.Params, Incompleteness: def.Incompleteness, Partial: partial}, err
	default:
		return nil, fmt.Errorf("traverse: unsupported type definition variant %T", d)
	}
}

// TypeSpecification rebuilds a type specification.
func (r *Rewriter[TA, VA, TB, VB]) TypeSpecification(s ir.TypeSpecification[TA]) (ir.TypeSpecification[TB], error) {
	switch spec := s.(type) {
	case ir.TypeAliasSpecification[TA]:
		t, err := descend(&r.cursor, "type-exp", func() (ir.Type[TB], error) { return r.Type(spec.Type) })
		return ir.TypeAliasSpecification[TB]{Params: spec.Params, Type: t}, err
	case ir.OpaqueTypeSpecification[TA]:
		return ir.OpaqueTypeSpecification[TB]{Params: spec.Params}, nil
	case ir.CustomTypeSpecification[TA]:
		ctors, err := r.constructors(spec.Constructors)
		return ir.CustomTypeSpecification[TB]{Params: spec.Params, Constructors: ctors}, err
	default:
		return nil, fmt.Errorf("traverse: unsupported type specification variant %T", s)
	}
}

func (r *Rewriter[TA, VA, TB, VB]) constructors(ctors []ir.Constructor[TA]) ([]ir.Constructor[TB], error) {
	return rebuildNamed(&r.cursor, "constructors", ctors,
		func(c ir.Constructor[TA]) string { return c.Name.String() },
		func(c ir.Constructor[TA]) (ir.Constructor[TB], error) {
			args, err := rebuildNamed(&r.cursor, "args", c.Args,
				func(a ir.ConstructorArg[TA]) string { return a.Name.String() },
				func(a ir.ConstructorArg[TA]) (ir.ConstructorArg[TB], error) {
					t, err := r.Type(a.Type)
					return ir.ConstructorArg[TB]{Name: a.Name, Type: t}, err
				})
			return ir.Constructor[TB]{Name: c.Name, Args: args}, err
		})
}

// ValueDefinition rebuilds a value definition. Input attributes are mapped
// as value attributes.
func (r *Rewriter[TA, VA, TB, VB]) ValueDefinition(d ir.ValueDefinition[TA, VA]) (ir.ValueDefinition[TB, VB], error) {
	var out ir.ValueDefinition[TB, VB]
	var err error
	out.Inputs, err = rebuildNamed(&r.cursor, "input-types", d.Inputs,
		func(in ir.InputType[TA, VA]) string { return in.Name.String() },
		func(in ir.InputType[TA, VA]) (ir.InputType[TB, VB], error) {
			t, err := r.Type(in.Type)
			return ir.InputType[TB, VB]{Name: in.Name, Attrs: r.t.ValueAttributes(in.Attrs), Type: t}, err
		})
	if err != nil {
		return out, err
	}
	if out.Output, err = descend(&r.cursor, "output-type", func() (ir.Type[TB], error) { return r.Type(d.Output) }); err != nil {
		return out, err
	}
	out.Body, err = descend(&r.cursor, "body", func() (ir.ValueBody[TB, VB], error) { return r.ValueBody(d.Body) })
	return out, err
}

// ValueBody rebuilds a body. Only expression bodies hold IR nodes.
func (r *Rewriter[TA, VA, TB, VB]) ValueBody(b ir.ValueBody[TA, VA]) (ir.ValueBody[TB, VB], error) {
	switch body := b.(type) {
	case ir.ExpressionBody[TA, VA]:
		v, err := r.Value(body.Value)
		return ir.ExpressionBody[TB, VB]{Value: v}, err
	case ir.NativeBody:
		return body, nil
	case ir.ExternalBody:
		return body, nil
	case ir.IncompleteBody:
		return body, nil
	default:
		return nil, fmt.Errorf("traverse: unsupported value body variant %T", b)
	}
}

// ValueSpecification rebuilds a value specification.
func (r *Rewriter[TA, VA, TB, VB]) ValueSpecification(s ir.ValueSpecification[TA]) (ir.ValueSpecification[TB], error) {
	var out ir.ValueSpecification[TB]
	var err error
	out.Inputs, err = rebuildNamed(&r.cursor, "inputs", s.Inputs,
		func(in ir.SpecInput[TA]) string { return in.Name.String() },
		func(in ir.SpecInput[TA]) (ir.SpecInput[TB], error) {
			t, err := r.Type(in.Type)
			return ir.SpecInput[TB]{Name: in.Name, Type: t}, err
		})
	if err != nil {
		return out, err
	}
	out.Output, err = descend(&r.cursor, "output", func() (ir.Type[TB], error) { return r.Type(s.Output) })
	return out, err
}

// Type transforms t.
func (r *Rewriter[TA, VA, TB, VB]) Type(t ir.Type[TA]) (ir.Type[TB], error) {
	return r.t.TransformType(r, t)
}

func (r *Rewriter[TA, VA, TB, VB]) optionalType(t ir.Type[TA]) (ir.Type[TB], error) {
	if t == nil {
		return nil, nil
	}
	return r.Type(t)
}

// RebuildType rebuilds t with mapped attributes and transformed children.
func (r *Rewriter[TA, VA, TB, VB]) RebuildType(t ir.Type[TA]) (ir.Type[TB], error) {
	c := &r.cursor
	a := r.t.TypeAttributes(t.Attributes())
	switch n := t.(type) {
	case ir.VariableType[TA]:
		return ir.VariableType[TB]{Attrs: a, Name: n.Name}, nil
	case ir.ReferenceType[TA]:
		args, err := rebuild(c, "args", n.Args, r.Type)
		return ir.ReferenceType[TB]{Attrs: a, FQName: n.FQName, Args: args}, err
	case ir.TupleType[TA]:
		elems, err := rebuild(c, "elements", n.Elements, r.Type)
		return ir.TupleType[TB]{Attrs: a, Elements: elems}, err
	case ir.RecordType[TA]:
		fields, err := r.fields(n.Fields)
		return ir.RecordType[TB]{Attrs: a, Fields: fields}, err
	case ir.ExtensibleRecordType[TA]:
		fields, err := r.fields(n.Fields)
		return ir.ExtensibleRecordType[TB]{Attrs: a, Variable: n.Variable, Fields: fields}, err
	case ir.FunctionType[TA]:
		arg, err := descend(c, "arg", func() (ir.Type[TB], error) { return r.Type(n.Argument) })
		if err != nil {
			return nil, err
		}
		res, err := descend(c, "result", func() (ir.Type[TB], error) { return r.Type(n.Result) })
		return ir.FunctionType[TB]{Attrs: a, Argument: arg, Result: res}, err
	case ir.UnitType[TA]:
		return ir.UnitType[TB]{Attrs: a}, nil
	default:
		return nil, fmt.Errorf("traverse: unsupported type variant %T", t)
	}
}

func (r *Rewriter[TA, VA, TB, VB]) fields(fields []ir.Field[TA]) ([]ir.Field[TB], error) {
	return rebuildNamed(&r.cursor, "fields", fields,
		func(f ir.Field[TA]) string { return f.Name.String() },
		func(f ir.Field[TA]) (ir.Field[TB], error) {
			t, err := r.Type(f.Type)
			return ir.Field[TB]{Name: f.Name, Type: t}, err
		})
}

// Pattern transforms p.
func (r *Rewriter[TA, VA, TB, VB]) Pattern(p ir.Pattern[VA]) (ir.Pattern[VB], error) {
	return r.t.TransformPattern(r, p)
}

// RebuildPattern rebuilds p with mapped attributes and transformed
// sub-patterns.
func (r *Rewriter[TA, VA, TB, VB]) RebuildPattern(p ir.Pattern[VA]) (ir.Pattern[VB], error) {
	c := &r.cursor
	a := r.t.ValueAttributes(p.Attributes())
	switch n := p.(type) {
	case ir.WildcardPattern[VA]:
		return ir.WildcardPattern[VB]{Attrs: a}, nil
	case ir.AsPattern[VA]:
		inner, err := descend(c, "pattern", func() (ir.Pattern[VB], error) { return r.Pattern(n.Pattern) })
		return ir.AsPattern[VB]{Attrs: a, Pattern: inner, Name: n.Name}, err
	case ir.TuplePattern[VA]:
		elems, err := rebuild(c, "elements", n.Elements, r.Pattern)
		return ir.TuplePattern[VB]{Attrs: a, Elements: elems}, err
	case ir.ConstructorPattern[VA]:
		args, err := rebuild(c, "args", n.Args, r.Pattern)
		return ir.ConstructorPattern[VB]{Attrs: a, FQName: n.FQName, Args: args}, err
	case ir.EmptyListPattern[VA]:
		return ir.EmptyListPattern[VB]{Attrs: a}, nil
	case ir.HeadTailPattern[VA]:
		head, err := descend(c, "head", func() (ir.Pattern[VB], error) { return r.Pattern(n.Head) })
		if err != nil {
			return nil, err
		}
		tail, err := descend(c, "tail", func() (ir.Pattern[VB], error) { return r.Pattern(n.Tail) })
		return ir.HeadTailPattern[VB]{Attrs: a, Head: head, Tail: tail}, err
	case ir.LiteralPattern[VA]:
		return ir.LiteralPattern[VB]{Attrs: a, Literal: n.Literal}, nil
	case ir.UnitPattern[VA]:
		return ir.UnitPattern[VB]{Attrs: a}, nil
	default:
		return nil, fmt.Errorf("traverse: unsupported pattern variant %T", p)
	}
}

// Value transforms v.
func (r *Rewriter[TA, VA, TB, VB]) Value(v ir.Value[TA, VA]) (ir.Value[TB, VB], error) {
	return r.t.TransformValue(r, v)
}

func (r *Rewriter[TA, VA, TB, VB]) at(segment string, v ir.Value[TA, VA]) (ir.Value[TB, VB], error) {
	return descend(&r.cursor, segment, func() (ir.Value[TB, VB], error) { return r.Value(v) })
}

// RebuildValue rebuilds v with mapped attributes and transformed children.
func (r *Rewriter[TA, VA, TB, VB]) RebuildValue(v ir.Value[TA, VA]) (ir.Value[TB, VB], error) {
	c := &r.cursor
	a := r.t.ValueAttributes(v.Attributes())
	switch n := v.(type) {
	case ir.LiteralValue[TA, VA]:
		return ir.LiteralValue[TB, VB]{Attrs: a, Literal: n.Literal}, nil
	case ir.ConstructorValue[TA, VA]:
		return ir.ConstructorValue[TB, VB]{Attrs: a, FQName: n.FQName}, nil
	case ir.TupleValue[TA, VA]:
		elems, err := rebuild(c, "elements", n.Elements, r.Value)
		return ir.TupleValue[TB, VB]{Attrs: a, Elements: elems}, err
	case ir.ListValue[TA, VA]:
		items, err := rebuild(c, "items", n.Items, r.Value)
		return ir.ListValue[TB, VB]{Attrs: a, Items: items}, err
	case ir.RecordValue[TA, VA]:
		fields, err := r.recordEntries("fields", n.Fields)
		return ir.RecordValue[TB, VB]{Attrs: a, Fields: fields}, err
	case ir.VariableValue[TA, VA]:
		return ir.VariableValue[TB, VB]{Attrs: a, Name: n.Name}, nil
	case ir.ReferenceValue[TA, VA]:
		return ir.ReferenceValue[TB, VB]{Attrs: a, FQName: n.FQName}, nil
	case ir.FieldValue[TA, VA]:
		rec, err := r.at("value", n.Record)
		return ir.FieldValue[TB, VB]{Attrs: a, Record: rec, Name: n.Name}, err
	case ir.FieldFunctionValue[TA, VA]:
		return ir.FieldFunctionValue[TB, VB]{Attrs: a, Name: n.Name}, nil
	case ir.ApplyValue[TA, VA]:
		fn, err := r.at("function", n.Function)
		if err != nil {
			return nil, err
		}
		arg, err := r.at("argument", n.Argument)
		return ir.ApplyValue[TB, VB]{Attrs: a, Function: fn, Argument: arg}, err
	case ir.LambdaValue[TA, VA]:
		p, err := descend(c, "pattern", func() (ir.Pattern[VB], error) { return r.Pattern(n.Pattern) })
		if err != nil {
			return nil, err
		}
		body, err := r.at("body", n.Body)
		return ir.LambdaValue[TB, VB]{Attrs: a, Pattern: p, Body: body}, err
	case ir.LetDefinitionValue[TA, VA]:
		def, err := descend(c, "definition", func() (ir.ValueDefinition[TB, VB], error) { return r.ValueDefinition(n.Definition) })
		if err != nil {
			return nil, err
		}
		in, err := r.at("body", n.In)
		return ir.LetDefinitionValue[TB, VB]{Attrs: a, Name: n.Name, Definition: def, In: in}, err
	case ir.LetRecursionValue[TA, VA]:
		bindings, err := rebuildNamed(c, "bindings", n.Bindings,
			func(b ir.LetBinding[TA, VA]) string { return b.Name.String() },
			func(b ir.LetBinding[TA, VA]) (ir.LetBinding[TB, VB], error) {
				def, err := r.ValueDefinition(b.Definition)
				return ir.LetBinding[TB, VB]{Name: b.Name, Definition: def}, err
			})
		if err != nil {
			return nil, err
		}
		in, err := r.at("body", n.In)
		return ir.LetRecursionValue[TB, VB]{Attrs: a, Bindings: bindings, In: in}, err
	case ir.DestructureValue[TA, VA]:
		p, err := descend(c, "pattern", func() (ir.Pattern[VB], error) { return r.Pattern(n.Pattern) })
		if err != nil {
			return nil, err
		}
		val, err := r.at("value", n.Value)
		if err != nil {
			return nil, err
		}
		in, err := r.at("body", n.In)
		return ir.DestructureValue[TB, VB]{Attrs: a, Pattern: p, Value: val, In: in}, err
	case ir.IfThenElseValue[TA, VA]:
		cond, err := r.at("condition", n.Condition)
		if err != nil {
			return nil, err
		}
		then, err := r.at("then-branch", n.Then)
		if err != nil {
			return nil, err
		}
		els, err := r.at("else-branch", n.Else)
		return ir.IfThenElseValue[TB, VB]{Attrs: a, Condition: cond, Then: then, Else: els}, err
	case ir.PatternMatchValue[TA, VA]:
		subject, err := r.at("subject", n.Subject)
		if err != nil {
			return nil, err
		}
		cases, err := rebuild(c, "cases", n.Cases, func(mc ir.MatchCase[TA, VA]) (ir.MatchCase[TB, VB], error) {
			p, err := descend(c, "0", func() (ir.Pattern[VB], error) { return r.Pattern(mc.Pattern) })
			if err != nil {
				return ir.MatchCase[TB, VB]{}, err
			}
			body, err := r.at("1", mc.Body)
			return ir.MatchCase[TB, VB]{Pattern: p, Body: body}, err
		})
		return ir.PatternMatchValue[TB, VB]{Attrs: a, Subject: subject, Cases: cases}, err
	case ir.UpdateRecordValue[TA, VA]:
		rec, err := r.at("record", n.Record)
		if err != nil {
			return nil, err
		}
		fields, err := r.recordEntries("updates", n.Fields)
		return ir.UpdateRecordValue[TB, VB]{Attrs: a, Record: rec, Fields: fields}, err
	case ir.UnitValue[TA, VA]:
		return ir.UnitValue[TB, VB]{Attrs: a}, nil
	case ir.HoleValue[TA, VA]:
		expected, err := descend(c, "tpe", func() (ir.Type[TB], error) { return r.optionalType(n.ExpectedType) })
		return ir.HoleValue[TB, VB]{Attrs: a, Reason: n.Reason, ExpectedType: expected}, err
	case ir.NativeValue[TA, VA]:
		return ir.NativeValue[TB, VB]{Attrs: a, FQName: n.FQName, Info: n.Info}, nil
	case ir.ExternalValue[TA, VA]:
		return ir.ExternalValue[TB, VB]{Attrs: a, ExternalName: n.ExternalName, TargetPlatform: n.TargetPlatform}, nil
	default:
		return nil, fmt.Errorf("traverse: unsupported value variant %T", v)
	}
}

func (r *Rewriter[TA, VA, TB, VB]) recordEntries(segment string, entries []ir.RecordEntry[TA, VA]) ([]ir.RecordEntry[TB, VB], error) {
	return rebuildNamed(&r.cursor, segment, entries,
		func(e ir.RecordEntry[TA, VA]) string { return e.Name.String() },
		func(e ir.RecordEntry[TA, VA]) (ir.RecordEntry[TB, VB], error) {
			v, err := r.Value(e.Value)
			return ir.RecordEntry[TB, VB]{Name: e.Name, Value: v}, err
		})
}

// descend runs f with segment entered.
func descend[T any](c *Cursor, segment string, f func() (T, error)) (T, error) {
	c.Enter(segment)
	defer c.Exit()
	return f()
}

// rebuild maps f over xs under segment/i. A nil slice stays nil.
func rebuild[T, U any](c *Cursor, segment string, xs []T, f func(T) (U, error)) ([]U, error) {
	if xs == nil {
		return nil, nil
	}
	return descend(c, segment, func() ([]U, error) {
		out := make([]U, len(xs))
		for i, x := range xs {
			y, err := descend(c, strconv.Itoa(i), func() (U, error) { return f(x) })
			if err != nil {
				return nil, err
			}
			out[i] = y
		}
		return out, nil
	})
}

// rebuildNamed maps f over xs under segment/key(x). A nil slice stays nil.
func rebuildNamed[T, U any](c *Cursor, segment string, xs []T, key func(T) string, f func(T) (U, error)) ([]U, error) {
	if xs == nil {
		return nil, nil
	}
	return descend(c, segment, func() ([]U, error) {
		out := make([]U, len(xs))
		for i, x := range xs {
			y, err := descend(c, key(x), func() (U, error) { return f(x) })
			if err != nil {
				return nil, err
			}
			out[i] = y
		}
		return out, nil
	})
}
