package traverse

import (
	"fmt"

	"github.com/roach88/morphir-ir/internal/ir"
)

// Walk visits every node of doc in pre-order.
func Walk[TA, VA any](doc *ir.Document[TA, VA], v Visitor[TA, VA]) error {
	return NewWalker(v).Document(doc)
}

// WalkType visits every node of t.
func WalkType[TA, VA any](t ir.Type[TA], v Visitor[TA, VA]) error {
	return NewWalker(v).Type(t)
}

// WalkValue visits every node of val.
func WalkValue[TA, VA any](val ir.Value[TA, VA], v Visitor[TA, VA]) error {
	return NewWalker(v).Value(val)
}

// Walker drives a Visitor. The node methods (Type, Value, ...) dispatch to
// the visitor; the Children methods walk the direct children of a node and
// are what visitors call to descend.
//
// A Walker is not safe for concurrent use.
type Walker[TA, VA any] struct {
	visitor Visitor[TA, VA]
	cursor  Cursor
}

// NewWalker returns a Walker for v positioned at the root.
func NewWalker[TA, VA any](v Visitor[TA, VA]) *Walker[TA, VA] {
	return &Walker[TA, VA]{visitor: v}
}

// Cursor returns the position of the node being visited.
func (w *Walker[TA, VA]) Cursor() *Cursor { return &w.cursor }

// Document walks the distribution of doc.
func (w *Walker[TA, VA]) Document(doc *ir.Document[TA, VA]) error {
	return w.cursor.at("distribution", func() error { return w.Distribution(doc.Distribution) })
}

// Distribution walks dependencies first, then the package.
func (w *Walker[TA, VA]) Distribution(d ir.Distribution[TA, VA]) error {
	err := named(&w.cursor, "dependencies", d.DependencyList(),
		func(dep ir.Dependency[TA]) string { return dep.Name.String() },
		func(dep ir.Dependency[TA]) error { return w.PackageSpecification(dep.Specification) })
	if err != nil {
		return err
	}
	switch dist := d.(type) {
	case ir.Library[TA, VA]:
		return w.cursor.at("def", func() error { return w.PackageDefinition(dist.Definition) })
	case ir.Specs[TA, VA]:
		return w.cursor.at("spec", func() error { return w.PackageSpecification(dist.Specification) })
	case ir.Application[TA, VA]:
		return w.cursor.at("def", func() error { return w.PackageDefinition(dist.Definition) })
	default:
		return fmt.Errorf("traverse: unsupported distribution variant %T", d)
	}
}

// PackageDefinition visits each module definition.
func (w *Walker[TA, VA]) PackageDefinition(p ir.PackageDefinition[TA, VA]) error {
	return named(&w.cursor, "modules", p.Modules,
		func(m ir.ModuleDefinitionEntry[TA, VA]) string { return m.Name.String() },
		func(m ir.ModuleDefinitionEntry[TA, VA]) error {
			return w.visitor.VisitModuleDefinition(w, m.Name, m.Definition)
		})
}

// PackageSpecification visits each module specification.
func (w *Walker[TA, VA]) PackageSpecification(p ir.PackageSpecification[TA]) error {
	return named(&w.cursor, "modules", p.Modules,
		func(m ir.ModuleSpecificationEntry[TA]) string { return m.Name.String() },
		func(m ir.ModuleSpecificationEntry[TA]) error {
			return w.visitor.VisitModuleSpecification(w, m.Name, m.Specification)
		})
}

// ModuleDefinitionChildren visits the type and value definitions of m.
func (w *Walker[TA, VA]) ModuleDefinitionChildren(m ir.ModuleDefinition[TA, VA]) error {
	err := named(&w.cursor, "types", m.Types,
		func(t ir.TypeDefinitionEntry[TA]) string { return t.Name.String() },
		func(t ir.TypeDefinitionEntry[TA]) error { return w.visitor.VisitTypeDefinition(w, t.Name, t.Definition) })
	if err != nil {
		return err
	}
	return named(&w.cursor, "values", m.Values,
		func(v ir.ValueDefinitionEntry[TA, VA]) string { return v.Name.String() },
		func(v ir.ValueDefinitionEntry[TA, VA]) error { return w.visitor.VisitValueDefinition(w, v.Name, v.Definition) })
}

// ModuleSpecificationChildren visits the type and value specifications of m.
func (w *Walker[TA, VA]) ModuleSpecificationChildren(m ir.ModuleSpecification[TA]) error {
	err := named(&w.cursor, "types", m.Types,
		func(t ir.TypeSpecificationEntry[TA]) string { return t.Name.String() },
		func(t ir.TypeSpecificationEntry[TA]) error {
			return w.visitor.VisitTypeSpecification(w, t.Name, t.Specification)
		})
	if err != nil {
		return err
	}
	return named(&w.cursor, "values", m.Values,
		func(v ir.ValueSpecificationEntry[TA]) string { return v.Name.String() },
		func(v ir.ValueSpecificationEntry[TA]) error {
			return w.visitor.VisitValueSpecification(w, v.Name, v.Specification)
		})
}

// TypeDefinitionChildren visits the type expressions of d.
func (w *Walker[TA, VA]) TypeDefinitionChildren(d ir.TypeDefinition[TA]) error {
	switch def := d.(type) {
	case ir.TypeAliasDefinition[TA]:
		return w.cursor.at("type-exp", func() error { return w.Type(def.Type) })
	case ir.CustomTypeDefinition[TA]:
		return w.constructors(def.Constructors)
	case ir.IncompleteTypeDefinition[TA]:
		if def.Partial == nil {
			return nil
		}
		return w.cursor.at("partial", func() error { return w.Type(def.Partial) })
	default:
		return fmt.Errorf("traverse: unsupported type definition variant %T", d)
	}
}

// TypeSpecificationChildren visits the type expressions of s.
func (w *Walker[TA, VA]) TypeSpecificationChildren(s ir.TypeSpecification[TA]) error {
	switch spec := s.(type) {
	case ir.TypeAliasSpecification[TA]:
		return w.cursor.at("type-exp", func() error { return w.Type(spec.Type) })
	case ir.OpaqueTypeSpecification[TA]:
		return nil
	case ir.CustomTypeSpecification[TA]:
		return w.constructors(spec.Constructors)
	default:
		return fmt.Errorf("traverse: unsupported type specification variant %T", s)
	}
}

func (w *Walker[TA, VA]) constructors(ctors []ir.Constructor[TA]) error {
	return named(&w.cursor, "constructors", ctors,
		func(c ir.Constructor[TA]) string { return c.Name.String() },
		func(c ir.Constructor[TA]) error {
			return named(&w.cursor, "args", c.Args,
				func(a ir.ConstructorArg[TA]) string { return a.Name.String() },
				func(a ir.ConstructorArg[TA]) error { return w.Type(a.Type) })
		})
}

// ValueDefinitionChildren visits the input types, the output type and, for
// expression bodies, the body of d.
func (w *Walker[TA, VA]) ValueDefinitionChildren(d ir.ValueDefinition[TA, VA]) error {
	err := named(&w.cursor, "input-types", d.Inputs,
		func(in ir.InputType[TA, VA]) string { return in.Name.String() },
		func(in ir.InputType[TA, VA]) error { return w.Type(in.Type) })
	if err != nil {
		return err
	}
	if err := w.cursor.at("output-type", func() error { return w.Type(d.Output) }); err != nil {
		return err
	}
	if body, ok := d.Body.(ir.ExpressionBody[TA, VA]); ok {
		return w.cursor.at("body", func() error { return w.Value(body.Value) })
	}
	return nil
}

// ValueSpecificationChildren visits the input and output types of s.
func (w *Walker[TA, VA]) ValueSpecificationChildren(s ir.ValueSpecification[TA]) error {
	err := named(&w.cursor, "inputs", s.Inputs,
		func(in ir.SpecInput[TA]) string { return in.Name.String() },
		func(in ir.SpecInput[TA]) error { return w.Type(in.Type) })
	if err != nil {
		return err
	}
	return w.cursor.at("output", func() error { return w.Type(s.Output) })
}

// Type visits t.
func (w *Walker[TA, VA]) Type(t ir.Type[TA]) error {
	return w.visitor.VisitType(w, t)
}

// TypeChildren visits the direct children of t.
func (w *Walker[TA, VA]) TypeChildren(t ir.Type[TA]) error {
	switch n := t.(type) {
	case ir.VariableType[TA], ir.UnitType[TA]:
		return nil
	case ir.ReferenceType[TA]:
		return each(&w.cursor, "args", n.Args, w.Type)
	case ir.TupleType[TA]:
		return each(&w.cursor, "elements", n.Elements, w.Type)
	case ir.RecordType[TA]:
		return w.fields(n.Fields)
	case ir.ExtensibleRecordType[TA]:
		return w.fields(n.Fields)
	case ir.FunctionType[TA]:
		if err := w.cursor.at("arg", func() error { return w.Type(n.Argument) }); err != nil {
			return err
		}
		return w.cursor.at("result", func() error { return w.Type(n.Result) })
	default:
		return fmt.Errorf("traverse: unsupported type variant %T", t)
	}
}

func (w *Walker[TA, VA]) fields(fields []ir.Field[TA]) error {
	return named(&w.cursor, "fields", fields,
		func(f ir.Field[TA]) string { return f.Name.String() },
		func(f ir.Field[TA]) error { return w.Type(f.Type) })
}

// Pattern visits p.
func (w *Walker[TA, VA]) Pattern(p ir.Pattern[VA]) error {
	return w.visitor.VisitPattern(w, p)
}

// PatternChildren visits the direct sub-patterns of p.
func (w *Walker[TA, VA]) PatternChildren(p ir.Pattern[VA]) error {
	switch n := p.(type) {
	case ir.WildcardPattern[VA], ir.EmptyListPattern[VA], ir.LiteralPattern[VA], ir.UnitPattern[VA]:
		return nil
	case ir.AsPattern[VA]:
		return w.cursor.at("pattern", func() error { return w.Pattern(n.Pattern) })
	case ir.TuplePattern[VA]:
		return each(&w.cursor, "elements", n.Elements, w.Pattern)
	case ir.ConstructorPattern[VA]:
		return each(&w.cursor, "args", n.Args, w.Pattern)
	case ir.HeadTailPattern[VA]:
		if err := w.cursor.at("head", func() error { return w.Pattern(n.Head) }); err != nil {
			return err
		}
		return w.cursor.at("tail", func() error { return w.Pattern(n.Tail) })
	default:
		return fmt.Errorf("traverse: unsupported pattern variant %T", p)
	}
}

// Value visits v.
func (w *Walker[TA, VA]) Value(v ir.Value[TA, VA]) error {
	return w.visitor.VisitValue(w, v)
}

// ValueChildren visits the direct children of v: sub-values, patterns,
// let-bound definitions and the expected type of a hole.
func (w *Walker[TA, VA]) ValueChildren(v ir.Value[TA, VA]) error {
	c := &w.cursor
	switch n := v.(type) {
	case ir.LiteralValue[TA, VA], ir.ConstructorValue[TA, VA], ir.VariableValue[TA, VA],
		ir.ReferenceValue[TA, VA], ir.FieldFunctionValue[TA, VA], ir.UnitValue[TA, VA],
		ir.NativeValue[TA, VA], ir.ExternalValue[TA, VA]:
		return nil
	case ir.TupleValue[TA, VA]:
		return each(c, "elements", n.Elements, w.Value)
	case ir.ListValue[TA, VA]:
		return each(c, "items", n.Items, w.Value)
	case ir.RecordValue[TA, VA]:
		return w.recordEntries("fields", n.Fields)
	case ir.FieldValue[TA, VA]:
		return c.at("value", func() error { return w.Value(n.Record) })
	case ir.ApplyValue[TA, VA]:
		if err := c.at("function", func() error { return w.Value(n.Function) }); err != nil {
			return err
		}
		return c.at("argument", func() error { return w.Value(n.Argument) })
	case ir.LambdaValue[TA, VA]:
		if err := c.at("pattern", func() error { return w.Pattern(n.Pattern) }); err != nil {
			return err
		}
		return c.at("body", func() error { return w.Value(n.Body) })
	case ir.LetDefinitionValue[TA, VA]:
		err := c.at("definition", func() error { return w.visitor.VisitValueDefinition(w, n.Name, n.Definition) })
		if err != nil {
			return err
		}
		return c.at("body", func() error { return w.Value(n.In) })
	case ir.LetRecursionValue[TA, VA]:
		err := named(c, "bindings", n.Bindings,
			func(b ir.LetBinding[TA, VA]) string { return b.Name.String() },
			func(b ir.LetBinding[TA, VA]) error { return w.visitor.VisitValueDefinition(w, b.Name, b.Definition) })
		if err != nil {
			return err
		}
		return c.at("body", func() error { return w.Value(n.In) })
	case ir.DestructureValue[TA, VA]:
		if err := c.at("pattern", func() error { return w.Pattern(n.Pattern) }); err != nil {
			return err
		}
		if err := c.at("value", func() error { return w.Value(n.Value) }); err != nil {
			return err
		}
		return c.at("body", func() error { return w.Value(n.In) })
	case ir.IfThenElseValue[TA, VA]:
		if err := c.at("condition", func() error { return w.Value(n.Condition) }); err != nil {
			return err
		}
		if err := c.at("then-branch", func() error { return w.Value(n.Then) }); err != nil {
			return err
		}
		return c.at("else-branch", func() error { return w.Value(n.Else) })
	case ir.PatternMatchValue[TA, VA]:
		if err := c.at("subject", func() error { return w.Value(n.Subject) }); err != nil {
			return err
		}
		return each(c, "cases", n.Cases, func(mc ir.MatchCase[TA, VA]) error {
			if err := c.at("0", func() error { return w.Pattern(mc.Pattern) }); err != nil {
				return err
			}
			return c.at("1", func() error { return w.Value(mc.Body) })
		})
	case ir.UpdateRecordValue[TA, VA]:
		if err := c.at("record", func() error { return w.Value(n.Record) }); err != nil {
			return err
		}
		return w.recordEntries("updates", n.Fields)
	case ir.HoleValue[TA, VA]:
		if n.ExpectedType == nil {
			return nil
		}
		return c.at("tpe", func() error { return w.Type(n.ExpectedType) })
	default:
		return fmt.Errorf("traverse: unsupported value variant %T", v)
	}
}

func (w *Walker[TA, VA]) recordEntries(segment string, entries []ir.RecordEntry[TA, VA]) error {
	return named(&w.cursor, segment, entries,
		func(e ir.RecordEntry[TA, VA]) string { return e.Name.String() },
		func(e ir.RecordEntry[TA, VA]) error { return w.Value(e.Value) })
}

// named runs f over xs under segment/key(x). Empty lists are skipped.
func named[T any](c *Cursor, segment string, xs []T, key func(T) string, f func(T) error) error {
	if len(xs) == 0 {
		return nil
	}
	return c.at(segment, func() error {
		for _, x := range xs {
			if err := c.at(key(x), func() error { return f(x) }); err != nil {
				return err
			}
		}
		return nil
	})
}
