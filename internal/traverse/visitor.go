package traverse

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/naming"
)

// Visitor has one method per node kind. A method returns an error to stop
// the walk, and calls the matching Walker "Children" method to descend.
type Visitor[TA, VA any] interface {
	VisitModuleDefinition(w *Walker[TA, VA], name naming.ModuleName, m ir.ModuleDefinition[TA, VA]) error
	VisitModuleSpecification(w *Walker[TA, VA], name naming.ModuleName, m ir.ModuleSpecification[TA]) error
	VisitTypeDefinition(w *Walker[TA, VA], name naming.Name, d ir.TypeDefinition[TA]) error
	VisitTypeSpecification(w *Walker[TA, VA], name naming.Name, s ir.TypeSpecification[TA]) error
	VisitValueDefinition(w *Walker[TA, VA], name naming.Name, d ir.ValueDefinition[TA, VA]) error
	VisitValueSpecification(w *Walker[TA, VA], name naming.Name, s ir.ValueSpecification[TA]) error
	VisitType(w *Walker[TA, VA], t ir.Type[TA]) error
	VisitPattern(w *Walker[TA, VA], p ir.Pattern[VA]) error
	VisitValue(w *Walker[TA, VA], v ir.Value[TA, VA]) error
}

// Defaults implements every Visitor method by descending into the node's
// children. Embed it and override the methods of interest:
//
//	type refs struct {
//		traverse.Defaults[ir.TypeAttributes, ir.ValueAttributes]
//		seen []naming.FQName
//	}
//
//	func (r *refs) VisitValue(w *traverse.Walker[ir.TypeAttributes, ir.ValueAttributes], v ir.V4Value) error {
//		if ref, ok := v.(ir.ReferenceValue[ir.TypeAttributes, ir.ValueAttributes]); ok {
//			r.seen = append(r.seen, ref.FQName)
//		}
//		return w.ValueChildren(v)
//	}
type Defaults[TA, VA any] struct{}

func (Defaults[TA, VA]) VisitModuleDefinition(w *Walker[TA, VA], _ naming.ModuleName, m ir.ModuleDefinition[TA, VA]) error {
	return w.ModuleDefinitionChildren(m)
}

func (Defaults[TA, VA]) VisitModuleSpecification(w *Walker[TA, VA], _ naming.ModuleName, m ir.ModuleSpecification[TA]) error {
	return w.ModuleSpecificationChildren(m)
}

func (Defaults[TA, VA]) VisitTypeDefinition(w *Walker[TA, VA], _ naming.Name, d ir.TypeDefinition[TA]) error {
	return w.TypeDefinitionChildren(d)
}

func (Defaults[TA, VA]) VisitTypeSpecification(w *Walker[TA, VA], _ naming.Name, s ir.TypeSpecification[TA]) error {
	return w.TypeSpecificationChildren(s)
}

func (Defaults[TA, VA]) VisitValueDefinition(w *Walker[TA, VA], _ naming.Name, d ir.ValueDefinition[TA, VA]) error {
	return w.ValueDefinitionChildren(d)
}

func (Defaults[TA, VA]) VisitValueSpecification(w *Walker[TA, VA], _ naming.Name, s ir.ValueSpecification[TA]) error {
	return w.ValueSpecificationChildren(s)
}

func (Defaults[TA, VA]) VisitType(w *Walker[TA, VA], t ir.Type[TA]) error {
	return w.TypeChildren(t)
}

func (Defaults[TA, VA]) VisitPattern(w *Walker[TA, VA], p ir.Pattern[VA]) error {
	return w.PatternChildren(p)
}

func (Defaults[TA, VA]) VisitValue(w *Walker[TA, VA], v ir.Value[TA, VA]) error {
	return w.ValueChildren(v)
}

// Funcs is a Visitor built from optional callbacks. Each callback runs
// before the node's children are walked; nil callbacks are skipped.
type Funcs[TA, VA any] struct {
	ModuleDefinition    func(c *Cursor, name naming.ModuleName, m ir.ModuleDefinition[TA, VA]) error
	ModuleSpecification func(c *Cursor, name naming.ModuleName, m ir.ModuleSpecification[TA]) error
	TypeDefinition      func(c *Cursor, name naming.Name, d ir.TypeDefinition[TA]) error
	TypeSpecification   func(c *Cursor, name naming.Name, s ir.TypeSpecification[TA]) error
	ValueDefinition     func(c *Cursor, name naming.Name, d ir.ValueDefinition[TA, VA]) error
	ValueSpecification  func(c *Cursor, name naming.Name, s ir.ValueSpecification[TA]) error
	Type                func(c *Cursor, t ir.Type[TA]) error
	Pattern             func(c *Cursor, p ir.Pattern[VA]) error
	Value               func(c *Cursor, v ir.Value[TA, VA]) error
}

var _ Visitor[ir.ClassicAttrs, ir.ClassicAttrs] = (*Funcs[ir.ClassicAttrs, ir.ClassicAttrs])(nil)

func (f *Funcs[TA, VA]) VisitModuleDefinition(w *Walker[TA, VA], name naming.ModuleName, m ir.ModuleDefinition[TA, VA]) error {
	if f.ModuleDefinition != nil {
		if err := f.ModuleDefinition(w.Cursor(), name, m); err != nil {
			return err
		}
	}
	return w.ModuleDefinitionChildren(m)
}

func (f *Funcs[TA, VA]) VisitModuleSpecification(w *Walker[TA, VA], name naming.ModuleName, m ir.ModuleSpecification[TA]) error {
	if f.ModuleSpecification != nil {
		if err := f.ModuleSpecification(w.Cursor(), name, m); err != nil {
			return err
		}
	}
	return w.ModuleSpecificationChildren(m)
}

func (f *Funcs[TA, VA]) VisitTypeDefinition(w *Walker[TA, VA], name naming.Name, d ir.TypeDefinition[TA]) error {
	if f.TypeDefinition != nil {
		if err := f.TypeDefinition(w.Cursor(), name, d); err != nil {
			return err
		}
	}
	return w.TypeDefinitionChildren(d)
}

func (f *Funcs[TA, VA]) VisitTypeSpecification(w *Walker[TA, VA], name naming.Name, s ir.TypeSpecification[TA]) error {
	if f.TypeSpecification != nil {
		if err := f.TypeSpecification(w.Cursor(), name, s); err != nil {
			return err
		}
	}
	return w.TypeSpecificationChildren(s)
}

func (f *Funcs[TA, VA]) VisitValueDefinition(w *Walker[TA, VA], name naming.Name, d ir.ValueDefinition[TA, VA]) error {
	if f.ValueDefinition != nil {
		if err := f.ValueDefinition(w.Cursor(), name, d); err != nil {
			return err
		}
	}
	return w.ValueDefinitionChildren(d)
}

func (f *Funcs[TA, VA]) VisitValueSpecification(w *Walker[TA, VA], name naming.Name, s ir.ValueSpecification[TA]) error {
	if f.ValueSpecification != nil {
		if err := f.ValueSpecification(w.Cursor(), name, s); err != nil {
			return err
		}
	}
	return w.ValueSpecificationChildren(s)
}

func (f *Funcs[TA, VA]) VisitType(w *Walker[TA, VA], t ir.Type[TA]) error {
	if f.Type != nil {
		if err := f.Type(w.Cursor(), t); err != nil {
			return err
		}
	}
	return w.TypeChildren(t)
}

func (f *Funcs[TA, VA]) VisitPattern(w *Walker[TA, VA], p ir.Pattern[VA]) error {
	if f.Pattern != nil {
		if err := f.Pattern(w.Cursor(), p); err != nil {
			return err
		}
	}
	return w.PatternChildren(p)
}

func (f *Funcs[TA, VA]) VisitValue(w *Walker[TA, VA], v ir.Value[TA, VA]) error {
	if f.Value != nil {
		if err := f.Value(w.Cursor(), v); err != nil {
			return err
		}
	}
	return w.ValueChildren(v)
}
