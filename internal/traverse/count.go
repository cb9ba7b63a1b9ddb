package traverse

import (
	"github.com/roach88/morphir-ir/internal/ir"
	"github.com/roach88/morphir-ir/internal/naming"
)

// Stats counts the nodes of a tree.
type Stats struct {
	Modules      int `json:"modules" yaml:"modules"` // module definitions and specifications
	Types        int `json:"types" yaml:"types"`     // type definitions and specifications
	Values       int `json:"values" yaml:"values"`   // value definitions and specifications, let-bound ones included
	TypeNodes    int `json:"typeNodes" yaml:"typeNodes"`
	PatternNodes int `json:"patternNodes" yaml:"patternNodes"`
	ValueNodes   int `json:"valueNodes" yaml:"valueNodes"`
}

// Nodes is the number of expression nodes of any kind.
func (s Stats) Nodes() int { return s.TypeNodes + s.PatternNodes + s.ValueNodes }

func counter[TA, VA any](s *Stats) *Funcs[TA, VA] {
	return &Funcs[TA, VA]{
		ModuleDefinition: func(*Cursor, naming.ModuleName, ir.ModuleDefinition[TA, VA]) error {
			s.Modules++
			return nil
		},
		ModuleSpecification: func(*Cursor, naming.ModuleName, ir.ModuleSpecification[TA]) error {
			s.Modules++
			return nil
		},
		TypeDefinition: func(*Cursor, naming.Name, ir.TypeDefinition[TA]) error {
			s.Types++
			return nil
		},
		TypeSpecification: func(*Cursor, naming.Name, ir.TypeSpecification[TA]) error {
			s.Types++
			return nil
		},
		ValueDefinition: func(*Cursor, naming.Name, ir.ValueDefinition[TA, VA]) error {
			s.Values++
			return nil
		},
		ValueSpecification: func(*Cursor, naming.Name, ir.ValueSpecification[TA]) error {
			s.Values++
			return nil
		},
		Type: func(*Cursor, ir.Type[TA]) error {
			s.TypeNodes++
			return nil
		},
		Pattern: func(*Cursor, ir.Pattern[VA]) error {
			s.PatternNodes++
			return nil
		},
		Value: func(*Cursor, ir.Value[TA, VA]) error {
			s.ValueNodes++
			return nil
		},
	}
}

// Count walks doc and counts its nodes. Dependency specifications are
// included.
func Count[TA, VA any](doc *ir.Document[TA, VA]) Stats {
	var s Stats
	// The counting callbacks never fail.
	_ = Walk[TA, VA](doc, counter[TA, VA](&s))
	return s
}

// CountValue counts the nodes of v.
func CountValue[TA, VA any](v ir.Value[TA, VA]) Stats {
	var s Stats
	_ = WalkValue[TA, VA](v, counter[TA, VA](&s))
	return s
}
