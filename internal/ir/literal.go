package ir

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
)

// Literal is a sealed interface over literal constants.
type Literal interface {
	isLiteral()
}

// BoolLiteral is a boolean constant.
type BoolLiteral struct{ Value bool }

// CharLiteral is a single character constant.
type CharLiteral struct{ Value rune }

// StringLiteral is a string constant.
type StringLiteral struct{ Value string }

// IntegerLiteral is a whole number constant. The Classic dialect also calls
// it WholeNumberLiteral.
type IntegerLiteral struct{ Value int64 }

// FloatLiteral is a floating point constant.
type FloatLiteral struct{ Value float64 }

// DecimalLiteral is an arbitrary precision decimal constant, kept in its
// lexical form so "1.230" survives a round trip unchanged.
type DecimalLiteral struct{ Value string }

func (BoolLiteral) isLiteral()    {}
func (CharLiteral) isLiteral()    {}
func (StringLiteral) isLiteral()  {}
func (IntegerLiteral) isLiteral() {}
func (FloatLiteral) isLiteral()   {}
func (DecimalLiteral) isLiteral() {}

// NewDecimalLiteral validates s as a finite decimal number.
func NewDecimalLiteral(s string) (DecimalLiteral, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return DecimalLiteral{}, fmt.Errorf("invalid decimal %q: %w", s, err)
	}
	if d.Form != apd.Finite {
		return DecimalLiteral{}, fmt.Errorf("invalid decimal %q: not finite", s)
	}
	return DecimalLiteral{Value: s}, nil
}
