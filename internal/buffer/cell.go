// Released under an MIT license. See LICENSE.

package buffer

import (
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/operator"
	"github.com/comscicalc/csc/internal/status"
)

// ID addresses a cell in an arena.
type ID int32

// Nil is the ID of no cell.
const Nil ID = -1

// Kind is the grammatical role of a cell.
type Kind uint8

// Cell kinds. Commas are Empty cells.
const (
	Number Kind = iota
	Operator
	Bracket
	DecimalPoint
	Empty
)

func (k Kind) String() string {
	switch k {
	case Number:
		return "number"
	case Operator:
		return "operator"
	case Bracket:
		return "bracket"
	case DecimalPoint:
		return "decimal point"
	}

	return "empty"
}

// Depth is the effect a cell has on the nesting level.
type Depth int8

// Nesting effects.
const (
	Decrease Depth = -1
	Keep     Depth = 0
	Increase Depth = 1
)

// Value says whether a cell still holds a keystroke or a solved word.
type Value uint8

// Value kinds.
const (
	Char Value = iota
	Int
)

// Cell is one user-visible primitive of an expression.
type Cell struct {
	Glyph  byte
	Kind   Kind
	Depth  Depth
	Value  Value
	Format format.Kind
	Base   base.T
	Signed bool
	Op     *operator.T
	Sub    uint64

	Prev ID
	Next ID
}

// Numeric returns true if c continues a literal.
func (c *Cell) Numeric() bool {
	return c.Kind == Number || c.Kind == DecimalPoint
}

// Operand returns true if c is a solved value.
func (c *Cell) Operand() bool {
	return c.Kind == Number && c.Value == Int
}

// NewCell classifies the keystroke c using the alphabet of the base of f
// and the operator table. The cell records the base, format and sign of f.
func NewCell(c byte, f format.T) (Cell, error) {
	n := Cell{
		Glyph:  c,
		Format: f.Input,
		Base:   f.Base,
		Signed: f.Signed,
		Prev:   Nil,
		Next:   Nil,
	}

	switch {
	case f.Base.Digit(c):
		n.Kind = Number
	case c == '.':
		n.Kind = DecimalPoint
	case c == ',':
		n.Kind = Empty
	case c == '(':
		n.Kind = Bracket
		n.Depth = Increase
	case c == ')':
		n.Kind = Bracket
		n.Depth = Decrease
	default:
		o := operator.Lookup(c)
		if o == nil {
			return Cell{}, errors.Annotatef(status.UnknownInput, "%q in %s", c, f.Base)
		}

		n.Kind = Operator
		n.Op = o

		if o.Depth {
			n.Depth = Increase
		}
	}

	return n, nil
}
