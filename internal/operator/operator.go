// Released under an MIT license. See LICENSE.

// Package operator provides the table of operators the calculator accepts.
package operator

import (
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/format"
)

// Variadic is the argument count of an operator taking any number of arguments.
const Variadic = -1

//nolint:gochecknoglobals
var (
	// BadArgs is the cause of an evaluation with arguments of the wrong format.
	BadArgs = errors.New("bad arguments")

	// DivideByZero is the cause of a division or remainder by zero.
	DivideByZero = errors.New("divide by zero")

	// Overflow is the cause of a fixed-point quotient too large for the word.
	Overflow = errors.New("overflow")
)

// Value is a solved operand: a raw word and the format it is held in.
type Value struct {
	Word   uint64
	Format format.Kind
}

// Evaluator computes a result word. The format of every argument has
// already been promoted to f.Input.
type Evaluator func(f format.T, args []Value) (uint64, error)

// T (operator) describes one entry in the operator table.
type T struct {
	Input    byte
	Display  string
	Priority int
	Depth    bool
	Args     int
	Min      int
	Eval     Evaluator
}

type operator = T

// Accepts returns true if n arguments satisfy the arity of the operator o.
func (o *operator) Accepts(n int) bool {
	if o.Args == Variadic {
		return n >= o.Min
	}

	return n == o.Args
}

func (o *operator) String() string {
	return o.Display
}

// All returns the operator table in input order.
func All() []*T {
	return table
}

// Lookup returns the operator created by the keystroke c or nil.
func Lookup(c byte) *T {
	for _, o := range table {
		if o.Input == c {
			return o
		}
	}

	return nil
}

func infix(c byte, display string, priority int, eval Evaluator) *T {
	return &T{
		Input:    c,
		Display:  display,
		Priority: priority,
		Args:     2,
		Min:      2,
		Eval:     eval,
	}
}

func prefix(c byte, display string, args, least int, eval Evaluator) *T {
	return &T{
		Input:   c,
		Display: display,
		Depth:   true,
		Args:    args,
		Min:     least,
		Eval:    eval,
	}
}

//nolint:gochecknoglobals
var table = []*T{
	infix('+', "+", 2, add),
	infix('-', "-", 2, subtract),
	infix('*', "*", 1, multiply),
	infix('/', "/", 1, divide),
	infix('%', "%", 1, remainder),
	infix('<', "<<", 3, shiftLeft),
	infix('>', ">>", 3, shiftRight),
	infix('&', "AND", 4, bitwise(and)),
	infix('^', "XOR", 5, bitwise(xor)),
	infix('|', "OR", 6, bitwise(or)),
	prefix('s', "SUM", Variadic, 1, sum),
	prefix('n', "NAND", Variadic, 2, fold(nand)),
	prefix('N', "NOR", Variadic, 2, fold(nor)),
	prefix('~', "NOT", 1, 1, not),
}
