// Released under an MIT license. See LICENSE.

// Package status provides the calculator's error kinds.
//
// Every kind is a comparable error value. Operations annotate them with
// context using github.com/juju/errors and callers classify a returned error
// with errors.Cause.
package status

import (
	"strconv"
)

// T (status) is the kind of failure reported by a core operation.
type T int

// Core operation failures.
const (
	CalcCoreStateNull T = iota + 1
	InputListNull
	UnknownInput
	AllocateError
	StringBufferError
	EntryListError
	SolveIncomplete
	UnknownParameter
	FormatError
)

//nolint:gochecknoglobals
var names = map[T]string{
	CalcCoreStateNull: "calculator state is nil",
	InputListNull:     "input list is empty",
	UnknownInput:      "unknown input",
	AllocateError:     "cannot allocate cell",
	StringBufferError: "output buffer too small",
	EntryListError:    "input list is corrupt",
	SolveIncomplete:   "cannot solve expression",
	UnknownParameter:  "unknown parameter",
	FormatError:       "cannot change format inside a literal",
}

// Error returns the description of the status s.
func (s T) Error() string {
	if n, ok := names[s]; ok {
		return n
	}

	return "status " + strconv.Itoa(int(s))
}

// Solve is the reason the solver stopped. Zero is success.
type Solve int

// Solver outcomes.
const (
	Solved               Solve = 0
	SolveInputListNull   Solve = -1
	BracketError         Solve = -2
	OperatorPointerError Solve = -3
	CalcNotSolvable      Solve = -4
	InvalidNumArgs       Solve = -5
	AllocationError      Solve = -6
	ArgsButNoOperator    Solve = -7
)

//nolint:gochecknoglobals
var reasons = map[Solve]string{
	Solved:               "solved",
	SolveInputListNull:   "nothing to solve",
	BracketError:         "unbalanced brackets",
	OperatorPointerError: "operator is missing an operand",
	CalcNotSolvable:      "not solvable",
	InvalidNumArgs:       "wrong number of arguments",
	AllocationError:      "cannot allocate cell",
	ArgsButNoOperator:    "arguments without an operator",
}

// Error returns the description of the solver outcome s.
func (s Solve) Error() string {
	if r, ok := reasons[s]; ok {
		return r
	}

	return "solve status " + strconv.Itoa(int(s))
}
