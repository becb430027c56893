// Released under an MIT license. See LICENSE.

// Package core provides the calculator state and every operation a front
// end needs: keystroke entry at a cursor, base and format changes, the
// display form of the expression and its solution.
//
// A state is not safe for concurrent use.
package core

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/codec"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/operator"
	"github.com/comscicalc/csc/internal/printer"
	"github.com/comscicalc/csc/internal/solver"
	"github.com/comscicalc/csc/internal/status"
)

//nolint:gochecknoglobals
var logger = loggo.GetLogger("csc.core")

// T (core) is the state of one calculator.
type T struct {
	arena  buffer.Arena
	buffer *buffer.T
	cursor int
	format format.T
	result operator.Value
	solved status.Solve
}

type core = T

// New creates an initialised calculator state.
func New() *T {
	s := &T{}
	s.Init()

	return s
}

// Init empties the buffer and restores the default format and result.
func (s *core) Init() {
	s.arena = buffer.Arena{}
	s.buffer = buffer.New(&s.arena)
	s.cursor = 0
	s.format = format.Default()
	s.result = operator.Value{}
	s.solved = status.Solved
}

// Teardown releases every cell. The state remains usable.
func (s *core) Teardown() error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	err := s.buffer.Clear()
	if err != nil {
		return errors.Trace(err)
	}

	s.cursor = 0

	return nil
}

// Allocated returns the number of cells currently allocated.
func (s *core) Allocated() int {
	return s.arena.Live()
}

// AddInput inserts the keystroke c at the cursor.
func (s *core) AddInput(c byte) error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	n, err := buffer.NewCell(c, s.format)
	if err != nil {
		logger.Debugf("rejected %q: %v", c, err)

		return err
	}

	_, err = s.buffer.Insert(s.buffer.At(s.cursor), n)

	return errors.Trace(err)
}

// RemoveInput removes the cell immediately before the cursor.
func (s *core) RemoveInput() error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	if s.buffer.Empty() {
		return errors.Trace(status.InputListNull)
	}

	id := s.buffer.Before(s.cursor)
	if id == buffer.Nil {
		return errors.Annotatef(status.InputListNull, "nothing before the cursor")
	}

	return errors.Trace(s.buffer.Remove(id))
}

// SetCursor moves the cursor to pos cells from the tail. A position past
// the head is kept and addresses the head.
func (s *core) SetCursor(pos int) {
	if pos < 0 {
		pos = 0
	}

	s.cursor = pos
}

// Cursor returns the cursor clamped to the length of the buffer.
func (s *core) Cursor() int {
	if n := s.buffer.Len(); s.cursor > n {
		return n
	}

	return s.cursor
}

// Len returns the number of cells in the buffer.
func (s *core) Len() int {
	return s.buffer.Len()
}

// Cells returns a copy of the cells of the buffer from head to tail.
func (s *core) Cells() []buffer.Cell {
	return s.buffer.Cells()
}

// Format returns the current number format.
func (s *core) Format() format.T {
	return s.format
}

// SetBase changes the active base and rewrites the literal under the cursor.
func (s *core) SetBase(b base.T) error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	if b > base.None {
		return errors.Annotatef(status.UnknownParameter, "base %d", b)
	}

	s.format.Base = b

	return s.UpdateBase()
}

// UpdateInputFormat changes how new literals are read. It is refused
// while the cursor is on a literal.
func (s *core) UpdateInputFormat(k format.Kind) error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	if !k.Valid() {
		return errors.Annotatef(status.UnknownParameter, "format %d", k)
	}

	if _, _, ok := s.literal(); ok {
		return errors.Trace(status.FormatError)
	}

	s.format.Input = k

	return nil
}

// UpdateOutputFormat changes how results are shown.
func (s *core) UpdateOutputFormat(k format.Kind) error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	if !k.Valid() {
		return errors.Annotatef(status.UnknownParameter, "format %d", k)
	}

	s.format.Output = k

	return nil
}

// SetWidth changes the word width and the fixed-point split.
func (s *core) SetWidth(bits, point uint8) error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	f := s.format
	f.Bits = bits
	f.Point = point

	if !f.Valid() {
		return errors.Annotatef(status.UnknownParameter, "Q%d.%d", int(bits)-int(point), point)
	}

	s.format = f

	return nil
}

// SetSigned changes whether new literals and results are signed.
func (s *core) SetSigned(signed bool) {
	s.format.Signed = signed
}

// PrintBuffer renders the expression into at most capacity bytes and
// returns the offset of the first syntax error or -1.
func (s *core) PrintBuffer(capacity int) (string, int, error) {
	if s == nil {
		return "", -1, errors.Trace(status.CalcCoreStateNull)
	}

	return printer.Print(s.buffer, capacity)
}

// CursorGlyphOffset returns the number of display bytes between the cursor
// and the end of the printed expression.
func (s *core) CursorGlyphOffset() int {
	n := 0

	id := s.buffer.Tail()
	for i := 0; i < s.cursor && id != buffer.Nil; i++ {
		n += printer.Width(s.buffer, id)

		id = s.buffer.Cell(id).Prev
	}

	return n
}

// Solve evaluates the expression. On failure the previous result is kept,
// the error has the cause status.SolveIncomplete and SolveStatus says why.
func (s *core) Solve() error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	v, err := solver.Solve(s.buffer, s.format)
	if err != nil {
		reason, ok := errors.Cause(err).(status.Solve)
		if !ok {
			reason = status.CalcNotSolvable
		}

		s.solved = reason

		logger.Debugf("solve: %v", err)

		return errors.Wrapf(err, status.SolveIncomplete, "%v", err)
	}

	s.result = v
	s.solved = status.Solved

	return nil
}

// SolveStatus returns the outcome of the last call to Solve.
func (s *core) SolveStatus() status.Solve {
	return s.solved
}

// Result returns the last successful solution.
func (s *core) Result() operator.Value {
	return s.result
}

// ResultString renders the last successful solution in base b using the
// current output format.
func (s *core) ResultString(b base.T) string {
	f := s.format
	f.Input = s.result.Format

	return FormatResult(s.result.Word, f, b)
}

// FormatResult renders the word w, held in f.Input, as f.Output in base b.
func FormatResult(w uint64, f format.T, b base.T) string {
	return codec.Result(w, f, b)
}
