// Released under an MIT license. See LICENSE.

// Package keypad provides the keystroke pump that sits between a front end
// and the calculator core.
//
// Keystrokes are queued with Push or PushString. Drain applies the queued
// keystrokes in order, solves the expression and returns a Frame describing
// everything a display needs.
package keypad

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/michaelmacinnis/adapted"

	"github.com/comscicalc/csc/internal/core"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/operator"
	"github.com/comscicalc/csc/internal/status"
)

// Keys with a meaning beyond add_input.
const (
	Backspace = '\b'
	Delete    = 0x7f
	Escape    = 0x1b
	Left      = 'L'
	Right     = 'R'
)

// Capacity is the number of bytes a printed expression may occupy.
const Capacity = 4096

//nolint:gochecknoglobals
var logger = loggo.GetLogger("csc.keypad")

// Frame is a snapshot of the calculator after a batch of keystrokes.
type Frame struct {
	Text   string
	Syntax int
	Offset int
	Err    error
	Reason status.Solve
	Result operator.Value
	Format format.T
}

// String renders the result held by the frame in base b.
func (f Frame) String(b base.T) string {
	g := f.Format
	g.Input = f.Result.Format

	return core.FormatResult(f.Result.Word, g, b)
}

// T (keypad) queues keystrokes for a calculator.
type T struct {
	core  *core.T
	queue []byte
}

type keypad = T

// New creates a keypad for the calculator c.
func New(c *core.T) *T {
	return &T{core: c}
}

// Core returns the calculator the keypad drives.
func (k *keypad) Core() *core.T {
	return k.core
}

// Drain applies every queued keystroke and solves the result.
func (k *keypad) Drain() (Frame, error) {
	q := k.queue
	k.queue = nil

	for i := 0; i < len(q); i++ {
		c := q[i]

		if c == Escape && i+2 < len(q) && q[i+1] == '[' {
			c = arrow(q[i+2])
			i += 2

			if c == 0 {
				continue
			}
		}

		err := k.key(c)
		if err == nil {
			continue
		}

		switch errors.Cause(err) {
		case status.UnknownInput, status.InputListNull, status.FormatError:
			logger.Debugf("%s ignored: %v", adapted.CanonicalString(string(c)), err)
		default:
			return Frame{}, err
		}
	}

	return k.frame()
}

// Push queues the keystrokes in keys.
func (k *keypad) Push(keys ...byte) {
	k.queue = append(k.queue, keys...)
}

// PushString decodes escape sequences in s and queues the result.
func (k *keypad) PushString(s string) error {
	b, err := adapted.ActualBytes(s)
	if err != nil {
		return errors.Annotatef(err, "keys %s", adapted.CanonicalString(s))
	}

	k.Push([]byte(b)...)

	return nil
}

func (k *keypad) frame() (Frame, error) {
	s := k.core

	text, syntax, err := s.PrintBuffer(Capacity)
	if err != nil {
		return Frame{}, err
	}

	f := Frame{
		Text:   text,
		Syntax: syntax,
		Offset: s.CursorGlyphOffset(),
		Format: s.Format(),
	}

	if s.Len() == 0 {
		f.Result = operator.Value{Format: f.Format.Input}

		return f, nil
	}

	f.Err = s.Solve()
	f.Reason = s.SolveStatus()
	f.Result = s.Result()

	return f, nil
}

func (k *keypad) key(c byte) error {
	s := k.core
	f := s.Format()

	switch c {
	case Backspace, Delete:
		return s.RemoveInput()

	case Left:
		if n := s.Cursor(); n < s.Len() {
			s.SetCursor(n + 1)
		}

	case Right:
		if n := s.Cursor(); n > 0 {
			s.SetCursor(n - 1)
		}

	case 'i', 'I':
		return s.SetBase(f.Base.Next())

	case 'm', 'M':
		return s.UpdateInputFormat(f.Input.Next())

	case 'o', 'O':
		return s.UpdateOutputFormat(f.Output.Next())

	default:
		return s.AddInput(c)
	}

	return nil
}

func arrow(c byte) byte {
	switch c {
	case 'C':
		return Right
	case 'D':
		return Left
	}

	return 0
}
