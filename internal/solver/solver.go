// Released under an MIT license. See LICENSE.

// Package solver provides evaluation of an expression buffer.
//
// The solver never modifies the buffer it is given. It copies the buffer,
// collapsing each literal into a single solved cell, and then repeatedly
// reduces the deepest bracketed sub-expression of the copy in place until a
// single value remains. The copy allocates from the same arena as the
// original and is released before Solve returns.
package solver

import (
	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/number/codec"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/operator"
	"github.com/comscicalc/csc/internal/status"
)

//nolint:gochecknoglobals
var logger = loggo.GetLogger("csc.solver")

// Solve evaluates the expression held in b. The width, fixed-point split and
// signedness of words come from f. Errors have a status.Solve cause.
func Solve(b *buffer.T, f format.T) (operator.Value, error) {
	if b.Empty() {
		return operator.Value{}, errors.Trace(status.SolveInputListNull)
	}

	w := buffer.New(b.Arena())

	defer func() {
		if err := w.Clear(); err != nil {
			logger.Errorf("releasing working copy: %v", err)
		}
	}()

	err := coalesce(b, w, f)
	if err != nil {
		return operator.Value{}, err
	}

	for {
		h := w.Cell(w.Head())
		if h.Next == buffer.Nil && h.Operand() {
			return operator.Value{Word: h.Sub, Format: h.Format}, nil
		}

		err = reduce(w, f)
		if err != nil {
			return operator.Value{}, err
		}
	}
}

// arguments returns the comma-separated operands between open and end.
func arguments(w *buffer.T, open, end buffer.ID) ([]buffer.ID, error) {
	args := []buffer.ID{}
	expect := true

	for id := start(w, open); id != end; id = w.Cell(id).Next {
		c := w.Cell(id)

		switch {
		case c.Operand():
			if !expect {
				return nil, errors.Annotatef(status.OperatorPointerError, "operands without an operator")
			}

			args = append(args, id)
			expect = false

		case c.Kind == buffer.Empty:
			if expect {
				return nil, errors.Annotatef(status.InvalidNumArgs, "empty argument")
			}

			expect = true

		default:
			return nil, errors.Annotatef(status.OperatorPointerError, "unexpected %s", c.Kind)
		}
	}

	if expect && len(args) > 0 {
		return nil, errors.Annotatef(status.InvalidNumArgs, "empty argument")
	}

	return args, nil
}

// coalesce copies src to dst replacing each run of digits and decimal
// points with one solved cell.
func coalesce(src, dst *buffer.T, f format.T) error {
	for id := src.Head(); id != buffer.Nil; {
		c := *src.Cell(id)

		if c.Numeric() {
			glyphs := []byte{}
			for ; id != buffer.Nil && src.Cell(id).Numeric(); id = src.Cell(id).Next {
				glyphs = append(glyphs, src.Cell(id).Glyph)
			}

			lf := f
			lf.Input = c.Format
			lf.Signed = c.Signed

			v, err := codec.Parse(string(glyphs), c.Base, lf)
			if err != nil {
				return errors.Annotatef(status.CalcNotSolvable, "literal %q: %v", glyphs, err)
			}

			c.Kind = buffer.Number
			c.Value = buffer.Int
			c.Sub = v
		} else {
			id = c.Next
		}

		_, err := dst.Insert(buffer.Nil, c)
		if err != nil {
			return errors.Annotatef(status.AllocationError, "%v", err)
		}
	}

	return nil
}

// deepest returns the first cell that reaches the maximum depth and the
// cell that closes it. Both are Nil when the expression has no brackets.
func deepest(w *buffer.T) (buffer.ID, buffer.ID, error) {
	depth, top := 0, 0
	open := buffer.Nil

	for id := w.Head(); id != buffer.Nil; id = w.Cell(id).Next {
		depth += int(w.Cell(id).Depth)

		if depth < 0 {
			return buffer.Nil, buffer.Nil, errors.Annotatef(status.BracketError, "unmatched closing bracket")
		}

		if depth > top {
			top = depth
			open = id
		}
	}

	if depth != 0 {
		return buffer.Nil, buffer.Nil, errors.Annotatef(status.BracketError, "%d unclosed", depth)
	}

	if open == buffer.Nil {
		return buffer.Nil, buffer.Nil, nil
	}

	for id := w.Cell(open).Next; id != buffer.Nil; id = w.Cell(id).Next {
		if w.Cell(id).Depth == buffer.Decrease {
			return open, id, nil
		}
	}

	return buffer.Nil, buffer.Nil, errors.Annotatef(status.BracketError, "unclosed")
}

// evaluate promotes args to the widest format among them and applies o.
func evaluate(o *operator.T, f format.T, args []operator.Value) (operator.Value, error) {
	k := format.Int
	for _, a := range args {
		if a.Format > k {
			k = a.Format
		}
	}

	for i, a := range args {
		args[i] = operator.Value{Word: codec.Convert(a.Word, a.Format, k, f), Format: k}
	}

	f.Input = k

	r, err := o.Eval(f, args)
	if err != nil {
		return operator.Value{}, errors.Annotatef(status.CalcNotSolvable, "%s: %v", o, err)
	}

	logger.Tracef("%s%v = %#x (%s)", o, args, r, k)

	return operator.Value{Word: r, Format: k}, nil
}

// infix applies every infix operator between open and end, lowest
// priority number first and leftmost among equals.
func infix(w *buffer.T, f format.T, open, end buffer.ID) error {
	for {
		best := buffer.Nil

		for id := start(w, open); id != end; id = w.Cell(id).Next {
			c := w.Cell(id)
			if c.Kind != buffer.Operator || c.Op.Depth {
				continue
			}

			if best == buffer.Nil || c.Op.Priority < w.Cell(best).Op.Priority {
				best = id
			}
		}

		if best == buffer.Nil {
			return nil
		}

		c := w.Cell(best)

		l, r := c.Prev, c.Next
		if l == buffer.Nil || r == buffer.Nil || !w.Cell(l).Operand() || !w.Cell(r).Operand() {
			return errors.Annotatef(status.OperatorPointerError, "%s", c.Op)
		}

		v, err := evaluate(c.Op, f, []operator.Value{value(w, l), value(w, r)})
		if err != nil {
			return err
		}

		settle(c, v)

		err = remove(w, l, r)
		if err != nil {
			return err
		}
	}
}

// reduce solves the deepest sub-expression of w.
func reduce(w *buffer.T, f format.T) error {
	open, end, err := deepest(w)
	if err != nil {
		return err
	}

	err = infix(w, f, open, end)
	if err != nil {
		return err
	}

	args, err := arguments(w, open, end)
	if err != nil {
		return err
	}

	if open == buffer.Nil {
		if len(args) != 1 {
			return errors.Annotatef(status.ArgsButNoOperator, "%d values", len(args))
		}

		return nil
	}

	o := w.Cell(open)

	if o.Kind == buffer.Bracket {
		switch len(args) {
		case 0:
			return errors.Annotatef(status.InvalidNumArgs, "empty brackets")
		case 1:
			return remove(w, open, end)
		}

		return errors.Annotatef(status.ArgsButNoOperator, "%d values in brackets", len(args))
	}

	op := o.Op
	if !op.Accepts(len(args)) {
		return errors.Annotatef(status.InvalidNumArgs, "%s passed %d", op, len(args))
	}

	vs := make([]operator.Value, len(args))
	for i, id := range args {
		vs[i] = value(w, id)
	}

	v, err := evaluate(op, f, vs)
	if err != nil {
		return err
	}

	settle(w.Cell(open), v)

	for id := w.Cell(open).Next; id != end; {
		next := w.Cell(id).Next

		err = w.Remove(id)
		if err != nil {
			return err
		}

		id = next
	}

	return w.Remove(end)
}

func remove(w *buffer.T, ids ...buffer.ID) error {
	for _, id := range ids {
		err := w.Remove(id)
		if err != nil {
			return err
		}
	}

	return nil
}

// settle turns c into a solved cell holding v.
func settle(c *buffer.Cell, v operator.Value) {
	c.Kind = buffer.Number
	c.Value = buffer.Int
	c.Depth = buffer.Keep
	c.Op = nil
	c.Sub = v.Word
	c.Format = v.Format
}

func start(w *buffer.T, open buffer.ID) buffer.ID {
	if open == buffer.Nil {
		return w.Head()
	}

	return w.Cell(open).Next
}

func value(w *buffer.T, id buffer.ID) operator.Value {
	c := w.Cell(id)

	return operator.Value{Word: c.Sub, Format: c.Format}
}
