// Released under an MIT license. See LICENSE.

// Package printer provides the display form of an expression buffer and
// finds the first position where the expression stops being well formed.
package printer

import (
	"strings"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/status"
)

// Piece returns the display text of the cell id. A hexadecimal or binary
// digit that starts a literal carries the base prefix and a depth-increasing
// operator carries its implicit opening bracket.
func Piece(b *buffer.T, id buffer.ID) string {
	c := b.Cell(id)

	switch c.Kind {
	case buffer.Operator:
		if c.Op.Depth {
			return c.Op.Display + "("
		}

		return c.Op.Display

	case buffer.Number:
		if c.Prev == buffer.Nil || !b.Cell(c.Prev).Numeric() {
			return c.Base.Prefix() + string(c.Glyph)
		}
	}

	return string(c.Glyph)
}

// Print renders b into at most capacity bytes. It returns the text and the byte
// offset of the first cell that breaks the grammar, or -1.
func Print(b *buffer.T, capacity int) (string, int, error) {
	var sb strings.Builder

	s := state{syntax: -1}

	for id := b.Head(); id != buffer.Nil; id = b.Cell(id).Next {
		if s.syntax < 0 && !s.accepts(b, id) {
			s.syntax = sb.Len()
		}

		s.advance(b, id)

		sb.WriteString(Piece(b, id))

		if sb.Len() > capacity {
			return "", s.syntax, errors.Annotatef(status.StringBufferError, "%d bytes available", capacity)
		}
	}

	return sb.String(), s.syntax, nil
}

// Width returns the number of display bytes of the cell id.
func Width(b *buffer.T, id buffer.ID) int {
	return len(Piece(b, id))
}

type state struct {
	dot    bool
	open   []bool
	prev   *buffer.Cell
	syntax int
}

func (s *state) accepts(b *buffer.T, id buffer.ID) bool {
	c := b.Cell(id)
	p := s.prev

	switch c.Kind {
	case buffer.Number:
		return p == nil || p.Kind != buffer.Bracket || p.Depth == buffer.Increase

	case buffer.Operator:
		if c.Op.Depth {
			return p == nil || !(p.Kind == buffer.Number || closing(p))
		}

		return p != nil && (p.Kind == buffer.Number || closing(p))

	case buffer.Bracket:
		if c.Depth == buffer.Increase {
			return p == nil || p.Kind == buffer.Operator ||
				p.Kind == buffer.Empty || opening(p)
		}

		return p != nil && (p.Kind == buffer.Number || closing(p)) &&
			len(s.open) > 0

	case buffer.DecimalPoint:
		return p != nil && p.Kind == buffer.Number && !s.dot
	}

	// A comma separates the arguments of a depth-increasing operator.
	return p != nil && (p.Kind == buffer.Number || closing(p)) &&
		len(s.open) > 0 && s.open[len(s.open)-1]
}

func (s *state) advance(b *buffer.T, id buffer.ID) {
	c := b.Cell(id)

	switch {
	case c.Kind == buffer.Operator && c.Op.Depth:
		s.open = append(s.open, true)
	case opening(c):
		s.open = append(s.open, false)
	case closing(c) && len(s.open) > 0:
		s.open = s.open[:len(s.open)-1]
	}

	switch c.Kind {
	case buffer.DecimalPoint:
		s.dot = true
	case buffer.Number:
	default:
		s.dot = false
	}

	s.prev = c
}

func closing(c *buffer.Cell) bool {
	return c.Kind == buffer.Bracket && c.Depth == buffer.Decrease
}

func opening(c *buffer.Cell) bool {
	return c.Kind == buffer.Bracket && c.Depth == buffer.Increase
}
