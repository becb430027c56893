// Released under an MIT license. See LICENSE.

package core

import (
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/codec"
	"github.com/comscicalc/csc/internal/status"
)

// UpdateBase rewrites the literal under the cursor in the current base.
// The value of the literal is preserved.
func (s *core) UpdateBase() error {
	if s == nil {
		return errors.Trace(status.CalcCoreStateNull)
	}

	first, last, ok := s.literal()
	if !ok || s.format.Base == base.None {
		return nil
	}

	head := s.buffer.Cell(first)
	if head.Base == s.format.Base {
		return nil
	}

	glyphs := []byte{}
	n := 0

	for id := first; ; id = s.buffer.Cell(id).Next {
		glyphs = append(glyphs, s.buffer.Cell(id).Glyph)
		n++

		if id == last {
			break
		}
	}

	f := s.format
	f.Input = head.Format
	f.Signed = head.Signed

	w, err := codec.Parse(string(glyphs), head.Base, f)
	if err != nil {
		return errors.Annotatef(status.FormatError, "literal %q: %v", glyphs, err)
	}

	text := codec.Literal(w, head.Format, s.format.Base, f)
	if text == "" {
		logger.Debugf("literal %#x has no %s form", w, s.format.Base)

		return nil
	}

	template := *head
	template.Base = s.format.Base

	// Cells after the literal, used to keep the cursor in place.
	after := 0
	for id := s.buffer.Cell(last).Next; id != buffer.Nil; id = s.buffer.Cell(id).Next {
		after++
	}

	at := s.buffer.Cell(last).Next
	added := make([]buffer.ID, 0, len(text))

	for i := 0; i < len(text); i++ {
		c := template
		c.Glyph = text[i]
		c.Kind = buffer.Number

		if c.Glyph == '.' {
			c.Kind = buffer.DecimalPoint
		}

		id, err := s.buffer.Insert(at, c)
		if err != nil {
			for _, a := range added {
				if rerr := s.buffer.Remove(a); rerr != nil {
					return errors.Trace(rerr)
				}
			}

			return errors.Trace(err)
		}

		added = append(added, id)
	}

	for id, i := first, 0; i < n; i++ {
		next := s.buffer.Cell(id).Next

		err = s.buffer.Remove(id)
		if err != nil {
			return errors.Trace(err)
		}

		id = next
	}

	switch {
	case s.cursor >= after+n:
		s.cursor += len(text) - n
	case s.cursor > after+len(text):
		s.cursor = after + len(text)
	}

	return nil
}

// literal returns the first and last cells of the literal under the cursor.
// That is the literal ending immediately before the cursor or, failing
// that, the one starting at the cursor.
func (s *core) literal() (buffer.ID, buffer.ID, bool) {
	id := s.buffer.Before(s.cursor)
	if id == buffer.Nil || !s.buffer.Cell(id).Numeric() {
		id = s.buffer.At(s.cursor)
		if id == buffer.Nil || !s.buffer.Cell(id).Numeric() {
			return buffer.Nil, buffer.Nil, false
		}
	}

	first := id
	for p := s.buffer.Cell(first).Prev; p != buffer.Nil && s.buffer.Cell(p).Numeric(); p = s.buffer.Cell(p).Prev {
		first = p
	}

	last := id
	for n := s.buffer.Cell(last).Next; n != buffer.Nil && s.buffer.Cell(n).Numeric(); n = s.buffer.Cell(n).Next {
		last = n
	}

	return first, last, true
}
