// Released under an MIT license. See LICENSE.

// Package buffer provides the cursor-addressed expression buffer.
//
// A buffer is a doubly linked list of cells stored in an arena. The cursor
// is counted from the tail: 0 is after the last cell and k is before the
// k-th cell counted back from the tail. A cursor larger than the list
// addresses the head.
package buffer

import (
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/status"
)

// T (buffer) is a doubly linked list of cells.
type T struct {
	arena *Arena
	head  ID
}

type buffer = T

// New creates an empty buffer that allocates from a.
func New(a *Arena) *T {
	return &T{arena: a, head: Nil}
}

// Arena returns the arena b allocates from.
func (b *buffer) Arena() *Arena {
	return b.arena
}

// At returns the cell an insert at cursor goes in front of, or Nil when
// the insert appends.
func (b *buffer) At(cursor int) ID {
	if cursor <= 0 {
		return Nil
	}

	id := b.Tail()
	for i := 1; i < cursor && id != Nil && b.Cell(id).Prev != Nil; i++ {
		id = b.Cell(id).Prev
	}

	return id
}

// Backward returns the IDs of the cells of b from tail to head.
func (b *buffer) Backward() []ID {
	ids := []ID{}

	for id := b.Tail(); id != Nil; id = b.Cell(id).Prev {
		ids = append(ids, id)
	}

	return ids
}

// Before returns the cell immediately before cursor or Nil.
func (b *buffer) Before(cursor int) ID {
	at := b.At(cursor)
	if at == Nil {
		return b.Tail()
	}

	return b.Cell(at).Prev
}

// Cell returns the cell with the given ID.
func (b *buffer) Cell(id ID) *Cell {
	return b.arena.Cell(id)
}

// Cells returns a copy of every cell of b from head to tail.
func (b *buffer) Cells() []Cell {
	cs := []Cell{}

	for id := b.head; id != Nil; id = b.Cell(id).Next {
		cs = append(cs, *b.Cell(id))
	}

	return cs
}

// Clear releases every cell of b.
func (b *buffer) Clear() error {
	for b.head != Nil {
		err := b.Remove(b.head)
		if err != nil {
			return err
		}
	}

	return nil
}

// Empty returns true if b has no cells.
func (b *buffer) Empty() bool {
	return b.head == Nil
}

// Forward returns the IDs of the cells of b from head to tail.
func (b *buffer) Forward() []ID {
	ids := []ID{}

	for id := b.head; id != Nil; id = b.Cell(id).Next {
		ids = append(ids, id)
	}

	return ids
}

// Head returns the first cell of b or Nil.
func (b *buffer) Head() ID {
	return b.head
}

// Insert allocates a copy of c and links it in front of at. An at of Nil
// appends.
func (b *buffer) Insert(at ID, c Cell) (ID, error) {
	id, err := b.arena.Alloc(c)
	if err != nil {
		return Nil, err
	}

	n := b.Cell(id)

	if at == Nil {
		tail := b.Tail()

		n.Prev = tail
		if tail == Nil {
			b.head = id
		} else {
			b.Cell(tail).Next = id
		}

		return id, nil
	}

	next := b.Cell(at)

	n.Next = at
	n.Prev = next.Prev

	if next.Prev == Nil {
		b.head = id
	} else {
		b.Cell(next.Prev).Next = id
	}

	next.Prev = id

	return id, nil
}

// Len returns the number of cells in b.
func (b *buffer) Len() int {
	n := 0
	for id := b.head; id != Nil; id = b.Cell(id).Next {
		n++
	}

	return n
}

// Remove unlinks and releases the cell id.
func (b *buffer) Remove(id ID) error {
	if id == Nil {
		return errors.Annotatef(status.EntryListError, "remove of nil cell")
	}

	c := b.Cell(id)

	if c.Prev == Nil {
		if b.head != id {
			return errors.Annotatef(status.EntryListError, "cell %d is not linked", id)
		}

		b.head = c.Next
	} else {
		b.Cell(c.Prev).Next = c.Next
	}

	if c.Next != Nil {
		b.Cell(c.Next).Prev = c.Prev
	}

	return b.arena.Free(id)
}

// Tail returns the last cell of b or Nil.
func (b *buffer) Tail() ID {
	id := b.head
	if id == Nil {
		return Nil
	}

	for b.Cell(id).Next != Nil {
		id = b.Cell(id).Next
	}

	return id
}
