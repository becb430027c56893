// Released under an MIT license. See LICENSE.

package buffer

import (
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/status"
)

// Arena owns the storage for every cell of one calculator.
//
// Freed slots are reused. Live counts allocations minus releases.
type Arena struct {
	// Limit caps the number of live cells. Zero means no limit.
	Limit int

	cells []Cell
	used  []bool
	free  []ID
	live  int
}

// Alloc stores a copy of c and returns its ID. The links of the new
// cell are cleared.
func (a *Arena) Alloc(c Cell) (ID, error) {
	if a.Limit > 0 && a.live >= a.Limit {
		return Nil, errors.Annotatef(status.AllocateError, "%d cells in use", a.live)
	}

	c.Prev = Nil
	c.Next = Nil

	var id ID

	if n := len(a.free); n > 0 {
		id = a.free[n-1]
		a.free = a.free[:n-1]
		a.cells[id] = c
	} else {
		id = ID(len(a.cells))
		a.cells = append(a.cells, c)
		a.used = append(a.used, false)
	}

	a.used[id] = true
	a.live++

	return id, nil
}

// Cell returns the cell with the given ID.
func (a *Arena) Cell(id ID) *Cell {
	return &a.cells[id]
}

// Free releases the cell with the given ID.
func (a *Arena) Free(id ID) error {
	if id < 0 || int(id) >= len(a.cells) || !a.used[id] {
		return errors.Annotatef(status.EntryListError, "free of unallocated cell %d", id)
	}

	a.cells[id] = Cell{Prev: Nil, Next: Nil}
	a.used[id] = false
	a.free = append(a.free, id)
	a.live--

	return nil
}

// Live returns the number of allocated cells.
func (a *Arena) Live() int {
	return a.live
}
