package keypad

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/core"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

type harness struct {
	*qt.C
	*T
}

func setup(t *testing.T) *harness {
	return &harness{C: qt.New(t), T: New(core.New())}
}

func (h *harness) press(s string) Frame {
	h.Helper()

	h.Assert(h.PushString(s), qt.IsNil)

	f, err := h.Drain()
	h.Assert(err, qt.IsNil)

	return f
}

func TestSolve(t *testing.T) {
	h := setup(t)

	f := h.press("123+456")
	h.Assert(f.Text, qt.Equals, "123+456")
	h.Assert(f.Syntax, qt.Equals, -1)
	h.Assert(f.Offset, qt.Equals, 0)
	h.Assert(f.Err, qt.IsNil)
	h.Assert(f.Result.Word, qt.Equals, uint64(579))
	h.Assert(f.String(base.Hex), qt.Equals, "0x243")

	f = h.press("*")
	h.Assert(errors.Cause(f.Err), qt.Equals, error(status.SolveIncomplete))
	h.Assert(f.Reason, qt.Equals, status.OperatorPointerError)
	h.Assert(f.Result.Word, qt.Equals, uint64(579))
}

func TestEmpty(t *testing.T) {
	h := setup(t)

	f := h.press("")
	h.Assert(f.Text, qt.Equals, "")
	h.Assert(f.Err, qt.IsNil)
	h.Assert(f.String(base.Dec), qt.Equals, "0")

	f = h.press("7\\x7f")
	h.Assert(f.Text, qt.Equals, "")
	h.Assert(f.String(base.Dec), qt.Equals, "0")
}

func TestRemove(t *testing.T) {
	h := setup(t)

	f := h.press("123\\x7f")
	h.Assert(f.Text, qt.Equals, "12")

	f = h.press("\\b\\b\\b4")
	h.Assert(f.Text, qt.Equals, "4")
	h.Assert(f.Result.Word, qt.Equals, uint64(4))
}

func TestCursor(t *testing.T) {
	h := setup(t)

	f := h.press("123LL+")
	h.Assert(f.Text, qt.Equals, "1+23")
	h.Assert(f.Offset, qt.Equals, 2)
	h.Assert(f.Result.Word, qt.Equals, uint64(24))

	f = h.press("LLLLLLLL9")
	h.Assert(f.Text, qt.Equals, "91+23")
	h.Assert(h.Core().Cursor(), qt.Equals, 4)

	f = h.press("RRRRRRRR0")
	h.Assert(f.Text, qt.Equals, "91+230")
	h.Assert(h.Core().Cursor(), qt.Equals, 0)
}

func TestArrows(t *testing.T) {
	h := setup(t)

	f := h.press("12\\x1b[D\\x1b[D3\\x1b[C\\x1b[A")
	h.Assert(f.Text, qt.Equals, "312")
	h.Assert(h.Core().Cursor(), qt.Equals, 1)
}

func TestBase(t *testing.T) {
	h := setup(t)

	f := h.press("255i")
	h.Assert(f.Text, qt.Equals, "0xff")
	h.Assert(f.Format.Base, qt.Equals, base.Hex)

	f = h.press("i")
	h.Assert(f.Text, qt.Equals, "0b11111111")

	f = h.press("i+")
	h.Assert(f.Text, qt.Equals, "255+")
	h.Assert(f.Format.Base, qt.Equals, base.Dec)
}

func TestFormats(t *testing.T) {
	h := setup(t)

	f := h.press("1m")
	h.Assert(f.Format.Input, qt.Equals, format.Int)

	f = h.press("+m1.5")
	h.Assert(f.Format.Input, qt.Equals, format.Fixed)
	h.Assert(f.Text, qt.Equals, "1+1.5")
	h.Assert(f.Result.Format, qt.Equals, format.Fixed)
	h.Assert(f.String(base.Dec), qt.Equals, "2")

	f = h.press("o")
	h.Assert(f.Format.Output, qt.Equals, format.Fixed)
	h.Assert(f.String(base.Dec), qt.Equals, "2.5")

	f = h.press("o")
	h.Assert(f.Format.Output, qt.Equals, format.Float)
	h.Assert(f.String(base.Dec), qt.Equals, "2.5")
}

func TestUnknown(t *testing.T) {
	h := setup(t)

	f := h.press("1q2z")
	h.Assert(f.Text, qt.Equals, "12")
	h.Assert(f.Result.Word, qt.Equals, uint64(12))
}

func TestBadEscape(t *testing.T) {
	h := setup(t)

	h.Assert(h.PushString("\\x"), qt.Not(qt.IsNil))
}

func TestAllocation(t *testing.T) {
	h := setup(t)

	h.Push('1', '+', '2')

	f, err := h.Drain()
	h.Assert(err, qt.IsNil)
	h.Assert(f.Result.Word, qt.Equals, uint64(3))

	h.Assert(h.Core().Teardown(), qt.IsNil)
	h.Assert(h.Core().Allocated(), qt.Equals, 0)
}
