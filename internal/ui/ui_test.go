package ui

import (
	"bytes"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/core"
	"github.com/comscicalc/csc/internal/keypad"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

type harness struct {
	*qt.C
	*T
	core *core.T
	out  *bytes.Buffer
}

func setup(t *testing.T) *harness {
	c := core.New()
	out := &bytes.Buffer{}

	return &harness{
		C:    qt.New(t),
		T:    New(keypad.New(c), out, func() int { return 80 }),
		core: c,
		out:  out,
	}
}

func (h *harness) lines(ls ...string) string {
	h.Helper()

	h.out.Reset()

	for _, l := range ls {
		h.Assert(h.Line(l), qt.IsNil, qt.Commentf("%s", l))
	}

	return h.out.String()
}

func (h *harness) result(b base.T) string {
	h.Helper()

	f, err := h.keypad.Drain()
	h.Assert(err, qt.IsNil)

	return f.String(b)
}

func TestKeystrokes(t *testing.T) {
	h := setup(t)

	out := h.lines("123+456")
	h.Assert(strings.Contains(out, "\n123+456\n"), qt.IsTrue, qt.Commentf("%s", out))
	h.Assert(strings.Contains(out, "dec: 579\n"), qt.IsTrue)
	h.Assert(strings.Contains(out, "hex: 0x243\n"), qt.IsTrue)

	h.lines("\\x7f\\x7f\\x7f1")
	h.Assert(h.result(base.Dec), qt.Equals, "124")
}

func TestBaseCommands(t *testing.T) {
	h := setup(t)

	h.lines("255", ":hex")
	h.Assert(h.core.Format().Base, qt.Equals, base.Hex)

	text, _, err := h.core.PrintBuffer(64)
	h.Assert(err, qt.IsNil)
	h.Assert(text, qt.Equals, "0xff")

	h.lines(":bin", "+1", ":dec")
	text, _, err = h.core.PrintBuffer(64)
	h.Assert(err, qt.IsNil)
	h.Assert(text, qt.Equals, "0b11111111+1")
	h.Assert(h.result(base.Dec), qt.Equals, "256")
}

func TestFormatCommands(t *testing.T) {
	h := setup(t)

	h.lines(":float", "1.5", ":out float")
	h.Assert(h.core.Format().Input, qt.Equals, format.Float)
	h.Assert(h.result(base.Dec), qt.Equals, "1.5")

	h.lines(":out int")
	h.Assert(h.result(base.Dec), qt.Equals, "2")

	h.lines(":clear", ":int", ":signed", "1-2")
	h.Assert(h.result(base.Dec), qt.Equals, "-1")

	h.lines(":unsigned", ":bits 32")
	h.Assert(h.result(base.Dec), qt.Equals, "4294967295")
	h.Assert(h.core.Format().Point, qt.Equals, uint8(32))

	h.lines(":point 8")
	h.Assert(h.core.Format().Point, qt.Equals, uint8(8))

	h.lines(":bits 64")
	h.Assert(h.core.Format().Point, qt.Equals, uint8(8))
}

func TestCursorCommand(t *testing.T) {
	h := setup(t)

	h.lines("123", ":cursor 2", "+", ":cursor 0")

	text, _, err := h.core.PrintBuffer(64)
	h.Assert(err, qt.IsNil)
	h.Assert(text, qt.Equals, "1+23")
	h.Assert(h.result(base.Dec), qt.Equals, "24")
}

func TestClear(t *testing.T) {
	h := setup(t)

	h.lines("1+2", ":clear")
	h.Assert(h.core.Len(), qt.Equals, 0)
	h.Assert(h.core.Allocated(), qt.Equals, 0)
}

func TestHelpAndDump(t *testing.T) {
	h := setup(t)

	out := h.lines(":help")
	for _, k := range commands() {
		h.Assert(strings.Contains(out, ":"+k), qt.IsTrue, qt.Commentf("%s", k))
	}

	h.lines("s1,2)")

	out = h.lines(":dump")
	h.Assert(strings.Contains(out, `"SUM"`), qt.IsTrue, qt.Commentf("%s", out))
	h.Assert(strings.Contains(out, "dec:"), qt.IsFalse)
}

func TestBadCommands(t *testing.T) {
	h := setup(t)

	for _, l := range []string{":", ":octal", ":out", ":out bcd", ":bits x", ":bits 16", ":point 70", ":cursor x"} {
		err := h.Line(l)
		h.Assert(err, qt.Not(qt.IsNil), qt.Commentf("%s", l))
	}

	err := h.Line(":octal")
	h.Assert(errors.Cause(err), qt.Equals, error(status.UnknownParameter))

	h.lines("12")

	err = h.Line(":fixed")
	h.Assert(errors.Cause(err), qt.Equals, error(status.FormatError))

	err = h.Line("\\q")
	h.Assert(err, qt.Not(qt.IsNil))
}

func TestComplete(t *testing.T) {
	c := qt.New(t)

	head, cs, tail := complete(":b", 2)
	c.Assert(head, qt.Equals, "")
	c.Assert(cs, qt.DeepEquals, []string{":bin", ":bits"})
	c.Assert(tail, qt.Equals, "")

	head, cs, tail = complete(":u 5", 2)
	c.Assert(head, qt.Equals, "")
	c.Assert(cs, qt.DeepEquals, []string{":unsigned"})
	c.Assert(tail, qt.Equals, " 5")

	head, cs, _ = complete("123", 3)
	c.Assert(head, qt.Equals, "123")
	c.Assert(cs, qt.IsNil)

	_, cs, _ = complete(":out f", 6)
	c.Assert(cs, qt.IsNil)
}
