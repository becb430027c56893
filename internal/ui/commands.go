// Released under an MIT license. See LICENSE.

package ui

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/display"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

// A command returns true if the panel should be redrawn.
type command struct {
	args int
	help string
	run  func(u *ui, args []string) (bool, error)
}

//nolint:gochecknoglobals
var table map[string]command

func init() {
	table = map[string]command{
		"bin":      {0, "enter binary literals", setBase(base.Bin)},
		"bits":     {1, "set the word width to N (32 or 64)", bits},
		"clear":    {0, "remove every keystroke", empty},
		"cursor":   {1, "put the cursor N cells from the end", cursor},
		"dec":      {0, "enter decimal literals", setBase(base.Dec)},
		"dump":     {0, "list the cells of the expression", dump},
		"fixed":    {0, "enter fixed-point literals", input(format.Fixed)},
		"float":    {0, "enter floating-point literals", input(format.Float)},
		"help":     {0, "show this list", help},
		"hex":      {0, "enter hexadecimal literals", setBase(base.Hex)},
		"int":      {0, "enter integer literals", input(format.Int)},
		"out":      {1, "show results as F (int, fixed or float)", output},
		"point":    {1, "set the fixed-point fractional bits to N", point},
		"signed":   {0, "treat words as two's complement", signed(true)},
		"unsigned": {0, "treat words as unsigned", signed(false)},
	}
}

func commands() []string {
	names := make([]string, 0, len(table))
	for k := range table {
		names = append(names, k)
	}

	sort.Strings(names)

	return names
}

func (u *ui) command(fields []string) (bool, error) {
	if len(fields) == 0 {
		return false, errors.Annotatef(status.UnknownParameter, "empty command")
	}

	c, ok := table[fields[0]]
	if !ok {
		return false, errors.Annotatef(status.UnknownParameter, ":%s", fields[0])
	}

	args := fields[1:]
	if len(args) != c.args {
		return false, errors.Errorf("%s: expected %s, passed %d", fields[0], count(c.args, "argument", "s"), len(args))
	}

	return c.run(u, args)
}

func bits(u *ui, args []string) (bool, error) {
	n, err := number(args[0])
	if err != nil {
		return false, err
	}

	p := u.keypad.Core().Format().Point
	if p > n {
		p = n
	}

	return true, u.keypad.Core().SetWidth(n, p)
}

func empty(u *ui, _ []string) (bool, error) {
	return true, u.keypad.Core().Teardown()
}

func count(n int, label, p string) string {
	if n == 1 {
		p = ""
	}

	return fmt.Sprintf("%d %s%s", n, label, p)
}

func cursor(u *ui, args []string) (bool, error) {
	n, err := strconv.Atoi(args[0])
	if err != nil {
		return false, errors.Annotatef(status.UnknownParameter, "cursor %q", args[0])
	}

	u.keypad.Core().SetCursor(n)

	return true, nil
}

func dump(u *ui, _ []string) (bool, error) {
	_, err := fmt.Fprintln(u.out, display.Dump(u.keypad.Core().Cells()))

	return false, errors.Trace(err)
}

func help(u *ui, _ []string) (bool, error) {
	for _, k := range commands() {
		c := table[k]

		arg := ""
		if c.args > 0 {
			arg = " N"
			if k == "out" {
				arg = " F"
			}
		}

		fmt.Fprintf(u.out, "  :%-10s %s\n", k+arg, c.help)
	}

	_, err := io.WriteString(u.out, "Any other line is pressed as keystrokes.\n")

	return false, errors.Trace(err)
}

func input(k format.Kind) func(*ui, []string) (bool, error) {
	return func(u *ui, _ []string) (bool, error) {
		return true, u.keypad.Core().UpdateInputFormat(k)
	}
}

func number(s string) (uint8, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0, errors.Annotatef(status.UnknownParameter, "%q", s)
	}

	return uint8(n), nil
}

func output(u *ui, args []string) (bool, error) {
	k, ok := format.ParseKind(args[0])
	if !ok {
		return false, errors.Annotatef(status.UnknownParameter, "format %q", args[0])
	}

	return true, u.keypad.Core().UpdateOutputFormat(k)
}

func point(u *ui, args []string) (bool, error) {
	n, err := number(args[0])
	if err != nil {
		return false, err
	}

	return true, u.keypad.Core().SetWidth(u.keypad.Core().Format().Bits, n)
}

func setBase(b base.T) func(*ui, []string) (bool, error) {
	return func(u *ui, _ []string) (bool, error) {
		return true, u.keypad.Core().SetBase(b)
	}
}

func signed(on bool) func(*ui, []string) (bool, error) {
	return func(u *ui, _ []string) (bool, error) {
		u.keypad.Core().SetSigned(on)

		return true, nil
	}
}
