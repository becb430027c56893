// Released under an MIT license. See LICENSE.

// Package display provides the text rendering of a keypad frame.
package display

import (
	"fmt"
	"strings"

	"github.com/kr/pretty"

	"github.com/comscicalc/csc/internal/buffer"
	"github.com/comscicalc/csc/internal/keypad"
	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
)

// Markers used under the expression.
const (
	Cursor = '|'
	Syntax = '^'
)

// Label width of the result lines: "dec: ".
const indent = 5

// Render returns the panel for f laid out for a terminal width columns wide.
func Render(f keypad.Frame, width int) string {
	var sb strings.Builder

	sb.WriteString(State(f.Format))
	sb.WriteByte('\n')

	sb.WriteString(f.Text)
	sb.WriteByte('\n')

	sb.WriteString(Markers(f))
	sb.WriteByte('\n')

	if f.Err != nil {
		fmt.Fprintf(&sb, "! %v\n", f.Reason)
	}

	for _, b := range []base.T{base.Dec, base.Hex, base.Bin} {
		sb.WriteString(b.String())
		sb.WriteString(": ")

		lines := Wrap(f.String(b), width-indent)
		sb.WriteString(strings.Join(lines, "\n"+strings.Repeat(" ", indent)))
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Markers returns the line placed under the expression: the cursor and,
// if there is one, the first syntax error.
func Markers(f keypad.Frame) string {
	n := len(f.Text) + 1

	line := make([]byte, n)
	for i := range line {
		line[i] = ' '
	}

	if c := len(f.Text) - f.Offset; c >= 0 && c < n {
		line[c] = Cursor
	}

	if f.Syntax >= 0 && f.Syntax < n {
		line[f.Syntax] = Syntax
	}

	return strings.TrimRight(string(line), " ")
}

// State summarises the number format: base, width, input and output.
// Fixed-point widths are shown in Q notation.
func State(f format.T) string {
	bits := fmt.Sprint(f.Bits)
	if f.Input == format.Fixed || f.Output == format.Fixed {
		bits = fmt.Sprintf("%d.%d", int(f.Bits)-int(f.Point), f.Point)
	}

	sign := "UNSIGNED"
	if f.Signed {
		sign = "SIGNED"
	}

	return strings.ToUpper(fmt.Sprintf("%s  bits:%s  input:%s  output:%s  %s",
		f.Base, bits, f.Input, f.Output, sign))
}

// Wrap splits s into lines of at most width bytes, breaking at spaces
// where possible.
func Wrap(s string, width int) []string {
	if width < 1 {
		width = 1
	}

	lines := []string{}

	for len(s) > width {
		i := strings.LastIndexByte(s[:width+1], ' ')
		if i <= 0 {
			lines = append(lines, s[:width])
			s = s[width:]

			continue
		}

		lines = append(lines, s[:i])
		s = s[i+1:]
	}

	return append(lines, s)
}

type row struct {
	Glyph  string
	Kind   buffer.Kind
	Depth  buffer.Depth
	Base   base.T
	Format format.Kind
	Signed bool
}

// Dump returns a detailed listing of cells for debugging.
func Dump(cells []buffer.Cell) string {
	rows := make([]row, len(cells))

	for i, c := range cells {
		g := string(c.Glyph)
		if c.Kind == buffer.Operator {
			g = c.Op.Display
		}

		rows[i] = row{
			Glyph:  g,
			Kind:   c.Kind,
			Depth:  c.Depth,
			Base:   c.Base,
			Format: c.Format,
			Signed: c.Signed,
		}
	}

	return fmt.Sprintf("%# v", pretty.Formatter(rows))
}
