// Released under an MIT license. See LICENSE.

// Package ui provides the command-line interface for the calculator.
package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/juju/errors"
	"github.com/juju/loggo"
	"github.com/peterh/liner"

	"github.com/comscicalc/csc/internal/display"
	"github.com/comscicalc/csc/internal/keypad"
	"github.com/comscicalc/csc/internal/system/history"
)

// Prompt is shown before each line in interactive mode.
const Prompt = "csc> "

//nolint:gochecknoglobals
var logger = loggo.GetLogger("csc.ui")

// T (ui) turns lines of input into keystrokes and commands.
type T struct {
	keypad *keypad.T
	out    io.Writer
	width  func() int
}

type ui = T

// New creates a ui that drives k and writes panels to out. The width
// function is asked for the terminal width before each panel is drawn.
func New(k *keypad.T, out io.Writer, width func() int) *T {
	return &T{keypad: k, out: out, width: width}
}

// Line handles one line of input. A line starting with ':' is a command.
// Anything else is a batch of keystrokes with escape sequences decoded.
func (u *ui) Line(line string) error {
	logger.Debugf("line %q", line)

	if strings.HasPrefix(line, ":") {
		show, err := u.command(strings.Fields(line[1:]))
		if err != nil || !show {
			return err
		}
	} else if err := u.keypad.PushString(line); err != nil {
		return err
	}

	return u.Show()
}

// Show drains the keypad and writes the panel.
func (u *ui) Show() error {
	f, err := u.keypad.Drain()
	if err != nil {
		return err
	}

	_, err = io.WriteString(u.out, display.Render(f, u.width()))

	return errors.Trace(err)
}

// Run reads lines from the terminal until end of input.
func Run(u *T) error {
	cooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Trace(err)
	}

	cli := liner.NewLiner()
	defer cli.Close()

	uncooked, err := liner.TerminalMode()
	if err != nil {
		return errors.Trace(err)
	}

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(complete)

	err = history.Load(cli.ReadHistory)
	if err != nil {
		logger.Warningf("history: %v", err)
	}

	err = u.Show()
	if err != nil {
		return err
	}

	var line string

	for {
		err = uncooked.ApplyMode()
		if err != nil {
			return errors.Trace(err)
		}

		line, err = cli.Prompt(Prompt)

		merr := cooked.ApplyMode()
		if merr != nil {
			return errors.Trace(merr)
		}

		switch err {
		case nil:
			cli.AppendHistory(line)
		case liner.ErrPromptAborted:
			continue
		default:
			fmt.Fprintln(u.out)

			if err != io.EOF {
				logger.Errorf("prompt: %v", err)
			}

			return history.Save(cli.WriteHistory)
		}

		err = u.Line(line)
		if err != nil {
			fmt.Fprintf(u.out, "error: %v\n", err)
		}
	}
}

func complete(line string, pos int) (head string, completions []string, tail string) {
	head = line[:pos]
	tail = line[pos:]

	i := strings.LastIndexByte(head, ' ') + 1
	word := head[i:]

	if i > 0 || !strings.HasPrefix(word, ":") {
		return head, nil, tail
	}

	for _, c := range commands() {
		if strings.HasPrefix(c, word[1:]) {
			completions = append(completions, ":"+c)
		}
	}

	return head[:i], completions, tail
}
