/*
Csc is a programmer's calculator. Keystrokes build an expression that is
solved as it is typed and the result is shown in decimal, hexadecimal and
binary. Literals may be integers, fixed-point or floating-point numbers,
32 or 64 bits wide, signed or unsigned:

    csc -c '123+456*789'
    csc --base=hex -c 'n0,f)'
    csc --input=fixed --bits=32 --point=16 -c '123.5'
    echo '1+1' | csc

Interactively, each line is pressed as keystrokes. Lines starting with ':'
are commands, see :help.

Csc is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/juju/errors"
	"github.com/juju/loggo"

	"github.com/comscicalc/csc/internal/core"
	"github.com/comscicalc/csc/internal/keypad"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/system/config"
	"github.com/comscicalc/csc/internal/system/options"
	"github.com/comscicalc/csc/internal/system/terminal"
	"github.com/comscicalc/csc/internal/ui"
)

// Logging used unless the defaults file or the command line says otherwise.
const defaultLog = "<root>=WARNING"

func main() {
	err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "csc: %v\n", err)
		os.Exit(1)
	}
}

// batch presses each line of r. Errors are reported to w and do not stop
// the batch. It returns the number of lines that failed.
func batch(u *ui.T, r io.Reader, w io.Writer) (int, error) {
	failed := 0

	s := bufio.NewScanner(r)
	for s.Scan() {
		err := u.Line(s.Text())
		if err != nil {
			fmt.Fprintf(w, "csc: %v\n", err)

			failed++
		}
	}

	return failed, errors.Trace(s.Err())
}

func configure(c *core.T, f format.T) error {
	err := c.SetWidth(f.Bits, f.Point)
	if err != nil {
		return err
	}

	c.SetSigned(f.Signed)

	err = c.SetBase(f.Base)
	if err != nil {
		return err
	}

	err = c.UpdateInputFormat(f.Input)
	if err != nil {
		return err
	}

	return c.UpdateOutputFormat(f.Output)
}

func settings(opts *options.T, cfg *config.T) (format.T, string, error) {
	spec := defaultLog
	if cfg.Log != "" {
		spec = cfg.Log
	}

	if opts.Log != "" {
		spec = opts.Log
	}

	f, err := cfg.Apply(format.Default())
	if err != nil {
		return f, spec, errors.Annotate(err, "config")
	}

	f, err = opts.Apply(f)

	return f, spec, err
}

func run() error {
	opts, err := options.Parse()
	if err != nil {
		return err
	}

	path := opts.Config
	if path == "" {
		path = config.Path()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	f, spec, err := settings(opts, cfg)
	if err != nil {
		return err
	}

	err = loggo.ConfigureLoggers(spec)
	if err != nil {
		return errors.Annotatef(err, "--log=%s", spec)
	}

	c := core.New()
	defer c.Teardown()

	err = configure(c, f)
	if err != nil {
		return err
	}

	u := ui.New(keypad.New(c), os.Stdout, func() int {
		return terminal.Width(os.Stdout.Fd())
	})

	switch {
	case opts.Batch():
		return u.Line(opts.Keys)
	case opts.Interactive:
		return ui.Run(u)
	}

	failed, err := batch(u, os.Stdin, os.Stderr)
	if err == nil && failed > 0 {
		err = errors.Errorf("%d lines failed", failed)
	}

	return err
}
