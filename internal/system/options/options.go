// Released under an MIT license. See LICENSE.

// Package options provides the command line of csc.
package options

import (
	"os"
	"strconv"

	"github.com/docopt/docopt-go"
	"github.com/juju/errors"
	"github.com/mattn/go-isatty"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

// Version is printed by -v.
const Version = "csc 0.1.0"

//nolint:gochecknoglobals
var usage = `csc

Usage:
  csc [options] -c KEYS
  csc [options] [-s]
  csc -h
  csc -v

Options:
  -c, --keys=KEYS    Press KEYS, print the panel and exit.
  -s, --stdin        Read keystrokes from stdin, one batch per line.
  -b, --base=BASE    Input base: dec, hex or bin.
  -i, --input=FMT    Input format: int, fixed or float.
  -o, --output=FMT   Output format: int, fixed or float.
  -n, --bits=BITS    Word width: 32 or 64.
  -p, --point=POINT  Fractional bits of fixed-point numbers.
  -S, --signed       Treat words as two's complement.
  -l, --log=SPEC     Logging configuration, e.g. "<root>=DEBUG".
  -f, --config=PATH  Defaults file, $HOME/.csc.yaml if not given.
  -h, --help         Display this help.
  -v, --version      Print csc version.

If stdin is a TTY and neither -c nor -s was given, csc is interactive.
Otherwise each line of stdin is a batch of keystrokes.
`

// T (options) is a parsed command line.
type T struct {
	Config      string
	Interactive bool
	Keys        string
	Log         string

	base   string
	bits   string
	input  string
	output string
	point  string
	signed bool
}

type options = T

// Parse parses the command line of the current process.
func Parse() (*T, error) {
	return ParseArgs(os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()))
}

// ParseArgs parses argv. The tty flag says whether stdin is a terminal.
func ParseArgs(argv []string, tty bool) (*T, error) {
	parser := &docopt.Parser{HelpHandler: docopt.PrintHelpAndExit}

	opts, err := parser.ParseArgs(usage, argv, Version)
	if err != nil {
		return nil, errors.Trace(err)
	}

	o := &T{}

	o.Keys, _ = opts.String("--keys")
	o.Log, _ = opts.String("--log")
	o.Config, _ = opts.String("--config")

	o.base, _ = opts.String("--base")
	o.bits, _ = opts.String("--bits")
	o.input, _ = opts.String("--input")
	o.output, _ = opts.String("--output")
	o.point, _ = opts.String("--point")
	o.signed, _ = opts.Bool("--signed")

	stdin, _ := opts.Bool("--stdin")
	_, batch := opts["--keys"].(string)

	o.Interactive = tty && !stdin && !batch

	return o, nil
}

// Apply returns f with every format option of o applied.
func (o *options) Apply(f format.T) (format.T, error) {
	if o.base != "" {
		b, ok := base.Parse(o.base)
		if !ok {
			return f, errors.Annotatef(status.UnknownParameter, "--base=%s", o.base)
		}

		f.Base = b
	}

	for _, s := range []struct {
		name  string
		value string
		kind  *format.Kind
	}{
		{"--input", o.input, &f.Input},
		{"--output", o.output, &f.Output},
	} {
		if s.value == "" {
			continue
		}

		k, ok := format.ParseKind(s.value)
		if !ok {
			return f, errors.Annotatef(status.UnknownParameter, "%s=%s", s.name, s.value)
		}

		*s.kind = k
	}

	for _, s := range []struct {
		name  string
		value string
		n     *uint8
	}{
		{"--bits", o.bits, &f.Bits},
		{"--point", o.point, &f.Point},
	} {
		if s.value == "" {
			continue
		}

		n, err := strconv.ParseUint(s.value, 10, 8)
		if err != nil {
			return f, errors.Annotatef(status.UnknownParameter, "%s=%s", s.name, s.value)
		}

		*s.n = uint8(n)
	}

	if o.signed {
		f.Signed = true
	}

	if !f.Valid() {
		return f, errors.Annotatef(status.UnknownParameter, "bits %d point %d", f.Bits, f.Point)
	}

	return f, nil
}

// Batch returns true if keystrokes were given with -c.
func (o *options) Batch() bool {
	return o.Keys != ""
}
