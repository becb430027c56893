package options

import (
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

func TestBatch(t *testing.T) {
	c := qt.New(t)

	o, err := ParseArgs([]string{"-c", "123+456"}, true)
	c.Assert(err, qt.IsNil)
	c.Assert(o.Keys, qt.Equals, "123+456")
	c.Assert(o.Batch(), qt.IsTrue)
	c.Assert(o.Interactive, qt.IsFalse)
}

func TestInteractive(t *testing.T) {
	c := qt.New(t)

	o, err := ParseArgs([]string{}, true)
	c.Assert(err, qt.IsNil)
	c.Assert(o.Interactive, qt.IsTrue)
	c.Assert(o.Batch(), qt.IsFalse)

	o, err = ParseArgs([]string{}, false)
	c.Assert(err, qt.IsNil)
	c.Assert(o.Interactive, qt.IsFalse)

	o, err = ParseArgs([]string{"-s"}, true)
	c.Assert(err, qt.IsNil)
	c.Assert(o.Interactive, qt.IsFalse)
}

func TestFormat(t *testing.T) {
	c := qt.New(t)

	o, err := ParseArgs([]string{
		"--base=hex", "--input=fixed", "--output=float",
		"--bits=32", "--point=8", "--signed",
		"--log=<root>=TRACE", "--config=/tmp/csc.yaml",
	}, false)
	c.Assert(err, qt.IsNil)
	c.Assert(o.Log, qt.Equals, "<root>=TRACE")
	c.Assert(o.Config, qt.Equals, "/tmp/csc.yaml")

	f, err := o.Apply(format.Default())
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, format.T{
		Base:   base.Hex,
		Input:  format.Fixed,
		Output: format.Float,
		Bits:   32,
		Point:  8,
		Signed: true,
	})

	o, err = ParseArgs([]string{}, false)
	c.Assert(err, qt.IsNil)

	f, err = o.Apply(format.Default())
	c.Assert(err, qt.IsNil)
	c.Assert(f, qt.Equals, format.Default())
}

func TestInvalid(t *testing.T) {
	c := qt.New(t)

	for _, argv := range [][]string{
		{"--base=octal"},
		{"--input=bcd"},
		{"--output=bcd"},
		{"--bits=sixteen"},
		{"--bits=16"},
		{"--point=65"},
		{"--point=1000"},
	} {
		o, err := ParseArgs(argv, false)
		c.Assert(err, qt.IsNil)

		_, err = o.Apply(format.Default())
		c.Assert(errors.Cause(err), qt.Equals, error(status.UnknownParameter), qt.Commentf("%v", argv))
	}
}
