// Released under an MIT license. See LICENSE.

// Package config provides the defaults file read at start up.
//
// The file is YAML. Every key is optional:
//
//	base: hex      # dec, hex or bin
//	input: fixed   # int, fixed or float
//	output: float
//	bits: 32       # 32 or 64
//	point: 16
//	signed: true
//	log: "<root>=DEBUG"
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"

	"github.com/juju/errors"
	"gopkg.in/yaml.v3"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
	"github.com/comscicalc/csc/internal/status"
)

// Name is the file name of the defaults file in the home directory.
const Name = ".csc.yaml"

// T (config) holds the settings found in a defaults file.
type T struct {
	Base   string `yaml:"base,omitempty"`
	Input  string `yaml:"input,omitempty"`
	Output string `yaml:"output,omitempty"`
	Bits   *uint8 `yaml:"bits,omitempty"`
	Point  *uint8 `yaml:"point,omitempty"`
	Signed *bool  `yaml:"signed,omitempty"`
	Log    string `yaml:"log,omitempty"`
}

type config = T

// Path returns the location of the defaults file.
func Path() string {
	return filepath.Join(os.Getenv("HOME"), Name)
}

// Load reads the defaults file at path. A missing file is not an error.
func Load(path string) (*T, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &T{}, nil
	} else if err != nil {
		return nil, errors.Trace(err)
	}

	c, err := Parse(data)
	if err != nil {
		return nil, errors.Annotatef(err, "%s", path)
	}

	return c, nil
}

// Parse decodes a defaults file. Unknown keys are rejected.
func Parse(data []byte) (*T, error) {
	c := &T{}

	d := yaml.NewDecoder(bytes.NewReader(data))
	d.KnownFields(true)

	err := d.Decode(c)
	if err != nil && err != io.EOF {
		return nil, errors.Annotatef(status.UnknownParameter, "%v", err)
	}

	return c, nil
}

// Apply returns f with every setting of c applied.
func (c *config) Apply(f format.T) (format.T, error) {
	if c.Base != "" {
		b, ok := base.Parse(c.Base)
		if !ok {
			return f, errors.Annotatef(status.UnknownParameter, "base: %q", c.Base)
		}

		f.Base = b
	}

	for _, s := range []struct {
		key   string
		value string
		kind  *format.Kind
	}{
		{"input", c.Input, &f.Input},
		{"output", c.Output, &f.Output},
	} {
		if s.value == "" {
			continue
		}

		k, ok := format.ParseKind(s.value)
		if !ok {
			return f, errors.Annotatef(status.UnknownParameter, "%s: %q", s.key, s.value)
		}

		*s.kind = k
	}

	if c.Bits != nil {
		f.Bits = *c.Bits
	}

	if c.Point != nil {
		f.Point = *c.Point
	}

	if c.Signed != nil {
		f.Signed = *c.Signed
	}

	if !f.Valid() {
		return f, errors.Annotatef(status.UnknownParameter, "bits: %d point: %d", f.Bits, f.Point)
	}

	return f, nil
}
