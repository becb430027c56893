// Released under an MIT license. See LICENSE.

// Package codec provides conversions between numeric words and strings.
//
// A word is always a raw 64-bit pattern. Only the low format.T.Bits bits are
// significant. Floats are stored as their IEEE-754 bit pattern, binary32 at
// 32 bits and binary64 at 64 bits. Fixed-point words are Qm.n with n equal to
// format.T.Point.
package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
)

//nolint:gochecknoglobals
var (
	// BadDigit is the cause of a failed parse of a malformed literal.
	BadDigit = errors.New("bad digit")

	// Range is the cause of a failed parse of a literal too large for the word.
	Range = errors.New("value out of range")
)

// Parse converts the literal s, written in base b, to a word in the input
// format of f. An optional base prefix and grouping spaces are ignored.
func Parse(s string, b base.T, f format.T) (uint64, error) {
	s = canonical(s, b)
	if s == "" {
		return 0, errors.Annotatef(BadDigit, "empty literal")
	}

	switch f.Input {
	case format.Int:
		return parseInt(s, b, f)
	case format.Fixed:
		return ParseFixed(s, b, f)
	case format.Float:
		return parseFloat(s, b, f)
	}

	return 0, errors.NotValidf("format %v", f.Input)
}

// FloatBits returns the bit pattern of v as a float of the given width.
func FloatBits(v float64, bits uint8) uint64 {
	if bits == 32 {
		return uint64(math.Float32bits(float32(v)))
	}

	return math.Float64bits(v)
}

// FloatValue interprets the word w as a float of the given width.
func FloatValue(w uint64, bits uint8) float64 {
	if bits == 32 {
		return float64(math.Float32frombits(uint32(w)))
	}

	return math.Float64frombits(w)
}

func canonical(s string, b base.T) string {
	s = strings.ReplaceAll(s, " ", "")

	p := b.Prefix()
	if p != "" && len(s) > len(p) && strings.EqualFold(s[:len(p)], p) {
		s = s[len(p):]
	}

	return s
}

func digits(s string, b base.T, point bool) error {
	dot := false

	for i := 0; i < len(s); i++ {
		c := s[i]

		switch {
		case b.Digit(c):
		case c == '.' && point && !dot:
			dot = true
		default:
			return errors.Annotatef(BadDigit, "%q in %s literal %q", c, b, s)
		}
	}

	return nil
}

func parseFloat(s string, b base.T, f format.T) (uint64, error) {
	if b != base.Dec {
		// Hexadecimal and binary float literals are raw bit patterns.
		return parseInt(s, b, format.T{Bits: f.Bits})
	}

	v, err := strconv.ParseFloat(s, int(f.Bits))
	if err != nil {
		if ne, ok := err.(*strconv.NumError); ok && ne.Err == strconv.ErrRange {
			return 0, errors.Annotatef(Range, "%q", s)
		}

		return 0, errors.Annotatef(BadDigit, "%q is not a float", s)
	}

	return FloatBits(v, f.Bits), nil
}

func parseInt(s string, b base.T, f format.T) (uint64, error) {
	negative := false

	if strings.HasPrefix(s, "-") && f.Signed && b == base.Dec {
		negative = true
		s = s[1:]
	}

	if s == "" || b.Radix() == 0 {
		return 0, errors.Annotatef(BadDigit, "no %s digits", b)
	}

	err := digits(s, b, false)
	if err != nil {
		return 0, err
	}

	w, err := strconv.ParseUint(s, b.Radix(), int(f.Bits))
	if err != nil {
		return 0, errors.Annotatef(Range, "%q does not fit in %d bits", s, f.Bits)
	}

	if negative {
		if w > 1<<(f.Bits-1) {
			return 0, errors.Annotatef(Range, "-%s does not fit in %d bits", s, f.Bits)
		}

		w = -w
	}

	return f.Truncate(w), nil
}
