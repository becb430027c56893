// Released under an MIT license. See LICENSE.

// Package format provides the number format descriptor.
package format

import (
	"github.com/comscicalc/csc/internal/number/base"
)

// Kind is the interpretation of a numeric word.
type Kind uint8

// Formats in promotion order.
const (
	Int Kind = iota
	Fixed
	Float
)

// Next returns the kind that follows k when cycling int, fixed, float.
func (k Kind) Next() Kind {
	return (k + 1) % (Float + 1)
}

// Valid returns true if k names a defined format.
func (k Kind) Valid() bool {
	return k <= Float
}

func (k Kind) String() string {
	switch k {
	case Int:
		return "int"
	case Fixed:
		return "fixed"
	case Float:
		return "float"
	}

	return "unknown"
}

// ParseKind returns the format named s.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{Int, Fixed, Float} {
		if k.String() == s {
			return k, true
		}
	}

	return Int, false
}

// T (format) describes how literals are read and results are shown.
type T struct {
	Base   base.T
	Input  Kind
	Output Kind
	Bits   uint8
	Point  uint8
	Signed bool
}

type format = T

// Default returns the format of a freshly initialised calculator.
func Default() T {
	return T{
		Base:   base.Dec,
		Input:  Int,
		Output: Int,
		Bits:   64,
		Point:  32,
	}
}

// Valid returns true if the word width and fixed-point split make sense.
func (f format) Valid() bool {
	return (f.Bits == 32 || f.Bits == 64) && f.Point <= f.Bits &&
		f.Input.Valid() && f.Output.Valid()
}

// Mask returns the bits of a word that are significant for f.
func (f format) Mask() uint64 {
	return Mask(f.Bits)
}

// Truncate discards the bits of w above the word width of f.
func (f format) Truncate(w uint64) uint64 {
	return w & f.Mask()
}

// Extend returns w, truncated to the word width, as a signed value.
func (f format) Extend(w uint64) int64 {
	if f.Bits >= 64 {
		return int64(w)
	}

	shift := 64 - uint(f.Bits)

	return int64(w<<shift) >> shift
}

// Negative returns true if f is signed and the sign bit of w is set.
func (f format) Negative(w uint64) bool {
	return f.Signed && f.Extend(w) < 0
}

// Mask returns a mask with the low n bits set.
func Mask(n uint8) uint64 {
	if n >= 64 {
		return ^uint64(0)
	}

	return 1<<n - 1
}
