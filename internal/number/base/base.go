// Released under an MIT license. See LICENSE.

// Package base provides the radix of a numeric literal.
package base

// T (base) is an input or output radix.
type T uint8

// Supported radices. None accepts no digits at all.
const (
	Dec T = iota
	Hex
	Bin
	None
)

// Digit returns true if c belongs to the alphabet of the base b.
func (b T) Digit(c byte) bool {
	switch b {
	case Dec:
		return '0' <= c && c <= '9'
	case Hex:
		return ('0' <= c && c <= '9') ||
			('a' <= c && c <= 'f') ||
			('A' <= c && c <= 'F')
	case Bin:
		return c == '0' || c == '1'
	}

	return false
}

// Next returns the base that follows b when cycling dec, hex, bin.
func (b T) Next() T {
	switch b {
	case Dec:
		return Hex
	case Hex:
		return Bin
	}

	return Dec
}

// Prefix returns the display prefix for literals in the base b.
func (b T) Prefix() string {
	switch b {
	case Hex:
		return "0x"
	case Bin:
		return "0b"
	}

	return ""
}

// Radix returns the numeric radix of b or zero for None.
func (b T) Radix() int {
	switch b {
	case Dec:
		return 10
	case Hex:
		return 16
	case Bin:
		return 2
	}

	return 0
}

func (b T) String() string {
	switch b {
	case Dec:
		return "dec"
	case Hex:
		return "hex"
	case Bin:
		return "bin"
	}

	return "none"
}

// Parse returns the base named s.
func Parse(s string) (T, bool) {
	for _, b := range []T{Dec, Hex, Bin, None} {
		if b.String() == s {
			return b, true
		}
	}

	return None, false
}
