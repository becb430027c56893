// Released under an MIT license. See LICENSE.

package operator

import (
	"math/bits"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/format"
)

func and(a, b uint64) uint64  { return a & b }
func nand(a, b uint64) uint64 { return ^(a & b) }
func nor(a, b uint64) uint64  { return ^(a | b) }
func or(a, b uint64) uint64   { return a | b }
func xor(a, b uint64) uint64  { return a ^ b }

func bitwise(op func(a, b uint64) uint64) Evaluator {
	return func(f format.T, args []Value) (uint64, error) {
		if f.Input == format.Float {
			return 0, errors.Annotatef(BadArgs, "bitwise operation on a float")
		}

		return f.Truncate(op(args[0].Word, args[1].Word)), nil
	}
}

// fold applies op from left to right. Each step is limited to the width of
// the widest argument so that NAND(0,f) is f rather than a full word of ones.
func fold(op func(a, b uint64) uint64) Evaluator {
	return func(f format.T, args []Value) (uint64, error) {
		if f.Input == format.Float {
			return 0, errors.Annotatef(BadArgs, "bitwise operation on a float")
		}

		width := 1

		for _, v := range args {
			if n := bits.Len64(f.Truncate(v.Word)); n > width {
				width = n
			}
		}

		m := format.Mask(uint8(width))

		r := args[0].Word & m
		for _, v := range args[1:] {
			r = op(r, v.Word) & m
		}

		return f.Truncate(r), nil
	}
}

func not(f format.T, args []Value) (uint64, error) {
	if f.Input == format.Float {
		return 0, errors.Annotatef(BadArgs, "bitwise operation on a float")
	}

	return f.Truncate(^args[0].Word), nil
}
