// Released under an MIT license. See LICENSE.

package operator

import (
	"math"
	"math/bits"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/codec"
	"github.com/comscicalc/csc/internal/number/format"
)

func add(f format.T, args []Value) (uint64, error) {
	a, b := args[0].Word, args[1].Word

	if f.Input == format.Float {
		x, y := floats(f, a, b)

		return codec.FloatBits(x+y, f.Bits), nil
	}

	return f.Truncate(a + b), nil
}

func divide(f format.T, args []Value) (uint64, error) {
	a, b := args[0].Word, args[1].Word

	switch f.Input {
	case format.Float:
		x, y := floats(f, a, b)
		if y == 0 {
			return 0, errors.Trace(DivideByZero)
		}

		return codec.FloatBits(x/y, f.Bits), nil

	case format.Fixed:
		if b == 0 {
			return 0, errors.Trace(DivideByZero)
		}

		return fixedDivide(f, a, b)
	}

	if b == 0 {
		return 0, errors.Trace(DivideByZero)
	}

	if f.Signed {
		return f.Truncate(uint64(f.Extend(a) / f.Extend(b))), nil
	}

	return a / b, nil
}

func multiply(f format.T, args []Value) (uint64, error) {
	a, b := args[0].Word, args[1].Word

	switch f.Input {
	case format.Float:
		x, y := floats(f, a, b)

		return codec.FloatBits(x*y, f.Bits), nil

	case format.Fixed:
		return fixedMultiply(f, a, b), nil
	}

	return f.Truncate(a * b), nil
}

func remainder(f format.T, args []Value) (uint64, error) {
	a, b := args[0].Word, args[1].Word

	if f.Input == format.Float {
		x, y := floats(f, a, b)
		if y == 0 {
			return 0, errors.Trace(DivideByZero)
		}

		return codec.FloatBits(math.Mod(x, y), f.Bits), nil
	}

	if b == 0 {
		return 0, errors.Trace(DivideByZero)
	}

	if f.Signed {
		return f.Truncate(uint64(f.Extend(a) % f.Extend(b))), nil
	}

	return a % b, nil
}

func shiftLeft(f format.T, args []Value) (uint64, error) {
	n, err := count(f, args[1].Word)
	if err != nil {
		return 0, err
	}

	if n >= uint64(f.Bits) {
		return 0, nil
	}

	return f.Truncate(args[0].Word << n), nil
}

func shiftRight(f format.T, args []Value) (uint64, error) {
	n, err := count(f, args[1].Word)
	if err != nil {
		return 0, err
	}

	a := args[0].Word

	if f.Signed {
		if n >= uint64(f.Bits) {
			n = uint64(f.Bits) - 1
		}

		return f.Truncate(uint64(f.Extend(a) >> n)), nil
	}

	if n >= uint64(f.Bits) {
		return 0, nil
	}

	return a >> n, nil
}

func subtract(f format.T, args []Value) (uint64, error) {
	a, b := args[0].Word, args[1].Word

	if f.Input == format.Float {
		x, y := floats(f, a, b)

		return codec.FloatBits(x-y, f.Bits), nil
	}

	return f.Truncate(a - b), nil
}

func sum(f format.T, args []Value) (uint64, error) {
	r := args[0].Word

	for _, v := range args[1:] {
		w, err := add(f, []Value{{Word: r}, v})
		if err != nil {
			return 0, err
		}

		r = w
	}

	return f.Truncate(r), nil
}

// count returns the shift distance held in w.
func count(f format.T, w uint64) (uint64, error) {
	switch f.Input {
	case format.Float:
		return 0, errors.Annotatef(BadArgs, "cannot shift a float")
	case format.Fixed:
		if f.Point >= 64 {
			return 0, nil
		}

		w = codec.Convert(w, format.Fixed, format.Int, f)
	}

	if f.Negative(w) {
		return 0, errors.Annotatef(BadArgs, "negative shift")
	}

	return w, nil
}

func fixedDivide(f format.T, a, b uint64) (uint64, error) {
	a, b, negative := magnitudes(f, a, b)

	var hi, lo uint64

	switch p := f.Point; {
	case p == 0:
		lo = a
	case p >= 64:
		hi = a
	default:
		hi, lo = a>>(64-p), a<<p
	}

	if hi >= b {
		return 0, errors.Annotatef(Overflow, "quotient does not fit in Q%d.%d", f.Bits-f.Point, f.Point)
	}

	q, _ := bits.Div64(hi, lo, b)
	if q > f.Mask() {
		return 0, errors.Annotatef(Overflow, "quotient does not fit in %d bits", f.Bits)
	}

	if negative {
		q = -q
	}

	return f.Truncate(q), nil
}

func fixedMultiply(f format.T, a, b uint64) uint64 {
	a, b, negative := magnitudes(f, a, b)

	hi, lo := bits.Mul64(a, b)

	var r uint64

	switch p := f.Point; {
	case p == 0:
		r = lo
	case p >= 64:
		r = hi
	default:
		r = hi<<(64-p) | lo>>p
	}

	if negative {
		r = -r
	}

	return f.Truncate(r)
}

func floats(f format.T, a, b uint64) (float64, float64) {
	return codec.FloatValue(a, f.Bits), codec.FloatValue(b, f.Bits)
}

func magnitudes(f format.T, a, b uint64) (uint64, uint64, bool) {
	negative := false

	if f.Negative(a) {
		a = uint64(-f.Extend(a))
		negative = !negative
	}

	if f.Negative(b) {
		b = uint64(-f.Extend(b))
		negative = !negative
	}

	return a, b, negative
}
