// Released under an MIT license. See LICENSE.

package codec

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
)

// Convert reinterprets the word w, held in the format from, as the format to.
// The width, fixed-point split and signedness come from f.
func Convert(w uint64, from, to format.Kind, f format.T) uint64 {
	w = f.Truncate(w)

	if from == to {
		return w
	}

	switch from {
	case format.Int:
		if to == format.Fixed {
			if f.Point >= 64 {
				return 0
			}

			return f.Truncate(w << f.Point)
		}

		return FloatBits(intValue(w, f), f.Bits)

	case format.Fixed:
		if to == format.Int {
			return shiftRight(w, f.Point, f)
		}

		return FloatBits(fixedValue(w, f), f.Bits)

	case format.Float:
		v := FloatValue(w, f.Bits)
		if to == format.Int {
			return roundFloat(v, f)
		}

		return fixedFloat(v, f)
	}

	return w
}

// Result renders the word w, held in f.Input, as f.Output in base b.
func Result(w uint64, f format.T, b base.T) string {
	v := Convert(w, f.Input, f.Output, f)

	switch f.Output {
	case format.Fixed:
		if b == base.None {
			b = base.Dec
		}

		return b.Prefix() + FormatFixed(v, b, f)

	case format.Float:
		switch b {
		case base.Hex:
			return fmt.Sprintf("0x%0*X", int(f.Bits/4), v)
		case base.Bin:
			return Binary(v, true, f.Bits, true)
		}

		s := strconv.FormatFloat(FloatValue(v, f.Bits), 'g', -1, int(f.Bits))
		if !strings.ContainsAny(s, ".eIN") {
			s += ".0"
		}

		return s
	}

	switch b {
	case base.Hex:
		return "0x" + strings.ToUpper(strconv.FormatUint(v, 16))
	case base.Bin:
		return Binary(v, false, f.Bits, true)
	}

	if f.Signed {
		return strconv.FormatInt(f.Extend(v), 10)
	}

	return strconv.FormatUint(v, 10)
}

// Literal renders the word w, held in the format k, as literal glyphs for
// base b: lower case, no prefix, no grouping. It returns "" if the word
// has no such form, as for a negative or non-finite float in decimal.
func Literal(w uint64, k format.Kind, b base.T, f format.T) string {
	w = f.Truncate(w)

	switch k {
	case format.Fixed:
		f.Signed = false
		s := strings.ToLower(strings.ReplaceAll(FormatFixed(w, b, f), " ", ""))

		return strings.TrimSuffix(s, ".0")

	case format.Float:
		if b == base.Dec {
			v := FloatValue(w, f.Bits)
			if math.Signbit(v) || math.IsInf(v, 0) || math.IsNaN(v) {
				return ""
			}

			return strconv.FormatFloat(v, 'f', -1, int(f.Bits))
		}
	}

	return strconv.FormatUint(w, b.Radix())
}

func fixedFloat(v float64, f format.T) uint64 {
	if math.IsNaN(v) {
		return 0
	}

	negative := v < 0
	m := math.Abs(v)

	whole := math.Floor(m)
	fraction := m - whole

	var w uint64

	if f.Point < 64 {
		limit := math.Ldexp(1, 64-int(f.Point))
		if whole >= limit {
			return f.Mask()
		}

		w = uint64(whole) << f.Point
	}

	w |= uint64(math.Floor(math.Ldexp(fraction, int(f.Point))))

	if negative {
		w = -w
	}

	return f.Truncate(w)
}

func fixedValue(w uint64, f format.T) float64 {
	if f.Signed {
		return math.Ldexp(float64(f.Extend(w)), -int(f.Point))
	}

	return math.Ldexp(float64(w), -int(f.Point))
}

func intValue(w uint64, f format.T) float64 {
	if f.Signed {
		return float64(f.Extend(w))
	}

	return float64(w)
}

func roundFloat(v float64, f format.T) uint64 {
	r := math.Round(v)

	switch {
	case math.IsNaN(r):
		return 0
	case r < 0:
		if r < math.MinInt64 {
			return f.Truncate(1 << 63)
		}

		return f.Truncate(uint64(int64(r)))
	case r >= 0x1p64:
		return f.Mask()
	}

	return f.Truncate(uint64(r))
}

func shiftRight(w uint64, n uint8, f format.T) uint64 {
	if f.Signed {
		if n >= 64 {
			n = 63
		}

		return f.Truncate(uint64(f.Extend(w) >> n))
	}

	if n >= 64 {
		return 0
	}

	return w >> n
}
