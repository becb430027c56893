// Released under an MIT license. See LICENSE.

package codec

import (
	"math"
	"strconv"
	"strings"

	"github.com/juju/errors"

	"github.com/comscicalc/csc/internal/number/base"
	"github.com/comscicalc/csc/internal/number/format"
)

// ParseFixed converts s to a Qm.n word where n is f.Point.
//
// Decimal literals are scaled by 2^n and rounded half to even. They pass
// through a float64, so only 53 significant bits are exact. Binary and
// hexadecimal literals are converted digit by digit and so are exact up to
// the n fractional bits available. A leading '-' is accepted when f is
// signed: the magnitude is converted and the result negated.
func ParseFixed(s string, b base.T, f format.T) (uint64, error) {
	s = canonical(s, b)

	negative := false
	if strings.HasPrefix(s, "-") {
		if !f.Signed {
			return 0, errors.Annotatef(BadDigit, "sign in unsigned literal %q", s)
		}

		negative = true
		s = s[1:]
	}

	if b.Radix() == 0 {
		return 0, errors.Annotatef(BadDigit, "no %s digits", b)
	}

	err := digits(s, b, true)
	if err != nil {
		return 0, err
	}

	whole, fraction, _ := strings.Cut(s, ".")
	if whole == "" && fraction == "" {
		return 0, errors.Annotatef(BadDigit, "no digits in %q", s)
	}

	var w uint64

	if b == base.Dec {
		w, err = decimalFixed(s, f.Point)
	} else {
		w, err = radixFixed(whole, fraction, b, f.Point)
	}

	if err != nil {
		return 0, err
	}

	if w&^f.Mask() != 0 {
		return 0, errors.Annotatef(Range, "%q does not fit in Q%d.%d", s, f.Bits-f.Point, f.Point)
	}

	if negative {
		w = -w
	}

	return f.Truncate(w), nil
}

// FormatFixed renders the Qm.n word w in base b without a prefix.
//
// Only decimal output carries a sign. Binary and hexadecimal output shows
// the raw pattern.
func FormatFixed(w uint64, b base.T, f format.T) string {
	var sb strings.Builder

	w = f.Truncate(w)

	if b == base.Dec && f.Negative(w) {
		sb.WriteByte('-')

		w = uint64(-f.Extend(w))
	}

	whole, fraction := split(w, f.Point)

	switch b {
	case base.Hex:
		sb.WriteString(strings.ToUpper(strconv.FormatUint(whole, 16)))
		sb.WriteByte('.')
		sb.WriteString(hexFraction(fraction, f.Point))
	case base.Bin:
		sb.WriteString(Binary(whole, false, 64, false))
		sb.WriteByte('.')
		sb.WriteString(binaryFraction(fraction, f.Point))
	default:
		sb.WriteString(strconv.FormatUint(whole, 10))
		sb.WriteByte('.')
		sb.WriteString(decimalFraction(fraction, f.Point))
	}

	return sb.String()
}

func align(fraction uint64, point uint8) uint64 {
	if point == 0 {
		return 0
	}

	if point >= 64 {
		return fraction
	}

	return fraction << (64 - point)
}

func binaryFraction(fraction uint64, point uint8) string {
	a := align(fraction, point)
	if a == 0 {
		return "0"
	}

	var sb strings.Builder

	for i := 0; a != 0; i++ {
		if i > 0 && i%4 == 0 {
			sb.WriteByte(' ')
		}

		sb.WriteByte('0' + byte(a>>63))

		a <<= 1
	}

	return sb.String()
}

// decimalFraction returns the shortest decimal fraction that converts
// back to the same n fractional bits.
func decimalFraction(fraction uint64, point uint8) string {
	if fraction == 0 {
		return "0"
	}

	v := math.Ldexp(float64(fraction), -int(point))
	if v >= 1 {
		v = math.Nextafter(1, 0)
	}

	target := float64(fraction)

	for n := 1; n <= 20; n++ {
		s := strconv.FormatFloat(v, 'f', n, 64)
		if s[0] != '0' {
			continue
		}

		p, err := strconv.ParseFloat(s, 64)
		if err == nil && math.RoundToEven(math.Ldexp(p, int(point))) == target {
			return s[2:]
		}
	}

	return strings.TrimPrefix(strconv.FormatFloat(v, 'f', -1, 64), "0.")
}

func decimalFixed(s string, point uint8) (uint64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Annotatef(Range, "%q", s)
	}

	scaled := math.RoundToEven(math.Ldexp(v, int(point)))
	if scaled >= 0x1p64 {
		return 0, errors.Annotatef(Range, "%q with %d fractional bits", s, point)
	}

	return uint64(scaled), nil
}

func hexFraction(fraction uint64, point uint8) string {
	a := align(fraction, point)
	if a == 0 {
		return "0"
	}

	var sb strings.Builder

	for a != 0 {
		sb.WriteByte(strings.ToUpper(strconv.FormatUint(a>>60, 16))[0])

		a <<= 4
	}

	return sb.String()
}

func radixFixed(whole, fraction string, b base.T, point uint8) (uint64, error) {
	var w uint64

	if whole != "" {
		i, err := strconv.ParseUint(whole, b.Radix(), 64)
		if err != nil {
			return 0, errors.Annotatef(Range, "%q", whole)
		}

		if point >= 64 {
			if i != 0 {
				return 0, errors.Annotatef(Range, "%q with %d fractional bits", whole, point)
			}
		} else if i > math.MaxUint64>>point {
			return 0, errors.Annotatef(Range, "%q with %d fractional bits", whole, point)
		} else {
			w = i << point
		}
	}

	width := 1
	if b == base.Hex {
		width = 4
	}

	for i := 0; i < len(fraction); i++ {
		d, _ := strconv.ParseUint(fraction[i:i+1], b.Radix(), 8)

		pos := int(point) - width*(i+1)

		switch {
		case pos >= 0:
			w |= d << uint(pos)
		case pos > -width:
			w |= d >> uint(-pos)
		}
	}

	return w, nil
}

func split(w uint64, point uint8) (whole, fraction uint64) {
	switch {
	case point == 0:
		return w, 0
	case point >= 64:
		return 0, w
	}

	return w >> point, w & format.Mask(point)
}
