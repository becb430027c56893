// Released under an MIT license. See LICENSE.

package codec

import (
	"math/bits"

	"github.com/comscicalc/csc/internal/number/format"
)

// Binary renders the low n bits of w MSB first, grouped in fours from the
// least significant end. Leading zeros are dropped unless all is true.
func Binary(w uint64, all bool, n uint8, prefix bool) string {
	w &= format.Mask(n)

	width := int(n)
	if !all {
		width = bits.Len64(w)
		if width == 0 {
			width = 1
		}
	}

	b := make([]byte, 0, 2+width+width/4)

	if prefix {
		b = append(b, '0', 'b')
	}

	for i := width - 1; i >= 0; i-- {
		b = append(b, '0'+byte(w>>uint(i)&1))

		if i > 0 && i%4 == 0 {
			b = append(b, ' ')
		}
	}

	return string(b)
}
