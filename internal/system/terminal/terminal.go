// Released under an MIT license. See LICENSE.

// Package terminal provides the size of the controlling terminal.
package terminal

import (
	"os"
	"strconv"
)

// Fallback is the width used when it cannot be determined.
const Fallback = 80

// Width returns the number of columns of the terminal attached to fd.
// When fd is not a terminal, $COLUMNS is consulted before Fallback.
func Width(fd uintptr) int {
	if n := columns(int(fd)); n > 0 {
		return n
	}

	if n, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && n > 0 {
		return n
	}

	return Fallback
}
