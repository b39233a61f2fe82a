package journal

import (
	"strconv"
	"strings"
)

// DefaultCount is the number of entries read when no usable count is given.
const DefaultCount = 1

// ParseCount converts a user-supplied count to a positive number.
// Empty, non-numeric, zero and negative input all yield DefaultCount.
func ParseCount(raw string) int {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return DefaultCount
	}
	return NormalizeCount(n)
}

// NormalizeCount replaces a non-positive count with DefaultCount.
func NormalizeCount(n int) int {
	if n < 1 {
		return DefaultCount
	}
	return n
}
