package utils

import "math/bits"

// Minimum capacities handed out once a container starts to grow.
const (
	MinSlots = 4
	MinBytes = 64
)

// SizeClass rounds n up to the next power of two. Zero and negative sizes
// map to zero.
func SizeClass(n int) int {
	if n <= 0 {
		return 0
	}
	if n&(n-1) == 0 {
		return n
	}
	return 1 << bits.Len(uint(n))
}

// NextCapacity returns cur when it already holds want, otherwise a size class
// of at least max(2*cur, want, floor).
func NextCapacity(cur, want, floor int) int {
	if want <= cur {
		return cur
	}
	c := max(cur*2, want, floor)
	return SizeClass(c)
}

// WithHeadroom returns need plus a quarter, the amount a byte region keeps
// free after compaction.
func WithHeadroom(need int) int {
	return need + need>>2
}
