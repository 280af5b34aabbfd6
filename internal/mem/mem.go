// Package mem provides slice helpers for append-style APIs.
package mem

import "slices"

// SliceForAppend takes a slice and a requested number of elements. It returns a slice with the contents of the given
// slice followed by that many elements and a second slice that aliases into it and contains only the extra elements.
// If the original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend[E any](in []E, n int) (head, tail []E) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
