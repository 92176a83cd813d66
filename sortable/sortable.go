// Package sortable provides wrapper types for primitives that know how to
// order themselves, so they can be used directly as queue priorities.
package sortable

import (
	"github.com/amp-labs/amp-pq/compare"
)

// Sortable is a Comparable that also defines a strict ordering.
type Sortable[T any] interface {
	compare.Comparable[T]

	LessThan(other T) bool
}

// Compare is a three-way comparison for Sortable values. The greater value
// ranks higher, which makes it usable as a max-first priority ordering.
func Compare[T Sortable[T]](a, b T) int {
	switch {
	case a.Equals(b):
		return 0
	case a.LessThan(b):
		return -1
	default:
		return 1
	}
}
