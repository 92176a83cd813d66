// Package compare provides equality and ordering helpers shared by the
// queue behaviors.
package compare

import "cmp"

// Comparable is implemented by types that define their own equality.
type Comparable[T any] interface {
	Equals(other T) bool
}

// Equals compares two values using the Comparable interface.
// It delegates to the Equals method of the first argument.
func Equals[T any](a Comparable[T], b T) bool {
	return a.Equals(b)
}

// Func is a three-way comparison: positive when a ranks above b, zero when
// they tie, negative when b ranks above a.
type Func[T any] func(a, b T) int

// Ordered returns the natural ascending comparison for ordered types, so
// larger values rank higher.
func Ordered[T cmp.Ordered]() Func[T] {
	return cmp.Compare[T]
}

// FromLess builds a Func out of a strict less-than predicate. Values for
// which neither less(a, b) nor less(b, a) holds compare as equal.
func FromLess[T any](less func(a, b T) bool) Func[T] {
	return func(a, b T) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		default:
			return 0
		}
	}
}

// Reverse flips the ordering, turning a max-first comparison into a
// min-first one.
func (f Func[T]) Reverse() Func[T] {
	return func(a, b T) int {
		return f(b, a)
	}
}
