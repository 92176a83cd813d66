// Package zero names the zero value of a type parameter.
package zero

// Value returns the zero value of T.
func Value[T any]() T { //nolint:ireturn
	var zeroVal T

	return zeroVal
}
