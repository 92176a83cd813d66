package pqueue

import (
	"errors"
	"reflect"
)

var errNilCopy = errors.New("copy behavior returned nil")

// isNil reports whether v is nil: a nil pointer, map, slice, channel or
// function, or an interface that is nil or wraps one of those.
func isNil[T any](v T) bool {
	rv := reflect.ValueOf(&v).Elem()

	for rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return true
		}

		rv = rv.Elem()
	}

	switch rv.Kind() { //nolint:exhaustive
	case reflect.Chan, reflect.Func, reflect.Map, reflect.Pointer, reflect.UnsafePointer, reflect.Slice:
		return rv.IsNil()
	default:
		return false
	}
}
