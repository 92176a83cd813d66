// Package errors holds small helpers for building errors out of several
// independent checks.
package errors

import "errors"

// Collection is a thread-unsafe accumulator for errors discovered while
// validating several things at once. Nil errors are ignored, so callers can
// feed it every check result without branching.
type Collection struct {
	errors []error
}

// Add appends an error to the collection. Nil errors are ignored.
func (c *Collection) Add(err error) {
	if err != nil {
		c.errors = append(c.errors, err)
	}
}

// AddIf appends err only when failed is true.
func (c *Collection) AddIf(failed bool, err error) {
	if failed {
		c.Add(err)
	}
}

// GetError returns nil for an empty collection, the error itself when there
// is exactly one, and an errors.Join of all of them otherwise.
func (c *Collection) GetError() error {
	switch len(c.errors) {
	case 0:
		return nil
	case 1:
		return c.errors[0]
	default:
		return errors.Join(c.errors...)
	}
}
