package pqueue

import (
	"errors"
	"fmt"

	"github.com/amp-labs/amp-pq/logger"
)

var (
	// ErrNullArgument is returned when the queue, an element, a priority or
	// a behavior is unset.
	ErrNullArgument = errors.New("null argument")

	// ErrOutOfMemory is returned when a copy behavior fails. The operation
	// that hit it had no effect.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrElementDoesNotExist is returned when a lookup finds no matching entry.
	ErrElementDoesNotExist = errors.New("element does not exist")
)

// Result is the status-code view of an operation outcome.
type Result int

const (
	Success Result = iota
	NullArgument
	OutOfMemory
	ElementDoesNotExist
	Unknown
)

func (r Result) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case NullArgument:
		return "NULL_ARGUMENT"
	case OutOfMemory:
		return "OUT_OF_MEMORY"
	case ElementDoesNotExist:
		return "ELEMENT_DOES_NOT_EXIST"
	case Unknown:
		return "UNKNOWN"
	default:
		return fmt.Sprintf("Result(%d)", int(r))
	}
}

// ResultOf maps an error returned by this package to its Result code.
func ResultOf(err error) Result {
	switch {
	case err == nil:
		return Success
	case errors.Is(err, ErrNullArgument):
		return NullArgument
	case errors.Is(err, ErrOutOfMemory):
		return OutOfMemory
	case errors.Is(err, ErrElementDoesNotExist):
		return ElementDoesNotExist
	default:
		return Unknown
	}
}

func nullArgument(op, what string) error {
	return logger.AnnotateError(fmt.Errorf("%w: %s", ErrNullArgument, what), "operation", op)
}

func (q *Queue[E, P]) missing(op, what string) error {
	return q.fail(op, fmt.Errorf("%w: %s", ErrNullArgument, what))
}

func (q *Queue[E, P]) fail(op string, err error) error {
	return logger.AnnotateError(err, "operation", op, "queue", q.opts.name)
}
