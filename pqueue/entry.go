package pqueue

import "fmt"

// Entry is a queue-owned element paired with its queue-owned priority.
// Entries returned by the queue expose the live copies: they stay valid only
// until the entry is removed.
type Entry[E, P any] struct {
	element  E
	priority P
}

// Element returns the stored element.
func (e Entry[E, P]) Element() E { //nolint:ireturn
	return e.element
}

// Priority returns the stored priority.
func (e Entry[E, P]) Priority() P { //nolint:ireturn
	return e.priority
}

// newEntry copies element and priority through the bound behaviors. If
// either copy fails, whatever was already copied is released and the queue
// is not touched.
func (q *Queue[E, P]) newEntry(op string, element E, priority P) (Entry[E, P], error) {
	var entry Entry[E, P]

	elementCopy, err := q.behaviors.CopyElement(element)
	if err == nil && isNil(elementCopy) {
		err = errNilCopy
	}

	if err != nil {
		return entry, q.copyFailed(op, "element", err)
	}

	priorityCopy, err := q.behaviors.CopyPriority(priority)
	if err == nil && isNil(priorityCopy) {
		err = errNilCopy
	}

	if err != nil {
		q.behaviors.FreeElement(elementCopy)

		return entry, q.copyFailed(op, "priority", err)
	}

	entry.element = elementCopy
	entry.priority = priorityCopy

	return entry, nil
}

func (q *Queue[E, P]) freeEntry(entry Entry[E, P]) {
	q.behaviors.FreeElement(entry.element)
	q.behaviors.FreePriority(entry.priority)
}

func (q *Queue[E, P]) copyFailed(op, what string, cause error) error {
	q.metrics.copyFailed()
	q.log.Debug("copy behavior failed", "operation", op, "copying", what, "error", cause)

	return q.fail(op, fmt.Errorf("%w: copying %s: %w", ErrOutOfMemory, what, cause))
}
