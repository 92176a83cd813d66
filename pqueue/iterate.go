package pqueue

import (
	"iter"

	"github.com/amp-labs/amp-pq/zero"
)

// GetFirst moves the cursor to the highest priority entry and returns its
// element. The element is the queue's own copy and is only valid until that
// entry is removed. Returns false, leaving the cursor unset, if the queue is
// empty.
func (q *Queue[E, P]) GetFirst() (E, bool) { //nolint:ireturn
	if q == nil {
		return zero.Value[E](), false
	}

	q.cursor = q.entries.First()
	if q.cursor == nil {
		return zero.Value[E](), false
	}

	return q.cursor.Value().element, true
}

// GetNext advances the cursor and returns the element it lands on. Returns
// false if iteration was never started, was invalidated by a mutation, or
// has run past the last entry.
func (q *Queue[E, P]) GetNext() (E, bool) { //nolint:ireturn
	if q == nil || q.cursor == nil {
		return zero.Value[E](), false
	}

	q.cursor = q.cursor.Next()
	if q.cursor == nil {
		return zero.Value[E](), false
	}

	return q.cursor.Value().element, true
}

// Peek returns the highest priority entry without moving the cursor.
func (q *Queue[E, P]) Peek() (E, P, bool) { //nolint:ireturn
	if q == nil || q.entries.First() == nil {
		return zero.Value[E](), zero.Value[P](), false
	}

	head := q.entries.First()

	entry := head.Value()

	return entry.element, entry.priority, true
}

// All returns the (element, priority) pairs in queue order. It does not use
// or reset the cursor. The queue must not be mutated while ranging.
func (q *Queue[E, P]) All() iter.Seq2[E, P] {
	return func(yield func(E, P) bool) {
		if q == nil {
			return
		}

		for entry := range q.entries.Values() {
			if !yield(entry.element, entry.priority) {
				return
			}
		}
	}
}

// Entries returns a snapshot of the entries in queue order. The entries
// share the queue's live copies.
func (q *Queue[E, P]) Entries() []Entry[E, P] {
	if q == nil {
		return nil
	}

	out := make([]Entry[E, P], 0, q.entries.Size())
	for entry := range q.entries.Values() {
		out = append(out, entry)
	}

	return out
}
