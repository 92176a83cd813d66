package pqueue

import (
	"log/slog"

	"github.com/amp-labs/amp-pq/list"
)

type node[E, P any] = list.Node[Entry[E, P]]

// Queue is a priority queue of owned (element, priority) copies kept in
// descending priority order, with ties in insertion order. Queues must be
// created with New; a zero Queue rejects every operation with
// ErrNullArgument.
type Queue[E, P any] struct {
	entries   *list.List[Entry[E, P]]
	cursor    *node[E, P]
	behaviors Behaviors[E, P]

	opts    options
	log     *slog.Logger
	metrics *queueMetrics
}

// New returns an empty queue bound to b. It fails with ErrNullArgument if
// any of the six behaviors is nil.
func New[E, P any](b Behaviors[E, P], opts ...Option) (*Queue[E, P], error) {
	if err := b.validate(); err != nil { //nolint:noinlineerr
		return nil, err
	}

	return newQueue(b, buildOptions(opts)), nil
}

func newQueue[E, P any](b Behaviors[E, P], o options) *Queue[E, P] {
	q := &Queue[E, P]{
		entries:   list.New[Entry[E, P]](),
		behaviors: b,
		opts:      o,
		log:       o.log.With("queue", o.name),
	}

	if o.metrics {
		q.metrics = newQueueMetrics(o.name)
	}

	return q
}

// unset reports whether q is nil or was not built by New.
func (q *Queue[E, P]) unset() bool {
	return q == nil || q.entries == nil
}

// Size returns the number of entries, or -1 for a nil queue.
func (q *Queue[E, P]) Size() int {
	if q == nil {
		return -1
	}

	return q.entries.Size()
}

// Contains reports whether some entry's element equals element. A nil queue
// or unset element simply yields false.
func (q *Queue[E, P]) Contains(element E) bool {
	if q.unset() || isNil(element) {
		return false
	}

	return q.findElement(element) != nil
}

// Insert stores copies of element and priority. The new entry goes after
// every entry whose priority is not lower than priority and before the
// first strictly lower one.
func (q *Queue[E, P]) Insert(element E, priority P) error {
	const op = "insert"

	switch {
	case q.unset():
		return nullArgument(op, "queue")
	case isNil(element):
		return q.missing(op, "element")
	case isNil(priority):
		return q.missing(op, "priority")
	}

	return q.insert(op, element, priority)
}

func (q *Queue[E, P]) insert(op string, element E, priority P) error {
	entry, err := q.newEntry(op, element, priority)
	if err != nil {
		return err
	}

	if after := q.insertionPoint(priority); after == nil {
		q.entries.InsertAtStart(entry)
	} else {
		q.entries.InsertAfter(after, entry)
	}

	q.cursor = nil
	q.metrics.insert()

	return nil
}

// insertionPoint returns the last node whose priority is not lower than
// priority, or nil if the new entry belongs at the head.
func (q *Queue[E, P]) insertionPoint(priority P) *node[E, P] {
	var last *node[E, P]

	for n := range q.entries.All() {
		if q.behaviors.ComparePriorities(n.Value().priority, priority) < 0 {
			break
		}

		last = n
	}

	return last
}

// ChangePriority moves the first entry matching both element and
// oldPriority to newPriority. The replacement is inserted before the old
// entry is removed, so an ErrOutOfMemory leaves the old entry in place.
func (q *Queue[E, P]) ChangePriority(element E, oldPriority, newPriority P) error {
	const op = "change_priority"

	switch {
	case q.unset():
		return nullArgument(op, "queue")
	case isNil(element):
		return q.missing(op, "element")
	case isNil(oldPriority):
		return q.missing(op, "old priority")
	case isNil(newPriority):
		return q.missing(op, "new priority")
	}

	target := q.find(func(e Entry[E, P]) bool {
		return q.behaviors.EqualElements(e.element, element) &&
			q.behaviors.ComparePriorities(e.priority, oldPriority) == 0
	})
	if target == nil {
		q.log.Debug("no entry with matching element and priority", "operation", op)

		return q.fail(op, ErrElementDoesNotExist)
	}

	if err := q.insert(op, element, newPriority); err != nil { //nolint:noinlineerr
		return err
	}

	// Only unlinks a node located above, so it cannot fail.
	q.removeNode(target)
	q.metrics.priorityChanged()

	return nil
}

// Remove drops the highest priority entry. Removing from an empty queue
// succeeds and does nothing.
func (q *Queue[E, P]) Remove() error {
	if q.unset() {
		return nullArgument("remove", "queue")
	}

	if head := q.entries.First(); head != nil {
		q.removeNode(head)
	}

	return nil
}

// RemoveElement drops the first entry, in priority order, whose element
// equals element.
func (q *Queue[E, P]) RemoveElement(element E) error {
	const op = "remove_element"

	switch {
	case q.unset():
		return nullArgument(op, "queue")
	case isNil(element):
		return q.missing(op, "element")
	}

	target := q.findElement(element)
	if target == nil {
		q.log.Debug("no entry with matching element", "operation", op)

		return q.fail(op, ErrElementDoesNotExist)
	}

	q.removeNode(target)

	return nil
}

// Clear removes every entry.
func (q *Queue[E, P]) Clear() error {
	if q.unset() {
		return nullArgument("clear", "queue")
	}

	for q.entries.Size() > 0 {
		q.removeNode(q.entries.First())
	}

	q.cursor = nil

	return nil
}

// Copy returns a new queue bound to the same behaviors and options, holding
// fresh copies of every entry in the same order. If any copy fails, every
// copy made so far is released and ErrOutOfMemory is returned.
func (q *Queue[E, P]) Copy() (*Queue[E, P], error) {
	const op = "copy"

	if q.unset() {
		return nil, nullArgument(op, "queue")
	}

	dup := newQueue(q.behaviors, q.opts)

	var last *node[E, P]

	for entry := range q.entries.Values() {
		copied, err := q.newEntry(op, entry.element, entry.priority)
		if err != nil {
			q.log.Debug("rolling back partial copy", "copied", dup.Size())
			dup.discard()

			return nil, err
		}

		if last == nil {
			last = dup.entries.InsertAtStart(copied)
		} else {
			last = dup.entries.InsertAfter(last, copied)
		}
	}

	dup.metrics.grow(dup.Size())

	q.cursor = nil
	dup.cursor = nil

	return dup, nil
}

// Destroy releases every entry through the free behaviors. Safe on a nil
// queue. The queue is left empty.
func (q *Queue[E, P]) Destroy() {
	if q == nil {
		return
	}

	_ = q.Clear()
	q.entries.Destroy()
}

// discard frees the entries of a queue that was never handed out, without
// touching metrics.
func (q *Queue[E, P]) discard() {
	for n := q.entries.First(); n != nil; n = q.entries.First() {
		q.freeEntry(n.Value())
		q.entries.Remove(n)
	}
}

func (q *Queue[E, P]) removeNode(n *node[E, P]) {
	entry := n.Value()

	q.entries.Remove(n)
	q.freeEntry(entry)

	q.cursor = nil
	q.metrics.remove()
}

func (q *Queue[E, P]) findElement(element E) *node[E, P] {
	return q.find(func(e Entry[E, P]) bool {
		return q.behaviors.EqualElements(e.element, element)
	})
}

func (q *Queue[E, P]) find(match func(Entry[E, P]) bool) *node[E, P] {
	for n := range q.entries.All() {
		if match(n.Value()) {
			return n
		}
	}

	return nil
}
