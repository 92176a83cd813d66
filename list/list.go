// Package list provides a generic doubly linked list with O(1) insertion at
// the head or after a known node, O(1) removal of a known node, and forward
// and backward traversal.
//
// The list only manages its own nodes. It never inspects or releases the
// values it stores: whoever put a value in the list is responsible for any
// cleanup that value needs once its node is removed.
//
// A List is not safe for concurrent use.
package list

import (
	"iter"

	"github.com/amp-labs/amp-pq/zero"
)

// sizeOfNil is what Size reports for a nil list.
const sizeOfNil = -1

// Node is a single position in a List. A node is only valid while it is
// linked into the list that created it; once removed, all of its accessors
// behave as if it were at both ends of an empty list.
type Node[T any] struct {
	prev  *Node[T]
	next  *Node[T]
	owner *List[T]
	value T
}

// Value returns the value stored in the node. A nil node yields the zero value.
func (n *Node[T]) Value() T { //nolint:ireturn
	if n == nil {
		return zero.Value[T]()
	}

	return n.value
}

// Next returns the node after n, or nil if n is the last node.
func (n *Node[T]) Next() *Node[T] {
	if n == nil {
		return nil
	}

	return n.next
}

// Prev returns the node before n, or nil if n is the first node.
func (n *Node[T]) Prev() *Node[T] {
	if n == nil {
		return nil
	}

	return n.prev
}

// List is a doubly linked list of values of type T.
//
// Invariants:
//   - head is nil iff size is zero
//   - walking Next from head visits exactly size nodes and ends at nil
//   - for every node A with A.next == B, B.prev == A
type List[T any] struct {
	head *Node[T]
	size int
}

// New returns an empty list.
func New[T any]() *List[T] {
	return &List[T]{}
}

// Size returns the number of nodes in the list, or -1 for a nil list.
func (l *List[T]) Size() int {
	if l == nil {
		return sizeOfNil
	}

	return l.size
}

// First returns the head node, or nil if the list is empty.
func (l *List[T]) First() *Node[T] {
	if l == nil {
		return nil
	}

	return l.head
}

// Last returns the tail node, or nil if the list is empty. The list only
// tracks its head, so this walks the whole chain.
func (l *List[T]) Last() *Node[T] {
	if l == nil || l.head == nil {
		return nil
	}

	n := l.head
	for n.next != nil {
		n = n.next
	}

	return n
}

// InsertAtStart stores value in a new node that becomes the head of the list.
// The previous head, if any, follows it. Returns nil only for a nil list.
func (l *List[T]) InsertAtStart(value T) *Node[T] {
	if l == nil {
		return nil
	}

	n := &Node[T]{
		owner: l,
		value: value,
		next:  l.head,
	}

	if l.head != nil {
		l.head.prev = n
	}

	l.head = n
	l.size++

	return n
}

// InsertAfter stores value in a new node spliced immediately after target.
// If target is nil or does not belong to this list, nothing changes and nil
// is returned.
func (l *List[T]) InsertAfter(target *Node[T], value T) *Node[T] {
	if !l.owns(target) {
		return nil
	}

	n := &Node[T]{
		owner: l,
		value: value,
		prev:  target,
		next:  target.next,
	}

	if target.next != nil {
		target.next.prev = n
	}

	target.next = n
	l.size++

	return n
}

// Remove unlinks node from the list. The value held by the node is not
// touched. Returns false, without changing anything, if node is nil or is
// not part of this list.
func (l *List[T]) Remove(node *Node[T]) bool {
	if !l.owns(node) {
		return false
	}

	if l.head == node {
		l.head = node.next
	}

	if node.prev != nil {
		node.prev.next = node.next
	}

	if node.next != nil {
		node.next.prev = node.prev
	}

	// A detached node must not keep the rest of the chain reachable.
	node.prev = nil
	node.next = nil
	node.owner = nil

	l.size--

	return true
}

// RemoveFirst removes the head node. Returns false if the list is empty.
func (l *List[T]) RemoveFirst() bool {
	return l.Remove(l.First())
}

// Destroy unlinks every node and leaves the list empty. Stored values are
// not touched. Safe to call on a nil list.
func (l *List[T]) Destroy() {
	if l == nil {
		return
	}

	for l.head != nil {
		l.Remove(l.head)
	}
}

// All returns a sequence of the nodes from head to tail. The list must not
// be modified while the sequence is being consumed.
func (l *List[T]) All() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.First(); n != nil; n = n.next {
			if !yield(n) {
				return
			}
		}
	}
}

// Values returns a sequence of the stored values from head to tail.
func (l *List[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for n := range l.All() {
			if !yield(n.value) {
				return
			}
		}
	}
}

// Backward returns a sequence of the nodes from tail to head.
func (l *List[T]) Backward() iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		for n := l.Last(); n != nil; n = n.prev {
			if !yield(n) {
				return
			}
		}
	}
}

func (l *List[T]) owns(node *Node[T]) bool {
	return l != nil && node != nil && node.owner == l
}
