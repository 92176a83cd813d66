package pqueue

import (
	"cmp"

	"facette.io/natsort"
	"github.com/amp-labs/amp-pq/compare"
	errors2 "github.com/amp-labs/amp-pq/errors"
	"github.com/amp-labs/amp-pq/sortable"
)

// Behaviors describes how a Queue handles its element type E and priority
// type P. All six functions are required and stay bound to the queue for its
// whole lifetime.
type Behaviors[E, P any] struct {
	// CopyElement returns an independent copy of an element. An error (or a
	// nil copy of a non-nil element) makes the calling operation fail with
	// ErrOutOfMemory.
	CopyElement func(E) (E, error)

	// FreeElement releases a copy made by CopyElement. It must not fail.
	FreeElement func(E)

	// EqualElements reports whether two elements are the same.
	EqualElements func(a, b E) bool

	// CopyPriority and FreePriority follow the element contract for priorities.
	CopyPriority func(P) (P, error)
	FreePriority func(P)

	// ComparePriorities returns a positive number if a ranks above b, zero if
	// they tie and a negative number otherwise. It must be a total order.
	ComparePriorities compare.Func[P]
}

func (b Behaviors[E, P]) validate() error {
	var errs errors2.Collection

	errs.AddIf(b.CopyElement == nil, nullArgument("new", "CopyElement"))
	errs.AddIf(b.FreeElement == nil, nullArgument("new", "FreeElement"))
	errs.AddIf(b.EqualElements == nil, nullArgument("new", "EqualElements"))
	errs.AddIf(b.CopyPriority == nil, nullArgument("new", "CopyPriority"))
	errs.AddIf(b.FreePriority == nil, nullArgument("new", "FreePriority"))
	errs.AddIf(b.ComparePriorities == nil, nullArgument("new", "ComparePriorities"))

	return errs.GetError()
}

// Reversed returns the same behaviors with the priority order flipped, so
// the lowest priority is served first.
func (b Behaviors[E, P]) Reversed() Behaviors[E, P] {
	if b.ComparePriorities != nil {
		b.ComparePriorities = b.ComparePriorities.Reverse()
	}

	return b
}

// ValueCopy is a copy behavior for types with value semantics.
func ValueCopy[T any](v T) (T, error) { //nolint:ireturn
	return v, nil
}

// NoFree is a free behavior for values that hold no resources.
func NoFree[T any](T) {}

// Equal is an equality behavior using ==.
func Equal[T comparable](a, b T) bool {
	return a == b
}

// ComparableEquals is an equality behavior for types implementing compare.Comparable.
func ComparableEquals[T compare.Comparable[T]](a, b T) bool {
	return compare.Equals[T](a, b)
}

// OrderedCompare ranks larger values higher.
func OrderedCompare[T cmp.Ordered](a, b T) int {
	return cmp.Compare(a, b)
}

// SortableCompare ranks values implementing sortable.Sortable by their LessThan order.
func SortableCompare[T sortable.Sortable[T]](a, b T) int {
	return sortable.Compare(a, b)
}

// NaturalCompare ranks strings in natural order, treating digit runs as
// numbers: "job10" ranks above "job9".
func NaturalCompare(a, b string) int {
	return natural(a, b)
}

// natsort.Compare means "sorts before or equal to"; FromLess needs it strict.
var natural = compare.FromLess(func(a, b string) bool { //nolint:gochecknoglobals
	return natsort.Compare(a, b) && !natsort.Compare(b, a)
})

// ValueBehaviors returns behaviors for plain value elements and ordered
// priorities, where larger priorities are served first.
func ValueBehaviors[E comparable, P cmp.Ordered]() Behaviors[E, P] {
	return Behaviors[E, P]{
		CopyElement:       ValueCopy[E],
		FreeElement:       NoFree[E],
		EqualElements:     Equal[E],
		CopyPriority:      ValueCopy[P],
		FreePriority:      NoFree[P],
		ComparePriorities: compare.Ordered[P](),
	}
}
