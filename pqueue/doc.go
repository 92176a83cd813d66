// Package pqueue implements a generic priority queue whose element and
// priority types are described entirely by caller-supplied behaviors.
//
// # Ownership
//
// A Queue never keeps the values it is given. Insert runs the bound copy
// behaviors and stores the copies; every removal path (Remove,
// RemoveElement, ChangePriority, Clear, Destroy) hands those copies back to
// the bound free behaviors. Callers therefore remain the sole owners of the
// values they pass in.
//
// # Ordering
//
// Entries are kept in non-increasing priority order as defined by
// ComparePriorities (a positive result means the first argument ranks
// higher). Entries of equal priority keep their insertion order, so
// inserting (A,5), (B,3), (C,5) yields A, C, B.
//
// Insertion and lookup are linear scans over a doubly linked list
// (package list); removal of the head is O(1).
//
// # Iteration
//
// GetFirst and GetNext walk the queue with a single internal cursor. Any
// structural change (Insert, Remove, RemoveElement, ChangePriority, Clear,
// Copy) resets the cursor, after which GetNext reports nothing until
// GetFirst is called again. All offers a range-over-func view that does not
// touch the cursor.
//
// # Errors
//
// Mutating operations return nil on success or an error matching one of
// ErrNullArgument, ErrOutOfMemory or ErrElementDoesNotExist under
// errors.Is. ResultOf maps an error to the corresponding Result code. On
// failure the queue is left exactly as it was.
//
// A Queue is not safe for concurrent use.
//
// Basic usage:
//
//	q, err := pqueue.New(pqueue.ValueBehaviors[string, int]())
//	if err != nil {
//	    return err
//	}
//
//	_ = q.Insert("A", 5)
//	_ = q.Insert("B", 3)
//	_ = q.Insert("C", 5)
//
//	for e, ok := q.GetFirst(); ok; e, ok = q.GetNext() {
//	    fmt.Println(e) // A, C, B
//	}
package pqueue
