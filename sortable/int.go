package sortable

// Int is an int ordered numerically. It is the usual priority type for
// pqueue.SortableCompare.
type Int int

var _ Sortable[Int] = Int(0)

// Equals reports whether i and other are the same number.
func (i Int) Equals(other Int) bool {
	return i == other
}

// LessThan reports whether i is numerically smaller than other.
func (i Int) LessThan(other Int) bool {
	return i < other
}
