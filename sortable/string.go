package sortable

type String string

var _ Sortable[String] = (*String)(nil)

func (s String) Equals(other String) bool {
	return string(s) == string(other)
}

// LessThan orders strings bytewise.
func (s String) LessThan(other String) bool {
	return string(s) < string(other)
}
