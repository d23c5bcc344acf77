// Package iter provides a minimal pull-based iterator abstraction: a lazy,
// finite sequence producer that cannot be restarted once exhausted.
package iter

// Iter produces the elements of a sequence one at a time. Next returns the
// next element and true, or the zero value and false once the sequence is
// exhausted. An exhausted iterator keeps returning false.
type Iter[T any] interface {
	Next() (T, bool)
}

// Range iterates the ascending integers of [start, end).
type Range struct {
	current uint32
	end     uint32
}

// NewRange returns an iterator over [start, end). An empty or inverted
// range yields nothing.
func NewRange(start, end uint32) *Range {
	return &Range{current: start, end: end}
}

// Next implements Iter.
func (r *Range) Next() (uint32, bool) {
	if r.current >= r.end {
		return 0, false
	}
	v := r.current
	r.current++
	return v, true
}

// List is a node in a singly linked list.
type List[T any] struct {
	Next *List[T]
	Data T
}

// ListIter walks a linked list from a root node, yielding each node in
// order.
type ListIter[T any] struct {
	current *List[T]
}

// NewListIter returns an iterator positioned at root. A nil root yields
// nothing.
func NewListIter[T any](root *List[T]) *ListIter[T] {
	return &ListIter[T]{current: root}
}

// Next implements Iter.
func (it *ListIter[T]) Next() (*List[T], bool) {
	node := it.current
	if node == nil {
		return nil, false
	}
	it.current = node.Next
	return node, true
}

// Collect drains it into a slice.
func Collect[T any](it Iter[T]) []T {
	var out []T
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out
}

// Compile-time interface checks
var (
	_ Iter[uint32]     = (*Range)(nil)
	_ Iter[*List[int]] = (*ListIter[int])(nil)
)
