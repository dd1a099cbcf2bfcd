package immutable

import (
	"iter"
	"slices"

	"github.com/dmitrymomot/immutable/pkg/array"
)

// List is a frozen slice node.
type List struct {
	items []any
}

func (l *List) immutable() {}

// At returns the element at index i. It panics if i is out of range, like
// indexing a slice.
func (l *List) At(i int) any {
	return l.items[i]
}

// Len returns the number of elements.
func (l *List) Len() int {
	return len(l.items)
}

// All iterates over the elements in order.
func (l *List) All() iter.Seq2[int, any] {
	return slices.All(l.items)
}

// Slice returns a new slice holding the elements. Nested frozen values are
// shared, not copied.
func (l *List) Slice() []any {
	out := slices.Clone(l.items)
	if out == nil {
		out = []any{}
	}
	return out
}

// Ops returns the non-mutating array operations over the elements.
//
//	tags, _ := person.List("tags")
//	next := tags.Ops().Push("new")
func (l *List) Ops() array.Ops[any] {
	return array.Of(l.items)
}

// Equal reports whether l and other hold equal values. See Equal.
func (l *List) Equal(other any) bool {
	return Equal(l, other)
}
