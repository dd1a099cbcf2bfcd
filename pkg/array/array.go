package array

import (
	"fmt"
	"slices"
	"strings"
)

// Ops is bound to a source slice. The zero value is bound to an empty slice.
type Ops[T any] struct {
	src []T
}

// Of binds the operations to s. The slice is read, never written.
func Of[T any](s []T) Ops[T] {
	return Ops[T]{src: s}
}

// Push returns a copy with items appended.
func (o Ops[T]) Push(items ...T) []T {
	out := make([]T, 0, len(o.src)+len(items))
	out = append(out, o.src...)
	return append(out, items...)
}

// Pop returns a copy without the last element.
func (o Ops[T]) Pop() []T {
	if len(o.src) == 0 {
		return []T{}
	}
	return clone(o.src[:len(o.src)-1])
}

// Shift returns a copy without the first element.
func (o Ops[T]) Shift() []T {
	if len(o.src) == 0 {
		return []T{}
	}
	return clone(o.src[1:])
}

// Unshift returns a copy with items prepended.
func (o Ops[T]) Unshift(items ...T) []T {
	out := make([]T, 0, len(o.src)+len(items))
	out = append(out, items...)
	return append(out, o.src...)
}

// Sort returns a stably sorted copy. Without a comparator elements are
// ordered by their string form, so 10 sorts before 9.
func (o Ops[T]) Sort(compare ...func(a, b T) int) []T {
	cmp := compareStrings[T]
	if len(compare) > 0 && compare[0] != nil {
		cmp = compare[0]
	}

	out := clone(o.src)
	slices.SortStableFunc(out, cmp)
	return out
}

// Reverse returns a reversed copy.
func (o Ops[T]) Reverse() []T {
	out := clone(o.src)
	slices.Reverse(out)
	return out
}

// Splice returns a copy with deleteCount elements removed at start and items
// inserted in their place.
func (o Ops[T]) Splice(start, deleteCount int, items ...T) []T {
	n := len(o.src)
	start = relative(start, n)
	deleteCount = max(0, min(deleteCount, n-start))

	out := make([]T, 0, n-deleteCount+len(items))
	out = append(out, o.src[:start]...)
	out = append(out, items...)
	return append(out, o.src[start+deleteCount:]...)
}

// Slice returns a copy of the elements between the optional start and end
// bounds, end exclusive.
func (o Ops[T]) Slice(bounds ...int) []T {
	n := len(o.src)
	start, end := 0, n
	if len(bounds) > 0 {
		start = relative(bounds[0], n)
	}
	if len(bounds) > 1 {
		end = relative(bounds[1], n)
	}
	if end <= start {
		return []T{}
	}
	return clone(o.src[start:end])
}

// Remove returns a copy without the element at index. An index outside the
// slice yields an unchanged copy.
func (o Ops[T]) Remove(index int) []T {
	if index < 0 || index >= len(o.src) {
		return o.Copy()
	}

	out := make([]T, 0, len(o.src)-1)
	out = append(out, o.src[:index]...)
	return append(out, o.src[index+1:]...)
}

// Copy returns a shallow clone. It is never nil.
func (o Ops[T]) Copy() []T {
	return clone(o.src)
}

func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)
	return out
}

func relative(i, n int) int {
	if i < 0 {
		return max(0, n+i)
	}
	return min(i, n)
}

func compareStrings[T any](a, b T) int {
	return strings.Compare(fmt.Sprint(a), fmt.Sprint(b))
}
