// Package array provides non-mutating equivalents of the in-place slice
// operations that arrays usually offer (push, pop, shift, unshift, sort,
// reverse, splice) together with slice, remove and copy.
//
// Every operation reads the source slice and returns a freshly allocated one;
// the source is never written to, so the helpers can be used on slices taken
// from frozen values or shared between goroutines.
//
//	ops := array.Of([]int{3, 1, 2})
//	ops.Push(4, 5)      // [3 1 2 4 5]
//	ops.Splice(1, 1, 9) // [3 9 2]
//	ops.Sort()          // [1 2 3]
//
// Index arguments follow the usual array conventions: a negative start or end
// counts back from the end of the slice and every bound is clamped to the
// slice length, so no operation panics on an out-of-range index.
package array
