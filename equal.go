package immutable

import (
	"reflect"
	"regexp"

	"github.com/google/go-cmp/cmp"
)

var compareOptions = cmp.Options{
	cmp.Comparer(func(a, b *regexp.Regexp) bool {
		if a == nil || b == nil {
			return a == b
		}
		return a.String() == b.String()
	}),
	cmp.FilterValues(func(a, b any) bool {
		return isFunc(a) && isFunc(b)
	}, cmp.Comparer(func(a, b any) bool {
		return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
	})),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal reports whether a and b hold deeply equal values. Frozen nodes are
// compared by content, so an *Instance equals the map it was built from.
// Regular expressions are equal when their patterns are, functions when they
// share the same code pointer, and times when time.Time.Equal says so.
// Shared functions of a WithFunctionsOnPrototype type are not compared.
func Equal(a, b any) bool {
	return cmp.Equal(Plain(a), Plain(b), compareOptions)
}

// Diff returns a human-readable report of the differences between a and b,
// or an empty string when they are equal.
func Diff(a, b any) string {
	return cmp.Diff(Plain(a), Plain(b), compareOptions)
}

// Plain returns a mutable deep copy of v in which every object is a
// map[string]any and every list a []any. Other values are returned as is.
func Plain(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case *Object:
		return t.toObject(toObjectOptions{deepArrays: true})
	case *Instance:
		return t.obj.toObject(toObjectOptions{deepArrays: true})
	case *List:
		return t.toSlice(toObjectOptions{deepArrays: true})
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, x := range t {
			out[k] = Plain(x)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, x := range t {
			out[i] = Plain(x)
		}
		return out
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		out := make(map[string]any, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[iter.Key().String()] = Plain(iter.Value().Interface())
		}
		return out
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = Plain(rv.Index(i).Interface())
		}
		return out
	default:
		return v
	}
}
