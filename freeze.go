package immutable

import (
	"maps"
	"reflect"
	"slices"
	"sync"
)

// node is implemented by every frozen value produced by this package.
type node interface {
	immutable()
}

// IsImmutable reports whether v is a frozen *Object, *List or *Instance.
func IsImmutable(v any) bool {
	_, ok := v.(node)
	return ok
}

// Freeze converts v into its immutable form. Maps with string keys become
// *Object, slices and arrays become *List, and both are processed
// recursively. Frozen values are returned as they are. Any other value,
// functions included, is stored by reference.
//
// Freeze does not detect cycles; a cyclic input never returns.
func Freeze(v any) any {
	return freezeValue(v)
}

func freezeValue(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case node:
		return t
	case map[string]any:
		b := newObjectBuilder(len(t))
		for k, x := range t {
			b.set(k, x)
		}
		return b.finalize(nil)
	case []any:
		items := make([]any, len(t))
		for i, x := range t {
			items[i] = freezeValue(x)
		}
		return &List{items: items}
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return v
		}
		b := newObjectBuilder(rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			b.set(iter.Key().String(), iter.Value().Interface())
		}
		return b.finalize(nil)
	case reflect.Slice, reflect.Array:
		items := make([]any, rv.Len())
		for i := range items {
			items[i] = freezeValue(rv.Index(i).Interface())
		}
		return &List{items: items}
	default:
		return v
	}
}

// objectBuilder collects the fields of an Object under construction. The
// Object only becomes visible once finalize seals it.
type objectBuilder struct {
	fields map[string]any
}

func newObjectBuilder(size int) *objectBuilder {
	return &objectBuilder{fields: make(map[string]any, size)}
}

func (b *objectBuilder) set(key string, value any) {
	b.fields[key] = freezeValue(value)
}

func (b *objectBuilder) finalize(shared *sharedTable) *Object {
	obj := &Object{
		fields: b.fields,
		keys:   slices.Sorted(maps.Keys(b.fields)),
		shared: shared,
	}
	b.fields = nil
	return obj
}

// fieldsOf returns the top-level fields of an object-shaped value.
func fieldsOf(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case map[string]any:
		return t, true
	case *Object:
		return t.own(), true
	case *Instance:
		return t.obj.own(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	out := make(map[string]any, rv.Len())
	iter := rv.MapRange()
	for iter.Next() {
		out[iter.Key().String()] = iter.Value().Interface()
	}
	return out, true
}

func isFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

// sharedTable holds the function fields of a type created with
// WithFunctionsOnPrototype. Every instance of the type resolves them from the
// same table, and the most recent construction wins.
type sharedTable struct {
	mu       sync.RWMutex
	funcs    map[string]any
	children map[string]*sharedTable
}

func newSharedTable() *sharedTable {
	return &sharedTable{funcs: make(map[string]any)}
}

// child returns the table for the nested object under key, creating it on
// first use.
func (s *sharedTable) child(key string) *sharedTable {
	s.mu.RLock()
	c, ok := s.children[key]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.children[key]; ok {
		return c
	}
	if s.children == nil {
		s.children = make(map[string]*sharedTable)
	}
	c = newSharedTable()
	s.children[key] = c
	return c
}

func (s *sharedTable) get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn, ok := s.funcs[key]
	return fn, ok
}

func (s *sharedTable) set(key string, fn any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.funcs[key] = fn
}

func (s *sharedTable) snapshot() map[string]any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.funcs)
}
