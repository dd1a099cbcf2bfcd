package immutable

import (
	"iter"
	"maps"
	"slices"
)

// Object is a frozen map node. It has no mutating methods; values handed in
// were copied on construction and values handed out by ToObject are fresh
// copies.
type Object struct {
	fields map[string]any
	keys   []string
	shared *sharedTable
}

func (o *Object) immutable() {}

// Get returns the value stored under key. Function fields of a type created
// with WithFunctionsOnPrototype are resolved here even though they are not
// own fields.
func (o *Object) Get(key string) (any, bool) {
	if v, ok := o.fields[key]; ok {
		return v, true
	}
	if o.shared != nil {
		return o.shared.get(key)
	}
	return nil, false
}

// Has reports whether Get would find key.
func (o *Object) Has(key string) bool {
	_, ok := o.Get(key)
	return ok
}

// Keys returns the own field names in sorted order.
func (o *Object) Keys() []string {
	return slices.Clone(o.keys)
}

// Len returns the number of own fields.
func (o *Object) Len() int {
	return len(o.keys)
}

// All iterates over own fields in key order.
func (o *Object) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range o.keys {
			if !yield(k, o.fields[k]) {
				return
			}
		}
	}
}

// Object returns the nested object stored under key.
func (o *Object) Object(key string) (*Object, bool) {
	v, _ := o.Get(key)
	switch t := v.(type) {
	case *Object:
		return t, true
	case *Instance:
		return t.obj, true
	default:
		return nil, false
	}
}

// List returns the nested list stored under key.
func (o *Object) List(key string) (*List, bool) {
	v, _ := o.Get(key)
	l, ok := v.(*List)
	return l, ok
}

// Equal reports whether o and other hold equal values. See Equal.
func (o *Object) Equal(other any) bool {
	return Equal(o, other)
}

// Diff returns a human-readable report of the differences between o and other.
func (o *Object) Diff(other any) string {
	return Diff(o, other)
}

func (o *Object) own() map[string]any {
	return maps.Clone(o.fields)
}

// withShared returns the own fields plus the shared functions that are not
// shadowed by an own field. Nested objects carrying shared functions are
// expanded the same way.
func (o *Object) withShared() map[string]any {
	out := o.own()
	if out == nil {
		out = make(map[string]any)
	}
	if o.shared == nil {
		return out
	}
	for k, v := range out {
		if sub, ok := v.(*Object); ok && sub.shared != nil {
			out[k] = sub.withShared()
		}
	}
	for k, fn := range o.shared.snapshot() {
		if _, ok := out[k]; !ok {
			out[k] = fn
		}
	}
	return out
}
