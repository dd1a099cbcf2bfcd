package immutable

import "iter"

// Instance is a validated, frozen object of a Type.
type Instance struct {
	obj *Object
	typ *Type
}

func (i *Instance) immutable() {}

// Type returns the type that built the instance.
func (i *Instance) Type() *Type { return i.typ }

// Name returns the schema name of the instance's type.
func (i *Instance) Name() string { return i.typ.name }

// Schema returns the schema of the instance's type.
func (i *Instance) Schema() any { return i.typ.Schema() }

// Get returns the value stored under key. See Object.Get.
func (i *Instance) Get(key string) (any, bool) { return i.obj.Get(key) }

// Has reports whether Get would find key.
func (i *Instance) Has(key string) bool { return i.obj.Has(key) }

// Keys returns the own field names in sorted order.
func (i *Instance) Keys() []string { return i.obj.Keys() }

// Len returns the number of own fields.
func (i *Instance) Len() int { return i.obj.Len() }

// All iterates over own fields in key order.
func (i *Instance) All() iter.Seq2[string, any] { return i.obj.All() }

// Object returns the nested object stored under key.
func (i *Instance) Object(key string) (*Object, bool) { return i.obj.Object(key) }

// List returns the nested list stored under key.
func (i *Instance) List(key string) (*List, bool) { return i.obj.List(key) }

// ToObject returns a mutable copy of the instance's own fields. See
// Object.ToObject for the options.
func (i *Instance) ToObject(opts ...ToObjectOption) map[string]any {
	return i.obj.ToObject(opts...)
}

// Equal reports whether i and other hold equal values. See Equal.
func (i *Instance) Equal(other any) bool { return Equal(i, other) }

// Diff returns a human-readable report of the differences between i and other.
func (i *Instance) Diff(other any) string { return Diff(i, other) }
