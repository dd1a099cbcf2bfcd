package immutable

import (
	"maps"
	"reflect"
)

// Merge overlays partial onto original and returns a new map. original may
// be a map with string keys, an *Object or an *Instance; anything else is
// treated as empty. Slices in partial replace the current value wholesale,
// objects are merged recursively and every other value is assigned as is.
// Neither argument is modified, and nothing is validated or frozen.
func Merge(original any, partial map[string]any) map[string]any {
	out, ok := fieldsOf(original)
	if !ok || out == nil {
		out = make(map[string]any, len(partial))
	} else if _, isMap := original.(map[string]any); isMap {
		out = maps.Clone(out)
	}

	for k, v := range partial {
		if isList(v) {
			out[k] = v
			continue
		}
		if sub, ok := fieldsOf(v); ok {
			out[k] = Merge(out[k], sub)
			continue
		}
		out[k] = v
	}
	return out
}

func isList(v any) bool {
	if _, ok := v.(*List); ok {
		return true
	}
	k := reflect.ValueOf(v).Kind()
	return k == reflect.Slice || k == reflect.Array
}

// Patch returns a new instance holding the instance's values with partial
// overlaid (see Merge), validated and frozen by the instance's type. The
// receiver is never modified.
func (i *Instance) Patch(partial map[string]any) (*Instance, error) {
	return i.typ.New(Merge(i.obj.withShared(), partial))
}
