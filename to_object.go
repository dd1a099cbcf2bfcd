package immutable

// ToObjectOption configures ToObject.
type ToObjectOption func(*toObjectOptions)

type toObjectOptions struct {
	removeFunctions bool
	deepArrays      bool
}

// RemoveFunctions drops function-valued fields from the result.
func RemoveFunctions() ToObjectOption {
	return func(o *toObjectOptions) {
		o.removeFunctions = true
	}
}

// DeepArrays converts nested lists and the objects inside them as well.
// Without it lists are copied into []any but their elements stay frozen.
func DeepArrays() ToObjectOption {
	return func(o *toObjectOptions) {
		o.deepArrays = true
	}
}

// ToObject returns a new mutable map with the object's own fields. Nested
// objects are converted recursively. Changing the result never affects o.
func (o *Object) ToObject(opts ...ToObjectOption) map[string]any {
	var cfg toObjectOptions
	for _, opt := range opts {
		opt(&cfg)
	}
	return o.toObject(cfg)
}

func (o *Object) toObject(cfg toObjectOptions) map[string]any {
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		if cfg.removeFunctions && isFunc(v) {
			continue
		}
		out[k] = unfreeze(v, cfg)
	}
	return out
}

func (l *List) toSlice(cfg toObjectOptions) []any {
	out := make([]any, len(l.items))
	for i, v := range l.items {
		out[i] = unfreeze(v, cfg)
	}
	return out
}

func unfreeze(v any, cfg toObjectOptions) any {
	switch t := v.(type) {
	case *Object:
		return t.toObject(cfg)
	case *Instance:
		return t.obj.toObject(cfg)
	case *List:
		if cfg.deepArrays {
			return t.toSlice(cfg)
		}
		return t.Slice()
	default:
		return v
	}
}
