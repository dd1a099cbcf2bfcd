package immutable

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"

	jsonpatch "github.com/evanphx/json-patch"
	"gopkg.in/yaml.v3"

	"github.com/dmitrymomot/immutable/pkg/logger"
)

// serializable is the form used for JSON and YAML output. Functions have no
// encoding and are left out.
var serializable = toObjectOptions{removeFunctions: true, deepArrays: true}

// MarshalJSON encodes the object's own fields.
func (o *Object) MarshalJSON() ([]byte, error) {
	return json.Marshal(o.toObject(serializable))
}

// MarshalYAML implements yaml.Marshaler.
func (o *Object) MarshalYAML() (any, error) {
	return o.toObject(serializable), nil
}

// MarshalJSON encodes the list elements.
func (l *List) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.toSlice(serializable))
}

// MarshalYAML implements yaml.Marshaler.
func (l *List) MarshalYAML() (any, error) {
	return l.toSlice(serializable), nil
}

// MarshalJSON encodes the instance's own fields.
func (i *Instance) MarshalJSON() ([]byte, error) {
	return i.obj.MarshalJSON()
}

// MarshalYAML implements yaml.Marshaler.
func (i *Instance) MarshalYAML() (any, error) {
	return i.obj.MarshalYAML()
}

// ParseJSON decodes a JSON object and builds an instance from it.
func (t *Type) ParseJSON(data []byte) (*Instance, error) {
	var input any
	if err := json.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, t.name, err)
	}
	return t.New(input)
}

// ParseYAML decodes a YAML mapping and builds an instance from it.
func (t *Type) ParseYAML(data []byte) (*Instance, error) {
	var input any
	if err := yaml.Unmarshal(data, &input); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, t.name, err)
	}
	return t.New(input)
}

// ApplyJSONPatch applies an RFC 6902 JSON Patch to the instance's JSON form
// and builds a new instance from the result. The receiver is never modified.
// Only JSON-shaped data survives the round trip: function fields are
// dropped and dates come back as strings. A number keeps the Go kind the
// receiver held at the same path when it converts exactly; new numbers are
// float64.
func (i *Instance) ApplyJSONPatch(ops []byte) (*Instance, error) {
	doc, err := i.MarshalJSON()
	if err != nil {
		return nil, err
	}

	patch, err := jsonpatch.DecodePatch(ops)
	if err != nil {
		i.typ.log.Debug("json patch rejected", logger.Schema(i.typ.name), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}
	out, err := patch.Apply(doc)
	if err != nil {
		i.typ.log.Debug("json patch rejected", logger.Schema(i.typ.name), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	return i.fromPatched(out)
}

// MergePatchJSON applies an RFC 7396 JSON Merge Patch to the instance's
// JSON form and builds a new instance from the result. It has the same
// limits as ApplyJSONPatch.
func (i *Instance) MergePatchJSON(patch []byte) (*Instance, error) {
	doc, err := i.MarshalJSON()
	if err != nil {
		return nil, err
	}

	out, err := jsonpatch.MergePatch(doc, patch)
	if err != nil {
		i.typ.log.Debug("merge patch rejected", logger.Schema(i.typ.name), logger.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrInvalidPatch, err)
	}

	return i.fromPatched(out)
}

func (i *Instance) fromPatched(data []byte) (*Instance, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, i.typ.name, err)
	}
	return i.typ.New(restoreNumbers(doc, i.obj))
}

// restoreNumbers converts decoded float64 values back to the numeric kind
// prev holds at the same path. v is modified in place.
func restoreNumbers(v, prev any) any {
	switch t := v.(type) {
	case map[string]any:
		var obj *Object
		switch p := prev.(type) {
		case *Object:
			obj = p
		case *Instance:
			obj = p.obj
		}
		if obj == nil {
			return t
		}
		for k, x := range t {
			if old, ok := obj.fields[k]; ok {
				t[k] = restoreNumbers(x, old)
			}
		}
		return t
	case []any:
		l, ok := prev.(*List)
		if !ok {
			return t
		}
		for idx := range min(len(t), len(l.items)) {
			t[idx] = restoreNumbers(t[idx], l.items[idx])
		}
		return t
	case float64:
		return numberLike(t, prev)
	default:
		return v
	}
}

func numberLike(f float64, prev any) any {
	rv := reflect.ValueOf(prev)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return f
		}
		n := int64(f)
		if float64(n) != f || rv.OverflowInt(n) {
			return f
		}
		return reflect.ValueOf(n).Convert(rv.Type()).Interface()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if f < 0 || f >= math.MaxUint64 {
			return f
		}
		n := uint64(f)
		if float64(n) != f || rv.OverflowUint(n) {
			return f
		}
		return reflect.ValueOf(n).Convert(rv.Type()).Interface()
	case reflect.Float32:
		if float64(float32(f)) != f {
			return f
		}
		return reflect.ValueOf(f).Convert(rv.Type()).Interface()
	case reflect.Float64:
		return reflect.ValueOf(f).Convert(rv.Type()).Interface()
	default:
		return f
	}
}
