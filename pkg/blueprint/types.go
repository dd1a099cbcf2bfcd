package blueprint

import (
	"encoding/json"
	"math"
	"reflect"
	"regexp"
	"time"
)

// objectReader is satisfied by frozen objects.
type objectReader interface {
	Get(key string) (any, bool)
	Keys() []string
}

// listReader is satisfied by frozen lists.
type listReader interface {
	Len() int
	At(i int) any
}

var builtinTypes = map[string]func(any) bool{
	"any":      func(any) bool { return true },
	"string":   isString,
	"number":   isNumber,
	"decimal":  isNumber,
	"int":      isInt,
	"boolean":  isBool,
	"bool":     isBool,
	"date":     isDate,
	"regexp":   isRegexp,
	"function": isFunc,
	"object":   isObject,
	"array":    isList,
}

func isString(v any) bool {
	_, ok := asString(v)
	return ok
}

func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func isNumber(v any) bool {
	_, ok := asFloat(v)
	return ok
}

// asFloat converts any Go numeric kind or json.Number to float64.
func asFloat(v any) (float64, bool) {
	if n, ok := v.(json.Number); ok {
		f, err := n.Float64()
		return f, err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}

func isInt(v any) bool {
	if n, ok := v.(json.Number); ok {
		_, err := n.Int64()
		return err == nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return !math.IsInf(f, 0) && f == math.Trunc(f)
	}
	f, ok := asFloat(v)
	return ok && f == math.Trunc(f)
}

func isBool(v any) bool {
	return reflect.ValueOf(v).Kind() == reflect.Bool
}

func isDate(v any) bool {
	switch t := v.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	default:
		return false
	}
}

func isRegexp(v any) bool {
	re, ok := v.(*regexp.Regexp)
	return ok && re != nil
}

func isFunc(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Func && !rv.IsNil()
}

func isObject(v any) bool {
	_, ok := asObject(v)
	return ok
}

func isList(v any) bool {
	_, ok := asList(v)
	return ok
}

// asObject returns a field accessor for maps with string keys and frozen objects.
func asObject(v any) (func(string) (any, bool), bool) {
	switch t := v.(type) {
	case map[string]any:
		return func(k string) (any, bool) {
			x, ok := t[k]
			return x, ok
		}, true
	case objectReader:
		return t.Get, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String {
		return nil, false
	}
	keyType := rv.Type().Key()
	return func(k string) (any, bool) {
		e := rv.MapIndex(reflect.ValueOf(k).Convert(keyType))
		if !e.IsValid() {
			return nil, false
		}
		return e.Interface(), true
	}, true
}

// asList returns the elements of slices, arrays and frozen lists.
func asList(v any) ([]any, bool) {
	switch t := v.(type) {
	case []any:
		return t, true
	case listReader:
		out := make([]any, t.Len())
		for i := range out {
			out[i] = t.At(i)
		}
		return out, true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return nil, false
	}
	out := make([]any, rv.Len())
	for i := range out {
		out[i] = rv.Index(i).Interface()
	}
	return out, true
}
