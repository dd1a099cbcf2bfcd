package blueprint

import (
	"fmt"
	"maps"
	"slices"

	"github.com/dmitrymomot/immutable/pkg/validator"
)

// Schema maps field names to descriptors.
type Schema = map[string]any

// Context describes the value handed to a Func descriptor.
type Context struct {
	// Key is the field name within its parent object.
	Key string
	// Field is the full path of the value, starting with the blueprint name.
	Field string
	// Value is the raw value, nil when the field is missing.
	Value any
	// Present reports whether the field exists on the parent object.
	Present bool
	// Input is the object holding the field.
	Input any
}

// Func validates a single value and may replace it. Returning a nil value
// with a nil error keeps the original value.
type Func func(ctx Context) (any, error)

// check validates one value found at field and returns its validated form.
type check func(field string, value any, present bool, parent any) (any, validator.ValidationErrors)

type compiledField struct {
	key   string
	check check
}

// Blueprint is a compiled schema. It is safe for concurrent use.
type Blueprint struct {
	name   string
	schema Schema
	fields []compiledField
}

// Option configures blueprint compilation.
type Option func(*options)

type options struct {
	registry *Registry
}

// WithRegistry resolves type tags that name other blueprints in r instead of
// the default registry.
func WithRegistry(r *Registry) Option {
	return func(o *options) {
		if r != nil {
			o.registry = r
		}
	}
}

// New compiles schema into a Blueprint named name.
//
// Descriptors may be a type tag ("string", "number?", "int[]", "Address",
// "/^[A-Z]+$/"), a *regexp.Regexp, a Func, a nested Schema or another
// *Blueprint.
func New(name string, schema Schema, opts ...Option) (*Blueprint, error) {
	if name == "" {
		return nil, ErrInvalidName
	}
	if schema == nil {
		return nil, fmt.Errorf("%w: %s: schema is nil", ErrInvalidSchema, name)
	}

	o := options{registry: defaultRegistry}
	for _, opt := range opts {
		opt(&o)
	}

	bp := &Blueprint{
		name:   name,
		schema: maps.Clone(schema),
		fields: make([]compiledField, 0, len(schema)),
	}

	for _, key := range slices.Sorted(maps.Keys(schema)) {
		c, err := compile(key, schema[key], o)
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvalidSchema, name, key, err)
		}
		bp.fields = append(bp.fields, compiledField{key: key, check: c})
	}

	return bp, nil
}

// MustNew is like New but panics on error.
func MustNew(name string, schema Schema, opts ...Option) *Blueprint {
	bp, err := New(name, schema, opts...)
	if err != nil {
		panic(err)
	}
	return bp
}

// Name returns the blueprint name.
func (bp *Blueprint) Name() string {
	return bp.name
}

// Schema returns a copy of the schema the blueprint was compiled from.
func (bp *Blueprint) Schema() any {
	return maps.Clone(bp.schema)
}

// Validate checks input against the blueprint. On success it returns a new
// map holding the schema's fields, with values possibly transformed by Func
// descriptors; fields that are not part of the schema are dropped. On failure
// the error wraps ErrInvalid and a validator.ValidationErrors with one entry
// per failing field.
func (bp *Blueprint) Validate(input any) (any, error) {
	out, errs := bp.validateAt(bp.name, input)
	if len(errs) > 0 {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalid, bp.name, errs)
	}
	return out, nil
}

func (bp *Blueprint) validateAt(path string, input any) (any, validator.ValidationErrors) {
	get, ok := asObject(input)
	if !ok {
		return nil, validator.Collect(validator.Typed(path, input, "object", isObject))
	}

	out := make(map[string]any, len(bp.fields))
	var errs validator.ValidationErrors

	for _, f := range bp.fields {
		value, present := get(f.key)
		v, ferrs := f.check(path+"."+f.key, value, present, input)
		if len(ferrs) > 0 {
			errs.Merge(ferrs)
			continue
		}
		if present || v != nil {
			out[f.key] = v
		}
	}

	return out, errs
}
