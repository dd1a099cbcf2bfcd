package immutable

import (
	"fmt"
	"log/slog"
	"maps"

	"github.com/dmitrymomot/immutable/pkg/logger"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

// Type builds validated instances of one named schema. It is safe for
// concurrent use.
type Type struct {
	name      string
	schema    any
	validator Validator
	shared    *sharedTable
	log       *slog.Logger
}

// TypeOption configures a Type.
type TypeOption func(*typeOptions)

type typeOptions struct {
	functionsOnPrototype bool
}

// WithFunctionsOnPrototype stores function-valued fields in a table shared by
// every instance of the type instead of on each instance. They stay readable
// through Get but are not own fields, so Keys, ToObject and Equal ignore them.
func WithFunctionsOnPrototype() TypeOption {
	return func(o *typeOptions) {
		o.functionsOnPrototype = true
	}
}

// Name returns the schema name.
func (t *Type) Name() string {
	return t.name
}

// Schema returns the schema the type was defined with.
func (t *Type) Schema() any {
	if m, ok := t.schema.(map[string]any); ok {
		return maps.Clone(m)
	}
	return t.schema
}

// New validates input and freezes the result. The validator runs exactly
// once and its error is returned unchanged. No instance is returned unless
// validation and freezing both succeed.
func (t *Type) New(input any) (*Instance, error) {
	value, err := t.validator.Validate(input)
	if err != nil {
		t.log.Debug("validation rejected",
			logger.Schema(t.name),
			logger.Fields(validator.ExtractValidationErrors(err).Fields()),
			logger.Error(err))
		return nil, err
	}
	if value == nil {
		value = input
	}

	fields, ok := fieldsOf(value)
	if !ok {
		return nil, fmt.Errorf("%w: %s: got %T", ErrNotObject, t.name, value)
	}

	if t.shared != nil {
		return &Instance{obj: sealShared(fields, t.shared), typ: t}, nil
	}

	b := newObjectBuilder(len(fields))
	for k, v := range fields {
		b.set(k, v)
	}
	return &Instance{obj: b.finalize(nil), typ: t}, nil
}

// sealShared freezes fields into an Object whose function fields move to
// table. Nested objects get the child table for their key, so a function
// at any depth is shared by every instance at the same path. Instances of
// other types keep their own layout.
func sealShared(fields map[string]any, table *sharedTable) *Object {
	b := newObjectBuilder(len(fields))
	for k, v := range fields {
		if isFunc(v) {
			table.set(k, v)
			continue
		}
		if sub, ok := nestedFields(v); ok {
			b.fields[k] = sealShared(sub, table.child(k))
			continue
		}
		b.set(k, v)
	}
	return b.finalize(table)
}

func nestedFields(v any) (map[string]any, bool) {
	switch t := v.(type) {
	case *Instance:
		return nil, false
	case *Object:
		return t.withShared(), true
	}
	return fieldsOf(v)
}

// MustNew is like New but panics on error.
func (t *Type) MustNew(input any) *Instance {
	inst, err := t.New(input)
	if err != nil {
		panic(err)
	}
	return inst
}
