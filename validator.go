package immutable

import (
	"fmt"

	"github.com/dmitrymomot/immutable/pkg/blueprint"
)

// Validator checks input before it is frozen. Validate returns an error for
// rejected input. It may return a replacement value (defaults, coercions);
// a nil value with a nil error accepts the input unchanged.
type Validator interface {
	Validate(input any) (any, error)
}

// ValidatorFunc adapts a function to the Validator interface.
type ValidatorFunc func(input any) (any, error)

// Validate calls f(input).
func (f ValidatorFunc) Validate(input any) (any, error) {
	return f(input)
}

// NewValidatorFunc builds the Validator for a named schema.
type NewValidatorFunc func(name string, schema any) (Validator, error)

// Descriptor is an already built schema that validates on its own, such as a
// *blueprint.Blueprint or a *jsonschema.Schema.
type Descriptor interface {
	Validator
	Name() string
	Schema() any
}

// BlueprintValidator is the default NewValidatorFunc. It accepts a
// *blueprint.Blueprint, a map[string]any schema, or a YAML document given as
// []byte or string.
func BlueprintValidator(name string, schema any) (Validator, error) {
	switch s := schema.(type) {
	case *blueprint.Blueprint:
		if s == nil {
			return nil, ErrNilValidator
		}
		return s, nil
	case map[string]any:
		return blueprint.New(name, s)
	case []byte:
		return blueprint.FromYAML(name, s)
	case string:
		return blueprint.FromYAML(name, []byte(s))
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidSchema, schema)
	}
}
