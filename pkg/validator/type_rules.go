package validator

import "fmt"

// Present validates that a field was supplied and is not nil.
func Present(field string, value any, present bool) Rule {
	return Rule{
		Check: func() bool {
			return present && value != nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        ErrFieldRequired.Error(),
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}

// Typed validates a value against a named type using the supplied check.
// The check runs lazily, when the rule is applied.
func Typed(field string, value any, expected string, check func(any) bool) Rule {
	return Rule{
		Check: func() bool {
			return check(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("expected %s, got %T", expected, value),
			TranslationKey: "validation.type",
			TranslationValues: map[string]any{
				"field":    field,
				"expected": expected,
				"actual":   fmt.Sprintf("%T", value),
			},
		},
	}
}

// Failed wraps an arbitrary error produced while validating a field.
func Failed(field string, err error) Rule {
	return Rule{
		Check: func() bool {
			return err == nil
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprint(err),
			TranslationKey: "validation.invalid",
			TranslationValues: map[string]any{
				"field": field,
			},
		},
	}
}
