package validator

import "fmt"

// InList validates that value equals one of the allowed values.
// Values are compared with ==, so non-comparable dynamic types never match.
func InList(field string, value any, allowedValues []any) Rule {
	return Rule{
		Check: func() bool {
			for _, allowed := range allowedValues {
				if safeEqual(value, allowed) {
					return true
				}
			}
			return false
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be one of: %v", allowedValues),
			TranslationKey: "validation.in_list",
			TranslationValues: map[string]any{
				"field":          field,
				"allowed_values": allowedValues,
			},
		},
	}
}

func safeEqual(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}
