package validator

import "fmt"

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}

// GreaterThan validates that a numeric value is strictly greater than the bound.
func GreaterThan[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value > bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be greater than %v", bound),
			TranslationKey: "validation.gt",
			TranslationValues: map[string]any{
				"field": field,
				"bound": bound,
			},
		},
	}
}

// LessThan validates that a numeric value is strictly less than the bound.
func LessThan[T Numeric](field string, value T, bound T) Rule {
	return Rule{
		Check: func() bool {
			return value < bound
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be less than %v", bound),
			TranslationKey: "validation.lt",
			TranslationValues: map[string]any{
				"field": field,
				"bound": bound,
			},
		},
	}
}

// Between validates that min <= value <= max.
func Between[T Numeric](field string, value T, min T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min && value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be between %v and %v", min, max),
			TranslationKey: "validation.between",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
				"max":   max,
			},
		},
	}
}
