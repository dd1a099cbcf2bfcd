package validator

import (
	"fmt"
	"time"
)

func DateAfter(field string, value time.Time, after time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.After(after)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must be after %s", after.Format(time.RFC3339)),
			TranslationKey: "validation.date_after",
			TranslationValues: map[string]any{
				"field": field,
				"after": after.Format(time.RFC3339),
			},
		},
	}
}

func DateBefore(field string, value time.Time, before time.Time) Rule {
	return Rule{
		Check: func() bool {
			return value.Before(before)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("date must be before %s", before.Format(time.RFC3339)),
			TranslationKey: "validation.date_before",
			TranslationValues: map[string]any{
				"field":  field,
				"before": before.Format(time.RFC3339),
			},
		},
	}
}
