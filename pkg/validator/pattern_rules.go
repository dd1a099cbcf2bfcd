package validator

import (
	"fmt"
	"regexp"
)

// MatchesPattern validates a string against a precompiled expression.
func MatchesPattern(field, value string, pattern *regexp.Regexp) Rule {
	return Rule{
		Check: func() bool {
			return pattern != nil && pattern.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must match %s", pattern),
			TranslationKey: "validation.regex_pattern",
			TranslationValues: map[string]any{
				"field":   field,
				"pattern": fmt.Sprint(pattern),
			},
		},
	}
}
