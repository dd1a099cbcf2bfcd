package rules

import "errors"

var (
	// ErrInvalid prefixes every validation failure returned by Validate.
	ErrInvalid = errors.New("invalid")

	// ErrInvalidRule is returned when a rule expression does not compile.
	ErrInvalidRule = errors.New("invalid rule")

	// ErrInvalidSchema is returned when the rule set is not a map of names to expressions.
	ErrInvalidSchema = errors.New("invalid rule set")
)
