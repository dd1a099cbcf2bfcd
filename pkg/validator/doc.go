// Package validator provides the rule primitives and the error model shared by
// every schema validator in this module.
//
// A Rule pairs a lazily evaluated Check with a ValidationError describing the
// failure. Rules are evaluated with Apply, which returns a ValidationErrors
// value implementing error, or with Collect when the caller keeps aggregating
// failures across nested values before deciding whether to fail.
//
// Rule families are grouped by file (`type_rules.go`, `numeric_rules.go`,
// `string_rules.go`, `date_rules.go`, ...). The blueprint, jsonschema and
// rules packages all report failures as ValidationErrors, so callers can
// inspect field-level problems the same way whichever validator was plugged
// into the immutable factory.
//
// # Usage
//
//	err := validator.Apply(
//	    validator.Present("Person.name", name, ok),
//	    validator.GreaterThan("Person.age", age, 0),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    for _, field := range verrs.Fields() {
//	        // ...
//	    }
//	}
//
// # Error Handling
//
// ValidationErrors survives wrapping: ExtractValidationErrors and
// IsValidationError use errors.As, so a validator may return
// fmt.Errorf("invalid %s: %w", name, errs) and callers still get the
// individual field errors back.
//
// The package is stateless and safe for concurrent use.
package validator
