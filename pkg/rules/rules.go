package rules

import (
	"fmt"
	"maps"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/immutable"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

type rule struct {
	name    string
	source  string
	program *vm.Program
}

// Rules is a named set of boolean expressions evaluated against an object's
// fields. It is safe for concurrent use.
type Rules struct {
	name   string
	source map[string]string
	rules  []rule
}

// New compiles every expression in set. Each must evaluate to a bool; the
// fields of the validated object are its variables, and missing fields are nil.
func New(name string, set map[string]string) (*Rules, error) {
	if len(set) == 0 {
		return nil, fmt.Errorf("%w: %s: no rules", ErrInvalidSchema, name)
	}

	r := &Rules{
		name:   name,
		source: maps.Clone(set),
		rules:  make([]rule, 0, len(set)),
	}
	for _, key := range slices.Sorted(maps.Keys(set)) {
		program, err := expr.Compile(set[key], expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %w", ErrInvalidRule, name, key, err)
		}
		r.rules = append(r.rules, rule{name: key, source: set[key], program: program})
	}
	return r, nil
}

// Validator adapts New to immutable.NewValidatorFunc. The schema may be a
// map[string]string or a map[string]any holding strings.
func Validator(name string, schema any) (immutable.Validator, error) {
	set, err := ruleSet(name, schema)
	if err != nil {
		return nil, err
	}
	r, err := New(name, set)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func ruleSet(name string, schema any) (map[string]string, error) {
	switch s := schema.(type) {
	case map[string]string:
		return s, nil
	case map[string]any:
		out := make(map[string]string, len(s))
		for k, v := range s {
			src, ok := v.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s.%s: expected string, got %T", ErrInvalidSchema, name, k, v)
			}
			out[k] = src
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s: got %T", ErrInvalidSchema, name, schema)
	}
}

// Name returns the rule set name.
func (r *Rules) Name() string { return r.name }

// Schema returns a copy of the rule expressions keyed by rule name.
func (r *Rules) Schema() any { return maps.Clone(r.source) }

// Validate runs every rule. It never replaces the input, so the returned
// value is always nil. A rule that is false or fails to evaluate is reported
// under the field Name.rule.
func (r *Rules) Validate(input any) (any, error) {
	env, ok := immutable.Plain(input).(map[string]any)
	if !ok {
		errs := validator.Collect(validator.Typed(r.name, input, "object", func(any) bool { return false }))
		return nil, fmt.Errorf("%w %s: %w", ErrInvalid, r.name, errs)
	}

	var errs validator.ValidationErrors
	for _, rl := range r.rules {
		field := r.name + "." + rl.name
		out, err := expr.Run(rl.program, env)
		if err != nil {
			errs.Merge(validator.Collect(validator.Failed(field, err)))
			continue
		}
		if passed, _ := out.(bool); !passed {
			errs.Add(validator.ValidationError{
				Field:          field,
				Message:        "must satisfy " + rl.source,
				TranslationKey: "validation.rule",
				TranslationValues: map[string]any{
					"field": field,
					"rule":  rl.source,
				},
			})
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("%w %s: %w", ErrInvalid, r.name, errs)
	}
	return nil, nil
}
