package blueprint

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/immutable/pkg/validator"
)

func compile(key string, descriptor any, o options) (check, error) {
	switch d := descriptor.(type) {
	case string:
		return compileTag(d, o)
	case *regexp.Regexp:
		if d == nil {
			return nil, fmt.Errorf("%w: nil pattern", ErrUnsupportedDescriptor)
		}
		return required(patternCheck(d), false), nil
	case Func:
		return funcCheck(d), nil
	case func(Context) (any, error):
		return funcCheck(d), nil
	case *Blueprint:
		if d == nil {
			return nil, fmt.Errorf("%w: nil blueprint", ErrUnsupportedDescriptor)
		}
		return required(objectCheck(d), false), nil
	case map[string]any:
		nested, err := New(key, d, WithRegistry(o.registry))
		if err != nil {
			return nil, err
		}
		return required(objectCheck(nested), false), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedDescriptor, descriptor)
	}
}

// compileTag parses "<base>[][?]" where base is a built-in type name, the
// name of a registered blueprint or a /pattern/.
func compileTag(tag string, o options) (check, error) {
	t := strings.TrimSpace(tag)
	optional := strings.HasSuffix(t, "?")
	t = strings.TrimSuffix(t, "?")
	isList := strings.HasSuffix(t, "[]")
	t = strings.TrimSuffix(t, "[]")

	base, err := baseCheck(t, o)
	if err != nil {
		return nil, err
	}

	c := base
	if isList {
		c = listCheck(required(base, false))
	}
	return required(c, optional), nil
}

func baseCheck(tag string, o options) (check, error) {
	if len(tag) > 1 && strings.HasPrefix(tag, "/") && strings.HasSuffix(tag, "/") {
		re, err := regexp.Compile(tag[1 : len(tag)-1])
		if err != nil {
			return nil, err
		}
		return patternCheck(re), nil
	}

	switch tag {
	case "uuid":
		return uuidCheck, nil
	case "email":
		return emailCheck, nil
	}

	if pred, ok := builtinTypes[tag]; ok {
		return typeCheck(tag, pred), nil
	}

	if bp, ok := o.registry.Lookup(tag); ok {
		return objectCheck(bp), nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownType, tag)
}

// required rejects nil and missing values unless optional is set, in which
// case they are passed through without running c.
func required(c check, optional bool) check {
	return func(field string, value any, present bool, parent any) (any, validator.ValidationErrors) {
		if value == nil {
			if optional {
				return nil, nil
			}
			return nil, validator.Collect(validator.Present(field, value, present))
		}
		return c(field, value, present, parent)
	}
}

func typeCheck(name string, pred func(any) bool) check {
	return func(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
		if errs := validator.Collect(validator.Typed(field, value, name, pred)); len(errs) > 0 {
			return nil, errs
		}
		return value, nil
	}
}

func patternCheck(re *regexp.Regexp) check {
	return func(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
		s, ok := asString(value)
		if !ok {
			return nil, validator.Collect(validator.Typed(field, value, "string", isString))
		}
		if errs := validator.Collect(validator.MatchesPattern(field, s, re)); len(errs) > 0 {
			return nil, errs
		}
		return value, nil
	}
}

func uuidCheck(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
	if id, ok := value.(uuid.UUID); ok {
		return value, validator.Collect(validator.NonNilUUID(field, id))
	}
	s, ok := asString(value)
	if !ok {
		return nil, validator.Collect(validator.Typed(field, value, "uuid", isString))
	}
	if errs := validator.Collect(validator.ValidUUID(field, s)); len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

func emailCheck(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
	s, ok := asString(value)
	if !ok {
		return nil, validator.Collect(validator.Typed(field, value, "email", isString))
	}
	if errs := validator.Collect(validator.ValidEmail(field, s)); len(errs) > 0 {
		return nil, errs
	}
	return value, nil
}

func objectCheck(bp *Blueprint) check {
	return func(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
		return bp.validateAt(field, value)
	}
}

func listCheck(elem check) check {
	return func(field string, value any, _ bool, _ any) (any, validator.ValidationErrors) {
		items, ok := asList(value)
		if !ok {
			return nil, validator.Collect(validator.Typed(field, value, "array", isList))
		}

		out := make([]any, len(items))
		var errs validator.ValidationErrors
		for i, item := range items {
			v, ierrs := elem(fmt.Sprintf("%s[%d]", field, i), item, true, value)
			if len(ierrs) > 0 {
				errs.Merge(ierrs)
				continue
			}
			out[i] = v
		}
		if len(errs) > 0 {
			return nil, errs
		}
		return out, nil
	}
}

func funcCheck(fn Func) check {
	return func(field string, value any, present bool, parent any) (any, validator.ValidationErrors) {
		ctx := Context{
			Key:     field[strings.LastIndexByte(field, '.')+1:],
			Field:   field,
			Value:   value,
			Present: present,
			Input:   parent,
		}

		out, err := fn(ctx)
		if err != nil {
			if errs := validator.ExtractValidationErrors(err); len(errs) > 0 {
				return nil, errs
			}
			return nil, validator.Collect(validator.Failed(field, err))
		}
		if out == nil {
			return value, nil
		}
		return out, nil
	}
}
