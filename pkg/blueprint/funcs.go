package blueprint

import (
	"time"

	"github.com/dmitrymomot/immutable/pkg/sanitizer"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

// Gt accepts numbers strictly greater than n.
func Gt(n float64) Func {
	return numeric(func(field string, v float64) validator.Rule {
		return validator.GreaterThan(field, v, n)
	})
}

// Gte accepts numbers greater than or equal to n.
func Gte(n float64) Func {
	return numeric(func(field string, v float64) validator.Rule {
		return validator.MinNum(field, v, n)
	})
}

// Lt accepts numbers strictly less than n.
func Lt(n float64) Func {
	return numeric(func(field string, v float64) validator.Rule {
		return validator.LessThan(field, v, n)
	})
}

// Lte accepts numbers less than or equal to n.
func Lte(n float64) Func {
	return numeric(func(field string, v float64) validator.Rule {
		return validator.MaxNum(field, v, n)
	})
}

// Range accepts numbers in [min, max].
func Range(min, max float64) Func {
	return numeric(func(field string, v float64) validator.Rule {
		return validator.Between(field, v, min, max)
	})
}

func numeric(rule func(field string, v float64) validator.Rule) Func {
	return func(ctx Context) (any, error) {
		n, ok := asFloat(ctx.Value)
		if !ok {
			return nil, validator.Apply(validator.Typed(ctx.Field, ctx.Value, "number", isNumber))
		}
		return ctx.Value, validator.Apply(rule(ctx.Field, n))
	}
}

// MinLength accepts strings with at least n characters and lists with at
// least n elements.
func MinLength(n int) Func {
	return func(ctx Context) (any, error) {
		if s, ok := asString(ctx.Value); ok {
			return ctx.Value, validator.Apply(validator.MinLenString(ctx.Field, s, n))
		}
		if items, ok := asList(ctx.Value); ok {
			return ctx.Value, validator.Apply(validator.MinLenSlice(ctx.Field, items, n))
		}
		return nil, validator.Apply(validator.Typed(ctx.Field, ctx.Value, "string or array", isSized))
	}
}

// MaxLength accepts strings with at most n characters and lists with at most
// n elements.
func MaxLength(n int) Func {
	return func(ctx Context) (any, error) {
		if s, ok := asString(ctx.Value); ok {
			return ctx.Value, validator.Apply(validator.MaxLenString(ctx.Field, s, n))
		}
		if items, ok := asList(ctx.Value); ok {
			return ctx.Value, validator.Apply(validator.MaxLenSlice(ctx.Field, items, n))
		}
		return nil, validator.Apply(validator.Typed(ctx.Field, ctx.Value, "string or array", isSized))
	}
}

func isSized(v any) bool {
	return isString(v) || isList(v)
}

// OneOf accepts values equal to one of values.
func OneOf(values ...any) Func {
	return func(ctx Context) (any, error) {
		return ctx.Value, validator.Apply(validator.InList(ctx.Field, ctx.Value, values))
	}
}

// After accepts dates later than t.
func After(t time.Time) Func {
	return date(func(field string, v time.Time) validator.Rule {
		return validator.DateAfter(field, v, t)
	})
}

// Before accepts dates earlier than t.
func Before(t time.Time) Func {
	return date(func(field string, v time.Time) validator.Rule {
		return validator.DateBefore(field, v, t)
	})
}

func date(rule func(field string, v time.Time) validator.Rule) Func {
	return func(ctx Context) (any, error) {
		var t time.Time
		switch v := ctx.Value.(type) {
		case time.Time:
			t = v
		case *time.Time:
			if v == nil {
				return nil, validator.Apply(validator.Present(ctx.Field, nil, ctx.Present))
			}
			t = *v
		default:
			return nil, validator.Apply(validator.Typed(ctx.Field, ctx.Value, "date", isDate))
		}
		return ctx.Value, validator.Apply(rule(ctx.Field, t))
	}
}

// Optional runs fn only when the value is present and not nil.
func Optional(fn Func) Func {
	return func(ctx Context) (any, error) {
		if ctx.Value == nil {
			return nil, nil
		}
		return fn(ctx)
	}
}

// Default replaces a missing or nil value with v.
func Default(v any) Func {
	return func(ctx Context) (any, error) {
		if ctx.Value == nil {
			return v, nil
		}
		return ctx.Value, nil
	}
}

// All runs every fn in order, feeding each the value returned by the previous one.
func All(fns ...Func) Func {
	return func(ctx Context) (any, error) {
		for _, fn := range fns {
			out, err := fn(ctx)
			if err != nil {
				return nil, err
			}
			if out != nil {
				ctx.Value = out
			}
		}
		return ctx.Value, nil
	}
}

// Sanitize applies transforms to string values, for example
// Sanitize(sanitizer.Trim, sanitizer.ToLower).
func Sanitize(transforms ...func(string) string) Func {
	return func(ctx Context) (any, error) {
		s, ok := asString(ctx.Value)
		if !ok {
			return nil, validator.Apply(validator.Typed(ctx.Field, ctx.Value, "string", isString))
		}
		return sanitizer.Apply(s, transforms...), nil
	}
}
