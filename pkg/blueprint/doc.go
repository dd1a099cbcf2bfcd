// Package blueprint is the default structural validator used by the immutable
// factory. A blueprint is a named Schema compiled once and then used to check,
// and optionally transform, input objects.
//
// # Descriptors
//
// Every schema field maps to one descriptor:
//
//   - a type tag: any, string, number, decimal, int, boolean, date, regexp,
//     function, object, array, uuid, email, or the name of a registered
//     blueprint. A "[]" suffix means "array of", a trailing "?" makes the
//     field optional (missing or nil accepted): "string[]?".
//   - a pattern, either a *regexp.Regexp or a "/.../" tag: the value must be a
//     matching string.
//   - a Func, which receives a Context and may return a replacement value.
//     Gt, Gte, Lt, Lte, Range, MinLength, MaxLength, OneOf, After, Before,
//     Optional, Default and All build the common ones.
//   - a nested Schema or *Blueprint for nested objects.
//
// # Usage
//
//	person := blueprint.MustNew("Person", blueprint.Schema{
//	    "firstName": "string",
//	    "lastName":  "string",
//	    "age":       blueprint.Gt(0),
//	    "tags":      "string[]?",
//	})
//
//	value, err := person.Validate(input)
//
// Validate returns a fresh map restricted to the schema's fields. Failures are
// reported as one error wrapping ErrInvalid and a validator.ValidationErrors
// whose fields are dotted paths such as "Person.address.zip" or
// "Person.tags[2]".
//
// Besides maps, Validate reads any value exposing Get(string) (any, bool) and
// Keys() []string as an object and any value exposing Len() int and
// At(int) any as a list, so frozen values can be validated again directly.
//
// Blueprints are immutable after New and safe for concurrent use. The
// Registry is guarded by a mutex; tag names are resolved against it when the
// referring blueprint is compiled, so register nested blueprints first.
package blueprint
