package jsonschema

import "errors"

var (
	// ErrInvalid prefixes every validation failure returned by Validate.
	ErrInvalid = errors.New("invalid")

	// ErrInvalidSchema is returned when a schema document cannot be compiled.
	ErrInvalidSchema = errors.New("invalid json schema")

	// ErrUnencodable is returned when input has no JSON form.
	ErrUnencodable = errors.New("input cannot be encoded as json")
)
