package immutable

import "errors"

var (
	// ErrInvalidName is returned when a schema name is not a valid Go identifier.
	ErrInvalidName = errors.New("invalid schema name")

	// ErrNotObject is returned when a validated value is not object-shaped.
	ErrNotObject = errors.New("value is not an object")

	// ErrInvalidSchema is returned when the default validator cannot use a schema.
	ErrInvalidSchema = errors.New("unsupported schema")

	// ErrNilValidator is returned when no validator is available for a type.
	ErrNilValidator = errors.New("validator is nil")

	// ErrDecode is returned when JSON or YAML input cannot be decoded.
	ErrDecode = errors.New("cannot decode input")

	// ErrInvalidPatch is returned when a JSON patch document cannot be decoded or applied.
	ErrInvalidPatch = errors.New("invalid patch")
)
