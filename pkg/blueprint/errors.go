package blueprint

import "errors"

var (
	// ErrInvalid prefixes every validation failure returned by Validate.
	ErrInvalid = errors.New("invalid")

	// ErrInvalidName is returned when a blueprint is created without a name.
	ErrInvalidName = errors.New("blueprint name is required")

	// ErrInvalidSchema is returned when a schema cannot be compiled.
	ErrInvalidSchema = errors.New("invalid blueprint schema")

	// ErrUnknownType is returned for a type tag that is neither built in nor registered.
	ErrUnknownType = errors.New("unknown type")

	// ErrUnsupportedDescriptor is returned for a descriptor of an unsupported Go type.
	ErrUnsupportedDescriptor = errors.New("unsupported descriptor")

	// ErrAlreadyRegistered is returned when a registry already holds a blueprint with the same name.
	ErrAlreadyRegistered = errors.New("blueprint already registered")
)
