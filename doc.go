// Package immutable builds validated, deeply immutable value objects from
// plain data.
//
// A Type pairs a schema name with a Validator. Type.New validates its input
// once, then freezes the result: maps become *Object, slices become *List,
// recursively, and the root becomes an *Instance. Frozen values have no
// mutating methods. Input is copied on the way in and ToObject returns a
// fresh map on the way out, so no caller-held reference can change an
// instance.
//
//	person := immutable.MustDefine("Person", blueprint.Schema{
//	    "firstName": "string",
//	    "lastName":  "string",
//	    "age":       blueprint.Gt(0),
//	})
//
//	john, err := person.New(map[string]any{
//	    "firstName": "John",
//	    "lastName":  "Doe",
//	    "age":       21,
//	})
//	if err != nil {
//	    return err
//	}
//
//	older, err := john.Patch(map[string]any{"age": 22})
//	// john still has age 21
//
// # Validators
//
// The default Factory compiles schemas with pkg/blueprint. WithValidator
// swaps in another NewValidatorFunc, such as the JSON Schema adapter in
// pkg/jsonschema or the expression rules in pkg/rules. Validation errors are
// returned unchanged, so they can be inspected with
// validator.ExtractValidationErrors. Names that are not Go identifiers fail
// with ErrInvalidName before any validator is built.
//
// # Updates
//
// Patch overlays a partial map on an instance (see Merge) and runs the
// result through Type.New again. ApplyJSONPatch and MergePatchJSON do the
// same with RFC 6902 and RFC 7396 documents. The receiver is never changed.
//
// # Functions
//
// Function values are stored by reference and never wrapped. State captured
// by a closure stays mutable through other references to it. With
// WithFunctionsOnPrototype, function fields live in a table shared by all
// instances of a type and are left out of Keys, ToObject and Equal.
//
// Freezing does not detect cycles. A cyclic input exhausts the stack.
package immutable
