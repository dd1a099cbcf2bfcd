// Package jsonschema validates immutable values against JSON Schema
// documents using github.com/santhosh-tekuri/jsonschema/v5.
//
// Input is validated in its JSON form, so frozen instances, maps and structs
// are all accepted:
//
//	f := immutable.NewFactory(immutable.WithValidator(jsonschema.Validator))
//	person, err := f.Define("Person", `{
//	    "type": "object",
//	    "required": ["firstName", "lastName", "age"],
//	    "properties": {
//	        "firstName": {"type": "string"},
//	        "lastName": {"type": "string"},
//	        "age": {"type": "integer", "minimum": 0}
//	    }
//	}`)
//
// Failures are reported as validator.ValidationErrors keyed by field path,
// for example Person.age or Person.tags[1].
package jsonschema
