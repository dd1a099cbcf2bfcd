package jsonschema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/dmitrymomot/immutable"
	"github.com/dmitrymomot/immutable/pkg/validator"
)

// Schema is a compiled JSON Schema bound to a name.
type Schema struct {
	name   string
	raw    any
	schema *jsonschema.Schema
}

// New compiles schema, given as JSON bytes, a JSON string or a Go value that
// encodes to a JSON Schema document.
func New(name string, schema any) (*Schema, error) {
	data, err := document(schema)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}

	url := "mem://schemas/" + name + ".json"
	c := jsonschema.NewCompiler()
	if err := c.AddResource(url, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}
	compiled, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrInvalidSchema, name, err)
	}

	return &Schema{name: name, raw: schema, schema: compiled}, nil
}

func document(schema any) ([]byte, error) {
	switch s := schema.(type) {
	case []byte:
		return s, nil
	case json.RawMessage:
		return s, nil
	case string:
		return []byte(s), nil
	case nil:
		return nil, errors.New("schema is nil")
	default:
		return json.Marshal(s)
	}
}

// Validator adapts New to immutable.NewValidatorFunc:
//
//	f := immutable.NewFactory(immutable.WithValidator(jsonschema.Validator))
func Validator(name string, schema any) (immutable.Validator, error) {
	s, err := New(name, schema)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// Name returns the schema name.
func (s *Schema) Name() string { return s.name }

// Schema returns the schema document as it was given to New.
func (s *Schema) Schema() any { return s.raw }

// Validate checks the JSON form of input. It never replaces the input, so
// the returned value is always nil. Failures wrap ErrInvalid and a
// validator.ValidationErrors with one entry per failing location.
func (s *Schema) Validate(input any) (any, error) {
	data, err := json.Marshal(input)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnencodable, s.name, err)
	}
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnencodable, s.name, err)
	}

	err = s.schema.Validate(doc)
	if err == nil {
		return nil, nil
	}

	var verr *jsonschema.ValidationError
	if !errors.As(err, &verr) {
		return nil, err
	}

	var errs validator.ValidationErrors
	collect(s.name, verr, &errs)
	return nil, fmt.Errorf("%w %s: %w", ErrInvalid, s.name, errs)
}

// collect flattens the error tree into its leaves.
func collect(name string, e *jsonschema.ValidationError, errs *validator.ValidationErrors) {
	if len(e.Causes) == 0 {
		errs.Add(validator.ValidationError{
			Field:          fieldPath(name, e.InstanceLocation),
			Message:        e.Message,
			TranslationKey: "validation.schema",
			TranslationValues: map[string]any{
				"keyword": e.KeywordLocation,
			},
		})
		return
	}
	for _, cause := range e.Causes {
		collect(name, cause, errs)
	}
}

// fieldPath turns a JSON pointer such as /tags/1 into Name.tags[1].
func fieldPath(name, pointer string) string {
	var b strings.Builder
	b.WriteString(name)
	for _, seg := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		if seg == "" {
			continue
		}
		seg = strings.NewReplacer("~1", "/", "~0", "~").Replace(seg)
		if _, err := strconv.Atoi(seg); err == nil {
			b.WriteString("[" + seg + "]")
			continue
		}
		b.WriteString("." + seg)
	}
	return b.String()
}
