package immutable

import (
	"fmt"
	"go/token"
	"log/slog"
	"sync"

	"github.com/dmitrymomot/immutable/pkg/logger"
)

// Factory defines Types bound to one validator constructor and logger.
type Factory struct {
	newValidator NewValidatorFunc
	log          *slog.Logger
	typeOpts     []TypeOption
}

// Option configures a Factory.
type Option func(*Factory)

// WithValidator replaces the default BlueprintValidator.
func WithValidator(fn NewValidatorFunc) Option {
	return func(f *Factory) {
		f.newValidator = fn
	}
}

// WithLogger sets the logger for type definitions and rejected input.
// Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(f *Factory) {
		if l != nil {
			f.log = l
		}
	}
}

// WithTypeOptions applies opts to every Type the factory defines, before the
// options passed to Define.
func WithTypeOptions(opts ...TypeOption) Option {
	return func(f *Factory) {
		f.typeOpts = append(f.typeOpts, opts...)
	}
}

// NewFactory creates a Factory. Without options it validates with
// BlueprintValidator and discards logs.
func NewFactory(opts ...Option) *Factory {
	f := &Factory{
		newValidator: BlueprintValidator,
		log:          logger.Discard(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Define creates a Type for schema. The name must be a valid Go identifier;
// otherwise the error wraps ErrInvalidName. Errors from building the
// validator are returned unchanged.
func (f *Factory) Define(name string, schema any, opts ...TypeOption) (*Type, error) {
	if err := checkName(name); err != nil {
		f.log.Debug("invalid schema name", logger.Schema(name))
		return nil, err
	}
	if f.newValidator == nil {
		return nil, ErrNilValidator
	}

	v, err := f.newValidator(name, schema)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, fmt.Errorf("%w: %s", ErrNilValidator, name)
	}

	return f.newType(name, schema, v, opts), nil
}

// MustDefine is like Define but panics on error.
func (f *Factory) MustDefine(name string, schema any, opts ...TypeOption) *Type {
	t, err := f.Define(name, schema, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

// FromDescriptor creates a Type that validates with d directly. The name and
// schema are read from d.
func (f *Factory) FromDescriptor(d Descriptor, opts ...TypeOption) (*Type, error) {
	if d == nil {
		return nil, ErrNilValidator
	}
	name := d.Name()
	if err := checkName(name); err != nil {
		f.log.Debug("invalid schema name", logger.Schema(name))
		return nil, err
	}
	return f.newType(name, d.Schema(), d, opts), nil
}

func (f *Factory) newType(name string, schema any, v Validator, opts []TypeOption) *Type {
	var o typeOptions
	for _, opt := range f.typeOpts {
		opt(&o)
	}
	for _, opt := range opts {
		opt(&o)
	}

	t := &Type{
		name:      name,
		schema:    schema,
		validator: v,
		log:       f.log,
	}
	if o.functionsOnPrototype {
		t.shared = newSharedTable()
	}

	f.log.Debug("type defined",
		logger.Schema(name),
		slog.Bool("functions_on_prototype", o.functionsOnPrototype))
	return t
}

func checkName(name string) error {
	if !token.IsIdentifier(name) {
		return fmt.Errorf("%w: %q is not a valid identifier", ErrInvalidName, name)
	}
	return nil
}

var defaultFactory = sync.OnceValue(func() *Factory { return NewFactory() })

// DefaultFactory returns the process-wide Factory used by Define,
// MustDefine and FromDescriptor.
func DefaultFactory() *Factory {
	return defaultFactory()
}

// Define creates a Type with the default factory.
func Define(name string, schema any, opts ...TypeOption) (*Type, error) {
	return defaultFactory().Define(name, schema, opts...)
}

// MustDefine is like Define but panics on error.
func MustDefine(name string, schema any, opts ...TypeOption) *Type {
	return defaultFactory().MustDefine(name, schema, opts...)
}

// FromDescriptor creates a Type from d with the default factory.
func FromDescriptor(d Descriptor, opts ...TypeOption) (*Type, error) {
	return defaultFactory().FromDescriptor(d, opts...)
}
