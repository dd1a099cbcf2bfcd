package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures a single Load call.
type Option func(*options)

type options struct {
	prefix string
	files  []string
}

// WithPrefix only reads variables starting with prefix; field tags omit it.
func WithPrefix(prefix string) Option {
	return func(o *options) {
		o.prefix = prefix
	}
}

// WithEnvFiles reads additional variables from .env files. Variables already
// set in the process environment take precedence, and earlier files win over
// later ones.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		o.files = append(o.files, files...)
	}
}

// Load parses environment variables into the provided configuration struct
// based on its field tags. Nothing is cached, so every call observes the
// current environment.
//
// Example:
//
//	type Config struct {
//		FunctionsOnPrototype bool   `env:"FUNCTIONS_ON_PROTOTYPE" envDefault:"false"`
//		LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	err := config.Load(&cfg, config.WithPrefix("IMMUTABLE_"))
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	envOpts := env.Options{Prefix: o.prefix}
	if len(o.files) > 0 {
		vars, err := environ(o.files)
		if err != nil {
			return err
		}
		envOpts.Environment = vars
	}

	if err := env.ParseWithOptions(v, envOpts); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics if configuration loading fails.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(fmt.Sprintf("Failed to load required configuration: %v", err))
	}
}

// environ merges the process environment over the given .env files.
func environ(files []string) (map[string]string, error) {
	vars := make(map[string]string)
	for i := len(files) - 1; i >= 0; i-- {
		fileVars, err := godotenv.Read(files[i])
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %w", ErrLoadingEnvFile, files[i], err)
		}
		for k, val := range fileVars {
			vars[k] = val
		}
	}
	for _, kv := range os.Environ() {
		if k, val, ok := strings.Cut(kv, "="); ok {
			vars[k] = val
		}
	}
	return vars, nil
}
