package immutable

import (
	"github.com/dmitrymomot/immutable/pkg/config"
	"github.com/dmitrymomot/immutable/pkg/logger"
)

// EnvPrefix prefixes every environment variable read by LoadConfig.
const EnvPrefix = "IMMUTABLE_"

// Config holds factory settings read from the environment.
type Config struct {
	// FunctionsOnPrototype applies WithFunctionsOnPrototype to every type.
	FunctionsOnPrototype bool   `env:"FUNCTIONS_ON_PROTOTYPE" envDefault:"false"`
	LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat            string `env:"LOG_FORMAT" envDefault:"json"`
}

// LoadConfig reads Config from IMMUTABLE_* environment variables and any
// .env files passed with config.WithEnvFiles.
func LoadConfig(opts ...config.Option) (Config, error) {
	var cfg Config
	opts = append([]config.Option{config.WithPrefix(EnvPrefix)}, opts...)
	if err := config.Load(&cfg, opts...); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFactoryFromConfig creates a Factory that logs to stderr at the configured
// level and format. opts are applied last and may override the logger.
func NewFactoryFromConfig(cfg Config, opts ...Option) (*Factory, error) {
	level, err := logger.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, err
	}

	base := []Option{
		WithLogger(logger.New(
			logger.WithLevel(level),
			logger.WithFormat(format),
			logger.WithComponent("immutable"),
		)),
	}
	if cfg.FunctionsOnPrototype {
		base = append(base, WithTypeOptions(WithFunctionsOnPrototype()))
	}

	return NewFactory(append(base, opts...)...), nil
}

// NewFactoryFromEnv is LoadConfig followed by NewFactoryFromConfig.
func NewFactoryFromEnv(opts ...Option) (*Factory, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	return NewFactoryFromConfig(cfg, opts...)
}
