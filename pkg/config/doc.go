// Package config loads configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for reading optional .env files:
//
//	type Config struct {
//	    FunctionsOnPrototype bool   `env:"FUNCTIONS_ON_PROTOTYPE"`
//	    LogLevel             string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg,
//	    config.WithPrefix("IMMUTABLE_"),
//	    config.WithEnvFiles(".env"),
//	); err != nil {
//	    return err
//	}
//
// Variables set in the process environment override values read from files.
// Failures wrap ErrParsingConfig or ErrLoadingEnvFile and can be checked with
// errors.Is.
package config
