package immutable_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutable"
	"github.com/dmitrymomot/immutable/pkg/config"
	"github.com/dmitrymomot/immutable/pkg/logger"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("IMMUTABLE_FUNCTIONS_ON_PROTOTYPE", "")
	os.Unsetenv("IMMUTABLE_FUNCTIONS_ON_PROTOTYPE")
	t.Setenv("IMMUTABLE_LOG_LEVEL", "")
	os.Unsetenv("IMMUTABLE_LOG_LEVEL")
	t.Setenv("IMMUTABLE_LOG_FORMAT", "")
	os.Unsetenv("IMMUTABLE_LOG_FORMAT")

	cfg, err := immutable.LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, immutable.Config{LogLevel: "info", LogFormat: "json"}, cfg)
}

func TestLoadConfig_Environment(t *testing.T) {
	t.Setenv("IMMUTABLE_FUNCTIONS_ON_PROTOTYPE", "true")
	t.Setenv("IMMUTABLE_LOG_LEVEL", "debug")
	t.Setenv("IMMUTABLE_LOG_FORMAT", "text")

	cfg, err := immutable.LoadConfig()
	require.NoError(t, err)
	assert.True(t, cfg.FunctionsOnPrototype)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)

	t.Setenv("IMMUTABLE_FUNCTIONS_ON_PROTOTYPE", "maybe")
	_, err = immutable.LoadConfig()
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoadConfig_EnvFile(t *testing.T) {
	t.Setenv("IMMUTABLE_LOG_LEVEL", "")
	os.Unsetenv("IMMUTABLE_LOG_LEVEL")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("IMMUTABLE_LOG_LEVEL=warn\n"), 0o600))

	cfg, err := immutable.LoadConfig(config.WithEnvFiles(path))
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestNewFactoryFromConfig(t *testing.T) {
	t.Parallel()

	t.Run("functions on prototype for every type", func(t *testing.T) {
		t.Parallel()

		f, err := immutable.NewFactoryFromConfig(
			immutable.Config{FunctionsOnPrototype: true, LogLevel: "info", LogFormat: "json"},
			immutable.WithLogger(logger.Discard()),
		)
		require.NoError(t, err)

		typ, err := f.Define("Callback", map[string]any{"run": "function", "id": "int"})
		require.NoError(t, err)
		inst, err := typ.New(map[string]any{"run": func() {}, "id": 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"id"}, inst.Keys())
		assert.True(t, inst.Has("run"))
	})

	t.Run("invalid level", func(t *testing.T) {
		t.Parallel()

		_, err := immutable.NewFactoryFromConfig(immutable.Config{LogLevel: "loud"})
		assert.Error(t, err)
	})

	t.Run("invalid format", func(t *testing.T) {
		t.Parallel()

		_, err := immutable.NewFactoryFromConfig(immutable.Config{LogFormat: "xml"})
		assert.Error(t, err)
	})
}

func TestNewFactoryFromEnv(t *testing.T) {
	t.Setenv("IMMUTABLE_FUNCTIONS_ON_PROTOTYPE", "false")
	t.Setenv("IMMUTABLE_LOG_LEVEL", "error")
	t.Setenv("IMMUTABLE_LOG_FORMAT", "text")

	f, err := immutable.NewFactoryFromEnv(immutable.WithLogger(logger.Discard()))
	require.NoError(t, err)

	typ, err := f.Define("Callback", map[string]any{"run": "function"})
	require.NoError(t, err)
	inst, err := typ.New(map[string]any{"run": func() {}})
	require.NoError(t, err)
	assert.Equal(t, []string{"run"}, inst.Keys())

	t.Setenv("IMMUTABLE_LOG_LEVEL", "loud")
	_, err = immutable.NewFactoryFromEnv()
	assert.Error(t, err)
}
