package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/immutable/pkg/config"
)

type testConfig struct {
	Name    string   `env:"NAME" envDefault:"default_value"`
	Count   int      `env:"COUNT" envDefault:"42"`
	Enabled bool     `env:"ENABLED" envDefault:"true"`
	Tags    []string `env:"TAGS" envSeparator:","`
}

type requiredConfig struct {
	Required string `env:"REQUIRED_VALUE,required"`
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Success(t *testing.T) {
	t.Setenv("CFGTEST_NAME", "test_value")
	t.Setenv("CFGTEST_COUNT", "100")
	t.Setenv("CFGTEST_ENABLED", "false")
	t.Setenv("CFGTEST_TAGS", "a,b")

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_"))

	require.NoError(t, err)
	assert.Equal(t, "test_value", cfg.Name)
	assert.Equal(t, 100, cfg.Count)
	assert.False(t, cfg.Enabled)
	assert.Equal(t, []string{"a", "b"}, cfg.Tags)
}

func TestLoad_DefaultValues(t *testing.T) {
	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGTEST_UNSET_"))

	require.NoError(t, err)
	assert.Equal(t, "default_value", cfg.Name)
	assert.Equal(t, 42, cfg.Count)
	assert.True(t, cfg.Enabled)
	assert.Empty(t, cfg.Tags)
}

func TestLoad_ObservesEnvironmentChanges(t *testing.T) {
	t.Setenv("CFGRELOAD_NAME", "first")

	var cfg testConfig
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGRELOAD_")))
	assert.Equal(t, "first", cfg.Name)

	t.Setenv("CFGRELOAD_NAME", "second")
	require.NoError(t, config.Load(&cfg, config.WithPrefix("CFGRELOAD_")))
	assert.Equal(t, "second", cfg.Name)
}

func TestLoad_MissingRequired(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg, config.WithPrefix("CFGMISSING_"))

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("CFGBAD_COUNT", "many")

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGBAD_"))
	assert.ErrorIs(t, err, config.ErrParsingConfig)
}

func TestLoad_NilPointer(t *testing.T) {
	t.Parallel()

	var cfg *testConfig
	assert.ErrorIs(t, config.Load(cfg), config.ErrNilPointer)
}

func TestLoad_EnvFiles(t *testing.T) {
	first := writeEnvFile(t, "CFGFILE_NAME=from_first\nCFGFILE_COUNT=7\n")
	second := writeEnvFile(t, "CFGFILE_NAME=from_second\nCFGFILE_ENABLED=false\n")
	t.Setenv("CFGFILE_COUNT", "9")

	var cfg testConfig
	err := config.Load(&cfg, config.WithPrefix("CFGFILE_"), config.WithEnvFiles(first, second))

	require.NoError(t, err)
	assert.Equal(t, "from_first", cfg.Name)
	assert.Equal(t, 9, cfg.Count, "process environment wins over files")
	assert.False(t, cfg.Enabled)

	_, set := os.LookupEnv("CFGFILE_NAME")
	assert.False(t, set, "files must not leak into the process environment")
}

func TestLoad_MissingEnvFile(t *testing.T) {
	t.Parallel()

	var cfg testConfig
	err := config.Load(&cfg, config.WithEnvFiles(filepath.Join(t.TempDir(), "missing.env")))
	assert.ErrorIs(t, err, config.ErrLoadingEnvFile)
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		var cfg requiredConfig
		assert.Panics(t, func() {
			config.MustLoad(&cfg, config.WithPrefix("CFGMUST_"))
		})
	})

	t.Run("loads", func(t *testing.T) {
		t.Setenv("CFGMUST_REQUIRED_VALUE", "set")
		var cfg requiredConfig
		assert.NotPanics(t, func() {
			config.MustLoad(&cfg, config.WithPrefix("CFGMUST_"))
		})
		assert.Equal(t, "set", cfg.Required)
	})
}
