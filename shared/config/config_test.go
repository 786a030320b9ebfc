package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/on-the-ground/lazy_ive_go/shared/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1024, cfg.Cache.MaxSize)
	assert.Equal(t, 256, cfg.Cache.DecreaseSize)
	assert.Equal(t, 256, cfg.Cache.OffsetIncrease)
	assert.Equal(t, 512, cfg.Cache.RecallSize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte(`
cache:
  max_size: 64
  decrease_size: 16
  offset_increase: 16
log:
  level: debug
`))
	require.NoError(t, err)
	assert.Equal(t, 64, cfg.Cache.MaxSize)
	assert.Equal(t, 16, cfg.Cache.DecreaseSize)
	assert.Equal(t, 512, cfg.Cache.RecallSize)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Encoding)
}

func TestParse_AggregatesViolations(t *testing.T) {
	_, err := config.Parse([]byte(`
cache:
  max_size: 0
  decrease_size: 8
  offset_increase: 4
  recall_size: -1
log:
  level: loud
  encoding: xml
`))
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidCacheSize)
	assert.ErrorIs(t, err, config.ErrInvalidLogLevel)
	assert.ErrorIs(t, err, config.ErrInvalidEncoding)
	assert.Len(t, multierr.Errors(err), 6)
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := config.Parse([]byte("cache: [unterminated"))
	assert.ErrorIs(t, err, config.ErrConfigParse)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lazy.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log:\n  encoding: console\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.Log.Encoding)
	assert.Equal(t, config.DefaultCache(), cfg.Cache)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
