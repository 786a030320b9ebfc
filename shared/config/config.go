// Package config holds the tunables of the lazy sequence engine.
package config

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/multierr"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidCacheSize = errors.New("config: invalid cache size")
	ErrInvalidLogLevel  = errors.New("config: invalid log level")
	ErrInvalidEncoding  = errors.New("config: invalid log encoding")
	ErrConfigParse      = errors.New("config: parse error")
)

const (
	DefaultCacheMaxSize        = 1024
	DefaultCacheDecreaseSize   = 256
	DefaultCacheOffsetIncrease = 256
	DefaultRecallSize          = 512
)

type Config struct {
	Cache CacheConfig `yaml:"cache"`
	Log   LogConfig   `yaml:"log"`
}

// CacheConfig bounds the memoization window of every sequence.
type CacheConfig struct {
	// MaxSize is the cache length that triggers eviction.
	MaxSize int `yaml:"max_size"`
	// DecreaseSize is how many of the oldest elements one eviction drops.
	DecreaseSize int `yaml:"decrease_size"`
	// OffsetIncrease is how far one eviction advances the logical offset.
	OffsetIncrease int `yaml:"offset_increase"`
	// RecallSize bounds the table serving reads behind the window.
	RecallSize int `yaml:"recall_size"`
}

type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

func Default() Config {
	return Config{
		Cache: DefaultCache(),
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
	}
}

func DefaultCache() CacheConfig {
	return CacheConfig{
		MaxSize:        DefaultCacheMaxSize,
		DecreaseSize:   DefaultCacheDecreaseSize,
		OffsetIncrease: DefaultCacheOffsetIncrease,
		RecallSize:     DefaultRecallSize,
	}
}

// Parse reads YAML over the defaults, so absent fields keep their
// default values, then validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to load config from file %s: %w", path, err)
	}
	return Parse(data)
}

// Validate reports every violated constraint at once.
func (c Config) Validate() error {
	return multierr.Append(c.Cache.Validate(), c.Log.Validate())
}

func (c CacheConfig) Validate() error {
	var err error
	if c.MaxSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: max_size %d must be positive", ErrInvalidCacheSize, c.MaxSize))
	}
	if c.DecreaseSize <= 0 || c.DecreaseSize > c.MaxSize {
		err = multierr.Append(err, fmt.Errorf("%w: decrease_size %d must be in (0, max_size]", ErrInvalidCacheSize, c.DecreaseSize))
	}
	if c.OffsetIncrease != c.DecreaseSize {
		err = multierr.Append(err, fmt.Errorf("%w: offset_increase %d must equal decrease_size %d",
			ErrInvalidCacheSize, c.OffsetIncrease, c.DecreaseSize))
	}
	if c.RecallSize <= 0 {
		err = multierr.Append(err, fmt.Errorf("%w: recall_size %d must be positive", ErrInvalidCacheSize, c.RecallSize))
	}
	return err
}

func (c LogConfig) Validate() error {
	var err error
	if _, perr := zapcore.ParseLevel(c.Level); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.Level))
	}
	switch c.Encoding {
	case "json", "console":
	default:
		err = multierr.Append(err, fmt.Errorf("%w: %q", ErrInvalidEncoding, c.Encoding))
	}
	return err
}
