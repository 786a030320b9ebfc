package lazy

import (
	"github.com/on-the-ground/lazy_ive_go/shared/config"
	"go.uber.org/zap"
)

const recallShards = 4

type settings struct {
	cache  config.CacheConfig
	logger *zap.Logger
}

func defaultSettings() settings {
	return settings{
		cache:  config.DefaultCache(),
		logger: zap.NewNop(),
	}
}

// Option customizes a sequence built by a factory. Derived sequences
// inherit the settings of the sequence they were derived from.
type Option func(*settings)

// WithLogger routes the debug events of the sequence to logger.
func WithLogger(logger *zap.Logger) Option {
	return func(s *settings) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithConfig replaces the cache bounds. It panics if cfg is invalid.
func WithConfig(cfg config.CacheConfig) Option {
	if err := cfg.Validate(); err != nil {
		panic(err)
	}
	return func(s *settings) {
		s.cache = cfg
	}
}

func newSettings(opts []Option) settings {
	s := defaultSettings()
	for _, opt := range opts {
		opt(&s)
	}
	return s
}
