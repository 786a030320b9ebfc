package log_test

import (
	"testing"

	"github.com/on-the-ground/lazy_ive_go/shared/config"
	"github.com/on-the-ground/lazy_ive_go/shared/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew_FromConfig(t *testing.T) {
	logger, err := log.New(config.LogConfig{Level: "warn", Encoding: "console"})
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
}

func TestNew_RejectsUnknownLevel(t *testing.T) {
	_, err := log.New(config.LogConfig{Level: "loud", Encoding: "json"})
	assert.Error(t, err)
}

func TestNewTest_IsDebugEnabled(t *testing.T) {
	assert.True(t, log.NewTest().Core().Enabled(zapcore.DebugLevel))
}

func TestEmit_DispatchesByLevel(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	log.Emit(logger, log.LogDebug, "d", zap.Int("n", 1))
	log.Emit(logger, log.LogInfo, "i")
	log.Emit(logger, log.LogWarn, "w")
	log.Emit(logger, log.LogError, "e")
	log.Emit(logger, log.LogLevel("other"), "o")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	want := []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.WarnLevel, zapcore.ErrorLevel, zapcore.InfoLevel}
	for i, e := range entries {
		assert.Equal(t, want[i], e.Level)
	}
	assert.Equal(t, int64(1), entries[0].ContextMap()["n"])
}
