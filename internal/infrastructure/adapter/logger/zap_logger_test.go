package logger

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/amirhossein-jamali/statement-processor/internal/domain/port/core"
	"github.com/amirhossein-jamali/statement-processor/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]core.LogLevel{
		"debug":   core.LogLevelDebug,
		"INFO":    core.LogLevelInfo,
		"warn":    core.LogLevelWarn,
		"warning": core.LogLevelWarn,
		"error":   core.LogLevelError,
		"":        core.LogLevelInfo,
		"verbose": core.LogLevelInfo,
	}

	for name, want := range tests {
		assert.Equal(t, want, ParseLevel(name), name)
	}
}

func TestZapLogger_LevelFiltering(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerWithCore(obsCore, core.LogLevelWarn)

	l.Debug("debug message", nil)
	l.Info("info message", nil)
	l.Warn("warn message", map[string]any{"document": "march.pdf"})
	l.Error("error message", map[string]any{"error": errors.New("boom")})

	require.Equal(t, 2, logs.Len())
	entries := logs.All()
	assert.Equal(t, "warn message", entries[0].Message)
	assert.Equal(t, "march.pdf", entries[0].ContextMap()["document"])
	assert.Equal(t, "boom", entries[1].ContextMap()["error"])
}

func TestZapLogger_SetLevel(t *testing.T) {
	obsCore, logs := observer.New(zapcore.DebugLevel)
	l := NewZapLoggerWithCore(obsCore, core.LogLevelInfo)

	l.Debug("hidden", nil)
	l.SetLevel(core.LogLevelDebug)
	assert.Equal(t, core.LogLevelDebug, l.GetLevel())
	l.Debug("shown", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "shown", logs.All()[0].Message)
}

func TestNewZapLogger_FromConfig(t *testing.T) {
	l, err := NewZapLogger(config.LoggerConfig{
		Level:  "error",
		Format: "json",
		Output: "stderr",
	})
	require.NoError(t, err)
	assert.Equal(t, core.LogLevelError, l.GetLevel())
}
