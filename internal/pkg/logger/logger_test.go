package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Run("json logger at configured level", func(t *testing.T) {
		log := Init(Config{Level: "warn", Format: "json"})

		require.NotNil(t, log)
		assert.Same(t, log, Log)
		assert.Equal(t, zapcore.WarnLevel, Level())
		assert.False(t, log.Core().Enabled(zapcore.InfoLevel))
		assert.True(t, log.Core().Enabled(zapcore.ErrorLevel))
	})

	t.Run("console logger", func(t *testing.T) {
		log := Init(Config{Level: "debug", Format: "console"})

		require.NotNil(t, log)
		assert.Equal(t, zapcore.DebugLevel, Level())
	})
}

func TestSetLevel(t *testing.T) {
	log := Init(Config{Level: "info"})

	t.Run("changes level of existing loggers", func(t *testing.T) {
		assert.False(t, log.Core().Enabled(zapcore.DebugLevel))

		got := SetLevel("debug")

		assert.Equal(t, zapcore.DebugLevel, got)
		assert.True(t, log.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("unknown names fall back to info", func(t *testing.T) {
		got := SetLevel("verbose")

		assert.Equal(t, zapcore.InfoLevel, got)
		assert.Equal(t, zapcore.InfoLevel, Level())
	})
}
