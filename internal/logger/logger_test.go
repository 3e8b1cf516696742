package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestNewWithFormatLevels(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		" warn ":  zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"verbose": zapcore.InfoLevel,
	}
	for in, want := range tests {
		l := NewWithFormat(in, false)
		assert.True(t, l.sugar.Desugar().Core().Enabled(want), in)
		if want > zapcore.DebugLevel {
			assert.False(t, l.sugar.Desugar().Core().Enabled(want-1), in)
		}
	}
}

func TestNopAndWith(t *testing.T) {
	l := Nop().With("run_id", "abc")
	assert.NotNil(t, l)
	l.Info("discarded %d", 1)
	l.Debug("discarded")
	l.Warn("discarded")
	l.Error("discarded")
}
