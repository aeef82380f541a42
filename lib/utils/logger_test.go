package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"
)

func TestSetupLoggerLevels(t *testing.T) {
	testCases := []struct {
		level   string
		enabled zapcore.Level
		muted   zapcore.Level
	}{
		{level: "DEBUG", enabled: zapcore.DebugLevel, muted: zapcore.DebugLevel - 1},
		{level: "INFO", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
		{level: "WARN", enabled: zapcore.WarnLevel, muted: zapcore.InfoLevel},
		{level: "bogus", enabled: zapcore.InfoLevel, muted: zapcore.DebugLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			core := SetupLogger(tc.level).Desugar().Core()
			assert.True(t, core.Enabled(tc.enabled))
			assert.False(t, core.Enabled(tc.muted))
		})
	}
}
