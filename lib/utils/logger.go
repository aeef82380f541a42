package utils

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SetupLogger returns a development logger filtered at level (DEBUG, INFO,
// WARN or ERROR). Unknown levels fall back to INFO.
func SetupLogger(level string) *zap.SugaredLogger {
	cfg := zap.NewDevelopmentConfig()
	atomic, err := zap.ParseAtomicLevel(level)
	if err != nil {
		atomic = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}
	cfg.Level = atomic
	logger := zap.Must(cfg.Build())
	return logger.Sugar()
}
