// Package logger builds the diagnostic logger used by loading and commands.
// Reports never go through it.
package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a console logger writing to stderr. quiet discards everything;
// verbose lowers the level from warn to debug.
func New(quiet, verbose bool) (*zap.Logger, error) {
	if quiet {
		return zap.NewNop(), nil
	}

	cfg := zap.NewDevelopmentConfig()
	cfg.Level = zap.NewAtomicLevelAt(Level(verbose))
	cfg.OutputPaths = []string{"stderr"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableStacktrace = true
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

// Level is the minimum level New logs at.
func Level(verbose bool) zapcore.Level {
	if verbose {
		return zap.DebugLevel
	}
	return zap.WarnLevel
}
