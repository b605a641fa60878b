// Package logging builds the zap loggers used by the card and its
// companion server.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EncoderConfig is the console encoding shared by every sink. Timestamps are
// left out: browser consoles and journald add their own.
func EncoderConfig() zapcore.EncoderConfig {
	cfg := zap.NewDevelopmentEncoderConfig()
	cfg.TimeKey = ""
	cfg.CallerKey = ""
	cfg.EncodeLevel = zapcore.CapitalLevelEncoder
	return cfg
}

// Level returns DebugLevel when debug is set, InfoLevel otherwise.
func Level(debug bool) zapcore.Level {
	if debug {
		return zapcore.DebugLevel
	}
	return zapcore.InfoLevel
}

// New returns a sugared logger writing console-encoded lines to w.
func New(w io.Writer, debug bool) *zap.SugaredLogger {
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(EncoderConfig()),
		zapcore.AddSync(w),
		Level(debug),
	)
	return zap.New(core).Sugar()
}

// FromEnv logs to stderr, at debug level when LOG_LEVEL=debug.
func FromEnv() *zap.SugaredLogger {
	return New(os.Stderr, os.Getenv("LOG_LEVEL") == "debug")
}

// Nop discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
