//go:build js
// +build js

package logging

import (
	"strings"

	"github.com/gopherjs/gopherjs/js"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// consoleSink writes each encoded entry to one method of the browser
// console ("log", "warn", "error").
type consoleSink struct {
	method string
}

func (c consoleSink) Write(p []byte) (int, error) {
	js.Global.Get("console").Call(c.method, strings.TrimRight(string(p), "\n"))
	return len(p), nil
}

func (consoleSink) Sync() error { return nil }

// Console returns a WriteSyncer for console[method].
func Console(method string) zapcore.WriteSyncer {
	return consoleSink{method: method}
}

// NewBrowser logs to the developer console. Warnings go to console.warn,
// errors to console.error, everything else to console.log.
func NewBrowser(debug bool) *zap.SugaredLogger {
	enc := zapcore.NewConsoleEncoder(EncoderConfig())
	floor := Level(debug)

	low := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l >= floor && l < zapcore.WarnLevel
	})
	warn := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l == zapcore.WarnLevel
	})
	high := zap.LevelEnablerFunc(func(l zapcore.Level) bool {
		return l > zapcore.WarnLevel
	})

	return zap.New(zapcore.NewTee(
		zapcore.NewCore(enc, Console("log"), low),
		zapcore.NewCore(enc, Console("warn"), warn),
		zapcore.NewCore(enc, Console("error"), high),
	)).Sugar()
}
