// Package logger provides a zap-backed implementation of the ati.Logger
// interface for the CLI.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger adapts zap to the ati.Logger fields-map interface.
type Logger struct {
	zl *zap.Logger
}

// New creates a Logger writing JSON lines to stderr. With verbose set, debug
// level messages are emitted as well.
func New(verbose bool) *Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stderr)),
		level,
	)

	return &Logger{zl: zap.New(core)}
}

// Sync flushes any buffered log entries.
func (l *Logger) Sync() error {
	err := l.zl.Sync()
	if err != nil {
		return fmt.Errorf("syncing logger: %w", err)
	}

	return nil
}

// Debug implements ati.Logger.
func (l *Logger) Debug(msg string, fields map[string]interface{}) {
	l.zl.Debug(msg, toZapFields(fields)...)
}

// Info implements ati.Logger.
func (l *Logger) Info(msg string, fields map[string]interface{}) {
	l.zl.Info(msg, toZapFields(fields)...)
}

// Warn implements ati.Logger.
func (l *Logger) Warn(msg string, fields map[string]interface{}) {
	l.zl.Warn(msg, toZapFields(fields)...)
}

// Error implements ati.Logger.
func (l *Logger) Error(msg string, fields map[string]interface{}) {
	l.zl.Error(msg, toZapFields(fields)...)
}

func toZapFields(fields map[string]interface{}) []zap.Field {
	zapFields := make([]zap.Field, 0, len(fields))
	for key, value := range fields {
		zapFields = append(zapFields, zap.Any(key, value))
	}

	return zapFields
}
