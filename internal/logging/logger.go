// Package logging configures the process-wide zap logger. Output goes to
// a file under the app data directory, never to stdout or stderr, because
// the terminal is owned by the UI for the lifetime of the process.
package logging

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/strickvl/beemind/internal/config"
	"github.com/strickvl/beemind/internal/util"
)

// LogLevelEnvVar controls logging verbosity. When unset or empty, logging
// is silent. Valid values: "debug", "info", "warn", "error".
const LogLevelEnvVar = "BEEMIND_LOG_LEVEL"

var logger *zap.Logger

// Initialize creates the global logger at the given level. An empty level
// falls back to BEEMIND_LOG_LEVEL; if that is also unset, logging is
// disabled.
func Initialize(level string) error {
	if level == "" {
		level = os.Getenv(LogLevelEnvVar)
	}
	if level == "" {
		logger = zap.NewNop()
		return nil
	}

	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		zapLevel = zapcore.InfoLevel
	}

	dir := util.DataDir(config.AppName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	zapCfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{filepath.Join(dir, "beemind.log")},
		ErrorOutputPaths: []string{filepath.Join(dir, "beemind.log")},
	}
	zapCfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zapCfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder

	var err error
	logger, err = zapCfg.Build()
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	return nil
}

// InitializeFromEnv initializes the logger from BEEMIND_LOG_LEVEL.
func InitializeFromEnv() error {
	return Initialize("")
}

// GetLogger returns the global logger, a nop logger if never initialized.
func GetLogger() *zap.Logger {
	if logger == nil {
		logger = zap.NewNop()
	}
	return logger
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	GetLogger().Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	GetLogger().Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	GetLogger().Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	GetLogger().Error(msg, fields...)
}

// Sync flushes any buffered log entries.
func Sync() {
	if logger != nil {
		_ = logger.Sync()
	}
}
