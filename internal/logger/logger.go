// Package logger provides structured logging using zap.
package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Log is the global logger instance. It discards everything until Init runs.
var Log = zap.NewNop()

// Sugar is the sugared logger for convenient logging.
var Sugar = Log.Sugar()

// FileConfig holds rotating log file settings.
type FileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Compress   bool
}

// DefaultFileConfig returns rotation settings for a viewer session log.
func DefaultFileConfig(path string) FileConfig {
	return FileConfig{
		Path:       path,
		MaxSizeMB:  20,
		MaxBackups: 3,
		MaxAgeDays: 14,
		Compress:   true,
	}
}

// Init sets up console logging at the given level, plus a rotating file when
// logFile is not empty.
func Init(level string, logFile string) error {
	fileCfg := FileConfig{}
	if logFile != "" {
		fileCfg = DefaultFileConfig(logFile)
	}
	return InitWithFileConfig(level, fileCfg, true)
}

// InitWithFileConfig builds the global logger from explicit file settings.
// Tests pass consoleOutput=false to keep stdout clean.
func InitWithFileConfig(level string, fileCfg FileConfig, consoleOutput bool) error {
	lvl := parseLevel(level)

	var cores []zapcore.Core
	if consoleOutput {
		enc := encoderConfig()
		enc.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05.000")
		enc.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stdout), lvl))
	}

	if fileCfg.Path != "" {
		w := &lumberjack.Logger{
			Filename:   fileCfg.Path,
			MaxSize:    fileCfg.MaxSizeMB,
			MaxBackups: fileCfg.MaxBackups,
			MaxAge:     fileCfg.MaxAgeDays,
			Compress:   fileCfg.Compress,
			LocalTime:  true,
		}
		enc := encoderConfig()
		enc.EncodeTime = zapcore.ISO8601TimeEncoder
		enc.EncodeLevel = zapcore.CapitalLevelEncoder
		cores = append(cores, zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.AddSync(w), lvl))
	}

	set(zap.New(zapcore.NewTee(cores...), zap.AddCaller()))
	return nil
}

// InitNop installs a logger that drops every entry.
func InitNop() {
	set(zap.NewNop())
}

// Named returns a child of the global logger tagged with a component name,
// e.g. "renderer" or "assets".
func Named(component string) *zap.Logger {
	return Log.Named(component)
}

func set(l *zap.Logger) {
	Log = l
	Sugar = l.Sugar()
}

func encoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:          "time",
		LevelKey:         "level",
		NameKey:          "logger",
		MessageKey:       "msg",
		CallerKey:        "caller",
		EncodeCaller:     zapcore.ShortCallerEncoder,
		EncodeName:       zapcore.FullNameEncoder,
		EncodeDuration:   zapcore.StringDurationEncoder,
		ConsoleSeparator: " ",
	}
}

// parseLevel maps a config level name to a zap level; unknown names fall
// back to info.
func parseLevel(level string) zapcore.Level {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return zapcore.InfoLevel
	}
	return lvl
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = Log.Sync()
}

// Debug logs a debug message.
func Debug(msg string, fields ...zap.Field) {
	Log.Debug(msg, fields...)
}

// Info logs an info message.
func Info(msg string, fields ...zap.Field) {
	Log.Info(msg, fields...)
}

// Warn logs a warning message.
func Warn(msg string, fields ...zap.Field) {
	Log.Warn(msg, fields...)
}

// Error logs an error message.
func Error(msg string, fields ...zap.Field) {
	Log.Error(msg, fields...)
}

// Fatal logs a fatal message and exits.
func Fatal(msg string, fields ...zap.Field) {
	Log.Fatal(msg, fields...)
}
