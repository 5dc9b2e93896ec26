package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// CallerDisplayMode controls how the caller column is rendered
type CallerDisplayMode int

const (
	// CallerShort shows only filename:line (places_handlers.go:42)
	CallerShort CallerDisplayMode = iota
	// CallerMedium shows package/filename:line (handlers/places_handlers.go:42)
	CallerMedium
	// CallerFull shows full path
	CallerFull
)

const callerWidth = 28

var (
	Logger            *zap.Logger
	atomicLevel       = zap.NewAtomicLevelAt(zap.InfoLevel)
	callerDisplayMode = CallerShort
)

func init() {
	// usable before InitLogger, e.g. from tests
	Logger = zap.NewNop()
}

// InitLogger initializes the global logger.
// Development mode writes colored console output; production writes JSON to a
// rotated file and mirrors it on stdout.
func InitLogger(isDevelopment bool, logPath string, logLevel ...string) error {
	level := zap.InfoLevel
	if len(logLevel) > 0 && logLevel[0] != "" {
		level = parseLevel(logLevel[0])
	}
	atomicLevel.SetLevel(level)

	var logger *zap.Logger
	var err error
	if isDevelopment {
		logger, err = newDevelopmentLogger()
	} else {
		logger, err = NewProductionLogger(logPath)
	}
	if err != nil {
		return err
	}

	Logger = logger
	zap.ReplaceGlobals(logger)

	return nil
}

func newDevelopmentLogger() (*zap.Logger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig = encoderConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	config.Level = atomicLevel
	return config.Build(
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// NewProductionLogger creates a production-ready logger with log rotation
func NewProductionLogger(logPath string) (*zap.Logger, error) {
	if logPath == "" {
		logPath = "./logs/moi.log"
	}

	if err := createLogDir(logPath); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    100, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	})

	enc := encoderConfig()
	core := zapcore.NewTee(
		zapcore.NewCore(zapcore.NewJSONEncoder(enc), w, atomicLevel),
		zapcore.NewCore(zapcore.NewConsoleEncoder(enc), zapcore.Lock(os.Stdout), atomicLevel),
	)

	return zap.New(core,
		zap.AddCaller(),
		zap.AddCallerSkip(1),
		zap.AddStacktrace(zapcore.ErrorLevel),
	), nil
}

func encoderConfig() zapcore.EncoderConfig {
	enc := zap.NewProductionEncoderConfig()
	enc.TimeKey = "timestamp"
	enc.MessageKey = "msg"
	enc.LevelKey = "level"
	enc.CallerKey = "caller"
	enc.EncodeTime = zapcore.ISO8601TimeEncoder
	enc.EncodeDuration = zapcore.MillisDurationEncoder
	enc.EncodeLevel = func(level zapcore.Level, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(fmt.Sprintf("%-5s", level.CapitalString()))
	}
	enc.EncodeCaller = func(caller zapcore.EntryCaller, pae zapcore.PrimitiveArrayEncoder) {
		pae.AppendString(formatCallerPath(caller))
	}
	return enc
}

func parseLevel(level string) zapcore.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zap.DebugLevel
	case "warn":
		return zap.WarnLevel
	case "error":
		return zap.ErrorLevel
	case "fatal":
		return zap.FatalLevel
	default:
		return zap.InfoLevel
	}
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zap.Field) {
	Logger.Info(msg, fields...)
}

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zap.Field) {
	Logger.Error(msg, fields...)
}

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, fields...)
}

// Sync flushes any buffered log entries
func Sync() error {
	if Logger != nil {
		return Logger.Sync()
	}
	return nil
}

func createLogDir(logPath string) error {
	dir := filepath.Dir(logPath)
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// SetCallerDisplayMode sets the caller path display mode
func SetCallerDisplayMode(mode CallerDisplayMode) {
	callerDisplayMode = mode
}

// ParseCallerDisplayMode maps "short", "medium" or "full" to a mode; anything else is short.
func ParseCallerDisplayMode(mode string) CallerDisplayMode {
	switch strings.ToLower(mode) {
	case "medium":
		return CallerMedium
	case "full":
		return CallerFull
	default:
		return CallerShort
	}
}

// formatCallerPath formats caller path based on display mode with alignment
func formatCallerPath(caller zapcore.EntryCaller) string {
	fullPath := caller.TrimmedPath()
	result := fullPath

	switch callerDisplayMode {
	case CallerShort:
		if idx := strings.LastIndex(fullPath, "/"); idx >= 0 {
			result = fullPath[idx+1:]
		}
	case CallerMedium:
		shortened := strings.TrimPrefix(fullPath, "pkg/")
		shortened = strings.TrimPrefix(shortened, "cmd/")
		shortened = strings.TrimPrefix(shortened, "internal/")
		parts := strings.Split(shortened, "/")
		if len(parts) > 2 {
			result = strings.Join(parts[len(parts)-2:], "/")
		} else {
			result = shortened
		}
	}

	if len(result) > callerWidth {
		result = "..." + result[len(result)-(callerWidth-3):]
	}
	return fmt.Sprintf("%-*s", callerWidth, result)
}
