package logger

import (
	"os"
	"strings"

	"github.com/chokka/chokka-api/libs/go/constants"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is the process-wide logger. Nil until InitLogger runs.
var Log *zap.Logger

// level is shared by every logger built here so SetLevel applies at runtime
var level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

// InitLogger builds Log for stage. Deployed stages log JSON with service
// and stage fields; local and test stages log coloured console output.
// LOG_LEVEL overrides the default info level.
func InitLogger(stage string) {
	SetLevel(os.Getenv("LOG_LEVEL"))

	var cfg zap.Config
	if isDeployed(stage) {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.MessageKey = "message"
		cfg.InitialFields = map[string]interface{}{
			"service": constants.ServiceName,
			"stage":   stage,
		}
		cfg.DisableStacktrace = level.Level() > zapcore.DebugLevel
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		cfg.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	}
	cfg.Level = level
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	built, err := cfg.Build()
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Log = built
}

func isDeployed(stage string) bool {
	return stage == constants.ProdEnvironment || stage == constants.DevEnvironment
}

// SetLevel changes the minimum level of Log. Unknown or empty names mean info.
func SetLevel(name string) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		level.SetLevel(zapcore.DebugLevel)
	case "warn", "warning":
		level.SetLevel(zapcore.WarnLevel)
	case constants.ErrorLevel:
		level.SetLevel(zapcore.ErrorLevel)
	default:
		level.SetLevel(zapcore.InfoLevel)
	}
}

// Tee makes Log write to extra as well as its current core. Used to
// forward logs to an OpenTelemetry collector without losing stdout.
func Tee(extra zapcore.Core) {
	if Log == nil {
		Log = zap.New(extra)
		return
	}
	Log = zap.New(zapcore.NewTee(Log.Core(), extra),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.ErrorLevel),
	)
}

// Info logs a message at InfoLevel
func Info(msg string, fields ...zapcore.Field) { Log.Info(msg, fields...) }

// Error logs a message at ErrorLevel
func Error(msg string, fields ...zapcore.Field) { Log.Error(msg, fields...) }

// Debug logs a message at DebugLevel
func Debug(msg string, fields ...zapcore.Field) { Log.Debug(msg, fields...) }

// Warn logs a message at WarnLevel
func Warn(msg string, fields ...zapcore.Field) { Log.Warn(msg, fields...) }

// Fatal logs at FatalLevel then exits
func Fatal(msg string, fields ...zapcore.Field) { Log.Fatal(msg, fields...) }

// With returns a child of Log carrying fields
func With(fields ...zapcore.Field) *zap.Logger { return Log.With(fields...) }

// Sync flushes buffered entries
func Sync() error {
	if Log == nil {
		return nil
	}
	return Log.Sync()
}
