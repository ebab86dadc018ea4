package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Package-level logger used across packages after Init.
var S *zap.SugaredLogger

// Init initializes a zap SugaredLogger at the given level ("debug", "info",
// "warn", "error"; anything else falls back to info).
func Init(level string) (*zap.SugaredLogger, error) {
	var lvl zapcore.Level
	switch level {
	case "debug":
		lvl = zapcore.DebugLevel
	case "info":
		lvl = zapcore.InfoLevel
	case "warn", "warning":
		lvl = zapcore.WarnLevel
	case "error":
		lvl = zapcore.ErrorLevel
	default:
		lvl = zapcore.InfoLevel
	}

	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.AddSync(zapcore.Lock(os.Stdout)),
		lvl,
	)

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel))
	sugar := logger.Sugar()
	S = sugar
	return sugar, nil
}

// Close flushes any buffered log entries.
func Close() error {
	if S == nil {
		return nil
	}
	return S.Sync()
}

// Object logging helpers ---------------------------------------------------
// Tiny wrappers that log the given object as one structured field named
// `key`; they are safe to call before Init.

func InfoObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Info(msg, zap.Any(key, obj))
}

func DebugObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Debug(msg, zap.Any(key, obj))
}

func WarnObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Warn(msg, zap.Any(key, obj))
}

func ErrorObj(msg, key string, obj interface{}) {
	if S == nil {
		return
	}
	S.Desugar().Error(msg, zap.Any(key, obj))
}

// Shim satisfies interfaces that take an object logger value by delegating
// to the package-level helpers.
type Shim struct{}

func (Shim) InfoObj(msg, key string, obj interface{})  { InfoObj(msg, key, obj) }
func (Shim) DebugObj(msg, key string, obj interface{}) { DebugObj(msg, key, obj) }
func (Shim) WarnObj(msg, key string, obj interface{})  { WarnObj(msg, key, obj) }
func (Shim) ErrorObj(msg, key string, obj interface{}) { ErrorObj(msg, key, obj) }
