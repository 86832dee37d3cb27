package logging

import (
	"context"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

// DefaultLogger builds the CLI logger. Dev logging is human readable at debug
// level; otherwise JSON at warn level so command output stays clean.
// Logs go to stderr, leaving stdout for command results.
func DefaultLogger(devLogging bool, options ...zap.Option) *zap.Logger {
	var encoder zapcore.Encoder
	var logLevel zapcore.Level

	if devLogging {
		encoderConfig := zap.NewDevelopmentEncoderConfig()
		encoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		encoder = zapcore.NewConsoleEncoder(encoderConfig)
		logLevel = zap.DebugLevel
	} else {
		encoderConfig := zap.NewProductionEncoderConfig()
		encoder = zapcore.NewJSONEncoder(encoderConfig)
		logLevel = zap.WarnLevel
	}

	core := zapcore.NewCore(
		encoder,
		zapcore.Lock(os.Stderr),
		logLevel,
	)

	return zap.New(core, options...)
}

// WithLogger returns a copy of ctx carrying logger
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or a no-op logger
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok {
		return logger
	}

	return zap.NewNop()
}
