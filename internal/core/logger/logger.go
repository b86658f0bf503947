package logger

import (
	"context"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const serviceName = "storefront-checkout"

type rayIDKey struct{}

var globalLogger *zap.Logger

// Init initializes the global logger.
// "production" emits sampled JSON; anything else emits coloured console output.
func Init(environment string, level string) error {
	var config zap.Config

	if environment == "production" {
		config = zap.NewProductionConfig()
		config.EncoderConfig.TimeKey = "ts"
		config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		config = zap.NewDevelopmentConfig()
		config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		config.DisableStacktrace = true
	}

	if lvl, err := zapcore.ParseLevel(level); err == nil {
		config.Level = zap.NewAtomicLevelAt(lvl)
	}

	built, err := config.Build(zap.Fields(
		zap.String("service", serviceName),
		zap.String("env", environment),
	))
	if err != nil {
		return err
	}

	globalLogger = built
	return nil
}

// Get returns the global logger instance.
// If not initialized, it returns a no-op logger to prevent panics.
func Get() *zap.Logger {
	if globalLogger == nil {
		return zap.NewNop()
	}
	return globalLogger
}

// ForRequest returns the global logger annotated with the request's ray id.
func ForRequest(rayID string) *zap.Logger {
	return Get().With(zap.String("ray_id", rayID))
}

// WithRayID returns a copy of ctx carrying rayID for FromContext.
func WithRayID(ctx context.Context, rayID string) context.Context {
	return context.WithValue(ctx, rayIDKey{}, rayID)
}

// RayID returns the ray id stored in ctx, if any.
func RayID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(rayIDKey{}).(string)
	return id, ok && id != ""
}

// FromContext returns the global logger, annotated with the ray id when ctx carries one.
func FromContext(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return Get()
	}
	if id, ok := RayID(ctx); ok {
		return ForRequest(id)
	}
	return Get()
}

// Sync flushes any buffered log entries.
func Sync() {
	if globalLogger != nil {
		_ = globalLogger.Sync()
	}
}
