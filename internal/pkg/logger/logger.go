package logger

import (
	"context"
	"fmt"

	"github.com/ougirez/solarscope/internal/pkg/constants"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Init replaces the global zap logger. format is "json" or "console".
func Init(level, format string) error {
	var cfg zap.Config
	if format == "console" {
		cfg = zap.NewDevelopmentConfig()
	} else {
		cfg = zap.NewProductionConfig()
	}

	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("parse log level: %w", err)
	}
	cfg.Level.SetLevel(lvl)

	l, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	zap.ReplaceGlobals(l)

	return nil
}

func Sync() {
	_ = zap.L().Sync()
}

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, constants.CtxKeyRequestID, requestID)
}

func WithSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, constants.CtxKeySessionID, sessionID)
}

// SessionID returns the session id carried by ctx, if any.
func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(constants.CtxKeySessionID).(string)
	return sid
}

func fromContext(ctx context.Context) *zap.SugaredLogger {
	l := zap.L()
	if ctx == nil {
		return l.Sugar()
	}
	if rid, ok := ctx.Value(constants.CtxKeyRequestID).(string); ok && rid != "" {
		l = l.With(zap.String("request_id", rid))
	}
	if sid, ok := ctx.Value(constants.CtxKeySessionID).(string); ok && sid != "" {
		l = l.With(zap.String("session_id", sid))
	}
	return l.Sugar()
}

func Debugf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Debugf(format, args...)
}

func Infof(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Infof(format, args...)
}

func Warnf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Warnf(format, args...)
}

func Errorf(ctx context.Context, format string, args ...any) {
	fromContext(ctx).Errorf(format, args...)
}

func Error(ctx context.Context, msg string) {
	fromContext(ctx).Error(msg)
}

func Fatal(ctx context.Context, err error) {
	fromContext(ctx).Fatal(err)
}
