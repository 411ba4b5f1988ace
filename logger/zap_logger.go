package logger

import (
	"context"

	"go.uber.org/zap"
)

type zapLogger struct {
	sugar *zap.SugaredLogger
}

// ZapFactory builds a production zap logger enriched with the context fields.
// It falls back to a NoOpLogger if zap cannot be initialised.
func ZapFactory(ctx context.Context) Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		return &NoOpLogger{}
	}

	return NewZapLogger(ctx, logger)
}

func NewZapLogger(ctx context.Context, logger *zap.Logger) Logger {
	return &zapLogger{sugar: logger.Sugar().With(contextFields(ctx)...)}
}

func (l *zapLogger) Debug(msg string, args ...any) { l.sugar.Debugw(msg, args...) }
func (l *zapLogger) Info(msg string, args ...any)  { l.sugar.Infow(msg, args...) }
func (l *zapLogger) Warn(msg string, args ...any)  { l.sugar.Warnw(msg, args...) }
func (l *zapLogger) Error(msg string, args ...any) { l.sugar.Errorw(msg, args...) }
