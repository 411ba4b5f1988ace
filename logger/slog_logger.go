package logger

import (
	"context"
	"io"
	"log/slog"
	"os"

	commonCtx "github.com/kodausch/advertising-go-client/context"
)

func SlogFactory(ctx context.Context) Logger {
	return newSlogLogger(ctx, os.Stdout)
}

func newSlogLogger(ctx context.Context, w io.Writer) *slog.Logger {
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	return logger.With(contextFields(ctx)...)
}

// contextFields collects the well known context values as key/value pairs.
func contextFields(ctx context.Context) []any {
	var fields []any
	for _, key := range []commonCtx.Key{commonCtx.ServiceKey, commonCtx.DeviceIdKey, commonCtx.ClientVersionKey} {
		if value := commonCtx.GetStringValue(ctx, key); value != "" {
			fields = append(fields, string(key), value)
		}
	}
	return fields
}
