package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/utils"
)

type contextKey string

const loggerKey contextKey = "logger"

// TextLogger can be used during development for more readable logs
func SetupTextLogger(w io.Writer, logLevel slog.Level) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Custom timestamp format
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   "time",
					Value: slog.StringValue(a.Value.Time().Format("2006-01-02 15:04:05.000")),
				}
			}
			return a
		},
	}

	handler := slog.NewTextHandler(w, opts)

	return slog.New(handler)
}

// NewTestLogger is a test logger that is used for testing
func NewTestLogger(logLevel slog.Level, discard bool) *slog.Logger {
	if discard {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return SetupTextLogger(os.Stdout, logLevel)
}

// ParseLevel maps debug, info, warn and error to their slog levels.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}

// InitLogger builds the process logger from LOG_LEVEL and sets it as the slog default.
// Logs go to stderr so command output on stdout stays clean.
func InitLogger() (*slog.Logger, error) {
	logLevel, err := ParseLevel(utils.GetEnvString("LOG_LEVEL", "warn"))
	if err != nil {
		return nil, err
	}
	logger := SetupTextLogger(os.Stderr, logLevel)

	// Set as default logger -- for calling slog.Info etc
	slog.SetDefault(logger)

	return logger, nil
}

func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default() // Fallback to default logger
}

func FromContextWith(ctx context.Context, kvs ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx)        // Get logger fom context
	logger = logger.With(kvs...)      // Add new fields
	newCtx := WithLogger(ctx, logger) // Attach to new context already
	return newCtx, logger
}

func FromContextWithOperation(ctx context.Context, operation string, kvs ...any) (context.Context, *slog.Logger) {
	logger := FromContext(ctx)
	attrs := append(kvs, slog.String(common.LogOperation, operation))
	logger = logger.With(attrs...)
	newCtx := WithLogger(ctx, logger)
	return newCtx, logger
}

// Extend logger with additional attributes
func ExtendLogger(logger *slog.Logger, kvs ...any) *slog.Logger {
	return logger.With(kvs...)
}

// Add some operation specific attributes to the logger
func OperationLogger(logger *slog.Logger, operation string, kvs ...any) *slog.Logger {
	attrs := append(kvs, slog.String(common.LogOperation, operation))
	return ExtendLogger(logger, attrs...)
}

func ServiceLogger(logger *slog.Logger, service string, kvs ...any) *slog.Logger {
	attrs := append(kvs, slog.String(common.LogService, service))
	return ExtendLogger(logger, attrs...)
}
