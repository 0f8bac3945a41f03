package activity

import (
	"context"
	"log/slog"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
)

// SlogLogger forwards records to a structured logger. ERROR records are logged
// at warn level, everything else at info.
type SlogLogger struct {
	logger *slog.Logger
}

func NewSlogLogger(logger *slog.Logger) *SlogLogger {
	return &SlogLogger{logger: logger}
}

func (l *SlogLogger) Record(operation, details string) {
	level := slog.LevelInfo
	if operation == OpError {
		level = slog.LevelWarn
	}
	l.logger.Log(context.Background(), level, "Catalog activity",
		slog.String(common.LogOperation, operation),
		slog.String(common.LogDetails, details))
}
