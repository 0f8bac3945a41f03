package activity

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/common"
)

// DefaultLogPath is where the activity log lives when nothing else is configured.
const DefaultLogPath = "logs/activity.log"

// FileLogger appends one line per record to a text file:
//
//	[Mon Jan  2 15:04:05 2006] CREATE: test1.txt
//
// The file is opened for every record, so it can be rotated or removed underneath.
type FileLogger struct {
	mu     sync.Mutex
	path   string
	now    func() time.Time
	logger *slog.Logger
}

// NewFileLogger returns a FileLogger writing to path. Sink failures are reported
// to logger at debug level and otherwise ignored.
func NewFileLogger(path string, logger *slog.Logger) *FileLogger {
	if logger == nil {
		logger = slog.Default()
	}
	return &FileLogger{
		path:   path,
		now:    time.Now,
		logger: logger,
	}
}

func (l *FileLogger) Path() string {
	return l.path
}

func (l *FileLogger) Record(operation, details string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.append(FormatLine(l.now(), operation, details)); err != nil {
		l.logger.Debug("Activity log unavailable",
			slog.String(common.LogFilePath, l.path),
			slog.String(common.LogError, err.Error()))
	}
}

func (l *FileLogger) append(line string) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open activity log: %w", err)
	}

	_, err = f.WriteString(line)
	return errors.Join(err, f.Close())
}

// FormatLine renders a record the way FileLogger writes it, trailing newline included.
func FormatLine(t time.Time, operation, details string) string {
	return fmt.Sprintf("[%s] %s: %s\n", t.Format(time.ANSIC), operation, details)
}
