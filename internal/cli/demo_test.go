package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/recovery"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/pkg/logging"
)

func TestRunDemo(t *testing.T) {
	logger := logging.NewTestLogger(slog.LevelDebug, true)
	c := catalog.New(1024 * 1024 * 1024)

	var out bytes.Buffer
	require.NoError(t, RunDemo(&out, c, recovery.NewReporter(logger)))

	text := out.String()
	sections := []string{
		"Initial file system state:",
		"After deletion:",
		"Scan: 2 active (6144 bytes), 1 deleted (1024 bytes)",
		"After recovery:",
		"Largest file:",
		"Optimized: removed 0 deleted entries, slots 3 -> 3",
		"Final file system state:",
	}
	last := -1
	for _, s := range sections {
		i := strings.Index(text, s)
		require.GreaterOrEqual(t, i, 0, "missing %q", s)
		assert.Greater(t, i, last, "%q out of order", s)
		last = i
	}

	final := text[strings.Index(text, "Final file system state:"):]
	assert.Equal(t, "Final file system state:\nFiles in /:\n- test1.txt (1024 bytes)\n- test2.txt (2048 bytes)\n- test3.txt (4096 bytes)\n", final)
	assert.Equal(t, uint64(1024+2048+4096), c.UsedSpace())
}

func TestRunDemo_ActivitySequence(t *testing.T) {
	logger := &activity.MockLogger{}
	for _, op := range []string{activity.OpInit, activity.OpCreate, activity.OpDelete, activity.OpRecover, activity.OpOptimize} {
		logger.On("Record", op, mock.Anything).Return()
	}
	c := catalog.New(1<<20, catalog.WithLogger(logger))

	require.NoError(t, RunDemo(&bytes.Buffer{}, c, recovery.NewReporter(logging.NewTestLogger(slog.LevelDebug, true))))

	var ops []string
	for _, call := range logger.Calls {
		ops = append(ops, call.Arguments.String(0))
	}
	assert.Equal(t, []string{
		activity.OpInit,
		activity.OpCreate, activity.OpCreate, activity.OpCreate,
		activity.OpDelete,
		activity.OpRecover,
		activity.OpOptimize,
	}, ops)
}

func TestRunDemo_FailsWhenCatalogTooSmall(t *testing.T) {
	c := catalog.New(2048)

	err := RunDemo(&bytes.Buffer{}, c, recovery.NewReporter(logging.NewTestLogger(slog.LevelDebug, true)))

	assert.ErrorIs(t, err, catalog.ErrInsufficientSpace)
}

func TestDemoCmd_WritesActivityLog(t *testing.T) {
	dir := t.TempDir()
	logPath := filepath.Join(dir, "logs", "activity.log")
	t.Setenv("FSRECOVERY_ACTIVITY_LOG_PATH", logPath)

	cmd := newRootCmd(defaultRootOptions())
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"demo", "--config", dir, "--total-space", "1048576"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), "Final file system state:")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 7)
	assert.Contains(t, lines[0], "] INIT: File system initialized")
	assert.Contains(t, lines[6], "] OPTIMIZE: File system optimized")
}
