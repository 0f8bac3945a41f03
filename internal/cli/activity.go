package cli

import (
	"log/slog"

	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/config"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/metrics"
)

// activityLogger fans catalog activity out to the log file (when enabled),
// the process logger and the operation counters.
func activityLogger(cfg config.ActivityConfig, logger *slog.Logger) activity.Logger {
	var file activity.Logger
	if cfg.Enabled {
		file = activity.NewFileLogger(cfg.LogPath, logger)
	}
	return activity.Multi(file, activity.NewSlogLogger(logger), metrics.Recorder{})
}

func newCatalog(cfg *config.AppConfig, logger *slog.Logger) *catalog.Catalog {
	opts := append(cfg.Catalog.Options(), catalog.WithLogger(activityLogger(cfg.Activity, logger)))
	return catalog.New(cfg.Catalog.TotalSpace, opts...)
}
