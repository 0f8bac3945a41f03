package config

import (
	"github.com/google/uuid"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/activity"
	"github.com/xyzaryan12-jpg/filesytemrecovery1/internal/catalog"
)

type CatalogConfig struct {
	ID            string `mapstructure:"id"`
	TotalSpace    uint64 `mapstructure:"total_space" validate:"required,gt=0"`
	MaxFiles      int    `mapstructure:"max_files" validate:"required,gt=0"`
	MaxNameLength int    `mapstructure:"max_name_length" validate:"required,gt=1"`
	MaxPathLength int    `mapstructure:"max_path_length" validate:"required,gt=1"`
	UniquePaths   bool   `mapstructure:"unique_paths"`
}

type ActivityConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	LogPath string `mapstructure:"log_path" validate:"required_if=Enabled true"`
}

func DefaultCatalogConfig() CatalogConfig {
	return CatalogConfig{
		ID:            uuid.NewString(),
		TotalSpace:    1024 * 1024 * 1024, // 1GB
		MaxFiles:      catalog.DefaultMaxFiles,
		MaxNameLength: catalog.MaxNameLength,
		MaxPathLength: catalog.MaxPathLength,
	}
}

func DefaultActivityConfig() ActivityConfig {
	return ActivityConfig{
		Enabled: true,
		LogPath: activity.DefaultLogPath,
	}
}

// Options translates the config into catalog options. The activity logger is
// wired separately by the caller.
func (c CatalogConfig) Options() []catalog.OptionFunc {
	opts := []catalog.OptionFunc{
		catalog.WithMaxFiles(c.MaxFiles),
		catalog.WithNameLimits(c.MaxNameLength, c.MaxPathLength),
	}
	if c.UniquePaths {
		opts = append(opts, catalog.WithUniquePaths())
	}
	return opts
}
