package config

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. FSRECOVERY_CATALOG_TOTAL_SPACE.
const EnvPrefix = "FSRECOVERY"

// Load reads the configuration from defaults, an optional fsrecovery.yaml found in
// path or the working directory, and environment variables, in increasing priority.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	// Set defaults, one key at a time so every key can be overridden from the environment
	defaults := DefaultAppConfig()
	v.SetDefault("catalog.id", defaults.Catalog.ID)
	v.SetDefault("catalog.total_space", defaults.Catalog.TotalSpace)
	v.SetDefault("catalog.max_files", defaults.Catalog.MaxFiles)
	v.SetDefault("catalog.max_name_length", defaults.Catalog.MaxNameLength)
	v.SetDefault("catalog.max_path_length", defaults.Catalog.MaxPathLength)
	v.SetDefault("catalog.unique_paths", defaults.Catalog.UniquePaths)
	v.SetDefault("activity.enabled", defaults.Activity.Enabled)
	v.SetDefault("activity.log_path", defaults.Activity.LogPath)
	v.SetDefault("server.host", defaults.Server.Host)
	v.SetDefault("server.port", defaults.Server.Port)
	v.SetDefault("server.metrics_port", defaults.Server.MetricsPort)
	v.SetDefault("server.shutdown_timeout", defaults.Server.ShutdownTimeout)
	v.SetDefault("compaction.enabled", defaults.Compaction.Enabled)
	v.SetDefault("compaction.interval", defaults.Compaction.Interval)
	v.SetDefault("compaction.fragmentation_threshold", defaults.Compaction.FragmentationThreshold)
	v.SetDefault("compaction.min_deleted", defaults.Compaction.MinDeleted)

	// Configure file reading
	v.SetConfigName("fsrecovery") // a file named `fsrecovery.yaml` can be used
	v.SetConfigType("yaml")
	if path != "" {
		v.AddConfigPath(path)
	}
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err // Only return error if it's not a "file not found" error
		}
	}

	// Configure environment variable reading
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Unmarshal and validate
	var cfg AppConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func Validate(cfg *AppConfig) error {
	validate := validator.New()
	return validate.Struct(cfg)
}
