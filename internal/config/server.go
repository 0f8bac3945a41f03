package config

import (
	"fmt"
	"time"
)

type ServerConfig struct {
	Host            string        `mapstructure:"host" validate:"required,hostname_rfc1123|ip"`
	Port            int           `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	MetricsPort     int           `mapstructure:"metrics_port" validate:"gte=0,lt=65536"` // 0 disables the metrics endpoint
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout" validate:"required,gt=0"`
}

// CompactionConfig drives the background compaction controller.
// A cycle optimizes the catalog once Fragmentation reaches FragmentationThreshold
// and at least MinDeleted entries are tombstoned.
type CompactionConfig struct {
	Enabled                bool          `mapstructure:"enabled"`
	Interval               time.Duration `mapstructure:"interval" validate:"gt=0"`
	FragmentationThreshold float64       `mapstructure:"fragmentation_threshold" validate:"gte=0,lte=1"`
	MinDeleted             int           `mapstructure:"min_deleted" validate:"gte=0"`
}

func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Host:            "localhost",
		Port:            8090,
		MetricsPort:     9090,
		ShutdownTimeout: 10 * time.Second,
	}
}

func DefaultCompactionConfig() CompactionConfig {
	return CompactionConfig{
		Enabled:                true,
		Interval:               time.Minute,
		FragmentationThreshold: 0.25,
		MinDeleted:             1,
	}
}

func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

func (s ServerConfig) MetricsAddress() string {
	return fmt.Sprintf("%s:%d", s.Host, s.MetricsPort)
}
