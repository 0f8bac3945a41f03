package config

// AppConfig is the root configuration for the fsrecovery binary.
// It is loaded with Viper, see Load.
type AppConfig struct {
	Catalog    CatalogConfig    `mapstructure:"catalog" validate:"required"`
	Activity   ActivityConfig   `mapstructure:"activity"`
	Server     ServerConfig     `mapstructure:"server" validate:"required"`
	Compaction CompactionConfig `mapstructure:"compaction"`
}

func DefaultAppConfig() AppConfig {
	return AppConfig{
		Catalog:    DefaultCatalogConfig(),
		Activity:   DefaultActivityConfig(),
		Server:     DefaultServerConfig(),
		Compaction: DefaultCompactionConfig(),
	}
}
