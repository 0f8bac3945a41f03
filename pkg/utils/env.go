package utils

import (
	"log/slog"
	"os"
)

func GetEnvString(key string, fallback string) string {
	val, ok := os.LookupEnv(key)
	if !ok {
		slog.Debug("Environment variable not set, using fallback", slog.String("key", key), slog.String("fallback", fallback))
		return fallback
	}

	return val
}
