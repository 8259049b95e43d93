// Package config loads serve-mode settings from the environment.
// Extraction options never live here: they are an explicit
// restruct.Options value passed into the pipeline.
package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port string

	// Optional bearer token; empty disables authentication.
	APIKey string

	// Upload limits
	MaxUploadBytes int64
}

func Load() Config {
	cfg := Config{
		Port:           envOr("RESTRUCT_PORT", "8090"),
		APIKey:         os.Getenv("RESTRUCT_API_KEY"),
		MaxUploadBytes: envInt64("RESTRUCT_MAX_UPLOAD_BYTES", 52428800), // 50MB
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}
