package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	ContentPath string // .hcl content manifests (file or directory)

	ConflictPolicy string
	LogFormat      string
	LogLevel       string
}

// NewConfig validates and returns a Config.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ContentPath == "" {
		return nil, errors.New("ContentPath is a required configuration field and cannot be empty")
	}

	return &cfg, nil
}
