package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	EnvironmentsPath string // hcl file or directory of environment blocks
	DocumentPath     string // hcl document event file

	Backend   string
	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.EnvironmentsPath == "" {
		return nil, errors.New("EnvironmentsPath is a required configuration field and cannot be empty")
	}
	if cfg.DocumentPath == "" {
		return nil, errors.New("DocumentPath is a required configuration field and cannot be empty")
	}
	if cfg.Backend == "" {
		cfg.Backend = "latex"
	}
	return &cfg, nil
}
