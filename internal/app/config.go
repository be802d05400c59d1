package app

import "errors"

// Config holds everything an App instance needs to run.
type Config struct {
	ScenarioPaths []string // .hcl files or directories

	LogFormat   string
	LogLevel    string
	MetricsAddr string // empty disables the metrics endpoint
	Verify      bool   // verify every scenario against Dijkstra
}

// NewConfig validates cfg and returns a copy.
func NewConfig(cfg Config) (*Config, error) {
	if len(cfg.ScenarioPaths) == 0 {
		return nil, errors.New("at least one scenario path is required")
	}

	return &cfg, nil
}
