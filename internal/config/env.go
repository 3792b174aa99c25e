package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
)

// processEnv snapshots the process environment for parseEnv.
func processEnv() map[string]string {
	return env.ToMap(os.Environ())
}

// parseEnv reads the `env`/`envPrefix` tags of [StructuredConfig] from
// environ. Variables that are absent leave their fields zero so later
// sources can fill them.
func parseEnv(environ map[string]string) (*StructuredConfig, error) {
	cfg, err := env.ParseAsWithOptions[StructuredConfig](env.Options{Environment: environ})
	if err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}

	return &cfg, nil
}
