package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects partial configs in priority order. Each with* step
// adds one source; a failing source records its error and the chain goes on,
// so build reports every broken source at once.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(source string, cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%s: %w", source, err))
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

// build merges the sources. mergo fills only zero fields, so the first
// source that sets a field wins.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for i, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging config source #%d: %w", i, err)
		}
	}

	return merged, nil
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	cfg, err := parseFlags(args)
	return b.add("flags", cfg, err)
}

func (b *configBuilder) withEnv() *configBuilder {
	return b.withEnvFrom(processEnv())
}

func (b *configBuilder) withEnvFrom(environ map[string]string) *configBuilder {
	cfg, err := parseEnv(environ)
	return b.add("env", cfg, err)
}

// withJSON loads the file named by the first earlier source that sets
// JSONFilePath. Without one it is a no-op.
func (b *configBuilder) withJSON() *configBuilder {
	for _, cfg := range b.configs {
		if cfg.JSONFilePath == "" {
			continue
		}
		jsonCfg, err := parseJSON(cfg.JSONFilePath)
		return b.add("json", jsonCfg, err)
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add("defaults", defaultConfig(), nil)
}
