package config

import (
	"fmt"
	"os"
	"time"
)

// ClientAdapter holds network settings used by the API client.
type ClientAdapter struct {
	// HTTPAddress is the server base URL, e.g. "http://localhost:8080".
	HTTPAddress string
	// BasePath is the API mount prefix shared with the server.
	BasePath string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// BaseURL returns the address the API client resolves its routes against.
func (a ClientAdapter) BaseURL() string {
	return a.HTTPAddress + a.BasePath
}

// ClientConfig is the configuration view used by cmd/smoke. It needs no
// secrets and no database.
type ClientConfig struct {
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	return getClientConfig(os.Args[1:])
}

func getClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := loadConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			BasePath:       cfg.Server.BasePath,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
