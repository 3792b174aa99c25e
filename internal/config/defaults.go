package config

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const (
	defaultTokenIssuer    = "go-fin-tracker"
	defaultTokenDuration  = 24 * time.Hour
	defaultHTTPAddress    = ":8080"
	defaultBasePath       = "/api"
	defaultAdapterAddress = "http://localhost:8080"
	defaultAdapterTimeout = 10 * time.Second
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:      defaultTokenIssuer,
			TokenDuration:    defaultTokenDuration,
			PasswordHashCost: bcrypt.DefaultCost,
		},
		Server: Server{
			HTTPAddress: defaultHTTPAddress,
			BasePath:    defaultBasePath,
		},
		Adapter: Adapter{
			HTTPAddress:    defaultAdapterAddress,
			RequestTimeout: defaultAdapterTimeout,
		},
	}
}
