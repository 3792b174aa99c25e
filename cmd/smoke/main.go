// Command smoke runs the signup, login and entry lifecycle against a live
// server through the API client and exits non-zero on the first failure.
package main

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/adapter"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/google/uuid"
)

const scenarioTimeout = time.Minute

func main() {
	log := logger.NewConsoleLogger("go-fin-smoke")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server adapter")
	}

	ctx, cancel := context.WithTimeout(context.Background(), scenarioTimeout)
	defer cancel()

	s := newScenario(serverAdapter, uuid.NewString, log)
	if err = s.run(ctx); err != nil {
		log.Fatal().Err(err).Msg("smoke scenario failed")
	}

	log.Info().Str("base_url", cfg.Adapter.BaseURL()).Msg("smoke scenario passed")
}
