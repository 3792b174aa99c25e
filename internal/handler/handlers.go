// Package handler builds the transport handlers enabled by the server
// configuration.
package handler

import (
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/handler/grpc"
	"github.com/MKhiriev/go-fin-tracker/internal/handler/http"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/internal/service"
)

// Handlers holds one handler per enabled transport. A nil field means the
// transport has no address configured.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the REST handler when cfg.HTTPAddress is set and the
// gRPC health handler when cfg.GRPCAddress is set. Every service a created
// handler routes to must be present.
func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, errNoHandlersAreCreated
	}
	if services == nil {
		return nil, fmt.Errorf("%w: services", errMissingService)
	}

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		if err := requireHTTPServices(services); err != nil {
			return nil, err
		}
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}

	if cfg.GRPCAddress != "" {
		if services.HealthService == nil {
			return nil, fmt.Errorf("%w: health", errMissingService)
		}
		handlers.GRPC = grpc.NewHandler(services, logger)
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("handlers created")

	return handlers, nil
}

func requireHTTPServices(s *service.Services) error {
	switch {
	case s.AuthService == nil:
		return fmt.Errorf("%w: auth", errMissingService)
	case s.EntryService == nil:
		return fmt.Errorf("%w: entry", errMissingService)
	case s.AppInfoService == nil:
		return fmt.Errorf("%w: app info", errMissingService)
	case s.HealthService == nil:
		return fmt.Errorf("%w: health", errMissingService)
	}
	return nil
}
