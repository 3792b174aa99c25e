package server

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/handler"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	transports []transport
	logger     *logger.Logger
}

// NewServer binds a listener for every handler that has an address.
// Listeners bound before a failure are closed again.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		httpSrv, err := newHTTPServer(handlers.HTTP.Init(), cfg)
		if err != nil {
			return nil, err
		}
		s.transports = append(s.transports, httpSrv)
	}

	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg)
		if err != nil {
			for _, t := range s.transports {
				_ = t.close()
			}
			return nil, err
		}
		s.transports = append(s.transports, grpcSrv)
	}

	if len(s.transports) == 0 {
		return nil, errNoServersAreCreated
	}

	return s, nil
}

func (s *server) Run(ctx context.Context) error {
	failed := make(chan error, len(s.transports))

	var running sync.WaitGroup
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name()).Str("address", t.addr()).Msg("server listening")
		running.Go(func() {
			if err := t.serve(); err != nil {
				s.logger.Error().Err(err).Str("transport", t.name()).Msg("server stopped serving")
				failed <- err
			}
		})
	}

	var runErr error
	select {
	case <-ctx.Done():
		s.logger.Info().Msg("stop signal received")
	case runErr = <-failed:
	}

	s.shutdown()
	running.Wait()

	s.logger.Info().Msg("server shut down")
	return runErr
}

func (s *server) shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var wg sync.WaitGroup
	for _, t := range s.transports {
		wg.Go(func() {
			if err := t.shutdown(ctx); err != nil {
				s.logger.Error().Err(err).Str("transport", t.name()).Msg("shutdown did not complete cleanly")
			}
		})
	}
	wg.Wait()
}
