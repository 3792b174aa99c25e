package service

import (
	"context"
	"fmt"
)

// pinger is satisfied by *store.Storages.
type pinger interface {
	Ping(ctx context.Context) error
}

type healthService struct {
	store pinger
}

func NewHealthService(store pinger) HealthService {
	return &healthService{store: store}
}

// Check returns ErrStoreUnavailable wrapping the ping failure, if any.
func (s *healthService) Check(ctx context.Context) error {
	if err := s.store.Ping(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	return nil
}
