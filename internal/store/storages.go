package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
)

// Storages bundles the repositories the service layer depends on together
// with the connection they share.
type Storages struct {
	UserRepository  UserRepository
	EntryRepository EntryRepository

	DB *DB
}

// NewStorages connects to the configured database, applies migrations and
// builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}
	log.Info().Str("dialect", string(db.Dialect())).Msg("database migrated")

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		EntryRepository: NewEntryRepository(db, log),
		DB:              db,
	}, nil
}

// Ping reports whether the database is reachable.
func (s *Storages) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.DB.Close()
}
