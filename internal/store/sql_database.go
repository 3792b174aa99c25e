// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-fin-tracker/internal/config"
	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/MKhiriev/go-fin-tracker/migrations"
	"github.com/sethvargo/go-retry"
)

// Dialect names the SQL backend behind a [DB].
type Dialect string

const (
	DialectPostgres Dialect = "postgres"
	DialectSQLite   Dialect = "sqlite3"
)

const (
	retryBase     = 50 * time.Millisecond
	retryAttempts = 3
)

// ErrorClassification tells withRetry whether a failed statement may succeed
// on another attempt.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

type poolLimits struct {
	maxOpen     int
	maxIdle     int
	maxIdleTime time.Duration
}

// openPool opens driver at dsn, applies limits and pings it. The pool is
// closed again if the ping fails.
func openPool(ctx context.Context, driver, dsn string, limits poolLimits, log *logger.Logger) (*sql.DB, error) {
	log = log.Named(driver)

	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Msg("error opening database")
		return nil, fmt.Errorf("error opening %s database: %w", driver, err)
	}

	conn.SetMaxOpenConns(limits.maxOpen)
	conn.SetMaxIdleConns(limits.maxIdle)
	conn.SetConnMaxIdleTime(limits.maxIdleTime)

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("error pinging %s database: %w", driver, err)
	}

	log.Info().Int("max_open_conns", limits.maxOpen).Msg("connected to database")
	return conn, nil
}

// DB is a pooled connection plus everything the repositories need to talk
// to it: a placeholder-aware query builder and an error classifier.
type DB struct {
	*sql.DB
	dialect            Dialect
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB opens the backend selected by the DSN scheme:
// "postgres://" and "postgresql://" use pgx, "sqlite://" and "file:" use go-sqlite3.
func NewDB(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch {
	case strings.HasPrefix(cfg.DSN, "postgres://"), strings.HasPrefix(cfg.DSN, "postgresql://"):
		return openPostgres(ctx, cfg.DSN, log)
	case strings.HasPrefix(cfg.DSN, "sqlite://"):
		return openSQLite(ctx, strings.TrimPrefix(cfg.DSN, "sqlite://"), log)
	case strings.HasPrefix(cfg.DSN, "file:"):
		return openSQLite(ctx, cfg.DSN, log)
	default:
		return nil, ErrUnsupportedDSN
	}
}

func newDB(conn *sql.DB, dialect Dialect, classificator ErrorClassificator, log *logger.Logger) *DB {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == DialectPostgres {
		placeholder = sq.Dollar
	}

	return &DB{
		DB:                 conn,
		dialect:            dialect,
		builder:            sq.StatementBuilder.PlaceholderFormat(placeholder),
		errorClassificator: classificator,
		logger:             log,
	}
}

// Dialect reports which backend the connection talks to.
func (db *DB) Dialect() Dialect {
	return db.dialect
}

// Migrate applies all pending schema migrations for the connection's dialect.
func (db *DB) Migrate(ctx context.Context) error {
	return migrations.Migrate(ctx, db.DB, string(db.dialect))
}

// withRetry runs fn, repeating it with exponential backoff while the
// classifier reports the returned error as transient.
func (db *DB) withRetry(ctx context.Context, fn func(ctx context.Context) error) error {
	backoff := retry.WithMaxRetries(retryAttempts, retry.NewExponential(retryBase))

	return retry.Do(ctx, backoff, func(ctx context.Context) error {
		err := fn(ctx)
		if err != nil && db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
			logger.FromContext(ctx).Warn().Err(err).Msg("transient database error, retrying")
			return retry.RetryableError(err)
		}
		return err
	})
}

// isUniqueViolation reports whether err is a unique-constraint failure.
func (db *DB) isUniqueViolation(err error) bool {
	return db.errorClassificator != nil && db.errorClassificator.IsUniqueViolation(err)
}
