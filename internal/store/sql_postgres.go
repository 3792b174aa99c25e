package store

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-fin-tracker/internal/logger"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

var postgresPool = poolLimits{
	maxOpen:     10,
	maxIdle:     4,
	maxIdleTime: 5 * time.Minute,
}

// openPostgres connects through pgx's database/sql driver.
func openPostgres(ctx context.Context, dsn string, log *logger.Logger) (*DB, error) {
	conn, err := openPool(ctx, "pgx", dsn, postgresPool, log)
	if err != nil {
		return nil, err
	}

	return newDB(conn, DialectPostgres, postgresClassifier{}, log), nil
}

// postgresClassifier reads SQLSTATE codes off *pgconn.PgError.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
type postgresClassifier struct{}

// Classify treats connection exceptions (class 08), transaction rollbacks
// such as deadlocks and serialization failures (class 40) and server
// restarts (57P01..57P03) as transient. A cancelled statement is not retried.
func (postgresClassifier) Classify(err error) ErrorClassification {
	code, ok := sqlState(err)
	if !ok {
		return NonRetryable
	}

	switch {
	case pgerrcode.IsConnectionException(code), pgerrcode.IsTransactionRollback(code):
		return Retryable
	case code == pgerrcode.AdminShutdown, code == pgerrcode.CrashShutdown, code == pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}

func (postgresClassifier) IsUniqueViolation(err error) bool {
	code, ok := sqlState(err)
	return ok && code == pgerrcode.UniqueViolation
}

func sqlState(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}
	return pgErr.Code, true
}
