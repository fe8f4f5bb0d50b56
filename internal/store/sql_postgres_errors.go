package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification tells whether a failed call may succeed once the
// database is reachable again.
type ErrorClassification int

const (
	NonRetryable ErrorClassification = iota
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] on top of the
// SQLSTATE classes of pgerrcode.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify reports a failure to reach the server, and every SQLSTATE that
// [ClassifyPgError] accepts, as [Retryable]. Repositories turn those into
// [ErrStoreUnavailable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError is Retryable only when the server itself is out of
// reach: connection exceptions (class 08), too many connections (53300)
// and the shutdown codes 57P01 to 57P03. Deadlocks, serialization
// failures, cancelled statements and disk or memory exhaustion stay
// NonRetryable and surface as internal errors.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	code := pgErr.Code

	if pgerrcode.IsConnectionException(code) {
		return Retryable
	}

	switch code {
	case pgerrcode.TooManyConnections,
		pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Retryable
	default:
		return NonRetryable
	}
}
