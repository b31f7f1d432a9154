package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by
// [PostgresErrorClassifier.Classify]. It indicates whether a failed
// connection attempt may succeed if repeated.
type ErrorClassification int

// PostgresErrorClassifier inspects the pgconn error code returned by the pgx
// driver and maps it to an [ErrorClassification] value.
type PostgresErrorClassifier struct{}

const (
	// NonRetryable indicates that the failed operation should not be retried.
	// This is the default classification for unrecognised errors, missing
	// databases and rejected credentials.
	NonRetryable ErrorClassification = iota

	// Retryable indicates that the failed operation may succeed if attempted
	// again (e.g. the server is starting up or the connection dropped).
	Retryable
)

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify attempts to unwrap err as a *pgconn.PgError and delegates to
// [ClassifyPgError]. If err is nil or is not a PostgreSQL driver error,
// [NonRetryable] is returned.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html for the
// full list of PostgreSQL error codes.
//
// Retryable codes:
//   - Class 08: connection exceptions (08000, 08001, 08003, 08006)
//   - Class 53: insufficient resources, too many connections (53300)
//   - Class 57: cannot connect now, admin shutdown (57P03, 57P01)
//
// Any code not listed above is classified as [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch pgErr.Code {
	// Class 08: connection exceptions
	case pgerrcode.ConnectionException,
		pgerrcode.ConnectionDoesNotExist,
		pgerrcode.ConnectionFailure,
		pgerrcode.SQLClientUnableToEstablishSQLConnection:
		return Retryable

	// Class 53: insufficient resources
	case pgerrcode.TooManyConnections:
		return Retryable

	// Class 57: operator intervention
	case pgerrcode.CannotConnectNow,
		pgerrcode.AdminShutdown:
		return Retryable
	}

	return NonRetryable
}

// connectError wraps a failed open or ping with the sentinel matching the
// PostgreSQL error code, falling back to [ErrConnecting].
func connectError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	switch pgErr.Code {
	case pgerrcode.InvalidCatalogName:
		return fmt.Errorf("%w: %w", ErrDatabaseNotFound, err)
	case pgerrcode.InvalidPassword,
		pgerrcode.InvalidAuthorizationSpecification:
		return fmt.Errorf("%w: %w", ErrAuthFailed, err)
	default:
		return fmt.Errorf("%w: %w", ErrConnecting, err)
	}
}
