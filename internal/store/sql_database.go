package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-db-config/internal/dbconfig"
	"github.com/MKhiriev/go-db-config/internal/logger"
)

// DB is an open connection to the database of the current environment.
type DB struct {
	*sql.DB
	conn               Connection
	errorClassificator *PostgresErrorClassifier
	logger             *logger.Logger
}

// Open maps settings to a [Connection], opens it and pings the database.
// The returned DB must be closed by the caller.
func Open(ctx context.Context, settings dbconfig.Settings, log *logger.Logger) (*DB, error) {
	conn, err := NewConnection(settings)
	if err != nil {
		log.Err(err).Str("func", "Open").Msg("error mapping settings to connection")
		return nil, err
	}

	sqlDB, err := sql.Open(conn.DriverName, conn.DSN)
	if err != nil {
		log.Err(err).Str("func", "Open").Msg("error occured during database connection")
		return nil, fmt.Errorf("%w: %w", ErrConnecting, err)
	}

	db, err := connect(ctx, sqlDB, conn, log)
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return db, nil
}

// connect pings an already opened pool and wraps it.
func connect(ctx context.Context, sqlDB *sql.DB, conn Connection, log *logger.Logger) (*DB, error) {
	db := &DB{
		DB:                 sqlDB,
		conn:               conn,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Err(err).
			Str("func", "connect").
			Str("driver", conn.DriverName).
			Bool("retryable", db.IsRetryable(err)).
			Msg("error connecting database (ping)")
		return nil, connectError(err)
	}
	log.Debug().Str("func", "connect").Str("driver", conn.DriverName).Msg("connected to database successfully")

	return db, nil
}

// Connection returns the connection description the DB was opened with.
func (db *DB) Connection() Connection {
	return db.conn
}

// IsRetryable reports whether err is a transient server-side failure.
func (db *DB) IsRetryable(err error) bool {
	return db.errorClassificator.Classify(err) == Retryable
}
