package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-db-config/internal/dbconfig"
)

// Connection describes how to reach the database of one environment.
type Connection struct {
	// DriverName is the database/sql driver name ("pgx", "sqlite3").
	DriverName string
	// Dialect is the goose dialect matching the driver.
	Dialect string
	// DSN is the driver-specific data source name. It may contain secrets.
	DSN string
}

// NewConnection maps resolved settings to a [Connection]. The "driver"
// setting selects the backend:
//   - postgres, postgresql, pg: jackc/pgx;
//   - sqlite3, sqlite: mattn/go-sqlite3.
func NewConnection(settings dbconfig.Settings) (Connection, error) {
	driver := strings.ToLower(settings.String(dbconfig.KeyDriver))

	switch driver {
	case "postgres", "postgresql", "pg":
		return postgresConnection(settings), nil
	case "sqlite3", "sqlite":
		return sqliteConnection(settings)
	case "":
		return Connection{}, fmt.Errorf("%w: %s", ErrMissingSetting, dbconfig.KeyDriver)
	default:
		return Connection{}, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}
}
