package store

import "errors"

// Sentinel errors returned while turning resolved settings into a database
// connection. Callers should use [errors.Is] to match against these values.
var (
	// ErrUnsupportedDriver is returned when the settings name a driver that
	// has no database/sql driver registered in this binary.
	ErrUnsupportedDriver = errors.New("unsupported database driver")

	// ErrMissingSetting is returned when a setting required by the driver
	// (e.g. the sqlite filename) is empty.
	ErrMissingSetting = errors.New("missing database setting")

	// ErrDatabaseNotFound is returned when the server reports that the
	// configured database does not exist.
	ErrDatabaseNotFound = errors.New("database does not exist")

	// ErrAuthFailed is returned when the server rejects the configured
	// credentials.
	ErrAuthFailed = errors.New("database authentication failed")

	// ErrConnecting is returned when opening or pinging the database fails
	// for any other reason.
	ErrConnecting = errors.New("error connecting database")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT query fails.
	ErrExecutingQuery = errors.New("error executing sql query")
)
