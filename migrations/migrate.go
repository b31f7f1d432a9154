// Package migrations runs goose migrations against the database resolved
// for the current environment.
package migrations

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
)

// ErrNilDB is returned when no database handle is supplied.
var ErrNilDB = errors.New("db is nil")

// MigrationStatus describes one migration file found in the directory.
type MigrationStatus struct {
	Version int64
	Source  string
	Applied bool
}

func newProvider(db *sql.DB, dialect, dir string) (*goose.Provider, error) {
	if db == nil {
		return nil, ErrNilDB
	}

	provider, err := goose.NewProvider(goose.Dialect(dialect), db, os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("migration error creating provider: %w", err)
	}

	return provider, nil
}

// Migrate applies all pending migrations from dir using the goose dialect of
// the connection. It returns the number of applied migrations.
func Migrate(ctx context.Context, db *sql.DB, dialect, dir string) (int, error) {
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return 0, err
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migration error: %w", err)
	}

	return len(results), nil
}

// Status reports every migration in dir and whether it has been applied.
func Status(ctx context.Context, db *sql.DB, dialect, dir string) ([]MigrationStatus, error) {
	provider, err := newProvider(db, dialect, dir)
	if err != nil {
		return nil, err
	}

	statuses, err := provider.Status(ctx)
	if err != nil {
		return nil, fmt.Errorf("migration error reading status: %w", err)
	}

	out := make([]MigrationStatus, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, MigrationStatus{
			Version: s.Source.Version,
			Source:  s.Source.Path,
			Applied: s.State == goose.StateApplied,
		})
	}

	return out, nil
}
