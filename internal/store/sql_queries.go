package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

// versionTable is goose's default bookkeeping table.
const versionTable = "goose_db_version"

// buildMigrationVersionQuery selects the newest applied migration version.
func buildMigrationVersionQuery(dialect string) (string, []any, error) {
	var placeholder sq.PlaceholderFormat = sq.Question
	if dialect == "postgres" {
		placeholder = sq.Dollar
	}

	return sq.Select("version_id").
		From(versionTable).
		Where(sq.Eq{"is_applied": true}).
		OrderBy("id DESC").
		Limit(1).
		PlaceholderFormat(placeholder).
		ToSql()
}

// MigrationVersion returns the newest applied migration version, or 0 when
// no migration was recorded yet.
func (db *DB) MigrationVersion(ctx context.Context) (int64, error) {
	query, args, err := buildMigrationVersionQuery(db.conn.Dialect)
	if err != nil {
		db.logger.Err(err).Str("func", "MigrationVersion").Msg("error building query")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var version int64
	err = db.QueryRowContext(ctx, query, args...).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		db.logger.Err(err).Str("func", "MigrationVersion").Msg("error reading migration version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, nil
}
