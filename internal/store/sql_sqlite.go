package store

import (
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-db-config/internal/dbconfig"
)

func sqliteConnection(settings dbconfig.Settings) (Connection, error) {
	// settings maps use "filename", parsed URLs put the path in "database"
	filename := settings.String(dbconfig.KeyFilename)
	if filename == "" {
		filename = settings.String(dbconfig.KeyDatabase)
	}

	if filename == "" {
		return Connection{}, fmt.Errorf("%w: %s", ErrMissingSetting, dbconfig.KeyFilename)
	}

	return Connection{
		DriverName: "sqlite3",
		Dialect:    "sqlite3",
		DSN:        filename,
	}, nil
}
