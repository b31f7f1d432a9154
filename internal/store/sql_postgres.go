package store

import (
	"net"
	"net/url"
	"slices"
	"strconv"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/MKhiriev/go-db-config/internal/dbconfig"
)

const defaultPostgresHost = "localhost"

// keyUsername is accepted as an alias of "user" in settings maps.
const keyUsername = "username"

// postgresReservedKeys are settings consumed by the DSN authority and path.
// Every other scalar setting becomes a query parameter (e.g. sslmode).
var postgresReservedKeys = []string{
	dbconfig.KeyDriver,
	dbconfig.KeyUser,
	keyUsername,
	dbconfig.KeyPassword,
	dbconfig.KeyHost,
	dbconfig.KeyPort,
	dbconfig.KeyDatabase,
	dbconfig.KeyFilename,
}

func postgresConnection(settings dbconfig.Settings) Connection {
	host := settings.String(dbconfig.KeyHost)
	if host == "" {
		host = defaultPostgresHost
	}
	if port, ok := settings.Int(dbconfig.KeyPort); ok {
		host = net.JoinHostPort(host, strconv.Itoa(port))
	}

	dsn := url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + settings.String(dbconfig.KeyDatabase),
	}

	user := settings.String(dbconfig.KeyUser)
	if user == "" {
		user = settings.String(keyUsername)
	}
	if user != "" {
		if settings.Has(dbconfig.KeyPassword) && settings[dbconfig.KeyPassword] != nil {
			dsn.User = url.UserPassword(user, settings.String(dbconfig.KeyPassword))
		} else {
			dsn.User = url.User(user)
		}
	}

	query := url.Values{}
	for key, value := range settings {
		if slices.Contains(postgresReservedKeys, key) || !isScalar(value) {
			continue
		}
		query.Set(key, settings.String(key))
	}
	dsn.RawQuery = query.Encode()

	return Connection{
		DriverName: "pgx",
		Dialect:    "postgres",
		DSN:        dsn.String(),
	}
}

func isScalar(value any) bool {
	switch value.(type) {
	case string, float64, int, bool:
		return true
	default:
		return false
	}
}
