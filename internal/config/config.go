// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// Commands understood by dbconf.
const (
	// CommandShow prints the current environment and its settings.
	CommandShow = "show"
	// CommandEnvs lists the environments of the configuration document.
	CommandEnvs = "envs"
	// CommandPing opens a connection to the current environment's database.
	CommandPing = "ping"
	// CommandUp applies pending migrations.
	CommandUp = "up"
	// CommandStatus prints the applied migration version and pending files.
	CommandStatus = "status"
)

// StructuredConfig is the top-level configuration container for the dbconf
// command. It is populated by merging values from command-line flags and
// environment variables.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - envDefault: value used when the variable is unset.
type StructuredConfig struct {
	// Source describes where the database configuration comes from.
	Source Source `envPrefix:"DBCONF_"`

	// Database holds settings used when dbconf talks to the database.
	Database Database `envPrefix:"DBCONF_DB_"`

	// Log holds logging settings.
	Log Log `envPrefix:"DBCONF_LOG_"`

	// DatabaseURL is a connection string used instead of the configuration
	// file. Requires [Source.Env] to name the synthesized environment.
	// Env: DATABASE_URL
	DatabaseURL string `env:"DATABASE_URL"`

	// Command is the positional command (see Command* constants).
	// Defaults to [CommandShow].
	Command string
}

// Source selects the configuration document and its current environment.
type Source struct {
	// ConfigFile is the path to the JSON configuration document.
	// Env: DBCONF_CONFIG
	ConfigFile string `env:"CONFIG" envDefault:"database.json"`

	// Env explicitly names the current environment.
	// Env: DBCONF_ENV
	Env string `env:"ENV"`

	// EnvSelector names the variable consulted for the current environment
	// when Env is empty.
	// Env: DBCONF_ENV_SELECTOR
	EnvSelector string `env:"ENV_SELECTOR" envDefault:"NODE_ENV"`
}

// Database holds settings used when connecting to the resolved database.
type Database struct {
	// MigrationsDir is the directory holding goose migration files.
	// Env: DBCONF_DB_MIGRATIONS_DIR
	MigrationsDir string `env:"MIGRATIONS_DIR" envDefault:"migrations"`

	// ConnectTimeout bounds opening and pinging the database (e.g. "5s").
	// Env: DBCONF_DB_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT" envDefault:"5s"`
}

// Log holds logging settings.
type Log struct {
	// Level is a zerolog level name ("debug", "info", "warn", ...).
	// Env: DBCONF_LOG_LEVEL
	Level string `env:"LEVEL" envDefault:"info"`
}

// GetStructuredConfig loads, merges, and validates the dbconf configuration
// from args (without the program name) and the process environment. Flags
// take precedence over environment variables.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string, environ map[string]string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withFlags(args).
		withEnv(environ).
		build()
}
