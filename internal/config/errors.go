package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidSourceConfigs indicates that neither a configuration file
	// nor a database URL was given.
	ErrInvalidSourceConfigs = errors.New("invalid source configuration")
	// ErrInvalidEnvConfigs indicates a database URL without an environment
	// name to store it under.
	ErrInvalidEnvConfigs = errors.New("invalid environment configuration")
	// ErrInvalidDatabaseConfigs indicates invalid connection settings
	// (for example, a non-positive connect timeout).
	ErrInvalidDatabaseConfigs = errors.New("invalid database configuration")
	// ErrInvalidLogConfigs indicates an unknown log level.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidCommand indicates an unknown positional command.
	ErrInvalidCommand = errors.New("invalid command")
)
