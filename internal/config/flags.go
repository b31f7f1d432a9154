package config

import (
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel is a zerolog level name. It implements the flag.Value interface
// and rejects unknown names while flags are parsed.
type LogLevel string

// ParseFlags parses args (without the program name) into a
// [StructuredConfig]. The first positional argument becomes the command;
// flags may appear on either side of it.
//
// Flags:
//
//	-c/-config path to the JSON configuration document
//	-e/-env current environment name
//	-selector variable consulted for the environment name
//	-u/-url connection string used instead of the document
//	-m/-migrations migrations directory
//	-timeout connect timeout (e.g., "5s")
//	-log-level log level (debug, info, warn, error)
func ParseFlags(args []string) (*StructuredConfig, error) {
	var configFile string
	var envName string
	var envSelector string
	var databaseURL string
	var migrationsDir string
	var connectTimeout time.Duration
	var logLevel LogLevel

	fs := flag.NewFlagSet("dbconf", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&configFile, "c", "", "JSON config file path")
	fs.StringVar(&configFile, "config", "", "JSON config file path (alias)")
	fs.StringVar(&envName, "e", "", "Current environment")
	fs.StringVar(&envName, "env", "", "Current environment (alias)")
	fs.StringVar(&envSelector, "selector", "", "Variable holding the current environment")
	fs.StringVar(&databaseURL, "u", "", "Database URL")
	fs.StringVar(&databaseURL, "url", "", "Database URL (alias)")
	fs.StringVar(&migrationsDir, "m", "", "Migrations directory")
	fs.StringVar(&migrationsDir, "migrations", "", "Migrations directory (alias)")
	fs.DurationVar(&connectTimeout, "timeout", 0, "Connect timeout (e.g., 5s)")
	fs.Var(&logLevel, "log-level", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	// flag stops at the first positional argument, so flags given after the
	// command ("show -e dev") need a second pass
	command := fs.Arg(0)
	if fs.NArg() > 1 {
		if err := fs.Parse(fs.Args()[1:]); err != nil {
			return nil, fmt.Errorf("error parsing flags: %w", err)
		}
		if fs.NArg() > 0 {
			return nil, fmt.Errorf("%w: unexpected argument %q", ErrInvalidCommand, fs.Arg(0))
		}
	}

	return &StructuredConfig{
		Source: Source{
			ConfigFile:  configFile,
			Env:         envName,
			EnvSelector: envSelector,
		},
		Database: Database{
			MigrationsDir:  migrationsDir,
			ConnectTimeout: connectTimeout,
		},
		Log: Log{
			Level: logLevel.String(),
		},
		DatabaseURL: databaseURL,
		Command:     command,
	}, nil
}

// String returns the level name.
func (l *LogLevel) String() string {
	return string(*l)
}

// Set validates s with zerolog.ParseLevel and stores it.
func (l *LogLevel) Set(s string) error {
	if _, err := zerolog.ParseLevel(s); err != nil {
		return err
	}

	*l = LogLevel(s)
	return nil
}
