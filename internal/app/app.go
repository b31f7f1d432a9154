// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app wires the dbconf command: it resolves the database
// configuration named by [config.StructuredConfig] and runs the selected
// command against it.
package app

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/MKhiriev/go-db-config/internal/config"
	"github.com/MKhiriev/go-db-config/internal/dbconfig"
	"github.com/MKhiriev/go-db-config/internal/logger"
	"github.com/MKhiriev/go-db-config/internal/store"
	"github.com/MKhiriev/go-db-config/migrations"
)

// App runs one dbconf command.
type App struct {
	cfg     *config.StructuredConfig
	environ map[string]string
	out     io.Writer
	logger  *logger.Logger
}

// NewApp constructs an App. environ is the environment map used for
// interpolation and environment selection; out receives command output.
func NewApp(cfg *config.StructuredConfig, environ map[string]string, out io.Writer, log *logger.Logger) *App {
	return &App{
		cfg:     cfg,
		environ: environ,
		out:     out,
		logger:  log,
	}
}

// Run resolves the configuration and executes the configured command.
func (a *App) Run(ctx context.Context) error {
	resolved, err := a.loadConfig()
	if err != nil {
		return fmt.Errorf("error resolving database config: %w", err)
	}

	a.logger.Debug().
		Str("env", resolved.GetCurrent().Env).
		Str("command", a.cfg.Command).
		Msg("running command")

	switch a.cfg.Command {
	case config.CommandShow:
		return a.show(resolved)
	case config.CommandEnvs:
		return a.envs(resolved)
	case config.CommandPing:
		return a.withDB(ctx, resolved, a.ping)
	case config.CommandUp:
		return a.withDB(ctx, resolved, a.up)
	case config.CommandStatus:
		return a.withDB(ctx, resolved, a.status)
	default:
		return fmt.Errorf("%w: %q", config.ErrInvalidCommand, a.cfg.Command)
	}
}

func (a *App) loadConfig() (*dbconfig.ResolvedConfig, error) {
	opts := []dbconfig.Option{
		dbconfig.WithEnviron(a.environ),
		dbconfig.WithEnvSelector(a.cfg.Source.EnvSelector),
		dbconfig.WithLogger(a.logger),
	}

	if a.cfg.DatabaseURL != "" {
		return dbconfig.LoadURL(a.cfg.DatabaseURL, a.cfg.Source.Env, opts...)
	}

	return dbconfig.LoadFile(a.cfg.Source.ConfigFile, a.cfg.Source.Env, opts...)
}

func (a *App) show(resolved *dbconfig.ResolvedConfig) error {
	current := resolved.GetCurrent()
	current.Settings = current.Settings.Redacted()

	payload, err := json.MarshalIndent(current, "", "  ")
	if err != nil {
		return fmt.Errorf("error encoding current config: %w", err)
	}

	_, err = fmt.Fprintln(a.out, string(payload))
	return err
}

func (a *App) envs(resolved *dbconfig.ResolvedConfig) error {
	currentEnv := resolved.GetCurrent().Env

	for _, name := range resolved.Envs() {
		marker := " "
		if name == currentEnv {
			marker = "*"
		}

		form := "settings"
		if branch, _ := resolved.Env(name); branch.IsURL() {
			form = "url"
		}

		if _, err := fmt.Fprintf(a.out, MsgEnvLine, marker, name, form); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) withDB(ctx context.Context, resolved *dbconfig.ResolvedConfig, fn func(context.Context, *store.DB) error) error {
	connectCtx, cancel := context.WithTimeout(ctx, a.cfg.Database.ConnectTimeout)
	defer cancel()

	db, err := store.Open(connectCtx, resolved.GetCurrent().Settings, a.logger)
	if err != nil {
		return err
	}
	defer db.Close()

	return fn(ctx, db)
}

func (a *App) ping(_ context.Context, db *store.DB) error {
	_, err := fmt.Fprintf(a.out, MsgPingOK, db.Connection().DriverName)
	return err
}

func (a *App) up(ctx context.Context, db *store.DB) error {
	applied, err := migrations.Migrate(ctx, db.DB, db.Connection().Dialect, a.cfg.Database.MigrationsDir)
	if err != nil {
		return err
	}

	a.logger.Info().Int("applied", applied).Msg("migrations applied")
	_, err = fmt.Fprintf(a.out, MsgMigrationsApplied, applied)
	return err
}

func (a *App) status(ctx context.Context, db *store.DB) error {
	// goose creates its version table while collecting the status
	statuses, err := migrations.Status(ctx, db.DB, db.Connection().Dialect, a.cfg.Database.MigrationsDir)
	if err != nil {
		return err
	}

	version, err := db.MigrationVersion(ctx)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintf(a.out, MsgCurrentVersion, version); err != nil {
		return err
	}

	for _, s := range statuses {
		state := "pending"
		if s.Applied {
			state = "applied"
		}
		if _, err = fmt.Fprintf(a.out, MsgMigrationLine, state, s.Version, s.Source); err != nil {
			return err
		}
	}

	return nil
}
