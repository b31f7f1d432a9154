// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Human-readable output lines written by the dbconf commands. Keeping them in
// one place keeps wording consistent between commands and tests.
const (
	// MsgPingOK is printed after a successful ping; the argument is the
	// database/sql driver name.
	MsgPingOK = "ok: connected using %s\n"

	// MsgMigrationsApplied reports how many migrations "up" applied.
	MsgMigrationsApplied = "applied %d migration(s)\n"

	// MsgCurrentVersion reports the newest applied migration version.
	MsgCurrentVersion = "current version: %d\n"

	// MsgMigrationLine describes one migration file in "status" output.
	MsgMigrationLine = "%-8s %d %s\n"

	// MsgEnvLine describes one environment in "envs" output: a marker for
	// the current environment, the name and the declared form.
	MsgEnvLine = "%s %s (%s)\n"
)
