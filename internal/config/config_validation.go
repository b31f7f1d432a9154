// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"slices"

	"github.com/rs/zerolog"
)

var commands = []string{CommandShow, CommandEnvs, CommandPing, CommandUp, CommandStatus}

// validate checks that the final merged [StructuredConfig] is usable before
// dbconf acts on it.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if !slices.Contains(commands, cfg.Command) {
		return fmt.Errorf("%w: %q", ErrInvalidCommand, cfg.Command)
	}

	if cfg.DatabaseURL == "" && cfg.Source.ConfigFile == "" {
		return ErrInvalidSourceConfigs
	}

	if cfg.DatabaseURL != "" && cfg.Source.Env == "" {
		return ErrInvalidEnvConfigs
	}

	if cfg.Database.ConnectTimeout <= 0 {
		return ErrInvalidDatabaseConfigs
	}

	if _, err := zerolog.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err)
	}

	return nil
}
