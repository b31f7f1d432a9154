package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validConfig returns a config that passes validation.
func validConfig() *StructuredConfig {
	return &StructuredConfig{
		Source:   Source{ConfigFile: "database.json"},
		Database: Database{ConnectTimeout: time.Second},
		Log:      Log{Level: "info"},
	}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that building with no configs fails
// validation because no source is set.
func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSourceConfigs)
	assert.Nil(t, cfg)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_FirstSourceWins verifies that fields set by an earlier config are
// not overwritten by later ones, while zero fields are filled.
func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	first := validConfig()
	first.Source.Env = "prod"
	second := validConfig()
	second.Source.Env = "dev"
	second.Source.ConfigFile = "other.json"
	second.Database.MigrationsDir = "db/migrations"

	b.configs = append(b.configs, first, second)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "prod", cfg.Source.Env)
	assert.Equal(t, "database.json", cfg.Source.ConfigFile)
	assert.Equal(t, "db/migrations", cfg.Database.MigrationsDir)
}

// TestBuild_DefaultCommand verifies that an empty command becomes "show".
func TestBuild_DefaultCommand(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, validConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, CommandShow, cfg.Command)
}

// ── withEnv / withFlags ───────────────────────────────────────────────────────

// TestWithEnv_ReturnsBuilder verifies the fluent interface.
func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withEnv(map[string]string{}))
	assert.Len(t, b.configs, 1)
}

// TestWithEnv_SetsErrorOnBadValue verifies that a value that cannot be
// converted is reported through b.err.
func TestWithEnv_SetsErrorOnBadValue(t *testing.T) {
	b := newConfigBuilder()
	b.withEnv(map[string]string{"DBCONF_DB_CONNECT_TIMEOUT": "soon"})

	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// TestWithFlags_ReturnsBuilder verifies the fluent interface.
func TestWithFlags_ReturnsBuilder(t *testing.T) {
	b := newConfigBuilder()
	assert.Same(t, b, b.withFlags(nil))
	assert.Len(t, b.configs, 1)
}

// TestWithFlags_SetsErrorOnUnknownFlag verifies that parse failures are
// collected.
func TestWithFlags_SetsErrorOnUnknownFlag(t *testing.T) {
	b := newConfigBuilder()
	b.withFlags([]string{"-nope"})

	assert.Error(t, b.err)
}

// ── GetStructuredConfig ───────────────────────────────────────────────────────

// TestGetStructuredConfig_Defaults verifies envDefault values when nothing is
// configured.
func TestGetStructuredConfig_Defaults(t *testing.T) {
	cfg, err := GetStructuredConfig(nil, map[string]string{})
	require.NoError(t, err)

	assert.Equal(t, "database.json", cfg.Source.ConfigFile)
	assert.Equal(t, "NODE_ENV", cfg.Source.EnvSelector)
	assert.Equal(t, "migrations", cfg.Database.MigrationsDir)
	assert.Equal(t, 5*time.Second, cfg.Database.ConnectTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, CommandShow, cfg.Command)
	assert.Empty(t, cfg.Source.Env)
}

// TestGetStructuredConfig_FlagsOverrideEnv verifies source precedence.
func TestGetStructuredConfig_FlagsOverrideEnv(t *testing.T) {
	environ := map[string]string{
		"DBCONF_CONFIG":    "env.json",
		"DBCONF_ENV":       "test",
		"DBCONF_LOG_LEVEL": "warn",
	}

	cfg, err := GetStructuredConfig([]string{"-e", "prod", "-log-level", "debug", "envs"}, environ)
	require.NoError(t, err)

	assert.Equal(t, "env.json", cfg.Source.ConfigFile)
	assert.Equal(t, "prod", cfg.Source.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, CommandEnvs, cfg.Command)
}

// TestGetStructuredConfig_DatabaseURL verifies the URL source.
func TestGetStructuredConfig_DatabaseURL(t *testing.T) {
	environ := map[string]string{"DATABASE_URL": "postgres://u:p@h/d"}

	_, err := GetStructuredConfig(nil, environ)
	assert.ErrorIs(t, err, ErrInvalidEnvConfigs)

	cfg, err := GetStructuredConfig([]string{"-env", "dev"}, environ)
	require.NoError(t, err)
	assert.Equal(t, "postgres://u:p@h/d", cfg.DatabaseURL)
	assert.Equal(t, "dev", cfg.Source.Env)
}

// TestGetStructuredConfig_UnknownCommand verifies command validation.
func TestGetStructuredConfig_UnknownCommand(t *testing.T) {
	_, err := GetStructuredConfig([]string{"drop"}, map[string]string{})
	assert.ErrorIs(t, err, ErrInvalidCommand)
}
