package dbconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEnvName(t *testing.T) {
	doc := Document{
		DefaultEnvKey: "local",
		"local":       map[string]any{},
		"dev":         map[string]any{},
		"prod":        "postgres://h/d",
	}

	tests := []struct {
		name     string
		explicit string
		environ  map[string]string
		want     string
	}{
		{name: "explicit wins", explicit: "prod", environ: map[string]string{"NODE_ENV": "dev"}, want: "prod"},
		{name: "selector variable", environ: map[string]string{"NODE_ENV": "dev"}, want: "dev"},
		{name: "empty selector falls through", environ: map[string]string{"NODE_ENV": ""}, want: "local"},
		{name: "document default", environ: map[string]string{}, want: "local"},
		{name: "nil environ", want: "local"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveEnvName(doc, tt.explicit, tt.environ)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolveEnvName_NoneSelected(t *testing.T) {
	_, err := ResolveEnvName(Document{"dev": map[string]any{}}, "", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoEnvironmentSelected)
}

func TestResolveEnvName_Unknown(t *testing.T) {
	tests := []struct {
		name     string
		doc      Document
		explicit string
		environ  map[string]string
		missing  string
	}{
		{name: "explicit", doc: Document{"dev": "x"}, explicit: "qa", missing: "qa"},
		{name: "selector", doc: Document{"dev": "x"}, environ: map[string]string{"NODE_ENV": "stage"}, missing: "stage"},
		{name: "default", doc: Document{DefaultEnvKey: "local", "dev": "x"}, missing: "local"},
		{name: "reserved key", doc: Document{DefaultEnvKey: "x", "dev": "x"}, explicit: DefaultEnvKey, missing: DefaultEnvKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveEnvName(tt.doc, tt.explicit, tt.environ)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnknownEnvironment)
			assert.Contains(t, err.Error(), tt.missing)
		})
	}
}

func TestResolveEnvName_CustomSelector(t *testing.T) {
	doc := Document{"dev": "x", "prod": "y"}
	environ := map[string]string{"NODE_ENV": "dev", "APP_ENV": "prod"}

	got, err := resolveEnvName(doc, "", "APP_ENV", environ)
	require.NoError(t, err)
	assert.Equal(t, "prod", got)
}

func TestDocument_Envs(t *testing.T) {
	doc := Document{DefaultEnvKey: "dev", "prod": "x", "dev": "y", "test": nil}
	assert.Equal(t, []string{"dev", "prod", "test"}, doc.Envs())
	assert.Equal(t, "dev", doc.DefaultEnv())
	assert.Empty(t, Document{DefaultEnvKey: 1.0}.DefaultEnv())
}
