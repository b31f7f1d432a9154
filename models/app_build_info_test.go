package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo(t *testing.T) {
	info := NewAppBuildInfo("1.2.0", "2026-10-19", "abc123")

	assert.Equal(t, "1.2.0", info.BuildVersion())
	assert.Equal(t, "2026-10-19", info.BuildDate())
	assert.Equal(t, "abc123", info.BuildCommit())
	assert.Equal(t, "dbconf 1.2.0 (commit abc123, built 2026-10-19)", info.String())
}

func TestNewAppBuildInfo_Defaults(t *testing.T) {
	info := NewAppBuildInfo("", "", "")

	assert.Equal(t, "N/A", info.BuildVersion())
	assert.Equal(t, "N/A", info.BuildDate())
	assert.Equal(t, "N/A", info.BuildCommit())
}
