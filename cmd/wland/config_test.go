package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsDefaults(t *testing.T) {
	s, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "csv", s.Format)
	assert.Empty(t, s.Domain)
	assert.Empty(t, s.RecordsFile)
}

func TestLoadSettingsFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wland.yaml")
	fixture := "format: md\ndomain: example.org\nrecords_file: results.yaml\n"
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o644))

	s, err := loadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "md", s.Format)
	assert.Equal(t, "example.org", s.Domain)
	assert.Equal(t, "results.yaml", s.RecordsFile)
}

func TestLoadSettingsEnvOverride(t *testing.T) {
	t.Setenv("WLAND_FORMAT", "html")
	t.Setenv("WLAND_DOMAIN", "env.example")

	s, err := loadSettings("")
	require.NoError(t, err)
	assert.Equal(t, "html", s.Format)
	assert.Equal(t, "env.example", s.Domain)
}

func TestLoadSettingsMissingExplicitFile(t *testing.T) {
	_, err := loadSettings(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
