package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 100, cfg.PartyListSeats)
	assert.Equal(t, "75.22%", cfg.Turnout)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
input: fixtures/election66.xlsx
output: public/data/results.json
partyListSeats: 150
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fixtures/election66.xlsx", cfg.Input)
	assert.Equal(t, "public/data/results.json", cfg.Output)
	assert.Equal(t, 150, cfg.PartyListSeats)
	// Unset fields keep their defaults.
	assert.Equal(t, "75.22%", cfg.Turnout)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "input: [unclosed")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsNonPositiveSeats(t *testing.T) {
	path := writeConfig(t, "partyListSeats: 0")
	_, err := Load(path)
	assert.ErrorContains(t, err, "partyListSeats")
}

func TestLoadRejectsEmptyPaths(t *testing.T) {
	path := writeConfig(t, `input: ""`)
	_, err := Load(path)
	assert.ErrorContains(t, err, "input path")
}
