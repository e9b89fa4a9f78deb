package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(old) })
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "tnopnsptra.sql", cfg.DumpPath)
	assert.Equal(t, "dataapp.db", cfg.DatabasePath)
	assert.Equal(t, "migrator.log", cfg.LogPath)
	assert.Equal(t, "", cfg.DumpEncoding)
}

func TestLoadConfig_PartialFileKeepsDefaults(t *testing.T) {
	chdir(t, t.TempDir())
	require.NoError(t, os.WriteFile("ptra_config.json", []byte(`{"dumpPath": "export.sql", "dumpEncoding": "windows-1252"}`), 0644))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "export.sql", cfg.DumpPath)
	assert.Equal(t, "windows-1252", cfg.DumpEncoding)
	assert.Equal(t, "dataapp.db", cfg.DatabasePath)
	assert.Equal(t, "migrator.log", cfg.LogPath)
}

func TestSaveConfig_RoundTrip(t *testing.T) {
	chdir(t, t.TempDir())

	want := Config{DumpPath: "a.sql", DatabasePath: "b.db", LogPath: "c.log", DumpEncoding: "utf-8"}
	require.NoError(t, SaveConfig(want))

	got, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
