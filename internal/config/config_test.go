package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/csheth/algoscout/internal/nav"
)

func TestLoadMissingDefaultFileYieldsDefaults(t *testing.T) {
	t.Setenv(EnvPath, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	require.True(t, cfg.UseAltScreen())
	require.Equal(t, nav.Home, cfg.View())
	require.Equal(t, "info", cfg.Log.Level)
	require.NotEmpty(t, cfg.ExportPath)
}

func TestLoadExplicitMissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadEnvPathMissingFails(t *testing.T) {
	t.Setenv(EnvPath, filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load("")
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	body := `content_dir: /srv/algos
alt_screen: false
start_view: compare
export_path: /tmp/out.json
log:
  file: /tmp/algoscout.log
  level: debug
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "/srv/algos", cfg.ContentDir)
	require.False(t, cfg.UseAltScreen())
	require.Equal(t, nav.Compare, cfg.View())
	require.Equal(t, "/tmp/out.json", cfg.ExportPath)
	require.Equal(t, LogConfig{File: "/tmp/algoscout.log", Level: "debug"}, cfg.Log)
}

func TestLoadEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("start_view: list\n"), 0o644))
	t.Setenv(EnvPath, path)

	got, err := DefaultPath()
	require.NoError(t, err)
	require.Equal(t, path, got)

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, nav.List, cfg.View())
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"yaml": "start_view: [",
		"view": "start_view: settings\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}
