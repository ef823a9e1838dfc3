package main

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/vidcash/internal/config"
	"github.com/jask/vidcash/internal/router"
	"github.com/jask/vidcash/internal/theme"
)

func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("HOME", dir)
	t.Setenv("VIDCASH_CONFIG", "")
	return dir
}

func TestRootCmdFlags(t *testing.T) {
	cmd := newRootCmd()
	for _, name := range []string{"config", config.FlagPage, config.FlagTheme} {
		require.NotNil(t, cmd.Flags().Lookup(name), name)
	}
}

func TestRootCmdRejectsUnknownPage(t *testing.T) {
	isolate(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--page", "dashbord"})
	err := cmd.ExecuteContext(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), `did you mean "dashboard"?`)
}

func TestRootCmdRejectsArgs(t *testing.T) {
	isolate(t)
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})
	require.Error(t, cmd.ExecuteContext(context.Background()))
}

func TestBuild(t *testing.T) {
	dir := isolate(t)
	cfgPath := filepath.Join(dir, "config.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
[ui]
start_page = "faq"
theme = "dark"

[log]
path = "`+filepath.ToSlash(filepath.Join(dir, "vidcash.log"))+`"
`), 0o600))

	cfg, err := config.Load(cfgPath, nil)
	require.NoError(t, err)
	app, closeLog, err := build(context.Background(), cfg)
	require.NoError(t, err)
	defer closeLog()

	require.Equal(t, router.FAQ, app.Page())
	require.Equal(t, theme.Dark, app.Theme())
	require.FileExists(t, filepath.Join(dir, "vidcash.log"))
}

func TestBuildBadCatalog(t *testing.T) {
	dir := isolate(t)
	cfg, err := config.Load("", nil)
	require.NoError(t, err)
	cfg.Log.Path = ""
	cfg.Catalog.Path = filepath.Join(dir, "missing.toml")
	_, _, err = build(context.Background(), cfg)
	require.ErrorContains(t, err, "catalog")
}
