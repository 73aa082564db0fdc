package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergent-company/netgraph/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, "default", cfg.Net.DefaultStatusName)
	assert.Equal(t, "accepted", cfg.Net.AcceptedStatusName)
	assert.Equal(t, "info", cfg.Log.Level)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netgraphctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[net]
default_status_name = "todo"
accepted_status_name = "done"

[log]
level = "debug"
`), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "todo", cfg.Net.DefaultStatusName)
	assert.Equal(t, "done", cfg.Net.AcceptedStatusName)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netgraphctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[log]
level = "debug"
`), 0o644))

	t.Setenv("NETGRAPHCTL_LOG_LEVEL", "error")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.Log.Level)
}

func TestLoad_RejectsSameDefaultAndAcceptedNames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "netgraphctl.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[net]
default_status_name = "same"
accepted_status_name = "same"
`), 0o644))

	_, err := config.Load(path)
	require.Error(t, err)
}
