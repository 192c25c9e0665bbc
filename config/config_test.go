package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "judgekit.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_EmptyPath(t *testing.T) {
	c, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), c)
}

func TestLoad_LogTable(t *testing.T) {
	path := writeFile(t, `
[log]
logfile = "/tmp/judgekit.log"
max_log_size = 10
max_log_age = 7
verbose = true
`)
	c, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/judgekit.log", c.Log.Logfile)
	assert.Equal(t, 10, c.Log.MaxSize)
	assert.Equal(t, 7, c.Log.MaxAge)
	assert.True(t, c.Log.Verbose)
}

func TestLoad_UnknownKey(t *testing.T) {
	path := writeFile(t, "[log]\nlogfiel = \"x\"\n")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrUnknownKey)
	assert.Contains(t, err.Error(), "log.logfiel")
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = config.Load(writeFile(t, "[log\n"))
	assert.Error(t, err)
}
