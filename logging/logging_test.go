package logging_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/judgekit/logging"
)

func TestLevels(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.Shutdown()

	logging.SetVerbose(false)
	logging.Debugf("hidden %d", 1)
	logging.Infof("solved %s", "10986")
	logging.Warningf("slow")
	logging.Errorf("bad input")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, " INFO solved 10986")
	assert.Contains(t, out, " WARNING slow")
	assert.Contains(t, out, " ERROR bad input")

	buf.Reset()
	logging.SetVerbose(true)
	logging.Debugf("shown %d", 2)
	assert.Contains(t, buf.String(), " DEBUG shown 2")
}

func TestSetLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "judgekit.log")
	cfg := &logging.Config{Logfile: path, MaxSize: 1, MaxAge: 1, Verbose: true}
	cfg.SetLogger()
	logging.Debugf("to file")
	logging.Shutdown()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), " DEBUG to file")
}

func TestSetLogger_Nil(t *testing.T) {
	var c *logging.Config
	assert.NotPanics(t, func() { c.SetLogger() })
	logging.Shutdown()
}
