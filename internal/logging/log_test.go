package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetLogger(t *testing.T) {
	logfile := filepath.Join(t.TempDir(), "vsl.log")
	clog, err := SetLogger(nil, map[string]interface{}{
		"log.level": "info",
		"log.file":  logfile,
	})
	require.NoError(t, err)

	Infof("hello %s", "world")
	Verbosef("hidden")
	Errorf("boom")
	Tracef("hidden")
	clog.Warnf("careful\n")

	data, err := os.ReadFile(logfile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 3)
	require.Contains(t, lines[0], "[Infom] hello world")
	require.Contains(t, lines[1], "[Error] boom")
	require.Contains(t, lines[2], "[Warng] careful")

	_, err = SetLogger(nil, map[string]interface{}{"log.level": "loud"})
	require.Error(t, err)
}

func TestCustomLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf, LevelIgnore)
	_, err := SetLogger(l, nil)
	require.NoError(t, err)

	Errorf("dropped")
	require.Zero(t, buf.Len())

	require.NoError(t, l.SetLogLevel("DEBUG"))
	Debugf("kept")
	require.Contains(t, buf.String(), "[Debug] kept")
	require.Error(t, l.SetLogLevel("nope"))
}

func TestLevelNames(t *testing.T) {
	for _, name := range []string{"ignore", "error", "warn", "info", "verbose", "debug", "trace"} {
		lvl, err := ParseLevel(name)
		require.NoError(t, err)
		require.Len(t, lvl.String(), 5)
	}
	require.Equal(t, "Level(42)", Level(42).String())
}
