package debug

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gofrs/flock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogDisabledIsNoop(t *testing.T) {
	Close()
	assert.False(t, IsEnabled())
	assert.Equal(t, "", Session())
	Log("nobody hears this")
	Timed("nothing")()
}

func TestEnableWritesSessionTaggedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "debug.log")
	require.NoError(t, Enable(path))

	assert.True(t, IsEnabled())
	sess := Session()
	assert.Len(t, sess, 8)

	Log("switched to %s", "facts")
	Timed("render")()
	Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)

	line := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\.\d{3}\] \[` + sess + `\] `)
	for _, l := range lines {
		assert.Regexp(t, line, l)
	}
	assert.Contains(t, lines[1], "switched to facts")
	assert.Contains(t, lines[3], "render completed in")
}

func TestEnableFallsBackWhenLogIsOwned(t *testing.T) {
	path := filepath.Join(t.TempDir(), "debug.log")

	other := flock.New(path + ".lock")
	locked, err := other.TryLock()
	require.NoError(t, err)
	require.True(t, locked)
	defer other.Unlock()

	require.NoError(t, Enable(path))
	defer Close()

	assert.True(t, IsEnabled())
	assert.Equal(t, filepath.Join(filepath.Dir(path), "debug."+Session()+".log"), Path())

	Log("second instance")
	data, err := os.ReadFile(Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), "second instance")

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "the owned log must not be touched")
}

func TestSessionPath(t *testing.T) {
	assert.Equal(t, "/tmp/p/debug.ab12cd34.log", sessionPath("/tmp/p/debug.log", "ab12cd34"))
	assert.Equal(t, "/tmp/p/log.ab12cd34", sessionPath("/tmp/p/log", "ab12cd34"))
}

func TestDefaultLogPath(t *testing.T) {
	assert.Equal(t, filepath.Join("pawprint", "debug.log"),
		filepath.Join(filepath.Base(filepath.Dir(DefaultLogPath())), filepath.Base(DefaultLogPath())))
}
