package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mrz1836/gitstage/internal/config"
	"github.com/mrz1836/gitstage/internal/logging"
)

func TestSelectLevel(t *testing.T) {
	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, false))
	assert.Equal(t, zerolog.WarnLevel, selectLevel(false, true))
	assert.Equal(t, zerolog.InfoLevel, selectLevel(false, false))
	assert.Equal(t, zerolog.DebugLevel, selectLevel(true, true), "verbose wins")
}

func TestSelectOutput_NonTTY(t *testing.T) {
	t.Setenv("NO_COLOR", "1")
	assert.Equal(t, os.Stderr, selectOutput())
}

func TestInitLoggerWithWriter(t *testing.T) {
	var buf bytes.Buffer
	logger := InitLoggerWithWriter(true, false, &buf)

	logger.Debug().Str("path", "a/b.txt").Msg("staged")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "debug", entry["level"])
	assert.Equal(t, "staged", entry["message"])
	assert.Equal(t, "a/b.txt", entry["path"])
	assert.Contains(t, entry, "time")
}

func TestInitLogger_WritesFilteredFile(t *testing.T) {
	isolateEnv(t)
	t.Cleanup(CloseLogFile)

	logger := InitLogger(false, false, config.DefaultConfig().Log)
	secret := "https://bob:" + "s3cr3tTESTONLY" + "@example.com/r.git"
	logger.Info().Str("url", secret).Msg("remote resolved")
	CloseLogFile()

	path, err := LogFilePath()
	require.NoError(t, err)
	data, err := os.ReadFile(path) //#nosec G304 -- test path
	require.NoError(t, err)

	assert.Contains(t, string(data), "remote resolved")
	assert.NotContains(t, string(data), "s3cr3tTESTONLY")
	assert.Contains(t, string(data), logging.RedactedValue)
}

func TestInitLogger_FileDisabled(t *testing.T) {
	home := isolateEnv(t)

	settings := config.DefaultConfig().Log
	settings.FileEnabled = false
	InitLogger(false, true, settings)
	CloseLogFile()

	_, err := os.Stat(filepath.Join(home, "logs"))
	assert.True(t, os.IsNotExist(err))
}

func TestLogFilePath(t *testing.T) {
	home := isolateEnv(t)

	path, err := LogFilePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "logs", "gitstage.log"), path)
}

func TestFilteringWriteCloser(t *testing.T) {
	var buf bytes.Buffer
	closed := false
	fwc := &filteringWriteCloser{
		filter: logging.NewFilteringWriter(&buf),
		closer: closerFunc(func() error { closed = true; return nil }),
	}

	token := "ghp_" + "xxxxxxxxxxTESTONLYxxxxxxxxxx"
	n, err := fwc.Write([]byte("token " + token))
	require.NoError(t, err)
	assert.Equal(t, len("token "+token), n)
	assert.NotContains(t, buf.String(), token)

	require.NoError(t, fwc.Close())
	assert.True(t, closed)
}

type closerFunc func() error

func (f closerFunc) Close() error { return f() }
