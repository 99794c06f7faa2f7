package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		verbosity int
		wantLevel zerolog.Level
	}{
		{"default warn level", 0, zerolog.WarnLevel},
		{"info level", 1, zerolog.InfoLevel},
		{"debug level", 2, zerolog.DebugLevel},
		{"trace level", 3, zerolog.TraceLevel},
		{"high verbosity defaults to trace", 5, zerolog.TraceLevel},
		{"negative verbosity stays at warn", -1, zerolog.WarnLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tempDir := t.TempDir()
			t.Setenv("XDG_STATE_HOME", tempDir)

			SetupLogger(Options{Verbosity: tt.verbosity, Console: &bytes.Buffer{}})

			assert.Equal(t, tt.wantLevel, zerolog.GlobalLevel())

			logPath := filepath.Join(tempDir, AppName, AppName+".log")
			_, err := os.Stat(logPath)
			assert.NoError(t, err, "log file should exist at %s", logPath)
		})
	}
}

func TestSetupLogger_Console(t *testing.T) {
	tests := []struct {
		name      string
		noColor   bool
		envColor  string
		wantColor bool
	}{
		{"colored by default", false, "", true},
		{"no-color flag", true, "", false},
		{"NO_COLOR environment", false, "1", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_STATE_HOME", t.TempDir())
			t.Setenv("NO_COLOR", tt.envColor)
			original := log.Logger
			defer func() { log.Logger = original }()

			var console bytes.Buffer
			SetupLogger(Options{Verbosity: 1, NoColor: tt.noColor, Console: &console})
			logger := GetLogger("core.generate")
			logger.Info().Str("target", "magelocal").Msg("staged")

			out := console.String()
			assert.Contains(t, out, "staged")
			assert.Equal(t, tt.wantColor, strings.Contains(out, "\x1b["), out)
		})
	}
}

func TestSetupLogger_FileTaggedWithApp(t *testing.T) {
	state := t.TempDir()
	t.Setenv("XDG_STATE_HOME", state)
	original := log.Logger
	defer func() { log.Logger = original }()

	SetupLogger(Options{Verbosity: 1, Console: &bytes.Buffer{}})
	logger := GetLogger("targets.dispatcher")
	logger.Info().Msg("planned")

	data, err := os.ReadFile(filepath.Join(state, AppName, AppName+".log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"app":"pear2modman"`)
	assert.Contains(t, string(data), `"component":"targets.dispatcher"`)
}

func TestLogFilePath(t *testing.T) {
	t.Setenv("XDG_STATE_HOME", "/custom/state")

	got := LogFilePath()
	assert.Equal(t, filepath.Join("/custom/state", AppName, AppName+".log"), got)
}

func TestSetupLogFile_CreatesParents(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "nested", "dir", "test.log")

	f, err := setupLogFile(logPath)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	_, err = os.Stat(logPath)
	assert.NoError(t, err)
}

func TestGetLogger_AddsComponent(t *testing.T) {
	var buf bytes.Buffer
	original := log.Logger
	defer func() { log.Logger = original }()

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = zerolog.New(&buf)

	logger := GetLogger("targets.dispatcher")
	logger.Info().Msg("planned")

	assert.True(t, strings.Contains(buf.String(), `"component":"targets.dispatcher"`), buf.String())
}
