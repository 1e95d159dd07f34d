package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected Level
		wantErr  bool
	}{
		{"debug", LevelDebug, false},
		{"DEBUG", LevelDebug, false},
		{"info", LevelInfo, false},
		{" info ", LevelInfo, false},
		{"warn", LevelWarn, false},
		{"warning", LevelWarn, false},
		{"error", LevelError, false},
		{"ERROR", LevelError, false},
		{"invalid", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "DEBUG", LevelDebug.String())
	assert.Equal(t, "INFO", LevelInfo.String())
	assert.Equal(t, "WARN", LevelWarn.String())
	assert.Equal(t, "ERROR", LevelError.String())
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_SetLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelWarn)

	l.Debug("debug message")
	l.Info("info message")
	l.Warn("warn message")
	l.Error("error message")

	output := buf.String()
	assert.NotContains(t, output, "debug message")
	assert.NotContains(t, output, "info message")
	assert.Contains(t, output, "warn message")
	assert.Contains(t, output, "error message")
}

func TestLogger_LogFormat(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)
	l.SetLevel(LevelDebug)

	l.Info("palette %s loaded", "solarized-dark")

	output := buf.String()
	assert.Contains(t, output, "[INFO]")
	assert.Contains(t, output, "palette solarized-dark loaded")
}

func TestLogger_EnvVarLogLevel(t *testing.T) {
	t.Setenv("EDTHEME_LOG_LEVEL", "debug")
	t.Setenv("EDTHEME_LOG_FILE", "")

	l := New()
	assert.Equal(t, LevelDebug, l.level)
}

func TestLogger_EnvVarLogFile(t *testing.T) {
	tmpPath := filepath.Join(t.TempDir(), "edtheme.log")
	t.Setenv("EDTHEME_LOG_LEVEL", "")
	t.Setenv("EDTHEME_LOG_FILE", tmpPath)

	l := New()
	defer func() { _ = l.Close() }()

	l.Info("test message")

	content, err := os.ReadFile(tmpPath)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(content), "test message"))
}

func TestLogger_Configure(t *testing.T) {
	t.Setenv("EDTHEME_LOG_LEVEL", "")
	t.Setenv("EDTHEME_LOG_FILE", "")

	l := New()
	defer func() { _ = l.Close() }()

	t.Run("invalid level", func(t *testing.T) {
		err := l.Configure("loud", "")
		assert.Error(t, err)
		assert.Equal(t, LevelInfo, l.level)
	})

	t.Run("empty keeps settings", func(t *testing.T) {
		l.SetLevel(LevelError)
		require.NoError(t, l.Configure("", ""))
		assert.Equal(t, LevelError, l.level)
	})

	t.Run("file and level", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "configured.log")
		require.NoError(t, l.Configure("warn", path))

		l.Info("hidden")
		l.Warn("visible")

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.NotContains(t, string(content), "hidden")
		assert.Contains(t, string(content), "[WARN] visible")
	})

	t.Run("unwritable file", func(t *testing.T) {
		err := l.Configure("", filepath.Join(t.TempDir(), "missing", "dir", "x.log"))
		assert.Error(t, err)
	})
}

func TestLogger_Close(t *testing.T) {
	tmpPath := filepath.Join(t.TempDir(), "close.log")
	t.Setenv("EDTHEME_LOG_FILE", tmpPath)

	l := New()
	require.NoError(t, l.Close())
	// Closing twice is a no-op.
	require.NoError(t, l.Close())
}

func TestPackageLevelFunctions(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	Default.SetLevel(LevelDebug)

	Debug("debug %s", "test")
	Info("info %s", "test")
	Warn("warn %s", "test")
	Error("error %s", "test")

	output := buf.String()
	assert.Contains(t, output, "debug test")
	assert.Contains(t, output, "info test")
	assert.Contains(t, output, "warn test")
	assert.Contains(t, output, "error test")
}
