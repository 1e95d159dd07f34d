package hooks

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunAll(t *testing.T) {
	ctx := context.Background()
	workDir := t.TempDir()
	vars := Variables{Theme: "solarized-dark", Format: "css", File: "out/solarized-dark.css"}

	tests := []struct {
		name     string
		hooks    []*HookConfig
		expected string
	}{
		{
			name:     "no hooks",
			hooks:    []*HookConfig{},
			expected: "",
		},
		{
			name: "single hook",
			hooks: []*HookConfig{
				{Command: "echo 'formatted'", Timeout: 5},
			},
			expected: "formatted\n",
		},
		{
			name: "variables expanded",
			hooks: []*HookConfig{
				{Command: "echo {{theme}} {{format}} {{file}}", Timeout: 5},
			},
			expected: "solarized-dark css out/solarized-dark.css\n",
		},
		{
			name: "multiple hooks joined",
			hooks: []*HookConfig{
				{Command: "echo first", Timeout: 5},
				{Command: "echo second", Timeout: 5},
			},
			expected: "first\n\nsecond\n",
		},
		{
			name: "format filter",
			hooks: []*HookConfig{
				{Command: "echo ts-only", Timeout: 5, Formats: []string{"ts"}},
				{Command: "echo css-only", Timeout: 5, Formats: []string{"css"}},
			},
			expected: "css-only\n",
		},
		{
			name: "nil and empty hooks skipped",
			hooks: []*HookConfig{
				nil,
				{Command: ""},
				{Command: "echo ok", Timeout: 5},
			},
			expected: "ok\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RunAll(ctx, tt.hooks, workDir, vars)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestRunAllStopsAtFailure(t *testing.T) {
	workDir := t.TempDir()
	marker := filepath.Join(workDir, "ran")

	hooks := []*HookConfig{
		{Command: "echo before", Timeout: 5},
		{Command: "echo broken >&2; exit 3", Timeout: 5},
		{Command: "touch " + marker, Timeout: 5},
	}

	out, err := RunAll(context.Background(), hooks, workDir, Variables{Format: "css"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHookFailed))
	assert.Contains(t, err.Error(), "broken")
	assert.Equal(t, "before\n", out)
	assert.NoFileExists(t, marker)
}

func TestExecuteRunsInWorkDir(t *testing.T) {
	workDir := t.TempDir()
	out, err := Execute(context.Background(), &HookConfig{Command: "pwd"}, workDir, Variables{})
	require.NoError(t, err)

	want, err := filepath.EvalSymlinks(workDir)
	require.NoError(t, err)
	got, err := filepath.EvalSymlinks(filepath.Clean(out[:len(out)-1]))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestExecuteTimeout(t *testing.T) {
	hook := &HookConfig{Command: "sleep 5", Timeout: 1}

	start := time.Now()
	_, err := Execute(context.Background(), hook, t.TempDir(), Variables{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrHookFailed))
	assert.Contains(t, err.Error(), "timed out")
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExecuteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Execute(ctx, &HookConfig{Command: "echo hi"}, t.TempDir(), Variables{})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLoadConfig(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		cfg, err := LoadConfig(t.TempDir())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})

	t.Run("valid file", func(t *testing.T) {
		dir := t.TempDir()
		content := `version: 1
hooks:
  post_export:
    - command: prettier --write {{file}}
      timeout: 10
      formats: [ts, css]
`
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0644))

		cfg, err := LoadConfig(dir)
		require.NoError(t, err)
		require.NotNil(t, cfg)
		assert.Equal(t, 1, cfg.Version)
		require.Len(t, cfg.Hooks.PostExport, 1)
		hook := cfg.Hooks.PostExport[0]
		assert.Equal(t, "prettier --write {{file}}", hook.Command)
		assert.Equal(t, 10, hook.Timeout)
		assert.True(t, hook.Applies("ts"))
		assert.False(t, hook.Applies("json"))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("hooks: [\n"), 0644))
		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}
