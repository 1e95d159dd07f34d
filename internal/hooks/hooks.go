// Package hooks runs user-configured shell commands around exports.
package hooks

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mark3labs/edtheme/internal/logger"
	"gopkg.in/yaml.v3"
)

// ConfigFileName is the name of the hooks configuration file.
const ConfigFileName = ".edtheme.hooks.yml"

// ErrHookFailed is returned when a hook exits non-zero or times out.
var ErrHookFailed = errors.New("hook failed")

// LoadConfig loads the hooks configuration from the working directory.
// Returns nil if the config file doesn't exist (hooks are optional).
// Returns an error only if the file exists but cannot be parsed.
func LoadConfig(workDir string) (*Config, error) {
	configPath := filepath.Join(workDir, ConfigFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Debug("No hooks config found at %s", configPath)
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read hooks config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse hooks config: %w", err)
	}

	logger.Debug("Loaded hooks config from %s (version: %d)", configPath, cfg.Version)
	return &cfg, nil
}

// Variables holds template variables that can be expanded in hook commands.
type Variables struct {
	Theme  string
	Format string
	File   string
}

// Execute runs a hook command and returns its stdout.
// Template variables in the command ({{theme}}, {{format}}, {{file}}) are
// expanded before execution. A non-zero exit or timeout returns
// ErrHookFailed with stderr attached.
func Execute(ctx context.Context, hook *HookConfig, workDir string, vars Variables) (string, error) {
	if hook == nil || hook.Command == "" {
		return "", nil
	}

	command := expandVariables(hook.Command, vars)
	logger.Debug("Executing hook command: %s", command)

	timeout := hook.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	execCtx, cancel := context.WithTimeout(ctx, time.Duration(timeout)*time.Second)
	defer cancel()

	cmd := exec.CommandContext(execCtx, "sh", "-c", command)
	cmd.Dir = workDir
	// Children of the shell may hold the output pipes open after a kill
	cmd.WaitDelay = time.Second

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	// Cancellation of the parent context is propagated as is
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	if execCtx.Err() == context.DeadlineExceeded {
		logger.Warn("Hook command timed out after %ds: %s", timeout, command)
		return stdout.String(), fmt.Errorf("%w: %q timed out after %ds", ErrHookFailed, command, timeout)
	}

	if err != nil {
		logger.Warn("Hook command failed: %v", err)
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return stdout.String(), fmt.Errorf("%w: %q: %v", ErrHookFailed, command, err)
		}
		return stdout.String(), fmt.Errorf("%w: %q: %v: %s", ErrHookFailed, command, err, msg)
	}

	if stderr.Len() > 0 {
		logger.Debug("Hook stderr: %s", stderr.String())
	}
	logger.Debug("Hook executed successfully, output length: %d bytes", len(stdout.String()))
	return stdout.String(), nil
}

// RunAll executes the hooks that apply to vars.Format in order and returns
// their combined output. It stops at the first failure.
func RunAll(ctx context.Context, hooks []*HookConfig, workDir string, vars Variables) (string, error) {
	var outputs []string
	for _, hook := range hooks {
		if hook == nil || !hook.Applies(vars.Format) {
			continue
		}
		out, err := Execute(ctx, hook, workDir, vars)
		if out != "" {
			outputs = append(outputs, out)
		}
		if err != nil {
			return strings.Join(outputs, "\n"), err
		}
	}
	return strings.Join(outputs, "\n"), nil
}

// expandVariables replaces {{variable}} placeholders in the command string.
func expandVariables(command string, vars Variables) string {
	return strings.NewReplacer(
		"{{theme}}", vars.Theme,
		"{{format}}", vars.Format,
		"{{file}}", vars.File,
	).Replace(command)
}
