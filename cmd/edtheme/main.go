package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/mark3labs/edtheme/internal/config"
	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █▀▄ ▀█▀ █ █ █▀▀ █▀▄▀█ █▀▀"
	logoText2 = "██▄ █▄▀  █  █▀█ ██▄ █ ▀ █ ██▄"
)

// Version set via ldflags during build
var version = "dev"

var rootFlags struct {
	theme    string
	logLevel string
	logFile  string
}

// cfg is populated by loadConfig before any subcommand runs.
var cfg = config.Defaults()

func main() {
	// Ensure logger is closed on exit
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:               "edtheme",
	Short:             "Editor theme definitions for CodeMirror",
	PersistentPreRunE: loadConfig,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	p := theme.SolarizedDarkPalette()
	line1 := applyGradient(logoText1, p.Function, p.Number)
	line2 := applyGradient(logoText2, p.Function, p.Number)
	return strings.Join([]string{line1, line2}, "\n")
}

// applyGradient colours each rune of text along a gradient from one colour to another.
func applyGradient(text string, from, to theme.Color) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}

	var sb strings.Builder
	steps := max(len(runes)-1, 1)
	for i, r := range runes {
		c := theme.InterpolateColor(from, to, float64(i)/float64(steps))
		sb.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(string(c))).Render(string(r)))
	}
	return sb.String()
}

// loadConfig resolves configuration, configures logging and loads custom
// palettes from the themes directory into the registry.
func loadConfig(cmd *cobra.Command, args []string) error {
	loaded, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags take precedence over everything else
	flags := cmd.Flags()
	if flags.Changed("theme") {
		loaded.Theme = rootFlags.theme
	}
	if flags.Changed("log-level") {
		loaded.LogLevel = rootFlags.logLevel
	}
	if flags.Changed("log-file") {
		loaded.LogFile = rootFlags.logFile
	}

	if err := loaded.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := logger.Configure(loaded.LogLevel, loaded.LogFile); err != nil {
		return err
	}
	// Without a log file, warnings go to the terminal
	if loaded.LogFile == "" {
		logger.SetOutput(cmd.ErrOrStderr())
	}

	custom, err := theme.LoadDir(loaded.ThemesDir)
	if err != nil {
		return err
	}
	logger.Debug("Loaded %d custom theme(s) from %s", len(custom), loaded.ThemesDir)

	cfg = loaded
	return nil
}

// resolveTheme returns the theme named by the first argument, or the
// configured default when no argument is given.
func resolveTheme(args []string) (*theme.Theme, error) {
	name := cfg.Theme
	if len(args) > 0 {
		name = args[0]
	}
	return theme.Get(name)
}

func init() {
	// Set Long description with logo
	rootCmd.Long = renderLogo() + `

edtheme manages editor theme definitions for CodeMirror. A theme is a
palette of named colour roles plus the chrome and syntax highlighting rules
that consume them. Themes can be validated, previewed in the terminal,
exported as CSS, TypeScript modules or data snapshots, and imported from
VS Code extensions.`

	rootCmd.PersistentFlags().StringVarP(&rootFlags.theme, "theme", "t", "", "Theme to operate on (default from config)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.logFile, "log-file", "", "Write logs to this file")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(importCmd)
	rootCmd.AddCommand(editCmd)
	rootCmd.AddCommand(setupCmd)
}
