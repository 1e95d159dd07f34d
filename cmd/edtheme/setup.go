package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/edtheme/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Create edtheme configuration file",
	Long: `Create an edtheme configuration file with sensible defaults.

By default, creates a global config at ~/.config/edtheme/edtheme.yml.
Use --project to create a project-local config in the current directory.`,
	Args: cobra.NoArgs,
	// Setup must work even when an existing config is broken.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { return nil },
	RunE:              runSetup,
}

func init() {
	setupCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	setupCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	defaults := config.Defaults()
	if rootFlags.theme != "" {
		defaults.Theme = rootFlags.theme
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(defaults)
	} else {
		err = config.WriteGlobal(defaults)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	out := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(out, "Config written to: %s\n\n", targetPath)
	_, _ = fmt.Fprintln(out, "Run 'edtheme list' to see available themes.")
	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
