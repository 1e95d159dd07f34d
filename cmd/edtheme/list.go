package main

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List available themes",
	Long: `List built-in themes and the custom palettes found in the themes directory.

The configured default theme is marked with an asterisk.`,
	Args: cobra.NoArgs,
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	current := theme.Slug(cfg.Theme)
	out := cmd.OutOrStdout()

	for _, name := range theme.Names() {
		t, err := theme.Get(name)
		if err != nil {
			return err
		}

		marker := " "
		if name == current {
			marker = "*"
		}
		kind := "light"
		if t.Palette.Dark {
			kind = "dark"
		}

		line := fmt.Sprintf("%s %s %-24s %s", marker, swatch(t.Palette.Background), name, kind)
		if _, err := lipgloss.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}
