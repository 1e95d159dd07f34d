package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/x/editor"
	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var editFlags struct {
	as string
}

var editCmd = &cobra.Command{
	Use:   "edit [theme]",
	Short: "Edit a theme palette in $EDITOR",
	Long: `Open a theme's palette file in $EDITOR.

Themes without a palette file in the themes directory (such as the built-in
ones) are written there first. Use --as to start a new palette from an
existing one. The palette is validated once the editor exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEdit,
}

func init() {
	editCmd.Flags().StringVar(&editFlags.as, "as", "", "Save the palette under a new name before editing")
}

func runEdit(cmd *cobra.Command, args []string) error {
	t, err := resolveTheme(args)
	if err != nil {
		return err
	}

	p := t.Palette
	if editFlags.as != "" {
		p.Name = editFlags.as
	}

	path, err := ensurePaletteFile(cfg.ThemesDir, p)
	if err != nil {
		return err
	}

	c, err := editor.Command("edtheme", path)
	if err != nil {
		return fmt.Errorf("preparing editor: %w", err)
	}
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	if err := c.Run(); err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	edited, err := theme.LoadPalette(path)
	if err != nil {
		return err
	}
	if err := checkTheme(theme.New(edited), false); err != nil {
		return fmt.Errorf("%s is not valid after editing: %w", path, err)
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Saved %s\n", path)
	return err
}

// ensurePaletteFile returns the palette file for p in dir, writing it if it
// does not exist yet.
func ensurePaletteFile(dir string, p theme.Palette) (string, error) {
	for _, ext := range []string{".yml", ".yaml"} {
		path := filepath.Join(dir, theme.Slug(p.Name)+ext)
		if fileExists(path) {
			return path, nil
		}
	}

	path := filepath.Join(dir, theme.Slug(p.Name)+".yml")
	logger.Debug("Writing palette %s to %s", p.Name, path)
	if err := theme.WritePalette(path, p); err != nil {
		return "", err
	}
	return path, nil
}
