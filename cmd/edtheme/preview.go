package main

import (
	"fmt"
	"os"
	"path/filepath"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/edtheme/internal/export"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

const previewSample = `// Package greet says hello.
package greet

import "fmt"

/* Greeter is configured once. */
type Greeter struct {
	Name  string
	Times int
}

// Greet prints the greeting.
func (g *Greeter) Greet() error {
	if g.Times <= 0 {
		return fmt.Errorf("times must be positive, got %d", g.Times)
	}
	for i := 0; i < g.Times; i++ {
		fmt.Printf("hello, %s!\n", g.Name)
	}
	return nil
}
`

var previewFlags struct {
	file    string
	profile string
}

var previewCmd = &cobra.Command{
	Use:   "preview [theme]",
	Short: "Preview a theme by highlighting source code in the terminal",
	Long: `Highlight a source file with the theme's token colours.

Without --file a built-in Go sample is used. The colour depth follows the
terminal unless --profile is set. Themes whose palette is made of CSS
variables (such as base) have no concrete colours and preview uncoloured.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewFlags.file, "file", "f", "", "Source file to highlight")
	previewCmd.Flags().StringVar(&previewFlags.profile, "profile", "", "Colour profile (truecolor, 256, 16, ascii)")
}

func runPreview(cmd *cobra.Command, args []string) error {
	t, err := resolveTheme(args)
	if err != nil {
		return err
	}

	source, fileName := previewSample, "sample.go"
	if previewFlags.file != "" {
		data, err := os.ReadFile(previewFlags.file)
		if err != nil {
			return fmt.Errorf("reading %s: %w", previewFlags.file, err)
		}
		source, fileName = string(data), filepath.Base(previewFlags.file)
	}

	profile, err := parseProfile(previewFlags.profile)
	if err != nil {
		return err
	}

	highlighted, err := export.Highlight(source, fileName, t, profile)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), framePreview(highlighted, t, profile))
	return err
}

// parseProfile maps a --profile value to a colour profile, detecting the
// terminal's profile when empty.
func parseProfile(s string) (colorprofile.Profile, error) {
	switch s {
	case "":
		return colorprofile.Detect(os.Stdout, os.Environ()), nil
	case "truecolor":
		return colorprofile.TrueColor, nil
	case "256":
		return colorprofile.ANSI256, nil
	case "16":
		return colorprofile.ANSI, nil
	case "ascii":
		return colorprofile.Ascii, nil
	default:
		return colorprofile.Ascii, fmt.Errorf("unknown profile %q (want truecolor, 256, 16 or ascii)", s)
	}
}

// framePreview pads highlighted code on the theme background. Plain
// profiles get the code unframed.
func framePreview(code string, t *theme.Theme, profile colorprofile.Profile) string {
	bg, err := theme.ParseHex(t.Palette.Background)
	if err != nil || profile == colorprofile.Ascii || profile == colorprofile.NoTTY {
		return code
	}
	return lipgloss.NewStyle().
		Background(bg).
		Padding(1, 2).
		Render(code)
}
