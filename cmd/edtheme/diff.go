package main

import (
	"fmt"

	"github.com/aymanbagabas/go-udiff"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var diffFlags struct {
	format string
	scope  string
}

var diffCmd = &cobra.Command{
	Use:   "diff <theme-a> <theme-b>",
	Short: "Show a unified diff between two themes",
	Long: `Render two themes in the same export format and print a unified diff
of the results. The yaml format compares palettes and resolved rules; the
css format compares what a browser would see.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	diffCmd.Flags().StringVarP(&diffFlags.format, "format", "F", "yaml", "Format to compare (css, vars, ts, json, yaml)")
	diffCmd.Flags().StringVar(&diffFlags.scope, "scope", "", "Selector replacing & in css output (default from config)")
}

func runDiff(cmd *cobra.Command, args []string) error {
	a, err := theme.Get(args[0])
	if err != nil {
		return err
	}
	b, err := theme.Get(args[1])
	if err != nil {
		return err
	}

	opts := exportOptions{
		format:   diffFlags.format,
		scope:    firstNonEmpty(diffFlags.scope, cfg.Scope),
		selector: ":root",
	}
	diff, err := diffThemes(a, b, opts)
	if err != nil {
		return err
	}

	if diff == "" {
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are identical (%s)\n", a.Name(), b.Name(), opts.format)
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
	return err
}

// diffThemes returns a unified diff of a and b rendered with opts. The
// result is empty when the renderings match.
func diffThemes(a, b *theme.Theme, opts exportOptions) (string, error) {
	left, ext, err := renderExport(a, opts)
	if err != nil {
		return "", err
	}
	right, _, err := renderExport(b, opts)
	if err != nil {
		return "", err
	}
	return udiff.Unified(a.Name()+ext, b.Name()+ext, left, right), nil
}
