package main

import (
	"errors"
	"fmt"

	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var validateFlags struct {
	all    bool
	file   string
	strict bool
}

var validateCmd = &cobra.Command{
	Use:   "validate [theme...]",
	Short: "Check themes for dangling roles and malformed colours",
	Long: `Validate one or more themes. Every colour reference in the chrome and
token rules must name a palette role, and every non-empty palette colour
must be a hex literal or a CSS variable reference.

A dark flag that disagrees with the background luminance is reported as a
warning; use --strict to treat it as a failure.`,
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().BoolVarP(&validateFlags.all, "all", "a", false, "Validate every registered theme")
	validateCmd.Flags().StringVarP(&validateFlags.file, "file", "f", "", "Validate a palette file instead of a registered theme")
	validateCmd.Flags().BoolVar(&validateFlags.strict, "strict", false, "Treat dark flag mismatches as errors")
}

func runValidate(cmd *cobra.Command, args []string) error {
	themes, err := validateTargets(args)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	failed := 0
	for _, t := range themes {
		if err := checkTheme(t, validateFlags.strict); err != nil {
			failed++
			_, _ = fmt.Fprintf(out, "✗ %s\n%v\n", t.Name(), err)
			continue
		}
		_, _ = fmt.Fprintf(out, "✓ %s\n", t.Name())
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d theme(s) failed validation", failed, len(themes))
	}
	return nil
}

// validateTargets collects the themes named by the flags and arguments.
func validateTargets(args []string) ([]*theme.Theme, error) {
	if validateFlags.file != "" {
		p, err := theme.LoadPalette(validateFlags.file)
		if err != nil {
			return nil, err
		}
		return []*theme.Theme{theme.New(p)}, nil
	}

	names := args
	switch {
	case validateFlags.all:
		names = theme.Names()
	case len(names) == 0:
		names = []string{cfg.Theme}
	}

	themes := make([]*theme.Theme, 0, len(names))
	for _, name := range names {
		t, err := theme.Get(name)
		if err != nil {
			return nil, err
		}
		themes = append(themes, t)
	}
	return themes, nil
}

// checkTheme validates t and checks its dark flag. Dark flag mismatches are
// logged as warnings unless strict is set.
func checkTheme(t *theme.Theme, strict bool) error {
	err := theme.Validate(t)

	if darkErr := theme.CheckDarkFlag(t.Palette); darkErr != nil {
		if strict {
			return errors.Join(err, darkErr)
		}
		logger.Warn("%s: %v", t.Name(), darkErr)
	}
	return err
}
