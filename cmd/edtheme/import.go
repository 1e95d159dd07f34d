package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/mark3labs/edtheme/internal/vscode"
	"github.com/spf13/cobra"
)

var importFlags struct {
	all   bool
	list  bool
	force bool
	vsix  string
	entry string
	json  string
	name  string
	dark  bool
}

var importCmd = &cobra.Command{
	Use:   "import [source...]",
	Short: "Import palettes from VS Code themes",
	Long: `Convert VS Code colour themes into edtheme palette files.

Known sources are read from .vsix archives in the extensions directory; run
with --list to see them. Any other theme can be imported with --vsix and
--entry, or from an extracted file with --json.

Imported palettes are written to the themes directory and become available
to every other command.`,
	RunE: runImport,
}

func init() {
	importCmd.Flags().BoolVarP(&importFlags.all, "all", "a", false, "Import every known source")
	importCmd.Flags().BoolVarP(&importFlags.list, "list", "l", false, "List known sources and exit")
	importCmd.Flags().BoolVarP(&importFlags.force, "force", "f", false, "Overwrite existing palette files")
	importCmd.Flags().StringVar(&importFlags.vsix, "vsix", "", "Path to a .vsix archive")
	importCmd.Flags().StringVar(&importFlags.entry, "entry", "", "Theme file inside the --vsix archive")
	importCmd.Flags().StringVar(&importFlags.json, "json", "", "Path to an extracted theme JSON file")
	importCmd.Flags().StringVar(&importFlags.name, "name", "", "Palette name for --vsix or --json imports")
	importCmd.Flags().BoolVar(&importFlags.dark, "dark", false, "Mark a --vsix or --json import as dark")
}

func runImport(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if importFlags.list {
		for _, src := range vscode.KnownSources() {
			_, _ = fmt.Fprintf(out, "%-16s %s (%s)\n", src.Name, src.Path, src.File)
		}
		return nil
	}

	palettes, err := importPalettes(args)

	for _, p := range palettes {
		// Invalid palettes would be skipped by every later load
		if verr := theme.Validate(theme.New(p)); verr != nil {
			err = errors.Join(err, fmt.Errorf("%s: %w", p.Name, verr))
			continue
		}
		path, werr := savePalette(cfg.ThemesDir, p, importFlags.force)
		if werr != nil {
			err = errors.Join(err, werr)
			continue
		}
		_, _ = fmt.Fprintf(out, "Imported %s to %s\n", p.Name, path)
	}
	return err
}

// importPalettes converts the sources selected by flags and arguments. It
// returns every palette that converted along with the joined errors of
// those that did not.
func importPalettes(args []string) ([]theme.Palette, error) {
	if importFlags.vsix != "" || importFlags.json != "" {
		p, err := importCustom()
		if err != nil {
			return nil, err
		}
		return []theme.Palette{p}, nil
	}

	var sources []vscode.Source
	switch {
	case importFlags.all:
		sources = vscode.KnownSources()
	case len(args) == 0:
		return nil, fmt.Errorf("no source given (use --all, --list, --vsix or --json)")
	default:
		for _, name := range args {
			src, ok := vscode.FindSource(name)
			if !ok {
				return nil, fmt.Errorf("unknown source %q (use --list to see known sources)", name)
			}
			sources = append(sources, src)
		}
	}

	var (
		palettes []theme.Palette
		errs     []error
	)
	for _, src := range sources {
		logger.Debug("Importing %s from %s", src.Name, src.Path)
		p, err := vscode.Import(cfg.ExtensionsDir, src)
		if err != nil {
			logger.Warn("Skipping %s: %v", src.Name, err)
			errs = append(errs, err)
			continue
		}
		palettes = append(palettes, p)
	}
	return palettes, errors.Join(errs...)
}

// importCustom converts the theme named by --vsix/--entry or --json.
func importCustom() (theme.Palette, error) {
	src := vscode.Source{Name: importFlags.name, Dark: importFlags.dark}

	var (
		data []byte
		err  error
	)
	if importFlags.json != "" {
		if src.Name == "" {
			src.Name = strings.TrimSuffix(filepath.Base(importFlags.json), filepath.Ext(importFlags.json))
		}
		data, err = os.ReadFile(importFlags.json)
	} else {
		if importFlags.entry == "" {
			return theme.Palette{}, fmt.Errorf("--entry is required with --vsix")
		}
		if src.Name == "" {
			src.Name = strings.TrimSuffix(filepath.Base(importFlags.entry), filepath.Ext(importFlags.entry))
		}
		data, err = vscode.ExtractFile(importFlags.vsix, importFlags.entry)
	}
	if err != nil {
		return theme.Palette{}, err
	}

	doc, err := vscode.Parse(data)
	if err != nil {
		return theme.Palette{}, err
	}
	p, err := vscode.ToPalette(doc, src)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("%s: %w", src.Name, err)
	}
	return p, nil
}

// savePalette writes p to dir as <slug>.yml, refusing to overwrite unless
// force is set.
func savePalette(dir string, p theme.Palette, force bool) (string, error) {
	path := filepath.Join(dir, theme.Slug(p.Name)+".yml")
	if !force && fileExists(path) {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err := theme.WritePalette(path, p); err != nil {
		return "", err
	}
	return path, nil
}
