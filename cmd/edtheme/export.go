package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mark3labs/edtheme/internal/export"
	"github.com/mark3labs/edtheme/internal/hooks"
	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/template"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var exportFlags struct {
	format   string
	output   string
	stdout   bool
	all      bool
	template string
	scope    string
	selector string
	noHooks  bool
}

var exportCmd = &cobra.Command{
	Use:   "export [theme...]",
	Short: "Export themes as CSS, TypeScript or data",
	Long: `Export one or more themes.

Formats:
  css   stylesheet with chrome rules and .tok-* token classes
  vars  CSS custom properties (--cm-*) for the palette
  ts    CodeMirror module (EditorView.theme + HighlightStyle)
  json  resolved theme document
  yaml  resolved theme document

Files are written to the output directory as <theme>.<ext> unless --stdout
is set. The ts format accepts a custom template with --template.

Commands listed under hooks.post_export in .edtheme.hooks.yml run after
each file is written, with {{theme}}, {{format}} and {{file}} expanded.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportFlags.format, "format", "F", "css", "Output format (css, vars, ts, json, yaml)")
	exportCmd.Flags().StringVarP(&exportFlags.output, "output", "o", "", "Output directory (default from config)")
	exportCmd.Flags().BoolVar(&exportFlags.stdout, "stdout", false, "Write to stdout instead of files")
	exportCmd.Flags().BoolVarP(&exportFlags.all, "all", "a", false, "Export every registered theme")
	exportCmd.Flags().StringVar(&exportFlags.template, "template", "", "Path to a custom TypeScript template")
	exportCmd.Flags().StringVar(&exportFlags.scope, "scope", "", "Selector replacing & in css output (default from config)")
	exportCmd.Flags().StringVar(&exportFlags.selector, "selector", ":root", "Selector for the vars block")
	exportCmd.Flags().BoolVar(&exportFlags.noHooks, "no-hooks", false, "Skip post-export hooks")
}

// exportOptions carries the resolved settings for one export run.
type exportOptions struct {
	format   string
	template string
	scope    string
	selector string
}

func runExport(cmd *cobra.Command, args []string) error {
	names := args
	switch {
	case exportFlags.all:
		names = theme.Names()
	case len(names) == 0:
		names = []string{cfg.Theme}
	}

	tmpl, err := template.GetTemplate(exportFlags.template, template.DefaultTSTemplate)
	if err != nil {
		return err
	}
	opts := exportOptions{
		format:   exportFlags.format,
		template: tmpl,
		scope:    firstNonEmpty(exportFlags.scope, cfg.Scope),
		selector: exportFlags.selector,
	}
	outDir := firstNonEmpty(exportFlags.output, cfg.OutputDir)

	var postExport []*hooks.HookConfig
	if !exportFlags.stdout && !exportFlags.noHooks {
		hooksCfg, err := hooks.LoadConfig(".")
		if err != nil {
			return err
		}
		if hooksCfg != nil {
			postExport = hooksCfg.Hooks.PostExport
		}
	}

	for _, name := range names {
		t, err := theme.Get(name)
		if err != nil {
			return err
		}

		content, ext, err := renderExport(t, opts)
		if err != nil {
			return err
		}

		if exportFlags.stdout {
			if _, err := io.WriteString(cmd.OutOrStdout(), content); err != nil {
				return err
			}
			continue
		}

		path, err := writeExport(outDir, t, ext, content)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)

		vars := hooks.Variables{Theme: t.Name(), Format: opts.format, File: path}
		output, err := hooks.RunAll(cmd.Context(), postExport, ".", vars)
		if output != "" {
			_, _ = io.WriteString(cmd.OutOrStdout(), output)
		}
		if err != nil {
			return fmt.Errorf("post-export hook for %s: %w", path, err)
		}
	}
	return nil
}

// renderExport renders t in the requested format and returns the content
// together with the file extension to use.
func renderExport(t *theme.Theme, opts exportOptions) (string, string, error) {
	switch opts.format {
	case "css":
		return export.CSS(t, opts.scope), ".css", nil
	case "vars":
		return export.Variables(t.Palette, opts.selector), ".vars.css", nil
	case "ts":
		return export.TypeScript(t, opts.template), ".ts", nil
	case "json":
		var buf bytes.Buffer
		if err := export.JSON(&buf, t); err != nil {
			return "", "", err
		}
		return buf.String(), ".json", nil
	case "yaml":
		var buf bytes.Buffer
		if err := export.YAML(&buf, t); err != nil {
			return "", "", err
		}
		return buf.String(), ".yml", nil
	default:
		return "", "", fmt.Errorf("unknown format %q (want css, vars, ts, json or yaml)", opts.format)
	}
}

func writeExport(dir string, t *theme.Theme, ext, content string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating output directory: %w", err)
	}
	path := filepath.Join(dir, theme.Slug(t.Name())+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	logger.Debug("Exported %s to %s", t.Name(), path)
	return path, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
