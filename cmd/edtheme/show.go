package main

import (
	"fmt"
	"strings"

	"charm.land/glamour/v2"
	"charm.land/lipgloss/v2"
	"github.com/mark3labs/edtheme/internal/theme"
	"github.com/spf13/cobra"
)

var showFlags struct {
	markdown bool
	width    int
}

var showCmd = &cobra.Command{
	Use:   "show [theme]",
	Short: "Show a theme's palette and token rules",
	Long: `Show the palette of a theme with colour swatches, followed by its
resolved syntax highlighting rules.

Use --markdown to render the same information as a markdown document.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showFlags.markdown, "markdown", "m", false, "Render as markdown")
	showCmd.Flags().IntVarP(&showFlags.width, "width", "w", 80, "Word wrap width for markdown output")
}

func runShow(cmd *cobra.Command, args []string) error {
	t, err := resolveTheme(args)
	if err != nil {
		return err
	}

	if showFlags.markdown {
		_, err = fmt.Fprintln(cmd.OutOrStdout(), renderMarkdown(themeMarkdown(t), showFlags.width))
		return err
	}
	_, err = lipgloss.Fprintln(cmd.OutOrStdout(), renderPalette(t))
	return err
}

var (
	styleTitle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	styleLabel = lipgloss.NewStyle().Width(20)
	styleMuted = lipgloss.NewStyle().Faint(true)
)

// swatch renders a two-cell block in the given colour. Colours that are
// not hex literals render as blank cells.
func swatch(c theme.Color) string {
	col, err := theme.ParseHex(c)
	if err != nil {
		return "  "
	}
	return lipgloss.NewStyle().Background(col).Render("  ")
}

// displayColor returns the colour text, marking unset roles.
func displayColor(c theme.Color) string {
	if c == "" {
		return styleMuted.Render("(unset)")
	}
	return string(c)
}

// renderPalette lays out the palette and token rules for the terminal.
func renderPalette(t *theme.Theme) string {
	kind := "light"
	if t.Palette.Dark {
		kind = "dark"
	}

	rows := []string{styleTitle.Render(fmt.Sprintf("%s (%s)", t.Name(), kind))}
	for _, r := range theme.Roles() {
		c, _ := t.Palette.Get(r)
		rows = append(rows, swatch(c)+" "+styleLabel.Render(string(r))+displayColor(c))
	}

	rows = append(rows, "", styleTitle.Render("Token rules"))
	for _, rule := range t.ResolvedHighlight() {
		style := lipgloss.NewStyle()
		if col, err := theme.ParseHex(theme.Color(rule.Color)); err == nil {
			style = style.Foreground(col)
		}
		if rule.FontWeight == "bold" {
			style = style.Bold(true)
		}
		if rule.FontStyle == "italic" {
			style = style.Italic(true)
		}
		switch rule.TextDecoration {
		case "underline":
			style = style.Underline(true)
		case "line-through":
			style = style.Strikethrough(true)
		}
		rows = append(rows, style.Render(strings.Join(rule.Tags, ", ")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// themeMarkdown describes a theme as a markdown document.
func themeMarkdown(t *theme.Theme) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s\n\n", t.Name())
	fmt.Fprintf(&sb, "Dark: `%t`\n\n", t.Palette.Dark)

	sb.WriteString("## Palette\n\n| Role | Colour |\n| --- | --- |\n")
	for _, r := range theme.Roles() {
		c, _ := t.Palette.Get(r)
		value := "_unset_"
		if c != "" {
			value = "`" + string(c) + "`"
		}
		fmt.Fprintf(&sb, "| %s | %s |\n", r, value)
	}

	sb.WriteString("\n## Token rules\n\n| Tags | Colour | Modifiers |\n| --- | --- | --- |\n")
	for _, rule := range t.ResolvedHighlight() {
		color := "-"
		if rule.Color != "" {
			color = "`" + rule.Color + "`"
		}
		var mods []string
		for _, m := range []string{rule.FontWeight, rule.FontStyle, rule.TextDecoration} {
			if m != "" {
				mods = append(mods, m)
			}
		}
		fmt.Fprintf(&sb, "| %s | %s | %s |\n", strings.Join(rule.Tags, ", "), color, strings.Join(mods, " "))
	}
	return sb.String()
}

// renderMarkdown renders markdown content using glamour.
// Falls back to plain text if rendering fails.
func renderMarkdown(content string, width int) string {
	// Cap width to 120 for readability
	if width <= 0 || width > 120 {
		width = 120
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return content
	}

	rendered, err := r.Render(content)
	if err != nil {
		return content
	}

	// Remove trailing newline that glamour adds
	return strings.TrimSuffix(rendered, "\n")
}
