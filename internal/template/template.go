package template

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
)

// Variables holds the data to be injected into template placeholders.
type Variables struct {
	Name       string                     // Theme name (solarized-dark)
	ExportName string                     // camelCase identifier (solarizedDark)
	Dark       bool                       // Dark flag
	Selector   string                     // CSS selector for variable blocks
	Colors     map[theme.Role]theme.Color // Palette colours by role
	Chrome     string                     // Rendered chrome rule table
	Highlight  string                     // Rendered token rule table
}

// VariablesFor fills the palette-derived variables for p.
// Chrome and Highlight are left for the caller.
func VariablesFor(p theme.Palette) Variables {
	return Variables{
		Name:       p.Name,
		ExportName: theme.ExportName(p.Name),
		Dark:       p.Dark,
		Selector:   ":root",
		Colors:     p.Colors(),
	}
}

// Render replaces {{variable}} placeholders in template with actual values.
// Supports the following variables:
// - {{name}}, {{exportName}}, {{dark}}, {{selector}}
// - {{chrome}}, {{highlight}} - rendered rule tables
// - {{<role>}} - one per palette role, e.g. {{keyword}}, {{dropdownBorder}}
// Unknown placeholders are left untouched.
func Render(template string, vars Variables) string {
	pairs := []string{
		"{{name}}", vars.Name,
		"{{exportName}}", vars.ExportName,
		"{{dark}}", strconv.FormatBool(vars.Dark),
		"{{selector}}", vars.Selector,
		"{{chrome}}", vars.Chrome,
		"{{highlight}}", vars.Highlight,
	}
	for _, r := range theme.Roles() {
		pairs = append(pairs, "{{"+string(r)+"}}", string(vars.Colors[r]))
	}

	return strings.NewReplacer(pairs...).Replace(template)
}

// LoadFromFile loads a template from a file.
func LoadFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read template file %s: %w", path, err)
	}
	return string(data), nil
}

// GetTemplate returns the template content.
// If customPath is non-empty, loads from that file.
// Otherwise returns fallback.
func GetTemplate(customPath, fallback string) (string, error) {
	if customPath == "" {
		return fallback, nil
	}
	logger.Debug("Using custom template: %s", customPath)
	return LoadFromFile(customPath)
}
