package template

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mark3labs/edtheme/internal/theme"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		template string
		vars     Variables
		want     string
	}{
		{
			name:     "simple substitution",
			template: "{{name}} -> {{exportName}}",
			vars:     Variables{Name: "solarized-dark", ExportName: "solarizedDark"},
			want:     "solarized-dark -> solarizedDark",
		},
		{
			name:     "dark flag",
			template: "dark: {{dark}}",
			vars:     Variables{Dark: true},
			want:     "dark: true",
		},
		{
			name:     "role colours",
			template: "{{keyword}}|{{dropdownBorder}}|{{invalid}}",
			vars: Variables{Colors: map[theme.Role]theme.Color{
				theme.RoleKeyword:        "#859900",
				theme.RoleDropdownBorder: "#2aa19899",
			}},
			want: "#859900|#2aa19899|",
		},
		{
			name:     "placeholder not replaced if variable unknown",
			template: "{{name}} {{unknown}}",
			vars:     Variables{Name: "base"},
			want:     "base {{unknown}}",
		},
		{
			name:     "rendered blocks",
			template: "theme({{chrome}}) define({{highlight}})",
			vars:     Variables{Chrome: "{}", Highlight: "[]"},
			want:     "theme({}) define([])",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.template, tt.vars)
			if got != tt.want {
				t.Errorf("Render() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRenderDefaultCSSTemplate(t *testing.T) {
	vars := VariablesFor(theme.SolarizedDarkPalette())
	result := Render(DefaultCSSTemplate, vars)

	if strings.Contains(result, "{{") {
		t.Errorf("unreplaced placeholder in:\n%s", result)
	}
	for _, want := range []string{
		"/* solarized-dark */",
		":root {",
		"--cm-background: #002b36;",
		"--cm-dropdown-border: #2aa19899;",
		"--cm-keyword: #859900;",
		"--cm-invalid: ;",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("CSS output missing %q:\n%s", want, result)
		}
	}
}

func TestRenderDefaultTSTemplate(t *testing.T) {
	vars := VariablesFor(theme.BasePalette())
	vars.Chrome = "{}"
	vars.Highlight = "[]"
	result := Render(DefaultTSTemplate, vars)

	for _, want := range []string{
		"name: 'base',",
		"dark: false,",
		"keyword: 'var(--cm-keyword)',",
		"export const baseTheme = EditorView.theme({}, {dark: config.dark})",
		"export const baseHighlightStyle = HighlightStyle.define([])",
		"export const base: Extension = [",
	} {
		if !strings.Contains(result, want) {
			t.Errorf("TS output missing %q", want)
		}
	}
}

func TestVariablesFor(t *testing.T) {
	p := theme.SolarizedDarkPalette()
	vars := VariablesFor(p)

	if vars.ExportName != "solarizedDark" {
		t.Errorf("ExportName = %q, want solarizedDark", vars.ExportName)
	}
	if vars.Selector != ":root" {
		t.Errorf("Selector = %q, want :root", vars.Selector)
	}
	if len(vars.Colors) != len(theme.Roles()) {
		t.Errorf("Colors has %d roles, want %d", len(vars.Colors), len(theme.Roles()))
	}
}

func TestGetTemplate(t *testing.T) {
	t.Run("fallback when no path", func(t *testing.T) {
		got, err := GetTemplate("", DefaultCSSTemplate)
		if err != nil {
			t.Fatalf("GetTemplate() error = %v", err)
		}
		if got != DefaultCSSTemplate {
			t.Error("expected fallback template")
		}
	})

	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "custom.tmpl")
		if err := os.WriteFile(path, []byte("custom {{name}}"), 0644); err != nil {
			t.Fatal(err)
		}
		got, err := GetTemplate(path, DefaultCSSTemplate)
		if err != nil {
			t.Fatalf("GetTemplate() error = %v", err)
		}
		if got != "custom {{name}}" {
			t.Errorf("GetTemplate() = %q", got)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := GetTemplate(filepath.Join(t.TempDir(), "nope"), DefaultCSSTemplate)
		if err == nil {
			t.Error("expected error for missing template file")
		}
	})
}
