package export

import (
	"fmt"
	"strings"

	"github.com/mark3labs/edtheme/internal/template"
	"github.com/mark3labs/edtheme/internal/theme"
)

// TypeScript renders the theme as a CodeMirror module. tmpl may be empty to
// use template.DefaultTSTemplate.
func TypeScript(t *theme.Theme, tmpl string) string {
	if tmpl == "" {
		tmpl = template.DefaultTSTemplate
	}
	vars := template.VariablesFor(t.Palette)
	vars.Chrome = chromeLiteral(t.Chrome.Rules)
	vars.Highlight = highlightLiteral(t.Highlight.Rules)
	return template.Render(tmpl, vars)
}

// jsValue renders a rule value as a JS expression over the config object.
func jsValue(v theme.Value) string {
	switch {
	case v.Role == "":
		return quote(v.Literal)
	case v.Format != "":
		return "`" + fmt.Sprintf(v.Format, "${config."+string(v.Role)+"}") + "`"
	default:
		return "config." + string(v.Role)
	}
}

func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}

func chromeLiteral(rules []theme.ChromeRule) string {
	var sb strings.Builder
	sb.WriteString("{\n")
	for _, r := range rules {
		fmt.Fprintf(&sb, "  %s: %s,\n", quote(r.Selector), ruleBody(r))
	}
	sb.WriteString("}")
	return sb.String()
}

// ruleBody renders one rule's declarations and nested rules as an object literal.
func ruleBody(r theme.ChromeRule) string {
	parts := make([]string, 0, len(r.Decls)+len(r.Nested))
	for _, d := range r.Decls {
		parts = append(parts, d.Property+": "+jsValue(d.Value))
	}
	for _, n := range r.Nested {
		parts = append(parts, quote(n.Selector)+": "+ruleBody(n))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}

// jsTag renders a tag as a reference into the engine's tag namespace.
func jsTag(t theme.Tag) string {
	if t.Modifier == "" {
		return "t." + t.Name
	}
	return "t." + t.Modifier + "(t." + t.Name + ")"
}

func highlightLiteral(rules []theme.TokenRule) string {
	var sb strings.Builder
	sb.WriteString("[\n")
	for _, r := range rules {
		tags := make([]string, len(r.Tags))
		for i, tag := range r.Tags {
			tags[i] = jsTag(tag)
		}
		tagExpr := tags[0]
		if len(tags) > 1 {
			tagExpr = "[" + strings.Join(tags, ", ") + "]"
		}

		parts := []string{"tag: " + tagExpr}
		if !r.Style.Color.IsZero() {
			parts = append(parts, "color: "+jsValue(r.Style.Color))
		}
		if r.Style.FontWeight != "" {
			parts = append(parts, "fontWeight: "+quote(r.Style.FontWeight))
		}
		if r.Style.FontStyle != "" {
			parts = append(parts, "fontStyle: "+quote(r.Style.FontStyle))
		}
		if r.Style.TextDecoration != "" {
			parts = append(parts, "textDecoration: "+quote(r.Style.TextDecoration))
		}
		fmt.Fprintf(&sb, "  {%s},\n", strings.Join(parts, ", "))
	}
	sb.WriteString("]")
	return sb.String()
}
