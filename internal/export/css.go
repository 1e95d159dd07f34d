// Package export packages themes for external consumers: stylesheets,
// CodeMirror modules, data snapshots and chroma styles.
package export

import (
	"fmt"
	"strings"

	"github.com/mark3labs/edtheme/internal/template"
	"github.com/mark3labs/edtheme/internal/theme"
)

// DefaultScope is the selector that stands in for the editor root ("&").
const DefaultScope = ".cm-editor"

// CSS renders the theme's chrome and token rules as a plain stylesheet.
// "&" in selectors is replaced by scope; declarations that resolve to an
// empty value are omitted.
func CSS(t *theme.Theme, scope string) string {
	if scope == "" {
		scope = DefaultScope
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "/* %s (dark: %t) */\n", t.Name(), t.Chrome.Dark)
	writeChromeCSS(&sb, t.ResolvedChrome(), scope)

	for _, r := range t.ResolvedHighlight() {
		decls := tokenDecls(r)
		if len(decls) == 0 {
			continue
		}
		selectors := make([]string, len(r.Tags))
		for i, tag := range r.Tags {
			selectors[i] = scope + " " + TokenClass(tag)
		}
		writeBlock(&sb, strings.Join(selectors, ", "), decls)
	}
	return sb.String()
}

// Variables renders the palette as a block of --cm-* custom properties.
func Variables(p theme.Palette, selector string) string {
	vars := template.VariablesFor(p)
	if selector != "" {
		vars.Selector = selector
	}
	return template.Render(template.DefaultCSSTemplate, vars)
}

// TokenClass returns the CSS class used for a rendered tag name, e.g.
// "function(variableName)" -> ".tok-function-variableName".
func TokenClass(tag string) string {
	tag = strings.NewReplacer("(", "-", ")", "").Replace(tag)
	return ".tok-" + tag
}

func writeChromeCSS(sb *strings.Builder, rules []theme.ResolvedRule, parent string) {
	for _, r := range rules {
		selector := scopeSelector(r.Selector, parent)
		var decls []theme.ResolvedDecl
		for _, d := range r.Decls {
			if d.Value == "" {
				continue
			}
			decls = append(decls, theme.ResolvedDecl{Property: theme.Kebab(d.Property), Value: d.Value})
		}
		if len(decls) > 0 {
			writeBlock(sb, selector, decls)
		}
		writeChromeCSS(sb, r.Nested, selector)
	}
}

// scopeSelector expands each comma-separated part of sel against each
// comma-separated part of parent. Parts containing "&" have it replaced;
// other parts become descendants.
func scopeSelector(sel, parent string) string {
	parents := strings.Split(parent, ",")
	var out []string
	for _, part := range strings.Split(sel, ",") {
		part = strings.TrimSpace(part)
		for _, p := range parents {
			p = strings.TrimSpace(p)
			if strings.Contains(part, "&") {
				out = append(out, strings.ReplaceAll(part, "&", p))
			} else {
				out = append(out, p+" "+part)
			}
		}
	}
	return strings.Join(out, ", ")
}

func tokenDecls(r theme.ResolvedTokenRule) []theme.ResolvedDecl {
	var decls []theme.ResolvedDecl
	add := func(prop, v string) {
		if v != "" {
			decls = append(decls, theme.ResolvedDecl{Property: prop, Value: v})
		}
	}
	add("color", r.Color)
	add("font-weight", r.FontWeight)
	add("font-style", r.FontStyle)
	add("text-decoration", r.TextDecoration)
	return decls
}

func writeBlock(sb *strings.Builder, selector string, decls []theme.ResolvedDecl) {
	sb.WriteString("\n")
	sb.WriteString(selector)
	sb.WriteString(" {\n")
	for _, d := range decls {
		fmt.Fprintf(sb, "  %s: %s;\n", d.Property, d.Value)
	}
	sb.WriteString("}\n")
}
