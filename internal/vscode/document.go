package vscode

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/mark3labs/edtheme/internal/theme"
	"muzzammil.xyz/jsonc"
)

// ErrNoColor is returned by Find when none of the keys yields a colour.
var ErrNoColor = errors.New("no color found")

// Scopes is a TextMate scope selector list. VS Code themes write it either
// as a comma-separated string or as an array of strings.
type Scopes []string

// UnmarshalJSON accepts both forms.
func (s *Scopes) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		var out Scopes
		for _, part := range strings.Split(single, ",") {
			out = append(out, strings.TrimSpace(part))
		}
		*s = out
		return nil
	}

	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return fmt.Errorf("unexpected scope type: %s", string(data))
	}
	*s = list
	return nil
}

// TokenColorSettings are the visual settings of one tokenColors entry.
type TokenColorSettings struct {
	Foreground *string `json:"foreground"`
	FontStyle  *string `json:"fontStyle"`
}

// TokenColor is one tokenColors entry.
type TokenColor struct {
	Scope    Scopes             `json:"scope"`
	Settings TokenColorSettings `json:"settings"`
}

// Document is the subset of a VS Code theme file edtheme reads.
type Document struct {
	Colors      map[string]string `json:"colors"`
	TokenColors []TokenColor      `json:"tokenColors"`
}

// Style is the result of a lookup.
type Style struct {
	Color     string
	FontStyle string
}

// Parse decodes a theme file. Comments and trailing commas are allowed.
func Parse(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(stripTrailingCommas(jsonc.ToJSON(data)), &doc); err != nil {
		return nil, fmt.Errorf("parsing theme json: %w", err)
	}
	return &doc, nil
}

// stripTrailingCommas removes commas that directly precede a closing
// bracket or brace. String contents are left untouched.
func stripTrailingCommas(data []byte) []byte {
	out := make([]byte, 0, len(data))
	inString, escaped := false, false
	for i, c := range data {
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			out = append(out, c)
			continue
		}
		if c == '"' {
			inString = true
		}
		if c == ',' && closesNext(data[i+1:]) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// closesNext reports whether the next non-space byte closes an object or array.
func closesNext(rest []byte) bool {
	for _, c := range rest {
		switch c {
		case ' ', '\t', '\n', '\r':
			continue
		case '}', ']':
			return true
		default:
			return false
		}
	}
	return false
}

// Find resolves a style from the first key that matches.
//
// Keys are tried in order. A key present in the workbench colors returns
// immediately. Otherwise every tokenColors entry listing the key as a scope
// is considered: the colour comes from the entry where the key sits at the
// lowest position in the scope list (earliest entry on ties), the font style
// from the first entry that sets one. Matches carry over between keys, so a
// later key only replaces the colour when it sits at a lower position.
func (d *Document) Find(keys ...string) (Style, error) {
	var (
		style    Style
		found    bool
		prio     int
		hasStyle bool
	)

	for _, key := range keys {
		if value, ok := d.Colors[key]; ok {
			return Style{Color: value}, nil
		}

		for _, tc := range d.TokenColors {
			for i, scope := range tc.Scope {
				if scope != key {
					continue
				}
				if tc.Settings.Foreground != nil && (!found || prio > i) {
					style.Color = *tc.Settings.Foreground
					prio = i
					found = true
				}
				if !hasStyle && tc.Settings.FontStyle != nil {
					style.FontStyle = *tc.Settings.FontStyle
					hasStyle = true
				}
			}
		}
	}

	if !found {
		return Style{}, fmt.Errorf("%w by: %s", ErrNoColor, strings.Join(keys, ", "))
	}
	return style, nil
}

// lookups lists, per palette role, the theme keys tried in order.
var lookups = []struct {
	role theme.Role
	keys []string
}{
	// Layout
	{theme.RoleBackground, []string{"editor.background"}},
	{theme.RoleForeground, []string{"foreground", "input.foreground"}},
	{theme.RoleSelection, []string{"editor.selectionBackground"}},
	{theme.RoleCursor, []string{"editorCursor.foreground", "foreground"}},
	{theme.RoleDropdownBackground, []string{"editor.background"}},
	{theme.RoleDropdownBorder, []string{"dropdown.border", "foreground"}},
	{theme.RoleActiveLine, []string{"editor.lineHighlightBackground", "editor.selectionBackground"}},
	{theme.RoleMatchingBracket, []string{"editorBracketMatch.background", "editor.lineHighlightBackground", "editor.selectionBackground"}},

	// Syntax
	{theme.RoleKeyword, []string{"keyword"}},
	{theme.RoleStorage, []string{"storage", "keyword"}},
	{theme.RoleVariable, []string{"variable.parameter", "variable.other", "variable.language", "variable", "foreground"}},
	{theme.RoleParameter, []string{"variable.parameter", "variable.other", "variable"}},
	{theme.RoleFunction, []string{"support.function", "support", "entity.name.function", "entity.name"}},
	{theme.RoleString, []string{"string"}},
	{theme.RoleConstant, []string{"constant", "constant.character", "constant.keyword"}},
	{theme.RoleType, []string{"support.type", "support", "entity.name.class"}},
	{theme.RoleClass, []string{"entity.name.class", "entity.name"}},
	{theme.RoleNumber, []string{"constant.numeric", "constant"}},
	{theme.RoleComment, []string{"comment"}},
	{theme.RoleHeading, []string{"markup.heading", "markup.heading.setext"}},
	{theme.RoleInvalid, []string{"invalid", "editorError.foreground", "errorForeground", "foreground", "input.foreground"}},
	{theme.RoleRegexp, []string{"string.regexp", "string"}},
}

// ToPalette resolves every palette role from the document. Every role must
// resolve; the errors for all missing roles are joined.
func ToPalette(doc *Document, src Source) (theme.Palette, error) {
	p := theme.Palette{Name: src.Name, Dark: src.Dark}

	var errs []error
	for _, l := range lookups {
		style, err := doc.Find(l.keys...)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", l.role, err))
			continue
		}
		p = p.Set(l.role, theme.Color(style.Color))
	}
	if len(errs) > 0 {
		return theme.Palette{}, errors.Join(errs...)
	}
	return p, nil
}

// Import extracts, parses and converts one source.
func Import(extensionsDir string, src Source) (theme.Palette, error) {
	data, err := Extract(extensionsDir, src)
	if err != nil {
		return theme.Palette{}, err
	}
	doc, err := Parse(data)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("%s: %w", src.Name, err)
	}
	p, err := ToPalette(doc, src)
	if err != nil {
		return theme.Palette{}, fmt.Errorf("%s: %w", src.Name, err)
	}
	return p, nil
}
