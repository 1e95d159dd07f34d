package export

import (
	"bytes"
	"fmt"
	"strings"

	chroma "github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/charmbracelet/colorprofile"
	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/mark3labs/edtheme/internal/theme"
)

// chromaTokens maps editor highlight tags onto chroma token types. Tags
// missing here (url, link, changed, ...) have no chroma counterpart.
var chromaTokens = map[string][]chroma.TokenType{
	"keyword":                {chroma.Keyword},
	"name":                   {chroma.Name},
	"deleted":                {chroma.GenericDeleted},
	"character":              {chroma.LiteralStringChar},
	"macroName":              {chroma.NameFunctionMagic},
	"propertyName":           {chroma.NameProperty, chroma.NameAttribute},
	"processingInstruction":  {chroma.CommentPreprocFile},
	"string":                 {chroma.LiteralString},
	"inserted":               {chroma.GenericInserted},
	"special(string)":        {chroma.LiteralStringOther},
	"function(variableName)": {chroma.NameFunction},
	"labelName":              {chroma.NameLabel},
	"constant(name)":         {chroma.NameConstant},
	"standard(name)":         {chroma.NameBuiltin},
	"separator":              {chroma.Punctuation},
	"className":              {chroma.NameClass},
	"number":                 {chroma.LiteralNumber},
	"annotation":             {chroma.NameDecorator},
	"self":                   {chroma.NameBuiltinPseudo},
	"namespace":              {chroma.NameNamespace},
	"typeName":               {chroma.KeywordType},
	"operator":               {chroma.Operator},
	"operatorKeyword":        {chroma.OperatorWord},
	"escape":                 {chroma.LiteralStringEscape},
	"regexp":                 {chroma.LiteralStringRegex},
	"meta":                   {chroma.CommentPreproc},
	"comment":                {chroma.Comment},
	"strong":                 {chroma.GenericStrong},
	"emphasis":               {chroma.GenericEmph},
	"heading":                {chroma.GenericHeading},
	"atom":                   {chroma.KeywordConstant},
	"bool":                   {chroma.KeywordConstant},
	"special(variableName)":  {chroma.NameVariableMagic},
	"invalid":                {chroma.Error},
}

// ChromaName is the name a theme is registered under in chroma's registry.
func ChromaName(t *theme.Theme) string {
	return "edtheme-" + theme.Slug(t.Name())
}

// chromaColor returns a colour chroma can parse, or "" for var(), empty
// and otherwise unusable values. Alpha is dropped.
func chromaColor(s string) string {
	c := theme.Color(s)
	if !c.IsHex() {
		return ""
	}
	return string(c.Opaque())
}

type tokenEntry struct {
	color     string
	bold      bool
	italic    bool
	underline bool
}

func (e tokenEntry) String() string {
	var parts []string
	if e.color != "" {
		parts = append(parts, e.color)
	}
	if e.bold {
		parts = append(parts, "bold")
	}
	if e.italic {
		parts = append(parts, "italic")
	}
	if e.underline {
		parts = append(parts, "underline")
	}
	return strings.Join(parts, " ")
}

// ChromaEntries converts the theme's token rules into chroma style entries.
// Rules apply in order: a later colour replaces an earlier one for the same
// token type, and font modifiers accumulate.
func ChromaEntries(t *theme.Theme) chroma.StyleEntries {
	merged := map[chroma.TokenType]*tokenEntry{}
	var order []chroma.TokenType

	for _, r := range t.ResolvedHighlight() {
		for _, tag := range r.Tags {
			for _, tt := range chromaTokens[tag] {
				e, ok := merged[tt]
				if !ok {
					e = &tokenEntry{}
					merged[tt] = e
					order = append(order, tt)
				}
				if c := chromaColor(r.Color); c != "" {
					e.color = c
				}
				e.bold = e.bold || r.FontWeight == "bold"
				e.italic = e.italic || r.FontStyle == "italic"
				e.underline = e.underline || r.TextDecoration == "underline"
			}
		}
	}

	entries := chroma.StyleEntries{}
	for _, tt := range order {
		if s := merged[tt].String(); s != "" {
			entries[tt] = s
		}
	}

	bg := chromaColor(string(t.Palette.Background))
	fg := chromaColor(string(t.Palette.Foreground))
	var base []string
	if fg != "" {
		base = append(base, fg)
	}
	if bg != "" {
		base = append(base, "bg:"+bg)
	}
	if len(base) > 0 {
		entries[chroma.Background] = strings.Join(base, " ")
	}
	return entries
}

// ChromaStyle builds a chroma style from the theme and registers it with
// chroma's style registry under ChromaName(t).
func ChromaStyle(t *theme.Theme) (*chroma.Style, error) {
	style, err := chroma.NewStyle(ChromaName(t), ChromaEntries(t))
	if err != nil {
		return nil, fmt.Errorf("building chroma style for %s: %w", t.Name(), err)
	}
	return styles.Register(style), nil
}

// FormatterFor picks the chroma terminal formatter matching a colour profile.
func FormatterFor(p colorprofile.Profile) string {
	switch p {
	case colorprofile.TrueColor:
		return "terminal16m"
	case colorprofile.ANSI256:
		return "terminal256"
	case colorprofile.ANSI:
		return "terminal16"
	default:
		return "noop"
	}
}

// Highlight tokenises source and formats it with the theme's chroma style.
// The lexer is chosen from fileName, then from content, then plain text.
func Highlight(source, fileName string, t *theme.Theme, profile colorprofile.Profile) (string, error) {
	lexer := lexers.Match(fileName)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	logger.Debug("Highlighting %s with lexer %s", fileName, lexer.Config().Name)

	formatter := formatters.Get(FormatterFor(profile))
	if formatter == nil {
		formatter = formatters.Fallback
	}

	style, err := ChromaStyle(t)
	if err != nil {
		return "", err
	}

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return "", fmt.Errorf("tokenising %s: %w", fileName, err)
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return "", fmt.Errorf("formatting %s: %w", fileName, err)
	}

	return strings.TrimRight(buf.String(), "\n"), nil
}
