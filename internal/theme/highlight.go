package theme

// TokenStyle is the visual style applied to a set of highlight tags.
type TokenStyle struct {
	Color          Value
	FontWeight     string
	FontStyle      string
	TextDecoration string
}

// TokenRule maps a set of tags to a style.
type TokenRule struct {
	Tags  []Tag
	Style TokenStyle
}

// HighlightStyle is the ordered token rule list handed to the engine.
// Order follows the rule table; precedence between rules is the engine's call.
type HighlightStyle struct {
	Rules []TokenRule
}

func rule(style TokenStyle, tags ...Tag) TokenRule {
	return TokenRule{Tags: tags, Style: style}
}

func color(r Role) TokenStyle { return TokenStyle{Color: Ref(r)} }

func highlightRules() []TokenRule {
	return []TokenRule{
		// const, let, function, if
		rule(color(RoleKeyword), TagKeyword),
		// document
		rule(color(RoleVariable), TagName, TagDeleted, TagCharacter, TagMacroName),
		// getElementById
		rule(color(RoleFunction), TagPropertyName),
		// "string"
		rule(color(RoleString), TagProcessingInstruction, TagString, TagInserted, Special(TagString)),
		// render
		rule(color(RoleFunction), Function(TagVariableName), TagLabelName),
		rule(color(RoleConstant), TagColor, Constant(TagName), Standard(TagName)),
		// btn, count, fn render()
		rule(color(RoleVariable), Definition(TagName), TagSeparator),
		rule(color(RoleClass), TagClassName),
		rule(color(RoleNumber), TagNumber, TagChanged, TagAnnotation, TagModifier, TagSelf, TagNamespace),
		rule(color(RoleType), TagTypeName),
		rule(color(RoleKeyword), TagOperator, TagOperatorKeyword),
		rule(color(RoleRegexp), TagURL, TagEscape, TagRegexp, TagLink),
		rule(color(RoleComment), TagMeta, TagComment),
		rule(TokenStyle{FontWeight: "bold"}, TagStrong),
		rule(TokenStyle{FontStyle: "italic"}, TagEmphasis),
		rule(TokenStyle{TextDecoration: "underline"}, TagLink),
		rule(TokenStyle{FontWeight: "bold", Color: Ref(RoleHeading)}, TagHeading),
		rule(color(RoleVariable), TagAtom, TagBool, Special(TagVariableName)),
		rule(color(RoleInvalid), TagInvalid),
		rule(TokenStyle{TextDecoration: "line-through"}, TagStrikethrough),
	}
}

// ResolvedTokenRule is a TokenRule resolved against a palette.
type ResolvedTokenRule struct {
	Tags           []string `json:"tags" yaml:"tags"`
	Color          string   `json:"color,omitempty" yaml:"color,omitempty"`
	FontWeight     string   `json:"fontWeight,omitempty" yaml:"fontWeight,omitempty"`
	FontStyle      string   `json:"fontStyle,omitempty" yaml:"fontStyle,omitempty"`
	TextDecoration string   `json:"textDecoration,omitempty" yaml:"textDecoration,omitempty"`
}

func resolveHighlight(rules []TokenRule, p Palette) []ResolvedTokenRule {
	out := make([]ResolvedTokenRule, 0, len(rules))
	for _, r := range rules {
		tags := make([]string, len(r.Tags))
		for i, t := range r.Tags {
			tags[i] = t.String()
		}
		out = append(out, ResolvedTokenRule{
			Tags:           tags,
			Color:          r.Style.Color.Resolve(p),
			FontWeight:     r.Style.FontWeight,
			FontStyle:      r.Style.FontStyle,
			TextDecoration: r.Style.TextDecoration,
		})
	}
	return out
}

// StyleFor returns the first resolved rule that lists tag, and whether one exists.
func (h HighlightStyle) StyleFor(tag Tag, p Palette) (ResolvedTokenRule, bool) {
	for _, r := range h.Rules {
		for _, t := range r.Tags {
			if t == tag {
				return resolveHighlight([]TokenRule{r}, p)[0], true
			}
		}
	}
	return ResolvedTokenRule{}, false
}
