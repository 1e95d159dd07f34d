package theme

// Decl is one property/value pair inside a chrome rule.
type Decl struct {
	Property string
	Value    Value
}

// ChromeRule styles one editor UI selector. "&" stands for the editor root.
type ChromeRule struct {
	Selector string
	Decls    []Decl
	Nested   []ChromeRule
}

// Chrome is the editor chrome rule table packaged with its dark flag.
type Chrome struct {
	Dark  bool
	Rules []ChromeRule
}

func decl(property string, v Value) Decl { return Decl{Property: property, Value: v} }

// chromeRules is the rule table shared by every palette.
func chromeRules() []ChromeRule {
	return []ChromeRule{
		{Selector: "&", Decls: []Decl{
			decl("color", Ref(RoleForeground)),
			decl("backgroundColor", Ref(RoleBackground)),
		}},

		{Selector: ".cm-content", Decls: []Decl{
			decl("caretColor", Ref(RoleCursor)),
		}},

		{Selector: "&.cm-focused .cm-cursor", Decls: []Decl{
			decl("borderLeftColor", Ref(RoleCursor)),
		}},
		{Selector: "&.cm-focused .cm-selectionBackground, .cm-selectionBackground, & ::selection", Decls: []Decl{
			decl("backgroundColor", Ref(RoleSelection)),
		}},

		{Selector: ".cm-panels", Decls: []Decl{
			decl("backgroundColor", Ref(RoleDropdownBackground)),
			decl("color", Ref(RoleForeground)),
		}},
		{Selector: ".cm-panels.cm-panels-top", Decls: []Decl{
			decl("borderBottom", Lit("2px solid black")),
		}},
		{Selector: ".cm-panels.cm-panels-bottom", Decls: []Decl{
			decl("borderTop", Lit("2px solid black")),
		}},

		{Selector: ".cm-searchMatch", Decls: []Decl{
			decl("backgroundColor", Ref(RoleDropdownBackground)),
			decl("outline", Reff("1px solid %s", RoleDropdownBorder)),
		}},
		{Selector: ".cm-searchMatch.cm-searchMatch-selected", Decls: []Decl{
			decl("backgroundColor", Ref(RoleSelection)),
		}},

		{Selector: ".cm-activeLine", Decls: []Decl{
			decl("backgroundColor", Ref(RoleActiveLine)),
		}},
		{Selector: ".cm-activeLineGutter", Decls: []Decl{
			decl("backgroundColor", Ref(RoleBackground)),
		}},
		{Selector: ".cm-selectionMatch", Decls: []Decl{
			decl("backgroundColor", Ref(RoleSelection)),
		}},

		{Selector: ".cm-matchingBracket, .cm-nonmatchingBracket", Decls: []Decl{
			decl("backgroundColor", Ref(RoleMatchingBracket)),
			decl("outline", Lit("none")),
		}},
		{Selector: ".cm-gutters", Decls: []Decl{
			decl("backgroundColor", Ref(RoleBackground)),
			decl("color", Ref(RoleForeground)),
			decl("border", Lit("none")),
		}},
		{Selector: ".cm-lineNumbers, .cm-gutterElement", Decls: []Decl{
			decl("color", Lit("inherit")),
		}},

		{Selector: ".cm-foldPlaceholder", Decls: []Decl{
			decl("backgroundColor", Lit("transparent")),
			decl("border", Lit("none")),
			decl("color", Ref(RoleForeground)),
		}},

		{Selector: ".cm-tooltip", Decls: []Decl{
			decl("border", Reff("1px solid %s", RoleDropdownBorder)),
			decl("backgroundColor", Ref(RoleDropdownBackground)),
			decl("color", Ref(RoleForeground)),
		}},
		{Selector: ".cm-tooltip.cm-tooltip-autocomplete", Nested: []ChromeRule{
			{Selector: "& > ul > li[aria-selected]", Decls: []Decl{
				decl("background", Ref(RoleSelection)),
				decl("color", Ref(RoleForeground)),
			}},
		}},
	}
}

// ResolvedDecl is a Decl with its value resolved against a palette.
type ResolvedDecl struct {
	Property string `json:"property" yaml:"property"`
	Value    string `json:"value" yaml:"value"`
}

// ResolvedRule is a ChromeRule resolved against a palette.
type ResolvedRule struct {
	Selector string         `json:"selector" yaml:"selector"`
	Decls    []ResolvedDecl `json:"decls,omitempty" yaml:"decls,omitempty"`
	Nested   []ResolvedRule `json:"nested,omitempty" yaml:"nested,omitempty"`
}

func resolveChrome(rules []ChromeRule, p Palette) []ResolvedRule {
	out := make([]ResolvedRule, 0, len(rules))
	for _, r := range rules {
		rr := ResolvedRule{Selector: r.Selector}
		for _, d := range r.Decls {
			rr.Decls = append(rr.Decls, ResolvedDecl{Property: d.Property, Value: d.Value.Resolve(p)})
		}
		if len(r.Nested) > 0 {
			rr.Nested = resolveChrome(r.Nested, p)
		}
		out = append(out, rr)
	}
	return out
}

// walkChrome calls fn for every declaration, depth first.
func walkChrome(rules []ChromeRule, fn func(selector string, d Decl)) {
	for _, r := range rules {
		for _, d := range r.Decls {
			fn(r.Selector, d)
		}
		walkChrome(r.Nested, fn)
	}
}
