package theme

import (
	"slices"
	"sync"
)

// Theme is a palette together with the chrome and highlight tables built from it.
type Theme struct {
	Palette   Palette
	Chrome    Chrome
	Highlight HighlightStyle

	// Lazy-built resolved tables
	resolved     *resolved
	resolvedOnce sync.Once
}

type resolved struct {
	chrome    []ResolvedRule
	highlight []ResolvedTokenRule
}

// New builds a theme from a palette. The returned tables reference palette
// roles and are never mutated afterwards.
func New(p Palette) *Theme {
	return &Theme{
		Palette: p,
		Chrome: Chrome{
			Dark:  p.Dark,
			Rules: chromeRules(),
		},
		Highlight: HighlightStyle{Rules: highlightRules()},
	}
}

// Name returns the palette name.
func (t *Theme) Name() string {
	return t.Palette.Name
}

func (t *Theme) resolve() *resolved {
	t.resolvedOnce.Do(func() {
		t.resolved = &resolved{
			chrome:    resolveChrome(t.Chrome.Rules, t.Palette),
			highlight: resolveHighlight(t.Highlight.Rules, t.Palette),
		}
	})
	return t.resolved
}

// ResolvedChrome returns the chrome rules with palette colours substituted.
// Resolved once on first call; each call returns an independent copy.
func (t *Theme) ResolvedChrome() []ResolvedRule {
	return cloneRules(t.resolve().chrome)
}

// ResolvedHighlight returns the token rules with palette colours substituted.
// Each call returns an independent copy.
func (t *Theme) ResolvedHighlight() []ResolvedTokenRule {
	rules := slices.Clone(t.resolve().highlight)
	for i := range rules {
		rules[i].Tags = slices.Clone(rules[i].Tags)
	}
	return rules
}

func cloneRules(rules []ResolvedRule) []ResolvedRule {
	if rules == nil {
		return nil
	}
	out := make([]ResolvedRule, len(rules))
	for i, r := range rules {
		out[i] = ResolvedRule{
			Selector: r.Selector,
			Decls:    slices.Clone(r.Decls),
			Nested:   cloneRules(r.Nested),
		}
	}
	return out
}

// ReferencedRoles returns every role used by the chrome and highlight tables,
// in first-use order without duplicates.
func (t *Theme) ReferencedRoles() []Role {
	seen := make(map[Role]bool)
	var out []Role
	add := func(r Role) {
		if r == "" || seen[r] {
			return
		}
		seen[r] = true
		out = append(out, r)
	}
	walkChrome(t.Chrome.Rules, func(_ string, d Decl) { add(d.Value.Role) })
	for _, r := range t.Highlight.Rules {
		add(r.Style.Color.Role)
	}
	return out
}
