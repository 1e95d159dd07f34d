package theme

// BasePalette returns the light base palette. Every role defers to a CSS
// custom property (--cm-<role>) defined by the host page.
func BasePalette() Palette {
	p := Palette{
		Name: "base",
		Dark: false,
	}
	for _, r := range allRoles {
		p = p.Set(r, Var("cm-"+r.Kebab()))
	}
	return p
}

// NewBase creates the CSS-variable driven base theme.
func NewBase() *Theme {
	return New(BasePalette())
}
