package theme

import "fmt"

// Value is a style value that either points at a palette role or carries a
// literal. Format, when set, wraps the resolved role colour (e.g. "1px solid %s").
type Value struct {
	Role    Role
	Format  string
	Literal string
}

// Ref references a palette role.
func Ref(r Role) Value { return Value{Role: r} }

// Reff references a palette role wrapped in a format string.
func Reff(format string, r Role) Value { return Value{Role: r, Format: format} }

// Lit is a literal value that does not depend on the palette.
func Lit(s string) Value { return Value{Literal: s} }

// IsZero reports whether v carries nothing.
func (v Value) IsZero() bool {
	return v.Role == "" && v.Literal == ""
}

// Resolve returns the concrete value for palette p.
// An empty role colour resolves to "" even when a format is set.
func (v Value) Resolve(p Palette) string {
	if v.Role == "" {
		return v.Literal
	}
	c, _ := p.Get(v.Role)
	if c == "" {
		return ""
	}
	if v.Format != "" {
		return fmt.Sprintf(v.Format, c)
	}
	return string(c)
}
