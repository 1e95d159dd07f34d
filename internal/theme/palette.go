package theme

import (
	"fmt"
	"strings"
)

// Role names a semantic colour slot in a Palette.
type Role string

const (
	RoleBackground         Role = "background"
	RoleForeground         Role = "foreground"
	RoleSelection          Role = "selection"
	RoleCursor             Role = "cursor"
	RoleDropdownBackground Role = "dropdownBackground"
	RoleDropdownBorder     Role = "dropdownBorder"
	RoleActiveLine         Role = "activeLine"
	RoleMatchingBracket    Role = "matchingBracket"
	RoleKeyword            Role = "keyword"
	RoleStorage            Role = "storage"
	RoleVariable           Role = "variable"
	RoleParameter          Role = "parameter"
	RoleFunction           Role = "function"
	RoleString             Role = "string"
	RoleConstant           Role = "constant"
	RoleType               Role = "type"
	RoleClass              Role = "class"
	RoleNumber             Role = "number"
	RoleComment            Role = "comment"
	RoleHeading            Role = "heading"
	RoleInvalid            Role = "invalid"
	RoleRegexp             Role = "regexp"
)

var allRoles = []Role{
	RoleBackground, RoleForeground, RoleSelection, RoleCursor,
	RoleDropdownBackground, RoleDropdownBorder, RoleActiveLine, RoleMatchingBracket,
	RoleKeyword, RoleStorage, RoleVariable, RoleParameter, RoleFunction,
	RoleString, RoleConstant, RoleType, RoleClass, RoleNumber,
	RoleComment, RoleHeading, RoleInvalid, RoleRegexp,
}

// Roles returns every palette role in declaration order.
func Roles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// Kebab returns the role in kebab case (dropdownBackground -> dropdown-background).
func (r Role) Kebab() string {
	return Kebab(string(r))
}

// Kebab converts a camelCase identifier to kebab case.
func Kebab(s string) string {
	var b strings.Builder
	for i, c := range s {
		if c >= 'A' && c <= 'Z' {
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(c + ('a' - 'A'))
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

// Color is a literal hex code, a CSS variable reference or empty.
// Empty means "no override, use the engine default".
type Color string

// Var returns a CSS custom property reference, e.g. var(--cm-keyword).
func Var(name string) Color {
	return Color(fmt.Sprintf("var(--%s)", name))
}

// IsVar reports whether c is a var(--name) reference.
func (c Color) IsVar() bool {
	s := string(c)
	return strings.HasPrefix(s, "var(--") && strings.HasSuffix(s, ")") && len(s) > len("var(--)")
}

// IsHex reports whether c is #rgb, #rgba, #rrggbb or #rrggbbaa.
func (c Color) IsHex() bool {
	s := string(c)
	if len(s) == 0 || s[0] != '#' {
		return false
	}
	switch len(s) - 1 {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, ch := range s[1:] {
		switch {
		case ch >= '0' && ch <= '9', ch >= 'a' && ch <= 'f', ch >= 'A' && ch <= 'F':
		default:
			return false
		}
	}
	return true
}

// Opaque returns c without its alpha channel. Non-hex colours are returned unchanged.
func (c Color) Opaque() Color {
	if !c.IsHex() {
		return c
	}
	switch len(c) {
	case 5:
		return c[:4]
	case 9:
		return c[:7]
	}
	return c
}

// Palette defines the colours a theme is built from.
type Palette struct {
	Name string `yaml:"name" json:"name"`
	Dark bool   `yaml:"dark" json:"dark"`

	// Editor chrome
	Background         Color `yaml:"background" json:"background"`
	Foreground         Color `yaml:"foreground" json:"foreground"`
	Selection          Color `yaml:"selection" json:"selection"`
	Cursor             Color `yaml:"cursor" json:"cursor"`
	DropdownBackground Color `yaml:"dropdownBackground" json:"dropdownBackground"`
	DropdownBorder     Color `yaml:"dropdownBorder" json:"dropdownBorder"`
	ActiveLine         Color `yaml:"activeLine" json:"activeLine"`
	MatchingBracket    Color `yaml:"matchingBracket" json:"matchingBracket"`

	// Syntax
	Keyword   Color `yaml:"keyword" json:"keyword"`
	Storage   Color `yaml:"storage" json:"storage"`
	Variable  Color `yaml:"variable" json:"variable"`
	Parameter Color `yaml:"parameter" json:"parameter"`
	Function  Color `yaml:"function" json:"function"`
	String    Color `yaml:"string" json:"string"`
	Constant  Color `yaml:"constant" json:"constant"`
	Type      Color `yaml:"type" json:"type"`
	Class     Color `yaml:"class" json:"class"`
	Number    Color `yaml:"number" json:"number"`
	Comment   Color `yaml:"comment" json:"comment"`
	Heading   Color `yaml:"heading" json:"heading"`
	Invalid   Color `yaml:"invalid" json:"invalid"`
	Regexp    Color `yaml:"regexp" json:"regexp"`
}

// field returns a pointer to the colour slot for r, or nil for an unknown role.
func (p *Palette) field(r Role) *Color {
	switch r {
	case RoleBackground:
		return &p.Background
	case RoleForeground:
		return &p.Foreground
	case RoleSelection:
		return &p.Selection
	case RoleCursor:
		return &p.Cursor
	case RoleDropdownBackground:
		return &p.DropdownBackground
	case RoleDropdownBorder:
		return &p.DropdownBorder
	case RoleActiveLine:
		return &p.ActiveLine
	case RoleMatchingBracket:
		return &p.MatchingBracket
	case RoleKeyword:
		return &p.Keyword
	case RoleStorage:
		return &p.Storage
	case RoleVariable:
		return &p.Variable
	case RoleParameter:
		return &p.Parameter
	case RoleFunction:
		return &p.Function
	case RoleString:
		return &p.String
	case RoleConstant:
		return &p.Constant
	case RoleType:
		return &p.Type
	case RoleClass:
		return &p.Class
	case RoleNumber:
		return &p.Number
	case RoleComment:
		return &p.Comment
	case RoleHeading:
		return &p.Heading
	case RoleInvalid:
		return &p.Invalid
	case RoleRegexp:
		return &p.Regexp
	default:
		return nil
	}
}

// Get returns the colour for r. ok is false when r is not a palette role.
func (p Palette) Get(r Role) (c Color, ok bool) {
	f := p.field(r)
	if f == nil {
		return "", false
	}
	return *f, true
}

// Set returns a copy of p with r set to c. Unknown roles leave p unchanged.
func (p Palette) Set(r Role, c Color) Palette {
	if f := p.field(r); f != nil {
		*f = c
	}
	return p
}

// Colors returns the palette keyed by role.
func (p Palette) Colors() map[Role]Color {
	out := make(map[Role]Color, len(allRoles))
	for _, r := range allRoles {
		c, _ := p.Get(r)
		out[r] = c
	}
	return out
}
