package theme

import (
	"errors"
	"fmt"
)

var (
	// ErrDanglingRole is returned when a rule references a role the palette does not define.
	ErrDanglingRole = errors.New("rule references unknown palette role")
	// ErrInvalidColor is returned for palette values that are neither hex nor var(--x).
	ErrInvalidColor = errors.New("invalid color")
	// ErrDarkMismatch is returned when the dark flag disagrees with the background luminance.
	ErrDarkMismatch = errors.New("dark flag does not match background")
	// ErrUnknownTheme is returned by Get for unregistered names.
	ErrUnknownTheme = errors.New("unknown theme")
)

// Validate checks that every role referenced by the theme's rules exists in
// its palette and that every palette colour is well formed. All problems are
// reported, joined into one error.
func Validate(t *Theme) error {
	var errs []error

	check := func(where string, v Value) {
		if v.Role == "" {
			return
		}
		if _, ok := t.Palette.Get(v.Role); !ok {
			errs = append(errs, fmt.Errorf("%s: %w: %q", where, ErrDanglingRole, v.Role))
		}
	}
	walkChrome(t.Chrome.Rules, func(selector string, d Decl) {
		check(fmt.Sprintf("chrome %q %s", selector, d.Property), d.Value)
	})
	for i, r := range t.Highlight.Rules {
		check(fmt.Sprintf("highlight rule %d", i), r.Style.Color)
	}

	for _, r := range allRoles {
		c, _ := t.Palette.Get(r)
		if c == "" || c.IsHex() || c.IsVar() {
			continue
		}
		errs = append(errs, fmt.Errorf("palette %s: %w: %q", r, ErrInvalidColor, c))
	}

	return errors.Join(errs...)
}

// CheckDarkFlag reports whether the palette's dark flag agrees with its
// background luminance. Palettes without a hex background cannot be checked
// and always pass.
func CheckDarkFlag(p Palette) error {
	l, ok := p.Luminance()
	if !ok {
		return nil
	}
	looksDark := l < darkThreshold
	if looksDark != p.Dark {
		return fmt.Errorf("%w: %s has dark=%t but background %s has luminance %.3f",
			ErrDarkMismatch, p.Name, p.Dark, p.Background, l)
	}
	return nil
}
