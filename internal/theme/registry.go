package theme

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/gosimple/slug"
)

var (
	registryMu sync.RWMutex
	registry   = map[string]*Theme{}
)

func init() {
	Register(NewBase())
	Register(NewSolarizedDark())
}

// Slug normalises a theme name for lookup and file names.
func Slug(name string) string {
	return slug.Make(name)
}

// Register adds t to the registry under its slugged name, replacing any
// theme already registered with that name. It returns t.
func Register(t *Theme) *Theme {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[Slug(t.Name())] = t
	return t
}

// Get returns the registered theme with the given name.
func Get(name string) (*Theme, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	t, ok := registry[Slug(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTheme, name)
	}
	return t, nil
}

// Names returns the registered theme names, sorted.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ExportName converts a kebab-case theme name into a camelCase identifier,
// e.g. solarized-dark -> solarizedDark. Names that would not start with a
// letter are prefixed with "theme" (1984-dark -> theme1984Dark).
func ExportName(name string) string {
	id := camelCase(Slug(name))
	if id == "" || (id[0] >= '0' && id[0] <= '9') {
		return "theme" + id
	}
	return id
}

func camelCase(slug string) string {
	var b strings.Builder
	upper := false
	for _, c := range slug {
		if c == '-' {
			upper = true
			continue
		}
		if upper {
			b.WriteString(strings.ToUpper(string(c)))
			upper = false
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}
