package hooks

// Config is the top-level configuration for hooks loaded from .edtheme.hooks.yml.
type Config struct {
	Version int         `yaml:"version"`
	Hooks   HooksConfig `yaml:"hooks"`
}

// HooksConfig contains all hook configurations.
type HooksConfig struct {
	// PostExport runs after each exported file is written, in order.
	PostExport []*HookConfig `yaml:"post_export"`
}

// HookConfig defines a single hook's configuration.
type HookConfig struct {
	Command string   `yaml:"command"`
	Timeout int      `yaml:"timeout"` // seconds, default 30
	Formats []string `yaml:"formats"` // export formats the hook applies to; empty means all
}

// DefaultTimeout is the default timeout for hook execution in seconds.
const DefaultTimeout = 30

// Applies reports whether the hook runs for the given export format.
func (h *HookConfig) Applies(format string) bool {
	if len(h.Formats) == 0 {
		return true
	}
	for _, f := range h.Formats {
		if f == format {
			return true
		}
	}
	return false
}
