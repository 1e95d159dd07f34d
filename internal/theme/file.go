package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/mark3labs/edtheme/internal/logger"
	"gopkg.in/yaml.v3"
)

// LoadPalette reads a YAML palette file. A missing name defaults to the
// file's base name.
func LoadPalette(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Palette{}, fmt.Errorf("reading palette %s: %w", path, err)
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Palette{}, fmt.Errorf("parsing palette %s: %w", path, err)
	}

	if p.Name == "" {
		base := filepath.Base(path)
		p.Name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	return p, nil
}

// WritePalette writes p to path as YAML, creating parent directories.
func WritePalette(path string, p Palette) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating palette directory: %w", err)
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshaling palette: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing palette file: %w", err)
	}
	return nil
}

// LoadDir builds and registers a theme for every *.yml / *.yaml palette in
// dir. Invalid palettes are skipped with a warning. A missing directory is
// not an error.
func LoadDir(dir string) ([]*Theme, error) {
	if dir == "" {
		return nil, nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading themes dir: %w", err)
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var loaded []*Theme
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		ext := filepath.Ext(e.Name())
		if ext != ".yml" && ext != ".yaml" {
			continue
		}

		path := filepath.Join(dir, e.Name())
		p, err := LoadPalette(path)
		if err != nil {
			logger.Warn("Skipping palette %s: %v", path, err)
			continue
		}

		t := New(p)
		if err := Validate(t); err != nil {
			logger.Warn("Skipping invalid palette %s: %v", path, err)
			continue
		}

		logger.Debug("Loaded palette %s from %s", p.Name, path)
		loaded = append(loaded, Register(t))
	}
	return loaded, nil
}
