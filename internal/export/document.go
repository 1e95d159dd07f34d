package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/mark3labs/edtheme/internal/theme"
	"gopkg.in/yaml.v3"
)

// Document is a serialisable snapshot of a theme with every value resolved.
type Document struct {
	Name      string                    `json:"name" yaml:"name"`
	Dark      bool                      `json:"dark" yaml:"dark"`
	Palette   theme.Palette             `json:"palette" yaml:"palette"`
	Chrome    []theme.ResolvedRule      `json:"chrome" yaml:"chrome"`
	Highlight []theme.ResolvedTokenRule `json:"highlight" yaml:"highlight"`
}

// NewDocument snapshots t.
func NewDocument(t *theme.Theme) Document {
	return Document{
		Name:      t.Name(),
		Dark:      t.Chrome.Dark,
		Palette:   t.Palette,
		Chrome:    t.ResolvedChrome(),
		Highlight: t.ResolvedHighlight(),
	}
}

// JSON writes the theme snapshot as indented JSON.
func JSON(w io.Writer, t *theme.Theme) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(NewDocument(t)); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// YAML writes the theme snapshot as YAML.
func YAML(w io.Writer, t *theme.Theme) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(t)); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding yaml: %w", err)
	}
	return nil
}
