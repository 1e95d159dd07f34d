// Package vscode imports VS Code colour themes into editor palettes.
package vscode

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"path/filepath"
)

// ErrThemeNotFound is returned when the archive has no entry with the requested name.
var ErrThemeNotFound = errors.New("theme file not found in extension")

// Source locates a theme JSON file inside a .vsix extension archive.
type Source struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"` // archive path, relative to the extensions dir
	File string `yaml:"file"` // entry inside the archive
	Dark bool   `yaml:"dark"`
}

// KnownSources returns the extension themes edtheme knows how to import.
func KnownSources() []Source {
	return []Source{
		{
			Name: "dracula",
			Path: "dracula-theme.theme-dracula-2.22.3.vsix",
			File: "extension/theme/dracula.json",
			Dark: true,
		},
		{
			Name: "solarized-light",
			Path: "ryanolsonx.solarized-2.0.3.vsix",
			File: "extension/themes/light-color-theme.json",
			Dark: false,
		},
		{
			Name: "solarized-dark",
			Path: "ryanolsonx.solarized-2.0.3.vsix",
			File: "extension/themes/dark-color-theme.json",
			Dark: true,
		},
		{
			Name: "material-light",
			Path: "Equinusocio.vsc-material-theme-33.2.2.vsix",
			File: "extension/build/themes/Material-Theme-Lighter.json",
			Dark: false,
		},
		{
			Name: "material-dark",
			Path: "Equinusocio.vsc-material-theme-33.2.2.vsix",
			File: "extension/build/themes/Material-Theme-Default.json",
			Dark: true,
		},
		{
			Name: "github-light",
			Path: "GitHub.github-vscode-theme-3.0.0.vsix",
			File: "extension/themes/light.json",
			Dark: false,
		},
		{
			Name: "github-dark",
			Path: "GitHub.github-vscode-theme-3.0.0.vsix",
			File: "extension/themes/dark.json",
			Dark: true,
		},
	}
}

// FindSource returns the known source with the given name.
func FindSource(name string) (Source, bool) {
	for _, s := range KnownSources() {
		if s.Name == name {
			return s, true
		}
	}
	return Source{}, false
}

// Extract reads src.File from the archive at extensionsDir/src.Path.
func Extract(extensionsDir string, src Source) ([]byte, error) {
	return ExtractFile(filepath.Join(extensionsDir, src.Path), src.File)
}

// ExtractFile reads one entry from a .vsix (zip) archive.
func ExtractFile(archivePath, file string) ([]byte, error) {
	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return nil, fmt.Errorf("opening extension %s: %w", archivePath, err)
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		if f.Name != file {
			continue
		}

		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("opening %s: %w", file, err)
		}
		defer func() { _ = rc.Close() }()

		content, err := io.ReadAll(rc)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", file, err)
		}
		return content, nil
	}

	return nil, fmt.Errorf("%w: %s in %s", ErrThemeNotFound, file, archivePath)
}
