// Package config provides centralized configuration management using Viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mark3labs/edtheme/internal/logger"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values for edtheme.
type Config struct {
	Theme         string `mapstructure:"theme" yaml:"theme"`
	ThemesDir     string `mapstructure:"themes_dir" yaml:"themes_dir"`
	OutputDir     string `mapstructure:"output_dir" yaml:"output_dir"`
	ExtensionsDir string `mapstructure:"extensions_dir" yaml:"extensions_dir"`
	Scope         string `mapstructure:"scope" yaml:"scope"`
	LogLevel      string `mapstructure:"log_level" yaml:"log_level"`
	LogFile       string `mapstructure:"log_file" yaml:"log_file"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() *Config {
	return &Config{
		Theme:         "solarized-dark",
		ThemesDir:     DefaultThemesDir(),
		OutputDir:     "themes",
		ExtensionsDir: "extensions",
		Scope:         ".cm-editor",
		LogLevel:      "info",
		LogFile:       "",
	}
}

var envKeys = []string{
	"theme",
	"themes_dir",
	"output_dir",
	"extensions_dir",
	"scope",
	"log_level",
	"log_file",
}

// Validate checks the configuration for values the commands cannot work with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Theme) == "" {
		return fmt.Errorf("theme must not be empty")
	}
	if strings.TrimSpace(c.Scope) == "" {
		return fmt.Errorf("scope must not be empty")
	}
	if c.LogLevel != "" {
		if _, err := logger.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}
	return nil
}

// Load loads configuration with full precedence:
// CLI flags > ENV vars > project config > XDG global config > defaults
// Flags are applied by the caller on top of the returned Config.
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")
	v.SetConfigName("edtheme")

	d := Defaults()
	v.SetDefault("theme", d.Theme)
	v.SetDefault("themes_dir", d.ThemesDir)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("extensions_dir", d.ExtensionsDir)
	v.SetDefault("scope", d.Scope)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("log_file", d.LogFile)

	// Setup ENV binding with EDTHEME_ prefix
	v.SetEnvPrefix("EDTHEME")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	for _, key := range envKeys {
		if err := v.BindEnv(key, "EDTHEME_"+strings.ToUpper(key)); err != nil {
			return nil, fmt.Errorf("binding %s env: %w", key, err)
		}
	}

	// Load global config first (if exists)
	globalPath := GlobalPath()
	if fileExists(globalPath) {
		v.SetConfigFile(globalPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading global config: %w", err)
		}
	}

	// Merge project config on top (if exists)
	projectPath := ProjectPath()
	if fileExists(projectPath) {
		v.SetConfigFile(projectPath)
		if err := v.MergeInConfig(); err != nil {
			return nil, fmt.Errorf("merging project config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	return &cfg, nil
}

// Exists returns true if any config file exists (global or project).
func Exists() bool {
	return fileExists(GlobalPath()) || fileExists(ProjectPath())
}

// configHome returns $XDG_CONFIG_HOME or ~/.config.
func configHome() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return xdg
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// GlobalPath returns the XDG global config path.
// Returns ~/.config/edtheme/edtheme.yml or $XDG_CONFIG_HOME/edtheme/edtheme.yml.
func GlobalPath() string {
	return filepath.Join(configHome(), "edtheme", "edtheme.yml")
}

// DefaultThemesDir returns the directory scanned for custom palette files.
func DefaultThemesDir() string {
	return filepath.Join(configHome(), "edtheme", "themes")
}

// ProjectPath returns the project-local config path.
func ProjectPath() string {
	return "edtheme.yml"
}

// WriteGlobal writes the config to the XDG global location.
func WriteGlobal(cfg *Config) error {
	return write(GlobalPath(), cfg)
}

// WriteProject writes the config to the project-local location.
func WriteProject(cfg *Config) error {
	return write(ProjectPath(), cfg)
}

func write(path string, cfg *Config) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating config directory: %w", err)
		}
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

// fileExists checks if a file exists.
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
