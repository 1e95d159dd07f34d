package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// isolate points XDG_CONFIG_HOME and the working directory at a temp dir and
// clears EDTHEME_* variables for the duration of the test.
func isolate(t *testing.T) string {
	t.Helper()
	tmpDir := t.TempDir()

	origWd, _ := os.Getwd()
	t.Cleanup(func() { _ = os.Chdir(origWd) })
	if err := os.Chdir(tmpDir); err != nil {
		t.Fatalf("Failed to change to temp dir: %v", err)
	}

	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmpDir, "config"))
	for _, key := range envKeys {
		t.Setenv("EDTHEME_"+strings.ToUpper(key), "")
		_ = os.Unsetenv("EDTHEME_" + strings.ToUpper(key))
	}
	return tmpDir
}

func TestGlobalPath(t *testing.T) {
	tests := []struct {
		name      string
		xdgConfig string
		want      string
	}{
		{
			name:      "with XDG_CONFIG_HOME set",
			xdgConfig: "/custom/config",
			want:      "/custom/config/edtheme/edtheme.yml",
		},
		{
			name:      "without XDG_CONFIG_HOME",
			xdgConfig: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)

			got := GlobalPath()
			if tt.xdgConfig != "" {
				if got != tt.want {
					t.Errorf("GlobalPath() = %v, want %v", got, tt.want)
				}
				return
			}
			if !filepath.IsAbs(got) {
				t.Errorf("GlobalPath() should return absolute path, got %v", got)
			}
			if !strings.HasSuffix(got, filepath.Join(".config", "edtheme", "edtheme.yml")) {
				t.Errorf("GlobalPath() should end with .config/edtheme/edtheme.yml, got %v", got)
			}
		})
	}
}

func TestDefaultThemesDir(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	if got, want := DefaultThemesDir(), "/custom/config/edtheme/themes"; got != want {
		t.Errorf("DefaultThemesDir() = %v, want %v", got, want)
	}
}

func TestProjectPath(t *testing.T) {
	if got := ProjectPath(); got != "edtheme.yml" {
		t.Errorf("ProjectPath() = %v, want edtheme.yml", got)
	}
}

func TestExists(t *testing.T) {
	isolate(t)

	t.Run("no config exists", func(t *testing.T) {
		if Exists() {
			t.Error("Exists() = true, want false when no config files exist")
		}
	})

	t.Run("global config exists", func(t *testing.T) {
		globalPath := GlobalPath()
		if err := os.MkdirAll(filepath.Dir(globalPath), 0755); err != nil {
			t.Fatalf("Failed to create global config dir: %v", err)
		}
		if err := os.WriteFile(globalPath, []byte("theme: base\n"), 0644); err != nil {
			t.Fatalf("Failed to write global config: %v", err)
		}
		defer func() { _ = os.Remove(globalPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when global config exists")
		}
	})

	t.Run("project config exists", func(t *testing.T) {
		projectPath := ProjectPath()
		if err := os.WriteFile(projectPath, []byte("theme: base\n"), 0644); err != nil {
			t.Fatalf("Failed to write project config: %v", err)
		}
		defer func() { _ = os.Remove(projectPath) }()

		if !Exists() {
			t.Error("Exists() = false, want true when project config exists")
		}
	})
}

func TestWriteGlobal(t *testing.T) {
	isolate(t)

	cfg := &Config{
		Theme:         "base",
		ThemesDir:     "/tmp/themes",
		OutputDir:     "out",
		ExtensionsDir: "vsix",
		Scope:         ".editor",
		LogLevel:      "debug",
		LogFile:       "/tmp/test.log",
	}

	if err := WriteGlobal(cfg); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	data, err := os.ReadFile(GlobalPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}

	content := string(data)
	expectedFields := []string{
		"theme: base",
		"themes_dir: /tmp/themes",
		"output_dir: out",
		"extensions_dir: vsix",
		"scope: .editor",
		"log_level: debug",
		"log_file: /tmp/test.log",
	}
	for _, field := range expectedFields {
		if !strings.Contains(content, field) {
			t.Errorf("Config file missing expected field: %s\nContent:\n%s", field, content)
		}
	}
}

func TestWriteProject(t *testing.T) {
	isolate(t)

	cfg := Defaults()
	cfg.Theme = "project-theme"

	if err := WriteProject(cfg); err != nil {
		t.Fatalf("WriteProject() error = %v", err)
	}

	data, err := os.ReadFile(ProjectPath())
	if err != nil {
		t.Fatalf("Failed to read config file: %v", err)
	}
	if !strings.Contains(string(data), "theme: project-theme") {
		t.Errorf("Config file missing theme, content:\n%s", data)
	}
}

func TestLoad_NoConfig(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	want := Defaults()
	if *cfg != *want {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, want)
	}
}

func TestLoad_Precedence(t *testing.T) {
	isolate(t)

	global := Defaults()
	global.Theme = "global-theme"
	global.LogLevel = "warn"
	global.OutputDir = "global-out"
	if err := WriteGlobal(global); err != nil {
		t.Fatalf("WriteGlobal() error = %v", err)
	}

	// Project overrides theme only.
	if err := os.WriteFile(ProjectPath(), []byte("theme: project-theme\n"), 0644); err != nil {
		t.Fatalf("Failed to write project config: %v", err)
	}

	t.Run("project over global", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Theme != "project-theme" {
			t.Errorf("Theme = %v, want project-theme", cfg.Theme)
		}
		if cfg.LogLevel != "warn" {
			t.Errorf("LogLevel = %v, want warn", cfg.LogLevel)
		}
		if cfg.OutputDir != "global-out" {
			t.Errorf("OutputDir = %v, want global-out", cfg.OutputDir)
		}
	})

	t.Run("env over files", func(t *testing.T) {
		t.Setenv("EDTHEME_THEME", "env-theme")
		t.Setenv("EDTHEME_SCOPE", ".env-scope")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if cfg.Theme != "env-theme" {
			t.Errorf("Theme = %v, want env-theme", cfg.Theme)
		}
		if cfg.Scope != ".env-scope" {
			t.Errorf("Scope = %v, want .env-scope", cfg.Scope)
		}
	})
}

func TestLoad_MalformedGlobal(t *testing.T) {
	isolate(t)

	path := GlobalPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("theme: [unclosed\n"), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Error("Load() expected error for malformed global config")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty theme", mutate: func(c *Config) { c.Theme = " " }, wantErr: true},
		{name: "empty scope", mutate: func(c *Config) { c.Scope = "" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.LogLevel = "loud" }, wantErr: true},
		{name: "empty log level", mutate: func(c *Config) { c.LogLevel = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
