package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("{}\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.ThemeFallbackName != "par" {
		t.Fatalf("unexpected fallback name: %q", cfg.ThemeFallbackName)
	}
	if cfg.MaxJSONSizeMB != 10 {
		t.Fatalf("unexpected max size: %d", cfg.MaxJSONSizeMB)
	}
	if len(cfg.AllowedJSONExtensions) != 1 || cfg.AllowedJSONExtensions[0] != ".json" {
		t.Fatalf("unexpected extensions: %v", cfg.AllowedJSONExtensions)
	}
	if !cfg.ValidateFileContent || !cfg.SanitizeFilenames {
		t.Fatal("expected file validation defaults enabled")
	}
}

func TestLoadOverrides(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `data_dir: ` + dir + `
theme: solar_light
theme_fallback_name: solar
max_json_size_mb: 2
watch_themes: true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Theme != "solar_light" {
		t.Fatalf("unexpected theme: %q", cfg.Theme)
	}
	if cfg.ThemeFallbackName != "solar" {
		t.Fatalf("unexpected fallback: %q", cfg.ThemeFallbackName)
	}
	if cfg.MaxJSONSizeMB != 2 {
		t.Fatalf("unexpected max size: %d", cfg.MaxJSONSizeMB)
	}
	if !cfg.WatchThemes {
		t.Fatal("expected watch_themes enabled")
	}
	if cfg.ThemesDir() != filepath.Join(dir, "themes") {
		t.Fatalf("unexpected themes dir: %q", cfg.ThemesDir())
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestSaveTheme(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("theme_fallback_name: solar\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	if err := SaveTheme(path, "solar_dark"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "solar_dark" {
		t.Fatalf("unexpected theme: %q", cfg.Theme)
	}
	if cfg.ThemeFallbackName != "solar" {
		t.Fatalf("existing settings must be preserved, got fallback %q", cfg.ThemeFallbackName)
	}
}

func TestSaveThemeCreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	if err := SaveTheme(path, "par_dark"); err != nil {
		t.Fatalf("SaveTheme: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Theme != "par_dark" {
		t.Fatalf("unexpected theme: %q", cfg.Theme)
	}
}
