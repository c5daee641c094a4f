package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/physgun/territory/core"
)

func TestDefaultSettingsValid(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
	if s.MinSize.X <= 0 || s.MinSize.Y <= 0 {
		t.Errorf("Expected positive min size, got %+v", s.MinSize)
	}
	if s.StrictResize {
		t.Error("Expected strict resize off by default")
	}
}

func TestValidateRejectsBadSettings(t *testing.T) {
	s := DefaultSettings()
	s.MinSize = core.V(0, 20)
	if err := s.Validate(); err == nil {
		t.Error("Expected zero min width to be rejected")
	}

	s = DefaultSettings()
	s.DefaultSize = core.V(10, 10)
	if err := s.Validate(); err == nil {
		t.Error("Expected default size below minimum to be rejected")
	}
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("TERRITORY_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))

	s, err := Load()
	if err != nil {
		t.Fatalf("Expected missing config file to fall back to defaults, got %v", err)
	}
	if s != DefaultSettings() {
		t.Errorf("Expected defaults, got %+v", s)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `[layout]
min_width = 30.0
min_height = 25.0
strict_resize = true
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TERRITORY_CONFIG", path)

	s, err := Load()
	if err != nil {
		t.Fatalf("Expected config file to load, got %v", err)
	}
	if s.MinSize.X != 30 || s.MinSize.Y != 25 {
		t.Errorf("Expected min size from file, got %+v", s.MinSize)
	}
	if !s.StrictResize {
		t.Error("Expected strict resize enabled from file")
	}
	// Unset keys keep their defaults
	if s.DefaultSize != DefaultSettings().DefaultSize {
		t.Errorf("Expected default size unchanged, got %+v", s.DefaultSize)
	}
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("TERRITORY_CONFIG", filepath.Join(t.TempDir(), "nonexistent.toml"))
	t.Setenv("TERRITORY_LAYOUT_MIN_WIDTH", "42")

	s, err := Load()
	if err != nil {
		t.Fatalf("Expected env override to load, got %v", err)
	}
	if s.MinSize.X != 42 {
		t.Errorf("Expected min width 42 from env, got %f", s.MinSize.X)
	}
}
