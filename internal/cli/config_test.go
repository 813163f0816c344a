package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/matzehuels/gfakit/pkg/errors"
	"github.com/matzehuels/gfakit/pkg/gfa"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFile)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg != defaultConfig() {
		t.Errorf("loadConfig() = %+v, want defaults", cfg)
	}
	if cfg.Level() != gfa.LevelStrict {
		t.Errorf("Level() = %v, want %v", cfg.Level(), gfa.LevelStrict)
	}
}

func TestLoadConfig_DefaultLocation(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	if err := os.MkdirAll(filepath.Join(home, appName), 0o755); err != nil {
		t.Fatal(err)
	}
	writeConfig(t, filepath.Join(home, appName), "[validation]\nlevel = 1\n")

	cfg, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	if cfg.Validation.Level != 1 {
		t.Errorf("Validation.Level = %d, want 1", cfg.Validation.Level)
	}
	// Keys the file leaves out keep their defaults.
	if cfg.Multiply.CoverageTag != "RC" {
		t.Errorf("Multiply.CoverageTag = %q, want RC", cfg.Multiply.CoverageTag)
	}
}

func TestLoadConfig_Explicit(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[validation]
level = 3
strict_ordering = true

[multiply]
coverage_tag = "KC"
unit = 25.5

[render]
detailed = true
direction = "TB"
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() error: %v", err)
	}
	want := Config{
		Validation: ValidationConfig{Level: 3, StrictOrdering: true},
		Multiply:   MultiplyConfig{CoverageTag: "KC", Unit: 25.5},
		Render:     RenderConfig{Detailed: true, Direction: "TB"},
	}
	if cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", cfg, want)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name string
		path string
		code errors.Code
	}{
		{"missing explicit file", filepath.Join(dir, "nope.toml"), errors.ErrCodeFileNotFound},
		{"level out of range", writeConfig(t, t.TempDir(), "[validation]\nlevel = 7\n"), errors.ErrCodeArgument},
		{"negative unit", writeConfig(t, t.TempDir(), "[multiply]\nunit = -1.0\n"), errors.ErrCodeArgument},
		{"unknown key", writeConfig(t, t.TempDir(), "[validation]\nstrict = true\n"), errors.ErrCodeArgument},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadConfig(tt.path)
			if !errors.Is(err, tt.code) {
				t.Errorf("loadConfig() error = %v, want %s", err, tt.code)
			}
		})
	}

	if _, err := loadConfig(writeConfig(t, t.TempDir(), "[validation\n")); err == nil {
		t.Error("loadConfig() accepted malformed TOML")
	}
}
