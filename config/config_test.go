package config

import (
	"bytes"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if len(cfg.Ontology.Sources) == 0 {
		t.Error("expected default ontology sources")
	}
	if cfg.Lexicon.Language != "en" {
		t.Errorf("expected default language en, got %s", cfg.Lexicon.Language)
	}
	if cfg.Server.Listen != ":8583" {
		t.Errorf("expected default listen :8583, got %s", cfg.Server.Listen)
	}
	if cfg.Ontology.Watch {
		t.Error("expected watch disabled by default")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid default config",
			modify:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "missing sources",
			modify:  func(c *Config) { c.Ontology.Sources = nil },
			wantErr: true,
		},
		{
			name:    "missing language",
			modify:  func(c *Config) { c.Lexicon.Language = "" },
			wantErr: true,
		},
		{
			name:    "missing listen address",
			modify:  func(c *Config) { c.Server.Listen = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ontolex.yaml")

	content := `
ontology:
  sources:
    - data/**/*.yaml
  watch: true
lexicon:
  language: en
server:
  listen: ":9090"
  cors_origins:
    - https://example.com
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if len(cfg.Ontology.Sources) != 1 || cfg.Ontology.Sources[0] != "data/**/*.yaml" {
		t.Errorf("sources = %v", cfg.Ontology.Sources)
	}
	if !cfg.Ontology.Watch {
		t.Error("expected watch enabled")
	}
	if cfg.Server.Listen != ":9090" {
		t.Errorf("listen = %s", cfg.Server.Listen)
	}
	if len(cfg.Server.CORSOrigins) != 1 {
		t.Errorf("cors_origins = %v", cfg.Server.CORSOrigins)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	// The layered loader distinguishes an absent file from a broken one.
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("missing file error should satisfy fs.ErrNotExist, got %v", err)
	}
}

func TestLoadWithoutUserConfigDoesNotWarn(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	cfg, err := NewLoader(logger).Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Listen != ":8583" {
		t.Errorf("expected defaults, got listen %s", cfg.Server.Listen)
	}
	if strings.Contains(buf.String(), "Failed to load user config") {
		t.Errorf("absent user config should not warn:\n%s", buf.String())
	}
}

func TestMerge(t *testing.T) {
	base := DefaultConfig()
	other := &Config{}
	other.Server.Listen = ":7000"
	other.Ontology.Sources = []string{"a.yaml"}

	base.Merge(other)

	if base.Server.Listen != ":7000" {
		t.Errorf("listen = %s, want :7000", base.Server.Listen)
	}
	if base.Ontology.Sources[0] != "a.yaml" {
		t.Errorf("sources = %v", base.Ontology.Sources)
	}
	// Zero values in other must not clobber defaults.
	if base.Lexicon.Language != "en" {
		t.Errorf("language = %s, want en", base.Lexicon.Language)
	}
}

func TestSaveAndReload(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Server.Listen = ":7777"
	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile: %v", err)
	}
	if loaded.Server.Listen != ":7777" {
		t.Errorf("listen = %s, want :7777", loaded.Server.Listen)
	}
}
