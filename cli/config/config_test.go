package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestLoadConfig_MissingFileIsEmptyConfig(t *testing.T) {
	t.Parallel()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.APIKey != "" || cfg.DefaultModel != "" {
		t.Fatalf("cfg=%+v, want empty", cfg)
	}
}

func TestLoadConfig_ParsesFields(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("api_key: sk-test\ndefault_model: models/gemini-2.0-flash\nbase_url: http://localhost:9999\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.APIKey != "sk-test" {
		t.Fatalf("api_key=%q", cfg.APIKey)
	}
	if cfg.DefaultModel != "models/gemini-2.0-flash" {
		t.Fatalf("default_model=%q", cfg.DefaultModel)
	}
	if cfg.BaseURL != "http://localhost:9999" {
		t.Fatalf("base_url=%q", cfg.BaseURL)
	}
}

func TestLoadConfig_InvalidYAMLFails(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("api_key: [unclosed"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestSave_RoundTripsAndRestrictsPermissions(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := &Config{APIKey: "sk-test", DefaultModel: "models/gemini-2.0-flash"}
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	loaded, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if loaded.APIKey != cfg.APIKey || loaded.DefaultModel != cfg.DefaultModel {
		t.Fatalf("loaded=%+v, want %+v", loaded, cfg)
	}

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		if err != nil {
			t.Fatalf("stat: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0o600 {
			t.Fatalf("perm=%o, want 600", perm)
		}
	}
}
