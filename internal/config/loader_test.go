package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFromPathValidConfig(t *testing.T) {
	path := writeConfig(t, `logLevel: debug
output: json
manifestVersion: v1
`)

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg.APIVersion != DefaultAPIVersion {
		t.Fatalf("expected default apiVersion %q, got %q", DefaultAPIVersion, cfg.APIVersion)
	}
	if cfg.LogLevel != "debug" || cfg.Output != "json" || cfg.ManifestVersion != "v1" {
		t.Fatalf("unexpected config: %#v", cfg)
	}
}

func TestLoadFromPathAppliesDefaults(t *testing.T) {
	path := writeConfig(t, "{}\n")

	cfg, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults %#v, got %#v", Default(), cfg)
	}
}

func TestLoadFromPathMissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")
	_, err := LoadFromPath(path)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in missing-file error, got %v", err)
	}
}

func TestLoadFromPathMalformedYAML(t *testing.T) {
	path := writeConfig(t, "logLevel: [")

	_, err := LoadFromPath(path)
	if err == nil || !strings.Contains(err.Error(), "parse config file") {
		t.Fatalf("expected parse error context, got %v", err)
	}
}

func TestLoadFromPathRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{content: "logLevel: loud\n", want: "logLevel"},
		{content: "output: xml\n", want: "output"},
		{content: "manifestVersion: v7\n", want: "manifestVersion"},
	}
	for _, tc := range tests {
		_, err := LoadFromPath(writeConfig(t, tc.content))
		if err == nil || !strings.Contains(err.Error(), tc.want) {
			t.Fatalf("LoadFromPath(%q) expected %s error, got %v", tc.content, tc.want, err)
		}
	}
}

func TestLoadUsesConfigEnvVar(t *testing.T) {
	path := writeConfig(t, "logLevel: info\n")
	t.Setenv(EnvConfigPath, path)

	cfg, resolvedPath, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if resolvedPath != path {
		t.Fatalf("expected resolved path %q, got %q", path, resolvedPath)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("unexpected logLevel: %q", cfg.LogLevel)
	}
}

func TestLoadMissingDefaultFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv(EnvConfigPath, "")

	cfg, resolvedPath, err := Load("")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if resolvedPath != filepath.Join(home, ".scrollyctl", "config.yaml") {
		t.Fatalf("unexpected default path %q", resolvedPath)
	}
	if cfg != Default() {
		t.Fatalf("expected defaults, got %#v", cfg)
	}
}

func TestLoadMissingExplicitFileFails(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for explicit path, got %v", err)
	}
}

func TestSaveWritesUpdatedConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	cfg := Default()
	if err := cfg.Set("output", "yaml"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	if err := Save(path, cfg); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := LoadFromPath(path)
	if err != nil {
		t.Fatalf("LoadFromPath() after Save error = %v", err)
	}
	if loaded.Output != "yaml" {
		t.Fatalf("expected output yaml, got %q", loaded.Output)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat saved config: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("expected 0600 permissions, got %v", info.Mode().Perm())
	}
}

func TestSetRejectsUnknownKey(t *testing.T) {
	cfg := Default()
	if err := cfg.Set("colour", "blue"); err == nil {
		t.Fatalf("expected unknown key error")
	}
	if err := cfg.Set("logLevel", "verbose"); err == nil {
		t.Fatalf("expected invalid logLevel error")
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	return path
}
