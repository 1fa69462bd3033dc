package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/benedict2310/scrollyctl/internal/config"
)

func TestConfigViewCommandPrintsDefaults(t *testing.T) {
	out, _, err := executeRoot(t, []string{"config", "view"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	for _, want := range []string{"apiVersion: " + config.DefaultAPIVersion, "logLevel: warn", "output: table", "manifestVersion: scrolly.dev/v2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, out)
		}
	}
}

func TestConfigSetCommandSavesAndAppliesOutput(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")

	out, _, err := executeRoot(t, []string{"--config", configPath, "config", "set", "output", "json"})
	if err == nil {
		t.Fatalf("expected explicit missing config to fail, got output: %s", out)
	}

	if err := os.WriteFile(configPath, []byte("logLevel: error\n"), 0o600); err != nil {
		t.Fatalf("write config file: %v", err)
	}
	if _, _, err := executeRoot(t, []string{"--config", configPath, "config", "set", "output", "json"}); err != nil {
		t.Fatalf("config set error = %v", err)
	}

	saved, err := config.LoadFromPath(configPath)
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if saved.Output != "json" || saved.LogLevel != "error" {
		t.Fatalf("unexpected saved config: %#v", saved)
	}

	out, _, err = executeRoot(t, []string{"--config", configPath, "validate", "-f", manifestFixture("valid-v2.yaml")})
	if err != nil {
		t.Fatalf("validate error = %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("expected configured json output, got:\n%s", out)
	}
}

func TestConfigSetCommandCreatesDefaultFile(t *testing.T) {
	home := t.TempDir()
	cmd := NewRootCmd("test")
	t.Setenv("HOME", home)
	t.Setenv(config.EnvConfigPath, "")
	cmd.SetOut(&strings.Builder{})
	cmd.SetErr(&strings.Builder{})
	cmd.SetArgs([]string{"config", "set", "manifestVersion", "v1"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	saved, err := config.LoadFromPath(filepath.Join(home, ".scrollyctl", "config.yaml"))
	if err != nil {
		t.Fatalf("LoadFromPath() error = %v", err)
	}
	if saved.ManifestVersion != "v1" {
		t.Fatalf("expected manifestVersion v1, got %q", saved.ManifestVersion)
	}
}

func TestConfigSetCommandRejectsInvalidValue(t *testing.T) {
	_, _, err := executeRoot(t, []string{"config", "set", "output", "xml"})
	if err == nil || !strings.Contains(err.Error(), "invalid output format") {
		t.Fatalf("expected invalid value error, got %v", err)
	}
}
