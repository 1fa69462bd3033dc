package main

import (
	"path/filepath"
	"testing"

	"github.com/benedict2310/scrollyctl/internal/cli"
	"github.com/benedict2310/scrollyctl/internal/config"
)

func TestRunVersion(t *testing.T) {
	isolateConfig(t)
	if err := run([]string{"version"}); err != nil {
		t.Fatalf("run(version) error = %v", err)
	}
}

func TestRunValidateMissingFlag(t *testing.T) {
	isolateConfig(t)
	err := run([]string{"validate"})
	if err == nil {
		t.Fatalf("expected validate to fail without --from")
	}
}

func TestRunValidateInvalidManifestExitCode(t *testing.T) {
	isolateConfig(t)
	err := run([]string{"validate", "-f", filepath.Join("..", "..", "testdata", "manifests", "invalid-narration.yaml")})
	if got := cli.ExitCode(err); got != 2 {
		t.Fatalf("ExitCode() = %d, want 2 (err=%v)", got, err)
	}
}

func isolateConfig(t *testing.T) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvConfigPath, "")
}
