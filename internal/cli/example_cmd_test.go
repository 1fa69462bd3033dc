package cli

import (
	"strings"
	"testing"

	"github.com/benedict2310/scrollyctl/pkg/loader"
)

func TestExampleCommandDefaultsToV2(t *testing.T) {
	out, _, err := executeRoot(t, []string{"example"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "apiVersion: scrolly.dev/v2") {
		t.Fatalf("expected v2 example, got:\n%s", out)
	}
	if _, err := loader.Load([]byte(out), loader.Options{}); err != nil {
		t.Fatalf("printed example does not validate: %v", err)
	}
}

func TestExampleCommandLegacy(t *testing.T) {
	out, _, err := executeRoot(t, []string{"example", "--api-version", "v1"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out, "apiVersion: scrolly.dev/v1") || !strings.Contains(out, "showSpacers") {
		t.Fatalf("expected v1 example, got:\n%s", out)
	}
}

func TestExampleCommandRejectsUnknownVersion(t *testing.T) {
	_, _, err := executeRoot(t, []string{"example", "--api-version", "v3"})
	if err == nil || !strings.Contains(err.Error(), "unsupported apiVersion") {
		t.Fatalf("expected version error, got %v", err)
	}
}
