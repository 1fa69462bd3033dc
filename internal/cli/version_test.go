package cli

import (
	"strings"
	"testing"
)

func TestVersionCommandPrintsVersion(t *testing.T) {
	out, _, err := executeRoot(t, []string{"version"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	if got := strings.TrimSpace(out); got != "test" {
		t.Fatalf("version output = %q, want %q", got, "test")
	}
}
