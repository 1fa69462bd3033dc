package output

import (
	"bytes"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	if got, err := ParseFormat(""); err != nil || got != FormatTable {
		t.Fatalf("ParseFormat(\"\") got=%q err=%v", got, err)
	}
	if got, err := ParseFormat("json"); err != nil || got != FormatJSON {
		t.Fatalf("ParseFormat(json) got=%q err=%v", got, err)
	}
	if got, err := ParseFormat("yaml"); err != nil || got != FormatYAML {
		t.Fatalf("ParseFormat(yaml) got=%q err=%v", got, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected invalid format error")
	}
}

func TestWriteStructuredJSONAndYAML(t *testing.T) {
	payload := map[string]any{"manifest": "story.yaml", "sections": 2}

	jsonOut := &bytes.Buffer{}
	if err := WriteStructured(jsonOut, FormatJSON, payload); err != nil {
		t.Fatalf("WriteStructured(JSON) error = %v", err)
	}
	if !strings.Contains(jsonOut.String(), "\"manifest\": \"story.yaml\"") {
		t.Fatalf("unexpected json output: %s", jsonOut.String())
	}

	yamlOut := &bytes.Buffer{}
	if err := WriteStructured(yamlOut, FormatYAML, payload); err != nil {
		t.Fatalf("WriteStructured(YAML) error = %v", err)
	}
	if !strings.Contains(yamlOut.String(), "manifest: story.yaml") {
		t.Fatalf("unexpected yaml output: %s", yamlOut.String())
	}
}

func TestWriteTable(t *testing.T) {
	out := &bytes.Buffer{}
	err := WriteTable(out, []string{"KEY", "NARRATION"}, [][]string{{"intro", "path"}})
	if err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	if !strings.Contains(out.String(), "KEY") || !strings.Contains(out.String(), "intro") {
		t.Fatalf("unexpected table output: %s", out.String())
	}
}

func TestWriteTableRejectsRaggedRows(t *testing.T) {
	err := WriteTable(&bytes.Buffer{}, []string{"KEY", "NARRATION"}, [][]string{{"intro"}})
	if err == nil || !strings.Contains(err.Error(), "expected 2") {
		t.Fatalf("expected column count error, got %v", err)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{in: "narration", max: 20, want: "narration"},
		{in: "narration", max: 6, want: "nar..."},
		{in: "narration", max: 2, want: "na"},
		{in: "narration", max: 0, want: ""},
	}
	for _, tc := range tests {
		if got := Truncate(tc.in, tc.max); got != tc.want {
			t.Fatalf("Truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
		}
	}
}

type sectionSummary struct {
	Manifest string     `json:"manifest" yaml:"manifest"`
	Rows     [][]string `json:"rows" yaml:"rows"`
}

func (s sectionSummary) TableHeaders() []string { return []string{"KEY", "DATA"} }
func (s sectionSummary) TableRows() [][]string  { return s.Rows }
func (s sectionSummary) Summary() string        { return s.Manifest + ": valid" }

func TestWriteTabularReport(t *testing.T) {
	report := sectionSummary{Manifest: "story.yaml", Rows: [][]string{{"intro", ""}}}

	out := &bytes.Buffer{}
	if err := Write(out, FormatTable, report); err != nil {
		t.Fatalf("Write(table) error = %v", err)
	}
	got := out.String()
	if !strings.Contains(got, "KEY") || !strings.Contains(got, "intro  -") {
		t.Fatalf("unexpected table output: %s", got)
	}
	if !strings.HasSuffix(got, "story.yaml: valid\n") {
		t.Fatalf("expected summary line last, got: %s", got)
	}

	out.Reset()
	if err := Write(out, FormatJSON, report); err != nil {
		t.Fatalf("Write(json) error = %v", err)
	}
	if !strings.Contains(out.String(), "\"manifest\": \"story.yaml\"") {
		t.Fatalf("unexpected json output: %s", out.String())
	}
}

func TestWriteSummaryOnlyWhenNoRows(t *testing.T) {
	out := &bytes.Buffer{}
	if err := Write(out, FormatTable, sectionSummary{Manifest: "story.yaml"}); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out.String() != "story.yaml: valid\n" {
		t.Fatalf("expected only the summary line, got %q", out.String())
	}
}

func TestWriteRejectsTableForPlainPayload(t *testing.T) {
	if err := Write(&bytes.Buffer{}, FormatTable, map[string]string{"a": "b"}); err == nil {
		t.Fatalf("expected error for non-tabular table output")
	}
}

func TestResolveFormat(t *testing.T) {
	tests := []struct {
		name       string
		flag       string
		flagSet    bool
		configured string
		want       Format
	}{
		{name: "flag wins", flag: "json", flagSet: true, configured: "yaml", want: FormatJSON},
		{name: "configured default", flag: "table", flagSet: false, configured: "yaml", want: FormatYAML},
		{name: "nothing configured", flag: "table", flagSet: false, configured: "", want: FormatTable},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResolveFormat(tc.flag, tc.flagSet, tc.configured)
			if err != nil || got != tc.want {
				t.Fatalf("ResolveFormat() got=%q err=%v, want %q", got, err, tc.want)
			}
		})
	}
}

func TestDash(t *testing.T) {
	if Dash("") != "-" || Dash("  ") != "-" || Dash("intro") != "intro" {
		t.Fatalf("unexpected Dash results")
	}
}

func TestWriteTableEmptyRows(t *testing.T) {
	out := &bytes.Buffer{}
	if err := WriteTable(out, []string{"KEY"}, nil); err != nil {
		t.Fatalf("WriteTable() error = %v", err)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no output, got %q", out.String())
	}
}
