package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Tabular is a report that can render itself as a table followed by a one-line summary.
type Tabular interface {
	TableHeaders() []string
	TableRows() [][]string
	Summary() string
}

// ParseFormat maps a flag or config value to a Format; empty selects the table.
func ParseFormat(v string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", string(FormatTable):
		return FormatTable, nil
	case string(FormatJSON):
		return FormatJSON, nil
	case string(FormatYAML):
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("invalid output format %q (expected table, json, or yaml)", v)
	}
}

// ResolveFormat prefers an explicitly set flag over the configured default.
func ResolveFormat(flagValue string, flagSet bool, configured string) (Format, error) {
	if flagSet {
		return ParseFormat(flagValue)
	}
	return ParseFormat(configured)
}

// Write renders report in format. Table output needs a Tabular report.
func Write(w io.Writer, format Format, report any) error {
	if format != FormatTable {
		return WriteStructured(w, format, report)
	}
	tab, ok := report.(Tabular)
	if !ok {
		return fmt.Errorf("table output is not supported for %T", report)
	}
	if err := WriteTable(w, tab.TableHeaders(), tab.TableRows()); err != nil {
		return err
	}
	if summary := tab.Summary(); summary != "" {
		if _, err := fmt.Fprintln(w, summary); err != nil {
			return err
		}
	}
	return nil
}

// WriteStructured encodes payload as indented JSON or YAML.
func WriteStructured(w io.Writer, format Format, payload any) error {
	var data []byte
	switch format {
	case FormatJSON:
		encoded, err := json.MarshalIndent(payload, "", "  ")
		if err != nil {
			return fmt.Errorf("encode json output: %w", err)
		}
		data = encoded
	case FormatYAML:
		encoded, err := yaml.Marshal(payload)
		if err != nil {
			return fmt.Errorf("encode yaml output: %w", err)
		}
		data = encoded
	default:
		return fmt.Errorf("structured output is only supported for json/yaml")
	}
	if len(data) == 0 || data[len(data)-1] != '\n' {
		data = append(data, '\n')
	}
	_, err := w.Write(data)
	return err
}
