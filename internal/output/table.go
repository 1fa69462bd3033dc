package output

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// WriteTable writes rows as aligned columns with empty cells shown as "-".
// Nothing is written when there are no rows.
func WriteTable(w io.Writer, headers []string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	if len(headers) > 0 {
		if _, err := fmt.Fprintln(tw, strings.Join(headers, "\t")); err != nil {
			return err
		}
	}
	for i, row := range rows {
		if len(headers) > 0 && len(row) != len(headers) {
			return fmt.Errorf("table row %d has %d columns, expected %d", i, len(row), len(headers))
		}
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = Dash(cell)
		}
		if _, err := fmt.Fprintln(tw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// Dash stands in for an empty value.
func Dash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

// Truncate shortens v to at most max bytes, marking the cut with "...".
func Truncate(v string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}
