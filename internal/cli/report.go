package cli

import (
	"errors"
	"fmt"

	"github.com/benedict2310/scrollyctl/internal/output"
	"github.com/benedict2310/scrollyctl/pkg/model"
	"github.com/benedict2310/scrollyctl/pkg/validator"
)

type validationReport struct {
	Manifest   string          `json:"manifest" yaml:"manifest"`
	APIVersion string          `json:"apiVersion,omitempty" yaml:"apiVersion,omitempty"`
	Valid      bool            `json:"valid" yaml:"valid"`
	Sections   []sectionReport `json:"sections,omitempty" yaml:"sections,omitempty"`
	Error      *reportError    `json:"error,omitempty" yaml:"error,omitempty"`
}

type sectionReport struct {
	Key        string `json:"key,omitempty" yaml:"key,omitempty"`
	Identifier string `json:"identifier" yaml:"identifier"`
	Narration  string `json:"narration" yaml:"narration"`
	Data       string `json:"data" yaml:"data"`
}

type reportError struct {
	Func    string `json:"func,omitempty" yaml:"func,omitempty"`
	Field   string `json:"field,omitempty" yaml:"field,omitempty"`
	Section string `json:"section,omitempty" yaml:"section,omitempty"`
	Message string `json:"message" yaml:"message"`
}

func newReport(manifest string, cfg *model.Config, err error) validationReport {
	report := validationReport{Manifest: manifest, Valid: err == nil}
	if cfg != nil {
		report.APIVersion = string(cfg.Version)
		for _, section := range cfg.Sections {
			report.Sections = append(report.Sections, sectionReport{
				Key:        section.Key,
				Identifier: section.SectionIdentifier,
				Narration:  string(model.KindOf(section.Narration)),
				Data:       string(model.KindOf(section.Data)),
			})
		}
	}
	if err != nil {
		report.Error = &reportError{Message: err.Error()}
		var cfgErr *validator.ConfigError
		if errors.As(err, &cfgErr) {
			report.Error = &reportError{
				Func:    cfgErr.Func,
				Field:   cfgErr.Field,
				Section: cfgErr.Section,
				Message: cfgErr.Message,
			}
		}
	}
	return report
}

// TableHeaders, TableRows and Summary render the report through output.Write.
func (r validationReport) TableHeaders() []string {
	return []string{"KEY", "IDENTIFIER", "NARRATION", "DATA"}
}

func (r validationReport) TableRows() [][]string {
	rows := make([][]string, 0, len(r.Sections))
	for _, s := range r.Sections {
		rows = append(rows, []string{s.Key, s.Identifier, s.Narration, s.Data})
	}
	return rows
}

func (r validationReport) Summary() string {
	if r.Valid {
		return fmt.Sprintf("%s: valid (%d section(s))", r.Manifest, len(r.Sections))
	}
	return fmt.Sprintf("%s: invalid: %s", r.Manifest, output.Truncate(r.Error.Message, 200))
}
