package names

import (
	"fmt"
	"regexp"
)

// Kind is the type tag manifests use to declare a ClassNames override.
const Kind = "ClassNames"

const MaxPrefixLength = 64

var prefixPattern = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_-]*$`)

// Styler supplies the CSS class and element id conventions used when a story is rendered.
// It is sealed: *ClassNames is the only implementation the validators accept.
type Styler interface {
	SectionClass(sectionID string) string
	GraphClass(sectionID string) string
	NarrationClass(sectionID string) string
	NarrationBlockClass(sectionID string) string
	SectionID(sectionID string) string
	GraphID(sectionID string) string

	isClassNames()
}

// Options overrides individual prefixes. Empty fields keep the defaults.
type Options struct {
	SectionPrefix        string `yaml:"sectionPrefix,omitempty" json:"sectionPrefix,omitempty"`
	GraphPrefix          string `yaml:"graphPrefix,omitempty" json:"graphPrefix,omitempty"`
	NarrationPrefix      string `yaml:"narrationPrefix,omitempty" json:"narrationPrefix,omitempty"`
	NarrationBlockPrefix string `yaml:"narrationBlockPrefix,omitempty" json:"narrationBlockPrefix,omitempty"`
}

// ClassNames is the library's naming convention for sections, graphs and narration blocks.
type ClassNames struct {
	sectionPrefix        string
	graphPrefix          string
	narrationPrefix      string
	narrationBlockPrefix string
}

func defaultOptions() Options {
	return Options{
		SectionPrefix:        "section",
		GraphPrefix:          "graph_section",
		NarrationPrefix:      "narration_section",
		NarrationBlockPrefix: "narration_block",
	}
}

// Default returns the naming convention used when a config carries no override.
func Default() *ClassNames {
	n, _ := New(Options{})
	return n
}

// New builds a ClassNames from opts, falling back to defaults for empty prefixes.
func New(opts Options) (*ClassNames, error) {
	def := defaultOptions()
	resolved := []struct {
		field string
		value *string
		def   string
	}{
		{"sectionPrefix", &opts.SectionPrefix, def.SectionPrefix},
		{"graphPrefix", &opts.GraphPrefix, def.GraphPrefix},
		{"narrationPrefix", &opts.NarrationPrefix, def.NarrationPrefix},
		{"narrationBlockPrefix", &opts.NarrationBlockPrefix, def.NarrationBlockPrefix},
	}
	for _, r := range resolved {
		if *r.value == "" {
			*r.value = r.def
			continue
		}
		if err := ValidatePrefix(*r.value); err != nil {
			return nil, fmt.Errorf("%s: %w", r.field, err)
		}
	}

	return &ClassNames{
		sectionPrefix:        opts.SectionPrefix,
		graphPrefix:          opts.GraphPrefix,
		narrationPrefix:      opts.NarrationPrefix,
		narrationBlockPrefix: opts.NarrationBlockPrefix,
	}, nil
}

// ValidatePrefix checks that prefix can start a CSS class name.
func ValidatePrefix(prefix string) error {
	if prefix == "" {
		return fmt.Errorf("prefix is required")
	}
	if len(prefix) > MaxPrefixLength {
		return fmt.Errorf("prefix must be at most %d characters", MaxPrefixLength)
	}
	if !prefixPattern.MatchString(prefix) {
		return fmt.Errorf("prefix must match %q", prefixPattern.String())
	}
	return nil
}

func (n *ClassNames) SectionClass(sectionID string) string {
	return n.sectionPrefix + "_" + sectionID
}

func (n *ClassNames) GraphClass(sectionID string) string {
	return n.graphPrefix + "_" + sectionID
}

func (n *ClassNames) NarrationClass(sectionID string) string {
	return n.narrationPrefix + "_" + sectionID
}

func (n *ClassNames) NarrationBlockClass(sectionID string) string {
	return n.narrationBlockPrefix + "_" + sectionID
}

// SectionID is the DOM id of the element holding a whole section.
func (n *ClassNames) SectionID(sectionID string) string {
	return n.SectionClass(sectionID) + "_id"
}

// GraphID is the DOM id passed to a section's build-graph callback.
func (n *ClassNames) GraphID(sectionID string) string {
	return n.GraphClass(sectionID) + "_id"
}

// Options reports the prefixes in effect, suitable for re-serialising a manifest.
func (n *ClassNames) Options() Options {
	return Options{
		SectionPrefix:        n.sectionPrefix,
		GraphPrefix:          n.graphPrefix,
		NarrationPrefix:      n.narrationPrefix,
		NarrationBlockPrefix: n.narrationBlockPrefix,
	}
}

func (n *ClassNames) isClassNames() {}
