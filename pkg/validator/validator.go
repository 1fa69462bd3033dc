package validator

import (
	"fmt"

	"github.com/benedict2310/scrollyctl/pkg/model"
)

const rootFunc = "ValidateRootConfig"

// ValidateRootConfig validates cfg and then each section in order. It stops at the first
// violation and returns it as a *ConfigError.
func ValidateRootConfig(cfg model.Config) error {
	version, err := resolveVersion(rootFunc, cfg.Version)
	if err != nil {
		return err
	}

	if cfg.AppContainerID == "" {
		return newError(rootFunc, "appContainerId", "", "no appContainerId is set for the story")
	}
	if len(cfg.Sections) == 0 {
		return newError(rootFunc, "sectionList", "", "sectionList is empty")
	}
	if err := validateNames(rootFunc, "", cfg.CSSNames); err != nil {
		return err
	}

	seen := make(map[string]int, len(cfg.Sections))
	for i, section := range cfg.Sections {
		if err := ValidateSection(section, version); err != nil {
			return err
		}
		id := section.SectionIdentifier
		if prev, exists := seen[id]; exists {
			return newError(rootFunc, "sectionIdentifier", id, fmt.Sprintf("sectionIdentifier is shared by sections %d and %d; identifiers must be unique", prev, i))
		}
		seen[id] = i
	}

	return nil
}
