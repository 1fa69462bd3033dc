package model

import "fmt"

// UpgradeLegacy migrates a V1 configuration to V2. Section keys become the section
// identifiers and per-section container ids are folded into the root, which requires
// them to match it. The input is not modified.
func UpgradeLegacy(cfg Config) (Config, error) {
	if cfg.Version != V1 {
		return Config{}, fmt.Errorf("upgrade requires apiVersion %s, got %q", V1, cfg.Version)
	}

	out := cfg
	out.Version = V2
	out.Sections = make([]Section, len(cfg.Sections))
	seen := make(map[string]int, len(cfg.Sections))
	for i, section := range cfg.Sections {
		if section.AppContainerID != "" && section.AppContainerID != cfg.AppContainerID {
			return Config{}, fmt.Errorf("section %q: appContainerId %q differs from root %q", section.SectionIdentifier, section.AppContainerID, cfg.AppContainerID)
		}
		if section.SectionIdentifier == "" {
			return Config{}, fmt.Errorf("sectionList[%d]: sectionIdentifier is required to derive a key", i)
		}
		if prev, exists := seen[section.SectionIdentifier]; exists {
			return Config{}, fmt.Errorf("sectionList[%d] and sectionList[%d] share sectionIdentifier %q", prev, i, section.SectionIdentifier)
		}
		seen[section.SectionIdentifier] = i

		section.Key = section.SectionIdentifier
		section.AppContainerID = ""
		out.Sections[i] = section
	}

	return out, nil
}
