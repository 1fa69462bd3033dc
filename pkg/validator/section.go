package validator

import (
	"fmt"
	"strings"

	"github.com/benedict2310/scrollyctl/pkg/model"
)

const sectionFunc = "ValidateSection"

// ValidateSection checks one section against the rules of version and returns the first
// violation as a *ConfigError. An empty version is treated as model.DefaultVersion.
func ValidateSection(section model.Section, version model.Version) error {
	version, err := resolveVersion(sectionFunc, version)
	if err != nil {
		return err
	}
	legacy := version == model.V1
	id := section.SectionIdentifier

	if legacy && section.AppContainerID == "" {
		return &ConfigError{
			Func:    sectionFunc,
			Field:   "appContainerId",
			Section: id,
			Message: fmt.Sprintf("missing appContainerId for section: %s", id),
		}
	}

	if id == "" {
		return newError(sectionFunc, "sectionIdentifier", "", "section has no sectionIdentifier; sectionList is effectively empty")
	}

	if err := validateNames(sectionFunc, id, section.CSSNames); err != nil {
		return err
	}

	if !acceptSource(section.Narration, !legacy) {
		return newError(sectionFunc, "narration", id, "narration must be "+sourceShapes(!legacy))
	}

	if legacy {
		if !acceptSource(section.Data, false) {
			return newError(sectionFunc, "data", id, "data must be "+sourceShapes(false))
		}
	} else if model.KindOf(section.Data) != model.SourceNone && !acceptSource(section.Data, true) {
		return newError(sectionFunc, "data", id, "data must be omitted or be "+sourceShapes(true))
	}

	// ReshapeData is optional and typed, so there is nothing to check.

	if section.BuildGraph == nil {
		return newError(sectionFunc, "buildGraphFunction", id, "buildGraphFunction must be a function")
	}
	if section.OnScroll == nil {
		return newError(sectionFunc, "onScrollFunction", id, "onScrollFunction must be a function")
	}
	if section.OnActivateNarration == nil {
		return newError(sectionFunc, "onActivateNarrationFunction", id, "onActivateNarrationFunction must be a function")
	}

	if legacy {
		if section.ShowSpacers == nil {
			return newError(sectionFunc, "showSpacers", id, "showSpacers flag is required")
		}
		if section.UseDefaultGraphCSS == nil {
			return newError(sectionFunc, "useDefaultGraphCSS", id, "useDefaultGraphCSS flag is required")
		}
	}

	return nil
}

func sourceShapes(allowPath bool) string {
	if !allowPath {
		return "a non-empty array or object, or a pending value"
	}
	return "a non-empty array or object, a pending value, or a file path ending in ." + strings.Join(AcceptedExtensions, "|.")
}

func resolveVersion(fn string, version model.Version) (model.Version, error) {
	switch version {
	case "":
		return model.DefaultVersion, nil
	case model.V1, model.V2:
		return version, nil
	default:
		return "", newError(fn, "apiVersion", "", fmt.Sprintf("unsupported apiVersion %q", version))
	}
}
