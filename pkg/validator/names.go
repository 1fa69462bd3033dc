package validator

import (
	"github.com/benedict2310/scrollyctl/pkg/names"
)

// ValidateNamesOverride accepts an absent override (nil, or a nil *names.ClassNames), for
// which the default naming convention is substituted, or a *names.ClassNames. Any other Styler, including types that
// embed *names.ClassNames, is rejected.
func ValidateNamesOverride(styler names.Styler) error {
	return validateNames("ValidateNamesOverride", "", styler)
}

func validateNames(fn, section string, styler names.Styler) error {
	if styler == nil {
		return nil
	}
	if _, ok := styler.(*names.ClassNames); ok {
		return nil
	}
	return newError(fn, "cssNames", section, "cssNames must be a "+names.Kind+" object")
}
