package validator

import (
	"regexp"
	"strings"
)

var extensionPattern = regexp.MustCompile(`\.(\w{3,4})$`)

// AcceptedExtensions lists the file types a narration or data path may name.
var AcceptedExtensions = []string{"csv", "tsv", "json", "html", "txt", "xml"}

// ClassifyExtension returns the trailing 3-4 character extension of source without its
// dot and with its case preserved. Non-strings, strings without such an extension and
// ambiguous matches yield "".
func ClassifyExtension(source any) string {
	s, ok := source.(string)
	if !ok {
		return ""
	}
	matches := extensionPattern.FindAllString(s, -1)
	if len(matches) != 1 {
		return ""
	}
	return strings.TrimPrefix(matches[0], ".")
}

// IsAcceptedSourcePath reports whether source is a path whose extension is one of
// AcceptedExtensions. The comparison is case-sensitive.
func IsAcceptedSourcePath(source any) bool {
	ext := ClassifyExtension(source)
	if ext == "" {
		return false
	}
	for _, accepted := range AcceptedExtensions {
		if ext == accepted {
			return true
		}
	}
	return false
}
