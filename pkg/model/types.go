package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/benedict2310/scrollyctl/pkg/names"
)

// Version selects the configuration schema a story is written against.
type Version string

const (
	// V1 is the original schema: ordered section list, per-section container ids,
	// required data and display flags.
	V1 Version = "scrolly.dev/v1"
	// V2 is the current schema: sections keyed by identifier, container inherited
	// from the root, optional data, narration may be a file path.
	V2 Version = "scrolly.dev/v2"

	// DefaultVersion applies when a config or manifest names no version.
	DefaultVersion = V2
)

// ParseVersion accepts a full apiVersion or its short form ("v1", "v2").
func ParseVersion(v string) (Version, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "":
		return DefaultVersion, nil
	case "v1", string(V1):
		return V1, nil
	case "v2", string(V2):
		return V2, nil
	default:
		return "", fmt.Errorf("unsupported apiVersion %q (expected %s or %s)", v, V1, V2)
	}
}

// Config is the root configuration of a story.
type Config struct {
	Version        Version
	AppContainerID string
	CSSNames       names.Styler
	Sections       []Section
}

// Section is one narrative chapter with its own narration, data and callbacks.
type Section struct {
	// Key is the sectionList map key (V2 only).
	Key string
	// AppContainerID repeats the root container id (V1 only).
	AppContainerID    string
	SectionIdentifier string
	CSSNames          names.Styler

	Narration Source
	Data      Source

	ReshapeData         ReshapeFunc
	BuildGraph          BuildGraphFunc
	OnScroll            ScrollFunc
	OnActivateNarration NarrationFunc

	ShowSpacers        *bool
	UseDefaultGraphCSS *bool
}

// ReshapeFunc rewrites resolved data before the graph is built.
type ReshapeFunc func(data any) (any, error)

// BuildGraphFunc builds the section graph inside the element with graphID and returns it.
type BuildGraphFunc func(ctx context.Context, graphID string, section *Section) (any, error)

// ScrollFunc receives progress updates while a section scrolls.
type ScrollFunc func(ScrollEvent)

// NarrationFunc is called when a narration block becomes active.
type NarrationFunc func(NarrationEvent)

// ScrollEvent is delivered while the reader scrolls through a narration block.
type ScrollEvent struct {
	Index    int
	Progress float64
	Trigger  string
	GraphID  string
	Section  *Section
}

// NarrationEvent is delivered when a narration block becomes active.
type NarrationEvent struct {
	Index     int
	Progress  float64
	Trigger   string
	Direction string
	GraphID   string
	Section   *Section
}

// Bool returns a pointer to v, for the optional flag fields.
func Bool(v bool) *bool {
	return &v
}
