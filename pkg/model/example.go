package model

import (
	"context"

	"github.com/benedict2310/scrollyctl/pkg/names"
)

// ExampleConfig returns a complete V2 configuration that touches every recognised field.
// It documents the accepted shapes and is valid as returned.
func ExampleConfig() Config {
	return Config{
		Version: V2,
		// id of the element that holds every section
		AppContainerID: "myAppId",
		// optional; the default naming convention is used when nil
		CSSNames: names.Default(),
		Sections: []Section{
			{
				Key:               "exampleSectionIdentifier",
				SectionIdentifier: "example",

				// Narration may be:
				//  1. a PathSource whose extension is csv, tsv, json, html, txt or xml,
				//  2. an InlineSource holding a non-empty list of narration blocks,
				//  3. an AsyncSource that resolves to such a list.
				Narration: PathSource{Path: "demo_app/exampleSection1/data/narrationExampleSection1.csv"},

				// Data takes the same shapes as narration and may be omitted.
				Data: PathSource{Path: "demo_app/exampleSection1/data/dataBySeries.csv"},

				// Optional; its result replaces the section data.
				ReshapeData: func(data any) (any, error) { return data, nil },

				// Called after data is resolved and reshaped. The returned graph is handed
				// back through ScrollEvent.Section and NarrationEvent.Section.
				BuildGraph: func(ctx context.Context, graphID string, section *Section) (any, error) {
					return nil, nil
				},

				OnScroll:            func(ScrollEvent) {},
				OnActivateNarration: func(NarrationEvent) {},
			},
		},
	}
}

// ExampleLegacyConfig returns a complete, valid V1 configuration.
func ExampleLegacyConfig() Config {
	return Config{
		Version:        V1,
		AppContainerID: "sampleConfigId",
		CSSNames:       names.Default(),
		Sections: []Section{
			{
				// must equal the root AppContainerID
				AppContainerID:    "sampleConfigId",
				SectionIdentifier: "mySectionIdentifier",
				CSSNames:          names.Default(),

				// V1 accepts inline or asynchronous narration only.
				Narration: InlineSource{Value: []map[string]any{{}}},
				// V1 requires non-empty data.
				Data: InlineSource{Value: map[string]any{"notEmpty": []any{}}},

				ReshapeData: func(data any) (any, error) { return data, nil },
				BuildGraph: func(ctx context.Context, graphID string, section *Section) (any, error) {
					return nil, nil
				},
				OnScroll:            func(ScrollEvent) {},
				OnActivateNarration: func(NarrationEvent) {},

				// show spacer sizes for debugging
				ShowSpacers: Bool(true),
				// when false the caller styles the graph via "graph_section_" + identifier
				UseDefaultGraphCSS: Bool(true),
			},
		},
	}
}
