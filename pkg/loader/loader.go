package loader

import (
	"embed"
	"fmt"
	"log/slog"
	"os"

	"github.com/benedict2310/scrollyctl/pkg/model"
	"github.com/benedict2310/scrollyctl/pkg/names"
	"github.com/benedict2310/scrollyctl/pkg/validator"
	"gopkg.in/yaml.v3"
)

const loadFunc = "Load"

//go:embed examples/*.yaml
var examples embed.FS

// Options controls how a manifest is mapped onto the model.
type Options struct {
	// Registry binds callback and pending-source names. When nil every named callback is
	// bound to a placeholder, which is enough to validate a manifest.
	Registry *Registry
	Logger   *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// LoadFile reads, decodes and validates the manifest at path.
func LoadFile(path string, opts Options) (*model.Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest %s: %w", path, err)
	}

	cfg, err := Load(content, opts)
	if err != nil {
		return nil, fmt.Errorf("load manifest %s: %w", path, err)
	}
	return cfg, nil
}

// Load decodes a manifest and validates the resulting configuration.
func Load(data []byte, opts Options) (*model.Config, error) {
	cfg, err := Decode(data, opts)
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateRootConfig(*cfg); err != nil {
		return nil, err
	}

	opts.logger().Debug("manifest validated", "apiVersion", cfg.Version, "sections", len(cfg.Sections))
	return cfg, nil
}

// Decode maps a manifest onto the model without applying the validation rules. Only
// errors that prevent building a model.Config are reported.
func Decode(data []byte, opts Options) (*model.Config, error) {
	p, err := parse(data)
	if err != nil {
		return nil, err
	}
	cfg, err := p.toConfig(binder{registry: opts.Registry})
	if err != nil {
		return nil, err
	}

	opts.logger().Debug("manifest decoded", "apiVersion", cfg.Version, "sections", len(cfg.Sections))
	return cfg, nil
}

// Upgrade validates a V1 manifest and rewrites it against V2: sectionList becomes a
// mapping keyed by section identifier and per-section container ids are dropped.
func Upgrade(data []byte, opts Options) ([]byte, error) {
	p, err := parse(data)
	if err != nil {
		return nil, err
	}
	if p.version != model.V1 {
		return nil, invalid("apiVersion", "", fmt.Sprintf("only %s manifests can be upgraded, got %s", model.V1, p.version))
	}

	cfg, err := p.toConfig(binder{registry: opts.Registry})
	if err != nil {
		return nil, err
	}
	if err := validator.ValidateRootConfig(*cfg); err != nil {
		return nil, err
	}
	if _, err := model.UpgradeLegacy(*cfg); err != nil {
		return nil, invalid("sectionList", "", err.Error())
	}

	out := p.manifest
	out.APIVersion = string(model.V2)
	out.SectionList = yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range p.sections {
		doc := entry.doc
		doc.AppContainerID = ""

		var value yaml.Node
		if err := value.Encode(&doc); err != nil {
			return nil, fmt.Errorf("encode section %q: %w", doc.SectionIdentifier, err)
		}
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: doc.SectionIdentifier}
		out.SectionList.Content = append(out.SectionList.Content, key, &value)
	}

	encoded, err := yaml.Marshal(&out)
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}

	opts.logger().Debug("manifest upgraded", "from", model.V1, "to", model.V2, "sections", len(p.sections))
	return encoded, nil
}

// ExampleManifest returns the documented example manifest for version.
func ExampleManifest(version model.Version) ([]byte, error) {
	switch version {
	case model.V1:
		return examples.ReadFile("examples/story.v1.yaml")
	case model.V2, "":
		return examples.ReadFile("examples/story.v2.yaml")
	default:
		return nil, fmt.Errorf("no example manifest for apiVersion %q", version)
	}
}

type parsed struct {
	manifest manifest
	version  model.Version
	sections []keyedSection
}

func parse(data []byte) (*parsed, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, invalid("", "", "manifest is empty")
	}
	if err := checkStructure(&doc); err != nil {
		return nil, invalid("", "", err.Error())
	}

	var m manifest
	if err := doc.Decode(&m); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	version, err := model.ParseVersion(m.APIVersion)
	if err != nil {
		return nil, invalid("apiVersion", "", err.Error())
	}

	sections, err := sectionEntries(&m.SectionList, version)
	if err != nil {
		return nil, err
	}

	return &parsed{manifest: m, version: version, sections: sections}, nil
}

func sectionEntries(node *yaml.Node, version model.Version) ([]keyedSection, error) {
	if isAbsent(node) {
		return nil, nil
	}

	switch node.Kind {
	case yaml.MappingNode:
		if version == model.V1 {
			return nil, invalid("sectionList", "", fmt.Sprintf("sectionList must be a list in %s manifests", model.V1))
		}
		entries := make([]keyedSection, 0, len(node.Content)/2)
		seen := make(map[string]struct{}, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			key := node.Content[i].Value
			if key == "" {
				return nil, invalid("sectionList", "", "section key must not be empty")
			}
			if _, exists := seen[key]; exists {
				return nil, invalid("sectionList", "", fmt.Sprintf("duplicate section key %q", key))
			}
			seen[key] = struct{}{}

			var doc sectionDoc
			if err := node.Content[i+1].Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode section %q: %w", key, err)
			}
			entries = append(entries, keyedSection{key: key, doc: doc})
		}
		return entries, nil
	case yaml.SequenceNode:
		if version == model.V2 {
			return nil, invalid("sectionList", "", fmt.Sprintf("sectionList must be a mapping keyed by section in %s manifests", model.V2))
		}
		entries := make([]keyedSection, 0, len(node.Content))
		for i, item := range node.Content {
			var doc sectionDoc
			if err := item.Decode(&doc); err != nil {
				return nil, fmt.Errorf("decode sectionList[%d]: %w", i, err)
			}
			entries = append(entries, keyedSection{doc: doc})
		}
		return entries, nil
	default:
		return nil, invalid("sectionList", "", "sectionList must be a list or a mapping")
	}
}

func (p *parsed) toConfig(b binder) (*model.Config, error) {
	styler, err := buildNames(p.manifest.CSSNames, "")
	if err != nil {
		return nil, err
	}

	cfg := &model.Config{
		Version:        p.version,
		AppContainerID: p.manifest.AppContainerID,
		CSSNames:       styler,
		Sections:       make([]model.Section, 0, len(p.sections)),
	}
	for _, entry := range p.sections {
		section, err := toSection(entry, b)
		if err != nil {
			return nil, err
		}
		cfg.Sections = append(cfg.Sections, section)
	}
	return cfg, nil
}

func toSection(entry keyedSection, b binder) (model.Section, error) {
	doc := entry.doc
	id := doc.SectionIdentifier
	section := model.Section{
		Key:                entry.key,
		AppContainerID:     doc.AppContainerID,
		SectionIdentifier:  id,
		ShowSpacers:        doc.ShowSpacers,
		UseDefaultGraphCSS: doc.UseDefaultGraphCSS,
	}

	var err error
	if section.CSSNames, err = buildNames(doc.CSSNames, id); err != nil {
		return section, err
	}
	if section.Narration, err = sourceFrom(&doc.Narration, b, "narration", id); err != nil {
		return section, err
	}
	if section.Data, err = sourceFrom(&doc.Data, b, "data", id); err != nil {
		return section, err
	}

	if section.ReshapeData, err = b.reshape(doc.ReshapeDataFunction); err != nil {
		return section, invalid("reshapeDataFunction", id, err.Error())
	}
	if section.BuildGraph, err = b.buildGraph(doc.BuildGraphFunction); err != nil {
		return section, invalid("buildGraphFunction", id, err.Error())
	}
	if section.OnScroll, err = b.scroll(doc.OnScrollFunction); err != nil {
		return section, invalid("onScrollFunction", id, err.Error())
	}
	if section.OnActivateNarration, err = b.narration(doc.OnActivateNarrationFunction); err != nil {
		return section, invalid("onActivateNarrationFunction", id, err.Error())
	}

	return section, nil
}

// sourceFrom maps a narration or data node: strings are paths, {pending: name} is an
// asynchronous source and anything else is inline data.
func sourceFrom(node *yaml.Node, b binder, field, section string) (model.Source, error) {
	if isAbsent(node) {
		return nil, nil
	}

	switch node.Kind {
	case yaml.ScalarNode:
		if node.ShortTag() == "!!str" {
			return model.PathSource{Path: node.Value}, nil
		}
	case yaml.MappingNode:
		if len(node.Content) == 2 && node.Content[0].Value == "pending" {
			name := node.Content[1].Value
			resolve, err := b.source(name)
			if err != nil {
				return nil, invalid(field, section, err.Error())
			}
			return model.AsyncSource{Name: name, Resolve: resolve}, nil
		}
	}

	var value any
	if err := node.Decode(&value); err != nil {
		return nil, fmt.Errorf("decode %s of section %q: %w", field, section, err)
	}
	return model.InlineSource{Value: value}, nil
}

func buildNames(doc *namesDoc, section string) (names.Styler, error) {
	if doc == nil {
		return nil, nil
	}
	if doc.Kind != names.Kind {
		return nil, invalid("cssNames", section, fmt.Sprintf("cssNames must be a %s object, got kind %q", names.Kind, doc.Kind))
	}
	n, err := names.New(doc.Options)
	if err != nil {
		return nil, invalid("cssNames", section, err.Error())
	}
	return n, nil
}

func invalid(field, section, message string) error {
	return &validator.ConfigError{
		Func:    loadFunc,
		Field:   field,
		Section: section,
		Message: message,
	}
}
