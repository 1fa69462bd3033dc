package loader

import (
	"github.com/benedict2310/scrollyctl/pkg/names"
	"gopkg.in/yaml.v3"
)

// manifest mirrors the YAML document. Sources stay as nodes because their shape decides
// which model.Source they become, and sectionList stays a node to keep its order.
type manifest struct {
	APIVersion     string    `yaml:"apiVersion,omitempty"`
	AppContainerID string    `yaml:"appContainerId,omitempty"`
	CSSNames       *namesDoc `yaml:"cssNames,omitempty"`
	SectionList    yaml.Node `yaml:"sectionList,omitempty"`
}

type namesDoc struct {
	Kind          string `yaml:"kind"`
	names.Options `yaml:",inline"`
}

type sectionDoc struct {
	AppContainerID              string    `yaml:"appContainerId,omitempty"`
	SectionIdentifier           string    `yaml:"sectionIdentifier,omitempty"`
	CSSNames                    *namesDoc `yaml:"cssNames,omitempty"`
	Narration                   yaml.Node `yaml:"narration,omitempty"`
	Data                        yaml.Node `yaml:"data,omitempty"`
	ReshapeDataFunction         string    `yaml:"reshapeDataFunction,omitempty"`
	BuildGraphFunction          string    `yaml:"buildGraphFunction,omitempty"`
	OnScrollFunction            string    `yaml:"onScrollFunction,omitempty"`
	OnActivateNarrationFunction string    `yaml:"onActivateNarrationFunction,omitempty"`
	ShowSpacers                 *bool     `yaml:"showSpacers,omitempty"`
	UseDefaultGraphCSS          *bool     `yaml:"useDefaultGraphCSS,omitempty"`
}

// keyedSection is one sectionList entry; key is empty for sequence entries.
type keyedSection struct {
	key string
	doc sectionDoc
}

func isAbsent(node *yaml.Node) bool {
	return node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.ShortTag() == "!!null")
}
