package loader

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var manifestSchemaJSON string

var (
	manifestSchemaOnce sync.Once
	manifestSchema     *jsonschema.Schema
	manifestSchemaErr  error
)

func compiledSchema() (*jsonschema.Schema, error) {
	manifestSchemaOnce.Do(func() {
		manifestSchema, manifestSchemaErr = jsonschema.CompileString("story.schema.json", manifestSchemaJSON)
	})
	return manifestSchema, manifestSchemaErr
}

// checkStructure validates field types of a manifest document before it is mapped onto
// the model. Required fields and value rules are left to the validator package.
func checkStructure(doc *yaml.Node) error {
	schema, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile manifest schema: %w", err)
	}

	var raw any
	if err := doc.Decode(&raw); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	// Round trip through JSON so the schema sees the value model it expects.
	payload, err := json.Marshal(stringKeys(raw))
	if err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	var decoded any
	if err := json.Unmarshal(payload, &decoded); err != nil {
		return fmt.Errorf("decode manifest: %w", err)
	}

	if err := schema.Validate(decoded); err != nil {
		return err
	}
	return nil
}

// stringKeys rewrites the map[any]any values yaml.v3 produces for mappings with
// non-string keys (years, booleans) so they can be encoded as JSON objects.
func stringKeys(v any) any {
	switch t := v.(type) {
	case map[any]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[fmt.Sprint(k)] = stringKeys(val)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = stringKeys(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = stringKeys(val)
		}
		return out
	default:
		return v
	}
}
