package schema

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"
)

//go:embed step.schema.yaml
var stepSchemaYAML []byte

// Validator checks rendered step documents against the engine's document
// schema.
type Validator struct {
	stepSchema *jsonschema.Schema
}

// NewValidator compiles the embedded step document schema.
func NewValidator() (*Validator, error) {
	stepSchema, err := compileSchema("step.schema.json", stepSchemaYAML)
	if err != nil {
		return nil, fmt.Errorf("failed to compile step schema: %w", err)
	}
	return &Validator{stepSchema: stepSchema}, nil
}

// ValidateStep validates one rendered step document.
func (v *Validator) ValidateStep(doc map[string]any) error {
	normalized, err := jsonRoundTrip(doc)
	if err != nil {
		return err
	}
	return v.stepSchema.Validate(normalized)
}

// compileSchema compiles a schema resource (YAML or JSON).
func compileSchema(name string, data []byte) (*jsonschema.Schema, error) {
	// Parse YAML to interface{} (supports both YAML and JSON)
	var schemaData any
	if err := yaml.Unmarshal(data, &schemaData); err != nil {
		return nil, fmt.Errorf("failed to parse schema resource: %w", err)
	}

	// Convert to JSON for the schema compiler
	jsonData, err := json.Marshal(schemaData)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema: %w", err)
	}
	return jsonschema.CompileString(name, string(jsonData))
}

// jsonRoundTrip converts a document into plain JSON-decoded values, which
// is what the schema library validates against.
func jsonRoundTrip(doc any) (any, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("failed to unmarshal document: %w", err)
	}
	return out, nil
}
