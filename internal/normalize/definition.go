package normalize

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/model"
)

// Kind vocabulary of the definition format.
const (
	APIVersion = "modelplane.io/v1"
	Kind       = "Pipeline"
)

var validTypes = map[string]bool{
	"training":   true,
	"processing": true,
	"transform":  true,
	"model":      true,
	"custom":     true,
}

// NormalizeDefinition transforms a raw pipeline definition into canonical
// form: defaults applied, structural requirements enforced. Entity-level
// validation stays with the entities themselves.
func NormalizeDefinition(def *model.PipelineFile) error {
	if def == nil {
		return fmt.Errorf("pipeline definition cannot be nil")
	}
	if def.APIVersion == "" {
		def.APIVersion = APIVersion
	}
	if def.Kind == "" {
		def.Kind = Kind
	}
	if def.Metadata.Name == "" {
		return fmt.Errorf("pipeline must have a metadata name")
	}
	if len(def.Steps) == 0 {
		return fmt.Errorf("pipeline %s declares no steps", def.Metadata.Name)
	}

	for i := range def.Steps {
		step := &def.Steps[i]
		if step.Name == "" {
			return fmt.Errorf("step %d must have a name", i)
		}
		if step.Type == "" {
			return fmt.Errorf("step %s must have a type", step.Name)
		}
		if !validTypes[step.Type] {
			return fmt.Errorf("step %s has unknown type %q", step.Name, step.Type)
		}
		if step.DependsOn == nil {
			step.DependsOn = []string{}
		}
		if step.Type == "custom" {
			if step.Label == "" {
				return fmt.Errorf("custom step %s must declare a label", step.Name)
			}
			if step.Arguments == nil {
				step.Arguments = map[string]any{}
			}
		}
	}
	return nil
}
