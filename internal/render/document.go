package render

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelplane/pipeplan/internal/workflow"
	"gopkg.in/yaml.v3"
)

// Renderer materializes steps into engine request documents.
type Renderer struct{}

// NewRenderer creates a new renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// StepRequest assembles the request document for one step. CacheConfig and
// DependsOn keys are omitted entirely when not configured, never emitted as
// null.
func (r *Renderer) StepRequest(s workflow.Step) map[string]any {
	doc := map[string]any{
		"Name":      s.Name(),
		"Type":      string(s.Type()),
		"Arguments": s.Arguments(),
	}
	if cache := s.CacheConfig(); cache != nil {
		doc["CacheConfig"] = cache.Request()
	}
	if deps := s.DependsOn(); len(deps) > 0 {
		doc["DependsOn"] = deps
	}
	return doc
}

// PipelineRequest assembles the document set for a whole pipeline.
func (r *Renderer) PipelineRequest(p *workflow.Pipeline) map[string]any {
	steps := make([]any, 0, len(p.Steps))
	for _, s := range p.Steps {
		steps = append(steps, r.StepRequest(s))
	}
	doc := map[string]any{
		"Name":  p.Name,
		"Steps": steps,
	}
	if p.Description != "" {
		doc["Description"] = p.Description
	}
	return doc
}

// RenderJSON renders a document as indented JSON.
func (r *Renderer) RenderJSON(doc any) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// RenderYAML renders a document as YAML.
func (r *Renderer) RenderYAML(doc any) ([]byte, error) {
	return yaml.Marshal(doc)
}

// WriteDocument writes a document to file, choosing JSON or YAML from the
// extension.
func (r *Renderer) WriteDocument(doc any, path string) error {
	dir := filepath.Dir(path)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	var data []byte
	var err error
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		data, err = r.RenderYAML(doc)
	default:
		data, err = r.RenderJSON(doc)
	}
	if err != nil {
		return fmt.Errorf("failed to render document: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write document to %s: %w", path, err)
	}
	return nil
}

// DebugDump outputs debug information about a pipeline.
func (r *Renderer) DebugDump(p *workflow.Pipeline) string {
	output := fmt.Sprintf("Pipeline: %s\n", p.Name)
	output += fmt.Sprintf("Steps: %d\n\n", len(p.Steps))

	for _, s := range p.Steps {
		output += fmt.Sprintf("Step: %s\n", s.Name())
		output += fmt.Sprintf("  Type: %s\n", s.Type())
		output += fmt.Sprintf("  Arguments: %d keys\n", len(s.Arguments()))
		if cache := s.CacheConfig(); cache != nil {
			output += fmt.Sprintf("  Cache: enabled=%v expireAfter=%s\n", cache.Enabled, cache.ExpireAfter)
		}
		output += fmt.Sprintf("  DependsOn: %v\n", s.DependsOn())
		output += "\n"
	}
	return output
}
