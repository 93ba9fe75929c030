package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/modelplane/pipeplan/internal/workflow"
)

// PipelineViewer provides human-readable visualization of a step DAG.
type PipelineViewer struct {
	pipeline *workflow.Pipeline
}

// NewPipelineViewer creates a new pipeline viewer.
func NewPipelineViewer(pipeline *workflow.Pipeline) *PipelineViewer {
	return &PipelineViewer{pipeline: pipeline}
}

// ViewDAG returns a tree view of the DAG, roots first.
func (pv *PipelineViewer) ViewDAG() string {
	if len(pv.pipeline.Steps) == 0 {
		return "No steps in pipeline"
	}

	// dependents: step name -> steps that declare it upstream
	dependents := make(map[string][]string)
	var roots []string
	for _, s := range pv.pipeline.Steps {
		if len(s.DependsOn()) == 0 {
			roots = append(roots, s.Name())
		}
		for _, dep := range s.DependsOn() {
			dependents[dep] = append(dependents[dep], s.Name())
		}
	}
	sort.Strings(roots)

	var sb strings.Builder
	visited := make(map[string]bool)
	var walk func(name string, depth int)
	walk = func(name string, depth int) {
		indent := strings.Repeat("  ", depth)
		step := pv.pipeline.Step(name)
		label := name
		if step != nil {
			label = fmt.Sprintf("%s [%s]", name, step.Type())
		}
		if visited[name] {
			sb.WriteString(fmt.Sprintf("%s%s (see above)\n", indent, label))
			return
		}
		visited[name] = true
		sb.WriteString(fmt.Sprintf("%s%s\n", indent, label))

		children := append([]string{}, dependents[name]...)
		sort.Strings(children)
		for _, child := range children {
			walk(child, depth+1)
		}
	}

	for _, root := range roots {
		walk(root, 0)
	}
	return sb.String()
}

// ViewDependencies returns a flat list of each step and its upstream
// dependencies.
func (pv *PipelineViewer) ViewDependencies() string {
	if len(pv.pipeline.Steps) == 0 {
		return "No steps in pipeline"
	}

	var sb strings.Builder
	for _, s := range pv.pipeline.Steps {
		if deps := s.DependsOn(); len(deps) > 0 {
			sb.WriteString(fmt.Sprintf("%s <- %s\n", s.Name(), strings.Join(deps, ", ")))
		} else {
			sb.WriteString(fmt.Sprintf("%s (no dependencies)\n", s.Name()))
		}
	}
	return sb.String()
}
