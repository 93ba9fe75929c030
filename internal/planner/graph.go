package planner

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/workflow"
)

// StepGraph represents the DAG of pipeline steps with cycle detection and
// topological sorting. The engine validates the graph again at submission;
// this is an optional pre-flight check for definition-time feedback.
type StepGraph struct {
	steps map[string]workflow.Step
	order []string // insertion order, for deterministic traversal
}

// NewStepGraph creates a step graph, rejecting duplicate step names.
func NewStepGraph(steps []workflow.Step) (*StepGraph, error) {
	g := &StepGraph{
		steps: make(map[string]workflow.Step, len(steps)),
		order: make([]string, 0, len(steps)),
	}
	for _, s := range steps {
		if _, exists := g.steps[s.Name()]; exists {
			return nil, fmt.Errorf("duplicate step name: %s", s.Name())
		}
		g.steps[s.Name()] = s
		g.order = append(g.order, s.Name())
	}
	return g, nil
}

// DetectCycles performs cycle detection on the dependency graph using DFS.
func (g *StepGraph) DetectCycles() error {
	visited := make(map[string]bool)
	recStack := make(map[string]bool)

	for _, name := range g.order {
		if !visited[name] {
			if g.hasCycleDFS(name, visited, recStack) {
				return fmt.Errorf("cycle detected in step dependencies")
			}
		}
	}
	return nil
}

// hasCycleDFS performs DFS cycle detection from a given node. Dependencies
// on undeclared steps are skipped; the engine reports those.
func (g *StepGraph) hasCycleDFS(node string, visited, recStack map[string]bool) bool {
	visited[node] = true
	recStack[node] = true

	step, exists := g.steps[node]
	if !exists {
		return false
	}

	for _, dep := range step.DependsOn() {
		if _, declared := g.steps[dep]; !declared {
			continue
		}
		if !visited[dep] {
			if g.hasCycleDFS(dep, visited, recStack) {
				return true
			}
		} else if recStack[dep] {
			return true
		}
	}

	recStack[node] = false
	return false
}

// TopologicalSort returns step names in execution order using Kahn's
// algorithm. Order is deterministic for a given pipeline.
func (g *StepGraph) TopologicalSort() ([]string, error) {
	dependents := make(map[string][]string)
	inDegree := make(map[string]int)

	for _, name := range g.order {
		inDegree[name] = 0
	}
	for _, name := range g.order {
		for _, dep := range g.steps[name].DependsOn() {
			if _, declared := g.steps[dep]; !declared {
				continue
			}
			dependents[dep] = append(dependents[dep], name)
			inDegree[name]++
		}
	}

	queue := make([]string, 0)
	for _, name := range g.order {
		if inDegree[name] == 0 {
			queue = append(queue, name)
		}
	}

	sorted := make([]string, 0, len(g.order))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, current)

		for _, dependent := range dependents[current] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	if len(sorted) != len(g.order) {
		return nil, fmt.Errorf("failed to topologically sort: possible cycle detected")
	}
	return sorted, nil
}
