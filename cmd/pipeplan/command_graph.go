package main

import (
	"fmt"
	"strings"

	"github.com/modelplane/pipeplan/internal/loader"
	"github.com/modelplane/pipeplan/internal/planner"
	"github.com/modelplane/pipeplan/internal/render"
	"github.com/spf13/cobra"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Show the step dependency graph and execution order",
	RunE: func(cmd *cobra.Command, args []string) error {
		return showGraph()
	},
}

func registerGraphCommand(root *cobra.Command) {
	root.AddCommand(graphCmd)
}

func showGraph() error {
	def, err := loader.LoadPipeline(pipelineFile)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}
	pipeline, err := loader.BuildPipeline(def)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	graph, err := planner.NewStepGraph(pipeline.Steps)
	if err != nil {
		return fmt.Errorf("invalid step graph: %w", err)
	}
	sorted, err := graph.TopologicalSort()
	if err != nil {
		return fmt.Errorf("topological sort failed: %w", err)
	}

	viewer := render.NewPipelineViewer(pipeline)
	fmt.Println("DAG:")
	fmt.Println(viewer.ViewDAG())
	fmt.Println("Dependencies:")
	fmt.Println(viewer.ViewDependencies())
	fmt.Printf("Execution order: %s\n", strings.Join(sorted, " -> "))
	return nil
}
