package main

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/loader"
	"github.com/modelplane/pipeplan/internal/planner"
	"github.com/modelplane/pipeplan/internal/render"
	"github.com/modelplane/pipeplan/internal/schema"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate a pipeline definition and its rendered documents",
	RunE: func(cmd *cobra.Command, args []string) error {
		return validatePipeline()
	},
}

func registerValidateCommand(root *cobra.Command) {
	root.AddCommand(validateCmd)
}

func validatePipeline() error {
	fmt.Println("□ Loading pipeline definition...")
	def, err := loader.LoadPipeline(pipelineFile)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}

	fmt.Println("□ Building steps...")
	pipeline, err := loader.BuildPipeline(def)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	fmt.Println("□ Checking dependency graph...")
	graph, err := planner.NewStepGraph(pipeline.Steps)
	if err != nil {
		return fmt.Errorf("invalid step graph: %w", err)
	}
	if err := graph.DetectCycles(); err != nil {
		return fmt.Errorf("cycle detection failed: %w", err)
	}
	if _, err := graph.TopologicalSort(); err != nil {
		return fmt.Errorf("topological sort failed: %w", err)
	}

	fmt.Println("□ Validating step documents against schema...")
	validator, err := schema.NewValidator()
	if err != nil {
		return fmt.Errorf("failed to load document schema: %w", err)
	}
	renderer := render.NewRenderer()
	for _, step := range pipeline.Steps {
		if err := validator.ValidateStep(renderer.StepRequest(step)); err != nil {
			return fmt.Errorf("step %s failed document validation: %w", step.Name(), err)
		}
	}

	fmt.Printf("✓ %d step documents valid\n", len(pipeline.Steps))
	return nil
}
