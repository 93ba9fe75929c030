package main

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/loader"
	"github.com/modelplane/pipeplan/internal/planner"
	"github.com/modelplane/pipeplan/internal/render"
	"github.com/spf13/cobra"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render step request documents from a pipeline definition",
	RunE: func(cmd *cobra.Command, args []string) error {
		return renderPipeline()
	},
}

func registerRenderCommand(root *cobra.Command) {
	root.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&outputFile, "output", "o", "pipeline.json", "Output document file path (json/yaml by extension)")
	renderCmd.Flags().BoolVar(&debugMode, "debug", false, "Enable debug output")
}

func renderPipeline() error {
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

	fmt.Println("□ Rendering step documents...")
	renderer := render.NewRenderer()
	doc := renderer.PipelineRequest(pipeline)

	if debugMode {
		fmt.Println("\n" + renderer.DebugDump(pipeline))
	}

	if err := renderer.WriteDocument(doc, outputFile); err != nil {
		return fmt.Errorf("failed to write documents: %w", err)
	}

	fmt.Printf("✓ Rendered %d steps\n", len(pipeline.Steps))
	fmt.Printf("✓ Saved to: %s\n", outputFile)
	return nil
}
