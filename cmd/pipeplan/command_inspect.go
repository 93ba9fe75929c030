package main

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/loader"
	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/spf13/cobra"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Inspect a step's symbolic properties",
	Long:  "Show the reference expression for a property path of a step, or list the step's available properties",
	RunE: func(cmd *cobra.Command, args []string) error {
		return inspectStep()
	},
}

func registerInspectCommand(root *cobra.Command) {
	root.AddCommand(inspectCmd)

	inspectCmd.Flags().StringVarP(&stepName, "step", "s", "", "Step name")
	inspectCmd.Flags().StringVar(&propertyPath, "path", "", "Property path relative to the step, e.g. OutputDataConfig.S3OutputPath")
	inspectCmd.MarkFlagRequired("step")
}

func inspectStep() error {
	def, err := loader.LoadPipeline(pipelineFile)
	if err != nil {
		return fmt.Errorf("failed to load pipeline: %w", err)
	}
	pipeline, err := loader.BuildPipeline(def)
	if err != nil {
		return fmt.Errorf("failed to build pipeline: %w", err)
	}

	step := pipeline.Step(stepName)
	if step == nil {
		return fmt.Errorf("step not found: %s", stepName)
	}

	props := step.Properties()
	if propertyPath != "" {
		node, err := properties.Walk(props, propertyPath)
		if err != nil {
			return err
		}
		fmt.Printf("{\"Get\": %q}\n", node.Expr().Get)
		return nil
	}

	fmt.Printf("Step: %s [%s]\n", step.Name(), step.Type())
	fmt.Printf("Root: %s\n", props.Path())
	members := props.Members()
	if len(members) == 0 {
		fmt.Println("No structured properties (opaque root)")
		return nil
	}
	fmt.Println("Properties:")
	for _, name := range members {
		fmt.Printf("  %s\n", name)
	}
	return nil
}
