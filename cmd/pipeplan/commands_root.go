package main

import "github.com/spf13/cobra"

var (
	pipelineFile string
	outputFile   string
	debugMode    bool
	stepName     string
	propertyPath string
)

var rootCmd = &cobra.Command{
	Use:   "pipeplan",
	Short: "Compile a pipeline definition into step request documents",
	Long:  "pipeplan compiles a declarative pipeline definition into the inert step request documents an orchestration engine executes",
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&pipelineFile, "pipeline", "p", "pipeline.yaml", "Pipeline definition file path")

	registerRenderCommand(rootCmd)
	registerValidateCommand(rootCmd)
	registerGraphCommand(rootCmd)
	registerInspectCommand(rootCmd)
}
