package loader

import (
	"fmt"
	"os"

	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/model"
	"github.com/modelplane/pipeplan/internal/normalize"
	"github.com/modelplane/pipeplan/internal/workflow"
	"gopkg.in/yaml.v3"
)

// LoadPipeline loads, parses and normalizes a pipeline definition YAML
// file.
func LoadPipeline(path string) (*model.PipelineFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read pipeline file: %w", err)
	}

	var def model.PipelineFile
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("failed to parse pipeline YAML: %w", err)
	}

	if err := normalize.NormalizeDefinition(&def); err != nil {
		return nil, fmt.Errorf("failed to normalize pipeline definition: %w", err)
	}
	return &def, nil
}

// BuildPipeline constructs workflow steps from a normalized definition.
// Steps are built in declaration order so that property references always
// point backwards; implicit dependencies derived from references are merged
// into each step's DependsOn list.
func BuildPipeline(def *model.PipelineFile) (*workflow.Pipeline, error) {
	built := make(map[string]workflow.Step, len(def.Steps))
	r := newResolver(built)

	pipeline := &workflow.Pipeline{
		Name:        def.Metadata.Name,
		Description: def.Metadata.Description,
		Steps:       make([]workflow.Step, 0, len(def.Steps)),
	}

	for i := range def.Steps {
		stepDef := &def.Steps[i]
		r.reset()

		var (
			step workflow.Step
			err  error
		)
		switch stepDef.Type {
		case "training":
			step, err = buildTrainingStep(stepDef, r)
		case "processing":
			step, err = buildProcessingStep(stepDef, r)
		case "transform":
			step, err = buildTransformStep(stepDef, r)
		case "model":
			step, err = buildCreateModelStep(stepDef, r)
		case "custom":
			step, err = buildCustomStep(stepDef, r)
		default:
			err = fmt.Errorf("unknown step type %q", stepDef.Type)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to build step %s: %w", stepDef.Name, err)
		}

		built[stepDef.Name] = step
		pipeline.Steps = append(pipeline.Steps, step)
	}
	return pipeline, nil
}

// stepOptions assembles the shared step options from the definition plus
// the implicit dependencies the resolver collected.
func stepOptions(def *model.StepDef, r *resolver) []workflow.Option {
	var opts []workflow.Option
	if def.Cache != nil {
		opts = append(opts, workflow.WithCacheConfig(workflow.CacheConfig{
			Enabled:     def.Cache.Enabled,
			ExpireAfter: def.Cache.ExpireAfter,
		}))
	}
	if deps := mergeDeps(def.DependsOn, r.dependencies()); len(deps) > 0 {
		opts = append(opts, workflow.WithDependsOn(deps...))
	}
	return opts
}

func buildTrainingStep(def *model.StepDef, r *resolver) (workflow.Step, error) {
	if def.Estimator == nil {
		return nil, fmt.Errorf("training step requires an estimator")
	}

	outputPath, err := r.value(def.Estimator.OutputPath)
	if err != nil {
		return nil, err
	}
	var profiler *jobs.ProfilerConfig
	if def.Estimator.Profiler != nil {
		profilerOut, err := r.value(def.Estimator.Profiler.OutputPath)
		if err != nil {
			return nil, err
		}
		profiler = &jobs.ProfilerConfig{
			SystemMonitorIntervalMillis: def.Estimator.Profiler.IntervalMillis,
			S3OutputPath:                profilerOut,
		}
	}

	estimator, err := jobs.NewEstimator(jobs.Estimator{
		ImageURI:            def.Estimator.Image,
		Role:                def.Estimator.Role,
		InstanceCount:       def.Estimator.InstanceCount,
		InstanceType:        def.Estimator.InstanceType,
		OutputPath:          outputPath,
		VolumeSizeInGB:      def.Estimator.VolumeSizeInGB,
		MaxRuntimeInSeconds: def.Estimator.MaxRuntimeInSeconds,
		InputMode:           def.Estimator.InputMode,
		HyperParameters:     def.Estimator.HyperParameters,
		Profiler:            profiler,
	})
	if err != nil {
		return nil, err
	}

	inputs := make([]jobs.TrainingInput, 0, len(def.TrainingInputs))
	for _, in := range def.TrainingInputs {
		data, err := r.value(in.S3URI)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, jobs.TrainingInput{
			S3Data:          data,
			ChannelName:     in.Channel,
			ContentType:     in.ContentType,
			CompressionType: in.CompressionType,
			Distribution:    in.Distribution,
			S3DataType:      in.S3DataType,
		})
	}

	return workflow.NewTrainingStep(def.Name, estimator, inputs, stepOptions(def, r)...)
}

func buildProcessingStep(def *model.StepDef, r *resolver) (workflow.Step, error) {
	if def.Processor == nil {
		return nil, fmt.Errorf("processing step requires a processor")
	}

	base := jobs.Processor{
		ImageURI:            def.Processor.Image,
		Role:                def.Processor.Role,
		InstanceCount:       def.Processor.InstanceCount,
		InstanceType:        def.Processor.InstanceType,
		VolumeSizeInGB:      def.Processor.VolumeSizeInGB,
		MaxRuntimeInSeconds: def.Processor.MaxRuntimeInSeconds,
		Entrypoint:          def.Processor.Entrypoint,
		Env:                 def.Processor.Env,
	}

	inputs := make([]jobs.ProcessingInput, 0, len(def.Inputs))
	for _, in := range def.Inputs {
		source, err := r.value(in.Source)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, jobs.ProcessingInput{
			Source:      source,
			Destination: in.Destination,
			InputName:   in.Name,
		})
	}
	outputs := make([]jobs.ProcessingOutput, 0, len(def.Outputs))
	for _, out := range def.Outputs {
		destination, err := r.value(out.Destination)
		if err != nil {
			return nil, err
		}
		outputs = append(outputs, jobs.ProcessingOutput{
			Source:      out.Source,
			Destination: destination,
			OutputName:  out.Name,
		})
	}

	if def.Code != "" {
		processor, err := jobs.NewScriptProcessor(jobs.ScriptProcessor{
			Processor: base,
			Command:   def.Processor.Command,
		})
		if err != nil {
			return nil, err
		}
		return workflow.NewScriptProcessingStep(def.Name, processor, def.Code, inputs, outputs, def.JobArguments, stepOptions(def, r)...)
	}

	processor, err := jobs.NewProcessor(base)
	if err != nil {
		return nil, err
	}
	return workflow.NewProcessingStep(def.Name, processor, inputs, outputs, stepOptions(def, r)...)
}

func buildTransformStep(def *model.StepDef, r *resolver) (workflow.Step, error) {
	if def.Transformer == nil {
		return nil, fmt.Errorf("transform step requires a transformer")
	}
	if def.TransformInput == nil {
		return nil, fmt.Errorf("transform step requires a transform input")
	}

	modelName, err := r.value(def.Transformer.ModelName)
	if err != nil {
		return nil, err
	}
	outputPath, err := r.value(def.Transformer.OutputPath)
	if err != nil {
		return nil, err
	}
	transformer, err := jobs.NewTransformer(jobs.Transformer{
		ModelName:     modelName,
		InstanceCount: def.Transformer.InstanceCount,
		InstanceType:  def.Transformer.InstanceType,
		OutputPath:    outputPath,
		Accept:        def.Transformer.Accept,
		Strategy:      def.Transformer.Strategy,
	})
	if err != nil {
		return nil, err
	}

	data, err := r.value(def.TransformInput.Data)
	if err != nil {
		return nil, err
	}
	input := jobs.TransformInput{
		Data:        data,
		DataType:    def.TransformInput.DataType,
		ContentType: def.TransformInput.ContentType,
		SplitType:   def.TransformInput.SplitType,
	}

	return workflow.NewTransformStep(def.Name, transformer, input, stepOptions(def, r)...)
}

func buildCreateModelStep(def *model.StepDef, r *resolver) (workflow.Step, error) {
	if def.Model == nil {
		return nil, fmt.Errorf("model step requires a model")
	}

	modelData, err := r.value(def.Model.ModelData)
	if err != nil {
		return nil, err
	}
	entity, err := jobs.NewModel(jobs.Model{
		ImageURI:     def.Model.Image,
		Role:         def.Model.Role,
		ModelDataURL: modelData,
		Env:          def.Model.Env,
	})
	if err != nil {
		return nil, err
	}

	var input jobs.CreateModelInput
	if def.ServingInput != nil {
		input = jobs.CreateModelInput{
			InstanceType:    def.ServingInput.InstanceType,
			AcceleratorType: def.ServingInput.AcceleratorType,
		}
	}
	return workflow.NewCreateModelStep(def.Name, entity, input, stepOptions(def, r)...)
}

func buildCustomStep(def *model.StepDef, r *resolver) (workflow.Step, error) {
	args, err := r.anyValue(def.Arguments)
	if err != nil {
		return nil, err
	}
	return workflow.NewCustomStep(def.Name, workflow.StepType(def.Label), args.(map[string]any), stepOptions(def, r)...)
}
