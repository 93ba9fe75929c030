package model

// PipelineFile is the top-level declarative pipeline document.
type PipelineFile struct {
	APIVersion string    `yaml:"apiVersion" json:"apiVersion"`
	Kind       string    `yaml:"kind" json:"kind"`
	Metadata   Metadata  `yaml:"metadata" json:"metadata"`
	Steps      []StepDef `yaml:"steps" json:"steps"`
}

// Metadata holds standard object metadata.
type Metadata struct {
	Name        string `yaml:"name" json:"name"`
	Description string `yaml:"description" json:"description"`
}

// StepDef declares one pipeline step. Exactly one of the entity sections
// (estimator, processor, transformer, model, arguments) is expected,
// matching the declared type.
type StepDef struct {
	Name      string    `yaml:"name" json:"name"`
	Type      string    `yaml:"type" json:"type"` // training, processing, transform, model, custom
	DependsOn []string  `yaml:"dependsOn,omitempty" json:"dependsOn,omitempty"`
	Cache     *CacheDef `yaml:"cache,omitempty" json:"cache,omitempty"`

	// training
	Estimator      *EstimatorDef      `yaml:"estimator,omitempty" json:"estimator,omitempty"`
	TrainingInputs []TrainingInputDef `yaml:"trainingInputs,omitempty" json:"trainingInputs,omitempty"`

	// processing
	Processor    *ProcessorDef `yaml:"processor,omitempty" json:"processor,omitempty"`
	Inputs       []IODef       `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs      []IODef       `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Code         string        `yaml:"code,omitempty" json:"code,omitempty"`
	JobArguments []string      `yaml:"jobArguments,omitempty" json:"jobArguments,omitempty"`

	// transform
	Transformer    *TransformerDef    `yaml:"transformer,omitempty" json:"transformer,omitempty"`
	TransformInput *TransformInputDef `yaml:"transformInput,omitempty" json:"transformInput,omitempty"`

	// model
	Model        *ModelDef        `yaml:"model,omitempty" json:"model,omitempty"`
	ServingInput *ServingInputDef `yaml:"servingInput,omitempty" json:"servingInput,omitempty"`

	// custom
	Label     string         `yaml:"label,omitempty" json:"label,omitempty"`
	Arguments map[string]any `yaml:"arguments,omitempty" json:"arguments,omitempty"`
}

// CacheDef declares a step's cache policy.
type CacheDef struct {
	Enabled     bool   `yaml:"enabled" json:"enabled"`
	ExpireAfter string `yaml:"expireAfter,omitempty" json:"expireAfter,omitempty"`
}

// EstimatorDef configures a training entity.
type EstimatorDef struct {
	Image               string            `yaml:"image" json:"image"`
	Role                string            `yaml:"role" json:"role"`
	InstanceCount       int               `yaml:"instanceCount" json:"instanceCount"`
	InstanceType        string            `yaml:"instanceType" json:"instanceType"`
	OutputPath          string            `yaml:"outputPath" json:"outputPath"`
	VolumeSizeInGB      int               `yaml:"volumeSizeInGB,omitempty" json:"volumeSizeInGB,omitempty"`
	MaxRuntimeInSeconds int               `yaml:"maxRuntimeInSeconds,omitempty" json:"maxRuntimeInSeconds,omitempty"`
	InputMode           string            `yaml:"inputMode,omitempty" json:"inputMode,omitempty"`
	HyperParameters     map[string]string `yaml:"hyperParameters,omitempty" json:"hyperParameters,omitempty"`
	Profiler            *ProfilerDef      `yaml:"profiler,omitempty" json:"profiler,omitempty"`
}

// ProfilerDef configures training profiling.
type ProfilerDef struct {
	IntervalMillis int    `yaml:"intervalMillis" json:"intervalMillis"`
	OutputPath     string `yaml:"outputPath,omitempty" json:"outputPath,omitempty"`
}

// TrainingInputDef declares one training input channel.
type TrainingInputDef struct {
	S3URI           string `yaml:"s3Uri" json:"s3Uri"`
	Channel         string `yaml:"channel,omitempty" json:"channel,omitempty"`
	ContentType     string `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	CompressionType string `yaml:"compressionType,omitempty" json:"compressionType,omitempty"`
	Distribution    string `yaml:"distribution,omitempty" json:"distribution,omitempty"`
	S3DataType      string `yaml:"s3DataType,omitempty" json:"s3DataType,omitempty"`
}

// ProcessorDef configures a processing entity. Command turns it into a
// script processor when the step declares code.
type ProcessorDef struct {
	Image               string            `yaml:"image" json:"image"`
	Role                string            `yaml:"role" json:"role"`
	InstanceCount       int               `yaml:"instanceCount" json:"instanceCount"`
	InstanceType        string            `yaml:"instanceType" json:"instanceType"`
	VolumeSizeInGB      int               `yaml:"volumeSizeInGB,omitempty" json:"volumeSizeInGB,omitempty"`
	MaxRuntimeInSeconds int               `yaml:"maxRuntimeInSeconds,omitempty" json:"maxRuntimeInSeconds,omitempty"`
	Entrypoint          []string          `yaml:"entrypoint,omitempty" json:"entrypoint,omitempty"`
	Command             []string          `yaml:"command,omitempty" json:"command,omitempty"`
	Env                 map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// IODef declares one processing input or output. For inputs, source is the
// data location and destination the container path; for outputs the
// reverse.
type IODef struct {
	Source      string `yaml:"source" json:"source"`
	Destination string `yaml:"destination" json:"destination"`
	Name        string `yaml:"name,omitempty" json:"name,omitempty"`
}

// TransformerDef configures a batch transform entity.
type TransformerDef struct {
	ModelName     string `yaml:"modelName" json:"modelName"`
	InstanceCount int    `yaml:"instanceCount" json:"instanceCount"`
	InstanceType  string `yaml:"instanceType" json:"instanceType"`
	OutputPath    string `yaml:"outputPath,omitempty" json:"outputPath,omitempty"`
	Accept        string `yaml:"accept,omitempty" json:"accept,omitempty"`
	Strategy      string `yaml:"strategy,omitempty" json:"strategy,omitempty"`
}

// TransformInputDef declares the data a transform step runs over.
type TransformInputDef struct {
	Data        string `yaml:"data" json:"data"`
	DataType    string `yaml:"dataType,omitempty" json:"dataType,omitempty"`
	ContentType string `yaml:"contentType,omitempty" json:"contentType,omitempty"`
	SplitType   string `yaml:"splitType,omitempty" json:"splitType,omitempty"`
}

// ModelDef configures a create-model entity.
type ModelDef struct {
	Image     string            `yaml:"image" json:"image"`
	Role      string            `yaml:"role" json:"role"`
	ModelData string            `yaml:"modelData,omitempty" json:"modelData,omitempty"`
	Env       map[string]string `yaml:"env,omitempty" json:"env,omitempty"`
}

// ServingInputDef declares the serving configuration of a create-model
// step.
type ServingInputDef struct {
	InstanceType    string `yaml:"instanceType" json:"instanceType"`
	AcceleratorType string `yaml:"acceleratorType,omitempty" json:"acceleratorType,omitempty"`
}
