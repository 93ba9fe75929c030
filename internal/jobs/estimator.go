package jobs

import "fmt"

// Estimator configures a remote training job.
type Estimator struct {
	ImageURI            string
	Role                string
	InstanceCount       int
	InstanceType        string
	OutputPath          any // S3 URI or Reference
	VolumeSizeInGB      int
	MaxRuntimeInSeconds int
	InputMode           string
	HyperParameters     map[string]string
	Profiler            *ProfilerConfig
}

// ProfilerConfig enables system profiling during training.
type ProfilerConfig struct {
	SystemMonitorIntervalMillis int
	S3OutputPath                any // defaults to the estimator's output path
}

// NewEstimator validates the configuration and applies service defaults.
func NewEstimator(e Estimator) (*Estimator, error) {
	if e.ImageURI == "" {
		return nil, fmt.Errorf("estimator requires an image URI")
	}
	if e.Role == "" {
		return nil, fmt.Errorf("estimator requires an execution role")
	}
	if e.InstanceCount <= 0 {
		return nil, fmt.Errorf("estimator requires a positive instance count")
	}
	if e.InstanceType == "" {
		return nil, fmt.Errorf("estimator requires an instance type")
	}
	if e.OutputPath == nil || e.OutputPath == "" {
		return nil, fmt.Errorf("estimator requires an output path")
	}
	if e.VolumeSizeInGB == 0 {
		e.VolumeSizeInGB = 30
	}
	if e.MaxRuntimeInSeconds == 0 {
		e.MaxRuntimeInSeconds = 86400
	}
	if e.InputMode == "" {
		e.InputMode = "File"
	}
	return &e, nil
}

// TrainRequest produces the native request fragment of the training launch
// action, minus the job name the engine assigns at execution time.
func (e *Estimator) TrainRequest(inputs ...TrainingInput) map[string]any {
	req := map[string]any{
		"AlgorithmSpecification": map[string]any{
			"TrainingImage":     e.ImageURI,
			"TrainingInputMode": e.InputMode,
		},
		"OutputDataConfig": map[string]any{
			"S3OutputPath": resolve(e.OutputPath),
		},
		"ResourceConfig": map[string]any{
			"InstanceCount":  e.InstanceCount,
			"InstanceType":   e.InstanceType,
			"VolumeSizeInGB": e.VolumeSizeInGB,
		},
		"RoleArn": e.Role,
		"StoppingCondition": map[string]any{
			"MaxRuntimeInSeconds": e.MaxRuntimeInSeconds,
		},
	}

	if len(inputs) > 0 {
		channels := make([]any, 0, len(inputs))
		for _, in := range inputs {
			channels = append(channels, in.channel())
		}
		req["InputDataConfig"] = channels
	}
	if len(e.HyperParameters) > 0 {
		req["HyperParameters"] = e.HyperParameters
	}
	if e.Profiler != nil {
		profiler := map[string]any{
			"ProfilingIntervalInMilliseconds": e.Profiler.SystemMonitorIntervalMillis,
		}
		out := e.Profiler.S3OutputPath
		if out == nil || out == "" {
			out = e.OutputPath
		}
		profiler["S3OutputPath"] = resolve(out)
		req["ProfilerConfig"] = profiler
	}
	return req
}

// TrainingInput describes one input channel of a training job.
type TrainingInput struct {
	S3Data          any // S3 URI or Reference
	ChannelName     string
	ContentType     string
	CompressionType string
	Distribution    string
	S3DataType      string
	RecordWrapper   string
}

// NewTrainingInput returns a channel over the given S3 data with the
// service defaults applied.
func NewTrainingInput(s3Data any) TrainingInput {
	return TrainingInput{S3Data: s3Data}
}

func (in TrainingInput) channel() map[string]any {
	name := in.ChannelName
	if name == "" {
		name = "training"
	}
	dataType := in.S3DataType
	if dataType == "" {
		dataType = "S3Prefix"
	}
	distribution := in.Distribution
	if distribution == "" {
		distribution = "FullyReplicated"
	}

	channel := map[string]any{
		"ChannelName": name,
		"DataSource": map[string]any{
			"S3DataSource": map[string]any{
				"S3DataDistributionType": distribution,
				"S3DataType":             dataType,
				"S3Uri":                  resolve(in.S3Data),
			},
		},
	}
	if in.ContentType != "" {
		channel["ContentType"] = in.ContentType
	}
	if in.CompressionType != "" {
		channel["CompressionType"] = in.CompressionType
	}
	if in.RecordWrapper != "" {
		channel["RecordWrapperType"] = in.RecordWrapper
	}
	return channel
}
