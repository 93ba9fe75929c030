package jobs

import (
	"fmt"
	"path"
)

// Processor configures a remote processing job running a container image.
type Processor struct {
	ImageURI            string
	Role                string
	InstanceCount       int
	InstanceType        string
	VolumeSizeInGB      int
	VolumeKMSKey        string
	OutputKMSKey        string
	MaxRuntimeInSeconds int
	Entrypoint          []string
	Env                 map[string]string
	Network             *NetworkConfig
}

// NetworkConfig describes the network isolation settings of a job.
type NetworkConfig struct {
	EnableNetworkIsolation                bool
	EnableInterContainerTrafficEncryption bool
	SecurityGroupIDs                      []string
	Subnets                               []string
}

func (n *NetworkConfig) request() map[string]any {
	req := map[string]any{
		"EnableNetworkIsolation":                n.EnableNetworkIsolation,
		"EnableInterContainerTrafficEncryption": n.EnableInterContainerTrafficEncryption,
	}
	if len(n.SecurityGroupIDs) > 0 || len(n.Subnets) > 0 {
		req["VpcConfig"] = map[string]any{
			"SecurityGroupIds": n.SecurityGroupIDs,
			"Subnets":          n.Subnets,
		}
	}
	return req
}

// NewProcessor validates the configuration and applies service defaults.
func NewProcessor(p Processor) (*Processor, error) {
	if p.ImageURI == "" {
		return nil, fmt.Errorf("processor requires an image URI")
	}
	if p.Role == "" {
		return nil, fmt.Errorf("processor requires an execution role")
	}
	if p.InstanceCount <= 0 {
		return nil, fmt.Errorf("processor requires a positive instance count")
	}
	if p.InstanceType == "" {
		return nil, fmt.Errorf("processor requires an instance type")
	}
	if p.VolumeSizeInGB == 0 {
		p.VolumeSizeInGB = 30
	}
	return &p, nil
}

// ProcessingInput describes one input downloaded into the job container.
type ProcessingInput struct {
	Source                 any // S3 URI or Reference
	Destination            string
	InputName              string
	S3DataType             string
	S3InputMode            string
	S3DataDistributionType string
	S3CompressionType      string
	AppManaged             bool
}

// ProcessingOutput describes one output uploaded from the job container.
type ProcessingOutput struct {
	Source       string
	Destination  any // S3 URI or Reference
	OutputName   string
	S3UploadMode string
	AppManaged   bool
}

// ProcessRequest produces the native request fragment of the processing
// launch action. Inputs and outputs without explicit names are assigned
// positional ones (input-1, output-1, ...).
func (p *Processor) ProcessRequest(inputs []ProcessingInput, outputs []ProcessingOutput) map[string]any {
	req := map[string]any{
		"AppSpecification": p.appSpecification(nil),
		"ProcessingResources": map[string]any{
			"ClusterConfig": p.clusterConfig(),
		},
		"RoleArn": p.Role,
	}

	if len(inputs) > 0 {
		req["ProcessingInputs"] = normalizeInputs(inputs)
	}
	if len(outputs) > 0 {
		outputConfig := map[string]any{"Outputs": normalizeOutputs(outputs)}
		if p.OutputKMSKey != "" {
			outputConfig["KmsKeyId"] = p.OutputKMSKey
		}
		req["ProcessingOutputConfig"] = outputConfig
	}
	if len(p.Env) > 0 {
		req["Environment"] = p.Env
	}
	if p.Network != nil {
		req["NetworkConfig"] = p.Network.request()
	}
	if p.MaxRuntimeInSeconds > 0 {
		req["StoppingCondition"] = map[string]any{
			"MaxRuntimeInSeconds": p.MaxRuntimeInSeconds,
		}
	}
	return req
}

func (p *Processor) appSpecification(arguments []string) map[string]any {
	spec := map[string]any{"ImageUri": p.ImageURI}
	if len(p.Entrypoint) > 0 {
		spec["ContainerEntrypoint"] = p.Entrypoint
	}
	if len(arguments) > 0 {
		spec["ContainerArguments"] = arguments
	}
	return spec
}

func (p *Processor) clusterConfig() map[string]any {
	cfg := map[string]any{
		"InstanceCount":  p.InstanceCount,
		"InstanceType":   p.InstanceType,
		"VolumeSizeInGB": p.VolumeSizeInGB,
	}
	if p.VolumeKMSKey != "" {
		cfg["VolumeKmsKeyId"] = p.VolumeKMSKey
	}
	return cfg
}

func normalizeInputs(inputs []ProcessingInput) []any {
	out := make([]any, 0, len(inputs))
	for i, in := range inputs {
		name := in.InputName
		if name == "" {
			name = fmt.Sprintf("input-%d", i+1)
		}
		s3Input := map[string]any{
			"S3Uri":     resolve(in.Source),
			"LocalPath": in.Destination,
		}
		s3Input["S3DataType"] = defaultString(in.S3DataType, "S3Prefix")
		s3Input["S3InputMode"] = defaultString(in.S3InputMode, "File")
		s3Input["S3DataDistributionType"] = defaultString(in.S3DataDistributionType, "FullyReplicated")
		s3Input["S3CompressionType"] = defaultString(in.S3CompressionType, "None")

		out = append(out, map[string]any{
			"InputName":  name,
			"AppManaged": in.AppManaged,
			"S3Input":    s3Input,
		})
	}
	return out
}

func normalizeOutputs(outputs []ProcessingOutput) []any {
	out := make([]any, 0, len(outputs))
	for i, o := range outputs {
		name := o.OutputName
		if name == "" {
			name = fmt.Sprintf("output-%d", i+1)
		}
		out = append(out, map[string]any{
			"OutputName": name,
			"AppManaged": o.AppManaged,
			"S3Output": map[string]any{
				"S3Uri":        resolve(o.Destination),
				"LocalPath":    o.Source,
				"S3UploadMode": defaultString(o.S3UploadMode, "EndOfJob"),
			},
		})
	}
	return out
}

func defaultString(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

// ScriptProcessor runs a user script inside the processing container. The
// script is uploaded as an extra input channel and appended to the
// container command line.
type ScriptProcessor struct {
	Processor
	Command []string
}

// NewScriptProcessor validates the configuration; Command is the
// interpreter invocation the script path gets appended to.
func NewScriptProcessor(p ScriptProcessor) (*ScriptProcessor, error) {
	if len(p.Command) == 0 {
		return nil, fmt.Errorf("script processor requires a command")
	}
	base, err := NewProcessor(p.Processor)
	if err != nil {
		return nil, err
	}
	p.Processor = *base
	return &p, nil
}

const scriptInputPath = "/opt/ml/processing/input/code"

// ScriptRequest normalizes the run arguments (script injection plus
// container command line) and produces the request fragment.
func (p *ScriptProcessor) ScriptRequest(code string, inputs []ProcessingInput, outputs []ProcessingOutput, arguments []string) map[string]any {
	normalized := append([]ProcessingInput{}, inputs...)
	normalized = append(normalized, ProcessingInput{
		Source:      code,
		Destination: scriptInputPath,
		InputName:   "code",
	})

	req := p.ProcessRequest(normalized, outputs)
	entrypoint := append(append([]string{}, p.Command...), path.Join(scriptInputPath, path.Base(code)))
	spec := req["AppSpecification"].(map[string]any)
	spec["ContainerEntrypoint"] = entrypoint
	if len(arguments) > 0 {
		spec["ContainerArguments"] = arguments
	}
	return req
}
