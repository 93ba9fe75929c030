package jobs

import "fmt"

// Transformer configures a remote batch transform job over an existing
// model.
type Transformer struct {
	ModelName               any // model name or Reference
	InstanceCount           int
	InstanceType            string
	OutputPath              any // S3 URI or Reference, may be unset
	Accept                  string
	AssembleWith            string
	Strategy                string
	MaxConcurrentTransforms int
	MaxPayloadInMB          int
	Env                     map[string]string
}

// NewTransformer validates the configuration.
func NewTransformer(t Transformer) (*Transformer, error) {
	if t.ModelName == nil || t.ModelName == "" {
		return nil, fmt.Errorf("transformer requires a model name")
	}
	if t.InstanceCount <= 0 {
		return nil, fmt.Errorf("transformer requires a positive instance count")
	}
	if t.InstanceType == "" {
		return nil, fmt.Errorf("transformer requires an instance type")
	}
	return &t, nil
}

// TransformInput describes the data a transform job runs over.
type TransformInput struct {
	Data            any // S3 URI or Reference
	DataType        string
	ContentType     string
	CompressionType string
	SplitType       string
}

// NewTransformInput returns an input over the given S3 data with the
// service defaults applied.
func NewTransformInput(data any) TransformInput {
	return TransformInput{Data: data}
}

// TransformRequest produces the native request fragment of the transform
// launch action. S3OutputPath is emitted as null when no output path is
// configured; the engine substitutes its default location.
func (t *Transformer) TransformRequest(input TransformInput) map[string]any {
	transformInput := map[string]any{
		"DataSource": map[string]any{
			"S3DataSource": map[string]any{
				"S3DataType": defaultString(input.DataType, "S3Prefix"),
				"S3Uri":      resolve(input.Data),
			},
		},
	}
	if input.ContentType != "" {
		transformInput["ContentType"] = input.ContentType
	}
	if input.CompressionType != "" {
		transformInput["CompressionType"] = input.CompressionType
	}
	if input.SplitType != "" {
		transformInput["SplitType"] = input.SplitType
	}

	var outputPath any
	if t.OutputPath != nil && t.OutputPath != "" {
		outputPath = resolve(t.OutputPath)
	}
	transformOutput := map[string]any{"S3OutputPath": outputPath}
	if t.Accept != "" {
		transformOutput["Accept"] = t.Accept
	}
	if t.AssembleWith != "" {
		transformOutput["AssembleWith"] = t.AssembleWith
	}

	req := map[string]any{
		"ModelName":       resolve(t.ModelName),
		"TransformInput":  transformInput,
		"TransformOutput": transformOutput,
		"TransformResources": map[string]any{
			"InstanceCount": t.InstanceCount,
			"InstanceType":  t.InstanceType,
		},
	}
	if t.Strategy != "" {
		req["BatchStrategy"] = t.Strategy
	}
	if t.MaxConcurrentTransforms > 0 {
		req["MaxConcurrentTransforms"] = t.MaxConcurrentTransforms
	}
	if t.MaxPayloadInMB > 0 {
		req["MaxPayloadInMB"] = t.MaxPayloadInMB
	}
	if len(t.Env) > 0 {
		req["Environment"] = t.Env
	}
	return req
}
