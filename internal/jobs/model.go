package jobs

import "fmt"

// Model configures a servable model assembled from a container image and
// optional trained artifacts.
type Model struct {
	ImageURI     string
	Role         string
	ModelDataURL any // S3 URI or Reference, typically a training step's artifacts
	Env          map[string]string
}

// NewModel validates the configuration.
func NewModel(m Model) (*Model, error) {
	if m.ImageURI == "" {
		return nil, fmt.Errorf("model requires an image URI")
	}
	if m.Role == "" {
		return nil, fmt.Errorf("model requires an execution role")
	}
	return &m, nil
}

// CreateModelRequest produces the native request fragment of the
// create-model action, minus the model name the engine assigns.
func (m *Model) CreateModelRequest() map[string]any {
	container := map[string]any{
		"Environment": stringMap(m.Env),
		"Image":       m.ImageURI,
	}
	if m.ModelDataURL != nil && m.ModelDataURL != "" {
		container["ModelDataUrl"] = resolve(m.ModelDataURL)
	}
	return map[string]any{
		"ExecutionRoleArn": m.Role,
		"PrimaryContainer": container,
	}
}

// CreateModelInput carries the serving configuration a create-model step is
// declared with. It does not contribute to the request fragment; the engine
// reads it when wiring a subsequent endpoint.
type CreateModelInput struct {
	InstanceType    string
	AcceleratorType string
}
