package jobs

import (
	"testing"

	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/modelplane/pipeplan/internal/shapes"
	"github.com/stretchr/testify/require"
)

func TestCreateModelRequest(t *testing.T) {
	m, err := NewModel(Model{
		ImageURI: "fakeimage",
		Role:     "DummyRole",
	})
	require.NoError(t, err)

	require.Equal(t, map[string]any{
		"ExecutionRoleArn": "DummyRole",
		"PrimaryContainer": map[string]any{
			"Environment": map[string]string{},
			"Image":       "fakeimage",
		},
	}, m.CreateModelRequest())
}

func TestCreateModelRequestWithArtifacts(t *testing.T) {
	training := properties.New(shapes.MustDefault(), "Steps.MyTrainingStep", shapes.TrainingJobResponse)
	artifacts, err := properties.Walk(training, "ModelArtifacts.S3ModelArtifacts")
	require.NoError(t, err)

	m, err := NewModel(Model{
		ImageURI:     "fakeimage",
		Role:         "DummyRole",
		ModelDataURL: artifacts,
		Env:          map[string]string{"MODEL_SERVER_WORKERS": "2"},
	})
	require.NoError(t, err)

	container := m.CreateModelRequest()["PrimaryContainer"].(map[string]any)
	require.Equal(t,
		properties.Expr{Get: "Steps.MyTrainingStep.ModelArtifacts.S3ModelArtifacts"},
		container["ModelDataUrl"])
	require.Equal(t,
		map[string]string{"MODEL_SERVER_WORKERS": "2"},
		container["Environment"])
}

func TestNewModelValidation(t *testing.T) {
	_, err := NewModel(Model{Role: "DummyRole"})
	require.Error(t, err)

	_, err = NewModel(Model{ImageURI: "fakeimage"})
	require.Error(t, err)
}
