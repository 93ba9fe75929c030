package workflow

import (
	"testing"

	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/stretchr/testify/require"
)

func testEstimator(t *testing.T) *jobs.Estimator {
	t.Helper()
	est, err := jobs.NewEstimator(jobs.Estimator{
		ImageURI:      "fakeimage",
		Role:          "DummyRole",
		InstanceCount: 1,
		InstanceType:  "c4.4xlarge",
		OutputPath:    "s3://my-bucket/",
	})
	require.NoError(t, err)
	return est
}

func TestTrainingStep(t *testing.T) {
	est := testEstimator(t)
	inputs := []jobs.TrainingInput{jobs.NewTrainingInput("s3://my-bucket/train_manifest")}

	s, err := NewTrainingStep("MyTrainingStep", est, inputs,
		WithCacheConfig(CacheConfig{Enabled: true, ExpireAfter: "PT1H"}))
	require.NoError(t, err)

	require.Equal(t, TypeTraining, s.Type())
	require.Equal(t, est.TrainRequest(inputs...), s.Arguments())
	require.Equal(t, &CacheConfig{Enabled: true, ExpireAfter: "PT1H"}, s.CacheConfig())
	require.Same(t, est, s.Estimator())

	jobName, err := s.Properties().Member("TrainingJobName")
	require.NoError(t, err)
	require.Equal(t, properties.Expr{Get: "Steps.MyTrainingStep.TrainingJobName"}, jobName.Expr())
}

func TestProcessingStep(t *testing.T) {
	proc, err := jobs.NewProcessor(jobs.Processor{
		ImageURI:      "fakeimage",
		Role:          "DummyRole",
		InstanceCount: 1,
		InstanceType:  "ml.m4.4xlarge",
	})
	require.NoError(t, err)

	inputs := []jobs.ProcessingInput{{
		Source:      "s3://my-bucket/processing_manifest",
		Destination: "processing_manifest",
	}}

	s, err := NewProcessingStep("MyProcessingStep", proc, inputs, nil)
	require.NoError(t, err)
	require.Equal(t, TypeProcessing, s.Type())
	require.Equal(t, proc.ProcessRequest(inputs, nil), s.Arguments())

	node, err := properties.Walk(s.Properties(), "ProcessingOutputConfig.Outputs['train'].S3Output.S3Uri")
	require.NoError(t, err)
	require.Equal(t,
		"Steps.MyProcessingStep.ProcessingOutputConfig.Outputs['train'].S3Output.S3Uri",
		node.Path())
}

func TestScriptProcessingStep(t *testing.T) {
	sp, err := jobs.NewScriptProcessor(jobs.ScriptProcessor{
		Processor: jobs.Processor{
			ImageURI:      "fakeimage",
			Role:          "DummyRole",
			InstanceCount: 1,
			InstanceType:  "ml.m4.4xlarge",
		},
		Command: []string{"python3"},
	})
	require.NoError(t, err)

	s, err := NewScriptProcessingStep("MyScriptStep", sp, "s3://my-bucket/code/preprocess.py", nil, nil, nil)
	require.NoError(t, err)

	spec := s.Arguments()["AppSpecification"].(map[string]any)
	require.Equal(t,
		[]string{"python3", "/opt/ml/processing/input/code/preprocess.py"},
		spec["ContainerEntrypoint"])
}

func TestTransformStep(t *testing.T) {
	tr, err := jobs.NewTransformer(jobs.Transformer{
		ModelName:     "gisele",
		InstanceCount: 1,
		InstanceType:  "ml.c4.4xlarge",
	})
	require.NoError(t, err)

	s, err := NewTransformStep("MyTransformStep", tr, jobs.NewTransformInput("s3://my-bucket/transform_manifest"))
	require.NoError(t, err)
	require.Equal(t, TypeTransform, s.Type())

	jobName, err := s.Properties().Member("TransformJobName")
	require.NoError(t, err)
	require.Equal(t, properties.Expr{Get: "Steps.MyTransformStep.TransformJobName"}, jobName.Expr())
}

func TestCreateModelStep(t *testing.T) {
	m, err := jobs.NewModel(jobs.Model{ImageURI: "fakeimage", Role: "DummyRole"})
	require.NoError(t, err)

	s, err := NewCreateModelStep("MyModelStep", m, jobs.CreateModelInput{InstanceType: "c4.4xlarge"})
	require.NoError(t, err)
	require.Equal(t, TypeCreateModel, s.Type())
	require.Equal(t, "c4.4xlarge", s.Input().InstanceType)

	// serving input stays out of the request fragment
	require.Equal(t, m.CreateModelRequest(), s.Arguments())

	name, err := s.Properties().Member("ModelName")
	require.NoError(t, err)
	require.Equal(t, properties.Expr{Get: "Steps.MyModelStep.ModelName"}, name.Expr())
}

func TestStepsChainThroughProperties(t *testing.T) {
	est := testEstimator(t)
	training, err := NewTrainingStep("MyTrainingStep", est, nil)
	require.NoError(t, err)

	artifacts, err := properties.Walk(training.Properties(), "ModelArtifacts.S3ModelArtifacts")
	require.NoError(t, err)

	m, err := jobs.NewModel(jobs.Model{
		ImageURI:     "fakeimage",
		Role:         "DummyRole",
		ModelDataURL: artifacts,
	})
	require.NoError(t, err)

	modelStep, err := NewCreateModelStep("MyModelStep", m, jobs.CreateModelInput{},
		WithDependsOn("MyTrainingStep"))
	require.NoError(t, err)

	container := modelStep.Arguments()["PrimaryContainer"].(map[string]any)
	require.Equal(t,
		properties.Expr{Get: "Steps.MyTrainingStep.ModelArtifacts.S3ModelArtifacts"},
		container["ModelDataUrl"])
	require.Equal(t, []string{"MyTrainingStep"}, modelStep.DependsOn())
}
