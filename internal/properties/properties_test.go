package properties

import (
	"encoding/json"
	"testing"

	"github.com/modelplane/pipeplan/internal/shapes"
	"github.com/stretchr/testify/require"
)

func trainingProps(t *testing.T) *Properties {
	t.Helper()
	return New(shapes.MustDefault(), "Steps.MyStep", shapes.TrainingJobResponse)
}

func TestTrainingJobResponseTree(t *testing.T) {
	prop := trainingProps(t)

	for _, name := range []string{"TrainingJobName", "TrainingJobArn", "HyperParameters", "OutputDataConfig"} {
		require.Contains(t, prop.Members(), name)
	}

	creationTime, err := prop.Member("CreationTime")
	require.NoError(t, err)
	require.Equal(t, Expr{Get: "Steps.MyStep.CreationTime"}, creationTime.Expr())

	outputConfig, err := prop.Member("OutputDataConfig")
	require.NoError(t, err)
	outputPath, err := outputConfig.Member("S3OutputPath")
	require.NoError(t, err)
	require.Equal(t, Expr{Get: "Steps.MyStep.OutputDataConfig.S3OutputPath"}, outputPath.Expr())
}

func TestProcessingJobResponseTree(t *testing.T) {
	prop := New(shapes.MustDefault(), "Steps.MyStep", shapes.ProcessingJobResponse)

	for _, name := range []string{"ProcessingInputs", "ProcessingOutputConfig", "ProcessingEndTime"} {
		require.Contains(t, prop.Members(), name)
	}

	jobName, err := prop.Member("ProcessingJobName")
	require.NoError(t, err)
	require.Equal(t, Expr{Get: "Steps.MyStep.ProcessingJobName"}, jobName.Expr())

	// deeply nested map access composes one path with no intermediate
	// evaluation
	outputConfig, err := prop.Member("ProcessingOutputConfig")
	require.NoError(t, err)
	outputs, err := outputConfig.Member("Outputs")
	require.NoError(t, err)
	require.Equal(t, Map, outputs.Kind())

	s3Output, err := outputs.Key("MyOutputName").Member("S3Output")
	require.NoError(t, err)
	uri, err := s3Output.Member("S3Uri")
	require.NoError(t, err)
	require.Equal(t,
		Expr{Get: "Steps.MyStep.ProcessingOutputConfig.Outputs['MyOutputName'].S3Output.S3Uri"},
		uri.Expr())
}

func TestListIndexing(t *testing.T) {
	prop := trainingProps(t)

	channels, err := prop.Member("InputDataConfig")
	require.NoError(t, err)
	require.Equal(t, List, channels.Kind())

	name, err := channels.Index(0).Member("ChannelName")
	require.NoError(t, err)
	require.Equal(t, "Steps.MyStep.InputDataConfig[0].ChannelName", name.Path())

	// positions are literal, never renumbered
	require.Equal(t, "Steps.MyStep.InputDataConfig[7]", channels.Index(7).Path())
}

func TestMapAccessIsTotal(t *testing.T) {
	prop := trainingProps(t)

	params, err := prop.Member("HyperParameters")
	require.NoError(t, err)
	for _, key := range []string{"alpha", "learning_rate", "anything at all"} {
		require.Equal(t, "Steps.MyStep.HyperParameters['"+key+"']", params.Key(key).Path())
	}
}

func TestExprIsIdempotent(t *testing.T) {
	prop := trainingProps(t)
	jobName, err := prop.Member("TrainingJobName")
	require.NoError(t, err)
	require.Equal(t, jobName.Expr(), jobName.Expr())

	outputs, err := prop.Member("SecondaryStatusTransitions")
	require.NoError(t, err)
	require.Equal(t, outputs.Index(2).Expr(), outputs.Index(2).Expr())
}

func TestUnknownMember(t *testing.T) {
	prop := trainingProps(t)
	_, err := prop.Member("NoSuchProperty")
	require.Error(t, err)
	require.Contains(t, err.Error(), "NoSuchProperty")
}

func TestOpaqueRoot(t *testing.T) {
	prop := New(shapes.MustDefault(), "Steps.MyStep", "")
	require.Equal(t, Opaque, prop.Kind())
	require.Equal(t, Expr{Get: "Steps.MyStep"}, prop.Expr())
	require.Nil(t, prop.Members())

	_, err := prop.Member("Anything")
	require.Error(t, err)
}

func TestRecursiveShapeTerminates(t *testing.T) {
	registry := shapes.Registry{
		"Node": {
			Type: shapes.TypeStructure,
			Members: map[string]string{
				"Value": "String",
				"Next":  "Node",
			},
		},
		"String": {Type: "string"},
	}

	prop := New(registry, "Steps.MyStep", "Node")
	next, err := prop.Member("Next")
	require.NoError(t, err)
	require.Equal(t, Opaque, next.Kind())
	require.Equal(t, "Steps.MyStep.Next", next.Path())

	// expansion stops at the revisit; deeper access is no longer typed
	_, err = next.Member("Value")
	require.Error(t, err)
}

func TestSiblingExpansionIsNotCutOff(t *testing.T) {
	// the recursion guard tracks the current expansion path, not the whole
	// tree; the same shape reachable through two siblings expands in both
	registry := shapes.Registry{
		"Root": {
			Type: shapes.TypeStructure,
			Members: map[string]string{
				"Left":  "Pair",
				"Right": "Pair",
			},
		},
		"Pair": {
			Type:    shapes.TypeStructure,
			Members: map[string]string{"Value": "String"},
		},
		"String": {Type: "string"},
	}

	prop := New(registry, "Steps.MyStep", "Root")
	for _, side := range []string{"Left", "Right"} {
		child, err := prop.Member(side)
		require.NoError(t, err)
		value, err := child.Member("Value")
		require.NoError(t, err)
		require.Equal(t, "Steps.MyStep."+side+".Value", value.Path())
	}
}

func TestMarshalAsExpression(t *testing.T) {
	prop := trainingProps(t)
	jobName, err := prop.Member("TrainingJobName")
	require.NoError(t, err)

	data, err := json.Marshal(jobName)
	require.NoError(t, err)
	require.JSONEq(t, `{"Get": "Steps.MyStep.TrainingJobName"}`, string(data))
}
