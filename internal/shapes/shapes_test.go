package shapes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryLoads(t *testing.T) {
	reg, err := Default()
	require.NoError(t, err)
	require.NotEmpty(t, reg)

	for _, name := range []string{
		TrainingJobResponse,
		ProcessingJobResponse,
		TransformJobResponse,
		ModelResponse,
	} {
		shape, ok := reg.Lookup(name)
		require.True(t, ok, "missing response shape %s", name)
		require.Equal(t, TypeStructure, shape.Type)
		require.NotEmpty(t, shape.Members)
	}
}

func TestShapeKinds(t *testing.T) {
	reg := MustDefault()

	channels, ok := reg.Lookup("InputDataConfig")
	require.True(t, ok)
	require.Equal(t, TypeList, channels.Type)
	require.Equal(t, "Channel", channels.Member)

	params, ok := reg.Lookup("HyperParameters")
	require.True(t, ok)
	require.Equal(t, TypeMap, params.Type)
	require.Equal(t, "String", params.Value)

	str, ok := reg.Lookup("String")
	require.True(t, ok)
	require.True(t, str.Scalar())
	require.False(t, channels.Scalar())
}

func TestProcessingOutputsAreKeyedByName(t *testing.T) {
	reg := MustDefault()

	response, ok := reg.Lookup(ProcessingJobResponse)
	require.True(t, ok)

	config, ok := reg.Lookup(response.Members["ProcessingOutputConfig"])
	require.True(t, ok)

	outputs, ok := reg.Lookup(config.Members["Outputs"])
	require.True(t, ok)
	require.Equal(t, TypeMap, outputs.Type)

	output, ok := reg.Lookup(outputs.Value)
	require.True(t, ok)
	require.Contains(t, output.Members, "S3Output")
}

func TestLookupUnknown(t *testing.T) {
	reg := MustDefault()
	_, ok := reg.Lookup("NoSuchShape")
	require.False(t, ok)
}
