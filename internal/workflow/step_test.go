package workflow

import (
	"testing"

	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/stretchr/testify/require"
)

func TestNewCustomStep(t *testing.T) {
	s, err := NewCustomStep("MyStep", TypeTraining, nil)
	require.NoError(t, err)
	require.Equal(t, "MyStep", s.Name())
	require.Equal(t, TypeTraining, s.Type())
	require.Equal(t, map[string]any{}, s.Arguments())
	require.Nil(t, s.CacheConfig())
	require.Empty(t, s.DependsOn())
}

func TestNewCustomStepValidation(t *testing.T) {
	_, err := NewCustomStep("", TypeTraining, nil)
	require.Error(t, err)

	_, err = NewCustomStep("MyStep", "", nil)
	require.Error(t, err)
}

func TestCustomStepPropertiesAreOpaque(t *testing.T) {
	s, err := NewCustomStep("MyStep", "Callback", map[string]any{"Url": "https://example.com"})
	require.NoError(t, err)

	props := s.Properties()
	require.Equal(t, properties.Opaque, props.Kind())
	require.Equal(t, properties.Expr{Get: "Steps.MyStep"}, props.Expr())

	// untyped trees still compose paths
	require.Equal(t, "Steps.MyStep['Output']", props.Key("Output").Path())

	_, err = props.Member("Anything")
	require.Error(t, err)
}

func TestStepOptions(t *testing.T) {
	s, err := NewCustomStep("MyStep", "Callback", nil,
		WithCacheConfig(CacheConfig{Enabled: true, ExpireAfter: "PT1H"}),
		WithDependsOn("First", "Second"),
		WithDependsOn("Third"),
	)
	require.NoError(t, err)
	require.Equal(t, &CacheConfig{Enabled: true, ExpireAfter: "PT1H"}, s.CacheConfig())
	require.Equal(t, []string{"First", "Second", "Third"}, s.DependsOn())
}

func TestCacheConfigRequest(t *testing.T) {
	require.Equal(t,
		map[string]any{"Enabled": true, "ExpireAfter": "PT1H"},
		CacheConfig{Enabled: true, ExpireAfter: "PT1H"}.Request())

	// ExpireAfter is omitted entirely when unset
	require.Equal(t,
		map[string]any{"Enabled": false},
		CacheConfig{}.Request())
}

func TestPipelineStepLookup(t *testing.T) {
	a, err := NewCustomStep("A", "Callback", nil)
	require.NoError(t, err)
	b, err := NewCustomStep("B", "Callback", nil)
	require.NoError(t, err)

	p := &Pipeline{Name: "demo", Steps: []Step{a, b}}
	require.Equal(t, Step(b), p.Step("B"))
	require.Nil(t, p.Step("C"))
}
