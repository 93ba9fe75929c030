// Package workflow defines the declarative pipeline step abstraction. A
// step wraps one job-launching entity, renders that entity's native request
// fragment, and exposes a symbolic property tree mirroring the response the
// engine will eventually produce for it. Steps perform no execution and no
// I/O.
package workflow

import (
	"fmt"

	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/modelplane/pipeplan/internal/shapes"
)

// StepType labels a step in its request document. The engine's vocabulary
// is case-sensitive.
type StepType string

const (
	TypeTraining    StepType = "Training"
	TypeProcessing  StepType = "Processing"
	TypeTransform   StepType = "Transform"
	TypeCreateModel StepType = "Model"
)

// CacheConfig lets the engine reuse a prior result of the step instead of
// re-executing it.
type CacheConfig struct {
	Enabled     bool
	ExpireAfter string // ISO-8601 duration, e.g. "PT1H"
}

// Request serializes the cache policy for the step document.
func (c CacheConfig) Request() map[string]any {
	req := map[string]any{"Enabled": c.Enabled}
	if c.ExpireAfter != "" {
		req["ExpireAfter"] = c.ExpireAfter
	}
	return req
}

// Step is the capability set every step kind implements. New kinds are
// added by implementing it, not by extending a fixed enumeration.
type Step interface {
	// Name is the step's identifier within the pipeline. Uniqueness is the
	// caller's responsibility.
	Name() string
	// Type is the engine-facing kind label.
	Type() StepType
	// Arguments is the wrapped entity's native request fragment.
	Arguments() map[string]any
	// Properties is the symbolic tree rooted at Steps.<name>.
	Properties() *properties.Properties
	// DependsOn lists explicitly declared upstream step names.
	DependsOn() []string
	// CacheConfig returns the cache policy, or nil when none is set.
	CacheConfig() *CacheConfig
}

// Option configures the optional attributes shared by all step kinds.
type Option func(*step)

// WithCacheConfig attaches a cache policy to the step.
func WithCacheConfig(c CacheConfig) Option {
	return func(s *step) {
		s.cache = &c
	}
}

// WithDependsOn declares upstream steps the engine must complete first.
func WithDependsOn(names ...string) Option {
	return func(s *step) {
		s.dependsOn = append(s.dependsOn, names...)
	}
}

// step carries the behavior common to the built-in variants. It is
// immutable after construction.
type step struct {
	name      string
	stepType  StepType
	args      map[string]any
	props     *properties.Properties
	cache     *CacheConfig
	dependsOn []string
}

// newStep derives the property tree for the given response shape and
// applies the options. responseShape may be empty for opaque trees.
func newStep(name string, stepType StepType, responseShape string, args map[string]any, opts []Option) (step, error) {
	if name == "" {
		return step{}, fmt.Errorf("step requires a name")
	}
	if stepType == "" {
		return step{}, fmt.Errorf("step %s requires a type label", name)
	}
	registry, err := shapes.Default()
	if err != nil {
		return step{}, err
	}
	if args == nil {
		args = map[string]any{}
	}

	s := step{
		name:     name,
		stepType: stepType,
		args:     args,
		props:    properties.New(registry, "Steps."+name, responseShape),
	}
	for _, opt := range opts {
		opt(&s)
	}
	return s, nil
}

func (s *step) Name() string                       { return s.name }
func (s *step) Type() StepType                     { return s.stepType }
func (s *step) Arguments() map[string]any          { return s.args }
func (s *step) Properties() *properties.Properties { return s.props }
func (s *step) DependsOn() []string                { return s.dependsOn }
func (s *step) CacheConfig() *CacheConfig          { return s.cache }
