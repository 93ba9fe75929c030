package workflow

import (
	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/shapes"
)

// TransformStep declares one future batch transform job. Its properties
// mirror the describe-transform-job response.
type TransformStep struct {
	step
	transformer *jobs.Transformer
	input       jobs.TransformInput
}

// NewTransformStep wraps a transformer and its input.
func NewTransformStep(name string, transformer *jobs.Transformer, input jobs.TransformInput, opts ...Option) (*TransformStep, error) {
	base, err := newStep(name, TypeTransform, shapes.TransformJobResponse, transformer.TransformRequest(input), opts)
	if err != nil {
		return nil, err
	}
	return &TransformStep{step: base, transformer: transformer, input: input}, nil
}

// Transformer returns the wrapped entity.
func (s *TransformStep) Transformer() *jobs.Transformer { return s.transformer }

// Input returns the declared transform input.
func (s *TransformStep) Input() jobs.TransformInput { return s.input }
