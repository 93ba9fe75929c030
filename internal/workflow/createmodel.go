package workflow

import (
	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/shapes"
)

// CreateModelStep declares the registration of a servable model. Its
// properties mirror the describe-model response.
type CreateModelStep struct {
	step
	model *jobs.Model
	input jobs.CreateModelInput
}

// NewCreateModelStep wraps a model and its serving input. The input is
// recorded for the engine but does not contribute to the arguments.
func NewCreateModelStep(name string, model *jobs.Model, input jobs.CreateModelInput, opts ...Option) (*CreateModelStep, error) {
	base, err := newStep(name, TypeCreateModel, shapes.ModelResponse, model.CreateModelRequest(), opts)
	if err != nil {
		return nil, err
	}
	return &CreateModelStep{step: base, model: model, input: input}, nil
}

// Model returns the wrapped entity.
func (s *CreateModelStep) Model() *jobs.Model { return s.model }

// Input returns the declared serving input.
func (s *CreateModelStep) Input() jobs.CreateModelInput { return s.input }
