package workflow

import (
	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/shapes"
)

// TrainingStep declares one future training job. Its properties mirror the
// describe-training-job response.
type TrainingStep struct {
	step
	estimator *jobs.Estimator
	inputs    []jobs.TrainingInput
}

// NewTrainingStep wraps an estimator and its input channels.
func NewTrainingStep(name string, estimator *jobs.Estimator, inputs []jobs.TrainingInput, opts ...Option) (*TrainingStep, error) {
	base, err := newStep(name, TypeTraining, shapes.TrainingJobResponse, estimator.TrainRequest(inputs...), opts)
	if err != nil {
		return nil, err
	}
	return &TrainingStep{step: base, estimator: estimator, inputs: inputs}, nil
}

// Estimator returns the wrapped entity.
func (s *TrainingStep) Estimator() *jobs.Estimator { return s.estimator }

// Inputs returns the declared input channels.
func (s *TrainingStep) Inputs() []jobs.TrainingInput { return s.inputs }
