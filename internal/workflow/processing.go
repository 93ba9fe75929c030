package workflow

import (
	"github.com/modelplane/pipeplan/internal/jobs"
	"github.com/modelplane/pipeplan/internal/shapes"
)

// ProcessingStep declares one future processing job. Its properties mirror
// the describe-processing-job response.
type ProcessingStep struct {
	step
	processor *jobs.Processor
	inputs    []jobs.ProcessingInput
	outputs   []jobs.ProcessingOutput
}

// NewProcessingStep wraps a processor and its inputs/outputs.
func NewProcessingStep(name string, processor *jobs.Processor, inputs []jobs.ProcessingInput, outputs []jobs.ProcessingOutput, opts ...Option) (*ProcessingStep, error) {
	base, err := newStep(name, TypeProcessing, shapes.ProcessingJobResponse, processor.ProcessRequest(inputs, outputs), opts)
	if err != nil {
		return nil, err
	}
	return &ProcessingStep{step: base, processor: processor, inputs: inputs, outputs: outputs}, nil
}

// NewScriptProcessingStep wraps a script processor. The processor's own
// argument normalization (script upload channel plus container command
// line) is invoked, not reimplemented.
func NewScriptProcessingStep(name string, processor *jobs.ScriptProcessor, code string, inputs []jobs.ProcessingInput, outputs []jobs.ProcessingOutput, jobArguments []string, opts ...Option) (*ProcessingStep, error) {
	base, err := newStep(name, TypeProcessing, shapes.ProcessingJobResponse, processor.ScriptRequest(code, inputs, outputs, jobArguments), opts)
	if err != nil {
		return nil, err
	}
	return &ProcessingStep{step: base, processor: &processor.Processor, inputs: inputs, outputs: outputs}, nil
}

// Processor returns the wrapped entity.
func (s *ProcessingStep) Processor() *jobs.Processor { return s.processor }

// Inputs returns the declared inputs.
func (s *ProcessingStep) Inputs() []jobs.ProcessingInput { return s.inputs }

// Outputs returns the declared outputs.
func (s *ProcessingStep) Outputs() []jobs.ProcessingOutput { return s.outputs }
