package workflow

// CustomStep is the extension point for step kinds the library does not
// model. The caller supplies the kind label and the ready-made request
// fragment; the property tree is opaque, exposing only paths rooted at
// Steps.<name>.
type CustomStep struct {
	step
}

// NewCustomStep binds caller-supplied arguments to a declared kind label.
func NewCustomStep(name string, stepType StepType, arguments map[string]any, opts ...Option) (*CustomStep, error) {
	base, err := newStep(name, stepType, "", arguments, opts)
	if err != nil {
		return nil, err
	}
	return &CustomStep{step: base}, nil
}
