package workflow

// Pipeline is an ordered collection of steps destined for the execution
// engine. It is a plain container: name uniqueness and graph validity are
// checked by the planner helpers, authoritatively by the engine.
type Pipeline struct {
	Name        string
	Description string
	Steps       []Step
}

// Step returns the named step, or nil when absent.
func (p *Pipeline) Step(name string) Step {
	for _, s := range p.Steps {
		if s.Name() == name {
			return s
		}
	}
	return nil
}
