package loader

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/modelplane/pipeplan/internal/properties"
	"github.com/modelplane/pipeplan/internal/workflow"
)

var refPattern = regexp.MustCompile(`\$\{Steps\.[^}]+\}`)

// resolver resolves ${Steps.<name>.<path>} placeholders against the
// property trees of previously defined steps, and records the implicit
// dependencies the references create for the step under construction.
type resolver struct {
	built map[string]workflow.Step
	deps  map[string]bool
}

func newResolver(built map[string]workflow.Step) *resolver {
	return &resolver{built: built, deps: make(map[string]bool)}
}

// reset clears the dependency accumulation between steps.
func (r *resolver) reset() {
	r.deps = make(map[string]bool)
}

// dependencies returns the steps referenced since the last reset, sorted.
func (r *resolver) dependencies() []string {
	out := make([]string, 0, len(r.deps))
	for name := range r.deps {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// value resolves a definition field. Plain strings pass through verbatim;
// a placeholder must stand alone, since a symbolic value has no text to
// splice into at definition time.
func (r *resolver) value(s string) (any, error) {
	if !strings.Contains(s, "${") {
		return s, nil
	}
	match := refPattern.FindString(s)
	if match != s {
		return nil, fmt.Errorf("symbolic reference must stand alone, got %q", s)
	}

	ref := s[2 : len(s)-1] // Steps.<name>[.<path>]
	rest := strings.TrimPrefix(ref, "Steps.")
	end := strings.IndexAny(rest, ".[")
	stepName := rest
	if end >= 0 {
		stepName = rest[:end]
		rest = rest[end:]
	} else {
		rest = ""
	}
	if stepName == "" {
		return nil, fmt.Errorf("malformed step reference %q", s)
	}

	upstream, ok := r.built[stepName]
	if !ok {
		return nil, fmt.Errorf("reference %q points at undefined step %s (steps must be declared before use)", s, stepName)
	}

	node, err := properties.Walk(upstream.Properties(), rest)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", s, err)
	}
	r.deps[stepName] = true
	return node, nil
}

// anyValue resolves placeholders recursively through maps, slices and
// strings, substituting reference expressions. Used for custom step
// arguments.
func (r *resolver) anyValue(v any) (any, error) {
	switch val := v.(type) {
	case string:
		resolved, err := r.value(val)
		if err != nil {
			return nil, err
		}
		if node, ok := resolved.(*properties.Properties); ok {
			return node.Expr(), nil
		}
		return resolved, nil
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			resolved, err := r.anyValue(item)
			if err != nil {
				return nil, err
			}
			out[k] = resolved
		}
		return out, nil
	case []any:
		out := make([]any, 0, len(val))
		for _, item := range val {
			resolved, err := r.anyValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved)
		}
		return out, nil
	default:
		return v, nil
	}
}

// mergeDeps unions declared and implicit dependencies, declared order
// first.
func mergeDeps(declared, implicit []string) []string {
	seen := make(map[string]bool, len(declared))
	merged := make([]string, 0, len(declared)+len(implicit))
	for _, d := range declared {
		if !seen[d] {
			seen[d] = true
			merged = append(merged, d)
		}
	}
	for _, d := range implicit {
		if !seen[d] {
			seen[d] = true
			merged = append(merged, d)
		}
	}
	return merged
}
