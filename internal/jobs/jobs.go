// Package jobs holds the job-launching entities a pipeline step wraps.
// Each entity validates its own configuration and knows how to turn it into
// the native request fragment of its launch action; steps consume that
// fragment verbatim.
package jobs

import (
	"github.com/modelplane/pipeplan/internal/properties"
)

// Reference is implemented by symbolic values whose concrete value is only
// known to the execution engine. Entity fields typed `any` accept either a
// plain value or a Reference.
type Reference interface {
	Expr() properties.Expr
}

// resolve substitutes the symbolic expression for Reference values and
// passes everything else through verbatim.
func resolve(v any) any {
	if r, ok := v.(Reference); ok {
		return r.Expr()
	}
	return v
}

// stringMap converts an environment map for embedding in a request
// fragment, preserving an explicitly empty map.
func stringMap(m map[string]string) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	return m
}
