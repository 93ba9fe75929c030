package shapes

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"sync"
)

// Shape kinds understood by the property tree builder. Anything that is not
// a structure, list or map is a scalar and terminates expansion.
const (
	TypeStructure = "structure"
	TypeList      = "list"
	TypeMap       = "map"
)

// Shape describes the structure of one node of a service response.
type Shape struct {
	Type    string            `json:"type"`
	Members map[string]string `json:"members,omitempty"` // structure: member name -> shape name
	Member  string            `json:"member,omitempty"`  // list: element shape name
	Value   string            `json:"value,omitempty"`   // map: value shape name
}

// Scalar reports whether the shape terminates expansion.
func (s Shape) Scalar() bool {
	switch s.Type {
	case TypeStructure, TypeList, TypeMap:
		return false
	}
	return true
}

// Registry maps shape names to their descriptors. It is a frozen resource:
// loaded once, read-only afterwards.
type Registry map[string]Shape

// Lookup returns the named shape. Unknown names are treated as scalars by
// callers, so the second return value distinguishes the two cases.
func (r Registry) Lookup(name string) (Shape, bool) {
	s, ok := r[name]
	return s, ok
}

//go:embed responses.json
var responsesJSON []byte

var (
	defaultOnce     sync.Once
	defaultRegistry Registry
	defaultErr      error
)

// Default returns the built-in registry covering the describe-job response
// shapes of the four supported job kinds.
func Default() (Registry, error) {
	defaultOnce.Do(func() {
		defaultErr = json.Unmarshal(responsesJSON, &defaultRegistry)
		if defaultErr != nil {
			defaultErr = fmt.Errorf("failed to parse embedded shape registry: %w", defaultErr)
		}
	})
	return defaultRegistry, defaultErr
}

// MustDefault is Default for initialization paths where the embedded
// resource is known to be well-formed.
func MustDefault() Registry {
	reg, err := Default()
	if err != nil {
		panic(err)
	}
	return reg
}

// Response shape names for the built-in step kinds.
const (
	TrainingJobResponse   = "DescribeTrainingJobResponse"
	ProcessingJobResponse = "DescribeProcessingJobResponse"
	TransformJobResponse  = "DescribeTransformJobResponse"
	ModelResponse         = "DescribeModelOutput"
)
