package properties

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/modelplane/pipeplan/internal/shapes"
)

// Expr is the symbolic reference form resolved by the execution engine at
// run time. It never carries a concrete value.
type Expr struct {
	Get string `json:"Get" yaml:"Get"`
}

// Kind discriminates the node variants of a property tree.
type Kind int

const (
	// Opaque nodes have no schema binding; only the raw path is available.
	Opaque Kind = iota
	// Leaf nodes correspond to scalar shapes.
	Leaf
	// Struct nodes expose their declared members by name.
	Struct
	// List nodes are indexable by integer position.
	List
	// Map nodes are indexable by string key.
	Map
)

// Properties is one node of the symbolic tree mirroring a step's eventual
// response. Nodes are immutable once built; every access composes a new
// path, no data is ever held.
type Properties struct {
	path      string
	kind      Kind
	shapeName string
	registry  shapes.Registry
	members   map[string]*Properties // Struct only, populated eagerly
	elemShape string                 // List element / Map value shape
}

// New builds a property tree rooted at path, mirroring the named response
// shape. An empty shape name yields an opaque root exposing only the path
// itself (used by custom step kinds).
func New(registry shapes.Registry, path, shapeName string) *Properties {
	return build(registry, path, shapeName, nil)
}

// build recursively expands shapes into nodes. visited tracks the shape
// names along the current expansion path: a shape referencing itself is
// terminated with an opaque node to keep construction finite.
func build(registry shapes.Registry, path, shapeName string, visited map[string]bool) *Properties {
	if shapeName == "" {
		return &Properties{path: path, kind: Opaque, registry: registry}
	}
	if visited[shapeName] {
		return &Properties{path: path, kind: Opaque, shapeName: shapeName, registry: registry}
	}

	shape, ok := registry.Lookup(shapeName)
	if !ok || shape.Scalar() {
		return &Properties{path: path, kind: Leaf, shapeName: shapeName, registry: registry}
	}

	node := &Properties{path: path, shapeName: shapeName, registry: registry}
	switch shape.Type {
	case shapes.TypeStructure:
		node.kind = Struct
		node.members = make(map[string]*Properties, len(shape.Members))
		chain := make(map[string]bool, len(visited)+1)
		for name := range visited {
			chain[name] = true
		}
		chain[shapeName] = true
		for name, memberShape := range shape.Members {
			node.members[name] = build(registry, path+"."+name, memberShape, chain)
		}
	case shapes.TypeList:
		node.kind = List
		node.elemShape = shape.Member
	case shapes.TypeMap:
		node.kind = Map
		node.elemShape = shape.Value
	}
	return node
}

// Path returns the textual access path of the node.
func (p *Properties) Path() string {
	return p.path
}

// Kind returns the node variant.
func (p *Properties) Kind() Kind {
	return p.kind
}

// Expr returns the symbolic reference expression for the node.
func (p *Properties) Expr() Expr {
	return Expr{Get: p.path}
}

// MarshalJSON serializes the node as its reference expression, so a node
// embedded directly in a request fragment stays symbolic.
func (p *Properties) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Expr())
}

// MarshalYAML mirrors MarshalJSON for YAML output.
func (p *Properties) MarshalYAML() (any, error) {
	return p.Expr(), nil
}

// Member returns the named structure member. Names absent from the bound
// schema are a definition-time error; so is member access on nodes without
// named members.
func (p *Properties) Member(name string) (*Properties, error) {
	if p.kind != Struct {
		return nil, fmt.Errorf("%s has no named members", p.path)
	}
	m, ok := p.members[name]
	if !ok {
		return nil, fmt.Errorf("unknown property %q on %s", name, p.path)
	}
	return m, nil
}

// Members returns the declared member names in sorted order, or nil for
// nodes without named members.
func (p *Properties) Members() []string {
	if p.kind != Struct {
		return nil
	}
	names := make([]string, 0, len(p.members))
	for name := range p.members {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Index returns the element at the literal position i. Indexing is total:
// any position yields a valid path, whether or not the engine will find an
// element there at execution time.
func (p *Properties) Index(i int) *Properties {
	path := p.path + "[" + strconv.Itoa(i) + "]"
	if p.kind == List {
		return build(p.registry, path, p.elemShape, nil)
	}
	return build(p.registry, path, "", nil)
}

// Key returns the value under the given map key. Keys are never enumerated
// by the schema, so any key yields a valid path expanded against the map's
// value shape; mismatches surface only in the engine.
func (p *Properties) Key(k string) *Properties {
	path := p.path + "['" + k + "']"
	if p.kind == Map {
		return build(p.registry, path, p.elemShape, nil)
	}
	return build(p.registry, path, "", nil)
}
