package graph

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrEmptyPath is returned by [Graph.AddNode] and [Graph.AddEdge] when a
	// citation path is empty. All nodes must have non-empty identifiers.
	ErrEmptyPath = errors.New("citation path must not be empty")

	// ErrNodeNotFound is returned by per-node queries ([Graph.Dependencies],
	// [Graph.Dependents], degree and closure methods) when the citation path
	// is not present in the graph. Queries fail hard rather than returning
	// empty results so that loader bugs surface immediately.
	ErrNodeNotFound = errors.New("node not found")
)

// RefKind classifies a cross-reference edge.
// The set is open-ended: loaders may introduce new kinds.
type RefKind string

const (
	// RefInternalSection marks a reference to a section in the same title.
	RefInternalSection RefKind = "internal_section"
	// RefExternalTitle marks a reference into a different title.
	RefExternalTitle RefKind = "external_title"
	// RefUnknown marks a reference whose kind could not be determined.
	RefUnknown RefKind = "unknown"
)

// Ref carries the attributes of a cross-reference edge: its kind and the raw
// reference text as it appeared in the source document.
type Ref struct {
	Kind RefKind
	Text string
}

// Node is a statute section identified by its citation path
// (e.g. "us/statute/26/32"). Title and Heading are the known optional
// attributes; Meta is an open extension map for anything else.
type Node struct {
	Path    string
	Title   string // title number the section belongs to (e.g. "26")
	Heading string // section heading text
	Meta    map[string]any
}

// Edge is a directed cross-reference between two sections. From depends on
// To: to encode From, To must be encoded first.
type Edge struct {
	From string
	To   string
	Ref  Ref
}

// Graph is a directed graph of statutory cross-references.
//
// The edge direction follows dependency semantics: an edge A→B means
// "A depends on B" (A references B), so B must be encoded before A.
// At most one edge exists per ordered pair; re-adding an edge replaces
// its attributes.
//
// Statutes reference each other circularly, so the graph may contain
// cycles. That is expected data, not an error state; only the strict
// topological sort in the order package rejects it.
//
// The zero value is not usable; use [New]. Graph is not safe for
// concurrent use without external synchronization.
type Graph struct {
	nodes   map[string]*Node
	deps    map[string]map[string]Ref      // from -> to -> edge attributes
	rdeps   map[string]map[string]struct{} // to -> set of froms
	edges   int
	encoded map[string]struct{}
}

// New creates an empty statute graph.
func New() *Graph {
	return &Graph{
		nodes:   make(map[string]*Node),
		deps:    make(map[string]map[string]Ref),
		rdeps:   make(map[string]map[string]struct{}),
		encoded: make(map[string]struct{}),
	}
}

// AddNode upserts a section node. If the path is already present, non-empty
// attributes overwrite the stored ones and Meta keys are merged; nothing is
// erased by an upsert with empty fields. Returns [ErrEmptyPath] for an empty
// citation path.
func (g *Graph) AddNode(n Node) error {
	if n.Path == "" {
		return ErrEmptyPath
	}
	existing, ok := g.nodes[n.Path]
	if !ok {
		node := n
		if node.Meta == nil {
			node.Meta = map[string]any{}
		}
		g.nodes[n.Path] = &node
		return nil
	}
	if n.Title != "" {
		existing.Title = n.Title
	}
	if n.Heading != "" {
		existing.Heading = n.Heading
	}
	maps.Copy(existing.Meta, n.Meta)
	return nil
}

// AddEdge upserts the cross-reference from→to. Endpoints that are not yet
// registered are auto-created as minimal nodes so the graph stays
// well-formed for analytics; loaders typically register richer nodes first.
// Re-adding an existing pair replaces the edge attributes; multi-edges are
// not modeled. Returns [ErrEmptyPath] if either endpoint is empty.
func (g *Graph) AddEdge(from, to string, ref Ref) error {
	if from == "" || to == "" {
		return ErrEmptyPath
	}
	if ref.Kind == "" {
		ref.Kind = RefUnknown
	}
	if err := g.AddNode(Node{Path: from}); err != nil {
		return err
	}
	if err := g.AddNode(Node{Path: to}); err != nil {
		return err
	}
	if g.deps[from] == nil {
		g.deps[from] = make(map[string]Ref)
	}
	if _, exists := g.deps[from][to]; !exists {
		g.edges++
	}
	g.deps[from][to] = ref
	if g.rdeps[to] == nil {
		g.rdeps[to] = make(map[string]struct{})
	}
	g.rdeps[to][from] = struct{}{}
	return nil
}

// Has reports whether the citation path is present in the graph.
func (g *Graph) Has(path string) bool {
	_, ok := g.nodes[path]
	return ok
}

// Node returns the node for the citation path and true, or nil and false.
// The pointer refers to the stored node; attribute changes are visible to
// the graph.
func (g *Graph) Node(path string) (*Node, bool) {
	n, ok := g.nodes[path]
	return n, ok
}

// Paths returns all citation paths in lexicographic order.
func (g *Graph) Paths() []string {
	return slices.Sorted(maps.Keys(g.nodes))
}

// Nodes returns all nodes sorted by citation path.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, 0, len(g.nodes))
	for _, p := range g.Paths() {
		nodes = append(nodes, g.nodes[p])
	}
	return nodes
}

// Edges returns all edges sorted by (From, To).
func (g *Graph) Edges() []Edge {
	edges := make([]Edge, 0, g.edges)
	for _, from := range slices.Sorted(maps.Keys(g.deps)) {
		for _, to := range slices.Sorted(maps.Keys(g.deps[from])) {
			edges = append(edges, Edge{From: from, To: to, Ref: g.deps[from][to]})
		}
	}
	return edges
}

// NodeCount returns the number of sections in the graph.
func (g *Graph) NodeCount() int { return len(g.nodes) }

// EdgeCount returns the number of distinct cross-reference pairs.
func (g *Graph) EdgeCount() int { return g.edges }

// Density returns edges / (n·(n-1)) for a simple directed graph.
// Returns 0 for graphs with fewer than two nodes.
func (g *Graph) Density() float64 {
	n := len(g.nodes)
	if n < 2 {
		return 0
	}
	return float64(g.edges) / float64(n*(n-1))
}

// Dependencies returns the sections this node references (its successors),
// sorted and de-duplicated. Returns [ErrNodeNotFound] for unknown paths.
func (g *Graph) Dependencies(path string) ([]string, error) {
	if !g.Has(path) {
		return nil, fmt.Errorf("dependencies of %s: %w", path, ErrNodeNotFound)
	}
	return slices.Sorted(maps.Keys(g.deps[path])), nil
}

// Dependents returns the sections referencing this node (its predecessors),
// sorted and de-duplicated. Returns [ErrNodeNotFound] for unknown paths.
func (g *Graph) Dependents(path string) ([]string, error) {
	if !g.Has(path) {
		return nil, fmt.Errorf("dependents of %s: %w", path, ErrNodeNotFound)
	}
	return slices.Sorted(maps.Keys(g.rdeps[path])), nil
}

// Ref returns the edge attributes for from→to, or false if no such edge.
func (g *Graph) Ref(from, to string) (Ref, bool) {
	ref, ok := g.deps[from][to]
	return ref, ok
}

// InDegree returns the number of dependencies: sections this node
// references. The naming is inverted relative to classic graph terminology
// on purpose: because edges run dependent→dependency, this counts outgoing
// edges. It must stay this way for output compatibility with the published
// data sets. Returns [ErrNodeNotFound] for unknown paths.
func (g *Graph) InDegree(path string) (int, error) {
	if !g.Has(path) {
		return 0, fmt.Errorf("in-degree of %s: %w", path, ErrNodeNotFound)
	}
	return len(g.deps[path]), nil
}

// OutDegree returns the number of dependents: sections referencing this
// node, i.e. incoming edges. See [Graph.InDegree] for the naming convention.
// Returns [ErrNodeNotFound] for unknown paths.
func (g *Graph) OutDegree(path string) (int, error) {
	if !g.Has(path) {
		return 0, fmt.Errorf("out-degree of %s: %w", path, ErrNodeNotFound)
	}
	return len(g.rdeps[path]), nil
}
