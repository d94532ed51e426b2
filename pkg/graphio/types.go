package graphio

import (
	"encoding/json"
	"fmt"

	"github.com/statutegraph/statutegraph/pkg/graph"
)

// Graph is the canonical serialization format for statute graphs.
// Used for storage, caching, and cross-tool compatibility.
//
// The format is human-readable and designed for round-trip fidelity:
// load → export → re-import produces an identical graph.
type Graph struct {
	Nodes []Node `json:"nodes"`
	Edges []Edge `json:"edges"`
}

// Node is the serialized form of a statute section.
type Node struct {
	Path    string         `json:"citation_path"`
	Title   string         `json:"title,omitempty"`
	Heading string         `json:"heading,omitempty"`
	Encoded bool           `json:"encoded,omitempty"`
	Meta    map[string]any `json:"meta,omitempty"`
}

// Edge is the serialized form of a cross-reference.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"ref_type,omitempty"`
	Text string `json:"text,omitempty"`
}

// FromGraph converts a statute graph to its serialization format.
// Nodes and edges are emitted in sorted order for deterministic output.
// The encoded-set is carried per node so progress survives a round trip.
func FromGraph(g *graph.Graph) Graph {
	nodes := g.Nodes()
	out := Graph{
		Nodes: make([]Node, len(nodes)),
		Edges: make([]Edge, 0, g.EdgeCount()),
	}
	for i, n := range nodes {
		out.Nodes[i] = Node{
			Path:    n.Path,
			Title:   n.Title,
			Heading: n.Heading,
			Encoded: g.IsEncoded(n.Path),
			Meta:    cleanMeta(n.Meta),
		}
	}
	for _, e := range g.Edges() {
		out.Edges = append(out.Edges, Edge{
			From: e.From,
			To:   e.To,
			Kind: string(e.Ref.Kind),
			Text: e.Ref.Text,
		})
	}
	return out
}

// ToGraph converts the serialization format back into a statute graph.
func ToGraph(gj Graph) (*graph.Graph, error) {
	g := graph.New()
	for _, nj := range gj.Nodes {
		if err := g.AddNode(graph.Node{
			Path:    nj.Path,
			Title:   nj.Title,
			Heading: nj.Heading,
			Meta:    copyMeta(nj.Meta),
		}); err != nil {
			return nil, fmt.Errorf("add node %s: %w", nj.Path, err)
		}
	}
	for _, ej := range gj.Edges {
		ref := graph.Ref{Kind: graph.RefKind(ej.Kind), Text: ej.Text}
		if err := g.AddEdge(ej.From, ej.To, ref); err != nil {
			return nil, fmt.Errorf("add edge %s→%s: %w", ej.From, ej.To, err)
		}
	}
	// Encoded markers are applied after all nodes exist.
	for _, nj := range gj.Nodes {
		if nj.Encoded {
			if err := g.MarkEncoded(nj.Path); err != nil {
				return nil, err
			}
		}
	}
	return g, nil
}

// UnmarshalGraph deserializes JSON bytes to a Graph.
func UnmarshalGraph(data []byte) (Graph, error) {
	var g Graph
	if err := json.Unmarshal(data, &g); err != nil {
		return Graph{}, err
	}
	return g, nil
}

// copyMeta creates a shallow copy of metadata to avoid mutation.
func copyMeta(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	result := make(map[string]any, len(m))
	for k, v := range m {
		result[k] = v
	}
	return result
}

// cleanMeta returns nil for empty maps so they are omitted from output.
func cleanMeta(m map[string]any) map[string]any {
	if len(m) == 0 {
		return nil
	}
	return copyMeta(m)
}
