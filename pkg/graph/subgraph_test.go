package graph

import (
	"slices"
	"testing"
)

// twoTitleGraph builds a small graph spanning titles 26 and 42.
func twoTitleGraph() *Graph {
	g := New()
	g.AddNode(Node{Path: "us/statute/26/1", Title: "26"})
	g.AddNode(Node{Path: "us/statute/26/32", Title: "26"})
	g.AddNode(Node{Path: "us/statute/26/151", Title: "26"})
	g.AddNode(Node{Path: "us/statute/42/1395", Title: "42"})
	g.AddEdge("us/statute/26/32", "us/statute/26/1", Ref{Kind: RefInternalSection})
	g.AddEdge("us/statute/26/151", "us/statute/26/32", Ref{Kind: RefInternalSection})
	g.AddEdge("us/statute/26/151", "us/statute/42/1395", Ref{Kind: RefExternalTitle})
	return g
}

func TestMatch(t *testing.T) {
	g := twoTitleGraph()

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{
			name:   "ZeroFilterMatchesNothing",
			filter: Filter{},
			want:   nil,
		},
		{
			name:   "Prefix",
			filter: Filter{Prefix: "us/statute/42"},
			want:   []string{"us/statute/42/1395"},
		},
		{
			name:   "SectionRange",
			filter: Filter{Prefix: "us/statute/", Sections: &SectionRange{Min: 1, Max: 100}},
			want:   []string{"us/statute/26/1", "us/statute/26/32"},
		},
		{
			name:   "PrefixAndRangeCombineWithAnd",
			filter: Filter{Prefix: "us/statute/26", Sections: &SectionRange{Min: 100, Max: 200}},
			want:   []string{"us/statute/26/151"},
		},
		{
			name:   "NoMatches",
			filter: Filter{Prefix: "us/statute/7"},
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Match(tt.filter)
			if !slices.Equal(got, tt.want) {
				t.Errorf("Match = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSubgraph(t *testing.T) {
	g := twoTitleGraph()
	g.MarkEncoded("us/statute/26/1")
	g.MarkEncoded("us/statute/42/1395")

	sg := g.Subgraph([]string{
		"us/statute/26/1",
		"us/statute/26/32",
		"us/statute/26/151",
		"us/statute/26/999", // absent, ignored
	})

	if sg.NodeCount() != 3 {
		t.Fatalf("NodeCount = %d, want 3", sg.NodeCount())
	}
	// Only edges with both endpoints retained survive; the external edge to
	// title 42 is dropped.
	if sg.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", sg.EdgeCount())
	}
	if _, ok := sg.Ref("us/statute/26/151", "us/statute/42/1395"); ok {
		t.Error("edge to excluded node survived")
	}

	// Encoded set is intersected
	if !sg.IsEncoded("us/statute/26/1") {
		t.Error("encoded flag lost for retained node")
	}
	if got := sg.Progress().Encoded; got != 1 {
		t.Errorf("encoded count = %d, want 1", got)
	}

	// The copy is independent of the parent
	sg.AddNode(Node{Path: "us/statute/26/2"})
	if g.Has("us/statute/26/2") {
		t.Error("mutating subgraph affected parent")
	}
	n, _ := sg.Node("us/statute/26/1")
	n.Heading = "changed"
	if parent, _ := g.Node("us/statute/26/1"); parent.Heading == "changed" {
		t.Error("subgraph shares node storage with parent")
	}
}

func TestFilterSubgraph(t *testing.T) {
	g := twoTitleGraph()

	sg := g.FilterSubgraph(Filter{Prefix: "us/statute/26"})
	if sg.NodeCount() != 3 {
		t.Fatalf("NodeCount = %d, want 3", sg.NodeCount())
	}
	if sg.EdgeCount() != 2 {
		t.Errorf("EdgeCount = %d, want 2", sg.EdgeCount())
	}

	// Zero filter yields an empty graph
	empty := g.FilterSubgraph(Filter{})
	if empty.NodeCount() != 0 || empty.EdgeCount() != 0 {
		t.Errorf("zero filter: %d nodes, %d edges", empty.NodeCount(), empty.EdgeCount())
	}
}
