package order

import (
	"slices"
	"strconv"
	"testing"

	"github.com/statutegraph/statutegraph/pkg/graph"
)

func TestSCCs(t *testing.T) {
	tests := []struct {
		name  string
		edges [][2]string
		extra []string
		want  [][]string
	}{
		{
			name: "Acyclic",
			edges: [][2]string{
				{"b", "a"}, {"c", "b"},
			},
			want: [][]string{{"a"}, {"b"}, {"c"}},
		},
		{
			name: "SingleCycle",
			edges: [][2]string{
				{"a", "b"}, {"b", "c"}, {"c", "a"},
			},
			want: [][]string{{"a", "b", "c"}},
		},
		{
			name: "CycleWithTail",
			edges: [][2]string{
				{"a", "b"}, {"b", "a"},
				{"x", "a"},
				{"b", "y"},
			},
			want: [][]string{{"a", "b"}, {"x"}, {"y"}},
		},
		{
			name: "TwoCycles",
			edges: [][2]string{
				{"a", "b"}, {"b", "a"},
				{"c", "d"}, {"d", "c"},
			},
			want: [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "SelfLoop",
			edges: [][2]string{{"a", "a"}},
			extra: []string{"b"},
			want:  [][]string{{"a"}, {"b"}},
		},
		{
			name:  "Empty",
			edges: nil,
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := build(tt.edges, tt.extra...)
			got := SCCs(g)

			if len(got) != len(tt.want) {
				t.Fatalf("components = %v, want %v", got, tt.want)
			}
			for i := range got {
				if !slices.Equal(got[i], tt.want[i]) {
					t.Errorf("component %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestSCCsLongCycle(t *testing.T) {
	// A single cycle long enough to matter for the iterative DFS.
	g := graph.New()
	const n = 100000
	paths := make([]string, n)
	for i := range paths {
		paths[i] = "us/statute/26/" + strconv.Itoa(i)
	}
	for i := range paths {
		g.AddEdge(paths[i], paths[(i+1)%n], graph.Ref{})
	}

	comps := SCCs(g)
	if len(comps) != 1 {
		t.Fatalf("components = %d, want 1", len(comps))
	}
	if len(comps[0]) != n {
		t.Errorf("component size = %d, want %d", len(comps[0]), n)
	}
}
