package stats

import (
	"fmt"
	"slices"
	"strings"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graph/order"
)

// Hub is a heavily referenced section and its dependent count.
type Hub struct {
	CitationPath string `json:"citation_path"`
	Dependents   int    `json:"dependents"`
}

// Hubs returns the topK sections with the most dependents, descending.
// Equal counts are broken lexicographically by citation path so the ranking
// is stable across runs. topK larger than the graph returns every node;
// zero or negative topK returns none.
func Hubs(g *graph.Graph, topK int) []Hub {
	if topK < 0 {
		topK = 0
	}
	paths := g.Paths()
	hubs := make([]Hub, len(paths))
	for i, p := range paths {
		dependents, _ := g.OutDegree(p)
		hubs[i] = Hub{CitationPath: p, Dependents: dependents}
	}
	slices.SortFunc(hubs, func(a, b Hub) int {
		if a.Dependents != b.Dependents {
			return b.Dependents - a.Dependents
		}
		return strings.Compare(a.CitationPath, b.CitationPath)
	})
	if topK < len(hubs) {
		hubs = hubs[:topK]
	}
	return hubs
}

// Depths computes the longest dependency chain length for every section: a
// section with no dependencies has depth 0, and otherwise
// depth = 1 + max(depth of each dependency).
//
// Cycles make the naive definition diverge, so depth is computed on the
// SCC condensation: every member of a reference cycle shares its
// component's depth, and intra-component edges contribute nothing. For
// acyclic graphs this matches the naive definition exactly. The computation
// is an iterative pass over components in tolerant order, so it is linear
// and cycle-safe.
func Depths(g *graph.Graph) map[string]int {
	comps := order.SCCs(g)
	compOf := make(map[string]int)
	for i, c := range comps {
		for _, p := range c {
			compOf[p] = i
		}
	}

	// Component depths resolve in dependency order: by the time a section
	// is reached in the tolerant order, every component it depends on is
	// already final.
	compDepth := make([]int, len(comps))
	for i := range compDepth {
		compDepth[i] = -1
	}
	for _, p := range order.SortTolerant(g) {
		c := compOf[p]
		deps, _ := g.Dependencies(p)
		d := 0
		for _, dep := range deps {
			dc := compOf[dep]
			if dc == c {
				continue
			}
			if compDepth[dc]+1 > d {
				d = compDepth[dc] + 1
			}
		}
		if d > compDepth[c] {
			compDepth[c] = d
		}
	}

	depths := make(map[string]int, g.NodeCount())
	for p, c := range compOf {
		d := compDepth[c]
		if d < 0 {
			d = 0
		}
		depths[p] = d
	}
	return depths
}

// Depth returns the longest dependency chain length from the section to a
// root (a section with no dependencies). Returns
// [graph.ErrNodeNotFound] for unknown paths. When querying many sections,
// prefer a single [Depths] call.
func Depth(g *graph.Graph, path string) (int, error) {
	if !g.Has(path) {
		return 0, fmt.Errorf("depth of %s: %w", path, graph.ErrNodeNotFound)
	}
	return Depths(g)[path], nil
}

// MaxDepth returns the maximum depth over all sections, 0 for an empty
// graph.
func MaxDepth(g *graph.Graph) int {
	max := 0
	for _, d := range Depths(g) {
		if d > max {
			max = d
		}
	}
	return max
}

// AvgInDegree returns the mean dependency count per section, 0 for an
// empty graph.
func AvgInDegree(g *graph.Graph) float64 {
	n := g.NodeCount()
	if n == 0 {
		return 0
	}
	total := 0
	for _, p := range g.Paths() {
		deps, _ := g.InDegree(p)
		total += deps
	}
	return float64(total) / float64(n)
}

// Summary bundles the graph-level scalar statistics reported by the CLI.
type Summary struct {
	Nodes           int     `json:"nodes"`
	Edges           int     `json:"edges"`
	Density         float64 `json:"density"`
	AvgDependencies float64 `json:"avg_dependencies"`
	SCCCount        int     `json:"scc_count"`
	CycleGroups     int     `json:"cycle_groups"` // SCCs with more than one member
	MaxDepth        int     `json:"max_depth"`
}

// Summarize computes the summary statistics in one pass over the graph.
func Summarize(g *graph.Graph) Summary {
	comps := order.SCCs(g)
	cycles := 0
	for _, c := range comps {
		if len(c) > 1 {
			cycles++
		}
	}
	return Summary{
		Nodes:           g.NodeCount(),
		Edges:           g.EdgeCount(),
		Density:         g.Density(),
		AvgDependencies: AvgInDegree(g),
		SCCCount:        len(comps),
		CycleGroups:     cycles,
		MaxDepth:        MaxDepth(g),
	}
}
