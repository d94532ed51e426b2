package order

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/observability"
)

// maxSampleCycles bounds the number of example cycles carried by a
// [CycleError]. Title-scale graphs can contain thousands of simple cycles;
// three are enough for diagnostics.
const maxSampleCycles = 3

// CycleError is returned by [Sort] when a strict topological order is
// requested on a cyclic graph. Cycles holds up to three sample cycles, each
// an ordered list of citation paths. The caller can recover by switching to
// [SortTolerant], which never fails.
type CycleError struct {
	Cycles [][]string
}

// Error implements the error interface.
func (e *CycleError) Error() string {
	samples := make([]string, len(e.Cycles))
	for i, c := range e.Cycles {
		samples[i] = strings.Join(c, " -> ")
	}
	return fmt.Sprintf("graph contains cycle(s): %s", strings.Join(samples, "; "))
}

// Sort returns a strict dependency-first topological order: for every edge
// A→B (A depends on B), B precedes A. Ties are broken lexicographically, so
// the order is deterministic. Returns a [CycleError] if the graph is
// cyclic.
func Sort(g *graph.Graph) ([]string, error) {
	pending := make(map[string]int, g.NodeCount()) // unresolved dependency count
	var ready []string
	for _, p := range g.Paths() {
		deps, _ := g.Dependencies(p)
		pending[p] = len(deps)
		if len(deps) == 0 {
			ready = append(ready, p)
		}
	}

	// Paths() is sorted, so ready starts sorted; insertions keep it sorted.
	out := make([]string, 0, g.NodeCount())
	for len(ready) > 0 {
		p := ready[0]
		ready = ready[1:]
		out = append(out, p)
		dependents, _ := g.Dependents(p)
		for _, d := range dependents {
			pending[d]--
			if pending[d] == 0 {
				i, _ := slices.BinarySearch(ready, d)
				ready = slices.Insert(ready, i, d)
			}
		}
	}

	if len(out) < g.NodeCount() {
		return nil, &CycleError{Cycles: sampleCycles(g, pending)}
	}
	return out, nil
}

// SortTolerant returns a total order over all nodes that respects
// dependencies wherever possible. Strongly connected components are
// condensed into meta-nodes, the acyclic condensation is ordered
// dependencies-first, and each component is expanded with its members
// sorted by descending dependent count (ties lexicographic). Except within
// a component, every dependency strictly precedes its dependents; inside a
// component the order is a heuristic, since "before" has no solution on a
// cycle.
func SortTolerant(g *graph.Graph) []string {
	observability.Analysis().OnOrderStart(g.NodeCount())
	start := time.Now()

	comps := SCCs(g)
	compOf := componentIndex(comps)

	// Condensation meta-edges: i depends on j when some member of i
	// references a member of j.
	metaDeps := make([]map[int]struct{}, len(comps))
	metaDependents := make([]map[int]struct{}, len(comps))
	for i := range comps {
		metaDeps[i] = make(map[int]struct{})
		metaDependents[i] = make(map[int]struct{})
	}
	for _, e := range g.Edges() {
		ci, cj := compOf[e.From], compOf[e.To]
		if ci != cj {
			metaDeps[ci][cj] = struct{}{}
			metaDependents[cj][ci] = struct{}{}
		}
	}

	// Kahn over the condensation, dependencies first. The ready queue is
	// keyed by each component's first member, which is its lexicographic
	// minimum, for reproducible tie-breaks.
	pending := make([]int, len(comps))
	var ready []int
	for i := range comps {
		pending[i] = len(metaDeps[i])
		if pending[i] == 0 {
			ready = append(ready, i)
		}
	}
	less := func(a, b int) int { return strings.Compare(comps[a][0], comps[b][0]) }
	slices.SortFunc(ready, less)

	out := make([]string, 0, g.NodeCount())
	for len(ready) > 0 {
		c := ready[0]
		ready = ready[1:]
		out = append(out, expand(g, comps[c])...)
		for d := range metaDependents[c] {
			pending[d]--
			if pending[d] == 0 {
				i, _ := slices.BinarySearchFunc(ready, d, less)
				ready = slices.Insert(ready, i, d)
			}
		}
	}

	observability.Analysis().OnOrderComplete(g.NodeCount(), len(comps), time.Since(start))
	return out
}

// expand orders the members of one component: most-depended-upon first,
// ties broken lexicographically for reproducibility.
func expand(g *graph.Graph, comp []string) []string {
	members := slices.Clone(comp)
	slices.SortFunc(members, func(a, b string) int {
		da, _ := g.OutDegree(a)
		db, _ := g.OutDegree(b)
		if da != db {
			return db - da
		}
		return strings.Compare(a, b)
	})
	return members
}

// sampleCycles extracts up to maxSampleCycles simple cycles from the
// unresolved portion of a failed strict sort. Every node with pending
// dependencies either lies on a cycle or depends on one, so a greedy walk
// restricted to unresolved nodes always closes a loop.
func sampleCycles(g *graph.Graph, pending map[string]int) [][]string {
	unresolved := make(map[string]bool)
	var starts []string
	for p, n := range pending {
		if n > 0 {
			unresolved[p] = true
			starts = append(starts, p)
		}
	}
	slices.Sort(starts)

	var cycles [][]string
	seen := make(map[string]bool) // canonical signature of reported cycles
	for _, start := range starts {
		if len(cycles) >= maxSampleCycles {
			break
		}
		pos := map[string]int{}
		var path []string
		v := start
		for {
			if at, ok := pos[v]; ok {
				cycle := slices.Clone(path[at:])
				if sig := cycleSignature(cycle); !seen[sig] {
					seen[sig] = true
					cycles = append(cycles, cycle)
				}
				break
			}
			pos[v] = len(path)
			path = append(path, v)
			deps, _ := g.Dependencies(v)
			next := ""
			for _, d := range deps {
				if unresolved[d] {
					next = d
					break
				}
			}
			if next == "" {
				break
			}
			v = next
		}
	}
	return cycles
}

// cycleSignature canonicalizes a cycle for de-duplication by rotating its
// lexicographically smallest member to the front.
func cycleSignature(cycle []string) string {
	min := 0
	for i, v := range cycle {
		if v < cycle[min] {
			min = i
		}
	}
	rotated := append(slices.Clone(cycle[min:]), cycle[:min]...)
	return strings.Join(rotated, "\x00")
}
