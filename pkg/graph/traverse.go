package graph

import (
	"fmt"
	"maps"
	"slices"
)

// Unlimited disables the depth bound of [Graph.Ancestors] and
// [Graph.Descendants].
const Unlimited = -1

// Ancestors returns the transitive dependency closure of the node: every
// section it depends on directly or indirectly, sorted. maxDepth limits the
// traversal ([Unlimited] for the full closure; 0 yields an empty result).
//
// The walk is an iterative BFS over a visited set, so it terminates on
// cyclic graphs. The node itself is excluded unless it lies on a cycle
// through itself.
func (g *Graph) Ancestors(path string, maxDepth int) ([]string, error) {
	if !g.Has(path) {
		return nil, fmt.Errorf("ancestors of %s: %w", path, ErrNodeNotFound)
	}
	return g.closure(path, maxDepth, func(p string) []string {
		return slices.Sorted(maps.Keys(g.deps[p]))
	}), nil
}

// Descendants returns the transitive dependent closure of the node: every
// section that depends on it directly or indirectly, sorted. Depth handling
// and cycle behavior match [Graph.Ancestors].
func (g *Graph) Descendants(path string, maxDepth int) ([]string, error) {
	if !g.Has(path) {
		return nil, fmt.Errorf("descendants of %s: %w", path, ErrNodeNotFound)
	}
	return g.closure(path, maxDepth, func(p string) []string {
		return slices.Sorted(maps.Keys(g.rdeps[p]))
	}), nil
}

// closure walks breadth-first from start following next, bounded by
// maxDepth levels. The start node appears in the result only if reachable
// from itself.
func (g *Graph) closure(start string, maxDepth int, next func(string) []string) []string {
	if maxDepth == 0 {
		return nil
	}
	visited := make(map[string]struct{})
	frontier := []string{start}
	for depth := 0; len(frontier) > 0 && (maxDepth == Unlimited || depth < maxDepth); depth++ {
		var nextFrontier []string
		for _, p := range frontier {
			for _, q := range next(p) {
				if _, seen := visited[q]; seen {
					continue
				}
				visited[q] = struct{}{}
				nextFrontier = append(nextFrontier, q)
			}
		}
		frontier = nextFrontier
	}
	return slices.Sorted(maps.Keys(visited))
}
