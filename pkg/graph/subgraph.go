package graph

import (
	"maps"
	"strings"
)

// SectionRange is an inclusive numeric range over section numbers, matched
// against the leading digits of the final path segment (see [SectionNumber]).
type SectionRange struct {
	Min, Max int
}

// Filter selects nodes for [Graph.FilterSubgraph]. Both criteria combine
// with AND when set. The zero Filter selects nothing: an empty filter
// expresses "no explicit match", not "everything".
type Filter struct {
	// Prefix matches citation paths by literal string prefix.
	Prefix string
	// Sections matches the numeric section component against an inclusive
	// range. Nil disables the range criterion.
	Sections *SectionRange
}

// matches reports whether the path satisfies every set criterion.
// A filter with no criteria matches nothing.
func (f Filter) matches(path string) bool {
	if f.Prefix == "" && f.Sections == nil {
		return false
	}
	if f.Prefix != "" && !strings.HasPrefix(path, f.Prefix) {
		return false
	}
	if f.Sections != nil {
		n, ok := SectionNumber(path)
		if !ok || n < f.Sections.Min || n > f.Sections.Max {
			return false
		}
	}
	return true
}

// Subgraph returns the induced subgraph on the given citation paths: the
// matching nodes plus every edge whose endpoints are both in the set. The
// result is an independent copy sharing no mutable state with the parent;
// the encoded-set is intersected with the retained nodes. Paths absent from
// the graph are ignored.
func (g *Graph) Subgraph(paths []string) *Graph {
	keep := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		if g.Has(p) {
			keep[p] = struct{}{}
		}
	}

	sg := New()
	for p := range keep {
		n := g.nodes[p]
		sg.nodes[p] = &Node{
			Path:    n.Path,
			Title:   n.Title,
			Heading: n.Heading,
			Meta:    maps.Clone(n.Meta),
		}
	}
	for from := range keep {
		for to, ref := range g.deps[from] {
			if _, ok := keep[to]; ok {
				if sg.deps[from] == nil {
					sg.deps[from] = make(map[string]Ref)
				}
				sg.deps[from][to] = ref
				if sg.rdeps[to] == nil {
					sg.rdeps[to] = make(map[string]struct{})
				}
				sg.rdeps[to][from] = struct{}{}
				sg.edges++
			}
		}
	}
	for p := range g.encoded {
		if _, ok := keep[p]; ok {
			sg.encoded[p] = struct{}{}
		}
	}
	return sg
}

// Match returns the citation paths selected by the filter, sorted.
func (g *Graph) Match(f Filter) []string {
	var out []string
	for _, p := range g.Paths() {
		if f.matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// FilterSubgraph returns the induced subgraph on the nodes selected by the
// filter. Equivalent to g.Subgraph(g.Match(f)).
func (g *Graph) FilterSubgraph(f Filter) *Graph {
	return g.Subgraph(g.Match(f))
}
