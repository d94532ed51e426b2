// Package compare evaluates candidate encoding orders by replaying them
// against the cross-reference graph and counting forward references, i.e.
// dependencies that are not yet encoded when a section's turn comes. It is
// pure read-only analysis: neither the graph nor the ordering engine is
// affected.
package compare

import (
	"math/rand"
	"slices"
	"strings"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graph/order"
)

// Names of the standard candidate orderings, kept verbatim for
// compatibility with the published comparison data.
const (
	NameOptimal   = "Optimal (topological)"
	NameNumerical = "Numerical (§1, §2, ...)"
	NameRandom    = "Random"
	NameReverse   = "Reverse optimal"
)

// DefaultSeed is the shuffle seed used for the standard comparison report,
// fixed so published numbers are reproducible.
const DefaultSeed = 42

// Metrics aggregates forward-reference costs of one candidate order.
type Metrics struct {
	TotalForwardRefs int     `json:"total_forward_refs"`
	MaxBlocked       int     `json:"max_blocked"`
	AvgBlocked       float64 `json:"avg_blocked"`
	PctZeroBlocked   float64 `json:"pct_zero_blocked"`
}

// Report maps an ordering name to its metrics.
type Report map[string]Metrics

// Replay walks the candidate order, counting for each section the
// dependencies not yet encoded at that point, then marking the section
// encoded. TotalForwardRefs is 0 exactly when the order is a valid
// dependency-respecting linearization.
func Replay(g *graph.Graph, candidate []string) Metrics {
	encoded := make(map[string]struct{}, len(candidate))
	var m Metrics
	clean := 0
	for _, p := range candidate {
		deps, _ := g.Dependencies(p)
		unmet := 0
		for _, d := range deps {
			if _, done := encoded[d]; !done {
				unmet++
			}
		}
		m.TotalForwardRefs += unmet
		if unmet > m.MaxBlocked {
			m.MaxBlocked = unmet
		}
		if unmet == 0 {
			clean++
		}
		encoded[p] = struct{}{}
	}
	if n := len(candidate); n > 0 {
		m.AvgBlocked = float64(m.TotalForwardRefs) / float64(n)
		m.PctZeroBlocked = float64(clean) / float64(n) * 100
	}
	return m
}

// Numerical returns all sections ordered by numeric section component
// (§1, §2, …), the order a human editor would naively follow. Sections
// without a numeric component sort last; ties fall back to citation path.
func Numerical(g *graph.Graph) []string {
	paths := g.Paths()
	slices.SortStableFunc(paths, func(a, b string) int {
		na, oka := graph.SectionNumber(a)
		nb, okb := graph.SectionNumber(b)
		switch {
		case oka && okb && na != nb:
			return na - nb
		case oka && !okb:
			return -1
		case !oka && okb:
			return 1
		}
		return strings.Compare(a, b)
	})
	return paths
}

// Shuffled returns all sections in a seeded pseudo-random order.
func Shuffled(g *graph.Graph, seed int64) []string {
	paths := g.Paths()
	rng := rand.New(rand.NewSource(seed))
	rng.Shuffle(len(paths), func(i, j int) {
		paths[i], paths[j] = paths[j], paths[i]
	})
	return paths
}

// Reversed returns a copy of the order back to front.
func Reversed(candidate []string) []string {
	out := slices.Clone(candidate)
	slices.Reverse(out)
	return out
}

// Standard evaluates the four canonical candidate orders (tolerant
// topological, numerical, seeded random, and reverse topological) and
// returns the named report.
func Standard(g *graph.Graph, seed int64) Report {
	optimal := order.SortTolerant(g)
	return Report{
		NameOptimal:   Replay(g, optimal),
		NameNumerical: Replay(g, Numerical(g)),
		NameRandom:    Replay(g, Shuffled(g, seed)),
		NameReverse:   Replay(g, Reversed(optimal)),
	}
}
