package order

import (
	"slices"

	"github.com/statutegraph/statutegraph/pkg/graph"
)

// SCCs returns the strongly connected components of the graph. Each
// component is sorted lexicographically and the component list is sorted by
// first member, so the output is deterministic for a given graph. Singleton
// components are the common case; a size above one marks a genuine circular
// reference group.
func SCCs(g *graph.Graph) [][]string {
	comps := tarjan(g)
	for _, c := range comps {
		slices.Sort(c)
	}
	slices.SortFunc(comps, func(a, b []string) int {
		return slices.Compare(a[:1], b[:1])
	})
	return comps
}

// tarjanFrame is one level of the explicit DFS stack used by tarjan.
type tarjanFrame struct {
	v     string
	succs []string
	next  int
}

// tarjan computes strongly connected components with Tarjan's algorithm,
// run iteratively over an explicit frame stack. Cyclic inputs in the low
// thousands of nodes must not exhaust the goroutine stack, so native
// recursion is avoided throughout this package.
func tarjan(g *graph.Graph) [][]string {
	var (
		counter int
		index   = make(map[string]int)
		low     = make(map[string]int)
		onStack = make(map[string]bool)
		stack   []string
		comps   [][]string
	)

	succsOf := func(v string) []string {
		deps, _ := g.Dependencies(v)
		return deps
	}

	visit := func(root string) {
		frames := []tarjanFrame{{v: root, succs: succsOf(root)}}
		index[root], low[root] = counter, counter
		counter++
		stack = append(stack, root)
		onStack[root] = true

		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			if f.next < len(f.succs) {
				w := f.succs[f.next]
				f.next++
				if _, seen := index[w]; !seen {
					index[w], low[w] = counter, counter
					counter++
					stack = append(stack, w)
					onStack[w] = true
					frames = append(frames, tarjanFrame{v: w, succs: succsOf(w)})
				} else if onStack[w] && index[w] < low[f.v] {
					low[f.v] = index[w]
				}
				continue
			}

			if low[f.v] == index[f.v] {
				var comp []string
				for {
					w := stack[len(stack)-1]
					stack = stack[:len(stack)-1]
					onStack[w] = false
					comp = append(comp, w)
					if w == f.v {
						break
					}
				}
				comps = append(comps, comp)
			}

			v := f.v
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := &frames[len(frames)-1]
				if low[v] < low[parent.v] {
					low[parent.v] = low[v]
				}
			}
		}
	}

	for _, v := range g.Paths() {
		if _, seen := index[v]; !seen {
			visit(v)
		}
	}
	return comps
}

// componentIndex maps every node to the position of its component within
// comps.
func componentIndex(comps [][]string) map[string]int {
	idx := make(map[string]int)
	for i, c := range comps {
		for _, v := range c {
			idx[v] = i
		}
	}
	return idx
}
