package order

import "github.com/statutegraph/statutegraph/pkg/graph"

// Record is one row of the encoding sequence: a section, its 1-indexed
// position, and the structural context a publisher needs when working
// through the list.
type Record struct {
	Order        int    `json:"order"`
	Section      string `json:"section"`
	CitationPath string `json:"citation_path"`
	Dependencies int    `json:"dependencies"`
	Dependents   int    `json:"dependents"`
	SCCSize      int    `json:"scc_size"`
}

// EncodingSequence computes the cycle-tolerant encoding order and annotates
// every section with its position, dependency and dependent counts, and the
// size of its strongly connected component (1 unless the section is part of
// a reference cycle). This is the primary externally consumed report.
func EncodingSequence(g *graph.Graph) []Record {
	sccSize := make(map[string]int)
	for _, comp := range SCCs(g) {
		for _, p := range comp {
			sccSize[p] = len(comp)
		}
	}

	seq := SortTolerant(g)
	records := make([]Record, len(seq))
	for i, p := range seq {
		deps, _ := g.InDegree(p)
		dependents, _ := g.OutDegree(p)
		records[i] = Record{
			Order:        i + 1,
			Section:      graph.Section(p),
			CitationPath: p,
			Dependencies: deps,
			Dependents:   dependents,
			SCCSize:      sccSize[p],
		}
	}
	return records
}
