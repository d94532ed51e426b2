package graph

import (
	"fmt"
	"maps"
	"slices"
)

// Progress summarizes encoding progress. Blocked counts nodes that are
// neither encoded nor ready: total = encoded + ready + blocked.
type Progress struct {
	Total   int `json:"total"`
	Encoded int `json:"encoded"`
	Ready   int `json:"ready"`
	Blocked int `json:"blocked"`
}

// MarkEncoded records the section as published. Idempotent. The marker set
// is owned by this graph instance; it never influences the ordering
// algorithms, only the progress queries. Returns [ErrNodeNotFound] for
// unknown paths.
func (g *Graph) MarkEncoded(path string) error {
	if !g.Has(path) {
		return fmt.Errorf("mark encoded %s: %w", path, ErrNodeNotFound)
	}
	g.encoded[path] = struct{}{}
	return nil
}

// IsEncoded reports whether the section has been marked encoded.
func (g *Graph) IsEncoded(path string) bool {
	_, ok := g.encoded[path]
	return ok
}

// Encoded returns the encoded sections, sorted.
func (g *Graph) Encoded() []string {
	return slices.Sorted(maps.Keys(g.encoded))
}

// Ready returns the sections that are not yet encoded but whose full
// dependency set is, sorted. Sections without dependencies are ready
// immediately.
func (g *Graph) Ready() []string {
	var ready []string
	for p := range g.nodes {
		if _, done := g.encoded[p]; done {
			continue
		}
		blocked := false
		for dep := range g.deps[p] {
			if _, done := g.encoded[dep]; !done {
				blocked = true
				break
			}
		}
		if !blocked {
			ready = append(ready, p)
		}
	}
	slices.Sort(ready)
	return ready
}

// BlockedBy returns the not-yet-encoded dependencies of the section,
// sorted. Returns [ErrNodeNotFound] for unknown paths.
func (g *Graph) BlockedBy(path string) ([]string, error) {
	if !g.Has(path) {
		return nil, fmt.Errorf("blocked-by %s: %w", path, ErrNodeNotFound)
	}
	var blocking []string
	for dep := range g.deps[path] {
		if _, done := g.encoded[dep]; !done {
			blocking = append(blocking, dep)
		}
	}
	slices.Sort(blocking)
	return blocking, nil
}

// Progress returns the current encoding progress counters.
func (g *Graph) Progress() Progress {
	total := len(g.nodes)
	encoded := len(g.encoded)
	ready := len(g.Ready())
	return Progress{
		Total:   total,
		Encoded: encoded,
		Ready:   ready,
		Blocked: total - encoded - ready,
	}
}
