// Package pkg provides the core libraries for statutegraph citation analysis.
//
// # Overview
//
// Statutegraph builds a directed graph of section-to-section citations from
// US Code XML and answers ordering questions over it: if every section had
// to be rewritten ("encoded") so that citations only point at already
// encoded text, what order minimizes forward references? The pkg directory
// is organized into four main areas:
//
//  1. [graph] - The citation graph and its analyses (ordering, stats, compare)
//  2. [uslm] - Loading graphs from USLM XML release files
//  3. [graphio] - Graph and sequence serialization
//  4. [render] - Node-link diagram rendering
//
// # Architecture
//
// The typical data flow through statutegraph:
//
//	USLM XML release file
//	         ↓
//	[uslm]  parse sections and href citations
//	         ↓
//	[graph] directed citation graph
//	         ↓
//	[graph/order]    cycle-tolerant encoding order
//	[graph/stats]    hubs, depths, cycle groups
//	[graph/compare]  ordering strategy comparison
//	         ↓
//	[graphio] JSON/CSV output   [render/nodelink] SVG/PNG/PDF diagrams
//
// Supporting packages: [cache] keeps parsed graphs keyed by source content
// hash, [errors] defines structured error codes, [observability] exposes
// instrumentation hooks, and [buildinfo] carries version metadata.
package pkg
