// Package graphio serializes statute graphs and encoding sequences.
//
// The graph format is a plain JSON object with sorted node and edge arrays,
// designed for round-trip fidelity and cache storage. Encoding sequences
// are written as JSON arrays or CSV with a fixed column order.
package graphio
