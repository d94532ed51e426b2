// Package stats provides hub ranking, dependency-depth computation, and
// graph-level summary statistics over statute graphs. All computations are
// read-only and cycle-safe.
package stats
