// Package order computes encoding orders over statute graphs.
//
// [Sort] produces a strict dependencies-first topological order and fails
// with a [CycleError] on cyclic input. [SortTolerant] handles cycles by
// condensing strongly connected components, ordering the acyclic
// condensation, and expanding each component with a deterministic internal
// tie-break. [EncodingSequence] wraps the tolerant order into the report
// records consumed by the CLI and the published data sets.
package order
