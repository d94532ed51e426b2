// Package graph provides the directed graph of statutory cross-references.
//
// Nodes are statute sections identified by citation paths like
// "us/statute/26/32". An edge A→B means A references B and therefore
// depends on it: B must be encoded before A. The graph may be cyclic (statutes
// genuinely reference each other in circles) and every operation
// in this package tolerates cycles.
//
// Note the inverted degree naming: InDegree counts dependencies (outgoing
// edges) and OutDegree counts dependents (incoming edges), matching the
// dependency semantics of the published data sets rather than classic graph
// terminology.
//
// Ordering algorithms live in the order subpackage, hub and depth analytics
// in stats, and ordering comparison in compare.
package graph
