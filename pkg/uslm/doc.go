// Package uslm loads US Code XML files (USLM schema) into statute graphs.
//
// The loader extracts two things from the markup and nothing more: each
// section's identifier (normalized to a citation path like
// "us/statute/26/32") and its outbound <ref> markers, which become
// dependency edges. References whose href does not parse as a US Code
// section are skipped. All other markup semantics are ignored.
package uslm
