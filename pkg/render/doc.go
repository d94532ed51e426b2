// Package render provides output-format conversion for graph visualizations.
//
// The package root holds format converters (SVG to PDF/PNG via librsvg).
// The [nodelink] subpackage turns a citation graph into a Graphviz
// node-link diagram with cycle highlighting.
package render
