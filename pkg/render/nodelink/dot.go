package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graph/order"
	"github.com/statutegraph/statutegraph/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Detailed includes headings and degree counts in node labels.
	// When false, only the section label is shown.
	Detailed bool

	// HighlightCycles fills nodes that belong to a citation cycle.
	HighlightCycles bool
}

// ToDOT converts a citation graph to Graphviz DOT format for node-link
// visualization. Edges point from a section to the sections it cites, so the
// rendered diagram reads top-down from dependents to dependencies.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
//
// Sections that participate in a cycle are rendered with a light red fill
// when [Options.HighlightCycles] is set.
func ToDOT(g *graph.Graph, opts Options) string {
	cyclic := map[string]bool{}
	if opts.HighlightCycles {
		for _, comp := range order.SCCs(g) {
			if len(comp) > 1 {
				for _, p := range comp {
					cyclic[p] = true
				}
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph citations {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, path := range g.Paths() {
		n, _ := g.Node(path)
		label := fmtLabel(g, n, opts.Detailed)
		attrs := fmtAttrs(label, cyclic[path])
		fmt.Fprintf(&buf, "  %q [%s];\n", path, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", e.From, e.To)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(g *graph.Graph, n *graph.Node, detailed bool) string {
	label := fmt.Sprintf("§%s", graph.Section(n.Path))
	if !detailed {
		return label
	}

	parts := []string{label}
	if n.Heading != "" {
		parts = append(parts, n.Heading)
	}
	deps, _ := g.InDegree(n.Path)
	rdeps, _ := g.OutDegree(n.Path)
	parts = append(parts, fmt.Sprintf("cites: %d, cited by: %d", deps, rdeps))

	return strings.Join(parts, "\n")
}

func fmtAttrs(label string, inCycle bool) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if inCycle {
		attrs = append(attrs, "fillcolor=\"#ffd6d6\"", "color=\"#cc3333\"")
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPDF].
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// This is a convenience wrapper around [RenderSVG] and [render.ToPNG].
//
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
//
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
