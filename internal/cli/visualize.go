package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pkgerrors "github.com/statutegraph/statutegraph/pkg/errors"
	"github.com/statutegraph/statutegraph/pkg/render/nodelink"
)

// visualizeCommand creates the visualize command for rendering graphs.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		formatsStr string
		output     string
		detailed   bool
		plain      bool
		scale      float64
		noCache    bool
	)
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "visualize [graph.json|usc.xml]",
		Short: "Render a citation graph as a node-link diagram",
		Long: `Render a citation graph as a node-link diagram.

Sections are drawn as boxes with arrows pointing at the sections they cite.
Sections that participate in a citation cycle are highlighted unless --plain
is set. Full-title graphs are large; combine with --prefix or --sections to
render a readable slice.

PNG and PDF output require librsvg (rsvg-convert).

Examples:
  statutegraph visualize graph.json -o graph.svg
  statutegraph visualize graph.json --sections 1:100 -f svg,png -o slice
  statutegraph visualize graph.json -f dot -o graph.dot`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := validateFormats(formats); err != nil {
				return err
			}
			return c.runVisualize(cmd, args[0], filter, formats, output, detailed, !plain, scale, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot (comma-separated)")
	cmd.Flags().BoolVar(&detailed, "detailed", false, "include headings and degree counts in labels")
	cmd.Flags().BoolVar(&plain, "plain", false, "disable cycle highlighting")
	cmd.Flags().Float64Var(&scale, "scale", 2.0, "PNG scale factor")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	filter.register(cmd)

	return cmd
}

// visualFormats are the supported visualize output formats.
var visualFormats = []string{"svg", "png", "pdf", "dot"}

// parseFormats parses a comma-separated format string into a slice.
func parseFormats(s string) []string {
	if s == "" {
		return []string{"svg"}
	}
	return strings.Split(s, ",")
}

// validateFormats rejects unknown output formats.
func validateFormats(formats []string) error {
	for _, f := range formats {
		ok := false
		for _, known := range visualFormats {
			if f == known {
				ok = true
				break
			}
		}
		if !ok {
			return pkgerrors.New(pkgerrors.ErrCodeInvalidFormat, "unknown format %q: expected one of %s", f, strings.Join(visualFormats, ", "))
		}
	}
	return nil
}

func (c *CLI) runVisualize(cmd *cobra.Command, input string, filter filterFlags, formats []string, output string, detailed, highlight bool, scale float64, noCache bool) error {
	ctx := cmd.Context()

	g, _, err := c.loadGraph(ctx, input, noCache)
	if err != nil {
		return err
	}
	if g, err = filter.apply(g); err != nil {
		return err
	}

	dot := nodelink.ToDOT(g, nodelink.Options{Detailed: detailed, HighlightCycles: highlight})

	spinner := newSpinnerWithContext(ctx, "Rendering diagram...")
	spinner.Start()

	outputs := map[string][]byte{}
	for _, f := range formats {
		var data []byte
		switch f {
		case "dot":
			data = []byte(dot)
		case "svg":
			data, err = nodelink.RenderSVG(dot)
		case "pdf":
			data, err = nodelink.RenderPDF(dot)
		case "png":
			data, err = nodelink.RenderPNG(dot, scale)
		}
		if err != nil {
			spinner.StopWithError("Rendering failed")
			return fmt.Errorf("render %s: %w", f, err)
		}
		outputs[f] = data
	}
	spinner.Stop()

	return c.writeVisuals(outputs, formats, input, output)
}

// writeVisuals writes the rendered artifacts, one file per format.
// With a single format, output names the file directly; with several,
// output is a base path and the format extension is appended.
func (c *CLI) writeVisuals(outputs map[string][]byte, formats []string, input, output string) error {
	base := output
	if base == "" {
		base = strings.TrimSuffix(input, ".json")
		base = strings.TrimSuffix(base, ".xml")
	}
	base = c.outputPath(base)

	for _, f := range formats {
		path := base
		if len(formats) > 1 || output == "" {
			path = strings.TrimSuffix(base, "."+f) + "." + f
		}
		if err := ensureDir(path); err != nil {
			return err
		}
		if err := os.WriteFile(path, outputs[f], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	printSuccess("Rendered %d file(s)", len(formats))
	return nil
}
