package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/statutegraph/statutegraph/pkg/graph"
	"github.com/statutegraph/statutegraph/pkg/graphio"
	"github.com/statutegraph/statutegraph/pkg/uslm"
)

// generateCommand creates the generate command for building graph files.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output  string
		title   int
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "generate [usc-xml-or-dir]",
		Short: "Build a citation graph from US Code XML",
		Long: `Build a citation graph from US Code XML.

The argument is a single USLM XML file (e.g. usc26.xml) or a directory of
uscNN.xml release files. With a directory, all titles are merged into one
graph unless --title selects a single one.

With no argument, the configured data directory is used.

Single-file parses are cached by content hash, so unchanged release files
load instantly on subsequent runs.

Examples:
  statutegraph generate usc26.xml -o graph.json
  statutegraph generate ./data --title 26 -o title26.json
  statutegraph generate ./data -o full.json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := c.Config.DataDir
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGenerate(cmd, input, title, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().IntVar(&title, "title", 0, "load a single title from a data directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, input string, title int, output string, noCache bool) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	prog := newProgress(logger)

	var (
		g      *graph.Graph
		cached bool
		err    error
	)
	if title > 0 {
		loader := uslm.NewLoader(input)
		loader.Logger = func(msg string, args ...any) { logger.Warnf(msg, args...) }
		g, err = loader.LoadTitle(title)
	} else {
		g, cached, err = c.loadGraph(ctx, input, noCache)
	}
	if err != nil {
		return err
	}

	prog.done(fmt.Sprintf("Built graph: %d sections, %d citations", g.NodeCount(), g.EdgeCount()))

	output = c.outputPath(output)
	out, err := openOutput(output)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := graphio.WriteGraph(g, out); err != nil {
		return err
	}

	if output != "" {
		printSuccess("Wrote citation graph")
		printFile(output)
		printStats(g.NodeCount(), g.EdgeCount(), cached)
		printNextStep("Next", fmt.Sprintf("statutegraph sequence %s", output))
	}
	return nil
}
