package cli

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pkgerrors "github.com/statutegraph/statutegraph/pkg/errors"
	"github.com/statutegraph/statutegraph/pkg/graphio"
)

// progressCommand creates the progress command for encoding progress tracking.
func (c *CLI) progressCommand() *cobra.Command {
	var (
		encoded     []string
		output      string
		interactive bool
		showReady   int
		noCache     bool
	)

	cmd := &cobra.Command{
		Use:   "progress [graph.json|usc.xml]",
		Short: "Track encoding progress across the citation graph",
		Long: `Track encoding progress across the citation graph.

A section is ready when every section it cites is already encoded. The
command reports encoded, ready, and blocked counts, and lists the sections
that can be encoded next.

With --mark, the named sections are marked encoded first; use --output to
save the updated graph. With --interactive, a full-screen board lets you
walk the ready list and mark sections one by one.

Examples:
  statutegraph progress graph.json
  statutegraph progress graph.json --mark us/statute/26/1 -o graph.json
  statutegraph progress graph.json --interactive -o graph.json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runProgress(cmd, args[0], encoded, output, interactive, showReady, noCache)
		},
	}

	cmd.Flags().StringSliceVar(&encoded, "mark", nil, "citation paths to mark encoded")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the updated graph to this file")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "open the interactive progress board")
	cmd.Flags().IntVar(&showReady, "ready", 10, "number of ready sections to list")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runProgress(cmd *cobra.Command, input string, encoded []string, output string, interactive bool, showReady int, noCache bool) error {
	ctx := cmd.Context()

	g, _, err := c.loadGraph(ctx, input, noCache)
	if err != nil {
		return err
	}

	for _, path := range encoded {
		if err := g.MarkEncoded(path); err != nil {
			return pkgerrors.Wrap(pkgerrors.ErrCodeNodeNotFound, err, "mark %s", path)
		}
	}

	changed := len(encoded) > 0

	if interactive {
		model := newProgressBoard(g)
		final, err := tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
		if err != nil {
			return fmt.Errorf("progress board: %w", err)
		}
		board := final.(progressBoard)
		changed = changed || board.marked > 0
		if board.marked > 0 {
			printSuccess("Marked %d sections encoded", board.marked)
		}
	}

	p := g.Progress()
	printKeyValue("Total", strconv.Itoa(p.Total))
	printKeyValue("Encoded", strconv.Itoa(p.Encoded))
	printKeyValue("Ready", strconv.Itoa(p.Ready))
	printKeyValue("Blocked", strconv.Itoa(p.Blocked))

	if p.Ready == 0 && p.Blocked > 0 {
		printWarning("No sections are ready; %d remain blocked by citation cycles", p.Blocked)
	}

	ready := g.Ready()
	if showReady > 0 && len(ready) > 0 {
		printNewline()
		printInfo("Ready to encode next:")
		n := min(showReady, len(ready))
		for _, path := range ready[:n] {
			printDetail("%s", path)
		}
		if len(ready) > n {
			printDetail("... and %d more", len(ready)-n)
		}
	}

	if output != "" && changed {
		output = c.outputPath(output)
		if err := graphio.WriteGraphFile(g, output); err != nil {
			return err
		}
		printNewline()
		printSuccess("Saved progress")
		printFile(output)
	}
	return nil
}
