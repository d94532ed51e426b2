package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/statutegraph/statutegraph/pkg/graph/stats"
)

// statsCommand creates the stats command for structural analysis.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		topK    int
		asJSON  bool
		noCache bool
	)
	var filter filterFlags

	cmd := &cobra.Command{
		Use:   "stats [graph.json|usc.xml]",
		Short: "Report structural statistics for a citation graph",
		Long: `Report structural statistics for a citation graph.

The report covers graph size and density, the most-cited sections (hubs),
dependency depth, and cycle groups.

Examples:
  statutegraph stats graph.json
  statutegraph stats graph.json --top 25
  statutegraph stats usc26.xml --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runStats(cmd, args[0], filter, topK, asJSON, noCache)
		},
	}

	cmd.Flags().IntVar(&topK, "top", c.Config.TopK, "number of citation hubs to report")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	filter.register(cmd)

	return cmd
}

// statsReport is the JSON shape emitted by --json.
type statsReport struct {
	Summary stats.Summary `json:"summary"`
	Hubs    []stats.Hub   `json:"hubs"`
}

func (c *CLI) runStats(cmd *cobra.Command, input string, filter filterFlags, topK int, asJSON, noCache bool) error {
	ctx := cmd.Context()

	g, _, err := c.loadGraph(ctx, input, noCache)
	if err != nil {
		return err
	}
	if g, err = filter.apply(g); err != nil {
		return err
	}

	summary := stats.Summarize(g)
	hubs := stats.Hubs(g, topK)

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(statsReport{Summary: summary, Hubs: hubs})
	}

	fmt.Println(StyleTitle.Render("Citation Graph"))
	printKeyValue("Sections", strconv.Itoa(summary.Nodes))
	printKeyValue("Citations", strconv.Itoa(summary.Edges))
	printKeyValue("Density", fmt.Sprintf("%.6f", summary.Density))
	printKeyValue("Avg dependencies", fmt.Sprintf("%.2f", summary.AvgDependencies))
	printKeyValue("Max depth", strconv.Itoa(summary.MaxDepth))
	printKeyValue("Cycle groups", strconv.Itoa(summary.CycleGroups))
	printNewline()

	if len(hubs) > 0 {
		fmt.Println(StyleTitle.Render(fmt.Sprintf("Top %d Citation Hubs", len(hubs))))
		fmt.Println(hubTable(hubs))
	}
	return nil
}

// hubTable renders the hub list as a bordered table.
func hubTable(hubs []stats.Hub) string {
	rows := make([][]string, len(hubs))
	for i, h := range hubs {
		rows[i] = []string{strconv.Itoa(i + 1), h.CitationPath, strconv.Itoa(h.Dependents)}
	}

	headerStyle := lipgloss.NewStyle().Foreground(colorGray).Bold(true)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("#", "Citation Path", "Cited By").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == 2 {
				return StyleNumber
			}
			return StyleValue
		}).
		Render()
}
